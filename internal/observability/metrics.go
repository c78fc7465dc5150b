package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/fx"
)

// Module provides the application metrics.
var Module = fx.Module("observability",
	fx.Provide(NewMetrics),
)

type Metrics struct {
	DocumentsRendered         *prometheus.CounterVec
	AlternativeSetsGenerated  prometheus.Counter
	AlternativeBudgetsUpserts prometheus.Counter
}

func NewMetrics() *Metrics {
	return &Metrics{
		DocumentsRendered: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "orcaflow",
			Name:      "documents_rendered_total",
			Help:      "Quotation documents rendered, by output format.",
		}, []string{"format"}),
		AlternativeSetsGenerated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "orcaflow",
			Name:      "alternative_sets_generated_total",
			Help:      "Alternative-budget reconciliation passes completed.",
		}),
		AlternativeBudgetsUpserts: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "orcaflow",
			Name:      "alternative_budgets_upserted_total",
			Help:      "Alternative budgets created or refreshed.",
		}),
	}
}
