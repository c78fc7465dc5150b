package budget

import (
	"github.com/orcaflow/orcaflow/internal/budget/repository"
	"github.com/orcaflow/orcaflow/internal/budget/service"
	"go.uber.org/fx"
)

var Module = fx.Module("budget.service",
	fx.Provide(repository.Provide),
	fx.Provide(repository.ProvideAlternative),
	fx.Provide(service.NewService),
)
