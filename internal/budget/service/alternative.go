package service

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	budgetdomain "github.com/orcaflow/orcaflow/internal/budget/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// GenerateAlternatives derives one alternative budget per selected
// company other than the base, redrawing every unit price with a random
// markup. The pass is structurally idempotent: an existing
// (budget, company) alternative is refreshed under its original id, a
// missing one is created, and alternatives for deselected companies are
// removed. It is never idempotent in value, since each call redraws the
// markups.
func (s *Service) GenerateAlternatives(ctx context.Context, req budgetdomain.GenerateAlternativesRequest) ([]string, error) {
	budgetID := strings.TrimSpace(req.BudgetID)
	if budgetID == "" {
		return nil, budgetdomain.ErrInvalidID
	}

	cfg := s.genCfg.Get()
	rangePct := req.MarkupRangePercent
	if rangePct == 0 {
		rangePct = cfg.DefaultMarkupPercent
	}
	if rangePct < cfg.MinMarkupPercent || rangePct > cfg.MaxMarkupPercent {
		return nil, budgetdomain.ErrInvalidMarkupRange
	}

	// Two concurrent passes over the same budget race on the existing-set
	// read and the writes that follow, so passes are serialized per budget.
	unlock := s.genLocks.lock(budgetID)
	defer unlock()

	budget, err := s.repo.FindByID(ctx, s.db, budgetID)
	if err != nil {
		return nil, err
	}
	if budget == nil {
		return nil, budgetdomain.ErrNotFound
	}

	targets := make([]string, 0, len(budget.EmpresasSelecionadasIDs))
	for _, companyID := range budget.EmpresasSelecionadasIDs {
		if companyID != budget.EmpresaBaseID {
			targets = append(targets, companyID)
		}
	}
	if len(targets) == 0 {
		s.log.Info("no additional companies selected, nothing to generate",
			zap.String("budget_id", budgetID))
		return []string{}, nil
	}

	existing, err := s.altRepo.FindByBudgetID(ctx, s.db, budgetID)
	if err != nil {
		return nil, err
	}
	byCompany := make(map[string]*budgetdomain.AlternativeBudget, len(existing))
	for i := range existing {
		byCompany[existing[i].EmpresaID] = &existing[i]
	}

	now := time.Now().UTC()
	ids := make([]string, 0, len(targets))
	for _, companyID := range targets {
		itens := perturbItens(budget.Itens, cfg.MinMarkupPercent, rangePct)

		if alt, ok := byCompany[companyID]; ok {
			alt.ItensComValoresAlterados = itens
			alt.UpdatedAt = now
			if err := s.altRepo.Update(ctx, s.db, alt); err != nil {
				return nil, err
			}
			ids = append(ids, alt.ID)
		} else {
			alt := &budgetdomain.AlternativeBudget{
				ID:                       uuid.NewString(),
				OrcamentoID:              budgetID,
				EmpresaID:                companyID,
				ItensComValoresAlterados: itens,
				CreatedAt:                now,
				UpdatedAt:                now,
			}
			if err := s.altRepo.Insert(ctx, s.db, alt); err != nil {
				return nil, err
			}
			ids = append(ids, alt.ID)
		}

		if s.metrics != nil {
			s.metrics.AlternativeBudgetsUpserts.Inc()
		}
	}

	// Orphan cleanup: companies deselected since the last pass lose their
	// alternative.
	targetSet := make(map[string]struct{}, len(targets))
	for _, companyID := range targets {
		targetSet[companyID] = struct{}{}
	}
	for i := range existing {
		if _, ok := targetSet[existing[i].EmpresaID]; ok {
			continue
		}
		if err := s.altRepo.DeleteByID(ctx, s.db, existing[i].ID); err != nil {
			return nil, err
		}
	}

	if s.metrics != nil {
		s.metrics.AlternativeSetsGenerated.Inc()
	}
	s.log.Info("alternative budgets generated",
		zap.String("budget_id", budgetID),
		zap.Int("count", len(ids)),
		zap.Float64("markup_range_percent", rangePct),
	)
	return ids, nil
}

// perturbItens copies items with a fresh id each and an independently
// drawn markup per item. Prices round up, never down: the extra cents
// always favor the selling company.
func perturbItens(itens []budgetdomain.BudgetItem, minPct, maxPct float64) datatypes.JSONSlice[budgetdomain.BudgetItem] {
	out := make([]budgetdomain.BudgetItem, 0, len(itens))
	for _, item := range itens {
		pct := minPct + rand.Float64()*(maxPct-minPct)
		factor := decimal.NewFromFloat(1 + pct/100)

		item.ID = uuid.NewString()
		item.ValorUnitario = item.ValorUnitario.Mul(factor).RoundCeil(2)
		out = append(out, item)
	}
	return datatypes.NewJSONSlice(out)
}

// keyedMutex serializes work per string key. Entries are retained for the
// process lifetime; the key space is bounded by the budget count.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (k *keyedMutex) lock(key string) func() {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[string]*sync.Mutex)
	}
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}
