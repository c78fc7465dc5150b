package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	budgetdomain "github.com/orcaflow/orcaflow/internal/budget/domain"
	"github.com/orcaflow/orcaflow/internal/config"
	"github.com/orcaflow/orcaflow/internal/observability"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB      *gorm.DB
	Log     *zap.Logger
	Repo    budgetdomain.Repository
	AltRepo budgetdomain.AlternativeRepository
	GenCfg  *config.GenerationConfigHolder
	Metrics *observability.Metrics `optional:"true"`
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	repo     budgetdomain.Repository
	altRepo  budgetdomain.AlternativeRepository
	genCfg   *config.GenerationConfigHolder
	metrics  *observability.Metrics
	genLocks keyedMutex
}

func NewService(p Params) budgetdomain.Service {
	return &Service{
		db:      p.DB,
		log:     p.Log.Named("budget.service"),
		repo:    p.Repo,
		altRepo: p.AltRepo,
		genCfg:  p.GenCfg,
		metrics: p.Metrics,
	}
}

func (s *Service) Create(ctx context.Context, req budgetdomain.CreateBudgetRequest) (*budgetdomain.Budget, error) {
	cliente := strings.TrimSpace(req.Cliente)
	if cliente == "" {
		return nil, budgetdomain.ErrInvalidCliente
	}
	baseID := strings.TrimSpace(req.EmpresaBaseID)
	if baseID == "" {
		return nil, budgetdomain.ErrInvalidEmpresaBase
	}

	itens, err := normalizeItens(req.Itens)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	budget := &budgetdomain.Budget{
		ID:                      uuid.NewString(),
		Cliente:                 cliente,
		EmpresaBaseID:           baseID,
		EmpresasSelecionadasIDs: budgetdomain.BaseFirst(baseID, req.EmpresasSelecionadasIDs),
		Itens:                   itens,
		DataCriacao:             now,
		CreatedAt:               now,
		UpdatedAt:               now,
	}

	if err := s.repo.Insert(ctx, s.db, budget); err != nil {
		return nil, err
	}

	s.log.Info("budget created",
		zap.String("budget_id", budget.ID),
		zap.String("empresa_base_id", budget.EmpresaBaseID),
		zap.Int("itens", len(budget.Itens)),
	)
	return budget, nil
}

// Update rewrites the budget and, in the same transaction, drops every
// alternative derived from it: their prices are no longer guaranteed
// consistent with the new items. Regeneration is the caller's call.
func (s *Service) Update(ctx context.Context, req budgetdomain.UpdateBudgetRequest) (*budgetdomain.Budget, error) {
	id := strings.TrimSpace(req.ID)
	if id == "" {
		return nil, budgetdomain.ErrInvalidID
	}

	budget, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if budget == nil {
		return nil, budgetdomain.ErrNotFound
	}

	if req.Cliente != nil {
		cliente := strings.TrimSpace(*req.Cliente)
		if cliente == "" {
			return nil, budgetdomain.ErrInvalidCliente
		}
		budget.Cliente = cliente
	}

	if req.EmpresaBaseID != nil {
		baseID := strings.TrimSpace(*req.EmpresaBaseID)
		if baseID == "" {
			return nil, budgetdomain.ErrInvalidEmpresaBase
		}
		budget.EmpresaBaseID = baseID
	}

	selecionadas := []string(budget.EmpresasSelecionadasIDs)
	if req.EmpresasSelecionadasIDs != nil {
		selecionadas = req.EmpresasSelecionadasIDs
	}
	budget.EmpresasSelecionadasIDs = budgetdomain.BaseFirst(budget.EmpresaBaseID, selecionadas)

	if req.ReplaceItens {
		itens, err := normalizeItens(req.Itens)
		if err != nil {
			return nil, err
		}
		budget.Itens = itens
	}

	budget.UpdatedAt = time.Now().UTC()

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.Update(ctx, tx, budget); err != nil {
			return err
		}
		return s.altRepo.DeleteByBudgetID(ctx, tx, budget.ID)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("budget updated, alternatives invalidated", zap.String("budget_id", budget.ID))
	return budget, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return budgetdomain.ErrInvalidID
	}

	budget, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return err
	}
	if budget == nil {
		return budgetdomain.ErrNotFound
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.altRepo.DeleteByBudgetID(ctx, tx, id); err != nil {
			return err
		}
		return s.repo.Delete(ctx, tx, id)
	})
	if err != nil {
		return err
	}

	s.log.Info("budget deleted", zap.String("budget_id", id))
	return nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*budgetdomain.Budget, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, budgetdomain.ErrInvalidID
	}
	budget, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if budget == nil {
		return nil, budgetdomain.ErrNotFound
	}
	return budget, nil
}

func (s *Service) List(ctx context.Context) ([]budgetdomain.Budget, error) {
	return s.repo.List(ctx, s.db)
}

func (s *Service) ListAlternatives(ctx context.Context, budgetID string) ([]budgetdomain.AlternativeBudget, error) {
	budgetID = strings.TrimSpace(budgetID)
	if budgetID == "" {
		return nil, budgetdomain.ErrInvalidID
	}
	return s.altRepo.FindByBudgetID(ctx, s.db, budgetID)
}

func (s *Service) GetAlternativeByCompany(ctx context.Context, budgetID, companyID string) (*budgetdomain.AlternativeBudget, error) {
	alts, err := s.ListAlternatives(ctx, budgetID)
	if err != nil {
		return nil, err
	}
	for i := range alts {
		if alts[i].EmpresaID == companyID {
			return &alts[i], nil
		}
	}
	return nil, budgetdomain.ErrNotFound
}

func normalizeItens(inputs []budgetdomain.ItemInput) (datatypes.JSONSlice[budgetdomain.BudgetItem], error) {
	itens := make([]budgetdomain.BudgetItem, 0, len(inputs))
	for _, in := range inputs {
		descricao := strings.TrimSpace(in.Descricao)
		if descricao == "" || in.Quantidade <= 0 {
			return nil, budgetdomain.ErrInvalidItem
		}
		if in.ValorUnitario.IsNegative() || !in.ValorUnitario.Equal(in.ValorUnitario.Round(2)) {
			return nil, budgetdomain.ErrInvalidItem
		}

		id := strings.TrimSpace(in.ID)
		if id == "" {
			id = uuid.NewString()
		}
		unidade := strings.TrimSpace(in.Unidade)
		if unidade == "" {
			unidade = "UNIDADE"
		}

		itens = append(itens, budgetdomain.BudgetItem{
			ID:            id,
			Descricao:     descricao,
			Quantidade:    in.Quantidade,
			ValorUnitario: in.ValorUnitario,
			Unidade:       unidade,
			Observacao:    strings.TrimSpace(in.Observacao),
		})
	}
	return datatypes.NewJSONSlice(itens), nil
}
