package domain

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

type ItemInput struct {
	ID            string
	Descricao     string
	Quantidade    int
	ValorUnitario decimal.Decimal
	Unidade       string
	Observacao    string
}

type CreateBudgetRequest struct {
	Cliente                 string
	EmpresaBaseID           string
	EmpresasSelecionadasIDs []string
	Itens                   []ItemInput
}

type UpdateBudgetRequest struct {
	ID                      string
	Cliente                 *string
	EmpresaBaseID           *string
	EmpresasSelecionadasIDs []string // nil keeps the stored selection
	Itens                   []ItemInput
	ReplaceItens            bool
}

type GenerateAlternativesRequest struct {
	BudgetID string
	// MarkupRangePercent is the inclusive upper bound of the random
	// markup draw. Zero selects the configured default.
	MarkupRangePercent float64
}

type Service interface {
	Create(context.Context, CreateBudgetRequest) (*Budget, error)
	Update(context.Context, UpdateBudgetRequest) (*Budget, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*Budget, error)
	List(context.Context) ([]Budget, error)

	ListAlternatives(ctx context.Context, budgetID string) ([]AlternativeBudget, error)
	GetAlternativeByCompany(ctx context.Context, budgetID, companyID string) (*AlternativeBudget, error)
	GenerateAlternatives(context.Context, GenerateAlternativesRequest) ([]string, error)
}

var (
	ErrInvalidID          = errors.New("invalid_id")
	ErrInvalidCliente     = errors.New("invalid_cliente")
	ErrInvalidEmpresaBase = errors.New("invalid_empresa_base")
	ErrInvalidItem        = errors.New("invalid_item")
	ErrInvalidMarkupRange = errors.New("invalid_markup_range")
	ErrNotFound           = errors.New("not_found")
	// ErrAlternativeExists reports a second alternative for the same
	// (budget, company) pair. Generation refreshes in place, so hitting
	// this means a write raced past the per-budget serialization.
	ErrAlternativeExists = errors.New("alternative_exists")
)
