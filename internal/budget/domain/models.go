package domain

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// BudgetItem is one quotation line. Item IDs are unique within their
// budget and are regenerated whenever an item is copied into an
// alternative budget; they are never shared across budgets.
type BudgetItem struct {
	ID            string          `json:"id"`
	Descricao     string          `json:"descricao"`
	Quantidade    int             `json:"quantidade"`
	ValorUnitario decimal.Decimal `json:"valor_unitario"`
	Unidade       string          `json:"unidade"`
	Observacao    string          `json:"observacao,omitempty"`
}

// Total returns quantidade × valor_unitario.
func (i BudgetItem) Total() decimal.Decimal {
	return i.ValorUnitario.Mul(decimal.NewFromInt(int64(i.Quantidade)))
}

// ItemsTotal sums the line totals of items.
func ItemsTotal(items []BudgetItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Total())
	}
	return total
}

type Budget struct {
	ID            string `gorm:"primaryKey" json:"id"`
	Cliente       string `gorm:"not null" json:"cliente"`
	EmpresaBaseID string `gorm:"not null;index" json:"empresa_base_id"`

	// Invariant: the base company id is always present and always first.
	EmpresasSelecionadasIDs datatypes.JSONSlice[string]     `gorm:"not null" json:"empresas_selecionadas_ids"`
	Itens                   datatypes.JSONSlice[BudgetItem] `gorm:"not null" json:"itens"`

	// DataCriacao is set once at creation and never altered by updates.
	DataCriacao time.Time `gorm:"not null" json:"data_criacao"`
	CreatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Budget) TableName() string { return "budgets" }

// AlternativeBudget is a per-company derived pricing variant of a budget.
// Items are a full copy, so later edits to the base budget never mutate a
// stored alternative. At most one row exists per (orcamento, empresa).
type AlternativeBudget struct {
	ID                       string                          `gorm:"primaryKey" json:"id"`
	OrcamentoID              string                          `gorm:"not null;uniqueIndex:ux_alternative_budget_company" json:"orcamento_id"`
	EmpresaID                string                          `gorm:"not null;uniqueIndex:ux_alternative_budget_company" json:"empresa_id"`
	ItensComValoresAlterados datatypes.JSONSlice[BudgetItem] `gorm:"not null" json:"itens_com_valores_alterados"`
	CreatedAt                time.Time                       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt                time.Time                       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (AlternativeBudget) TableName() string { return "alternative_budgets" }

// BaseFirst rebuilds a selected-company list so that baseID appears
// exactly once and first. Relative order of the remaining ids is kept and
// duplicates are dropped.
func BaseFirst(baseID string, ids []string) []string {
	out := make([]string, 0, len(ids)+1)
	out = append(out, baseID)
	seen := map[string]struct{}{baseID: {}}
	for _, id := range ids {
		if _, dup := seen[id]; dup || id == "" {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
