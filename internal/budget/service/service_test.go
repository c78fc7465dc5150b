package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	budgetdomain "github.com/orcaflow/orcaflow/internal/budget/domain"
	"github.com/orcaflow/orcaflow/internal/budget/repository"
	"github.com/orcaflow/orcaflow/internal/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&budgetdomain.Budget{},
		&budgetdomain.AlternativeBudget{},
	))
	return db
}

func newTestService(t *testing.T, db *gorm.DB) *Service {
	t.Helper()
	svc := NewService(Params{
		DB:      db,
		Log:     zap.NewNop(),
		Repo:    repository.Provide(),
		AltRepo: repository.ProvideAlternative(),
		GenCfg:  config.StaticGenerationConfigHolder(config.DefaultGenerationConfig()),
	})
	return svc.(*Service)
}

func itemInput(descricao string, qty int, valor string) budgetdomain.ItemInput {
	return budgetdomain.ItemInput{
		Descricao:     descricao,
		Quantidade:    qty,
		ValorUnitario: decimal.RequireFromString(valor),
	}
}

func TestCreateBudget_BaseCompanyAlwaysFirst(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	budget, err := svc.Create(ctx, budgetdomain.CreateBudgetRequest{
		Cliente:                 "Construtora Horizonte",
		EmpresaBaseID:           "empresa-base",
		EmpresasSelecionadasIDs: []string{"empresa-b", "empresa-base", "empresa-c", "empresa-b"},
		Itens:                   []budgetdomain.ItemInput{itemInput("Cimento CP-II 50kg", 10, "35.90")},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"empresa-base", "empresa-b", "empresa-c"}, []string(budget.EmpresasSelecionadasIDs))
	assert.NotEmpty(t, budget.ID)
	assert.NotEmpty(t, budget.Itens[0].ID)
	assert.Equal(t, "UNIDADE", budget.Itens[0].Unidade)
	assert.False(t, budget.DataCriacao.IsZero())
}

func TestCreateBudget_Validation(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	_, err := svc.Create(ctx, budgetdomain.CreateBudgetRequest{
		EmpresaBaseID: "empresa-base",
		Itens:         []budgetdomain.ItemInput{itemInput("Areia", 1, "10.00")},
	})
	assert.ErrorIs(t, err, budgetdomain.ErrInvalidCliente)

	_, err = svc.Create(ctx, budgetdomain.CreateBudgetRequest{
		Cliente: "Cliente",
		Itens:   []budgetdomain.ItemInput{itemInput("Areia", 1, "10.00")},
	})
	assert.ErrorIs(t, err, budgetdomain.ErrInvalidEmpresaBase)

	_, err = svc.Create(ctx, budgetdomain.CreateBudgetRequest{
		Cliente:       "Cliente",
		EmpresaBaseID: "empresa-base",
		Itens:         []budgetdomain.ItemInput{itemInput("Areia", 0, "10.00")},
	})
	assert.ErrorIs(t, err, budgetdomain.ErrInvalidItem)

	_, err = svc.Create(ctx, budgetdomain.CreateBudgetRequest{
		Cliente:       "Cliente",
		EmpresaBaseID: "empresa-base",
		Itens:         []budgetdomain.ItemInput{itemInput("Areia", 1, "10.123")},
	})
	assert.ErrorIs(t, err, budgetdomain.ErrInvalidItem)

	_, err = svc.Create(ctx, budgetdomain.CreateBudgetRequest{
		Cliente:       "Cliente",
		EmpresaBaseID: "empresa-base",
		Itens:         []budgetdomain.ItemInput{itemInput("Areia", 1, "-1.00")},
	})
	assert.ErrorIs(t, err, budgetdomain.ErrInvalidItem)
}

func TestUpdateBudget_ReassertsBaseFirstAndKeepsDataCriacao(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	created, err := svc.Create(ctx, budgetdomain.CreateBudgetRequest{
		Cliente:       "Cliente Original",
		EmpresaBaseID: "empresa-a",
		Itens:         []budgetdomain.ItemInput{itemInput("Tijolo", 500, "1.20")},
	})
	require.NoError(t, err)

	newBase := "empresa-b"
	updated, err := svc.Update(ctx, budgetdomain.UpdateBudgetRequest{
		ID:                      created.ID,
		EmpresaBaseID:           &newBase,
		EmpresasSelecionadasIDs: []string{"empresa-a", "empresa-c"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"empresa-b", "empresa-a", "empresa-c"}, []string(updated.EmpresasSelecionadasIDs))
	assert.WithinDuration(t, created.DataCriacao, updated.DataCriacao, time.Second)
	assert.Equal(t, "Cliente Original", updated.Cliente)
	// items untouched when none were sent
	assert.Equal(t, created.Itens[0].ID, updated.Itens[0].ID)
}

func TestUpdateBudget_InvalidatesAlternatives(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	created, err := svc.Create(ctx, budgetdomain.CreateBudgetRequest{
		Cliente:                 "Cliente",
		EmpresaBaseID:           "empresa-a",
		EmpresasSelecionadasIDs: []string{"empresa-b", "empresa-c"},
		Itens:                   []budgetdomain.ItemInput{itemInput("Brita", 3, "80.00")},
	})
	require.NoError(t, err)

	ids, err := svc.GenerateAlternatives(ctx, budgetdomain.GenerateAlternativesRequest{BudgetID: created.ID})
	require.NoError(t, err)
	require.Len(t, ids, 2)

	cliente := "Cliente Renomeado"
	_, err = svc.Update(ctx, budgetdomain.UpdateBudgetRequest{ID: created.ID, Cliente: &cliente})
	require.NoError(t, err)

	alts, err := svc.ListAlternatives(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, alts)
}

func TestDeleteBudget_CascadesAlternatives(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	created, err := svc.Create(ctx, budgetdomain.CreateBudgetRequest{
		Cliente:                 "Cliente",
		EmpresaBaseID:           "empresa-a",
		EmpresasSelecionadasIDs: []string{"empresa-b"},
		Itens:                   []budgetdomain.ItemInput{itemInput("Cal", 2, "18.50")},
	})
	require.NoError(t, err)

	_, err = svc.GenerateAlternatives(ctx, budgetdomain.GenerateAlternativesRequest{BudgetID: created.ID})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, budgetdomain.ErrNotFound)

	var count int64
	require.NoError(t, db.Model(&budgetdomain.AlternativeBudget{}).
		Where("orcamento_id = ?", created.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGetBudget_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)

	_, err := svc.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, budgetdomain.ErrNotFound)

	_, err = svc.GetByID(context.Background(), "   ")
	assert.ErrorIs(t, err, budgetdomain.ErrInvalidID)
}
