package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	budgetdomain "github.com/orcaflow/orcaflow/internal/budget/domain"
	"github.com/orcaflow/orcaflow/internal/budget/repository"
	"github.com/orcaflow/orcaflow/internal/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func TestGenerateAlternatives_OnePerCompanyWithinMarkupBounds(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	created, err := svc.Create(ctx, budgetdomain.CreateBudgetRequest{
		Cliente:                 "Cliente",
		EmpresaBaseID:           "empresa-base",
		EmpresasSelecionadasIDs: []string{"empresa-b", "empresa-c"},
		Itens: []budgetdomain.ItemInput{
			itemInput("Cimento", 2, "10.00"),
			itemInput("Areia lavada", 5, "42.37"),
		},
	})
	require.NoError(t, err)

	ids, err := svc.GenerateAlternatives(ctx, budgetdomain.GenerateAlternativesRequest{
		BudgetID:           created.ID,
		MarkupRangePercent: 20,
	})
	require.NoError(t, err)
	require.Len(t, ids, 2)

	alts, err := svc.ListAlternatives(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, alts, 2)

	companies := map[string]bool{}
	baseItemIDs := map[string]bool{}
	for _, item := range created.Itens {
		baseItemIDs[item.ID] = true
	}

	for _, alt := range alts {
		assert.Equal(t, created.ID, alt.OrcamentoID)
		assert.False(t, companies[alt.EmpresaID], "duplicate alternative for %s", alt.EmpresaID)
		companies[alt.EmpresaID] = true
		assert.NotEqual(t, "empresa-base", alt.EmpresaID)

		require.Len(t, alt.ItensComValoresAlterados, len(created.Itens))
		for i, item := range alt.ItensComValoresAlterados {
			base := created.Itens[i]

			assert.False(t, baseItemIDs[item.ID], "alternative item reused the base item id")
			assert.Equal(t, base.Descricao, item.Descricao)
			assert.Equal(t, base.Quantidade, item.Quantidade)

			// marked up, never down, at most range percent, two decimals
			ceiling := base.ValorUnitario.Mul(decimal.NewFromFloat(1.20)).RoundCeil(2)
			assert.True(t, item.ValorUnitario.GreaterThan(base.ValorUnitario),
				"price %s not above base %s", item.ValorUnitario, base.ValorUnitario)
			assert.True(t, item.ValorUnitario.LessThanOrEqual(ceiling),
				"price %s above ceiling %s", item.ValorUnitario, ceiling)
			assert.True(t, item.ValorUnitario.Equal(item.ValorUnitario.Round(2)))
		}
	}
}

func TestGenerateAlternatives_RefreshKeepsAlternativeID(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	created, err := svc.Create(ctx, budgetdomain.CreateBudgetRequest{
		Cliente:                 "Cliente",
		EmpresaBaseID:           "empresa-base",
		EmpresasSelecionadasIDs: []string{"empresa-b"},
		Itens:                   []budgetdomain.ItemInput{itemInput("Vergalhão 10mm", 30, "52.80")},
	})
	require.NoError(t, err)

	first, err := svc.GenerateAlternatives(ctx, budgetdomain.GenerateAlternativesRequest{BudgetID: created.ID})
	require.NoError(t, err)
	second, err := svc.GenerateAlternatives(ctx, budgetdomain.GenerateAlternativesRequest{BudgetID: created.ID})
	require.NoError(t, err)

	// refreshed in place under the same id, no second row for the pair
	assert.Equal(t, first, second)

	alts, err := svc.ListAlternatives(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, alts, 1)
}

func TestGenerateAlternatives_RemovesDeselectedCompanies(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	created, err := svc.Create(ctx, budgetdomain.CreateBudgetRequest{
		Cliente:                 "Cliente",
		EmpresaBaseID:           "empresa-base",
		EmpresasSelecionadasIDs: []string{"empresa-b"},
		Itens:                   []budgetdomain.ItemInput{itemInput("Telha", 100, "9.90")},
	})
	require.NoError(t, err)

	// leftover from a company that is no longer selected
	stray := budgetdomain.AlternativeBudget{
		ID:                       uuid.NewString(),
		OrcamentoID:              created.ID,
		EmpresaID:                "empresa-gone",
		ItensComValoresAlterados: datatypes.NewJSONSlice([]budgetdomain.BudgetItem(created.Itens)),
		CreatedAt:                time.Now().UTC(),
		UpdatedAt:                time.Now().UTC(),
	}
	require.NoError(t, db.Create(&stray).Error)

	_, err = svc.GenerateAlternatives(ctx, budgetdomain.GenerateAlternativesRequest{BudgetID: created.ID})
	require.NoError(t, err)

	alts, err := svc.ListAlternatives(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, alts, 1)
	assert.Equal(t, "empresa-b", alts[0].EmpresaID)
}

func TestGenerateAlternatives_OnlyBaseSelected(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	created, err := svc.Create(ctx, budgetdomain.CreateBudgetRequest{
		Cliente:       "Cliente",
		EmpresaBaseID: "empresa-base",
		Itens:         []budgetdomain.ItemInput{itemInput("Argamassa", 4, "22.00")},
	})
	require.NoError(t, err)

	ids, err := svc.GenerateAlternatives(ctx, budgetdomain.GenerateAlternativesRequest{BudgetID: created.ID})
	require.NoError(t, err)
	assert.NotNil(t, ids)
	assert.Empty(t, ids)
}

func TestGenerateAlternatives_Errors(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	_, err := svc.GenerateAlternatives(ctx, budgetdomain.GenerateAlternativesRequest{BudgetID: " "})
	assert.ErrorIs(t, err, budgetdomain.ErrInvalidID)

	_, err = svc.GenerateAlternatives(ctx, budgetdomain.GenerateAlternativesRequest{
		BudgetID:           "whatever",
		MarkupRangePercent: 150,
	})
	assert.ErrorIs(t, err, budgetdomain.ErrInvalidMarkupRange)

	_, err = svc.GenerateAlternatives(ctx, budgetdomain.GenerateAlternativesRequest{
		BudgetID:           "whatever",
		MarkupRangePercent: 0.5,
	})
	assert.ErrorIs(t, err, budgetdomain.ErrInvalidMarkupRange)

	_, err = svc.GenerateAlternatives(ctx, budgetdomain.GenerateAlternativesRequest{BudgetID: "missing"})
	assert.ErrorIs(t, err, budgetdomain.ErrNotFound)
}

func TestGenerateAlternatives_ConcurrentCallsOneRowPerCompany(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	created, err := svc.Create(ctx, budgetdomain.CreateBudgetRequest{
		Cliente:                 "Cliente",
		EmpresaBaseID:           "empresa-base",
		EmpresasSelecionadasIDs: []string{"empresa-b", "empresa-c"},
		Itens:                   []budgetdomain.ItemInput{itemInput("Cimento", 2, "10.00")},
	})
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.GenerateAlternatives(ctx, budgetdomain.GenerateAlternativesRequest{
				BudgetID: created.ID,
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	alts, err := svc.ListAlternatives(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, alts, 2)

	perCompany := map[string]int{}
	for _, alt := range alts {
		perCompany[alt.EmpresaID]++
	}
	assert.Equal(t, map[string]int{"empresa-b": 1, "empresa-c": 1}, perCompany)
}

// insertFailingAltRepo delegates to the real repository so writes before
// the injected failure actually land, which a pure mock could not show.
type insertFailingAltRepo struct {
	budgetdomain.AlternativeRepository
	failCompany string
}

func (r *insertFailingAltRepo) Insert(ctx context.Context, db *gorm.DB, alt *budgetdomain.AlternativeBudget) error {
	if alt.EmpresaID == r.failCompany {
		return errors.New("disk full")
	}
	return r.AlternativeRepository.Insert(ctx, db, alt)
}

func TestGenerateAlternatives_PersistenceFailureKeepsEarlierWrites(t *testing.T) {
	db := newTestDB(t)
	svcIface := NewService(Params{
		DB:   db,
		Log:  zap.NewNop(),
		Repo: repository.Provide(),
		AltRepo: &insertFailingAltRepo{
			AlternativeRepository: repository.ProvideAlternative(),
			failCompany:           "empresa-c",
		},
		GenCfg: config.StaticGenerationConfigHolder(config.DefaultGenerationConfig()),
	})
	svc := svcIface.(*Service)
	ctx := context.Background()

	created, err := svc.Create(ctx, budgetdomain.CreateBudgetRequest{
		Cliente:                 "Cliente",
		EmpresaBaseID:           "empresa-base",
		EmpresasSelecionadasIDs: []string{"empresa-b", "empresa-c"},
		Itens:                   []budgetdomain.ItemInput{itemInput("Brita", 3, "80.00")},
	})
	require.NoError(t, err)

	_, err = svc.GenerateAlternatives(ctx, budgetdomain.GenerateAlternativesRequest{BudgetID: created.ID})
	require.Error(t, err)
	assert.EqualError(t, err, "disk full")

	// no rollback: the company written before the failure keeps its row
	alts, err := svc.ListAlternatives(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, alts, 1)
	assert.Equal(t, "empresa-b", alts[0].EmpresaID)
}

func TestPerturbItens_IndependentDrawsPerItem(t *testing.T) {
	base := []budgetdomain.BudgetItem{
		{ID: "a", Descricao: "Item", Quantidade: 1, ValorUnitario: decimal.RequireFromString("100.00")},
	}

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		out := perturbItens(base, 1, 100)
		require.Len(t, out, 1)
		seen[out[0].ValorUnitario.String()] = true
	}
	// a 99-point draw range collapsing to very few values would mean the
	// markup is not actually random
	assert.Greater(t, len(seen), 10)
}
