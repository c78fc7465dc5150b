package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	budgetdomain "github.com/orcaflow/orcaflow/internal/budget/domain"
	budgetrepository "github.com/orcaflow/orcaflow/internal/budget/repository"
	budgetservice "github.com/orcaflow/orcaflow/internal/budget/service"
	companydomain "github.com/orcaflow/orcaflow/internal/company/domain"
	companyrepository "github.com/orcaflow/orcaflow/internal/company/repository"
	companyservice "github.com/orcaflow/orcaflow/internal/company/service"
	"github.com/orcaflow/orcaflow/internal/config"
	documentservice "github.com/orcaflow/orcaflow/internal/document/service"
	"github.com/orcaflow/orcaflow/internal/providers/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&companydomain.Company{},
		&budgetdomain.Budget{},
		&budgetdomain.AlternativeBudget{},
	))

	logger := zap.NewNop()
	budgetRepo := budgetrepository.Provide()

	budgetSvc := budgetservice.NewService(budgetservice.Params{
		DB:      db,
		Log:     logger,
		Repo:    budgetRepo,
		AltRepo: budgetrepository.ProvideAlternative(),
		GenCfg:  config.StaticGenerationConfigHolder(config.DefaultGenerationConfig()),
	})
	companySvc := companyservice.NewService(companyservice.Params{
		DB:         db,
		Log:        logger,
		Repo:       companyrepository.Provide(),
		BudgetRepo: budgetRepo,
	})
	docSvc := documentservice.NewService(documentservice.Params{
		Log:        logger,
		BudgetSvc:  budgetSvc,
		CompanySvc: companySvc,
		PDF:        &pdf.NoOpProvider{},
	})

	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(ErrorHandlingMiddleware())

	srv := NewServer(ServerParams{
		Gin:         engine,
		Cfg:         config.Config{},
		DB:          db,
		Log:         logger,
		CompanySvc:  companySvc,
		BudgetSvc:   budgetSvc,
		DocumentSvc: docSvc,
	})
	RegisterRoutes(srv)

	ts := httptest.NewServer(engine)
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	buf, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(buf))
	require.NoError(t, err)
	return resp
}

func decodeData(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

func TestQuotationFlow(t *testing.T) {
	ts := newTestServer(t)

	// two companies
	var base, other companydomain.Company
	resp := postJSON(t, ts.URL+"/api/companies", gin.H{
		"nome":          "Empresa Base Ltda",
		"cnpj":          "12.345.678/0001-90",
		"representante": "João Silva",
		"endereco":      "Rua A, 123 - São Paulo/SP",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	decodeData(t, resp, &base)

	resp = postJSON(t, ts.URL+"/api/companies", gin.H{
		"nome":          "Empresa B Ltda",
		"cnpj":          "98.765.432/0001-21",
		"representante": "Maria Santos",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	decodeData(t, resp, &other)

	// budget with both selected
	var budget budgetdomain.Budget
	resp = postJSON(t, ts.URL+"/api/budgets", gin.H{
		"cliente":                   "Construtora Horizonte",
		"empresa_base_id":           base.ID,
		"empresas_selecionadas_ids": []string{other.ID},
		"itens": []gin.H{
			{"descricao": "Cimento CP-II 50kg", "quantidade": 10, "valor_unitario": "35.90", "unidade": "SACO"},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	decodeData(t, resp, &budget)
	assert.Equal(t, []string{base.ID, other.ID}, []string(budget.EmpresasSelecionadasIDs))

	// base company cannot be deleted while referenced
	req, _ := http.NewRequest(http.MethodDelete, ts.URL+"/api/companies/"+base.ID, nil)
	delResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	delResp.Body.Close()
	assert.Equal(t, http.StatusConflict, delResp.StatusCode)

	// document for the other company requires a generation pass first
	docResp, err := http.Get(ts.URL + "/api/budgets/" + budget.ID + "/document?company_id=" + other.ID)
	require.NoError(t, err)
	docResp.Body.Close()
	assert.Equal(t, http.StatusConflict, docResp.StatusCode)

	resp = postJSON(t, ts.URL+"/api/budgets/"+budget.ID+"/alternatives", gin.H{})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	docResp, err = http.Get(ts.URL + "/api/budgets/" + budget.ID + "/document?company_id=" + other.ID)
	require.NoError(t, err)
	docResp.Body.Close()
	assert.Equal(t, http.StatusOK, docResp.StatusCode)

	// out-of-bounds markup range is a validation error
	resp = postJSON(t, ts.URL+"/api/budgets/"+budget.ID+"/alternatives", gin.H{"markup_range_percent": 500})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// missing budget maps to 404
	missing, err := http.Get(ts.URL + "/api/budgets/none")
	require.NoError(t, err)
	missing.Body.Close()
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
}

func TestGenerateAlternatives_BodyVariants(t *testing.T) {
	ts := newTestServer(t)

	var base companydomain.Company
	resp := postJSON(t, ts.URL+"/api/companies", gin.H{
		"nome":          "Empresa Base Ltda",
		"cnpj":          "12.345.678/0001-90",
		"representante": "João Silva",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	decodeData(t, resp, &base)

	var budget budgetdomain.Budget
	resp = postJSON(t, ts.URL+"/api/budgets", gin.H{
		"cliente":         "Cliente",
		"empresa_base_id": base.ID,
		"itens": []gin.H{
			{"descricao": "Areia", "quantidade": 1, "valor_unitario": "10.00"},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	decodeData(t, resp, &budget)

	url := ts.URL + "/api/budgets/" + budget.ID + "/alternatives"

	// no body at all picks the default range
	noBody, err := http.Post(url, "application/json", nil)
	require.NoError(t, err)
	noBody.Body.Close()
	assert.Equal(t, http.StatusOK, noBody.StatusCode)

	// a chunked body (no Content-Length) must still be bound, so an
	// out-of-range markup is rejected instead of silently defaulted
	req, err := http.NewRequest(http.MethodPost, url, strings.NewReader(`{"markup_range_percent": 500}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.ContentLength = -1
	chunked, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	chunked.Body.Close()
	assert.Equal(t, http.StatusBadRequest, chunked.StatusCode)

	// malformed body is a validation error, not a silent default
	malformed, err := http.Post(url, "application/json", strings.NewReader(`{"markup`))
	require.NoError(t, err)
	malformed.Body.Close()
	assert.Equal(t, http.StatusBadRequest, malformed.StatusCode)
}

func TestTemplateRoutes(t *testing.T) {
	ts := newTestServer(t)

	var names []string
	resp, err := http.Get(ts.URL + "/api/templates")
	require.NoError(t, err)
	decodeData(t, resp, &names)
	assert.Equal(t, []string{"modelo1", "modelo2", "modelo3"}, names)

	resp, err = http.Get(ts.URL + "/api/templates/modelo1")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var tpl struct {
		Name string `json:"name"`
		HTML string `json:"html"`
	}
	decodeData(t, resp, &tpl)
	assert.Equal(t, "modelo1", tpl.Name)
	assert.NotEmpty(t, tpl.HTML)

	resp, err = http.Get(ts.URL + "/api/templates/nope")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
