package server

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	budgetdomain "github.com/orcaflow/orcaflow/internal/budget/domain"
	"github.com/shopspring/decimal"
)

type itemPayload struct {
	ID            string          `json:"id"`
	Descricao     string          `json:"descricao"`
	Quantidade    int             `json:"quantidade"`
	ValorUnitario decimal.Decimal `json:"valor_unitario"`
	Unidade       string          `json:"unidade"`
	Observacao    string          `json:"observacao"`
}

func toItemInputs(payloads []itemPayload) []budgetdomain.ItemInput {
	inputs := make([]budgetdomain.ItemInput, 0, len(payloads))
	for _, p := range payloads {
		inputs = append(inputs, budgetdomain.ItemInput{
			ID:            p.ID,
			Descricao:     p.Descricao,
			Quantidade:    p.Quantidade,
			ValorUnitario: p.ValorUnitario,
			Unidade:       p.Unidade,
			Observacao:    p.Observacao,
		})
	}
	return inputs
}

type createBudgetRequest struct {
	Cliente                 string        `json:"cliente"`
	EmpresaBaseID           string        `json:"empresa_base_id"`
	EmpresasSelecionadasIDs []string      `json:"empresas_selecionadas_ids"`
	Itens                   []itemPayload `json:"itens"`
}

func (s *Server) CreateBudget(c *gin.Context) {
	var req createBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.budgetSvc.Create(c.Request.Context(), budgetdomain.CreateBudgetRequest{
		Cliente:                 req.Cliente,
		EmpresaBaseID:           req.EmpresaBaseID,
		EmpresasSelecionadasIDs: req.EmpresasSelecionadasIDs,
		Itens:                   toItemInputs(req.Itens),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

func (s *Server) ListBudgets(c *gin.Context) {
	resp, err := s.budgetSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetBudgetByID(c *gin.Context) {
	resp, err := s.budgetSvc.GetByID(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

type updateBudgetRequest struct {
	Cliente                 *string       `json:"cliente"`
	EmpresaBaseID           *string       `json:"empresa_base_id"`
	EmpresasSelecionadasIDs []string      `json:"empresas_selecionadas_ids"`
	Itens                   []itemPayload `json:"itens"`
}

func (s *Server) UpdateBudget(c *gin.Context) {
	var req updateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.budgetSvc.Update(c.Request.Context(), budgetdomain.UpdateBudgetRequest{
		ID:                      strings.TrimSpace(c.Param("id")),
		Cliente:                 req.Cliente,
		EmpresaBaseID:           req.EmpresaBaseID,
		EmpresasSelecionadasIDs: req.EmpresasSelecionadasIDs,
		Itens:                   toItemInputs(req.Itens),
		ReplaceItens:            req.Itens != nil,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteBudget(c *gin.Context) {
	if err := s.budgetSvc.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}

func (s *Server) ListAlternativeBudgets(c *gin.Context) {
	resp, err := s.budgetSvc.ListAlternatives(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

type generateAlternativesRequest struct {
	MarkupRangePercent float64 `json:"markup_range_percent"`
}

func (s *Server) GenerateAlternativeBudgets(c *gin.Context) {
	// The body is optional; chunked requests carry ContentLength -1, so
	// an empty body is detected by the EOF from binding, not by length.
	var req generateAlternativesRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		AbortWithError(c, invalidRequestError())
		return
	}

	ids, err := s.budgetSvc.GenerateAlternatives(c.Request.Context(), budgetdomain.GenerateAlternativesRequest{
		BudgetID:           strings.TrimSpace(c.Param("id")),
		MarkupRangePercent: req.MarkupRangePercent,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"alternative_budget_ids": ids}})
}
