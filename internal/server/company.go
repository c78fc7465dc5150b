package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	companydomain "github.com/orcaflow/orcaflow/internal/company/domain"
)

type companyPayload struct {
	Nome          string `json:"nome"`
	RazaoSocial   string `json:"razao_social"`
	CNPJ          string `json:"cnpj"`
	Representante string `json:"representante"`
	Endereco      string `json:"endereco"`
	Telefone      string `json:"telefone"`
	Email         string `json:"email"`
	Logo          string `json:"logo"`
	ModeloPDF     string `json:"modelo_pdf"`
}

func (s *Server) CreateCompany(c *gin.Context) {
	var req companyPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.companySvc.Create(c.Request.Context(), companydomain.CreateCompanyRequest{
		Nome:          req.Nome,
		RazaoSocial:   req.RazaoSocial,
		CNPJ:          req.CNPJ,
		Representante: req.Representante,
		Endereco:      req.Endereco,
		Telefone:      req.Telefone,
		Email:         req.Email,
		Logo:          req.Logo,
		ModeloPDF:     req.ModeloPDF,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

func (s *Server) ListCompanies(c *gin.Context) {
	resp, err := s.companySvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetCompanyByID(c *gin.Context) {
	resp, err := s.companySvc.GetByID(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

type updateCompanyRequest struct {
	Nome          *string `json:"nome"`
	RazaoSocial   *string `json:"razao_social"`
	CNPJ          *string `json:"cnpj"`
	Representante *string `json:"representante"`
	Endereco      *string `json:"endereco"`
	Telefone      *string `json:"telefone"`
	Email         *string `json:"email"`
	Logo          *string `json:"logo"`
	ModeloPDF     *string `json:"modelo_pdf"`
}

func (s *Server) UpdateCompany(c *gin.Context) {
	var req updateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.companySvc.Update(c.Request.Context(), companydomain.UpdateCompanyRequest{
		ID:            strings.TrimSpace(c.Param("id")),
		Nome:          req.Nome,
		RazaoSocial:   req.RazaoSocial,
		CNPJ:          req.CNPJ,
		Representante: req.Representante,
		Endereco:      req.Endereco,
		Telefone:      req.Telefone,
		Email:         req.Email,
		Logo:          req.Logo,
		ModeloPDF:     req.ModeloPDF,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteCompany(c *gin.Context) {
	if err := s.companySvc.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}
