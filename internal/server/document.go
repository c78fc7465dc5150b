package server

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	documentdomain "github.com/orcaflow/orcaflow/internal/document/domain"
	"go.uber.org/zap"
)

func (s *Server) RenderBudgetDocument(c *gin.Context) {
	doc, err := s.documentSvc.RenderHTML(c.Request.Context(), documentdomain.RenderDocumentRequest{
		BudgetID:  strings.TrimSpace(c.Param("id")),
		CompanyID: strings.TrimSpace(c.Query("company_id")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+doc.FileName+`"`)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(doc.HTML))
}

func (s *Server) DownloadBudgetPDF(c *gin.Context) {
	doc, err := s.documentSvc.GeneratePDF(c.Request.Context(), documentdomain.RenderDocumentRequest{
		BudgetID:  strings.TrimSpace(c.Param("id")),
		CompanyID: strings.TrimSpace(c.Query("company_id")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+doc.FileName+`"`)
	c.Header("Content-Type", "application/pdf")
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, doc.Content); err != nil {
		s.log.Warn("streaming pdf response failed", zap.Error(err))
	}
}
