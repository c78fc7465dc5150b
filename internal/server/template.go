package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/orcaflow/orcaflow/internal/pdftemplate"
)

func (s *Server) ListTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": pdftemplate.Names()})
}

func (s *Server) GetTemplateByName(c *gin.Context) {
	name := strings.TrimSpace(c.Param("name"))
	html, ok := pdftemplate.Lookup(name)
	if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, errorResponse{Error: errorPayload{
			Type:    "not_found",
			Message: "template not found",
		}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"name": name, "html": html}})
}
