package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	budgetdomain "github.com/orcaflow/orcaflow/internal/budget/domain"
	companydomain "github.com/orcaflow/orcaflow/internal/company/domain"
	documentdomain "github.com/orcaflow/orcaflow/internal/document/domain"
)

type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (v ValidationErrors) Error() string {
	return "validation error"
}

type errorPayload struct {
	Type    string            `json:"type"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func invalidRequestError() error {
	return newValidationError("request", "invalid_request", "invalid request")
}

func newValidationError(field, code, message string) error {
	return &ValidationErrors{
		Errors: []ValidationError{
			{
				Field:   field,
				Code:    code,
				Message: message,
			},
		},
	}
}

var validationErrors = []error{
	budgetdomain.ErrInvalidID,
	budgetdomain.ErrInvalidCliente,
	budgetdomain.ErrInvalidEmpresaBase,
	budgetdomain.ErrInvalidItem,
	budgetdomain.ErrInvalidMarkupRange,
	companydomain.ErrInvalidID,
	companydomain.ErrInvalidNome,
	companydomain.ErrInvalidCNPJ,
	companydomain.ErrInvalidRepresentante,
	documentdomain.ErrInvalidID,
}

var notFoundErrors = []error{
	budgetdomain.ErrNotFound,
	companydomain.ErrNotFound,
	documentdomain.ErrNotFound,
}

func mapError(err error) (int, errorPayload) {
	if err == nil {
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}

	var vErr *ValidationErrors
	if errors.As(err, &vErr) {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors:  vErr.Errors,
		}
	}

	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest, errorPayload{
				Type:    "validation_error",
				Message: err.Error(),
			}
		}
	}

	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			return http.StatusNotFound, errorPayload{
				Type:    "not_found",
				Message: err.Error(),
			}
		}
	}

	if errors.Is(err, companydomain.ErrCompanyInUse) {
		return http.StatusConflict, errorPayload{
			Type:    "conflict",
			Message: "company is referenced by one or more budgets",
		}
	}

	if errors.Is(err, budgetdomain.ErrAlternativeExists) {
		return http.StatusConflict, errorPayload{
			Type:    "conflict",
			Message: "alternative budget already exists for this company",
		}
	}

	if errors.Is(err, documentdomain.ErrAlternativeMissing) {
		return http.StatusConflict, errorPayload{
			Type:    "conflict",
			Message: "alternative budget not generated for this company",
		}
	}

	return http.StatusInternalServerError, errorPayload{
		Type:    "internal_error",
		Message: "internal server error",
	}
}
