package domain

import (
	"context"
	"errors"
	"io"
)

// RenderDocumentRequest selects which quotation variant to materialize.
// An empty CompanyID renders the base company's quotation; any other
// selected company renders its generated alternative.
type RenderDocumentRequest struct {
	BudgetID  string
	CompanyID string
}

type Document struct {
	HTML     string
	FileName string
}

type PDFDocument struct {
	Content  io.Reader
	FileName string
}

type Service interface {
	RenderHTML(context.Context, RenderDocumentRequest) (*Document, error)
	GeneratePDF(context.Context, RenderDocumentRequest) (*PDFDocument, error)
}

var (
	ErrInvalidID = errors.New("invalid_id")
	ErrNotFound  = errors.New("not_found")
	// ErrAlternativeMissing reports a selected company with no generated
	// alternative: the caller has to run a generation pass first.
	ErrAlternativeMissing = errors.New("alternative_missing")
)
