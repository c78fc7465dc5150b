package domain

import (
	"context"
	"errors"
)

type CreateCompanyRequest struct {
	Nome          string
	RazaoSocial   string
	CNPJ          string
	Representante string
	Endereco      string
	Telefone      string
	Email         string
	Logo          string
	// ModeloPDF is the resolved template HTML. Empty picks the catalog
	// default; a catalog name resolves to that template's content.
	ModeloPDF string
}

type UpdateCompanyRequest struct {
	ID            string
	Nome          *string
	RazaoSocial   *string
	CNPJ          *string
	Representante *string
	Endereco      *string
	Telefone      *string
	Email         *string
	Logo          *string
	ModeloPDF     *string
}

type Service interface {
	Create(context.Context, CreateCompanyRequest) (*Company, error)
	Update(context.Context, UpdateCompanyRequest) (*Company, error)
	// Delete refuses to remove a company still referenced by any budget.
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*Company, error)
	List(context.Context) ([]Company, error)
}

var (
	ErrInvalidID            = errors.New("invalid_id")
	ErrInvalidNome          = errors.New("invalid_nome")
	ErrInvalidCNPJ          = errors.New("invalid_cnpj")
	ErrInvalidRepresentante = errors.New("invalid_representante")
	ErrNotFound             = errors.New("not_found")
	ErrCompanyInUse         = errors.New("company_in_use")
)
