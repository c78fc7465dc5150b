package pdf

import (
	"context"
	"io"

	"go.uber.org/fx"
)

// QuotationData carries the pre-formatted fields the PDF layout needs.
type QuotationData struct {
	Empresa       string
	CNPJ          string
	Endereco      string
	Representante string
	Cidade        string

	Cliente string
	Numero  string
	Data    string

	Items []QuotationItem
	Total string
}

type QuotationItem struct {
	Descricao     string
	Quantidade    int
	Unidade       string
	ValorUnitario string
	Total         string
}

type Provider interface {
	GenerateQuotation(ctx context.Context, data QuotationData) (io.Reader, error)
}

type NoOpProvider struct{}

func (p *NoOpProvider) GenerateQuotation(ctx context.Context, data QuotationData) (io.Reader, error) {
	return nil, nil
}

var Module = fx.Module("providers.pdf",
	fx.Provide(New),
)
