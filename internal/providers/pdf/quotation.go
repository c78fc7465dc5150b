package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

type PDFProvider struct{}

func New() Provider {
	return &PDFProvider{}
}

func (p *PDFProvider) GenerateQuotation(ctx context.Context, data QuotationData) (io.Reader, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Página {current} de {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	// Company header
	m.AddRow(30,
		col.New(12).Add(
			text.New(data.Empresa, props.Text{Size: 16, Style: fontstyle.Bold}),
			text.New("CNPJ: "+data.CNPJ, props.Text{Top: 8, Size: 9}),
			text.New(data.Endereco, props.Text{Top: 12, Size: 9}),
		),
	)

	m.AddRow(15,
		text.NewCol(12, "ORÇAMENTO Nº "+data.Numero, props.Text{
			Size:  14,
			Style: fontstyle.Bold,
		}),
	)

	m.AddRow(15,
		col.New(6).Add(
			text.New("Cliente: "+data.Cliente, props.Text{Size: 10}),
		),
		col.New(6).Add(
			text.New("Data: "+data.Data, props.Text{Size: 10, Align: align.Right}),
		),
	)

	// Item table
	m.AddRow(10,
		text.NewCol(2, "Qtd.", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Unidade", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(4, "Descrição", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Valor", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Total", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	for _, item := range data.Items {
		m.AddRow(12,
			text.NewCol(2, fmt.Sprintf("%d", item.Quantidade), props.Text{Size: 9}),
			text.NewCol(2, item.Unidade, props.Text{Size: 9}),
			text.NewCol(4, item.Descricao, props.Text{Size: 9}),
			text.NewCol(2, "R$ "+item.ValorUnitario, props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, "R$ "+item.Total, props.Text{Size: 9, Align: align.Right}),
		)
	}

	m.AddRow(12,
		col.New(8),
		text.NewCol(4, "Valor total: R$ "+data.Total, props.Text{
			Style: fontstyle.Bold,
			Size:  11,
			Align: align.Right,
		}),
	)

	// Signature block
	m.AddRow(30,
		col.New(12).Add(
			text.New(signatureLine(data), props.Text{Top: 10, Size: 9, Align: align.Center}),
			text.New(data.Empresa, props.Text{Top: 16, Size: 9, Align: align.Center}),
			text.New(data.Representante, props.Text{Top: 20, Size: 9, Align: align.Center}),
		),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(doc.GetBytes()), nil
}

func signatureLine(data QuotationData) string {
	if data.Cidade == "" {
		return data.Data
	}
	return data.Cidade + ", " + data.Data
}
