package service

import (
	"context"
	"errors"
	"strings"

	budgetdomain "github.com/orcaflow/orcaflow/internal/budget/domain"
	companydomain "github.com/orcaflow/orcaflow/internal/company/domain"
	documentdomain "github.com/orcaflow/orcaflow/internal/document/domain"
	"github.com/orcaflow/orcaflow/internal/observability"
	"github.com/orcaflow/orcaflow/internal/providers/pdf"
	"github.com/orcaflow/orcaflow/internal/render"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log        *zap.Logger
	BudgetSvc  budgetdomain.Service
	CompanySvc companydomain.Service
	PDF        pdf.Provider
	Metrics    *observability.Metrics `optional:"true"`
}

type Service struct {
	log        *zap.Logger
	budgetSvc  budgetdomain.Service
	companySvc companydomain.Service
	pdf        pdf.Provider
	metrics    *observability.Metrics
}

func NewService(p Params) documentdomain.Service {
	return &Service{
		log:        p.Log.Named("document.service"),
		budgetSvc:  p.BudgetSvc,
		companySvc: p.CompanySvc,
		pdf:        p.PDF,
		metrics:    p.Metrics,
	}
}

func (s *Service) RenderHTML(ctx context.Context, req documentdomain.RenderDocumentRequest) (*documentdomain.Document, error) {
	budget, company, itens, err := s.resolve(ctx, req)
	if err != nil {
		return nil, err
	}

	html := render.Render(
		company.ModeloPDF,
		companyFields(company),
		budget.Cliente,
		renderItems(itens),
		budget.DataCriacao,
	)

	if s.metrics != nil {
		s.metrics.DocumentsRendered.WithLabelValues("html").Inc()
	}
	return &documentdomain.Document{
		HTML:     html,
		FileName: documentFileName(budget.Cliente, company.Nome, "html"),
	}, nil
}

func (s *Service) GeneratePDF(ctx context.Context, req documentdomain.RenderDocumentRequest) (*documentdomain.PDFDocument, error) {
	budget, company, itens, err := s.resolve(ctx, req)
	if err != nil {
		return nil, err
	}

	items := make([]pdf.QuotationItem, 0, len(itens))
	for _, item := range itens {
		items = append(items, pdf.QuotationItem{
			Descricao:     item.Descricao,
			Quantidade:    item.Quantidade,
			Unidade:       item.Unidade,
			ValorUnitario: render.FormatValor(item.ValorUnitario),
			Total:         render.FormatValor(item.Total()),
		})
	}

	content, err := s.pdf.GenerateQuotation(ctx, pdf.QuotationData{
		Empresa:       company.Nome,
		CNPJ:          company.CNPJ,
		Endereco:      company.Endereco,
		Representante: company.Representante,
		Cidade:        render.CityFromAddress(company.Endereco),
		Cliente:       budget.Cliente,
		Numero:        render.DocumentNumber(),
		Data:          budget.DataCriacao.Format("02/01/2006"),
		Items:         items,
		Total:         render.FormatValor(budgetdomain.ItemsTotal(itens)),
	})
	if err != nil {
		s.log.Error("pdf generation failed", zap.String("budget_id", budget.ID), zap.Error(err))
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.DocumentsRendered.WithLabelValues("pdf").Inc()
	}
	return &documentdomain.PDFDocument{
		Content:  content,
		FileName: documentFileName(budget.Cliente, company.Nome, "pdf"),
	}, nil
}

// resolve loads the budget, the target company and the item list the
// document should price: the base budget's own items, or the company's
// generated alternative when another selected company is requested.
func (s *Service) resolve(ctx context.Context, req documentdomain.RenderDocumentRequest) (*budgetdomain.Budget, *companydomain.Company, []budgetdomain.BudgetItem, error) {
	budgetID := strings.TrimSpace(req.BudgetID)
	if budgetID == "" {
		return nil, nil, nil, documentdomain.ErrInvalidID
	}

	budget, err := s.budgetSvc.GetByID(ctx, budgetID)
	if err != nil {
		return nil, nil, nil, mapBudgetErr(err)
	}

	companyID := strings.TrimSpace(req.CompanyID)
	if companyID == "" {
		companyID = budget.EmpresaBaseID
	}

	company, err := s.companySvc.GetByID(ctx, companyID)
	if err != nil {
		return nil, nil, nil, mapCompanyErr(err)
	}

	itens := []budgetdomain.BudgetItem(budget.Itens)
	if companyID != budget.EmpresaBaseID {
		alt, err := s.budgetSvc.GetAlternativeByCompany(ctx, budgetID, companyID)
		if err != nil {
			if errors.Is(err, budgetdomain.ErrNotFound) {
				return nil, nil, nil, documentdomain.ErrAlternativeMissing
			}
			return nil, nil, nil, err
		}
		itens = []budgetdomain.BudgetItem(alt.ItensComValoresAlterados)
	}

	return budget, company, itens, nil
}

func companyFields(company *companydomain.Company) render.CompanyFields {
	return render.CompanyFields{
		Nome:          company.Nome,
		RazaoSocial:   company.RazaoSocial,
		CNPJ:          company.CNPJ,
		Representante: company.Representante,
		Endereco:      company.Endereco,
		Telefone:      company.Telefone,
		Email:         company.Email,
		Logo:          company.Logo,
	}
}

func renderItems(itens []budgetdomain.BudgetItem) []render.Item {
	items := make([]render.Item, 0, len(itens))
	for _, item := range itens {
		items = append(items, render.Item{
			ID:            item.ID,
			Descricao:     item.Descricao,
			Quantidade:    item.Quantidade,
			ValorUnitario: item.ValorUnitario,
			Unidade:       item.Unidade,
			Observacao:    item.Observacao,
		})
	}
	return items
}

func documentFileName(cliente, empresa, ext string) string {
	sanitize := func(s string) string {
		return strings.ReplaceAll(strings.TrimSpace(s), " ", "_")
	}
	return "orcamento_" + sanitize(cliente) + "_" + sanitize(empresa) + "." + ext
}

func mapBudgetErr(err error) error {
	switch {
	case errors.Is(err, budgetdomain.ErrNotFound):
		return documentdomain.ErrNotFound
	case errors.Is(err, budgetdomain.ErrInvalidID):
		return documentdomain.ErrInvalidID
	default:
		return err
	}
}

func mapCompanyErr(err error) error {
	switch {
	case errors.Is(err, companydomain.ErrNotFound):
		return documentdomain.ErrNotFound
	case errors.Is(err, companydomain.ErrInvalidID):
		return documentdomain.ErrInvalidID
	default:
		return err
	}
}
