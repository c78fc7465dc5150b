package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	budgetdomain "github.com/orcaflow/orcaflow/internal/budget/domain"
	companydomain "github.com/orcaflow/orcaflow/internal/company/domain"
	"github.com/orcaflow/orcaflow/internal/pdftemplate"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB         *gorm.DB
	Log        *zap.Logger
	Repo       companydomain.Repository
	BudgetRepo budgetdomain.Repository
}

type Service struct {
	db         *gorm.DB
	log        *zap.Logger
	repo       companydomain.Repository
	budgetRepo budgetdomain.Repository
}

func NewService(p Params) companydomain.Service {
	return &Service{
		db:         p.DB,
		log:        p.Log.Named("company.service"),
		repo:       p.Repo,
		budgetRepo: p.BudgetRepo,
	}
}

func (s *Service) Create(ctx context.Context, req companydomain.CreateCompanyRequest) (*companydomain.Company, error) {
	nome := strings.TrimSpace(req.Nome)
	if nome == "" {
		return nil, companydomain.ErrInvalidNome
	}
	cnpj := strings.TrimSpace(req.CNPJ)
	if cnpj == "" {
		return nil, companydomain.ErrInvalidCNPJ
	}
	representante := strings.TrimSpace(req.Representante)
	if representante == "" {
		return nil, companydomain.ErrInvalidRepresentante
	}

	now := time.Now().UTC()
	company := &companydomain.Company{
		ID:            uuid.NewString(),
		Nome:          nome,
		RazaoSocial:   strings.TrimSpace(req.RazaoSocial),
		CNPJ:          cnpj,
		Representante: representante,
		Endereco:      strings.TrimSpace(req.Endereco),
		Telefone:      strings.TrimSpace(req.Telefone),
		Email:         strings.TrimSpace(req.Email),
		Logo:          strings.TrimSpace(req.Logo),
		ModeloPDF:     resolveModeloPDF(req.ModeloPDF),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Insert(ctx, s.db, company); err != nil {
		return nil, err
	}

	s.log.Info("company created", zap.String("company_id", company.ID), zap.String("nome", company.Nome))
	return company, nil
}

func (s *Service) Update(ctx context.Context, req companydomain.UpdateCompanyRequest) (*companydomain.Company, error) {
	id := strings.TrimSpace(req.ID)
	if id == "" {
		return nil, companydomain.ErrInvalidID
	}

	company, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, companydomain.ErrNotFound
	}

	if req.Nome != nil {
		nome := strings.TrimSpace(*req.Nome)
		if nome == "" {
			return nil, companydomain.ErrInvalidNome
		}
		company.Nome = nome
	}
	if req.CNPJ != nil {
		cnpj := strings.TrimSpace(*req.CNPJ)
		if cnpj == "" {
			return nil, companydomain.ErrInvalidCNPJ
		}
		company.CNPJ = cnpj
	}
	if req.Representante != nil {
		representante := strings.TrimSpace(*req.Representante)
		if representante == "" {
			return nil, companydomain.ErrInvalidRepresentante
		}
		company.Representante = representante
	}
	if req.RazaoSocial != nil {
		company.RazaoSocial = strings.TrimSpace(*req.RazaoSocial)
	}
	if req.Endereco != nil {
		company.Endereco = strings.TrimSpace(*req.Endereco)
	}
	if req.Telefone != nil {
		company.Telefone = strings.TrimSpace(*req.Telefone)
	}
	if req.Email != nil {
		company.Email = strings.TrimSpace(*req.Email)
	}
	if req.Logo != nil {
		company.Logo = strings.TrimSpace(*req.Logo)
	}
	if req.ModeloPDF != nil {
		company.ModeloPDF = resolveModeloPDF(*req.ModeloPDF)
	}

	company.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, s.db, company); err != nil {
		return nil, err
	}

	s.log.Info("company updated", zap.String("company_id", company.ID))
	return company, nil
}

// Delete removes a company unless any budget still references it, as base
// or as a selected alternative. The check runs before any mutation.
func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return companydomain.ErrInvalidID
	}

	company, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return err
	}
	if company == nil {
		return companydomain.ErrNotFound
	}

	referenced, err := s.budgetRepo.ReferencesCompany(ctx, s.db, id)
	if err != nil {
		return err
	}
	if referenced {
		return companydomain.ErrCompanyInUse
	}

	if err := s.repo.Delete(ctx, s.db, id); err != nil {
		return err
	}

	s.log.Info("company deleted", zap.String("company_id", id))
	return nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*companydomain.Company, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, companydomain.ErrInvalidID
	}
	company, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, companydomain.ErrNotFound
	}
	return company, nil
}

func (s *Service) List(ctx context.Context) ([]companydomain.Company, error) {
	return s.repo.List(ctx, s.db)
}

// resolveModeloPDF stores template content, never a reference. A catalog
// name is resolved to its current HTML at save time; anything else is
// kept as-is, and empty input picks the catalog default.
func resolveModeloPDF(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return pdftemplate.Default()
	}
	if html, ok := pdftemplate.Lookup(input); ok {
		return html
	}
	return input
}
