package seed

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	companydomain "github.com/orcaflow/orcaflow/internal/company/domain"
	"github.com/orcaflow/orcaflow/internal/pdftemplate"
	"gorm.io/gorm"
)

var sampleCompanies = []companydomain.Company{
	{
		Nome:          "Empresa A Ltda",
		CNPJ:          "12.345.678/0001-90",
		Representante: "João Silva",
		Endereco:      "Rua A, 123 - Centro - São Paulo/SP",
	},
	{
		Nome:          "Empresa B Ltda",
		CNPJ:          "98.765.432/0001-21",
		Representante: "Maria Santos",
		Endereco:      "Avenida B, 456 - Vila Nova - Rio de Janeiro/RJ",
	},
	{
		Nome:          "Empresa C Ltda",
		CNPJ:          "45.678.901/0001-23",
		Representante: "Pedro Oliveira",
		Endereco:      "Praça C, 789 - Jardim América - Belo Horizonte/MG",
	},
}

// EnsureSampleCompanies seeds a small set of Brazilian sample companies
// so a fresh install has data to quote against. It is a no-op once any
// company exists, so user-managed catalogs are never touched.
func EnsureSampleCompanies(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&companydomain.Company{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		now := time.Now().UTC()
		for _, company := range sampleCompanies {
			company.ID = uuid.NewString()
			company.ModeloPDF = pdftemplate.Default()
			company.CreatedAt = now
			company.UpdatedAt = now
			if err := tx.Create(&company).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
