package domain

import "time"

// Company is a business entity usable as either the base pricing source
// or an alternative pricing source for a budget. ModeloPDF holds the
// company's own resolved template HTML, not a catalog reference: catalog
// edits never retroactively change a saved company's documents.
type Company struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	Nome          string    `gorm:"not null" json:"nome"`
	RazaoSocial   string    `json:"razao_social,omitempty"`
	CNPJ          string    `gorm:"column:cnpj;not null" json:"cnpj"`
	Representante string    `gorm:"not null" json:"representante"`
	Endereco      string    `json:"endereco"`
	Telefone      string    `json:"telefone,omitempty"`
	Email         string    `json:"email,omitempty"`
	Logo          string    `json:"logo,omitempty"`
	ModeloPDF     string    `gorm:"column:modelo_pdf;type:text" json:"modelo_pdf"`
	CreatedAt     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Company) TableName() string { return "companies" }
