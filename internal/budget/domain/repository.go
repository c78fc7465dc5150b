package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, budget *Budget) error
	Update(ctx context.Context, db *gorm.DB, budget *Budget) error
	Delete(ctx context.Context, db *gorm.DB, id string) error
	FindByID(ctx context.Context, db *gorm.DB, id string) (*Budget, error)
	List(ctx context.Context, db *gorm.DB) ([]Budget, error)
	ReferencesCompany(ctx context.Context, db *gorm.DB, companyID string) (bool, error)
}

type AlternativeRepository interface {
	Insert(ctx context.Context, db *gorm.DB, alt *AlternativeBudget) error
	Update(ctx context.Context, db *gorm.DB, alt *AlternativeBudget) error
	DeleteByID(ctx context.Context, db *gorm.DB, id string) error
	DeleteByBudgetID(ctx context.Context, db *gorm.DB, budgetID string) error
	FindByBudgetID(ctx context.Context, db *gorm.DB, budgetID string) ([]AlternativeBudget, error)
}
