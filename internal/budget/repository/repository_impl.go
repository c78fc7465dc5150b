package repository

import (
	"context"
	"errors"
	"slices"

	budgetdomain "github.com/orcaflow/orcaflow/internal/budget/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() budgetdomain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, budget *budgetdomain.Budget) error {
	return db.WithContext(ctx).Create(budget).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, budget *budgetdomain.Budget) error {
	return db.WithContext(ctx).Save(budget).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id string) error {
	return db.WithContext(ctx).Delete(&budgetdomain.Budget{}, "id = ?", id).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id string) (*budgetdomain.Budget, error) {
	var budget budgetdomain.Budget
	err := db.WithContext(ctx).First(&budget, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &budget, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]budgetdomain.Budget, error) {
	var budgets []budgetdomain.Budget
	if err := db.WithContext(ctx).Order("data_criacao DESC").Find(&budgets).Error; err != nil {
		return nil, err
	}
	return budgets, nil
}

// ReferencesCompany reports whether any budget names companyID as base or
// selected company. Selected ids live in a JSON column, so the membership
// check happens here rather than in SQL to stay portable across dialects.
func (r *repo) ReferencesCompany(ctx context.Context, db *gorm.DB, companyID string) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).
		Model(&budgetdomain.Budget{}).
		Where("empresa_base_id = ?", companyID).
		Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return true, nil
	}

	var budgets []budgetdomain.Budget
	if err := db.WithContext(ctx).
		Select("id", "empresas_selecionadas_ids").
		Find(&budgets).Error; err != nil {
		return false, err
	}
	for _, budget := range budgets {
		if slices.Contains(budget.EmpresasSelecionadasIDs, companyID) {
			return true, nil
		}
	}
	return false, nil
}
