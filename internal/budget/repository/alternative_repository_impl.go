package repository

import (
	"context"

	budgetdomain "github.com/orcaflow/orcaflow/internal/budget/domain"
	pkgdb "github.com/orcaflow/orcaflow/pkg/db"
	"gorm.io/gorm"
)

type alternativeRepo struct{}

func ProvideAlternative() budgetdomain.AlternativeRepository {
	return &alternativeRepo{}
}

func (r *alternativeRepo) Insert(ctx context.Context, db *gorm.DB, alt *budgetdomain.AlternativeBudget) error {
	if err := db.WithContext(ctx).Create(alt).Error; err != nil {
		if pkgdb.IsDuplicateKeyErr(err) {
			return budgetdomain.ErrAlternativeExists
		}
		return err
	}
	return nil
}

func (r *alternativeRepo) Update(ctx context.Context, db *gorm.DB, alt *budgetdomain.AlternativeBudget) error {
	return db.WithContext(ctx).Save(alt).Error
}

func (r *alternativeRepo) DeleteByID(ctx context.Context, db *gorm.DB, id string) error {
	return db.WithContext(ctx).Delete(&budgetdomain.AlternativeBudget{}, "id = ?", id).Error
}

func (r *alternativeRepo) DeleteByBudgetID(ctx context.Context, db *gorm.DB, budgetID string) error {
	return db.WithContext(ctx).Delete(&budgetdomain.AlternativeBudget{}, "orcamento_id = ?", budgetID).Error
}

func (r *alternativeRepo) FindByBudgetID(ctx context.Context, db *gorm.DB, budgetID string) ([]budgetdomain.AlternativeBudget, error) {
	var alts []budgetdomain.AlternativeBudget
	if err := db.WithContext(ctx).
		Where("orcamento_id = ?", budgetID).
		Order("created_at ASC").
		Find(&alts).Error; err != nil {
		return nil, err
	}
	return alts, nil
}
