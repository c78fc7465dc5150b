package repository

import (
	"context"
	"errors"

	companydomain "github.com/orcaflow/orcaflow/internal/company/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() companydomain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, company *companydomain.Company) error {
	return db.WithContext(ctx).Create(company).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, company *companydomain.Company) error {
	return db.WithContext(ctx).Save(company).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id string) error {
	return db.WithContext(ctx).Delete(&companydomain.Company{}, "id = ?", id).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id string) (*companydomain.Company, error) {
	var company companydomain.Company
	err := db.WithContext(ctx).First(&company, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]companydomain.Company, error) {
	var companies []companydomain.Company
	if err := db.WithContext(ctx).Order("nome ASC").Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}
