package migration

import (
	"errors"
	"fmt"

	budgetdomain "github.com/orcaflow/orcaflow/internal/budget/domain"
	companydomain "github.com/orcaflow/orcaflow/internal/company/domain"
	"gorm.io/gorm"
)

// This migration package ensures OrcaFlow is fully usable
// out of the box for local and self-hosted environments.
// All core quotation tables are created automatically on startup.
func RunMigrations(db *gorm.DB) error {
	if db == nil {
		return errors.New("migration database handle is required")
	}

	if err := db.AutoMigrate(
		&companydomain.Company{},
		&budgetdomain.Budget{},
		&budgetdomain.AlternativeBudget{},
	); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}
