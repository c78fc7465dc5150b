package main

import (
	"github.com/orcaflow/orcaflow/internal/budget"
	"github.com/orcaflow/orcaflow/internal/company"
	"github.com/orcaflow/orcaflow/internal/config"
	"github.com/orcaflow/orcaflow/internal/document"
	"github.com/orcaflow/orcaflow/internal/migration"
	"github.com/orcaflow/orcaflow/internal/observability"
	"github.com/orcaflow/orcaflow/internal/providers/pdf"
	"github.com/orcaflow/orcaflow/internal/server"
	"github.com/orcaflow/orcaflow/pkg/db"
	"github.com/orcaflow/orcaflow/pkg/log"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		log.Module,
		db.Module,
		observability.Module,

		// Functional domains
		company.Module,
		budget.Module,
		document.Module,
		pdf.Module,

		migration.Module,
		server.Module,
	)
	app.Run()
}
