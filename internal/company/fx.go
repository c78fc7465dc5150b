package company

import (
	"github.com/orcaflow/orcaflow/internal/company/repository"
	"github.com/orcaflow/orcaflow/internal/company/service"
	"go.uber.org/fx"
)

var Module = fx.Module("company.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.NewService),
)
