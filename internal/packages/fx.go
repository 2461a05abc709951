package packages

import (
	"github.com/tripveda/tripveda/internal/packages/repository"
	"github.com/tripveda/tripveda/internal/packages/service"
	"go.uber.org/fx"
)

var Module = fx.Module("packages.service",
	fx.Provide(repository.NewRepository),
	fx.Provide(service.NewService),
)
