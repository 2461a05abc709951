package property

import (
	"github.com/tripveda/tripveda/internal/property/repository"
	"github.com/tripveda/tripveda/internal/property/service"
	"go.uber.org/fx"
)

var Module = fx.Module("property.service",
	fx.Provide(repository.NewRepository),
	fx.Provide(service.NewService),
)
