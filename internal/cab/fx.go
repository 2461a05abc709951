package cab

import (
	"github.com/tripveda/tripveda/internal/cab/repository"
	"github.com/tripveda/tripveda/internal/cab/service"
	"go.uber.org/fx"
)

var Module = fx.Module("cab.service",
	fx.Provide(repository.NewRepository),
	fx.Provide(service.NewService),
)
