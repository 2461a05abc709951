package houseboat

import (
	"github.com/tripveda/tripveda/internal/houseboat/repository"
	"github.com/tripveda/tripveda/internal/houseboat/service"
	"go.uber.org/fx"
)

var Module = fx.Module("houseboat.service",
	fx.Provide(repository.NewRepository),
	fx.Provide(service.NewService),
)
