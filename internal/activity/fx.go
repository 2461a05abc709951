package activity

import (
	"github.com/tripveda/tripveda/internal/activity/repository"
	"github.com/tripveda/tripveda/internal/activity/service"
	"go.uber.org/fx"
)

var Module = fx.Module("activity.service",
	fx.Provide(repository.NewRepository),
	fx.Provide(service.NewService),
)
