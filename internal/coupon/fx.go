package coupon

import (
	"github.com/tripveda/tripveda/internal/coupon/repository"
	"github.com/tripveda/tripveda/internal/coupon/service"
	"go.uber.org/fx"
)

var Module = fx.Module("coupon.service",
	fx.Provide(repository.NewRepository),
	fx.Provide(service.NewResolver),
	fx.Provide(service.NewService),
)
