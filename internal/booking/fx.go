package booking

import (
	"github.com/tripveda/tripveda/internal/booking/repository"
	"github.com/tripveda/tripveda/internal/booking/service"
	"go.uber.org/fx"
)

var Module = fx.Module("booking.service",
	fx.Provide(repository.NewRepository),
	fx.Provide(service.NewService),
)
