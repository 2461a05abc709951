package pricing

import (
	"github.com/tripveda/tripveda/internal/pricing/catalog"
	"github.com/tripveda/tripveda/internal/pricing/service"
	"go.uber.org/fx"
)

var Module = fx.Module("pricing.service",
	fx.Provide(catalog.NewCatalog),
	fx.Provide(service.NewService),
)
