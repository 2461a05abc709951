package domain

import (
	"context"

	activitydomain "github.com/tripveda/tripveda/internal/activity/domain"
	cabdomain "github.com/tripveda/tripveda/internal/cab/domain"
	houseboatdomain "github.com/tripveda/tripveda/internal/houseboat/domain"
	packagedomain "github.com/tripveda/tripveda/internal/packages/domain"
	propertydomain "github.com/tripveda/tripveda/internal/property/domain"
)

// Catalog resolves line item references to live inventory. A lookup
// returns nil (no error) when the item is missing or inactive; the
// engine turns that into an ItemNotFoundError.
type Catalog interface {
	RoomType(ctx context.Context, ref string) (*propertydomain.RoomType, error)
	HolidayPackage(ctx context.Context, ref string) (*packagedomain.HolidayPackage, error)
	Activity(ctx context.Context, ref string) (*activitydomain.Activity, error)
	Cab(ctx context.Context, ref string) (*cabdomain.Cab, error)
	HouseBoat(ctx context.Context, ref string) (*houseboatdomain.HouseBoat, error)
}

type Service interface {
	Calculate(ctx context.Context, req Request) (*Breakdown, error)
}
