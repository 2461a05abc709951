package catalog

import (
	"context"

	"github.com/bwmarrin/snowflake"
	activitydomain "github.com/tripveda/tripveda/internal/activity/domain"
	cabdomain "github.com/tripveda/tripveda/internal/cab/domain"
	houseboatdomain "github.com/tripveda/tripveda/internal/houseboat/domain"
	packagedomain "github.com/tripveda/tripveda/internal/packages/domain"
	pricingdomain "github.com/tripveda/tripveda/internal/pricing/domain"
	propertydomain "github.com/tripveda/tripveda/internal/property/domain"
	"go.uber.org/fx"
)

type catalogParam struct {
	fx.In

	Properties propertydomain.Repository
	Packages   packagedomain.Repository
	Activities activitydomain.Repository
	Cabs       cabdomain.Repository
	HouseBoats houseboatdomain.Repository
}

// catalog adapts the per-vertical repositories into the single lookup
// surface the pricing engine consumes. Inactive inventory resolves to
// nil the same way missing inventory does.
type catalog struct {
	properties propertydomain.Repository
	packages   packagedomain.Repository
	activities activitydomain.Repository
	cabs       cabdomain.Repository
	houseboats houseboatdomain.Repository
}

func NewCatalog(p catalogParam) pricingdomain.Catalog {
	return &catalog{
		properties: p.Properties,
		packages:   p.Packages,
		activities: p.Activities,
		cabs:       p.Cabs,
		houseboats: p.HouseBoats,
	}
}

func (c *catalog) RoomType(ctx context.Context, ref string) (*propertydomain.RoomType, error) {
	id, ok := parseRef(ref)
	if !ok {
		return nil, nil
	}
	room, err := c.properties.FindRoomType(ctx, id)
	if err != nil {
		return nil, err
	}
	if room == nil || room.Property == nil || !room.Property.IsActive {
		return nil, nil
	}
	return room, nil
}

func (c *catalog) HolidayPackage(ctx context.Context, ref string) (*packagedomain.HolidayPackage, error) {
	id, ok := parseRef(ref)
	if !ok {
		return nil, nil
	}
	pkg, err := c.packages.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pkg == nil || !pkg.IsActive {
		return nil, nil
	}
	return pkg, nil
}

func (c *catalog) Activity(ctx context.Context, ref string) (*activitydomain.Activity, error) {
	id, ok := parseRef(ref)
	if !ok {
		return nil, nil
	}
	act, err := c.activities.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if act == nil || !act.IsActive {
		return nil, nil
	}
	return act, nil
}

func (c *catalog) Cab(ctx context.Context, ref string) (*cabdomain.Cab, error) {
	id, ok := parseRef(ref)
	if !ok {
		return nil, nil
	}
	cab, err := c.cabs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cab == nil || !cab.IsActive {
		return nil, nil
	}
	return cab, nil
}

func (c *catalog) HouseBoat(ctx context.Context, ref string) (*houseboatdomain.HouseBoat, error) {
	id, ok := parseRef(ref)
	if !ok {
		return nil, nil
	}
	boat, err := c.houseboats.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if boat == nil || !boat.IsActive {
		return nil, nil
	}
	return boat, nil
}

func parseRef(ref string) (snowflake.ID, bool) {
	id, err := snowflake.ParseString(ref)
	if err != nil {
		return 0, false
	}
	return id, true
}
