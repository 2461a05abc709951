package seed

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	activitydomain "github.com/tripveda/tripveda/internal/activity/domain"
	cabdomain "github.com/tripveda/tripveda/internal/cab/domain"
	coupondomain "github.com/tripveda/tripveda/internal/coupon/domain"
	discountdomain "github.com/tripveda/tripveda/internal/discount/domain"
	houseboatdomain "github.com/tripveda/tripveda/internal/houseboat/domain"
	packagedomain "github.com/tripveda/tripveda/internal/packages/domain"
	propertydomain "github.com/tripveda/tripveda/internal/property/domain"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// EnsureSampleCatalog seeds one bookable item of every product type so a
// fresh environment can run review and confirm flows end to end. Each
// entity is keyed by slug or code, so repeated startups are no-ops.
func EnsureSampleCatalog(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		discount, err := ensureSeasonalDiscount(ctx, tx, node)
		if err != nil {
			return err
		}
		if err := ensureLakesideProperty(ctx, tx, node, discount.ID); err != nil {
			return err
		}
		if err := ensureMunnarPackage(ctx, tx, node, discount.ID); err != nil {
			return err
		}
		if err := ensureKayakingActivity(ctx, tx, node); err != nil {
			return err
		}
		if err := ensureAirportCab(ctx, tx, node); err != nil {
			return err
		}
		if err := ensurePremiumHouseboat(ctx, tx, node); err != nil {
			return err
		}
		return ensureWelcomeCoupon(ctx, tx, node)
	})
}

func ensureSeasonalDiscount(ctx context.Context, tx *gorm.DB, node *snowflake.Node) (*discountdomain.Discount, error) {
	var existing discountdomain.Discount
	err := tx.WithContext(ctx).Where("name = ?", "Monsoon Season Offer").First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	d := discountdomain.Discount{
		ID:       node.Generate(),
		Name:     "Monsoon Season Offer",
		Type:     discountdomain.DiscountTypePercentage,
		Value:    decimal.NewFromInt(20),
		IsActive: true,
	}
	if err := tx.WithContext(ctx).Create(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func ensureLakesideProperty(ctx context.Context, tx *gorm.DB, node *snowflake.Node, discountID snowflake.ID) error {
	name := "Lakeside Heritage Resort"
	propertySlug := slug.Make(name)

	var existing propertydomain.Property
	err := tx.WithContext(ctx).Where("slug = ?", propertySlug).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	area := "Finishing Point"
	star := 4
	rating := decimal.NewFromFloat(4.3)
	property := propertydomain.Property{
		ID:           node.Generate(),
		Name:         name,
		Slug:         propertySlug,
		PropertyType: propertydomain.PropertyTypeResort,
		City:         "Alleppey",
		Area:         &area,
		State:        "Kerala",
		StarRating:   &star,
		ReviewRating: &rating,
		ReviewCount:  187,
		CheckInTime:  "14:00",
		CheckOutTime: "11:00",
		Description:  "Heritage-style rooms on the banks of the Punnamada lake.",
		DiscountID:   &discountID,
		GSTPercent:   decimal.NewFromInt(12),
		IsActive:     true,
	}
	if err := tx.WithContext(ctx).Create(&property).Error; err != nil {
		return err
	}

	bedrooms := 1
	rooms := []propertydomain.RoomType{
		{
			ID:            node.Generate(),
			PropertyID:    property.ID,
			Name:          "Deluxe Lake View",
			MaxGuests:     3,
			BedroomCount:  &bedrooms,
			HasBreakfast:  true,
			RefundPolicy:  "Free cancellation up to 48 hours before check-in.",
			BookingPolicy: "Valid government ID required at check-in.",
			BasePrice:     decimal.NewFromInt(4500),
			TotalUnits:    8,
		},
		{
			ID:            node.Generate(),
			PropertyID:    property.ID,
			Name:          "Entire Heritage Villa",
			MaxGuests:     8,
			HasBreakfast:  true,
			RefundPolicy:  "Non-refundable.",
			BookingPolicy: "Single booking holds the whole villa.",
			BasePrice:     decimal.NewFromInt(18000),
			TotalUnits:    1,
			IsEntirePlace: true,
		},
	}
	for i := range rooms {
		if err := tx.WithContext(ctx).Create(&rooms[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

func ensureMunnarPackage(ctx context.Context, tx *gorm.DB, node *snowflake.Node, discountID snowflake.ID) error {
	title := "Munnar Tea Trails Getaway"
	packageSlug := slug.Make(title)

	var existing packagedomain.HolidayPackage
	err := tx.WithContext(ctx).Where("slug = ?", packageSlug).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	pkg := packagedomain.HolidayPackage{
		ID:                 node.Generate(),
		Title:              title,
		Slug:               packageSlug,
		PrimaryLocation:    "Munnar",
		SecondaryLocations: datatypes.JSON([]byte(`["Thekkady","Alleppey"]`)),
		DurationDays:       4,
		DurationNights:     3,
		BasePrice:          decimal.NewFromInt(15999),
		DiscountID:         &discountID,
		ReviewCount:        64,
		ShortDescription:   "Tea estates, spice gardens, and a night on the backwaters.",
		Highlights:         datatypes.JSON([]byte(`["Eravikulam National Park","Spice plantation walk"]`)),
		TermsAndConditions: "Rates valid for travel within 90 days of booking.",
		IsActive:           true,
	}
	if err := tx.WithContext(ctx).Create(&pkg).Error; err != nil {
		return err
	}

	for _, ft := range []packagedomain.FeatureType{
		packagedomain.FeatureSightseeing,
		packagedomain.FeatureStay,
		packagedomain.FeatureTransport,
		packagedomain.FeatureMeals,
	} {
		feature := packagedomain.PackageFeature{
			ID:          node.Generate(),
			PackageID:   pkg.ID,
			FeatureType: ft,
			IsIncluded:  true,
		}
		if err := tx.WithContext(ctx).Create(&feature).Error; err != nil {
			return err
		}
	}
	return nil
}

func ensureKayakingActivity(ctx context.Context, tx *gorm.DB, node *snowflake.Node) error {
	title := "Sunrise Backwater Kayaking"
	activitySlug := slug.Make(title)

	var existing activitydomain.Activity
	err := tx.WithContext(ctx).Where("slug = ?", activitySlug).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	minAge := 12
	groupSize := 10
	activity := activitydomain.Activity{
		ID:               node.Generate(),
		Title:            title,
		Slug:             activitySlug,
		Location:         "Alleppey",
		ShortDescription: "Guided kayak run through village canals at first light.",
		Description:      "Three hour paddle covering narrow canals, paddy fields, and a toddy shop stop.",
		DurationDays:     1,
		BasePrice:        decimal.NewFromInt(1499),
		Difficulty:       activitydomain.DifficultyModerate,
		MinAge:           &minAge,
		GroupSize:        &groupSize,
		IsActive:         true,
	}
	if err := tx.WithContext(ctx).Create(&activity).Error; err != nil {
		return err
	}

	inclusions := []string{"Kayak and safety gear", "English speaking guide", "Light breakfast"}
	for _, text := range inclusions {
		inc := activitydomain.ActivityInclusion{
			ID:         node.Generate(),
			ActivityID: activity.ID,
			Text:       text,
			IsIncluded: true,
		}
		if err := tx.WithContext(ctx).Create(&inc).Error; err != nil {
			return err
		}
	}
	feature := activitydomain.ActivityFeature{
		ID:          node.Generate(),
		ActivityID:  activity.ID,
		FeatureType: activitydomain.FeatureMeals,
		IsIncluded:  true,
	}
	return tx.WithContext(ctx).Create(&feature).Error
}

func ensureAirportCab(ctx context.Context, tx *gorm.DB, node *snowflake.Node) error {
	title := "Innova Crysta Airport Transfer"

	var existing cabdomain.Cab
	err := tx.WithContext(ctx).Where("title = ?", title).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	var category cabdomain.CabCategory
	err = tx.WithContext(ctx).Where("name = ?", "SUV").First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		category = cabdomain.CabCategory{
			ID:       node.Generate(),
			Name:     "SUV",
			IsActive: true,
		}
		err = tx.WithContext(ctx).Create(&category).Error
	}
	if err != nil {
		return err
	}

	allowance := decimal.NewFromInt(500)
	cab := cabdomain.Cab{
		ID:              node.Generate(),
		CategoryID:      &category.ID,
		Title:           title,
		Capacity:        6,
		BasePrice:       decimal.NewFromInt(3500),
		LuggageCapacity: 4,
		FuelType:        cabdomain.FuelDiesel,
		IsAC:            true,
		PricePerKM:      decimal.NewFromInt(18),
		IncludedKMs:     80,
		ExtraKMFare:     decimal.NewFromInt(22),
		DriverAllowance: &allowance,
		IsActive:        true,
	}
	if err := tx.WithContext(ctx).Create(&cab).Error; err != nil {
		return err
	}

	inclusion := cabdomain.CabInclusion{
		ID:         node.Generate(),
		CabID:      cab.ID,
		Label:      "Parking Charges",
		Value:      "Included",
		IsIncluded: true,
	}
	return tx.WithContext(ctx).Create(&inclusion).Error
}

func ensurePremiumHouseboat(ctx context.Context, tx *gorm.DB, node *snowflake.Node) error {
	name := "Spice Route Premium Houseboat"
	boatSlug := slug.Make(name)

	var existing houseboatdomain.HouseBoat
	err := tx.WithContext(ctx).Where("slug = ?", boatSlug).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	boat := houseboatdomain.HouseBoat{
		ID:                node.Generate(),
		Name:              name,
		Slug:              boatSlug,
		Location:          "Alleppey",
		Description:       "Two bedroom premium boat with an upper deck and onboard chef.",
		BasePricePerNight: decimal.NewFromInt(9500),
		IsActive:          true,
	}
	if err := tx.WithContext(ctx).Create(&boat).Error; err != nil {
		return err
	}

	spec := houseboatdomain.HouseBoatSpecification{
		ID:                   node.Generate(),
		HouseBoatID:          boat.ID,
		Bedrooms:             2,
		Bathrooms:            2,
		MaxGuests:            8,
		ACType:               houseboatdomain.ACNightOnly,
		CruiseType:           houseboatdomain.OvernightCruise,
		ExtraGuestPriceAdult: decimal.NewFromInt(1500),
		ExtraGuestPriceChild: decimal.NewFromInt(750),
		FullTimeACPrice:      decimal.NewFromInt(2000),
	}
	return tx.WithContext(ctx).Create(&spec).Error
}

func ensureWelcomeCoupon(ctx context.Context, tx *gorm.DB, node *snowflake.Node) error {
	var existing coupondomain.Coupon
	err := tx.WithContext(ctx).Where("code = ?", "WELCOME500").First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	now := time.Now().UTC()
	coupon := coupondomain.Coupon{
		ID:             node.Generate(),
		Code:           "WELCOME500",
		DiscountAmount: decimal.NewFromInt(500),
		ValidFrom:      now.AddDate(0, 0, -1),
		ValidTo:        now.AddDate(1, 0, 0),
	}
	return tx.WithContext(ctx).Create(&coupon).Error
}
