package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	activitydomain "github.com/tripveda/tripveda/internal/activity/domain"
	cabdomain "github.com/tripveda/tripveda/internal/cab/domain"
	"github.com/tripveda/tripveda/internal/clock"
	"github.com/tripveda/tripveda/internal/config"
	coupondomain "github.com/tripveda/tripveda/internal/coupon/domain"
	discountdomain "github.com/tripveda/tripveda/internal/discount/domain"
	houseboatdomain "github.com/tripveda/tripveda/internal/houseboat/domain"
	packagedomain "github.com/tripveda/tripveda/internal/packages/domain"
	pricingdomain "github.com/tripveda/tripveda/internal/pricing/domain"
	propertydomain "github.com/tripveda/tripveda/internal/property/domain"
	"go.uber.org/zap"
)

type stubCatalog struct {
	rooms      map[string]*propertydomain.RoomType
	packages   map[string]*packagedomain.HolidayPackage
	activities map[string]*activitydomain.Activity
	cabs       map[string]*cabdomain.Cab
	houseboats map[string]*houseboatdomain.HouseBoat
}

func (s *stubCatalog) RoomType(_ context.Context, ref string) (*propertydomain.RoomType, error) {
	return s.rooms[ref], nil
}

func (s *stubCatalog) HolidayPackage(_ context.Context, ref string) (*packagedomain.HolidayPackage, error) {
	return s.packages[ref], nil
}

func (s *stubCatalog) Activity(_ context.Context, ref string) (*activitydomain.Activity, error) {
	return s.activities[ref], nil
}

func (s *stubCatalog) Cab(_ context.Context, ref string) (*cabdomain.Cab, error) {
	return s.cabs[ref], nil
}

func (s *stubCatalog) HouseBoat(_ context.Context, ref string) (*houseboatdomain.HouseBoat, error) {
	return s.houseboats[ref], nil
}

type stubResolver struct {
	coupons map[string]*coupondomain.Coupon
}

func (s *stubResolver) Resolve(_ context.Context, code string, today time.Time) (*coupondomain.Coupon, error) {
	c := s.coupons[code]
	if c == nil || !c.ValidOn(today) {
		return nil, nil
	}
	return c, nil
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newEngine(catalog pricingdomain.Catalog, resolver coupondomain.Resolver, now time.Time) pricingdomain.Service {
	if resolver == nil {
		resolver = &stubResolver{coupons: map[string]*coupondomain.Coupon{}}
	}
	return &service{
		log:      zap.NewNop(),
		catalog:  catalog,
		resolver: resolver,
		clock:    clock.NewFakeClock(now),
		rules:    &config.PricingRulesHolder{},
	}
}

func percentDiscount(value int64) *discountdomain.Discount {
	return &discountdomain.Discount{
		Type:     discountdomain.DiscountTypePercentage,
		Value:    decimal.NewFromInt(value),
		IsActive: true,
	}
}

func requireEqualDecimal(t *testing.T, want int64, got decimal.Decimal) {
	t.Helper()
	require.True(t, got.Equal(decimal.NewFromInt(want)), "expected %d, got %s", want, got)
}

func TestCalculateStayScenario(t *testing.T) {
	gst, _ := decimal.NewFromString("18.00")
	catalog := &stubCatalog{rooms: map[string]*propertydomain.RoomType{
		"101": {
			Name:      "Deluxe Room",
			BasePrice: decimal.NewFromInt(1000),
			Property: &propertydomain.Property{
				Name:       "Lakeview Hotel",
				City:       "Alleppey",
				State:      "Kerala",
				GSTPercent: gst,
				IsActive:   true,
			},
		},
	}}
	engine := newEngine(catalog, nil, day(2026, time.June, 1))

	breakdown, err := engine.Calculate(context.Background(), pricingdomain.Request{
		BookingType: pricingdomain.BookingStay,
		Items:       []pricingdomain.LineItem{{Ref: "101", Quantity: 1}},
		CheckIn:     day(2026, time.June, 10),
		CheckOut:    day(2026, time.June, 12),
	})
	require.NoError(t, err)

	requireEqualDecimal(t, 2000, breakdown.BaseTotal)
	requireEqualDecimal(t, 360, breakdown.Taxes)
	requireEqualDecimal(t, 2360, breakdown.FinalTotal)
	require.Len(t, breakdown.Items, 1)
	require.Equal(t, 2, breakdown.Items[0].Nights)
	require.Equal(t, "Lakeview Hotel", breakdown.Items[0].SubName)
	require.Equal(t, "Alleppey, Kerala", breakdown.Items[0].Location)
	requireEqualDecimal(t, 1180, *breakdown.Items[0].PricePerUnit)
}

func TestCalculatePackageScenario(t *testing.T) {
	catalog := &stubCatalog{packages: map[string]*packagedomain.HolidayPackage{
		"7": {
			Title:           "Kerala Explorer",
			PrimaryLocation: "Munnar",
			DurationDays:    5,
			DurationNights:  4,
			BasePrice:       decimal.NewFromInt(10000),
			Discount:        percentDiscount(20),
			IsActive:        true,
		},
	}}
	engine := newEngine(catalog, nil, day(2026, time.June, 1))

	breakdown, err := engine.Calculate(context.Background(), pricingdomain.Request{
		BookingType: pricingdomain.BookingPackage,
		Items:       []pricingdomain.LineItem{{Ref: "7", Adults: 2, Children: 1}},
		CheckIn:     day(2026, time.June, 10),
		CheckOut:    day(2026, time.June, 14),
	})
	require.NoError(t, err)

	requireEqualDecimal(t, 8000, *breakdown.Items[0].PricePerPerson)
	requireEqualDecimal(t, 24000, breakdown.BaseTotal)
	requireEqualDecimal(t, 4320, breakdown.Taxes)
	requireEqualDecimal(t, 28320, breakdown.FinalTotal)
}

func TestCalculateHouseBoatExtraGuestScenario(t *testing.T) {
	catalog := &stubCatalog{houseboats: map[string]*houseboatdomain.HouseBoat{
		"9": {
			Name:              "Backwater Pearl",
			Location:          "Alleppey",
			BasePricePerNight: decimal.NewFromInt(5000),
			IsActive:          true,
			Specification: &houseboatdomain.HouseBoatSpecification{
				Bedrooms:             2,
				ExtraGuestPriceAdult: decimal.NewFromInt(500),
				ExtraGuestPriceChild: decimal.NewFromInt(300),
			},
		},
	}}
	engine := newEngine(catalog, nil, day(2026, time.June, 1))

	breakdown, err := engine.Calculate(context.Background(), pricingdomain.Request{
		BookingType: pricingdomain.BookingHouseBoat,
		Items:       []pricingdomain.LineItem{{Ref: "9", Quantity: 1, Adults: 5}},
		CheckIn:     day(2026, time.June, 10),
		CheckOut:    day(2026, time.June, 12),
	})
	require.NoError(t, err)

	requireEqualDecimal(t, 500, *breakdown.Items[0].ExtraGuestTotal)
	requireEqualDecimal(t, 5500, *breakdown.Items[0].PricePerUnit)
	requireEqualDecimal(t, 11000, breakdown.BaseTotal)
	requireEqualDecimal(t, 1980, breakdown.Taxes)
	requireEqualDecimal(t, 12980, breakdown.FinalTotal)
}

func TestCalculateHouseBoatFullTimeAC(t *testing.T) {
	catalog := &stubCatalog{houseboats: map[string]*houseboatdomain.HouseBoat{
		"9": {
			Name:              "Backwater Pearl",
			BasePricePerNight: decimal.NewFromInt(5000),
			IsActive:          true,
			Specification: &houseboatdomain.HouseBoatSpecification{
				Bedrooms:        2,
				FullTimeACPrice: decimal.NewFromInt(1000),
			},
		},
	}}
	engine := newEngine(catalog, nil, day(2026, time.June, 1))

	breakdown, err := engine.Calculate(context.Background(), pricingdomain.Request{
		BookingType: pricingdomain.BookingHouseBoat,
		Items: []pricingdomain.LineItem{{
			Ref:       "9",
			Quantity:  1,
			Adults:    2,
			HouseBoat: &pricingdomain.HouseBoatOptions{FullTimeACOpted: true},
		}},
		CheckIn:  day(2026, time.June, 10),
		CheckOut: day(2026, time.June, 11),
	})
	require.NoError(t, err)

	requireEqualDecimal(t, 1000, *breakdown.Items[0].ACCharge)
	requireEqualDecimal(t, 6000, breakdown.BaseTotal)
	requireEqualDecimal(t, 1080, breakdown.Taxes)
}

func TestCalculateCabDefaultPartPayment(t *testing.T) {
	catalog := &stubCatalog{cabs: map[string]*cabdomain.Cab{
		"3": {
			Title:     "Dzire, Etios or Similar",
			BasePrice: decimal.NewFromInt(3500),
			IsActive:  true,
			Category:  &cabdomain.CabCategory{Name: "Sedan"},
		},
	}}
	engine := newEngine(catalog, nil, day(2026, time.June, 1))

	breakdown, err := engine.Calculate(context.Background(), pricingdomain.Request{
		BookingType: pricingdomain.BookingCab,
		Items: []pricingdomain.LineItem{{
			Ref:      "3",
			Quantity: 1,
			Cab:      &pricingdomain.CabOptions{PickupLocation: "Kochi Airport"},
		}},
		CheckIn:  day(2026, time.June, 10),
		CheckOut: day(2026, time.June, 10),
	})
	require.NoError(t, err)

	item := breakdown.Items[0]
	require.Equal(t, 1, item.Nights)
	requireEqualDecimal(t, 3500, breakdown.BaseTotal)
	requireEqualDecimal(t, 630, breakdown.Taxes)
	require.Equal(t, "Kochi Airport", item.Location)

	require.Len(t, item.PaymentOptions, 2)
	require.Equal(t, cabdomain.PayNow, item.PaymentOptions[0].OptionType)
	requireEqualDecimal(t, 4130, item.PaymentOptions[0].Amount)
	require.Equal(t, cabdomain.PayLater, item.PaymentOptions[1].OptionType)
	requireEqualDecimal(t, 413, item.PaymentOptions[1].Amount)
}

func TestCalculateActivityAttachesInclusions(t *testing.T) {
	catalog := &stubCatalog{activities: map[string]*activitydomain.Activity{
		"5": {
			Title:      "Periyar Trek",
			Location:   "Thekkady",
			Difficulty: activitydomain.DifficultyModerate,
			BasePrice:  decimal.NewFromInt(2000),
			IsActive:   true,
			Features: []activitydomain.ActivityFeature{
				{FeatureType: activitydomain.FeatureMeals, IsIncluded: true},
			},
			Inclusions: []activitydomain.ActivityInclusion{
				{Text: "Forest permit", IsIncluded: true},
				{Text: "Camera fee", IsIncluded: false},
			},
		},
	}}
	engine := newEngine(catalog, nil, day(2026, time.June, 1))

	breakdown, err := engine.Calculate(context.Background(), pricingdomain.Request{
		BookingType: pricingdomain.BookingActivity,
		Items:       []pricingdomain.LineItem{{Ref: "5", Adults: 2}},
		CheckIn:     day(2026, time.June, 10),
		CheckOut:    day(2026, time.June, 10),
	})
	require.NoError(t, err)

	requireEqualDecimal(t, 4000, breakdown.BaseTotal)
	requireEqualDecimal(t, 720, breakdown.Taxes)
	require.Len(t, breakdown.Items[0].Inclusions, 3)
	require.Equal(t, "moderate", breakdown.Items[0].SubName)
}

func TestCalculateSameDayFloorsToOneNight(t *testing.T) {
	gst, _ := decimal.NewFromString("12.00")
	catalog := &stubCatalog{rooms: map[string]*propertydomain.RoomType{
		"101": {
			Name:      "Standard",
			BasePrice: decimal.NewFromInt(1000),
			Property:  &propertydomain.Property{GSTPercent: gst, IsActive: true},
		},
	}}
	engine := newEngine(catalog, nil, day(2026, time.June, 1))

	breakdown, err := engine.Calculate(context.Background(), pricingdomain.Request{
		BookingType: pricingdomain.BookingStay,
		Items:       []pricingdomain.LineItem{{Ref: "101"}},
		CheckIn:     day(2026, time.June, 10),
		CheckOut:    day(2026, time.June, 10),
	})
	require.NoError(t, err)
	require.Equal(t, 1, breakdown.Items[0].Nights)
	requireEqualDecimal(t, 1000, breakdown.BaseTotal)
}

func TestCalculateCouponCappedAtGrossTotal(t *testing.T) {
	catalog := &stubCatalog{packages: map[string]*packagedomain.HolidayPackage{
		"7": {
			Title:     "Weekend Escape",
			BasePrice: decimal.NewFromInt(1000),
			IsActive:  true,
		},
	}}
	resolver := &stubResolver{coupons: map[string]*coupondomain.Coupon{
		"MEGA": {
			Code:           "MEGA",
			DiscountAmount: decimal.NewFromInt(100000),
			ValidFrom:      day(2026, time.June, 1),
			ValidTo:        day(2026, time.June, 30),
		},
	}}
	engine := newEngine(catalog, resolver, day(2026, time.June, 15))

	breakdown, err := engine.Calculate(context.Background(), pricingdomain.Request{
		BookingType: pricingdomain.BookingPackage,
		Items:       []pricingdomain.LineItem{{Ref: "7", Adults: 1}},
		CheckIn:     day(2026, time.June, 20),
		CheckOut:    day(2026, time.June, 21),
		CouponCode:  "MEGA",
	})
	require.NoError(t, err)

	require.True(t, breakdown.CouponDiscount.Equal(breakdown.GrossTotal))
	require.NotNil(t, breakdown.CouponApplied)
	require.True(t, breakdown.FinalTotal.IsZero())
}

func TestCalculateInvalidCouponSilentlySkipped(t *testing.T) {
	catalog := &stubCatalog{packages: map[string]*packagedomain.HolidayPackage{
		"7": {Title: "Weekend Escape", BasePrice: decimal.NewFromInt(1000), IsActive: true},
	}}
	engine := newEngine(catalog, &stubResolver{coupons: map[string]*coupondomain.Coupon{}}, day(2026, time.June, 15))

	breakdown, err := engine.Calculate(context.Background(), pricingdomain.Request{
		BookingType: pricingdomain.BookingPackage,
		Items:       []pricingdomain.LineItem{{Ref: "7", Adults: 1}},
		CheckIn:     day(2026, time.June, 20),
		CheckOut:    day(2026, time.June, 21),
		CouponCode:  "BOGUS",
	})
	require.NoError(t, err)
	require.Nil(t, breakdown.CouponApplied)
	require.True(t, breakdown.CouponDiscount.IsZero())
	require.True(t, breakdown.FinalTotal.Equal(breakdown.GrossTotal))
}

func TestCalculateInsuranceAddedAfterCoupon(t *testing.T) {
	catalog := &stubCatalog{packages: map[string]*packagedomain.HolidayPackage{
		"7": {Title: "Weekend Escape", BasePrice: decimal.NewFromInt(1000), IsActive: true},
	}}
	resolver := &stubResolver{coupons: map[string]*coupondomain.Coupon{
		"MEGA": {
			Code:           "MEGA",
			DiscountAmount: decimal.NewFromInt(100000),
			ValidFrom:      day(2026, time.June, 1),
			ValidTo:        day(2026, time.June, 30),
		},
	}}
	engine := newEngine(catalog, resolver, day(2026, time.June, 15))

	breakdown, err := engine.Calculate(context.Background(), pricingdomain.Request{
		BookingType:    pricingdomain.BookingPackage,
		Items:          []pricingdomain.LineItem{{Ref: "7", Adults: 1}},
		CheckIn:        day(2026, time.June, 20),
		CheckOut:       day(2026, time.June, 21),
		CouponCode:     "MEGA",
		InsuranceOpted: true,
	})
	require.NoError(t, err)

	// Coupon wipes the gross total, leaving only the insurance fee.
	requireEqualDecimal(t, 600, breakdown.InsuranceFee)
	require.True(t, breakdown.FinalTotal.Equal(breakdown.InsuranceFee))
}

func TestCalculateAdditivity(t *testing.T) {
	catalog := &stubCatalog{packages: map[string]*packagedomain.HolidayPackage{
		"7": {Title: "Weekend Escape", BasePrice: decimal.NewFromInt(7321), Discount: percentDiscount(13), IsActive: true},
	}}
	resolver := &stubResolver{coupons: map[string]*coupondomain.Coupon{
		"SAVE": {
			Code:           "SAVE",
			DiscountAmount: decimal.NewFromInt(750),
			ValidFrom:      day(2026, time.June, 1),
			ValidTo:        day(2026, time.June, 30),
		},
	}}
	engine := newEngine(catalog, resolver, day(2026, time.June, 15))

	breakdown, err := engine.Calculate(context.Background(), pricingdomain.Request{
		BookingType:    pricingdomain.BookingPackage,
		Items:          []pricingdomain.LineItem{{Ref: "7", Adults: 3, Children: 2}},
		CheckIn:        day(2026, time.June, 20),
		CheckOut:       day(2026, time.June, 23),
		CouponCode:     "SAVE",
		InsuranceOpted: true,
	})
	require.NoError(t, err)

	reassembled := breakdown.BaseTotal.
		Add(breakdown.Taxes).
		Sub(breakdown.CouponDiscount).
		Add(breakdown.InsuranceFee)
	diff := breakdown.FinalTotal.Sub(reassembled).Abs()
	require.True(t, diff.LessThanOrEqual(decimal.NewFromFloat(0.01)), "additivity off by %s", diff)
}

func TestCalculateUnknownBookingType(t *testing.T) {
	engine := newEngine(&stubCatalog{}, nil, day(2026, time.June, 1))

	_, err := engine.Calculate(context.Background(), pricingdomain.Request{
		BookingType: pricingdomain.BookingType("spa"),
		Items:       []pricingdomain.LineItem{{Ref: "1"}},
	})
	require.ErrorIs(t, err, pricingdomain.ErrUnknownBookingType)
}

func TestCalculateMissingItemAbortsCall(t *testing.T) {
	catalog := &stubCatalog{packages: map[string]*packagedomain.HolidayPackage{
		"7": {Title: "Weekend Escape", BasePrice: decimal.NewFromInt(1000), IsActive: true},
	}}
	engine := newEngine(catalog, nil, day(2026, time.June, 1))

	_, err := engine.Calculate(context.Background(), pricingdomain.Request{
		BookingType: pricingdomain.BookingPackage,
		Items: []pricingdomain.LineItem{
			{Ref: "7", Adults: 1},
			{Ref: "404", Adults: 1},
		},
		CheckIn:  day(2026, time.June, 20),
		CheckOut: day(2026, time.June, 21),
	})
	require.ErrorIs(t, err, pricingdomain.ErrItemNotFound)

	var notFound *pricingdomain.ItemNotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "404", notFound.Ref)
}

func TestCalculateInactiveItemNotFound(t *testing.T) {
	catalog := &stubCatalog{packages: map[string]*packagedomain.HolidayPackage{}}
	engine := newEngine(catalog, nil, day(2026, time.June, 1))

	_, err := engine.Calculate(context.Background(), pricingdomain.Request{
		BookingType: pricingdomain.BookingPackage,
		Items:       []pricingdomain.LineItem{{Ref: "7", Adults: 1}},
		CheckIn:     day(2026, time.June, 20),
		CheckOut:    day(2026, time.June, 21),
	})
	require.ErrorIs(t, err, pricingdomain.ErrItemNotFound)
}

func TestCalculateNoItems(t *testing.T) {
	engine := newEngine(&stubCatalog{}, nil, day(2026, time.June, 1))

	_, err := engine.Calculate(context.Background(), pricingdomain.Request{
		BookingType: pricingdomain.BookingStay,
	})
	require.ErrorIs(t, err, pricingdomain.ErrNoItems)
}

func TestNightsFlooring(t *testing.T) {
	require.Equal(t, 1, pricingdomain.Nights(day(2026, time.June, 10), day(2026, time.June, 10)))
	require.Equal(t, 1, pricingdomain.Nights(day(2026, time.June, 10), day(2026, time.June, 9)))
	require.Equal(t, 3, pricingdomain.Nights(day(2026, time.June, 10), day(2026, time.June, 13)))
}

func TestCalculateStayQuantityMultiplies(t *testing.T) {
	gst, _ := decimal.NewFromString("12.00")
	catalog := &stubCatalog{rooms: map[string]*propertydomain.RoomType{
		"101": {
			Name:      "Standard",
			BasePrice: decimal.NewFromInt(1000),
			Property:  &propertydomain.Property{GSTPercent: gst, IsActive: true},
		},
	}}
	engine := newEngine(catalog, nil, day(2026, time.June, 1))

	breakdown, err := engine.Calculate(context.Background(), pricingdomain.Request{
		BookingType: pricingdomain.BookingStay,
		Items:       []pricingdomain.LineItem{{Ref: "101", Quantity: 2}},
		CheckIn:     day(2026, time.June, 10),
		CheckOut:    day(2026, time.June, 13),
	})
	require.NoError(t, err)

	// 1000 * 3 nights * 2 rooms
	requireEqualDecimal(t, 6000, breakdown.BaseTotal)
	requireEqualDecimal(t, 720, breakdown.Taxes)
}
