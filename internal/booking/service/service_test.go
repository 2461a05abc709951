package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	activitydomain "github.com/tripveda/tripveda/internal/activity/domain"
	bookingdomain "github.com/tripveda/tripveda/internal/booking/domain"
	cabdomain "github.com/tripveda/tripveda/internal/cab/domain"
	"github.com/tripveda/tripveda/internal/clock"
	coupondomain "github.com/tripveda/tripveda/internal/coupon/domain"
	houseboatdomain "github.com/tripveda/tripveda/internal/houseboat/domain"
	packagedomain "github.com/tripveda/tripveda/internal/packages/domain"
	pricingdomain "github.com/tripveda/tripveda/internal/pricing/domain"
	propertydomain "github.com/tripveda/tripveda/internal/property/domain"
	"github.com/tripveda/tripveda/pkg/db/pagination"
	"go.uber.org/zap"
)

type stubBookingRepo struct {
	bookings map[snowflake.ID]*bookingdomain.Booking
	overlap  bool

	lastListStatuses []bookingdomain.Status
	savedTravellers  []bookingdomain.Traveller
}

func newStubBookingRepo() *stubBookingRepo {
	return &stubBookingRepo{bookings: map[snowflake.ID]*bookingdomain.Booking{}}
}

func (s *stubBookingRepo) Create(_ context.Context, b *bookingdomain.Booking) error {
	s.bookings[b.ID] = b
	return nil
}

func (s *stubBookingRepo) Save(_ context.Context, b *bookingdomain.Booking) error {
	s.bookings[b.ID] = b
	return nil
}

func (s *stubBookingRepo) SaveWithTravellers(_ context.Context, b *bookingdomain.Booking, travellers []bookingdomain.Traveller) error {
	s.bookings[b.ID] = b
	s.savedTravellers = travellers
	return nil
}

func (s *stubBookingRepo) FindByID(_ context.Context, id snowflake.ID, userID string) (*bookingdomain.Booking, error) {
	b := s.bookings[id]
	if b == nil || b.UserID != userID {
		return nil, nil
	}
	return b, nil
}

func (s *stubBookingRepo) List(_ context.Context, userID string, statuses []bookingdomain.Status, _ pagination.Pagination) ([]*bookingdomain.Booking, error) {
	s.lastListStatuses = statuses
	var out []*bookingdomain.Booking
	for _, b := range s.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *stubBookingRepo) HasOverlappingStay(_ context.Context, _ snowflake.ID, _, _ time.Time) (bool, error) {
	return s.overlap, nil
}

type stubEngine struct {
	lastRequest pricingdomain.Request
	breakdown   *pricingdomain.Breakdown
	err         error
}

func (s *stubEngine) Calculate(_ context.Context, req pricingdomain.Request) (*pricingdomain.Breakdown, error) {
	s.lastRequest = req
	if s.err != nil {
		return nil, s.err
	}
	if s.breakdown != nil {
		return s.breakdown, nil
	}
	return &pricingdomain.Breakdown{
		BaseTotal:  decimal.NewFromInt(1000),
		Taxes:      decimal.NewFromInt(180),
		GrossTotal: decimal.NewFromInt(1180),
		FinalTotal: decimal.NewFromInt(1180),
	}, nil
}

type fullStubCatalog struct {
	room *propertydomain.RoomType
}

func (s *fullStubCatalog) RoomType(_ context.Context, _ string) (*propertydomain.RoomType, error) {
	return s.room, nil
}

func (s *fullStubCatalog) HolidayPackage(context.Context, string) (*packagedomain.HolidayPackage, error) {
	return nil, nil
}

func (s *fullStubCatalog) Activity(context.Context, string) (*activitydomain.Activity, error) {
	return nil, nil
}

func (s *fullStubCatalog) Cab(context.Context, string) (*cabdomain.Cab, error) { return nil, nil }

func (s *fullStubCatalog) HouseBoat(context.Context, string) (*houseboatdomain.HouseBoat, error) {
	return nil, nil
}

type stubCouponRepo struct {
	byCode map[string]*coupondomain.Coupon
	usages []*coupondomain.CouponUsage
}

func (s *stubCouponRepo) FindByCode(_ context.Context, code string) (*coupondomain.Coupon, error) {
	return s.byCode[code], nil
}

func (s *stubCouponRepo) FindByID(_ context.Context, id snowflake.ID) (*coupondomain.Coupon, error) {
	for _, c := range s.byCode {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (s *stubCouponRepo) List(context.Context) ([]coupondomain.Coupon, error) { return nil, nil }

func (s *stubCouponRepo) Create(context.Context, *coupondomain.Coupon) error { return nil }

func (s *stubCouponRepo) RecordUsage(_ context.Context, usage *coupondomain.CouponUsage) error {
	s.usages = append(s.usages, usage)
	return nil
}

func newTestService(t *testing.T, repo bookingdomain.Repository, engine pricingdomain.Service, catalog pricingdomain.Catalog, coupons coupondomain.Repository) *service {
	t.Helper()
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	if coupons == nil {
		coupons = &stubCouponRepo{byCode: map[string]*coupondomain.Coupon{}}
	}
	return &service{
		log:     zap.NewNop(),
		genID:   node,
		repo:    repo,
		engine:  engine,
		catalog: catalog,
		coupons: coupons,
		clock:   clock.NewFakeClock(time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)),
	}
}

func TestReviewCreatesDraftWithSnapshot(t *testing.T) {
	repo := newStubBookingRepo()
	engine := &stubEngine{}
	svc := newTestService(t, repo, engine, &fullStubCatalog{}, nil)

	resp, err := svc.Review(context.Background(), bookingdomain.ReviewRequest{
		UserID:      "user-1",
		BookingType: pricingdomain.BookingPackage,
		Items:       []bookingdomain.ReviewItem{{PackageID: "7", Adults: 2}},
		CheckIn:     "2026-06-10",
		CheckOut:    "2026-06-14",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.BookingID)
	require.Equal(t, "2026-06-10", resp.CheckIn)

	id, err := snowflake.ParseString(resp.BookingID)
	require.NoError(t, err)
	stored := repo.bookings[id]
	require.NotNil(t, stored)
	require.Equal(t, bookingdomain.StatusDraft, stored.Status)
	require.True(t, stored.TotalAmount.Equal(decimal.NewFromInt(1180)))
	require.NotEmpty(t, stored.PricingBreakdown)
	require.Len(t, stored.Items, 1)
	require.NotNil(t, stored.Items[0].PackageID)

	require.Equal(t, pricingdomain.BookingPackage, engine.lastRequest.BookingType)
	require.Equal(t, "7", engine.lastRequest.Items[0].Ref)
}

func TestReviewRequiresUser(t *testing.T) {
	svc := newTestService(t, newStubBookingRepo(), &stubEngine{}, &fullStubCatalog{}, nil)

	_, err := svc.Review(context.Background(), bookingdomain.ReviewRequest{
		BookingType: pricingdomain.BookingPackage,
		Items:       []bookingdomain.ReviewItem{{PackageID: "7"}},
		CheckIn:     "2026-06-10",
		CheckOut:    "2026-06-14",
	})
	require.ErrorIs(t, err, bookingdomain.ErrMissingUser)
}

func TestReviewStayDateOrdering(t *testing.T) {
	svc := newTestService(t, newStubBookingRepo(), &stubEngine{}, &fullStubCatalog{}, nil)

	_, err := svc.Review(context.Background(), bookingdomain.ReviewRequest{
		UserID:      "user-1",
		BookingType: pricingdomain.BookingStay,
		PropertyID:  "1",
		Items:       []bookingdomain.ReviewItem{{RoomTypeID: "2", Adults: 2}},
		CheckIn:     "2026-06-10",
		CheckOut:    "2026-06-10",
	})
	require.ErrorIs(t, err, bookingdomain.ErrValidation)
}

func TestReviewStayRequiresProperty(t *testing.T) {
	svc := newTestService(t, newStubBookingRepo(), &stubEngine{}, &fullStubCatalog{}, nil)

	_, err := svc.Review(context.Background(), bookingdomain.ReviewRequest{
		UserID:      "user-1",
		BookingType: pricingdomain.BookingStay,
		Items:       []bookingdomain.ReviewItem{{RoomTypeID: "2", Adults: 2}},
		CheckIn:     "2026-06-10",
		CheckOut:    "2026-06-12",
	})
	require.ErrorIs(t, err, bookingdomain.ErrValidation)

	var verr *bookingdomain.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "property_id", verr.Field)
}

func TestReviewStayGuestCapacity(t *testing.T) {
	catalog := &fullStubCatalog{room: &propertydomain.RoomType{
		ID:         2,
		PropertyID: 1,
		Name:       "Standard",
		MaxGuests:  2,
	}}
	svc := newTestService(t, newStubBookingRepo(), &stubEngine{}, catalog, nil)

	_, err := svc.Review(context.Background(), bookingdomain.ReviewRequest{
		UserID:      "user-1",
		BookingType: pricingdomain.BookingStay,
		PropertyID:  "1",
		Items:       []bookingdomain.ReviewItem{{RoomTypeID: "2", Adults: 2, Children: 1}},
		CheckIn:     "2026-06-10",
		CheckOut:    "2026-06-12",
	})
	require.ErrorIs(t, err, bookingdomain.ErrValidation)
}

func TestReviewEntirePlaceExclusivity(t *testing.T) {
	repo := newStubBookingRepo()
	repo.overlap = true
	catalog := &fullStubCatalog{room: &propertydomain.RoomType{
		ID:            2,
		PropertyID:    1,
		Name:          "Entire Villa",
		MaxGuests:     8,
		IsEntirePlace: true,
	}}
	svc := newTestService(t, repo, &stubEngine{}, catalog, nil)

	_, err := svc.Review(context.Background(), bookingdomain.ReviewRequest{
		UserID:      "user-1",
		BookingType: pricingdomain.BookingStay,
		PropertyID:  "1",
		Items:       []bookingdomain.ReviewItem{{RoomTypeID: "2", Adults: 4}},
		CheckIn:     "2026-06-10",
		CheckOut:    "2026-06-12",
	})
	require.ErrorIs(t, err, bookingdomain.ErrValidation)
}

func TestReviewCabRequiresPickupLocation(t *testing.T) {
	svc := newTestService(t, newStubBookingRepo(), &stubEngine{}, &fullStubCatalog{}, nil)

	_, err := svc.Review(context.Background(), bookingdomain.ReviewRequest{
		UserID:      "user-1",
		BookingType: pricingdomain.BookingCab,
		Items:       []bookingdomain.ReviewItem{{CabID: "3", Adults: 2}},
		CheckIn:     "2026-06-10",
		CheckOut:    "2026-06-10",
	})
	require.ErrorIs(t, err, bookingdomain.ErrValidation)
}

func TestReviewDraftRepricesStoredItems(t *testing.T) {
	repo := newStubBookingRepo()
	engine := &stubEngine{}
	svc := newTestService(t, repo, engine, &fullStubCatalog{}, nil)

	resp, err := svc.Review(context.Background(), bookingdomain.ReviewRequest{
		UserID:      "user-1",
		BookingType: pricingdomain.BookingHouseBoat,
		Items: []bookingdomain.ReviewItem{{
			HouseBoatID:     "9",
			Adults:          4,
			FullTimeACOpted: true,
		}},
		CheckIn:  "2026-06-10",
		CheckOut: "2026-06-12",
	})
	require.NoError(t, err)

	again, err := svc.ReviewDraft(context.Background(), "user-1", resp.BookingID)
	require.NoError(t, err)
	require.Equal(t, resp.BookingID, again.BookingID)
	require.Equal(t, "2026-06-10", again.CheckIn)

	require.Equal(t, "9", engine.lastRequest.Items[0].Ref)
	require.NotNil(t, engine.lastRequest.Items[0].HouseBoat)
	require.True(t, engine.lastRequest.Items[0].HouseBoat.FullTimeACOpted)
}

func TestReviewDraftRejectsNonDraft(t *testing.T) {
	repo := newStubBookingRepo()
	svc := newTestService(t, repo, &stubEngine{}, &fullStubCatalog{}, nil)

	resp, err := svc.Review(context.Background(), bookingdomain.ReviewRequest{
		UserID:      "user-1",
		BookingType: pricingdomain.BookingPackage,
		Items:       []bookingdomain.ReviewItem{{PackageID: "7", Adults: 1}},
		CheckIn:     "2026-06-10",
		CheckOut:    "2026-06-12",
	})
	require.NoError(t, err)

	id, _ := snowflake.ParseString(resp.BookingID)
	repo.bookings[id].Status = bookingdomain.StatusPending

	_, err = svc.ReviewDraft(context.Background(), "user-1", resp.BookingID)
	require.ErrorIs(t, err, bookingdomain.ErrNotDraft)
}

func TestConfirmTransitionsDraftToPending(t *testing.T) {
	repo := newStubBookingRepo()
	coupons := &stubCouponRepo{byCode: map[string]*coupondomain.Coupon{}}
	svc := newTestService(t, repo, &stubEngine{}, &fullStubCatalog{}, coupons)

	resp, err := svc.Review(context.Background(), bookingdomain.ReviewRequest{
		UserID:      "user-1",
		BookingType: pricingdomain.BookingPackage,
		Items:       []bookingdomain.ReviewItem{{PackageID: "7", Adults: 2}},
		CheckIn:     "2026-06-10",
		CheckOut:    "2026-06-12",
	})
	require.NoError(t, err)

	confirmed, err := svc.Confirm(context.Background(), bookingdomain.ConfirmRequest{
		UserID:    "user-1",
		BookingID: resp.BookingID,
		FullName:  "Asha Nair",
		Email:     "asha@example.com",
		Phone:     "9876543210",
		Travellers: []bookingdomain.TravellerInput{
			{FirstName: "Asha", LastName: "Nair", Gender: "female", IsPrimary: true},
			{FirstName: "Ravi", LastName: "Nair", Gender: "male"},
		},
	})
	require.NoError(t, err)
	require.Equal(t, bookingdomain.StatusPending, confirmed.Status)
	require.Len(t, repo.savedTravellers, 2)

	id, _ := snowflake.ParseString(resp.BookingID)
	require.Equal(t, bookingdomain.StatusPending, repo.bookings[id].Status)
	require.Equal(t, "Asha Nair", repo.bookings[id].FullName)
}

func TestConfirmRecordsCouponUsage(t *testing.T) {
	repo := newStubBookingRepo()
	coupon := &coupondomain.Coupon{
		ID:             42,
		Code:           "SAVE500",
		DiscountAmount: decimal.NewFromInt(500),
		ValidFrom:      time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC),
		ValidTo:        time.Date(2026, time.June, 30, 0, 0, 0, 0, time.UTC),
	}
	coupons := &stubCouponRepo{byCode: map[string]*coupondomain.Coupon{"SAVE500": coupon}}
	engine := &stubEngine{breakdown: &pricingdomain.Breakdown{
		BaseTotal:      decimal.NewFromInt(1000),
		Taxes:          decimal.NewFromInt(180),
		GrossTotal:     decimal.NewFromInt(1180),
		CouponDiscount: decimal.NewFromInt(500),
		CouponApplied:  &pricingdomain.CouponApplied{Code: "SAVE500", DiscountAmount: decimal.NewFromInt(500)},
		FinalTotal:     decimal.NewFromInt(680),
	}}
	svc := newTestService(t, repo, engine, &fullStubCatalog{}, coupons)

	resp, err := svc.Review(context.Background(), bookingdomain.ReviewRequest{
		UserID:      "user-1",
		BookingType: pricingdomain.BookingPackage,
		Items:       []bookingdomain.ReviewItem{{PackageID: "7", Adults: 1}},
		CheckIn:     "2026-06-10",
		CheckOut:    "2026-06-12",
		CouponCode:  "SAVE500",
	})
	require.NoError(t, err)

	_, err = svc.Confirm(context.Background(), bookingdomain.ConfirmRequest{
		UserID:    "user-1",
		BookingID: resp.BookingID,
		FullName:  "Asha Nair",
		Email:     "asha@example.com",
		Phone:     "9876543210",
	})
	require.NoError(t, err)

	require.Len(t, coupons.usages, 1)
	require.Equal(t, snowflake.ID(42), coupons.usages[0].CouponID)
	require.Equal(t, "user-1", coupons.usages[0].UserID)
}

func TestConfirmRequiresContactFields(t *testing.T) {
	svc := newTestService(t, newStubBookingRepo(), &stubEngine{}, &fullStubCatalog{}, nil)

	_, err := svc.Confirm(context.Background(), bookingdomain.ConfirmRequest{
		UserID:    "user-1",
		BookingID: "1",
		Email:     "asha@example.com",
		Phone:     "9876543210",
	})
	require.ErrorIs(t, err, bookingdomain.ErrValidation)
}

func TestConfirmRejectsNonDraft(t *testing.T) {
	repo := newStubBookingRepo()
	svc := newTestService(t, repo, &stubEngine{}, &fullStubCatalog{}, nil)

	booking := &bookingdomain.Booking{
		ID:     100,
		UserID: "user-1",
		Status: bookingdomain.StatusConfirmed,
	}
	repo.bookings[booking.ID] = booking

	_, err := svc.Confirm(context.Background(), bookingdomain.ConfirmRequest{
		UserID:    "user-1",
		BookingID: "100",
		FullName:  "Asha Nair",
		Email:     "asha@example.com",
		Phone:     "9876543210",
	})
	require.ErrorIs(t, err, bookingdomain.ErrNotDraft)
}

func TestListStatusFilter(t *testing.T) {
	repo := newStubBookingRepo()
	svc := newTestService(t, repo, &stubEngine{}, &fullStubCatalog{}, nil)

	_, err := svc.List(context.Background(), bookingdomain.ListRequest{UserID: "user-1", Status: "upcoming"})
	require.NoError(t, err)
	require.Equal(t,
		[]bookingdomain.Status{bookingdomain.StatusPending, bookingdomain.StatusConfirmed},
		repo.lastListStatuses,
	)

	_, err = svc.List(context.Background(), bookingdomain.ListRequest{UserID: "user-1", Status: "weird"})
	require.ErrorIs(t, err, bookingdomain.ErrValidation)
}

func TestListPagination(t *testing.T) {
	repo := newStubBookingRepo()
	for i := snowflake.ID(1); i <= 3; i++ {
		repo.bookings[i] = &bookingdomain.Booking{ID: i, UserID: "user-1", Status: bookingdomain.StatusConfirmed}
	}
	svc := newTestService(t, repo, &stubEngine{}, &fullStubCatalog{}, nil)

	resp, err := svc.List(context.Background(), bookingdomain.ListRequest{UserID: "user-1", PageSize: 2})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 2)
	require.True(t, resp.HasMore)
	require.NotEmpty(t, resp.NextPageToken)

	all, err := svc.List(context.Background(), bookingdomain.ListRequest{UserID: "user-1"})
	require.NoError(t, err)
	require.Len(t, all.Bookings, 3)
	require.False(t, all.HasMore)
}

func TestGetScopedToOwner(t *testing.T) {
	repo := newStubBookingRepo()
	repo.bookings[100] = &bookingdomain.Booking{ID: 100, UserID: "user-1", Status: bookingdomain.StatusConfirmed}
	svc := newTestService(t, repo, &stubEngine{}, &fullStubCatalog{}, nil)

	found, err := svc.Get(context.Background(), "user-1", "100")
	require.NoError(t, err)
	require.Equal(t, snowflake.ID(100), found.ID)

	_, err = svc.Get(context.Background(), "someone-else", "100")
	require.ErrorIs(t, err, bookingdomain.ErrNotFound)
}
