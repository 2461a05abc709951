package repository

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	bookingdomain "github.com/tripveda/tripveda/internal/booking/domain"
	pricingdomain "github.com/tripveda/tripveda/internal/pricing/domain"
	"github.com/tripveda/tripveda/pkg/db/pagination"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&bookingdomain.Booking{},
		&bookingdomain.BookingItem{},
		&bookingdomain.Traveller{},
	))
	return db
}

func newStayBooking(node *snowflake.Node, userID string, status bookingdomain.Status, checkIn, checkOut time.Time) *bookingdomain.Booking {
	bookingID := node.Generate()
	propertyID := node.Generate()
	roomTypeID := node.Generate()
	return &bookingdomain.Booking{
		ID:          bookingID,
		UserID:      userID,
		BookingType: pricingdomain.BookingStay,
		Status:      status,
		TotalAmount: decimal.NewFromInt(2360),
		Items: []bookingdomain.BookingItem{
			{
				ID:         node.Generate(),
				BookingID:  bookingID,
				PropertyID: &propertyID,
				RoomTypeID: &roomTypeID,
				CheckIn:    checkIn,
				CheckOut:   checkOut,
				Quantity:   1,
				Adults:     2,
			},
		},
	}
}

func TestFindByIDScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	repo := NewRepository(db)
	ctx := context.Background()

	checkIn := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	booking := newStayBooking(node, "user-owner", bookingdomain.StatusDraft, checkIn, checkIn.AddDate(0, 0, 2))
	require.NoError(t, repo.Create(ctx, booking))

	found, err := repo.FindByID(ctx, booking.ID, "user-owner")
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Len(t, found.Items, 1)
	require.Equal(t, booking.Items[0].ID, found.Items[0].ID)

	stranger, err := repo.FindByID(ctx, booking.ID, "someone-else")
	require.NoError(t, err)
	require.Nil(t, stranger)
}

func TestSaveWithTravellersReplacesExisting(t *testing.T) {
	db := newTestDB(t)
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	repo := NewRepository(db)
	ctx := context.Background()

	checkIn := time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC)
	booking := newStayBooking(node, "user-travellers", bookingdomain.StatusDraft, checkIn, checkIn.AddDate(0, 0, 1))
	require.NoError(t, repo.Create(ctx, booking))

	first := []bookingdomain.Traveller{
		{ID: node.Generate(), BookingID: booking.ID, FirstName: "Asha", IsPrimary: true},
	}
	booking.Status = bookingdomain.StatusPending
	require.NoError(t, repo.SaveWithTravellers(ctx, booking, first))

	replacement := []bookingdomain.Traveller{
		{ID: node.Generate(), BookingID: booking.ID, FirstName: "Ravi", IsPrimary: true},
		{ID: node.Generate(), BookingID: booking.ID, FirstName: "Meera"},
	}
	require.NoError(t, repo.SaveWithTravellers(ctx, booking, replacement))

	found, err := repo.FindByID(ctx, booking.ID, "user-travellers")
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, bookingdomain.StatusPending, found.Status)
	require.Len(t, found.Travellers, 2)
	names := []string{found.Travellers[0].FirstName, found.Travellers[1].FirstName}
	require.ElementsMatch(t, []string{"Ravi", "Meera"}, names)
}

func TestListFiltersByStatus(t *testing.T) {
	db := newTestDB(t)
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	repo := NewRepository(db)
	ctx := context.Background()

	checkIn := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)
	statuses := []bookingdomain.Status{
		bookingdomain.StatusPending,
		bookingdomain.StatusConfirmed,
		bookingdomain.StatusCancelled,
	}
	for _, status := range statuses {
		b := newStayBooking(node, "user-list", status, checkIn, checkIn.AddDate(0, 0, 1))
		require.NoError(t, repo.Create(ctx, b))
	}

	upcoming, err := repo.List(ctx, "user-list", []bookingdomain.Status{
		bookingdomain.StatusPending,
		bookingdomain.StatusConfirmed,
	}, pagination.Pagination{})
	require.NoError(t, err)
	require.Len(t, upcoming, 2)

	all, err := repo.List(ctx, "user-list", nil, pagination.Pagination{})
	require.NoError(t, err)
	require.Len(t, all, 3)

	firstPage, err := repo.List(ctx, "user-list", nil, pagination.Pagination{PageSize: 2})
	require.NoError(t, err)
	require.Len(t, firstPage, 3) // page size + 1 row for has-more detection

	other, err := repo.List(ctx, "user-list-nobody", nil, pagination.Pagination{})
	require.NoError(t, err)
	require.Empty(t, other)
}

func TestHasOverlappingStay(t *testing.T) {
	db := newTestDB(t)
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	repo := NewRepository(db)
	ctx := context.Background()

	checkIn := time.Date(2026, 12, 10, 0, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, 3)
	booking := newStayBooking(node, "user-overlap", bookingdomain.StatusConfirmed, checkIn, checkOut)
	require.NoError(t, repo.Create(ctx, booking))
	propertyID := *booking.Items[0].PropertyID

	overlapping, err := repo.HasOverlappingStay(ctx, propertyID, checkIn.AddDate(0, 0, 1), checkOut.AddDate(0, 0, 2))
	require.NoError(t, err)
	require.True(t, overlapping)

	adjacent, err := repo.HasOverlappingStay(ctx, propertyID, checkOut, checkOut.AddDate(0, 0, 2))
	require.NoError(t, err)
	require.False(t, adjacent)

	otherProperty, err := repo.HasOverlappingStay(ctx, node.Generate(), checkIn, checkOut)
	require.NoError(t, err)
	require.False(t, otherProperty)

	booking.Status = bookingdomain.StatusCancelled
	require.NoError(t, repo.Save(ctx, booking))

	afterCancel, err := repo.HasOverlappingStay(ctx, propertyID, checkIn, checkOut)
	require.NoError(t, err)
	require.False(t, afterCancel)
}
