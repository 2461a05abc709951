package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/tripveda/tripveda/pkg/db/pagination"
)

type Repository interface {
	Create(ctx context.Context, booking *Booking) error
	Save(ctx context.Context, booking *Booking) error
	// SaveWithTravellers replaces the booking's traveller rows and
	// persists the booking in one transaction.
	SaveWithTravellers(ctx context.Context, booking *Booking, travellers []Traveller) error
	FindByID(ctx context.Context, id snowflake.ID, userID string) (*Booking, error)
	List(ctx context.Context, userID string, statuses []Status, page pagination.Pagination) ([]*Booking, error)
	// HasOverlappingStay reports whether any non-cancelled booking item
	// holds the property across the given date range.
	HasOverlappingStay(ctx context.Context, propertyID snowflake.ID, checkIn, checkOut time.Time) (bool, error)
}
