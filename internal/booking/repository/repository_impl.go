package repository

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	bookingdomain "github.com/tripveda/tripveda/internal/booking/domain"
	"github.com/tripveda/tripveda/pkg/db/option"
	"github.com/tripveda/tripveda/pkg/db/pagination"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) bookingdomain.Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, booking *bookingdomain.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *repository) Save(ctx context.Context, booking *bookingdomain.Booking) error {
	return r.db.WithContext(ctx).
		Omit("Items", "Travellers").
		Save(booking).Error
}

func (r *repository) SaveWithTravellers(ctx context.Context, booking *bookingdomain.Booking, travellers []bookingdomain.Traveller) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("booking_id = ?", booking.ID).Delete(&bookingdomain.Traveller{}).Error; err != nil {
			return err
		}
		if len(travellers) > 0 {
			if err := tx.Create(&travellers).Error; err != nil {
				return err
			}
		}
		return tx.Omit("Items", "Travellers").Save(booking).Error
	})
}

func (r *repository) FindByID(ctx context.Context, id snowflake.ID, userID string) (*bookingdomain.Booking, error) {
	var booking bookingdomain.Booking
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Travellers").
		First(&booking, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *repository) List(ctx context.Context, userID string, statuses []bookingdomain.Status, page pagination.Pagination) ([]*bookingdomain.Booking, error) {
	query := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID)
	if len(statuses) > 0 {
		query = query.Where("status IN ?", statuses)
	}
	query = option.ApplyPagination(page).Apply(query)

	var bookings []*bookingdomain.Booking
	if err := query.Order("created_at desc, id desc").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *repository) HasOverlappingStay(ctx context.Context, propertyID snowflake.ID, checkIn, checkOut time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&bookingdomain.BookingItem{}).
		Joins("JOIN bookings ON bookings.id = booking_items.booking_id").
		Where("booking_items.property_id = ?", propertyID).
		Where("booking_items.check_in < ? AND booking_items.check_out > ?", checkOut, checkIn).
		Where("bookings.status <> ?", bookingdomain.StatusCancelled).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
