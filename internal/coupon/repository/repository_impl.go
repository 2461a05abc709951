package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	coupondomain "github.com/tripveda/tripveda/internal/coupon/domain"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) coupondomain.Repository {
	return &repository{db: db}
}

func (r *repository) FindByCode(ctx context.Context, code string) (*coupondomain.Coupon, error) {
	var c coupondomain.Coupon
	err := r.db.WithContext(ctx).First(&c, "code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *repository) FindByID(ctx context.Context, id snowflake.ID) (*coupondomain.Coupon, error) {
	var c coupondomain.Coupon
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *repository) List(ctx context.Context) ([]coupondomain.Coupon, error) {
	var items []coupondomain.Coupon
	err := r.db.WithContext(ctx).
		Order("valid_from ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) Create(ctx context.Context, c *coupondomain.Coupon) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) RecordUsage(ctx context.Context, usage *coupondomain.CouponUsage) error {
	return r.db.WithContext(ctx).Exec(
		`INSERT INTO coupon_usages (id, coupon_id, booking_id, user_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		usage.ID,
		usage.CouponID,
		usage.BookingID,
		usage.UserID,
		usage.CreatedAt,
		usage.UpdatedAt,
	).Error
}
