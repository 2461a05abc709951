package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	houseboatdomain "github.com/tripveda/tripveda/internal/houseboat/domain"
	"github.com/tripveda/tripveda/pkg/db/option"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) houseboatdomain.Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context, filter houseboatdomain.ListFilter) ([]houseboatdomain.HouseBoat, error) {
	var items []houseboatdomain.HouseBoat
	stmt := r.db.WithContext(ctx).
		Model(&houseboatdomain.HouseBoat{}).
		Preload("Discount").
		Preload("Specification")

	if filter.Location != "" {
		stmt = stmt.Where("location = ?", filter.Location)
	}
	if filter.IsActive != nil {
		stmt = stmt.Where("is_active = ?", *filter.IsActive)
	}

	stmt = option.WithSortBy(option.WithQuerySortBy(filter.SortBy, filter.OrderBy, map[string]bool{
		"created_at":           true,
		"updated_at":           true,
		"name":                 true,
		"base_price_per_night": true,
	})).Apply(stmt)
	if filter.Limit > 0 {
		stmt = option.WithLimit(filter.Limit).Apply(stmt)
	}
	if filter.Offset > 0 {
		stmt = option.WithOffset(filter.Offset).Apply(stmt)
	}

	if err := stmt.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) FindByID(ctx context.Context, id snowflake.ID) (*houseboatdomain.HouseBoat, error) {
	var h houseboatdomain.HouseBoat
	err := r.db.WithContext(ctx).
		Preload("Discount").
		Preload("Specification").
		First(&h, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &h, nil
}

func (r *repository) FindBySlug(ctx context.Context, slug string) (*houseboatdomain.HouseBoat, error) {
	var h houseboatdomain.HouseBoat
	err := r.db.WithContext(ctx).
		Preload("Discount").
		Preload("Specification").
		First(&h, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &h, nil
}

func (r *repository) Create(ctx context.Context, h *houseboatdomain.HouseBoat) error {
	return r.db.WithContext(ctx).Create(h).Error
}
