package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	cabdomain "github.com/tripveda/tripveda/internal/cab/domain"
	"github.com/tripveda/tripveda/pkg/db/option"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) cabdomain.Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context, filter cabdomain.ListFilter) ([]cabdomain.Cab, error) {
	var items []cabdomain.Cab
	stmt := r.db.WithContext(ctx).
		Model(&cabdomain.Cab{}).
		Preload("Category").
		Preload("Inclusions").
		Preload("PricingOptions")

	if filter.CategoryID != nil {
		stmt = stmt.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.FuelType != "" {
		stmt = stmt.Where("fuel_type = ?", filter.FuelType)
	}
	if filter.IsActive != nil {
		stmt = stmt.Where("is_active = ?", *filter.IsActive)
	}

	stmt = option.WithSortBy(option.WithQuerySortBy(filter.SortBy, filter.OrderBy, map[string]bool{
		"created_at": true,
		"updated_at": true,
		"title":      true,
		"base_price": true,
		"capacity":   true,
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

func (r *repository) FindByID(ctx context.Context, id snowflake.ID) (*cabdomain.Cab, error) {
	var c cabdomain.Cab
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Inclusions").
		Preload("PricingOptions").
		First(&c, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *repository) ListCategories(ctx context.Context) ([]cabdomain.CabCategory, error) {
	var categories []cabdomain.CabCategory
	err := r.db.WithContext(ctx).Raw(
		`SELECT id, name, description, is_active, created_at, updated_at
		 FROM cab_categories
		 WHERE is_active = true
		 ORDER BY name ASC`,
	).Scan(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *repository) Create(ctx context.Context, c *cabdomain.Cab) error {
	return r.db.WithContext(ctx).Create(c).Error
}
