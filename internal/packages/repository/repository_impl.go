package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	packagedomain "github.com/tripveda/tripveda/internal/packages/domain"
	"github.com/tripveda/tripveda/pkg/db/option"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) packagedomain.Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context, filter packagedomain.ListFilter) ([]packagedomain.HolidayPackage, error) {
	var items []packagedomain.HolidayPackage
	stmt := r.db.WithContext(ctx).
		Model(&packagedomain.HolidayPackage{}).
		Preload("Discount").
		Preload("Features")

	if filter.Location != "" {
		stmt = stmt.Where("primary_location = ?", filter.Location)
	}
	if filter.IsActive != nil {
		stmt = stmt.Where("is_active = ?", *filter.IsActive)
	}

	stmt = option.WithSortBy(option.WithQuerySortBy(filter.SortBy, filter.OrderBy, map[string]bool{
		"created_at": true,
		"updated_at": true,
		"title":      true,
		"base_price": true,
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

func (r *repository) FindByID(ctx context.Context, id snowflake.ID) (*packagedomain.HolidayPackage, error) {
	var pkg packagedomain.HolidayPackage
	err := r.db.WithContext(ctx).
		Preload("Discount").
		Preload("Features").
		First(&pkg, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pkg, nil
}

func (r *repository) FindBySlug(ctx context.Context, slug string) (*packagedomain.HolidayPackage, error) {
	var pkg packagedomain.HolidayPackage
	err := r.db.WithContext(ctx).
		Preload("Discount").
		Preload("Features").
		First(&pkg, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pkg, nil
}

func (r *repository) Create(ctx context.Context, pkg *packagedomain.HolidayPackage) error {
	return r.db.WithContext(ctx).Create(pkg).Error
}
