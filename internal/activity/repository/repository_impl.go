package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	activitydomain "github.com/tripveda/tripveda/internal/activity/domain"
	"github.com/tripveda/tripveda/pkg/db/option"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) activitydomain.Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context, filter activitydomain.ListFilter) ([]activitydomain.Activity, error) {
	var items []activitydomain.Activity
	stmt := r.db.WithContext(ctx).
		Model(&activitydomain.Activity{}).
		Preload("Discount").
		Preload("Features").
		Preload("Inclusions")

	if filter.Location != "" {
		stmt = stmt.Where("location = ?", filter.Location)
	}
	if filter.Difficulty != "" {
		stmt = stmt.Where("difficulty = ?", filter.Difficulty)
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

func (r *repository) FindByID(ctx context.Context, id snowflake.ID) (*activitydomain.Activity, error) {
	var a activitydomain.Activity
	err := r.db.WithContext(ctx).
		Preload("Discount").
		Preload("Features").
		Preload("Inclusions").
		First(&a, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindBySlug(ctx context.Context, slug string) (*activitydomain.Activity, error) {
	var a activitydomain.Activity
	err := r.db.WithContext(ctx).
		Preload("Discount").
		Preload("Features").
		Preload("Inclusions").
		First(&a, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *repository) Create(ctx context.Context, a *activitydomain.Activity) error {
	return r.db.WithContext(ctx).Create(a).Error
}
