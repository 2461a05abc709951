package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	propertydomain "github.com/tripveda/tripveda/internal/property/domain"
	"github.com/tripveda/tripveda/pkg/db/option"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) propertydomain.Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context, filter propertydomain.ListFilter) ([]propertydomain.Property, error) {
	var items []propertydomain.Property
	stmt := r.db.WithContext(ctx).
		Model(&propertydomain.Property{}).
		Preload("Discount").
		Preload("RoomTypes")

	if filter.City != "" {
		stmt = stmt.Where("city = ?", filter.City)
	}
	if filter.PropertyType != "" {
		stmt = stmt.Where("property_type = ?", filter.PropertyType)
	}
	if filter.IsActive != nil {
		stmt = stmt.Where("is_active = ?", *filter.IsActive)
	}

	stmt = option.WithSortBy(option.WithQuerySortBy(filter.SortBy, filter.OrderBy, map[string]bool{
		"created_at":    true,
		"updated_at":    true,
		"name":          true,
		"review_rating": true,
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

func (r *repository) FindByID(ctx context.Context, id snowflake.ID) (*propertydomain.Property, error) {
	var p propertydomain.Property
	err := r.db.WithContext(ctx).
		Preload("Discount").
		Preload("RoomTypes").
		First(&p, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindBySlug(ctx context.Context, slug string) (*propertydomain.Property, error) {
	var p propertydomain.Property
	err := r.db.WithContext(ctx).
		Preload("Discount").
		Preload("RoomTypes").
		First(&p, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindRoomType(ctx context.Context, id snowflake.ID) (*propertydomain.RoomType, error) {
	var room propertydomain.RoomType
	err := r.db.WithContext(ctx).
		Preload("Property").
		Preload("Property.Discount").
		First(&room, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &room, nil
}

func (r *repository) Create(ctx context.Context, p *propertydomain.Property) error {
	return r.db.WithContext(ctx).Create(p).Error
}
