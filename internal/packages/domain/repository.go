package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

type ListFilter struct {
	Location string
	IsActive *bool
	SortBy   string
	OrderBy  string
	Limit    int
	Offset   int
}

type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]HolidayPackage, error)
	FindByID(ctx context.Context, id snowflake.ID) (*HolidayPackage, error)
	FindBySlug(ctx context.Context, slug string) (*HolidayPackage, error)
	Create(ctx context.Context, pkg *HolidayPackage) error
}
