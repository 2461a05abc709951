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
	List(ctx context.Context, filter ListFilter) ([]HouseBoat, error)
	FindByID(ctx context.Context, id snowflake.ID) (*HouseBoat, error)
	FindBySlug(ctx context.Context, slug string) (*HouseBoat, error)
	Create(ctx context.Context, h *HouseBoat) error
}
