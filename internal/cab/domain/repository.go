package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

type ListFilter struct {
	CategoryID *snowflake.ID
	FuelType   FuelType
	IsActive   *bool
	SortBy     string
	OrderBy    string
	Limit      int
	Offset     int
}

type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]Cab, error)
	FindByID(ctx context.Context, id snowflake.ID) (*Cab, error)
	ListCategories(ctx context.Context) ([]CabCategory, error)
	Create(ctx context.Context, c *Cab) error
}
