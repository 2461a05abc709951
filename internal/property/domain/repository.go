package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

type ListFilter struct {
	City         string
	PropertyType PropertyType
	IsActive     *bool
	SortBy       string
	OrderBy      string
	Limit        int
	Offset       int
}

type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]Property, error)
	FindByID(ctx context.Context, id snowflake.ID) (*Property, error)
	FindBySlug(ctx context.Context, slug string) (*Property, error)
	FindRoomType(ctx context.Context, id snowflake.ID) (*RoomType, error)
	Create(ctx context.Context, p *Property) error
}
