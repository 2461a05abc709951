package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

type ListFilter struct {
	Location   string
	Difficulty Difficulty
	IsActive   *bool
	SortBy     string
	OrderBy    string
	Limit      int
	Offset     int
}

type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]Activity, error)
	FindByID(ctx context.Context, id snowflake.ID) (*Activity, error)
	FindBySlug(ctx context.Context, slug string) (*Activity, error)
	Create(ctx context.Context, a *Activity) error
}
