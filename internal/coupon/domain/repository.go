package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
)

type Repository interface {
	FindByCode(ctx context.Context, code string) (*Coupon, error)
	FindByID(ctx context.Context, id snowflake.ID) (*Coupon, error)
	List(ctx context.Context) ([]Coupon, error)
	Create(ctx context.Context, c *Coupon) error
	RecordUsage(ctx context.Context, usage *CouponUsage) error
}

// Resolver is the lookup the pricing engine depends on. A code that is
// unknown or outside its validity window resolves to nil, not an error.
type Resolver interface {
	Resolve(ctx context.Context, code string, today time.Time) (*Coupon, error)
}
