package service

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tripveda/tripveda/internal/clock"
	coupondomain "github.com/tripveda/tripveda/internal/coupon/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type resolverParam struct {
	fx.In

	Repository coupondomain.Repository
}

type resolver struct {
	repo coupondomain.Repository
}

func NewResolver(p resolverParam) coupondomain.Resolver {
	return &resolver{repo: p.Repository}
}

// Resolve returns the coupon only when the code exists and today falls
// inside its validity window. A bad code is not an error.
func (r *resolver) Resolve(ctx context.Context, code string, today time.Time) (*coupondomain.Coupon, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, nil
	}

	c, err := r.repo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if c == nil || !c.ValidOn(today) {
		return nil, nil
	}
	return c, nil
}

type serviceParam struct {
	fx.In

	Logger     *zap.Logger
	Repository coupondomain.Repository
	Resolver   coupondomain.Resolver
	Clock      clock.Clock
}

type service struct {
	log      *zap.Logger
	repo     coupondomain.Repository
	resolver coupondomain.Resolver
	clock    clock.Clock
}

func NewService(p serviceParam) coupondomain.Service {
	return &service{
		log:      p.Logger.Named("coupon.service"),
		repo:     p.Repository,
		resolver: p.Resolver,
		clock:    p.Clock,
	}
}

func (s *service) Validate(ctx context.Context, code string) (*coupondomain.ValidationResponse, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, coupondomain.ErrInvalidCode
	}

	c, err := s.resolver.Resolve(ctx, code, s.clock.Now())
	if err != nil {
		s.log.Error("failed to resolve coupon", zap.String("code", code), zap.Error(err))
		return nil, err
	}
	if c == nil {
		return &coupondomain.ValidationResponse{
			Code:           code,
			Valid:          false,
			DiscountAmount: decimal.Zero,
		}, nil
	}

	return &coupondomain.ValidationResponse{
		Code:           c.Code,
		Valid:          true,
		DiscountAmount: c.DiscountAmount.Round(2),
	}, nil
}

func (s *service) List(ctx context.Context) ([]coupondomain.Response, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list coupons", zap.Error(err))
		return nil, err
	}

	responses := make([]coupondomain.Response, 0, len(items))
	for _, c := range items {
		responses = append(responses, coupondomain.Response{
			ID:             c.ID.String(),
			Code:           c.Code,
			DiscountAmount: c.DiscountAmount.Round(2),
			ValidFrom:      c.ValidFrom,
			ValidTo:        c.ValidTo,
		})
	}
	return responses, nil
}
