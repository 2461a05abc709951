package service

import (
	"context"

	"github.com/bwmarrin/snowflake"
	cabdomain "github.com/tripveda/tripveda/internal/cab/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type serviceParam struct {
	fx.In

	Logger     *zap.Logger
	Repository cabdomain.Repository
}

type service struct {
	log  *zap.Logger
	repo cabdomain.Repository
}

func NewService(p serviceParam) cabdomain.Service {
	return &service{
		log:  p.Logger.Named("cab.service"),
		repo: p.Repository,
	}
}

func (s *service) List(ctx context.Context, req cabdomain.ListRequest) ([]cabdomain.Response, error) {
	filter := cabdomain.ListFilter{
		FuelType: req.FuelType,
		IsActive: req.IsActive,
		SortBy:   req.SortBy,
		OrderBy:  req.OrderBy,
		Limit:    req.Limit,
		Offset:   req.Offset,
	}
	if req.CategoryID != "" {
		parsed, err := snowflake.ParseString(req.CategoryID)
		if err != nil {
			return nil, cabdomain.ErrInvalidID
		}
		filter.CategoryID = &parsed
	}

	items, err := s.repo.List(ctx, filter)
	if err != nil {
		s.log.Error("failed to list cabs", zap.Error(err))
		return nil, err
	}

	responses := make([]cabdomain.Response, 0, len(items))
	for i := range items {
		responses = append(responses, toResponse(&items[i]))
	}
	return responses, nil
}

func (s *service) Get(ctx context.Context, id string) (*cabdomain.Response, error) {
	parsed, err := snowflake.ParseString(id)
	if err != nil {
		return nil, cabdomain.ErrInvalidID
	}

	c, err := s.repo.FindByID(ctx, parsed)
	if err != nil {
		s.log.Error("failed to find cab", zap.String("cab_id", id), zap.Error(err))
		return nil, err
	}
	if c == nil {
		return nil, cabdomain.ErrNotFound
	}

	resp := toResponse(c)
	return &resp, nil
}

func (s *service) ListCategories(ctx context.Context) ([]cabdomain.CategoryResponse, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		s.log.Error("failed to list cab categories", zap.Error(err))
		return nil, err
	}

	responses := make([]cabdomain.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		responses = append(responses, toCategoryResponse(&category))
	}
	return responses, nil
}

func toCategoryResponse(category *cabdomain.CabCategory) cabdomain.CategoryResponse {
	return cabdomain.CategoryResponse{
		ID:          category.ID.String(),
		Name:        category.Name,
		Description: category.Description,
		IsActive:    category.IsActive,
	}
}

func toResponse(c *cabdomain.Cab) cabdomain.Response {
	inclusions := make([]cabdomain.InclusionResponse, 0, len(c.Inclusions))
	for _, inc := range c.Inclusions {
		inclusions = append(inclusions, cabdomain.InclusionResponse{
			Label:      inc.Label,
			Value:      inc.Value,
			IsIncluded: inc.IsIncluded,
		})
	}

	options := make([]cabdomain.PricingOptionResponse, 0, len(c.PricingOptions))
	for _, opt := range c.PricingOptions {
		options = append(options, cabdomain.PricingOptionResponse{
			OptionType:  opt.OptionType,
			Amount:      opt.Amount.Round(2),
			Description: opt.Description,
			IsDefault:   opt.IsDefault,
		})
	}

	var category *cabdomain.CategoryResponse
	if c.Category != nil {
		resp := toCategoryResponse(c.Category)
		category = &resp
	}

	return cabdomain.Response{
		ID:                     c.ID.String(),
		Category:               category,
		Title:                  c.Title,
		Capacity:               c.Capacity,
		BasePrice:              c.BasePrice.Round(2),
		LuggageCapacity:        c.LuggageCapacity,
		FuelType:               c.FuelType,
		IsAC:                   c.IsAC,
		PricePerKM:             c.PricePerKM,
		IncludedKMs:            c.IncludedKMs,
		ExtraKMFare:            c.ExtraKMFare,
		DriverAllowance:        c.DriverAllowance,
		FreeWaitingTimeMinutes: c.FreeWaitingTimeMinutes,
		IsActive:               c.IsActive,
		Inclusions:             inclusions,
		PricingOptions:         options,
	}
}
