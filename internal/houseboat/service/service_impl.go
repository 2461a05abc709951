package service

import (
	"context"

	"github.com/bwmarrin/snowflake"
	houseboatdomain "github.com/tripveda/tripveda/internal/houseboat/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type serviceParam struct {
	fx.In

	Logger     *zap.Logger
	Repository houseboatdomain.Repository
}

type service struct {
	log  *zap.Logger
	repo houseboatdomain.Repository
}

func NewService(p serviceParam) houseboatdomain.Service {
	return &service{
		log:  p.Logger.Named("houseboat.service"),
		repo: p.Repository,
	}
}

func (s *service) List(ctx context.Context, req houseboatdomain.ListRequest) ([]houseboatdomain.Response, error) {
	items, err := s.repo.List(ctx, houseboatdomain.ListFilter{
		Location: req.Location,
		IsActive: req.IsActive,
		SortBy:   req.SortBy,
		OrderBy:  req.OrderBy,
		Limit:    req.Limit,
		Offset:   req.Offset,
	})
	if err != nil {
		s.log.Error("failed to list houseboats", zap.Error(err))
		return nil, err
	}

	responses := make([]houseboatdomain.Response, 0, len(items))
	for i := range items {
		responses = append(responses, toResponse(&items[i]))
	}
	return responses, nil
}

func (s *service) Get(ctx context.Context, id string) (*houseboatdomain.Response, error) {
	parsed, err := snowflake.ParseString(id)
	if err != nil {
		return nil, houseboatdomain.ErrInvalidID
	}

	h, err := s.repo.FindByID(ctx, parsed)
	if err != nil {
		s.log.Error("failed to find houseboat", zap.String("houseboat_id", id), zap.Error(err))
		return nil, err
	}
	if h == nil {
		return nil, houseboatdomain.ErrNotFound
	}

	resp := toResponse(h)
	return &resp, nil
}

func toResponse(h *houseboatdomain.HouseBoat) houseboatdomain.Response {
	var spec *houseboatdomain.SpecificationResponse
	if h.Specification != nil {
		spec = &houseboatdomain.SpecificationResponse{
			Bedrooms:             h.Specification.Bedrooms,
			Bathrooms:            h.Specification.Bathrooms,
			MaxGuests:            h.Specification.MaxGuests,
			Capacity:             h.Specification.Capacity(),
			ACType:               h.Specification.ACType,
			CruiseType:           h.Specification.CruiseType,
			ExtraGuestPriceAdult: h.Specification.ExtraGuestPriceAdult.Round(2),
			ExtraGuestPriceChild: h.Specification.ExtraGuestPriceChild.Round(2),
			FullTimeACPrice:      h.Specification.FullTimeACPrice.Round(2),
		}
	}

	return houseboatdomain.Response{
		ID:                h.ID.String(),
		Name:              h.Name,
		Slug:              h.Slug,
		Location:          h.Location,
		Description:       h.Description,
		BasePricePerNight: h.BasePricePerNight.Round(2),
		DiscountedPrice:   h.NightlyDiscountedPrice().Round(2),
		Rating:            h.Rating,
		ReviewCount:       h.ReviewCount,
		IsActive:          h.IsActive,
		Specification:     spec,
	}
}
