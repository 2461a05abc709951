package service

import (
	"context"

	"github.com/bwmarrin/snowflake"
	propertydomain "github.com/tripveda/tripveda/internal/property/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type serviceParam struct {
	fx.In

	Logger     *zap.Logger
	Repository propertydomain.Repository
}

type service struct {
	log  *zap.Logger
	repo propertydomain.Repository
}

func NewService(p serviceParam) propertydomain.Service {
	return &service{
		log:  p.Logger.Named("property.service"),
		repo: p.Repository,
	}
}

func (s *service) List(ctx context.Context, req propertydomain.ListRequest) ([]propertydomain.Response, error) {
	items, err := s.repo.List(ctx, propertydomain.ListFilter{
		City:         req.City,
		PropertyType: req.PropertyType,
		IsActive:     req.IsActive,
		SortBy:       req.SortBy,
		OrderBy:      req.OrderBy,
		Limit:        req.Limit,
		Offset:       req.Offset,
	})
	if err != nil {
		s.log.Error("failed to list properties", zap.Error(err))
		return nil, err
	}

	responses := make([]propertydomain.Response, 0, len(items))
	for i := range items {
		responses = append(responses, toResponse(&items[i]))
	}
	return responses, nil
}

func (s *service) Get(ctx context.Context, id string) (*propertydomain.Response, error) {
	parsed, err := snowflake.ParseString(id)
	if err != nil {
		return nil, propertydomain.ErrInvalidID
	}

	p, err := s.repo.FindByID(ctx, parsed)
	if err != nil {
		s.log.Error("failed to find property", zap.String("property_id", id), zap.Error(err))
		return nil, err
	}
	if p == nil {
		return nil, propertydomain.ErrNotFound
	}

	resp := toResponse(p)
	return &resp, nil
}

func toResponse(p *propertydomain.Property) propertydomain.Response {
	rooms := make([]propertydomain.RoomTypeResponse, 0, len(p.RoomTypes))
	for i := range p.RoomTypes {
		room := p.RoomTypes[i]
		// Pricing helpers need the parent for discount and GST.
		room.Property = p
		rooms = append(rooms, propertydomain.RoomTypeResponse{
			ID:              room.ID.String(),
			Name:            room.Name,
			MaxGuests:       room.MaxGuests,
			BedroomCount:    room.BedroomCount,
			HasBreakfast:    room.HasBreakfast,
			RefundPolicy:    room.RefundPolicy,
			BookingPolicy:   room.BookingPolicy,
			BasePrice:       room.BasePrice.Round(2),
			DiscountAmount:  room.DiscountAmount().Round(2),
			DiscountedPrice: room.DiscountedPrice().Round(2),
			GSTAmount:       room.GSTAmount(),
			TotalPayable:    room.TotalPayable().Round(2),
			TotalUnits:      room.TotalUnits,
			IsEntirePlace:   room.IsEntirePlace,
		})
	}

	return propertydomain.Response{
		ID:           p.ID.String(),
		Name:         p.Name,
		Slug:         p.Slug,
		PropertyType: p.PropertyType,
		City:         p.City,
		Area:         p.Area,
		State:        p.State,
		StarRating:   p.StarRating,
		ReviewRating: p.ReviewRating,
		ReviewCount:  p.ReviewCount,
		CheckInTime:  p.CheckInTime,
		CheckOutTime: p.CheckOutTime,
		Description:  p.Description,
		Rules:        p.Rules,
		GSTPercent:   p.GSTPercent,
		IsActive:     p.IsActive,
		RoomTypes:    rooms,
	}
}
