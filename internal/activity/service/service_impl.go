package service

import (
	"context"

	"github.com/bwmarrin/snowflake"
	activitydomain "github.com/tripveda/tripveda/internal/activity/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type serviceParam struct {
	fx.In

	Logger     *zap.Logger
	Repository activitydomain.Repository
}

type service struct {
	log  *zap.Logger
	repo activitydomain.Repository
}

func NewService(p serviceParam) activitydomain.Service {
	return &service{
		log:  p.Logger.Named("activity.service"),
		repo: p.Repository,
	}
}

func (s *service) List(ctx context.Context, req activitydomain.ListRequest) ([]activitydomain.Response, error) {
	items, err := s.repo.List(ctx, activitydomain.ListFilter{
		Location:   req.Location,
		Difficulty: req.Difficulty,
		IsActive:   req.IsActive,
		SortBy:     req.SortBy,
		OrderBy:    req.OrderBy,
		Limit:      req.Limit,
		Offset:     req.Offset,
	})
	if err != nil {
		s.log.Error("failed to list activities", zap.Error(err))
		return nil, err
	}

	responses := make([]activitydomain.Response, 0, len(items))
	for i := range items {
		responses = append(responses, toResponse(&items[i]))
	}
	return responses, nil
}

func (s *service) Get(ctx context.Context, id string) (*activitydomain.Response, error) {
	parsed, err := snowflake.ParseString(id)
	if err != nil {
		return nil, activitydomain.ErrInvalidID
	}

	a, err := s.repo.FindByID(ctx, parsed)
	if err != nil {
		s.log.Error("failed to find activity", zap.String("activity_id", id), zap.Error(err))
		return nil, err
	}
	if a == nil {
		return nil, activitydomain.ErrNotFound
	}

	resp := toResponse(a)
	return &resp, nil
}

func toResponse(a *activitydomain.Activity) activitydomain.Response {
	features := make([]activitydomain.FeatureResponse, 0, len(a.Features))
	for _, f := range a.Features {
		features = append(features, activitydomain.FeatureResponse{
			FeatureType: f.FeatureType,
			IsIncluded:  f.IsIncluded,
		})
	}

	inclusions := make([]activitydomain.InclusionResponse, 0, len(a.Inclusions))
	for _, inc := range a.Inclusions {
		inclusions = append(inclusions, activitydomain.InclusionResponse{
			Text:       inc.Text,
			IsIncluded: inc.IsIncluded,
		})
	}

	return activitydomain.Response{
		ID:               a.ID.String(),
		Title:            a.Title,
		Slug:             a.Slug,
		Location:         a.Location,
		ShortDescription: a.ShortDescription,
		Description:      a.Description,
		DurationDays:     a.DurationDays,
		DurationNights:   a.DurationNights,
		BasePrice:        a.BasePrice.Round(2),
		PricePerPerson:   a.PricePerPerson().Round(2),
		Difficulty:       a.Difficulty,
		Rating:           a.Rating,
		ReviewCount:      a.ReviewCount,
		MinAge:           a.MinAge,
		MaxAge:           a.MaxAge,
		GroupSize:        a.GroupSize,
		IsActive:         a.IsActive,
		Features:         features,
		Inclusions:       inclusions,
	}
}
