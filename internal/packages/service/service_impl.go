package service

import (
	"context"

	"github.com/bwmarrin/snowflake"
	packagedomain "github.com/tripveda/tripveda/internal/packages/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type serviceParam struct {
	fx.In

	Logger     *zap.Logger
	Repository packagedomain.Repository
}

type service struct {
	log  *zap.Logger
	repo packagedomain.Repository
}

func NewService(p serviceParam) packagedomain.Service {
	return &service{
		log:  p.Logger.Named("packages.service"),
		repo: p.Repository,
	}
}

func (s *service) List(ctx context.Context, req packagedomain.ListRequest) ([]packagedomain.Response, error) {
	items, err := s.repo.List(ctx, packagedomain.ListFilter{
		Location: req.Location,
		IsActive: req.IsActive,
		SortBy:   req.SortBy,
		OrderBy:  req.OrderBy,
		Limit:    req.Limit,
		Offset:   req.Offset,
	})
	if err != nil {
		s.log.Error("failed to list packages", zap.Error(err))
		return nil, err
	}

	responses := make([]packagedomain.Response, 0, len(items))
	for i := range items {
		responses = append(responses, toResponse(&items[i]))
	}
	return responses, nil
}

func (s *service) Get(ctx context.Context, id string) (*packagedomain.Response, error) {
	parsed, err := snowflake.ParseString(id)
	if err != nil {
		return nil, packagedomain.ErrInvalidID
	}

	pkg, err := s.repo.FindByID(ctx, parsed)
	if err != nil {
		s.log.Error("failed to find package", zap.String("package_id", id), zap.Error(err))
		return nil, err
	}
	if pkg == nil {
		return nil, packagedomain.ErrNotFound
	}

	resp := toResponse(pkg)
	return &resp, nil
}

func toResponse(pkg *packagedomain.HolidayPackage) packagedomain.Response {
	features := make([]packagedomain.FeatureResponse, 0, len(pkg.Features))
	for _, f := range pkg.Features {
		features = append(features, packagedomain.FeatureResponse{
			FeatureType: f.FeatureType,
			IsIncluded:  f.IsIncluded,
		})
	}

	return packagedomain.Response{
		ID:                 pkg.ID.String(),
		Title:              pkg.Title,
		Slug:               pkg.Slug,
		PrimaryLocation:    pkg.PrimaryLocation,
		SecondaryLocations: pkg.SecondaryLocations,
		DurationDays:       pkg.DurationDays,
		DurationNights:     pkg.DurationNights,
		BasePrice:          pkg.BasePrice.Round(2),
		PricePerPerson:     pkg.PricePerPerson().Round(2),
		Rating:             pkg.Rating,
		ReviewCount:        pkg.ReviewCount,
		ShortDescription:   pkg.ShortDescription,
		Highlights:         pkg.Highlights,
		TermsAndConditions: pkg.TermsAndConditions,
		IsActive:           pkg.IsActive,
		Features:           features,
	}
}
