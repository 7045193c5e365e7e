package service

import (
	"context"
	"phoenix/infras/otel"
	"phoenix/internal/domains/review/client"
	"phoenix/internal/domains/review/model"
	"phoenix/internal/domains/review/model/dto"
	"phoenix/shared/constant"
	gDto "phoenix/shared/dto"
	"phoenix/shared/failure"
	"phoenix/shared/validator"

	"github.com/rs/zerolog/log"
)

type Review interface {
	ForHotel(ctx context.Context, hotelID string) ([]model.Review, error)
	List(ctx context.Context, params gDto.QueryParams) (dto.ReviewsResponse, error)
	Create(ctx context.Context, req dto.CreateReviewRequest) (model.Review, error)
	Update(ctx context.Context, id string, req dto.UpdateReviewRequest) (model.Review, error)
	Delete(ctx context.Context, id string) error
	Approve(ctx context.Context, id string) (model.Review, error)
}

type serviceImpl struct {
	reviewClient client.Review
	otel         otel.Otel
}

func New(reviewClient client.Review, ot otel.Otel) Review {
	return &serviceImpl{
		reviewClient: reviewClient,
		otel:         ot,
	}
}

// ForHotel fetches a hotel's reviews and keeps only the approved ones; the
// public page never shows pending moderation entries.
func (s *serviceImpl) ForHotel(ctx context.Context, hotelID string) (res []model.Review, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ReviewsForHotel")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := gDto.QueryParams{}.Values()
	query.Set("hotel", hotelID)

	page, err := s.reviewClient.List(ctx, query)
	if err != nil {
		log.Error().Err(err).Str("hotel", hotelID).Msg("failed to list hotel reviews")

		return nil, err
	}

	return model.Approved(page.Results), nil
}

// List is the moderation queue: every review, approved or not.
func (s *serviceImpl) List(ctx context.Context, params gDto.QueryParams) (res dto.ReviewsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListReviews")
	defer scope.End()
	defer scope.TraceIfError(err)

	page, err := s.reviewClient.List(ctx, params.Values())
	if err != nil {
		log.Error().Err(err).Msg("failed to list reviews")

		return res, err
	}

	res.FromPage(page.Results, page.Count, params.Limit)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReviewRequest) (res model.Review, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateReview")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	res, err = s.reviewClient.Create(ctx, req)
	if err != nil {
		log.Warn().Err(err).Str("hotel", req.Hotel).Msg("review rejected")

		return res, err
	}

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateReviewRequest) (res model.Review, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateReview")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateReviewRequest{}) {
		return res, failure.BadRequestFromString("update request cannot be empty") //nolint:wrapcheck
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	res, err = s.reviewClient.Update(ctx, id, req)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update review")

		return res, err
	}

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteReview")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.reviewClient.Delete(ctx, id); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete review")

		return err
	}

	return nil
}

func (s *serviceImpl) Approve(ctx context.Context, id string) (res model.Review, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ApproveReview")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.reviewClient.Approve(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to approve review")

		return res, err
	}

	return res, nil
}
