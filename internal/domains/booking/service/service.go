package service

import (
	"context"
	"phoenix/infras/otel"
	"phoenix/internal/domains/booking/client"
	"phoenix/internal/domains/booking/model"
	"phoenix/internal/domains/booking/model/dto"
	"phoenix/shared/constant"
	gDto "phoenix/shared/dto"
	"phoenix/shared/failure"
	"phoenix/shared/timezone"
	"phoenix/shared/validator"
	"time"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	List(ctx context.Context, params gDto.QueryParams, status string) (dto.BookingsResponse, error)
	My(ctx context.Context, params gDto.QueryParams) (dto.BookingsResponse, error)
	Get(ctx context.Context, id string) (model.Booking, error)
	Create(ctx context.Context, req dto.CreateBookingRequest) (model.Booking, error)
	Update(ctx context.Context, id string, req dto.UpdateBookingRequest) (model.Booking, error)
	Confirm(ctx context.Context, id string) (model.Booking, error)
	Cancel(ctx context.Context, id string) error
	Summary(ctx context.Context) (model.DeskSummary, error)
}

type serviceImpl struct {
	bookingClient client.Booking
	otel          otel.Otel
}

func New(bookingClient client.Booking, ot otel.Otel) Booking {
	return &serviceImpl{
		bookingClient: bookingClient,
		otel:          ot,
	}
}

// checkDates enforces what a date picker enforces in the browser: a sane
// range before the request leaves. The backend remains the authority on
// actual availability.
func checkDates(checkIn, checkOut string) error {
	if checkIn == "" || checkOut == "" {
		return nil
	}

	in, err := time.Parse(time.DateOnly, checkIn)
	if err != nil {
		return failure.BadRequestFromString("check-in date is not valid")
	}

	out, err := time.Parse(time.DateOnly, checkOut)
	if err != nil {
		return failure.BadRequestFromString("check-out date is not valid")
	}

	nights := int(out.Sub(in).Hours() / 24)
	if nights < constant.MinBookingDays {
		return failure.BadRequestFromString("check-out must be after check-in")
	}

	if nights > constant.MaxBookingDays {
		return failure.BadRequestFromString("stays are limited to 30 nights")
	}

	return nil
}

func (s *serviceImpl) List(ctx context.Context, params gDto.QueryParams, status string) (res dto.BookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := params.Values()
	if status != "" {
		query.Set("status", status)
	}

	page, err := s.bookingClient.List(ctx, query)
	if err != nil {
		log.Error().Err(err).Msg("failed to list bookings")

		return res, err
	}

	res.FromPage(page.Results, page.Count, params.Limit)

	return res, nil
}

func (s *serviceImpl) My(ctx context.Context, params gDto.QueryParams) (res dto.BookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MyBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	page, err := s.bookingClient.My(ctx, params.Values())
	if err != nil {
		log.Error().Err(err).Msg("failed to list own bookings")

		return res, err
	}

	res.FromPage(page.Results, page.Count, params.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.bookingClient.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get booking")

		return res, err
	}

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	if err = checkDates(req.CheckIn, req.CheckOut); err != nil {
		return res, err
	}

	res, err = s.bookingClient.Create(ctx, req)
	if err != nil {
		log.Warn().Err(err).Str("hotel", req.Hotel).Msg("booking rejected")

		return res, err
	}

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateBookingRequest) (res model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateBookingRequest{}) {
		return res, failure.BadRequestFromString("update request cannot be empty") //nolint:wrapcheck
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	if err = checkDates(req.CheckIn, req.CheckOut); err != nil {
		return res, err
	}

	res, err = s.bookingClient.Update(ctx, id, req)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update booking")

		return res, err
	}

	return res, nil
}

func (s *serviceImpl) Confirm(ctx context.Context, id string) (res model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ConfirmBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.bookingClient.Confirm(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to confirm booking")

		return res, err
	}

	return res, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CancelBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.bookingClient.Cancel(ctx, id); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to cancel booking")

		return err
	}

	return nil
}

// Summary aggregates the first page of today's desk view. It reuses the
// plain list endpoint; the heavier cross-hotel stats live on the admin
// dashboard endpoint instead.
func (s *serviceImpl) Summary(ctx context.Context) (res model.DeskSummary, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BookingSummary")
	defer scope.End()
	defer scope.TraceIfError(err)

	page, err := s.bookingClient.List(ctx, nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to load bookings for summary")

		return res, err
	}

	return model.SummarizeDay(page.Results, timezone.Now().Format(time.DateOnly)), nil
}
