package service

import (
	"context"
	"net/url"

	"phoenix/infras/otel"
	"phoenix/internal/domains/payment/client"
	"phoenix/internal/domains/payment/model"
	"phoenix/internal/domains/payment/model/dto"
	"phoenix/shared/constant"
	gDto "phoenix/shared/dto"
	"phoenix/shared/validator"

	"github.com/rs/zerolog/log"
)

type Payment interface {
	List(ctx context.Context, params gDto.QueryParams) (dto.PaymentsResponse, error)
	ForBooking(ctx context.Context, bookingID string) ([]model.Payment, error)
	Create(ctx context.Context, req dto.CreatePaymentRequest) (model.Payment, error)
	Mpesa(ctx context.Context, req dto.MpesaPaymentRequest) (model.Payment, error)
}

type serviceImpl struct {
	paymentClient client.Payment
	otel          otel.Otel
}

func New(paymentClient client.Payment, ot otel.Otel) Payment {
	return &serviceImpl{
		paymentClient: paymentClient,
		otel:          ot,
	}
}

func (s *serviceImpl) List(ctx context.Context, params gDto.QueryParams) (res dto.PaymentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListPayments")
	defer scope.End()
	defer scope.TraceIfError(err)

	page, err := s.paymentClient.List(ctx, params.Values())
	if err != nil {
		log.Error().Err(err).Msg("failed to list payments")

		return res, err
	}

	res.FromPage(page.Results, page.Count, params.Limit)

	return res, nil
}

func (s *serviceImpl) ForBooking(ctx context.Context, bookingID string) (res []model.Payment, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PaymentsForBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := url.Values{}
	query.Set("booking", bookingID)

	page, err := s.paymentClient.List(ctx, query)
	if err != nil {
		log.Error().Err(err).Str("booking", bookingID).Msg("failed to list payments for booking")

		return nil, err
	}

	// The backend filter is advisory, keep only the rows that match.
	for _, payment := range page.Results {
		if payment.Booking == bookingID {
			res = append(res, payment)
		}
	}

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePaymentRequest) (res model.Payment, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreatePayment")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	res, err = s.paymentClient.Create(ctx, req)
	if err != nil {
		log.Warn().Err(err).Str("booking", req.Booking).Msg("payment rejected")

		return res, err
	}

	return res, nil
}

func (s *serviceImpl) Mpesa(ctx context.Context, req dto.MpesaPaymentRequest) (res model.Payment, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MpesaPayment")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	res, err = s.paymentClient.Mpesa(ctx, req)
	if err != nil {
		log.Warn().Err(err).Str("booking", req.Booking).Msg("mpesa payment rejected")

		return res, err
	}

	return res, nil
}
