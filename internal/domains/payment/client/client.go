package client

//go:generate go run go.uber.org/mock/mockgen -source=./client.go -destination=../mocks/client_mock.go -package=mocks

import (
	"context"
	"net/url"
	"phoenix/infras/api"
	"phoenix/internal/domains/payment/model"
	"phoenix/internal/domains/payment/model/dto"
)

const (
	pathPayments = "/payments/"
	pathMpesa    = "/payments/mpesa/"
)

type Payment interface {
	List(ctx context.Context, query url.Values) (api.Page[model.Payment], error)
	Create(ctx context.Context, req dto.CreatePaymentRequest) (model.Payment, error)
	Mpesa(ctx context.Context, req dto.MpesaPaymentRequest) (model.Payment, error)
}

type clientImpl struct {
	api api.Client
}

func New(apiClient api.Client) Payment {
	return &clientImpl{api: apiClient}
}

func (c *clientImpl) List(ctx context.Context, query url.Values) (api.Page[model.Payment], error) {
	var page api.Page[model.Payment]

	err := c.api.Get(ctx, pathPayments, query, &page)

	return page, err
}

func (c *clientImpl) Create(ctx context.Context, req dto.CreatePaymentRequest) (model.Payment, error) {
	var payment model.Payment

	err := c.api.Post(ctx, pathPayments, req, &payment)

	return payment, err
}

func (c *clientImpl) Mpesa(ctx context.Context, req dto.MpesaPaymentRequest) (model.Payment, error) {
	var payment model.Payment

	err := c.api.Post(ctx, pathMpesa, req, &payment)

	return payment, err
}
