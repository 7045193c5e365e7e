package client

//go:generate go run go.uber.org/mock/mockgen -source=./client.go -destination=../mocks/client_mock.go -package=mocks

import (
	"context"
	"net/url"
	"phoenix/infras/api"
	"phoenix/internal/domains/booking/model"
	"phoenix/internal/domains/booking/model/dto"
)

const (
	pathBookings   = "/bookings/"
	pathMyBookings = "/bookings/my/"
)

type Booking interface {
	List(ctx context.Context, query url.Values) (api.Page[model.Booking], error)
	My(ctx context.Context, query url.Values) (api.Page[model.Booking], error)
	Get(ctx context.Context, id string) (model.Booking, error)
	Create(ctx context.Context, req dto.CreateBookingRequest) (model.Booking, error)
	Update(ctx context.Context, id string, req dto.UpdateBookingRequest) (model.Booking, error)
	Confirm(ctx context.Context, id string) (model.Booking, error)
	Cancel(ctx context.Context, id string) error
}

type clientImpl struct {
	api api.Client
}

func New(apiClient api.Client) Booking {
	return &clientImpl{api: apiClient}
}

func (c *clientImpl) List(ctx context.Context, query url.Values) (api.Page[model.Booking], error) {
	var page api.Page[model.Booking]

	err := c.api.Get(ctx, pathBookings, query, &page)

	return page, err
}

func (c *clientImpl) My(ctx context.Context, query url.Values) (api.Page[model.Booking], error) {
	var page api.Page[model.Booking]

	err := c.api.Get(ctx, pathMyBookings, query, &page)

	return page, err
}

func (c *clientImpl) Get(ctx context.Context, id string) (model.Booking, error) {
	var booking model.Booking

	err := c.api.Get(ctx, pathBookings+id+"/", nil, &booking)

	return booking, err
}

func (c *clientImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (model.Booking, error) {
	var booking model.Booking

	err := c.api.Post(ctx, pathBookings, req, &booking)

	return booking, err
}

func (c *clientImpl) Update(ctx context.Context, id string, req dto.UpdateBookingRequest) (model.Booking, error) {
	var booking model.Booking

	err := c.api.Patch(ctx, pathBookings+id+"/", req, &booking)

	return booking, err
}

func (c *clientImpl) Confirm(ctx context.Context, id string) (model.Booking, error) {
	var booking model.Booking

	err := c.api.Post(ctx, pathBookings+id+"/confirm/", nil, &booking)

	return booking, err
}

func (c *clientImpl) Cancel(ctx context.Context, id string) error {
	return c.api.Delete(ctx, pathBookings+id+"/", nil)
}
