package client

//go:generate go run go.uber.org/mock/mockgen -source=./client.go -destination=../mocks/client_mock.go -package=mocks

import (
	"context"
	"net/url"
	"phoenix/infras/api"
	"phoenix/internal/domains/hotel/model"
	"phoenix/internal/domains/hotel/model/dto"
)

const (
	pathHotels       = "/hotels/"
	pathRoomTypes    = "/room-types/"
	pathRooms        = "/rooms/"
	pathAvailability = "/availability/"
)

type Hotel interface {
	List(ctx context.Context, query url.Values) (api.Page[model.Hotel], error)
	Get(ctx context.Context, id string) (model.Hotel, error)
	Create(ctx context.Context, req dto.CreateHotelRequest) (model.Hotel, error)
	Update(ctx context.Context, id string, req dto.UpdateHotelRequest) (model.Hotel, error)
	Delete(ctx context.Context, id string) error
	RoomTypes(ctx context.Context) ([]model.RoomType, error)
	Rooms(ctx context.Context, query url.Values) (api.Page[model.Room], error)
	Room(ctx context.Context, id string) (model.Room, error)
	UpdateRoomStatus(ctx context.Context, roomID string, req dto.UpdateRoomStatusRequest) (model.Room, error)
	Availability(ctx context.Context, req dto.AvailabilityRequest) (dto.AvailabilityResponse, error)
}

type clientImpl struct {
	api api.Client
}

func New(apiClient api.Client) Hotel {
	return &clientImpl{api: apiClient}
}

func (c *clientImpl) List(ctx context.Context, query url.Values) (api.Page[model.Hotel], error) {
	var page api.Page[model.Hotel]

	err := c.api.Get(ctx, pathHotels, query, &page)

	return page, err
}

func (c *clientImpl) Get(ctx context.Context, id string) (model.Hotel, error) {
	var hotel model.Hotel

	err := c.api.Get(ctx, pathHotels+id+"/", nil, &hotel)

	return hotel, err
}

func (c *clientImpl) Create(ctx context.Context, req dto.CreateHotelRequest) (model.Hotel, error) {
	var hotel model.Hotel

	err := c.api.Post(ctx, pathHotels, req, &hotel)

	return hotel, err
}

func (c *clientImpl) Update(ctx context.Context, id string, req dto.UpdateHotelRequest) (model.Hotel, error) {
	var hotel model.Hotel

	err := c.api.Patch(ctx, pathHotels+id+"/", req, &hotel)

	return hotel, err
}

func (c *clientImpl) Delete(ctx context.Context, id string) error {
	return c.api.Delete(ctx, pathHotels+id+"/", nil)
}

func (c *clientImpl) RoomTypes(ctx context.Context) ([]model.RoomType, error) {
	var page api.Page[model.RoomType]

	err := c.api.Get(ctx, pathRoomTypes, nil, &page)

	return page.Results, err
}

func (c *clientImpl) Rooms(ctx context.Context, query url.Values) (api.Page[model.Room], error) {
	var page api.Page[model.Room]

	err := c.api.Get(ctx, pathRooms, query, &page)

	return page, err
}

func (c *clientImpl) Room(ctx context.Context, id string) (model.Room, error) {
	var room model.Room

	err := c.api.Get(ctx, pathRooms+id+"/", nil, &room)

	return room, err
}

func (c *clientImpl) UpdateRoomStatus(ctx context.Context, roomID string, req dto.UpdateRoomStatusRequest) (model.Room, error) {
	var room model.Room

	err := c.api.Patch(ctx, pathRooms+roomID+"/", req, &room)

	return room, err
}

func (c *clientImpl) Availability(ctx context.Context, req dto.AvailabilityRequest) (dto.AvailabilityResponse, error) {
	var res dto.AvailabilityResponse

	err := c.api.Post(ctx, pathAvailability, req, &res)

	return res, err
}
