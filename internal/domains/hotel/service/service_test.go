package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"phoenix/config"
	"phoenix/infras/api"
	otelMocks "phoenix/infras/otel/mocks"
	hotelMocks "phoenix/internal/domains/hotel/mocks"
	"phoenix/internal/domains/hotel/model"
	"phoenix/internal/domains/hotel/model/dto"
	"phoenix/internal/domains/hotel/service"
	cacheMocks "phoenix/shared/cache/mocks"
	gDto "phoenix/shared/dto"
)

func newService(t *testing.T) (service.Hotel, *hotelMocks.MockHotel, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockClient := hotelMocks.NewMockHotel(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockClient, cfg, mockCache, otelMocks.NewOtel(), nil)

	return svc, mockClient, mockCache
}

func TestHotelService_List(t *testing.T) {
	params := gDto.QueryParams{Page: 1, Limit: 10}

	tests := []struct {
		name      string
		setupMock func(mockClient *hotelMocks.MockHotel, mockCache *cacheMocks.MockRedisCache)
		wantErr   bool
		wantTotal int
	}{
		{
			name: "cache hit skips the backend",
			setupMock: func(mockClient *hotelMocks.MockHotel, mockCache *cacheMocks.MockRedisCache) {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss fetches from backend",
			setupMock: func(mockClient *hotelMocks.MockHotel, mockCache *cacheMocks.MockRedisCache) {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockClient.EXPECT().
					List(gomock.Any(), gomock.Any()).
					Return(api.Page[model.Hotel]{
						Count:   12,
						Results: []model.Hotel{{ID: "h-1", Name: "Phoenix Nairobi"}},
					}, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:   false,
			wantTotal: 12,
		},
		{
			name: "backend error",
			setupMock: func(mockClient *hotelMocks.MockHotel, mockCache *cacheMocks.MockRedisCache) {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockClient.EXPECT().
					List(gomock.Any(), gomock.Any()).
					Return(api.Page[model.Hotel]{}, errors.New("backend down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockClient, mockCache := newService(t)
			tt.setupMock(mockClient, mockCache)

			res, err := svc.List(context.Background(), params)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				if tt.wantTotal > 0 {
					assert.Equal(t, tt.wantTotal, res.TotalData)
				}
			}
		})
	}
}

func TestHotelService_Get(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mockClient *hotelMocks.MockHotel, mockCache *cacheMocks.MockRedisCache)
		wantErr   bool
		wantID    string
	}{
		{
			name: "cache miss, successful fetch",
			setupMock: func(mockClient *hotelMocks.MockHotel, mockCache *cacheMocks.MockRedisCache) {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockClient.EXPECT().
					Get(gomock.Any(), "h-1").
					Return(model.Hotel{ID: "h-1", Name: "Phoenix Nairobi"}, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			wantID:  "h-1",
		},
		{
			name: "backend error",
			setupMock: func(mockClient *hotelMocks.MockHotel, mockCache *cacheMocks.MockRedisCache) {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockClient.EXPECT().
					Get(gomock.Any(), "h-1").
					Return(model.Hotel{}, errors.New("backend down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockClient, mockCache := newService(t)
			tt.setupMock(mockClient, mockCache)

			res, err := svc.Get(context.Background(), "h-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, res.ID)
			}
		})
	}
}

func validCreateRequest() dto.CreateHotelRequest {
	return dto.CreateHotelRequest{
		Name:        "Phoenix Kisumu",
		Description: "Lakeside property",
		Address:     "1 Oginga Odinga St",
		City:        "Kisumu",
		Country:     "Kenya",
		StarRating:  4,
	}
}

func TestHotelService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateHotelRequest
		setupMock func(mockClient *hotelMocks.MockHotel, mockCache *cacheMocks.MockRedisCache)
		wantErr   bool
	}{
		{
			name: "successful creation without image",
			req:  validCreateRequest(),
			setupMock: func(mockClient *hotelMocks.MockHotel, mockCache *cacheMocks.MockRedisCache) {
				mockClient.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(model.Hotel{ID: "h-9"}, nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name:      "invalid star rating fails before any backend call",
			req:       dto.CreateHotelRequest{Name: "X", Description: "d", Address: "a", City: "c", Country: "k", StarRating: 9},
			setupMock: func(mockClient *hotelMocks.MockHotel, mockCache *cacheMocks.MockRedisCache) {},
			wantErr:   true,
		},
		{
			name: "backend rejection is relayed",
			req:  validCreateRequest(),
			setupMock: func(mockClient *hotelMocks.MockHotel, mockCache *cacheMocks.MockRedisCache) {
				mockClient.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(model.Hotel{}, errors.New("duplicate name"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockClient, mockCache := newService(t)
			tt.setupMock(mockClient, mockCache)

			_, err := svc.Create(context.Background(), tt.req, nil, nil)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHotelService_Availability(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.AvailabilityRequest
		setupMock func(mockClient *hotelMocks.MockHotel)
		wantErr   bool
		wantRooms int
	}{
		{
			name: "successful check",
			req:  dto.AvailabilityRequest{Hotel: "h-1", CheckIn: "2026-09-01", CheckOut: "2026-09-04", Guests: 2},
			setupMock: func(mockClient *hotelMocks.MockHotel) {
				mockClient.EXPECT().
					Availability(gomock.Any(), gomock.Any()).
					Return(dto.AvailabilityResponse{
						AvailableRooms: []model.Room{{ID: "r-1", Status: model.RoomStatusAvailable}},
					}, nil)
			},
			wantErr:   false,
			wantRooms: 1,
		},
		{
			name:      "malformed date fails before any backend call",
			req:       dto.AvailabilityRequest{Hotel: "h-1", CheckIn: "tomorrow", CheckOut: "2026-09-04", Guests: 2},
			setupMock: func(mockClient *hotelMocks.MockHotel) {},
			wantErr:   true,
		},
		{
			name:      "too many guests fails before any backend call",
			req:       dto.AvailabilityRequest{Hotel: "h-1", CheckIn: "2026-09-01", CheckOut: "2026-09-04", Guests: 11},
			setupMock: func(mockClient *hotelMocks.MockHotel) {},
			wantErr:   true,
		},
		{
			name:      "check-out before check-in fails before any backend call",
			req:       dto.AvailabilityRequest{Hotel: "h-1", CheckIn: "2026-09-10", CheckOut: "2026-09-01", Guests: 2},
			setupMock: func(mockClient *hotelMocks.MockHotel) {},
			wantErr:   true,
		},
		{
			name:      "sixty night stay fails before any backend call",
			req:       dto.AvailabilityRequest{Hotel: "h-1", CheckIn: "2026-09-01", CheckOut: "2026-10-31", Guests: 2},
			setupMock: func(mockClient *hotelMocks.MockHotel) {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockClient, _ := newService(t)
			tt.setupMock(mockClient)

			res, err := svc.Availability(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, res.AvailableRooms, tt.wantRooms)
			}
		})
	}
}

func TestHotelService_UpdateRoomStatus(t *testing.T) {
	t.Run("valid status", func(t *testing.T) {
		svc, mockClient, _ := newService(t)

		mockClient.EXPECT().
			UpdateRoomStatus(gomock.Any(), "r-1", gomock.Any()).
			Return(model.Room{ID: "r-1", Status: model.RoomStatusCleaning}, nil)

		room, err := svc.UpdateRoomStatus(context.Background(), "r-1", dto.UpdateRoomStatusRequest{Status: model.RoomStatusCleaning})

		assert.NoError(t, err)
		assert.Equal(t, model.RoomStatusCleaning, room.Status)
	})

	t.Run("unknown status fails before any backend call", func(t *testing.T) {
		svc, _, _ := newService(t)

		_, err := svc.UpdateRoomStatus(context.Background(), "r-1", dto.UpdateRoomStatusRequest{Status: "renovating"})

		assert.Error(t, err)
	})
}
