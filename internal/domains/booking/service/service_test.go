package service_test

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"phoenix/infras/api"
	otelMocks "phoenix/infras/otel/mocks"
	bookingMocks "phoenix/internal/domains/booking/mocks"
	"phoenix/internal/domains/booking/model"
	"phoenix/internal/domains/booking/model/dto"
	"phoenix/internal/domains/booking/service"
	gDto "phoenix/shared/dto"
	"phoenix/shared/failure"
)

func newService(t *testing.T) (service.Booking, *bookingMocks.MockBooking) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockClient := bookingMocks.NewMockBooking(ctrl)

	return service.New(mockClient, otelMocks.NewOtel()), mockClient
}

func validCreateRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		Hotel:    "h-1",
		Room:     "r-1",
		CheckIn:  "2026-09-01",
		CheckOut: "2026-09-04",
		Guests:   2,
	}
}

func TestBookingService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func(mockClient *bookingMocks.MockBooking)
		wantErr   bool
	}{
		{
			name: "successful creation",
			req:  validCreateRequest(),
			setupMock: func(mockClient *bookingMocks.MockBooking) {
				mockClient.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(model.Booking{ID: "b-1", Status: model.StatusPending}, nil)
			},
			wantErr: false,
		},
		{
			name: "inverted dates fail before any backend call",
			req: dto.CreateBookingRequest{
				Hotel: "h-1", Room: "r-1", CheckIn: "2026-09-04", CheckOut: "2026-09-01", Guests: 2,
			},
			setupMock: func(mockClient *bookingMocks.MockBooking) {},
			wantErr:   true,
		},
		{
			name: "same-day stay fails before any backend call",
			req: dto.CreateBookingRequest{
				Hotel: "h-1", Room: "r-1", CheckIn: "2026-09-01", CheckOut: "2026-09-01", Guests: 2,
			},
			setupMock: func(mockClient *bookingMocks.MockBooking) {},
			wantErr:   true,
		},
		{
			name: "stay over thirty nights fails before any backend call",
			req: dto.CreateBookingRequest{
				Hotel: "h-1", Room: "r-1", CheckIn: "2026-09-01", CheckOut: "2026-10-15", Guests: 2,
			},
			setupMock: func(mockClient *bookingMocks.MockBooking) {},
			wantErr:   true,
		},
		{
			name: "missing room fails before any backend call",
			req: dto.CreateBookingRequest{
				Hotel: "h-1", CheckIn: "2026-09-01", CheckOut: "2026-09-04", Guests: 2,
			},
			setupMock: func(mockClient *bookingMocks.MockBooking) {},
			wantErr:   true,
		},
		{
			name: "room no longer available is relayed",
			req:  validCreateRequest(),
			setupMock: func(mockClient *bookingMocks.MockBooking) {
				mockClient.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, failure.FromStatus(http.StatusConflict, "Room is no longer available"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockClient := newService(t)
			tt.setupMock(mockClient)

			_, err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_List(t *testing.T) {
	t.Run("status forwarded to backend", func(t *testing.T) {
		svc, mockClient := newService(t)

		mockClient.EXPECT().
			List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, query url.Values) (api.Page[model.Booking], error) {
				assert.Equal(t, model.StatusConfirmed, query.Get("status"))

				return api.Page[model.Booking]{
					Count:   1,
					Results: []model.Booking{{ID: "b-2", Status: model.StatusConfirmed}},
				}, nil
			})

		res, err := svc.List(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, model.StatusConfirmed)

		assert.NoError(t, err)
		assert.Equal(t, 1, res.TotalData)
	})

	t.Run("backend failure", func(t *testing.T) {
		svc, mockClient := newService(t)

		mockClient.EXPECT().
			List(gomock.Any(), gomock.Any()).
			Return(api.Page[model.Booking]{}, errors.New("backend down"))

		_, err := svc.List(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, "")

		assert.Error(t, err)
	})
}

func TestBookingService_My(t *testing.T) {
	svc, mockClient := newService(t)

	mockClient.EXPECT().
		My(gomock.Any(), gomock.Any()).
		Return(api.Page[model.Booking]{
			Count:   2,
			Results: []model.Booking{{ID: "b-1"}, {ID: "b-2"}},
		}, nil)

	res, err := svc.My(context.Background(), gDto.QueryParams{Page: 1, Limit: 10})

	assert.NoError(t, err)
	assert.Len(t, res.Bookings, 2)
	assert.Equal(t, 1, res.TotalPage)
}

func TestBookingService_Update(t *testing.T) {
	t.Run("empty update is rejected locally", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.Update(context.Background(), "b-1", dto.UpdateBookingRequest{})

		assert.Error(t, err)
	})

	t.Run("date-only update passes through", func(t *testing.T) {
		svc, mockClient := newService(t)

		mockClient.EXPECT().
			Update(gomock.Any(), "b-1", gomock.Any()).
			Return(model.Booking{ID: "b-1", CheckOut: "2026-09-05"}, nil)

		res, err := svc.Update(context.Background(), "b-1", dto.UpdateBookingRequest{
			CheckIn:  "2026-09-01",
			CheckOut: "2026-09-05",
		})

		assert.NoError(t, err)
		assert.Equal(t, "2026-09-05", res.CheckOut)
	})
}

func TestBookingService_ConfirmAndCancel(t *testing.T) {
	t.Run("confirm re-renders whatever status comes back", func(t *testing.T) {
		svc, mockClient := newService(t)

		mockClient.EXPECT().
			Confirm(gomock.Any(), "b-1").
			Return(model.Booking{ID: "b-1", Status: model.StatusConfirmed}, nil)

		res, err := svc.Confirm(context.Background(), "b-1")

		assert.NoError(t, err)
		assert.Equal(t, model.StatusConfirmed, res.Status)
	})

	t.Run("cancel error is relayed", func(t *testing.T) {
		svc, mockClient := newService(t)

		mockClient.EXPECT().
			Cancel(gomock.Any(), "b-1").
			Return(failure.FromStatus(http.StatusBadRequest, "Booking can no longer be cancelled"))

		err := svc.Cancel(context.Background(), "b-1")

		assert.Error(t, err)
	})
}

func TestBookingService_Summary(t *testing.T) {
	svc, mockClient := newService(t)

	mockClient.EXPECT().
		List(gomock.Any(), gomock.Any()).
		Return(api.Page[model.Booking]{
			Count: 3,
			Results: []model.Booking{
				{ID: "b-1", Status: model.StatusPending, TotalPrice: 100},
				{ID: "b-2", Status: model.StatusCheckedIn, TotalPrice: 200},
				{ID: "b-3", Status: model.StatusCancelled, TotalPrice: 50},
			},
		}, nil)

	summary, err := svc.Summary(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 1, summary.CheckedIn)
	assert.InDelta(t, 300.0, summary.Revenue, 0.001)
}
