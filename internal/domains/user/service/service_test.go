package service_test

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"phoenix/config"
	"phoenix/infras/api"
	otelMocks "phoenix/infras/otel/mocks"
	userMocks "phoenix/internal/domains/user/mocks"
	"phoenix/internal/domains/user/model"
	"phoenix/internal/domains/user/model/dto"
	"phoenix/internal/domains/user/service"
	cacheMocks "phoenix/shared/cache/mocks"
	"phoenix/shared/constant"
	gDto "phoenix/shared/dto"
	"phoenix/shared/failure"
)

func newService(t *testing.T) (service.User, *userMocks.MockUser, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockClient := userMocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockClient, cfg, mockCache, otelMocks.NewOtel())

	return svc, mockClient, mockCache
}

func TestUserService_List(t *testing.T) {
	params := gDto.QueryParams{Page: 1, Limit: 10}

	t.Run("role filter is forwarded", func(t *testing.T) {
		svc, mockClient, _ := newService(t)

		mockClient.EXPECT().
			List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, query url.Values) (api.Page[model.User], error) {
				assert.Equal(t, constant.RoleStaff, query.Get("role"))

				return api.Page[model.User]{
					Count:   1,
					Results: []model.User{{ID: "u-1", Role: constant.RoleStaff}},
				}, nil
			})

		res, err := svc.List(context.Background(), params, constant.RoleStaff)

		assert.NoError(t, err)
		assert.Len(t, res.Users, 1)
		assert.Equal(t, 1, res.TotalData)
	})

	t.Run("no filter lists everyone", func(t *testing.T) {
		svc, mockClient, _ := newService(t)

		mockClient.EXPECT().
			List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, query url.Values) (api.Page[model.User], error) {
				assert.Empty(t, query.Get("role"))

				return api.Page[model.User]{Count: 25, Results: make([]model.User, 10)}, nil
			})

		res, err := svc.List(context.Background(), params, "")

		assert.NoError(t, err)
		assert.Equal(t, 25, res.TotalData)
		assert.Equal(t, 3, res.TotalPage)
	})

	t.Run("unknown role filter fails before any backend call", func(t *testing.T) {
		svc, _, _ := newService(t)

		_, err := svc.List(context.Background(), params, "superuser")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("backend error is relayed", func(t *testing.T) {
		svc, mockClient, _ := newService(t)

		mockClient.EXPECT().
			List(gomock.Any(), gomock.Any()).
			Return(api.Page[model.User]{}, failure.InternalError(errors.New("backend unavailable")))

		_, err := svc.List(context.Background(), params, "")

		assert.Error(t, err)
	})
}

func TestUserService_Update(t *testing.T) {
	t.Run("empty update is rejected locally", func(t *testing.T) {
		svc, _, _ := newService(t)

		_, err := svc.Update(context.Background(), "u-1", dto.UpdateUserRequest{})

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("unknown role fails before any backend call", func(t *testing.T) {
		svc, _, _ := newService(t)

		_, err := svc.Update(context.Background(), "u-1", dto.UpdateUserRequest{Role: "superuser"})

		assert.Error(t, err)
	})

	t.Run("promotion to staff invalidates the stats cache", func(t *testing.T) {
		svc, mockClient, mockCache := newService(t)

		mockClient.EXPECT().
			Update(gomock.Any(), "u-1", gomock.Any()).
			Return(model.User{ID: "u-1", Role: constant.RoleStaff}, nil)

		mockCache.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Update(context.Background(), "u-1", dto.UpdateUserRequest{Role: constant.RoleStaff})

		assert.NoError(t, err)
		assert.Equal(t, constant.RoleStaff, res.Role)
	})

	t.Run("deactivation carries the pointer flag", func(t *testing.T) {
		svc, mockClient, mockCache := newService(t)

		inactive := false

		mockClient.EXPECT().
			Update(gomock.Any(), "u-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, req dto.UpdateUserRequest) (model.User, error) {
				if assert.NotNil(t, req.IsActive) {
					assert.False(t, *req.IsActive)
				}

				return model.User{ID: "u-1", IsActive: false}, nil
			})

		mockCache.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Update(context.Background(), "u-1", dto.UpdateUserRequest{IsActive: &inactive})

		assert.NoError(t, err)
		assert.False(t, res.IsActive)
	})
}

func TestUserService_Delete(t *testing.T) {
	t.Run("delete invalidates the stats cache", func(t *testing.T) {
		svc, mockClient, mockCache := newService(t)

		mockClient.EXPECT().
			Delete(gomock.Any(), "u-1").
			Return(nil)

		mockCache.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		assert.NoError(t, svc.Delete(context.Background(), "u-1"))
	})

	t.Run("missing user is relayed", func(t *testing.T) {
		svc, mockClient, _ := newService(t)

		mockClient.EXPECT().
			Delete(gomock.Any(), "u-404").
			Return(failure.NotFound(model.EntityName))

		err := svc.Delete(context.Background(), "u-404")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestUserService_DashboardStats(t *testing.T) {
	t.Run("cache hit skips the backend", func(t *testing.T) {
		svc, _, mockCache := newService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		_, err := svc.DashboardStats(context.Background())

		assert.NoError(t, err)
	})

	t.Run("cache miss fetches from backend", func(t *testing.T) {
		svc, mockClient, mockCache := newService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockClient.EXPECT().
			DashboardStats(gomock.Any()).
			Return(model.DashboardStats{TotalUsers: 42, TotalHotels: 7, TotalRevenue: 125000}, nil)

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		stats, err := svc.DashboardStats(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 42, stats.TotalUsers)
		assert.Equal(t, 7, stats.TotalHotels)
	})

	t.Run("backend error is relayed", func(t *testing.T) {
		svc, mockClient, mockCache := newService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockClient.EXPECT().
			DashboardStats(gomock.Any()).
			Return(model.DashboardStats{}, failure.InternalError(errors.New("backend unavailable")))

		_, err := svc.DashboardStats(context.Background())

		assert.Error(t, err)
	})
}
