package client

//go:generate go run go.uber.org/mock/mockgen -source=./client.go -destination=../mocks/client_mock.go -package=mocks

import (
	"context"
	"net/url"
	"phoenix/infras/api"
	"phoenix/internal/domains/user/model"
	"phoenix/internal/domains/user/model/dto"
)

const (
	pathAdminUsers     = "/admin/users/"
	pathDashboardStats = "/dashboard/stats/"
)

type User interface {
	List(ctx context.Context, query url.Values) (api.Page[model.User], error)
	Get(ctx context.Context, id string) (model.User, error)
	Update(ctx context.Context, id string, req dto.UpdateUserRequest) (model.User, error)
	Delete(ctx context.Context, id string) error
	DashboardStats(ctx context.Context) (model.DashboardStats, error)
}

type clientImpl struct {
	api api.Client
}

func New(apiClient api.Client) User {
	return &clientImpl{api: apiClient}
}

func (c *clientImpl) List(ctx context.Context, query url.Values) (api.Page[model.User], error) {
	var page api.Page[model.User]

	err := c.api.Get(ctx, pathAdminUsers, query, &page)

	return page, err
}

func (c *clientImpl) Get(ctx context.Context, id string) (model.User, error) {
	var user model.User

	err := c.api.Get(ctx, pathAdminUsers+id+"/", nil, &user)

	return user, err
}

func (c *clientImpl) Update(ctx context.Context, id string, req dto.UpdateUserRequest) (model.User, error) {
	var user model.User

	err := c.api.Patch(ctx, pathAdminUsers+id+"/", req, &user)

	return user, err
}

func (c *clientImpl) Delete(ctx context.Context, id string) error {
	return c.api.Delete(ctx, pathAdminUsers+id+"/", nil)
}

func (c *clientImpl) DashboardStats(ctx context.Context) (model.DashboardStats, error) {
	var stats model.DashboardStats

	err := c.api.Get(ctx, pathDashboardStats, nil, &stats)

	return stats, err
}
