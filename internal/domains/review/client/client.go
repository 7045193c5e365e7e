package client

//go:generate go run go.uber.org/mock/mockgen -source=./client.go -destination=../mocks/client_mock.go -package=mocks

import (
	"context"
	"net/url"
	"phoenix/infras/api"
	"phoenix/internal/domains/review/model"
	"phoenix/internal/domains/review/model/dto"
)

const pathReviews = "/reviews/"

type Review interface {
	List(ctx context.Context, query url.Values) (api.Page[model.Review], error)
	Create(ctx context.Context, req dto.CreateReviewRequest) (model.Review, error)
	Update(ctx context.Context, id string, req dto.UpdateReviewRequest) (model.Review, error)
	Delete(ctx context.Context, id string) error
	Approve(ctx context.Context, id string) (model.Review, error)
}

type clientImpl struct {
	api api.Client
}

func New(apiClient api.Client) Review {
	return &clientImpl{api: apiClient}
}

func (c *clientImpl) List(ctx context.Context, query url.Values) (api.Page[model.Review], error) {
	var page api.Page[model.Review]

	err := c.api.Get(ctx, pathReviews, query, &page)

	return page, err
}

func (c *clientImpl) Create(ctx context.Context, req dto.CreateReviewRequest) (model.Review, error) {
	var review model.Review

	err := c.api.Post(ctx, pathReviews, req, &review)

	return review, err
}

func (c *clientImpl) Update(ctx context.Context, id string, req dto.UpdateReviewRequest) (model.Review, error) {
	var review model.Review

	err := c.api.Patch(ctx, pathReviews+id+"/", req, &review)

	return review, err
}

func (c *clientImpl) Delete(ctx context.Context, id string) error {
	return c.api.Delete(ctx, pathReviews+id+"/", nil)
}

func (c *clientImpl) Approve(ctx context.Context, id string) (model.Review, error) {
	var review model.Review

	err := c.api.Post(ctx, pathReviews+id+"/approve/", nil, &review)

	return review, err
}
