package service

import (
	"context"
	"phoenix/config"
	"phoenix/infras/otel"
	"phoenix/internal/domains/user/client"
	"phoenix/internal/domains/user/model"
	"phoenix/internal/domains/user/model/dto"
	"phoenix/shared/cache"
	"phoenix/shared/constant"
	gDto "phoenix/shared/dto"
	"phoenix/shared/failure"
	"phoenix/shared/validator"

	"github.com/rs/zerolog/log"
)

const cacheDashboardStats = "users:dashboard_stats"

type User interface {
	List(ctx context.Context, params gDto.QueryParams, role string) (dto.UsersResponse, error)
	Get(ctx context.Context, id string) (model.User, error)
	Update(ctx context.Context, id string, req dto.UpdateUserRequest) (model.User, error)
	Delete(ctx context.Context, id string) error
	DashboardStats(ctx context.Context) (model.DashboardStats, error)
}

type serviceImpl struct {
	userClient client.User
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(userClient client.User, cfg *config.Config, cache cache.RedisCache, ot otel.Otel) User {
	return &serviceImpl{
		userClient: userClient,
		cfg:        cfg,
		cache:      cache,
		otel:       ot,
	}
}

func (s *serviceImpl) List(ctx context.Context, params gDto.QueryParams, role string) (res dto.UsersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListUsers")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := params.Values()
	if role != "" {
		if !model.RoleValid(role) {
			return res, failure.BadRequestFromString("unknown role filter") //nolint:wrapcheck
		}

		query.Set("role", role)
	}

	page, err := s.userClient.List(ctx, query)
	if err != nil {
		log.Error().Err(err).Msg("failed to list users")

		return res, err
	}

	res.FromPage(page.Results, page.Count, params.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res model.User, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetUser")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.userClient.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get user")

		return res, err
	}

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateUserRequest) (res model.User, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateUser")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateUserRequest{}) {
		return res, failure.BadRequestFromString("update request cannot be empty") //nolint:wrapcheck
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	res, err = s.userClient.Update(ctx, id, req)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update user")

		return res, err
	}

	// Role or activation changes shift the admin dashboard counters.
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, cacheDashboardStats); err != nil {
			log.Error().Err(err).Msg("failed to invalidate dashboard stats cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteUser")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.userClient.Delete(ctx, id); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete user")

		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, cacheDashboardStats); err != nil {
			log.Error().Err(err).Msg("failed to invalidate dashboard stats cache")
		}
	}()

	return nil
}

// DashboardStats serves the admin landing page, cache-aside so a refresh
// storm does not hammer the backend aggregate endpoint.
func (s *serviceImpl) DashboardStats(ctx context.Context) (res model.DashboardStats, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DashboardStats")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheDashboardStats, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheDashboardStats).Msg("cache hit for dashboard stats")

		return res, nil
	}

	res, err = s.userClient.DashboardStats(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch dashboard stats")

		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheDashboardStats, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save dashboard stats to cache")
		}
	}()

	return res, nil
}
