//go:build wireinject
// +build wireinject

package di

import (
	"phoenix/config"
	"phoenix/infras/api"
	"phoenix/infras/otel"
	"phoenix/infras/postgres"
	"phoenix/infras/redis"
	"phoenix/infras/s3"
	"phoenix/infras/token"
	"phoenix/internal/handlers/pages"
	"phoenix/internal/session"
	"phoenix/navigation"
	"phoenix/shared/cache"
	"phoenix/transport/http"
	"phoenix/transport/http/middleware"
	"phoenix/transport/http/render"
	"phoenix/transport/http/router"

	authClient "phoenix/internal/domains/auth/client"
	authService "phoenix/internal/domains/auth/service"
	bookingClient "phoenix/internal/domains/booking/client"
	bookingService "phoenix/internal/domains/booking/service"
	hotelClient "phoenix/internal/domains/hotel/client"
	hotelService "phoenix/internal/domains/hotel/service"
	paymentClient "phoenix/internal/domains/payment/client"
	paymentService "phoenix/internal/domains/payment/service"
	reviewClient "phoenix/internal/domains/review/client"
	reviewService "phoenix/internal/domains/review/service"
	userClient "phoenix/internal/domains/user/client"
	userService "phoenix/internal/domains/user/service"

	authHandler "phoenix/internal/handlers/auth"
	bookingHandler "phoenix/internal/handlers/booking"
	hotelHandler "phoenix/internal/handlers/hotel"
	paymentHandler "phoenix/internal/handlers/payment"
	reviewHandler "phoenix/internal/handlers/review"
	userHandler "phoenix/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	s3.New,
	token.New,
	api.New,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	navigation.Get,
	render.New,
)

var sessions = wire.NewSet(
	session.NewStore,
	session.NewManager,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewGuard,
)

var authDomain = wire.NewSet(
	authClient.New,
	authService.New,
)

var hotelDomain = wire.NewSet(
	hotelClient.New,
	hotelService.New,
)

var bookingDomain = wire.NewSet(
	bookingClient.New,
	bookingService.New,
)

var paymentDomain = wire.NewSet(
	paymentClient.New,
	paymentService.New,
)

var reviewDomain = wire.NewSet(
	reviewClient.New,
	reviewService.New,
)

var userDomain = wire.NewSet(
	userClient.New,
	userService.New,
)

var domains = wire.NewSet(
	authDomain,
	hotelDomain,
	bookingDomain,
	paymentDomain,
	reviewDomain,
	userDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	pages.NewKit,
	authHandler.New,
	hotelHandler.New,
	bookingHandler.New,
	paymentHandler.New,
	reviewHandler.New,
	userHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, error) {
	wire.Build(
		configurations,
		infrastructures,
		sharedHelpers,
		sessions,
		middlewares,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}, nil
}
