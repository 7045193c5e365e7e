package router

import (
	"phoenix/config"
	"phoenix/internal/handlers/auth"
	"phoenix/internal/handlers/booking"
	"phoenix/internal/handlers/hotel"
	"phoenix/internal/handlers/payment"
	"phoenix/internal/handlers/review"
	"phoenix/internal/handlers/user"
	"phoenix/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Auth    auth.Handler
	Hotel   hotel.Handler
	Booking booking.Handler
	Payment payment.Handler
	Review  review.Handler
	User    user.Handler
}

type Router struct {
	Config         *config.Config
	DomainHandlers DomainHandlers
	AppMiddleware  middleware.AppMiddleware
	Guard          *middleware.Guard
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(r.AppMiddleware.Tracing)

	if r.Config.App.CORS.Enable {
		router.Use(cors.Handler(cors.Options{
			AllowCredentials: r.Config.App.CORS.AllowCredentials,
			AllowedHeaders:   r.Config.App.CORS.AllowedHeaders,
			AllowedMethods:   r.Config.App.CORS.AllowedMethods,
			AllowedOrigins:   r.Config.App.CORS.AllowedOrigins,
			MaxAge:           r.Config.App.CORS.MaxAgeSeconds,
		}))
	}

	if r.Config.App.RateLimiter.Enable {
		router.Use(r.AppMiddleware.RateLimit())
	}

	// Every route sees the session, pages and JSON endpoints alike.
	router.Use(r.Guard.WithSession)

	r.DomainHandlers.Hotel.Router(router)
	r.DomainHandlers.Auth.Router(router)
	r.DomainHandlers.Booking.Router(router)
	r.DomainHandlers.Payment.Router(router)
	r.DomainHandlers.Review.Router(router)
	r.DomainHandlers.User.Router(router)

	router.Route("/api/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Hotel.APIRouter(routerGroup)
		r.DomainHandlers.Auth.APIRouter(routerGroup)
	})

	router.Get("/swagger/*", httpSwagger.WrapHandler)
}

func New(cfg *config.Config, domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware, guard *middleware.Guard) Router {
	return Router{
		Config:         cfg,
		DomainHandlers: domainHandlers,
		AppMiddleware:  appMiddleware,
		Guard:          guard,
	}
}
