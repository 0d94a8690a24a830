//go:build wireinject
// +build wireinject

package di

import (
	"fuego/config"
	"fuego/infras/genai"
	"fuego/infras/jwt"
	"fuego/infras/otel"
	"fuego/infras/postgres"
	"fuego/infras/redis"
	"fuego/shared/cache"
	"fuego/transport/http"
	"fuego/transport/http/middleware"
	"fuego/transport/http/router"

	"fuego/internal/domains/reservation/localstore"
	reservationRepository "fuego/internal/domains/reservation/repository"
	reservationService "fuego/internal/domains/reservation/service"

	dashboardService "fuego/internal/domains/dashboard/service"

	marketingService "fuego/internal/domains/marketing/service"

	authService "fuego/internal/domains/auth/service"

	authHandler "fuego/internal/handlers/auth"
	dashboardHandler "fuego/internal/handlers/dashboard"
	marketingHandler "fuego/internal/handlers/marketing"
	reservationHandler "fuego/internal/handlers/reservation"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	genai.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var reservationDomain = wire.NewSet(
	localstore.New,
	reservationRepository.New,
	reservationService.New,
)

var dashboardDomain = wire.NewSet(
	dashboardService.New,
)

var marketingDomain = wire.NewSet(
	marketingService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var domains = wire.NewSet(
	reservationDomain,
	dashboardDomain,
	marketingDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	reservationHandler.New,
	dashboardHandler.New,
	marketingHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
