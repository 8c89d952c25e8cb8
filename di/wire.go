//go:build wireinject
// +build wireinject

package di

import (
	"todoapp/config"
	"todoapp/infras/aws"
	"todoapp/infras/jwt"
	"todoapp/infras/otel"
	"todoapp/infras/redis"
	"todoapp/infras/s3"
	todoHandler "todoapp/internal/handlers/todo"
	"todoapp/shared/cache"
	"todoapp/transport/http"
	"todoapp/transport/http/middleware"
	"todoapp/transport/http/router"

	todoRepository "todoapp/internal/domains/todo/repository"
	todoService "todoapp/internal/domains/todo/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	aws.New,
	redis.New,
	jwt.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var todoDomain = wire.NewSet(
	todoRepository.New,
	todoService.New,
)

var domains = wire.NewSet(
	todoDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	todoHandler.New,
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
