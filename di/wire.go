//go:build wireinject
// +build wireinject

package di

import (
	"dockhub/config"
	"dockhub/infras/jwt"
	"dockhub/infras/kafka"
	"dockhub/infras/notify"
	"dockhub/infras/otel"
	"dockhub/infras/postgres"
	"dockhub/infras/redis"
	"dockhub/infras/s3"
	"dockhub/permissions"
	"dockhub/shared/cache"
	"dockhub/transport/http"
	"dockhub/transport/http/middleware"
	"dockhub/transport/http/router"

	appointmentRepository "dockhub/internal/domains/appointment/repository"
	appointmentService "dockhub/internal/domains/appointment/service"
	authService "dockhub/internal/domains/auth/service"
	checkInRepository "dockhub/internal/domains/checkin/repository"
	checkInService "dockhub/internal/domains/checkin/service"
	dockModel "dockhub/internal/domains/dock/model"
	dockRepository "dockhub/internal/domains/dock/repository"
	dockService "dockhub/internal/domains/dock/service"
	notificationService "dockhub/internal/domains/notification/service"
	profileRepository "dockhub/internal/domains/profile/repository"
	profileService "dockhub/internal/domains/profile/service"
	realtimeService "dockhub/internal/domains/realtime/service"
	reportService "dockhub/internal/domains/report/service"

	appointmentHandler "dockhub/internal/handlers/appointment"
	authHandler "dockhub/internal/handlers/auth"
	checkInHandler "dockhub/internal/handlers/checkin"
	dockHandler "dockhub/internal/handlers/dock"
	healthHandler "dockhub/internal/handlers/health"
	notificationHandler "dockhub/internal/handlers/notification"
	profileHandler "dockhub/internal/handlers/profile"
	realtimeHandler "dockhub/internal/handlers/realtime"
	reportHandler "dockhub/internal/handlers/report"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
	notify.NewEmail,
	notify.NewSMS,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var realtimeDomain = wire.NewSet(
	realtimeService.NewPublisher,
	realtimeService.NewHub,
)

var notificationDomain = wire.NewSet(
	notificationService.New,
)

var dockDomain = wire.NewSet(
	dockModel.NewRegistryFromConfig,
	dockRepository.New,
	dockRepository.NewBlockStore,
	dockService.New,
)

var checkInDomain = wire.NewSet(
	checkInRepository.New,
	checkInService.New,
)

var appointmentDomain = wire.NewSet(
	appointmentRepository.New,
	appointmentService.New,
)

var reportDomain = wire.NewSet(
	reportService.New,
)

var profileDomain = wire.NewSet(
	profileRepository.New,
	profileService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var domains = wire.NewSet(
	realtimeDomain,
	notificationDomain,
	dockDomain,
	checkInDomain,
	appointmentDomain,
	reportDomain,
	profileDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	healthHandler.New,
	authHandler.New,
	profileHandler.New,
	checkInHandler.New,
	dockHandler.New,
	appointmentHandler.New,
	reportHandler.New,
	realtimeHandler.New,
	notificationHandler.New,
	router.New,
)

func InitializeService() *App {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
		wire.Struct(new(App), "Config", "HTTP", "Hub", "Kafka", "DB", "Otel"),
	)

	return &App{}
}
