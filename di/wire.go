//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"karaoke/app"
	"karaoke/config"
	"karaoke/infras/kafka"
	"karaoke/infras/otel"
	"karaoke/infras/payment"
	"karaoke/infras/postgres"
	"karaoke/infras/redis"
	"karaoke/infras/s3"
	"karaoke/internal/events"
	"karaoke/internal/notification"
	"karaoke/internal/scheduler"
	"karaoke/shared/cache"
	"karaoke/transport/http"
	"karaoke/transport/http/middleware"
	"karaoke/transport/http/router"

	bookingRepository "karaoke/internal/domains/booking/repository"
	bookingService "karaoke/internal/domains/booking/service"
	customerRepository "karaoke/internal/domains/customer/repository"
	customerService "karaoke/internal/domains/customer/service"
	promoRepository "karaoke/internal/domains/promo/repository"
	promoService "karaoke/internal/domains/promo/service"
	roomRepository "karaoke/internal/domains/room/repository"
	roomService "karaoke/internal/domains/room/service"
	settingsRepository "karaoke/internal/domains/settings/repository"
	settingsService "karaoke/internal/domains/settings/service"

	bookingHandler "karaoke/internal/handlers/booking"
	customerHandler "karaoke/internal/handlers/customer"
	promoHandler "karaoke/internal/handlers/promo"
	roomHandler "karaoke/internal/handlers/room"
	settingsHandler "karaoke/internal/handlers/settings"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	s3.New,
	kafka.New,
	payment.NewStripeGateway,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	events.NewKafkaPublisher,
	notification.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var customerDomain = wire.NewSet(
	customerRepository.New,
	customerService.New,
)

var settingsDomain = wire.NewSet(
	settingsRepository.New,
	settingsService.New,
)

var promoDomain = wire.NewSet(
	promoRepository.New,
	promoService.New,
)

var domains = wire.NewSet(
	bookingDomain,
	roomDomain,
	customerDomain,
	settingsDomain,
	promoDomain,
)

var schedulers = wire.NewSet(
	scheduler.NewReminder,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	bookingHandler.New,
	roomHandler.New,
	customerHandler.New,
	settingsHandler.New,
	promoHandler.New,
	router.New,
)

func InitializeService() *app.App {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		schedulers,
		routing,
		http.New,
		app.New,
	)

	return &app.App{}
}
