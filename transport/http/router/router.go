package router

import (
	"github.com/go-chi/chi/v5"

	"karaoke/internal/handlers/booking"
	"karaoke/internal/handlers/customer"
	"karaoke/internal/handlers/promo"
	"karaoke/internal/handlers/room"
	"karaoke/internal/handlers/settings"
)

type DomainHandlers struct {
	Booking  booking.Handler
	Room     room.Handler
	Customer customer.Handler
	Settings settings.Handler
	Promo    promo.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Customer.Router(routerGroup)
		r.DomainHandlers.Settings.Router(routerGroup)
		r.DomainHandlers.Promo.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
