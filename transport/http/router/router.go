package router

import (
	"dockhub/internal/handlers/appointment"
	"dockhub/internal/handlers/auth"
	"dockhub/internal/handlers/checkin"
	"dockhub/internal/handlers/dock"
	"dockhub/internal/handlers/health"
	"dockhub/internal/handlers/notification"
	"dockhub/internal/handlers/profile"
	"dockhub/internal/handlers/realtime"
	"dockhub/internal/handlers/report"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Health       health.Handler
	Auth         auth.Handler
	Profile      profile.Handler
	CheckIn      checkin.Handler
	Dock         dock.Handler
	Appointment  appointment.Handler
	Report       report.Handler
	Realtime     realtime.Handler
	Notification notification.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Health.Router(router)

	router.Get("/swagger/*", httpSwagger.WrapHandler)

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Profile.Router(routerGroup)
		r.DomainHandlers.CheckIn.Router(routerGroup)
		r.DomainHandlers.Dock.Router(routerGroup)
		r.DomainHandlers.Appointment.Router(routerGroup)
		r.DomainHandlers.Report.Router(routerGroup)
		r.DomainHandlers.Realtime.Router(routerGroup)
		r.DomainHandlers.Notification.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
