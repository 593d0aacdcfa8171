package app

import (
	"context"

	"github.com/rs/zerolog/log"

	settingsService "karaoke/internal/domains/settings/service"
	"karaoke/internal/scheduler"
	"karaoke/transport/http"
)

// App ties the HTTP server, the reminder sweep and the startup tasks
// together.
type App struct {
	HTTP      *http.HTTP
	Scheduler *scheduler.Reminder
	Settings  settingsService.Settings
}

func New(h *http.HTTP, s *scheduler.Reminder, settings settingsService.Settings) *App {
	return &App{
		HTTP:      h,
		Scheduler: s,
		Settings:  settings,
	}
}

// Run blocks serving HTTP until shutdown.
func (a *App) Run() {
	if err := a.Settings.EnsureDefaults(context.Background()); err != nil {
		log.Error().Err(err).Msg("failed to ensure default settings")
	}

	if err := a.Scheduler.Start(); err != nil {
		log.Error().Err(err).Msg("failed to start reminder sweep")
	}
	defer a.Scheduler.Stop()

	a.HTTP.Serve()
}
