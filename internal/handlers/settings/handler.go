package settings

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"

	"karaoke/infras/otel"
	"karaoke/internal/domains/settings/model/dto"
	"karaoke/internal/domains/settings/service"
	"karaoke/shared/constant"
	"karaoke/shared/validator"
	"karaoke/transport/http/response"
)

type Handler struct {
	service service.Settings
	otel    otel.Otel
}

func New(service service.Settings, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/settings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetSettings)
		routerGroup.Patch("/", handler.UpdateSettings)
	})
}

// GetSettings retrieves the venue settings.
// @Summary Get the venue settings
// @Description Retrieve the venue settings, falling back to defaults when unset.
// @Tags Settings
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.SettingsResponse] "Venue settings"
// @Failure 500 {object} response.Error
// @Router /v1/settings [get]
func (handler *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSettings")
	defer scope.End()

	settings, err := handler.service.Get(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get settings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Settings retrieved successfully")

	response.WithJSON(w, http.StatusOK, settings)
}

// UpdateSettings merges partial settings over the current values.
// @Summary Update the venue settings
// @Description Merge the provided fields over the current settings and return the result.
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body dto.UpdateSettingsRequest true "Update Settings Request"
// @Success 200 {object} response.Data[dto.SettingsResponse] "Updated settings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/settings [patch]
func (handler *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSettings")
	defer scope.End()

	req := dto.UpdateSettingsRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	settings, err := handler.service.Update(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update settings")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Settings updated successfully by user " + user)

	response.WithJSON(w, http.StatusOK, settings)
}
