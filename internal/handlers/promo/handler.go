package promo

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"

	"karaoke/infras/otel"
	"karaoke/internal/domains/promo/model"
	"karaoke/internal/domains/promo/model/dto"
	"karaoke/internal/domains/promo/service"
	"karaoke/shared"
	"karaoke/shared/constant"
	gDto "karaoke/shared/dto"
	"karaoke/shared/validator"
	"karaoke/transport/http/response"
)

type Handler struct {
	service service.PromoCode
	otel    otel.Otel
}

func New(service service.PromoCode, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/promo-codes", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreatePromoCode)
		routerGroup.Get("/", handler.GetPromoCodes)
		routerGroup.Patch("/{code}", handler.UpdatePromoCode)
		routerGroup.Delete("/{code}", handler.DeletePromoCode)
	})
}

// CreatePromoCode handles the creation of a new promo code.
// @Summary Create a new promo code
// @Description Create a promo code. Codes are stored lower-cased and start active.
// @Tags PromoCode
// @Accept json
// @Produce json
// @Param request body dto.CreatePromoCodeRequest true "Create Promo Code Request"
// @Success 201 {object} response.Message "Promo code created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/promo-codes [post]
func (handler *Handler) CreatePromoCode(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePromoCode")
	defer scope.End()

	req := dto.CreatePromoCodeRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create promo code")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Promo code created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Promo code created successfully")
}

// GetPromoCodes retrieves all promo codes based on query parameters.
// @Summary Get all promo codes
// @Description Retrieve all promo codes, newest first.
// @Tags PromoCode
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param active query boolean false "Filter by active flag"
// @Success 200 {object} response.Data[dto.GetPromoCodesResponse] "List of promo codes"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/promo-codes [get]
func (handler *Handler) GetPromoCodes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPromoCodes")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	promoCodes, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get promo codes")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Promo codes retrieved successfully")

	response.WithJSON(w, http.StatusOK, promoCodes)
}

// UpdatePromoCode updates an existing promo code by its code.
// @Summary Update a promo code
// @Description Update the active flag, discount or expiry of a promo code.
// @Tags PromoCode
// @Accept json
// @Produce json
// @Param code path string true "Promo code"
// @Param request body dto.UpdatePromoCodeRequest true "Update Promo Code Request"
// @Success 200 {object} response.Message "Promo code updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/promo-codes/{code} [patch]
func (handler *Handler) UpdatePromoCode(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePromoCode")
	defer scope.End()

	code := chi.URLParam(r, constant.RequestParamCode)

	req := dto.UpdatePromoCodeRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, code); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update promo code")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Promo code updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Promo code updated successfully")
}

// DeletePromoCode deletes a promo code by its code.
// @Summary Delete a promo code
// @Description Delete a promo code permanently.
// @Tags PromoCode
// @Accept json
// @Produce json
// @Param code path string true "Promo code"
// @Success 200 {object} response.Message "Promo code deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/promo-codes/{code} [delete]
func (handler *Handler) DeletePromoCode(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePromoCode")
	defer scope.End()

	code := chi.URLParam(r, constant.RequestParamCode)

	if err := handler.service.Delete(ctx, code); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete promo code")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Promo code deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Promo code deleted successfully")
}
