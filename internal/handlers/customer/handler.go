package customer

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"

	"karaoke/infras/otel"
	"karaoke/internal/domains/customer/model"
	"karaoke/internal/domains/customer/model/dto"
	"karaoke/internal/domains/customer/service"
	"karaoke/shared/constant"
	gDto "karaoke/shared/dto"
	"karaoke/shared/validator"
	"karaoke/transport/http/response"
)

type Handler struct {
	service service.Customer
	otel    otel.Otel
}

func New(service service.Customer, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/customers", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetCustomers)
		routerGroup.Get("/find", handler.FindCustomer)
		routerGroup.Get("/{id}", handler.GetCustomerByID)
		routerGroup.Get("/{id}/bookings", handler.GetCustomerBookings)
		routerGroup.Patch("/{id}", handler.UpdateCustomer)
	})
}

// GetCustomers retrieves all customers based on query parameters.
// @Summary Get all customers
// @Description Retrieve all customers, most recently updated first.
// @Tags Customer
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param full_name query string false "Filter by name"
// @Success 200 {object} response.Data[dto.GetCustomersResponse] "List of customers"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/customers [get]
func (handler *Handler) GetCustomers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCustomers")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	if r.URL.Query().Get(constant.RequestParamSortBy) == "" {
		queryParams.SortBy = constant.FieldModifiedAt
		queryParams.SortDir = gDto.SortDirDesc
	}

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if fullName := r.URL.Query().Get(model.FieldFullName); fullName != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldFullName,
			Operator: gDto.FilterOperatorLike,
			Value:    fullName,
			Table:    model.TableName,
		})
	}

	customers, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get customers")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Customers retrieved successfully")

	response.WithJSON(w, http.StatusOK, customers)
}

// FindCustomer looks up a customer by mobile or email.
// @Summary Find a customer by contact
// @Description Look up a customer by mobile first, then email.
// @Tags Customer
// @Accept json
// @Produce json
// @Param mobile query string false "Mobile number"
// @Param email query string false "Email address"
// @Success 200 {object} response.Data[dto.CustomerResponse] "Customer details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/customers/find [get]
func (handler *Handler) FindCustomer(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".FindCustomer")
	defer scope.End()

	mobile := r.URL.Query().Get(model.FieldMobile)
	email := r.URL.Query().Get(model.FieldEmail)

	customer, err := handler.service.FindByContact(ctx, mobile, email)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to find customer")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Customer found successfully")

	response.WithJSON(w, http.StatusOK, customer)
}

// GetCustomerByID retrieves a customer by its ID.
// @Summary Get a customer by ID
// @Description Retrieve a customer by its unique identifier.
// @Tags Customer
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} response.Data[dto.CustomerResponse] "Customer details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/customers/{id} [get]
func (handler *Handler) GetCustomerByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCustomerByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	customer, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get customer by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Customer retrieved successfully")

	response.WithJSON(w, http.StatusOK, customer)
}

// GetCustomerBookings retrieves the booking history of a customer.
// @Summary Get a customer's booking history
// @Description Retrieve every booking of a customer, newest first.
// @Tags Customer
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} response.Data[bookingDto.GetBookingsResponse] "Booking history"
// @Failure 500 {object} response.Error
// @Router /v1/customers/{id}/bookings [get]
func (handler *Handler) GetCustomerBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCustomerBookings")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	bookings, err := handler.service.BookingHistory(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get customer bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Customer bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// UpdateCustomer updates a customer's notes.
// @Summary Update a customer by ID
// @Description Update the admin notes on a customer record.
// @Tags Customer
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Param request body dto.UpdateCustomerRequest true "Update Customer Request"
// @Success 200 {object} response.Message "Customer updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/customers/{id} [patch]
func (handler *Handler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCustomer")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateCustomerRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update customer")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Customer updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Customer updated successfully")
}
