package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"karaoke/config"
	"karaoke/infras/otel"
	"karaoke/infras/payment"
	"karaoke/internal/domains/booking/model"
	"karaoke/internal/domains/booking/model/dto"
	"karaoke/internal/domains/booking/repository"
	customerModel "karaoke/internal/domains/customer/model"
	customerDto "karaoke/internal/domains/customer/model/dto"
	customerRepo "karaoke/internal/domains/customer/repository"
	promoModel "karaoke/internal/domains/promo/model"
	promoRepo "karaoke/internal/domains/promo/repository"
	roomModel "karaoke/internal/domains/room/model"
	roomRepo "karaoke/internal/domains/room/repository"
	settingsModel "karaoke/internal/domains/settings/model"
	settingsRepo "karaoke/internal/domains/settings/repository"
	"karaoke/internal/events"
	"karaoke/internal/notification"
	"karaoke/internal/pricing"
	"karaoke/shared"
	"karaoke/shared/cache"
	"karaoke/shared/constant"
	gDto "karaoke/shared/dto"
	"karaoke/shared/failure"
	"karaoke/shared/timezone"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"

	defaultActor = "customer"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Approve(ctx context.Context, id string) (dto.ApproveBookingResponse, error)
	ConfirmPayment(ctx context.Context, req dto.ConfirmPaymentRequest) (dto.BookingResponse, error)
	Reject(ctx context.Context, id string) error
	Cancel(ctx context.Context, token string) error
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (dto.BookingResponse, error)
	Estimate(ctx context.Context, req dto.EstimateRequest) (pricing.Breakdown, error)
}

type serviceImpl struct {
	repo      repository.Booking
	rooms     roomRepo.Room
	customers customerRepo.Customer
	settings  settingsRepo.Settings
	promos    promoRepo.PromoCode
	gateway   payment.Gateway
	notifier  notification.Notifier
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	publisher events.Publisher
}

func New(
	repo repository.Booking,
	rooms roomRepo.Room,
	customers customerRepo.Customer,
	settings settingsRepo.Settings,
	promos promoRepo.PromoCode,
	gateway payment.Gateway,
	notifier notification.Notifier,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	publisher events.Publisher,
) Booking {
	return &serviceImpl{
		repo:      repo,
		rooms:     rooms,
		customers: customers,
		settings:  settings,
		promos:    promos,
		gateway:   gateway,
		notifier:  notifier,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		publisher: publisher,
	}
}

// getSettings reads the venue settings row, falling back to the defaults when
// the row has not been written yet.
func (s *serviceImpl) getSettings(ctx context.Context) (settingsModel.Settings, error) {
	settings, err := s.settings.Get(ctx, shared.FilterByID(settingsModel.SingletonID, settingsModel.FieldID, settingsModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get settings")

		return settings, fmt.Errorf("failed to get settings: %w", err)
	}

	if settings.IsEmpty() {
		settings = settingsModel.Default("system")
	}

	return settings, nil
}

// resolvePromo looks up a promo code case-insensitively. A missing, inactive
// or expired code degrades to no discount rather than failing the booking.
func (s *serviceImpl) resolvePromo(ctx context.Context, code string) (*pricing.Promo, error) {
	if code == constant.Empty {
		return nil, nil
	}

	promo, err := s.promos.Get(ctx, shared.FilterByID(strings.ToLower(code), promoModel.FieldCode, promoModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get promo code")

		return nil, fmt.Errorf("failed to get promo code: %w", err)
	}

	if promo.IsEmpty() {
		return nil, nil
	}

	return &pricing.Promo{
		DiscountPercentage: promo.DiscountPercentage,
		Usable:             promo.Usable(),
	}, nil
}

// findOrCreateCustomer resolves the customer by mobile, then email, creating a
// fresh record when neither matches.
func (s *serviceImpl) findOrCreateCustomer(ctx context.Context, fullName, mobile, email, user string) (customerModel.Customer, error) {
	customer, err := s.customers.Get(ctx, shared.FilterByID(mobile, customerModel.FieldMobile, customerModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to find customer by mobile")

		return customer, fmt.Errorf("failed to find customer by mobile: %w", err)
	}

	if customer.IsEmpty() {
		customer, err = s.customers.Get(ctx, shared.FilterByID(email, customerModel.FieldEmail, customerModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to find customer by email")

			return customer, fmt.Errorf("failed to find customer by email: %w", err)
		}
	}

	if !customer.IsEmpty() {
		return customer, nil
	}

	customer = customerDto.NewCustomer(fullName, mobile, email, user)

	if err = s.customers.Insert(ctx, customer); err != nil {
		log.Error().Err(err).Msg("failed to create customer")

		return customer, fmt.Errorf("failed to create customer: %w", err)
	}

	return customer, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		user = defaultActor
	}

	room, err := s.findAvailableRoom(ctx, req.Date, req.StartTime, req.Hours)
	if err != nil {
		return res, err
	}

	settings, err := s.getSettings(ctx)
	if err != nil {
		return res, err
	}

	promo, err := s.resolvePromo(ctx, req.PromoCode)
	if err != nil {
		return res, err
	}

	customer, err := s.findOrCreateCustomer(ctx, req.FullName, req.Mobile, req.Email, user)
	if err != nil {
		return res, err
	}

	price := pricing.Calculate(req.NumberOfPeople, req.Hours, req.StartTime, promo, nil, pricingParams(settings))
	token := uuid.NewString() + uuid.NewString()

	booking := req.ToModel(user, room.ID, customer.ID, token, price)

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to insert booking")

		return res, fmt.Errorf("failed to insert booking: %w", err)
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidate(c, booking.ID)
		s.publisher.EntityChanged(c, model.EntityName, booking.ID, events.ActionCreated)
		s.notifier.NotifyAdminNewBooking(c, settings, booking, room.Name)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.IsEmpty() {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// Approve moves a booking to approved and opens a checkout session for the
// deposit. The payment URL is returned so the admin can forward it to the
// customer.
func (s *serviceImpl) Approve(ctx context.Context, id string) (res dto.ApproveBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Approve")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.IsEmpty() {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	settings, err := s.getSettings(ctx)
	if err != nil {
		return res, err
	}

	if settings.StripeSecretKey == constant.Empty {
		return res, failure.BadRequestFromString("payment is not configured") // nolint:wrapcheck
	}

	currency := strings.ToLower(settings.Currency)
	if currency == constant.Empty {
		currency = "gbp"
	}

	session, err := s.gateway.CreateCheckoutSession(ctx, settings.StripeSecretKey, payment.CheckoutParams{
		Amount:      int64(booking.DepositAmount) * 100,
		Currency:    currency,
		ProductName: "Karaoke booking deposit",
		Description: fmt.Sprintf("Deposit for %s on %s at %s", booking.FullName, booking.Date, booking.StartTime),
		BookingID:   booking.ID,
		SuccessURL:  s.cfg.App.BaseURL + "/booking/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:   s.cfg.App.BaseURL + "/booking/cancelled",
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create checkout session")

		return res, fmt.Errorf("failed to create checkout session: %w", err)
	}

	fields := map[string]any{
		model.FieldStatus:           model.StatusApproved,
		model.FieldPaymentSessionID: session.ID,
		constant.FieldModifiedAt:    timezone.Now(),
		constant.FieldModifiedBy:    user,
	}

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return res, fmt.Errorf("failed to update booking: %w", err)
	}

	res.PaymentURL = session.URL

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidate(c, booking.ID)
		s.publisher.EntityChanged(c, model.EntityName, booking.ID, events.ActionUpdated)
	}()

	return res, nil
}

// ConfirmPayment marks the booking behind a completed checkout session as
// confirmed and counts the visit on the customer.
func (s *serviceImpl) ConfirmPayment(ctx context.Context, req dto.ConfirmPaymentRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ConfirmPayment")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		user = defaultActor
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(req.SessionID, model.FieldPaymentSessionID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking by session")

		return res, fmt.Errorf("failed to get booking by session: %w", err)
	}

	if booking.IsEmpty() {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	filter := shared.FilterByID(booking.ID, model.FieldID, model.TableName)

	fields := map[string]any{
		model.FieldStatus:        model.StatusConfirmed,
		model.FieldDepositPaid:   true,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return res, fmt.Errorf("failed to update booking: %w", err)
	}

	booking.Status = model.StatusConfirmed
	booking.DepositPaid = true

	if err = s.countVisit(ctx, booking.CustomerID, user); err != nil {
		return res, err
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidate(c, booking.ID)
		s.publisher.EntityChanged(c, model.EntityName, booking.ID, events.ActionUpdated)

		settings, err := s.getSettings(c)
		if err != nil {
			return
		}

		s.notifier.SendBookingConfirmation(c, settings, booking, s.roomName(c, booking.RoomID))
	}()

	return res, nil
}

func (s *serviceImpl) countVisit(ctx context.Context, customerID, user string) error {
	filter := shared.FilterByID(customerID, customerModel.FieldID, customerModel.TableName)

	customer, err := s.customers.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get customer")

		return fmt.Errorf("failed to get customer: %w", err)
	}

	if customer.IsEmpty() {
		return nil
	}

	fields := map[string]any{
		customerModel.FieldTotalVisits: customer.TotalVisits + 1,
		constant.FieldModifiedAt:       timezone.Now(),
		constant.FieldModifiedBy:       user,
	}

	if err = s.customers.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update customer visits")

		return fmt.Errorf("failed to update customer visits: %w", err)
	}

	return nil
}

func (s *serviceImpl) Reject(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reject")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check booking existence")

		return fmt.Errorf("failed to check booking existence: %w", err)
	}

	if !exist {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	fields := map[string]any{
		model.FieldStatus:        model.StatusRejected,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidate(c, id)
		s.publisher.EntityChanged(c, model.EntityName, id, events.ActionUpdated)
	}()

	return nil
}

// Cancel is customer facing. The token is the only credential, so a missing
// token behaves exactly like a missing booking.
func (s *serviceImpl) Cancel(ctx context.Context, token string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Get(ctx, shared.FilterByID(token, model.FieldCancellationToken, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking by token")

		return fmt.Errorf("failed to get booking by token: %w", err)
	}

	if booking.IsEmpty() {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if booking.Status == model.StatusCancelled {
		return failure.Conflict("booking already cancelled") // nolint:wrapcheck
	}

	fields := map[string]any{
		model.FieldStatus:        model.StatusCancelled,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: defaultActor,
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(booking.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidate(c, booking.ID)
		s.publisher.EntityChanged(c, model.EntityName, booking.ID, events.ActionUpdated)

		settings, err := s.getSettings(c)
		if err != nil {
			return
		}

		s.notifier.NotifyAdminCancellation(c, settings, booking)
	}()

	return nil
}

// Update applies the provided fields verbatim. Any status may be edited,
// including cancelled and rejected bookings. The price is recomputed only when
// an admin override is supplied; a promo applied at creation is not reapplied.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.IsEmpty() {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	fields := shared.TransformFields(req, user)

	if req.CustomPriceOverride != nil {
		settings, err := s.getSettings(ctx)
		if err != nil {
			return res, err
		}

		people := booking.NumberOfPeople
		if req.NumberOfPeople != 0 {
			people = req.NumberOfPeople
		}

		hours := booking.Hours
		if req.Hours != 0 {
			hours = req.Hours
		}

		startTime := booking.StartTime
		if req.StartTime != constant.Empty {
			startTime = req.StartTime
		}

		price := pricing.Calculate(people, hours, startTime, nil, req.CustomPriceOverride, pricingParams(settings))

		fields["total_price"] = price.FinalPrice
		fields["deposit_amount"] = price.DepositAmount
		fields["remaining_amount"] = price.RemainingAmount
	}

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return res, fmt.Errorf("failed to update booking: %w", err)
	}

	updated, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	res.FromModel(updated)

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidate(c, id)
		s.publisher.EntityChanged(c, model.EntityName, id, events.ActionUpdated)
	}()

	return res, nil
}

// Estimate prices a prospective booking without touching any state.
func (s *serviceImpl) Estimate(ctx context.Context, req dto.EstimateRequest) (res pricing.Breakdown, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Estimate")
	defer scope.End()
	defer scope.TraceIfError(err)

	settings, err := s.getSettings(ctx)
	if err != nil {
		return res, err
	}

	promo, err := s.resolvePromo(ctx, req.PromoCode)
	if err != nil {
		return res, err
	}

	return pricing.Calculate(req.NumberOfPeople, req.Hours, req.StartTime, promo, nil, pricingParams(settings)), nil
}

func (s *serviceImpl) roomName(ctx context.Context, roomID string) string {
	room, err := s.rooms.Get(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return constant.Empty
	}

	return room.Name
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking cache")
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllBooking)
	shared.InvalidateCaches(ctx, s.cache, cacheCountBooking)
}

func pricingParams(settings settingsModel.Settings) pricing.Params {
	peakHours := make([]int, len(settings.PeakHours))
	for i, hour := range settings.PeakHours {
		peakHours[i] = int(hour)
	}

	return pricing.Params{
		BaseHours:                settings.BaseHours,
		PricePerPersonBase:       settings.PricePerPersonBase,
		PricePerPersonAdditional: settings.PricePerPersonAdditional,
		DepositPercentage:        settings.DepositPercentage,
		PeakHours:                peakHours,
		PeakPriceMultiplier:      settings.PeakPriceMultiplier,
	}
}
