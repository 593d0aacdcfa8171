package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"karaoke/config"
	"karaoke/infras/otel"
	bookingModel "karaoke/internal/domains/booking/model"
	bookingDto "karaoke/internal/domains/booking/model/dto"
	bookingRepo "karaoke/internal/domains/booking/repository"
	"karaoke/internal/domains/customer/model"
	"karaoke/internal/domains/customer/model/dto"
	"karaoke/internal/domains/customer/repository"
	"karaoke/internal/events"
	"karaoke/shared"
	"karaoke/shared/cache"
	"karaoke/shared/constant"
	gDto "karaoke/shared/dto"
	"karaoke/shared/failure"
)

const (
	cacheGetCustomer    = "customer:get"
	cacheGetAllCustomer = "customer:gets"
	cacheCountCustomer  = "customer:count"
)

type Customer interface {
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCustomersResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.CustomerResponse, error)
	FindByContact(ctx context.Context, mobile, email string) (dto.CustomerResponse, error)
	BookingHistory(ctx context.Context, customerID string) (bookingDto.GetBookingsResponse, error)
	Update(ctx context.Context, req dto.UpdateCustomerRequest, id string) error
}

type serviceImpl struct {
	repo      repository.Customer
	bookings  bookingRepo.Booking
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	publisher events.Publisher
}

func New(repo repository.Customer, bookings bookingRepo.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, publisher events.Publisher) Customer {
	return &serviceImpl{
		repo:      repo,
		bookings:  bookings,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		publisher: publisher,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCustomersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllCustomer, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for customers")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count customers")

		return res, fmt.Errorf("failed to count customers: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get customers")

		return res, fmt.Errorf("failed to get customers: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save customers to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountCustomer, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for customer count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count customers")

		return res, fmt.Errorf("failed to count customers: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save customer count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.CustomerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetCustomer, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for customer")

		return res, nil
	}

	customer, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get customer")

		return res, fmt.Errorf("failed to get customer: %w", err)
	}

	if customer.IsEmpty() {
		return res, failure.NotFound("customer not found") // nolint:wrapcheck
	}

	res.FromModel(customer)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save customer to cache")
		}
	}()

	return res, nil
}

// FindByContact looks up a customer by mobile first, then by email.
func (s *serviceImpl) FindByContact(ctx context.Context, mobile, email string) (res dto.CustomerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FindByContact")
	defer scope.End()
	defer scope.TraceIfError(err)

	var customer model.Customer

	if mobile != constant.Empty {
		customer, err = s.repo.Get(ctx, shared.FilterByID(mobile, model.FieldMobile, model.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to find customer by mobile")

			return res, fmt.Errorf("failed to find customer by mobile: %w", err)
		}
	}

	if customer.IsEmpty() && email != constant.Empty {
		customer, err = s.repo.Get(ctx, shared.FilterByID(email, model.FieldEmail, model.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to find customer by email")

			return res, fmt.Errorf("failed to find customer by email: %w", err)
		}
	}

	if customer.IsEmpty() {
		return res, failure.NotFound("customer not found") // nolint:wrapcheck
	}

	res.FromModel(customer)

	return res, nil
}

func (s *serviceImpl) BookingHistory(ctx context.Context, customerID string) (res bookingDto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BookingHistory")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{
		SortBy:  constant.FieldCreatedAt,
		SortDir: gDto.SortDirDesc,
	}

	bookings, err := s.bookings.GetAll(ctx, params, shared.FilterByID(customerID, bookingModel.FieldCustomerID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking history")

		return res, fmt.Errorf("failed to get booking history: %w", err)
	}

	res.FromModels(bookings, len(bookings), 0)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateCustomerRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check customer existence")

		return fmt.Errorf("failed to check customer existence: %w", err)
	}

	if !exist {
		return failure.NotFound("customer not found") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update customer")

		return fmt.Errorf("failed to update customer: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetCustomer, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete customer cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllCustomer)
		shared.InvalidateCaches(c, s.cache, cacheCountCustomer)

		s.publisher.EntityChanged(c, model.EntityName, id, events.ActionUpdated)
	}()

	return nil
}
