package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"karaoke/config"
	"karaoke/infras/otel"
	"karaoke/internal/domains/promo/model"
	"karaoke/internal/domains/promo/model/dto"
	"karaoke/internal/domains/promo/repository"
	"karaoke/internal/events"
	"karaoke/shared"
	"karaoke/shared/cache"
	"karaoke/shared/constant"
	gDto "karaoke/shared/dto"
	"karaoke/shared/failure"
)

const (
	cacheGetAllPromoCode = "promo_code:gets"
	cacheCountPromoCode  = "promo_code:count"
)

type PromoCode interface {
	Create(ctx context.Context, req dto.CreatePromoCodeRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetPromoCodesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req dto.UpdatePromoCodeRequest, code string) error
	Delete(ctx context.Context, code string) error
}

type serviceImpl struct {
	repo      repository.PromoCode
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	publisher events.Publisher
}

func New(repo repository.PromoCode, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, publisher events.Publisher) PromoCode {
	return &serviceImpl{
		repo:      repo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		publisher: publisher,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePromoCodeRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	promo := req.ToModel(user)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(promo.Code, model.FieldCode, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check promo code existence")

		return fmt.Errorf("failed to check promo code existence: %w", err)
	}

	if exist {
		return failure.Conflict("promo code already exists") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, promo); err != nil {
		log.Error().Err(err).Msg("failed to insert promo code")

		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllPromoCode)
		shared.InvalidateCaches(c, s.cache, cacheCountPromoCode)

		s.publisher.EntityChanged(c, model.EntityName, promo.Code, events.ActionCreated)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetPromoCodesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllPromoCode, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for promo codes")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count promo codes")

		return res, fmt.Errorf("failed to count promo codes: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get promo codes")

		return res, fmt.Errorf("failed to get promo codes: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save promo codes to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountPromoCode, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for promo code count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count promo codes")

		return res, fmt.Errorf("failed to count promo codes: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save promo code count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdatePromoCodeRequest, code string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	code = strings.ToLower(code)
	filter := shared.FilterByID(code, model.FieldCode, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check promo code existence")

		return fmt.Errorf("failed to check promo code existence: %w", err)
	}

	if !exist {
		return failure.NotFound("promo code not found") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update promo code")

		return fmt.Errorf("failed to update promo code: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllPromoCode)
		shared.InvalidateCaches(c, s.cache, cacheCountPromoCode)

		s.publisher.EntityChanged(c, model.EntityName, code, events.ActionUpdated)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, code string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	code = strings.ToLower(code)

	if err = s.repo.Delete(ctx, shared.FilterByID(code, model.FieldCode, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete promo code")

		return fmt.Errorf("failed to delete promo code: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllPromoCode)
		shared.InvalidateCaches(c, s.cache, cacheCountPromoCode)

		s.publisher.EntityChanged(c, model.EntityName, code, events.ActionDeleted)
	}()

	return nil
}
