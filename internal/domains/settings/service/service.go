package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"karaoke/config"
	"karaoke/infras/otel"
	"karaoke/internal/domains/settings/model"
	"karaoke/internal/domains/settings/model/dto"
	"karaoke/internal/domains/settings/repository"
	"karaoke/internal/events"
	"karaoke/shared"
	"karaoke/shared/cache"
	"karaoke/shared/constant"
)

const (
	cacheGetSettings = "settings:get"
)

type Settings interface {
	Get(ctx context.Context) (dto.SettingsResponse, error)
	Update(ctx context.Context, req dto.UpdateSettingsRequest) (dto.SettingsResponse, error)
	EnsureDefaults(ctx context.Context) error
}

type serviceImpl struct {
	repo      repository.Settings
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	publisher events.Publisher
}

func New(repo repository.Settings, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, publisher events.Publisher) Settings {
	return &serviceImpl{
		repo:      repo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		publisher: publisher,
	}
}

// EnsureDefaults writes the default settings row once at startup so reads
// never have to materialize it lazily.
func (s *serviceImpl) EnsureDefaults(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".EnsureDefaults")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(model.SingletonID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check settings existence")

		return fmt.Errorf("failed to check settings existence: %w", err)
	}

	if exist {
		return nil
	}

	if err = s.repo.Insert(ctx, model.Default("system")); err != nil {
		log.Error().Err(err).Msg("failed to insert default settings")

		return err
	}

	log.Info().Msg("default settings initialized")

	return nil
}

func (s *serviceImpl) Get(ctx context.Context) (res dto.SettingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetSettings, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheGetSettings).Msg("cache hit for settings")

		return res, nil
	}

	settings, err := s.repo.Get(ctx, shared.FilterByID(model.SingletonID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get settings")

		return res, fmt.Errorf("failed to get settings: %w", err)
	}

	if settings.IsEmpty() {
		settings = model.Default("system")
	}

	res.FromModel(settings)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetSettings, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save settings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateSettingsRequest) (res dto.SettingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(model.SingletonID, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check settings existence")

		return res, fmt.Errorf("failed to check settings existence: %w", err)
	}

	// Partial updates merge over the defaults when no row exists yet.
	if !exist {
		if err = s.repo.Insert(ctx, model.Default(user)); err != nil {
			log.Error().Err(err).Msg("failed to insert default settings")

			return res, err
		}
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update settings")

		return res, fmt.Errorf("failed to update settings: %w", err)
	}

	settings, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get settings")

		return res, fmt.Errorf("failed to get settings: %w", err)
	}

	res.FromModel(settings)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, cacheGetSettings); err != nil {
			log.Error().Err(err).Msg("failed to delete settings cache")
		}

		s.publisher.EntityChanged(c, model.EntityName, model.SingletonID, events.ActionUpdated)
	}()

	return res, nil
}
