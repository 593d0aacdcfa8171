package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"karaoke/infras/otel"
	"karaoke/infras/postgres"
	"karaoke/internal/domains/promo/model"
	gDto "karaoke/shared/dto"
	gRepo "karaoke/shared/repository"
)

type PromoCode interface {
	Insert(ctx context.Context, model model.PromoCode) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.PromoCode, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.PromoCode, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.PromoCode]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) PromoCode {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.PromoCode](model.EntityName, model.TableName, model.FieldCode, db, otel),
		db:         db,
		otel:       otel,
	}
}
