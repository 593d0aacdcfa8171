package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"karaoke/config"
	"karaoke/infras/otel/mocks"
	promoMocks "karaoke/internal/domains/promo/mocks"
	"karaoke/internal/domains/promo/model"
	"karaoke/internal/domains/promo/model/dto"
	"karaoke/internal/domains/promo/service"
	eventsMocks "karaoke/internal/events/mocks"
	cacheMocks "karaoke/shared/cache/mocks"
	"karaoke/shared/constant"
	gDto "karaoke/shared/dto"
)

func newPromoService(ctrl *gomock.Controller) (service.PromoCode, *promoMocks.MockPromoCode, *cacheMocks.MockRedisCache) {
	mockRepo := promoMocks.NewMockPromoCode(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockPublisher := eventsMocks.NewMockPublisher(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockPublisher.EXPECT().EntityChanged(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	svc := service.New(mockRepo, cfg, mockCache, mocks.NewOtel(), mockPublisher)

	return svc, mockRepo, mockCache
}

func TestPromoCodeService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newPromoService(ctrl)

	tests := []struct {
		name      string
		req       dto.CreatePromoCodeRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "code is stored lower cased",
			req:  dto.CreatePromoCodeRequest{Code: "SAVE10", DiscountPercentage: 10},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, promo model.PromoCode) error {
						assert.Equal(t, "save10", promo.Code)
						assert.True(t, promo.Active)

						return nil
					})
			},
		},
		{
			name: "duplicate code conflicts",
			req:  dto.CreatePromoCodeRequest{Code: "SAVE10", DiscountPercentage: 10},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "insert error",
			req:  dto.CreatePromoCodeRequest{Code: "SAVE10", DiscountPercentage: 10},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
			err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPromoCodeService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache := newPromoService(ctrl)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss")).
		Times(2)

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(1, nil)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.PromoCode{{Code: "save10", DiscountPercentage: 10, Active: true}}, nil)

	result, err := svc.GetAll(context.Background(), gDto.QueryParams{Limit: 10, Page: 1}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Equal(t, 1, result.TotalData)
	assert.Len(t, result.PromoCodes, 1)
	assert.Equal(t, "save10", result.PromoCodes[0].Code)
}

func TestPromoCodeService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newPromoService(ctrl)

	active := false

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful deactivation",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "code not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
			err := svc.Update(ctx, dto.UpdatePromoCodeRequest{Active: &active}, "SAVE10")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPromoCodeService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newPromoService(ctrl)

	t.Run("successful deletion", func(t *testing.T) {
		mockRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.Delete(context.Background(), "SAVE10")

		assert.NoError(t, err)
	})

	t.Run("delete error", func(t *testing.T) {
		mockRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		err := svc.Delete(context.Background(), "SAVE10")

		assert.Error(t, err)
	})
}
