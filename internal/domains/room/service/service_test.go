package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"karaoke/config"
	"karaoke/infras/otel/mocks"
	s3Mocks "karaoke/infras/s3/mocks"
	roomMocks "karaoke/internal/domains/room/mocks"
	"karaoke/internal/domains/room/model"
	"karaoke/internal/domains/room/model/dto"
	"karaoke/internal/domains/room/service"
	eventsMocks "karaoke/internal/events/mocks"
	cacheMocks "karaoke/shared/cache/mocks"
	"karaoke/shared/constant"
	gDto "karaoke/shared/dto"
)

type roomMockSet struct {
	repo  *roomMocks.MockRoom
	cache *cacheMocks.MockRedisCache
	s3    *s3Mocks.MockS3
}

func newRoomService(ctrl *gomock.Controller) (service.Room, roomMockSet) {
	m := roomMockSet{
		repo:  roomMocks.NewMockRoom(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
		s3:    s3Mocks.NewMockS3(ctrl),
	}

	mockPublisher := eventsMocks.NewMockPublisher(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockPublisher.EXPECT().EntityChanged(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	svc := service.New(m.repo, cfg, m.cache, mocks.NewOtel(), m.s3, mockPublisher)

	return svc, m
}

func TestRoomService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newRoomService(ctrl)

	tests := []struct {
		name      string
		req       dto.CreateRoomRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "display order equals the current count",
			req:  dto.CreateRoomRequest{Name: "Neon", Capacity: 8},
			setupMock: func() {
				m.repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(3, nil)

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, room model.Room) error {
						assert.Equal(t, 3, room.DisplayOrder)
						assert.Equal(t, "Neon", room.Name)

						return nil
					})
			},
		},
		{
			name: "count error",
			req:  dto.CreateRoomRequest{Name: "Neon", Capacity: 8},
			setupMock: func() {
				m.repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name: "insert error",
			req:  dto.CreateRoomRequest{Name: "Neon", Capacity: 8},
			setupMock: func() {
				m.repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, nil)

				m.repo.EXPECT().
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

func TestRoomService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newRoomService(ctrl)

	t.Run("cache miss, found in db", func(t *testing.T) {
		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Room{ID: "room-1", Name: "Neon"}, nil)

		result, err := svc.Get(context.Background(), "room-1")

		assert.NoError(t, err)
		assert.Equal(t, "Neon", result.Name)
	})

	t.Run("not found", func(t *testing.T) {
		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Room{}, nil)

		_, err := svc.Get(context.Background(), "missing")

		assert.Error(t, err)
	})
}

func TestRoomService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newRoomService(ctrl)

	m.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss")).
		Times(2)

	m.repo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(2, nil)

	m.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Room{
			{ID: "room-1", Name: "Neon", DisplayOrder: 0},
			{ID: "room-2", Name: "Disco", DisplayOrder: 1},
		}, nil)

	result, err := svc.GetAll(context.Background(), gDto.QueryParams{Limit: 10, Page: 1}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Equal(t, 2, result.TotalData)
	assert.Len(t, result.Rooms, 2)
}

func TestRoomService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newRoomService(ctrl)

	capacity := 10

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful update without photo",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{ID: "room-1", Name: "Neon"}, nil)

				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "room not found",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
			err := svc.Update(ctx, dto.UpdateRoomRequest{Capacity: &capacity}, "room-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoomService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newRoomService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful deletion",
			setupMock: func() {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "room not found",
			setupMock: func() {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), "room-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
