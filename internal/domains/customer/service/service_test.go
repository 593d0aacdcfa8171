package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"karaoke/config"
	"karaoke/infras/otel/mocks"
	bookingMocks "karaoke/internal/domains/booking/mocks"
	bookingModel "karaoke/internal/domains/booking/model"
	customerMocks "karaoke/internal/domains/customer/mocks"
	"karaoke/internal/domains/customer/model"
	"karaoke/internal/domains/customer/model/dto"
	"karaoke/internal/domains/customer/service"
	eventsMocks "karaoke/internal/events/mocks"
	cacheMocks "karaoke/shared/cache/mocks"
	"karaoke/shared/constant"
	gDto "karaoke/shared/dto"
)

type customerMockSet struct {
	repo     *customerMocks.MockCustomer
	bookings *bookingMocks.MockBooking
	cache    *cacheMocks.MockRedisCache
}

func newCustomerService(ctrl *gomock.Controller) (service.Customer, customerMockSet) {
	m := customerMockSet{
		repo:     customerMocks.NewMockCustomer(ctrl),
		bookings: bookingMocks.NewMockBooking(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
	}

	mockPublisher := eventsMocks.NewMockPublisher(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockPublisher.EXPECT().EntityChanged(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	svc := service.New(m.repo, m.bookings, cfg, m.cache, mocks.NewOtel(), mockPublisher)

	return svc, m
}

func TestCustomerService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCustomerService(ctrl)

	t.Run("cache miss, found in db", func(t *testing.T) {
		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Customer{ID: "cust-1", FullName: "Jane Smith", TotalVisits: 4}, nil)

		result, err := svc.Get(context.Background(), "cust-1")

		assert.NoError(t, err)
		assert.Equal(t, "Jane Smith", result.FullName)
		assert.Equal(t, 4, result.TotalVisits)
	})

	t.Run("not found", func(t *testing.T) {
		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Customer{}, nil)

		_, err := svc.Get(context.Background(), "missing")

		assert.Error(t, err)
	})
}

func TestCustomerService_FindByContact(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCustomerService(ctrl)

	customer := model.Customer{ID: "cust-1", FullName: "Jane Smith", Mobile: "+447700900000", Email: "jane@example.com"}

	tests := []struct {
		name      string
		mobile    string
		email     string
		setupMock func()
		wantErr   bool
	}{
		{
			name:   "found by mobile",
			mobile: "+447700900000",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(customer, nil)
			},
		},
		{
			name:   "mobile miss falls back to email",
			mobile: "+440000000000",
			email:  "jane@example.com",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Customer{}, nil)

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(customer, nil)
			},
		},
		{
			name:  "email only",
			email: "jane@example.com",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(customer, nil)
			},
		},
		{
			name:   "no match",
			mobile: "+440000000000",
			email:  "nobody@example.com",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Customer{}, nil).
					Times(2)
			},
			wantErr: true,
		},
		{
			name:    "no contact given",
			wantErr: true,
			setupMock: func() {
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.FindByContact(context.Background(), tt.mobile, tt.email)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "cust-1", result.ID)
			}
		})
	}
}

func TestCustomerService_BookingHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCustomerService(ctrl)

	m.bookings.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]bookingModel.Booking{
			{ID: "booking-1", CustomerID: "cust-1", Status: bookingModel.StatusConfirmed},
			{ID: "booking-2", CustomerID: "cust-1", Status: bookingModel.StatusCancelled},
		}, nil)

	result, err := svc.BookingHistory(context.Background(), "cust-1")

	assert.NoError(t, err)
	assert.Equal(t, 2, result.TotalData)
	assert.Len(t, result.Bookings, 2)
}

func TestCustomerService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCustomerService(ctrl)

	notes := "VIP guest"

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful update",
			setupMock: func() {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "customer not found",
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

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
			err := svc.Update(ctx, dto.UpdateCustomerRequest{Notes: &notes}, "cust-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCustomerService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCustomerService(ctrl)

	m.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss")).
		Times(2)

	m.repo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(1, nil)

	m.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Customer{{ID: "cust-1", FullName: "Jane Smith"}}, nil)

	result, err := svc.GetAll(context.Background(), gDto.QueryParams{Limit: 10, Page: 1}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Equal(t, 1, result.TotalData)
	assert.Len(t, result.Customers, 1)
}
