package scheduler_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"karaoke/config"
	"karaoke/infras/otel/mocks"
	bookingMocks "karaoke/internal/domains/booking/mocks"
	bookingModel "karaoke/internal/domains/booking/model"
	roomMocks "karaoke/internal/domains/room/mocks"
	roomModel "karaoke/internal/domains/room/model"
	settingsMocks "karaoke/internal/domains/settings/mocks"
	settingsModel "karaoke/internal/domains/settings/model"
	"karaoke/internal/notification"
	notificationMocks "karaoke/internal/notification/mocks"
	"karaoke/internal/scheduler"
	"karaoke/shared/constant"
	gDto "karaoke/shared/dto"
	"karaoke/shared/timezone"
)

func schedulerConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Scheduler.SweepIntervalMinutes = 15
	cfg.Scheduler.Reminder24LeadHours = 24
	cfg.Scheduler.Reminder2LeadHours = 2
	cfg.Scheduler.ReminderWindowHours = 1

	return cfg
}

// bookingStartingIn builds a confirmed booking whose start time lies the given
// duration in the future.
func bookingStartingIn(d time.Duration) bookingModel.Booking {
	start := timezone.Now().Add(d)

	return bookingModel.Booking{
		ID:        "booking-1",
		Date:      start.Format(constant.DateOnlyFormat),
		StartTime: start.Format(constant.TimeOfDay),
		Hours:     2,
		RoomID:    "room-1",
		Status:    bookingModel.StatusConfirmed,
	}
}

func TestReminder_Sweep(t *testing.T) {
	tests := []struct {
		name       string
		booking    bookingModel.Booking
		wantWindow string
		wantField  string
	}{
		{
			name:       "booking within the 24 hour window",
			booking:    bookingStartingIn(23*time.Hour + 30*time.Minute),
			wantWindow: notification.Window24h,
			wantField:  bookingModel.FieldReminderSent24h,
		},
		{
			name:       "booking within the 2 hour window",
			booking:    bookingStartingIn(90 * time.Minute),
			wantWindow: notification.Window2h,
			wantField:  bookingModel.FieldReminderSent2h,
		},
		{
			name: "24 hour reminder already sent",
			booking: func() bookingModel.Booking {
				b := bookingStartingIn(23*time.Hour + 30*time.Minute)
				b.ReminderSent24h = true

				return b
			}(),
		},
		{
			name:    "booking between the windows",
			booking: bookingStartingIn(10 * time.Hour),
		},
		{
			name:    "booking too far out",
			booking: bookingStartingIn(30 * time.Hour),
		},
		{
			name: "both reminders already sent",
			booking: func() bookingModel.Booking {
				b := bookingStartingIn(90 * time.Minute)
				b.ReminderSent24h = true
				b.ReminderSent2h = true

				return b
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := bookingMocks.NewMockBooking(ctrl)
			mockRooms := roomMocks.NewMockRoom(ctrl)
			mockSettings := settingsMocks.NewMockSettings(ctrl)
			mockNotifier := notificationMocks.NewMockNotifier(ctrl)

			mockSettings.EXPECT().
				Get(gomock.Any(), gomock.Any()).
				Return(settingsModel.Settings{}, nil)

			mockRepo.EXPECT().
				GetAll(gomock.Any(), gDto.QueryParams{}, gomock.Any()).
				Return([]bookingModel.Booking{tt.booking}, nil)

			if tt.wantWindow != "" {
				mockRooms.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{ID: "room-1", Name: "Neon"}, nil)

				mockNotifier.EXPECT().
					SendReminder(gomock.Any(), gomock.Any(), gomock.Any(), "Neon", tt.wantWindow)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, true, fields[tt.wantField])

						return nil
					})
			}

			r := scheduler.NewReminder(mockRepo, mockRooms, mockSettings, mockNotifier, schedulerConfig(), mocks.NewOtel())

			err := r.Sweep(context.Background())

			assert.NoError(t, err)
		})
	}
}

func TestReminder_SweepRepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRooms := roomMocks.NewMockRoom(ctrl)
	mockSettings := settingsMocks.NewMockSettings(ctrl)
	mockNotifier := notificationMocks.NewMockNotifier(ctrl)

	mockSettings.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(settingsModel.Settings{}, nil)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)

	r := scheduler.NewReminder(mockRepo, mockRooms, mockSettings, mockNotifier, schedulerConfig(), mocks.NewOtel())

	err := r.Sweep(context.Background())

	assert.Error(t, err)
}
