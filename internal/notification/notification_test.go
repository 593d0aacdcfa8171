package notification_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"karaoke/config"
	"karaoke/infras/otel/mocks"
	bookingModel "karaoke/internal/domains/booking/model"
	settingsModel "karaoke/internal/domains/settings/model"
	"karaoke/internal/notification"
)

func TestNotifier_UnconfiguredChannels(t *testing.T) {
	cfg := &config.Config{}
	notifier := notification.New(cfg, mocks.NewOtel())

	settings := settingsModel.Default("system")

	t.Run("whatsapp without credentials", func(t *testing.T) {
		sent := notifier.SendWhatsApp(context.Background(), settings, "+447700900000", "hello")

		assert.False(t, sent)
	})

	t.Run("whatsapp without recipient", func(t *testing.T) {
		configured := settings
		configured.WhatsAppAccessToken = "token"
		configured.WhatsAppPhoneNumberID = "12345"

		sent := notifier.SendWhatsApp(context.Background(), configured, "", "hello")

		assert.False(t, sent)
	})

	t.Run("email without smtp host", func(t *testing.T) {
		sent := notifier.SendEmail(context.Background(), settings, "jane@example.com", "subject", "<p>body</p>")

		assert.False(t, sent)
	})

	t.Run("admin notifications tolerate missing channels", func(t *testing.T) {
		booking := bookingModel.Booking{ID: "booking-1", FullName: "Jane Smith", Date: "2026-09-01", StartTime: "19:00"}

		notifier.NotifyAdminNewBooking(context.Background(), settings, booking, "Neon")
		notifier.NotifyAdminCancellation(context.Background(), settings, booking)
	})
}
