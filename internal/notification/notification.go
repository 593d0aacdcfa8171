package notification

//go:generate go run go.uber.org/mock/mockgen -source=./notification.go -destination=./mocks/notification_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/smtp"
	"time"

	"github.com/rs/zerolog/log"

	"karaoke/config"
	"karaoke/infras/otel"
	bookingModel "karaoke/internal/domains/booking/model"
	settingsModel "karaoke/internal/domains/settings/model"
	"karaoke/shared/constant"
	"karaoke/shared/logger"
)

const (
	graphAPIBaseURL = "https://graph.facebook.com/v18.0"

	Window24h = "24h"
	Window2h  = "2h"
)

// Notifier delivers customer and admin messages over WhatsApp and email.
// Delivery is best effort. Every method reports whether at least one
// message went out and never returns an error, so booking flows are not
// disturbed by channel outages or missing credentials.
type Notifier interface {
	SendWhatsApp(ctx context.Context, settings settingsModel.Settings, to, message string) bool
	SendEmail(ctx context.Context, settings settingsModel.Settings, to, subject, html string) bool
	NotifyAdminNewBooking(ctx context.Context, settings settingsModel.Settings, booking bookingModel.Booking, roomName string)
	SendBookingConfirmation(ctx context.Context, settings settingsModel.Settings, booking bookingModel.Booking, roomName string)
	SendReminder(ctx context.Context, settings settingsModel.Settings, booking bookingModel.Booking, roomName, window string)
	NotifyAdminCancellation(ctx context.Context, settings settingsModel.Settings, booking bookingModel.Booking)
}

type notifierImpl struct {
	config *config.Config
	client *http.Client
	otel   otel.Otel
}

func New(config *config.Config, otel otel.Otel) Notifier {
	return &notifierImpl{
		config: config,
		client: &http.Client{Timeout: 15 * time.Second},
		otel:   otel,
	}
}

type whatsAppText struct {
	Body string `json:"body"`
}

type whatsAppMessage struct {
	MessagingProduct string       `json:"messaging_product"`
	To               string       `json:"to"`
	Type             string       `json:"type"`
	Text             whatsAppText `json:"text"`
}

func (n *notifierImpl) SendWhatsApp(ctx context.Context, settings settingsModel.Settings, to, message string) bool {
	ctx, scope := n.otel.NewScope(ctx, constant.OtelExternalScopeName, "Notifier:SendWhatsApp")
	defer scope.End()

	if settings.WhatsAppAccessToken == "" || settings.WhatsAppPhoneNumberID == "" || to == "" {
		log.Warn().Str("to", to).Msg("WhatsApp is not configured, skipping message")
		return false
	}

	payload, err := json.Marshal(whatsAppMessage{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "text",
		Text:             whatsAppText{Body: message},
	})
	if err != nil {
		scope.TraceError(err)
		logger.ErrorWithStack(err)
		return false
	}

	url := fmt.Sprintf("%s/%s/messages", graphAPIBaseURL, settings.WhatsAppPhoneNumberID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		scope.TraceError(err)
		logger.ErrorWithStack(err)
		return false
	}

	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	req.Header.Set("Authorization", "Bearer "+settings.WhatsAppAccessToken)

	resp, err := n.client.Do(req)
	if err != nil {
		scope.TraceError(err)
		logger.ErrorWithStack(err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		log.Error().Int("status", resp.StatusCode).Str("to", to).Msg("WhatsApp message rejected")
		return false
	}

	log.Info().Str("to", to).Msg("WhatsApp message sent")

	return true
}

func (n *notifierImpl) SendEmail(ctx context.Context, settings settingsModel.Settings, to, subject, html string) bool {
	_, scope := n.otel.NewScope(ctx, constant.OtelExternalScopeName, "Notifier:SendEmail")
	defer scope.End()

	if settings.SMTPHost == "" || settings.SMTPUser == "" || to == "" {
		log.Warn().Str("to", to).Msg("SMTP is not configured, skipping email")
		return false
	}

	from := settings.SMTPFrom
	if from == "" {
		from = settings.SMTPUser
	}

	port := settings.SMTPPort
	if port == 0 {
		port = 587
	}

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s\r\n", from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(html)

	auth := smtp.PlainAuth("", settings.SMTPUser, settings.SMTPPassword, settings.SMTPHost)
	addr := fmt.Sprintf("%s:%d", settings.SMTPHost, port)

	if err := smtp.SendMail(addr, auth, from, []string{to}, msg.Bytes()); err != nil {
		scope.TraceError(err)
		logger.ErrorWithStack(err)
		return false
	}

	log.Info().Str("to", to).Msg("Email sent")

	return true
}

// sendToCustomer honors the channel the customer picked at booking time.
func (n *notifierImpl) sendToCustomer(ctx context.Context, settings settingsModel.Settings, booking bookingModel.Booking, subject, message string) {
	if booking.PreferredCommunication == bookingModel.CommunicationEmail {
		n.SendEmail(ctx, settings, booking.Email, subject, toHTML(message))
		return
	}

	n.SendWhatsApp(ctx, settings, booking.Mobile, message)
}

func (n *notifierImpl) NotifyAdminNewBooking(ctx context.Context, settings settingsModel.Settings, booking bookingModel.Booking, roomName string) {
	message := fmt.Sprintf(
		"🎤 New Booking Request\n\n"+
			"Name: %s\n"+
			"Date: %s\n"+
			"Time: %s (%d hours)\n"+
			"People: %d\n"+
			"Room: %s\n"+
			"Deposit: %s%d\n\n"+
			"Review it in the admin dashboard.",
		booking.FullName, booking.Date, booking.StartTime, booking.Hours,
		booking.NumberOfPeople, roomName, settings.CurrencySymbol, booking.DepositAmount,
	)

	n.SendWhatsApp(ctx, settings, settings.AdminWhatsApp, message)
	n.SendEmail(ctx, settings, settings.AdminEmail, "🎤 New Booking Request", toHTML(message))
}

func (n *notifierImpl) SendBookingConfirmation(ctx context.Context, settings settingsModel.Settings, booking bookingModel.Booking, roomName string) {
	cancelURL := fmt.Sprintf("%s/cancel/%s", n.config.App.BaseURL, booking.CancellationToken)

	message := fmt.Sprintf(
		"✅ Booking Confirmed!\n\n"+
			"Hi %s, your karaoke session is booked!\n\n"+
			"📅 %s\n"+
			"🕐 %s (%d hours)\n"+
			"🚪 %s\n"+
			"💰 Remaining balance: %s%d (payable at the venue)\n\n"+
			"📍 %s\n%s\n\n"+
			"Need to cancel? %s",
		booking.FullName, booking.Date, booking.StartTime, booking.Hours, roomName,
		settings.CurrencySymbol, booking.RemainingAmount,
		settings.VenueAddress, settings.VenueLocationLink, cancelURL,
	)

	n.sendToCustomer(ctx, settings, booking, "✅ Booking Confirmed!", message)
}

func (n *notifierImpl) SendReminder(ctx context.Context, settings settingsModel.Settings, booking bookingModel.Booking, roomName, window string) {
	when := "tomorrow"
	if window == Window2h {
		when = "in about 2 hours"
	}

	message := fmt.Sprintf(
		"🎤 Reminder: your karaoke session at %s is %s!\n\n"+
			"📅 %s\n"+
			"🕐 %s (%d hours)\n"+
			"🚪 %s\n"+
			"💰 Remaining balance: %s%d (payable at the venue)\n\n"+
			"📍 %s\n%s",
		settings.VenueName, when, booking.Date, booking.StartTime, booking.Hours, roomName,
		settings.CurrencySymbol, booking.RemainingAmount,
		settings.VenueAddress, settings.VenueLocationLink,
	)

	n.sendToCustomer(ctx, settings, booking, "🎤 Your karaoke session is coming up", message)
}

func (n *notifierImpl) NotifyAdminCancellation(ctx context.Context, settings settingsModel.Settings, booking bookingModel.Booking) {
	message := fmt.Sprintf(
		"❌ Booking Cancelled\n\n"+
			"%s cancelled their booking for %s at %s.",
		booking.FullName, booking.Date, booking.StartTime,
	)

	n.SendWhatsApp(ctx, settings, settings.AdminWhatsApp, message)
	n.SendEmail(ctx, settings, settings.AdminEmail, "❌ Booking Cancelled", toHTML(message))
}

func toHTML(message string) string {
	var buf bytes.Buffer
	buf.WriteString("<p>")

	for _, r := range message {
		if r == '\n' {
			buf.WriteString("<br>")
			continue
		}
		buf.WriteRune(r)
	}

	buf.WriteString("</p>")

	return buf.String()
}
