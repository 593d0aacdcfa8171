package model

import (
	"github.com/lib/pq"

	"karaoke/shared/model"
	"karaoke/shared/timezone"
)

const (
	TableName  = "settings"
	EntityName = "settings"

	// The settings row is a singleton keyed by a fixed identifier.
	SingletonID = "settings"

	FieldID = "id"
)

type Settings struct {
	ID                       string        `db:"id"`
	VenueName                string        `db:"venue_name"`
	VenueAddress             string        `db:"venue_address"`
	VenueLocationLink        string        `db:"venue_location_link"`
	AdminWhatsApp            string        `db:"admin_whatsapp"`
	AdminEmail               string        `db:"admin_email"`
	DepositPercentage        float64       `db:"deposit_percentage"`
	PeakHours                pq.Int64Array `db:"peak_hours"`
	PeakPriceMultiplier      float64       `db:"peak_price_multiplier"`
	OffPeakDiscount          float64       `db:"off_peak_discount"`
	BaseHours                int           `db:"base_hours"`
	PricePerPersonBase       float64       `db:"price_per_person_base"`
	PricePerPersonAdditional float64       `db:"price_per_person_additional"`
	Currency                 string        `db:"currency"`
	CurrencySymbol           string        `db:"currency_symbol"`
	StripePublishableKey     string        `db:"stripe_publishable_key"`
	StripeSecretKey          string        `db:"stripe_secret_key"`
	WhatsAppAccessToken      string        `db:"whatsapp_access_token"`
	WhatsAppPhoneNumberID    string        `db:"whatsapp_phone_number_id"`
	SMTPHost                 string        `db:"smtp_host"`
	SMTPPort                 int           `db:"smtp_port"`
	SMTPUser                 string        `db:"smtp_user"`
	SMTPPassword             string        `db:"smtp_password"`
	SMTPFrom                 string        `db:"smtp_from"`
	model.Metadata
}

func (s Settings) IsEmpty() bool {
	return s.ID == ""
}

// Default returns the venue defaults written lazily when no settings row
// exists yet. Pricing falls back to the same numbers field by field.
func Default(user string) Settings {
	return Settings{
		ID:                       SingletonID,
		VenueName:                "Karaoke Paradise",
		DepositPercentage:        30,
		PeakPriceMultiplier:      1.5,
		BaseHours:                3,
		PricePerPersonBase:       20,
		PricePerPersonAdditional: 5,
		Currency:                 "GBP",
		CurrencySymbol:           "£",
		Metadata: model.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}
