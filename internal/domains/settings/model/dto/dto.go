package dto

import (
	"github.com/lib/pq"

	"karaoke/internal/domains/settings/model"
	gDto "karaoke/shared/dto"
)

type UpdateSettingsRequest struct {
	VenueName                *string        `db:"venue_name"                  json:"venue_name"                  validate:"omitempty,max=100"`
	VenueAddress             *string        `db:"venue_address"               json:"venue_address"               validate:"omitempty,max=255"`
	VenueLocationLink        *string        `db:"venue_location_link"         json:"venue_location_link"         validate:"omitempty,max=255"`
	AdminWhatsApp            *string        `db:"admin_whatsapp"              json:"admin_whatsapp"              validate:"omitempty,max=30"`
	AdminEmail               *string        `db:"admin_email"                 json:"admin_email"                 validate:"omitempty,email"`
	DepositPercentage        *float64       `db:"deposit_percentage"          json:"deposit_percentage"          validate:"omitempty,min=0,max=100"`
	PeakHours                *pq.Int64Array `db:"peak_hours"                  json:"peak_hours"                  validate:"omitempty,dive,min=0,max=23"`
	PeakPriceMultiplier      *float64       `db:"peak_price_multiplier"       json:"peak_price_multiplier"       validate:"omitempty,min=0"`
	OffPeakDiscount          *float64       `db:"off_peak_discount"           json:"off_peak_discount"           validate:"omitempty,min=0,max=100"`
	BaseHours                *int           `db:"base_hours"                  json:"base_hours"                  validate:"omitempty,min=1"`
	PricePerPersonBase       *float64       `db:"price_per_person_base"       json:"price_per_person_base"       validate:"omitempty,min=0"`
	PricePerPersonAdditional *float64       `db:"price_per_person_additional" json:"price_per_person_additional" validate:"omitempty,min=0"`
	Currency                 *string        `db:"currency"                    json:"currency"                    validate:"omitempty,len=3"`
	CurrencySymbol           *string        `db:"currency_symbol"             json:"currency_symbol"             validate:"omitempty,max=3"`
	StripePublishableKey     *string        `db:"stripe_publishable_key"      json:"stripe_publishable_key"      validate:"omitempty"`
	StripeSecretKey          *string        `db:"stripe_secret_key"           json:"stripe_secret_key"           validate:"omitempty"`
	WhatsAppAccessToken      *string        `db:"whatsapp_access_token"       json:"whatsapp_access_token"       validate:"omitempty"`
	WhatsAppPhoneNumberID    *string        `db:"whatsapp_phone_number_id"    json:"whatsapp_phone_number_id"    validate:"omitempty"`
	SMTPHost                 *string        `db:"smtp_host"                   json:"smtp_host"                   validate:"omitempty,max=255"`
	SMTPPort                 *int           `db:"smtp_port"                   json:"smtp_port"                   validate:"omitempty,min=1,max=65535"`
	SMTPUser                 *string        `db:"smtp_user"                   json:"smtp_user"                   validate:"omitempty,max=255"`
	SMTPPassword             *string        `db:"smtp_password"               json:"smtp_password"               validate:"omitempty"`
	SMTPFrom                 *string        `db:"smtp_from"                   json:"smtp_from"                   validate:"omitempty,max=255"`
}

type SettingsResponse struct {
	VenueName                string  `json:"venue_name"`
	VenueAddress             string  `json:"venue_address"`
	VenueLocationLink        string  `json:"venue_location_link"`
	AdminWhatsApp            string  `json:"admin_whatsapp"`
	AdminEmail               string  `json:"admin_email"`
	DepositPercentage        float64 `json:"deposit_percentage"`
	PeakHours                []int64 `json:"peak_hours"`
	PeakPriceMultiplier      float64 `json:"peak_price_multiplier"`
	OffPeakDiscount          float64 `json:"off_peak_discount"`
	BaseHours                int     `json:"base_hours"`
	PricePerPersonBase       float64 `json:"price_per_person_base"`
	PricePerPersonAdditional float64 `json:"price_per_person_additional"`
	Currency                 string  `json:"currency"`
	CurrencySymbol           string  `json:"currency_symbol"`
	StripePublishableKey     string  `json:"stripe_publishable_key"`
	StripeSecretKey          string  `json:"stripe_secret_key"`
	WhatsAppAccessToken      string  `json:"whatsapp_access_token"`
	WhatsAppPhoneNumberID    string  `json:"whatsapp_phone_number_id"`
	SMTPHost                 string  `json:"smtp_host"`
	SMTPPort                 int     `json:"smtp_port"`
	SMTPUser                 string  `json:"smtp_user"`
	SMTPPassword             string  `json:"smtp_password"`
	SMTPFrom                 string  `json:"smtp_from"`
	gDto.Metadata
}

func (s *SettingsResponse) FromModel(mod model.Settings) {
	s.VenueName = mod.VenueName
	s.VenueAddress = mod.VenueAddress
	s.VenueLocationLink = mod.VenueLocationLink
	s.AdminWhatsApp = mod.AdminWhatsApp
	s.AdminEmail = mod.AdminEmail
	s.DepositPercentage = mod.DepositPercentage
	s.PeakHours = []int64(mod.PeakHours)
	s.PeakPriceMultiplier = mod.PeakPriceMultiplier
	s.OffPeakDiscount = mod.OffPeakDiscount
	s.BaseHours = mod.BaseHours
	s.PricePerPersonBase = mod.PricePerPersonBase
	s.PricePerPersonAdditional = mod.PricePerPersonAdditional
	s.Currency = mod.Currency
	s.CurrencySymbol = mod.CurrencySymbol
	s.StripePublishableKey = mod.StripePublishableKey
	s.StripeSecretKey = mod.StripeSecretKey
	s.WhatsAppAccessToken = mod.WhatsAppAccessToken
	s.WhatsAppPhoneNumberID = mod.WhatsAppPhoneNumberID
	s.SMTPHost = mod.SMTPHost
	s.SMTPPort = mod.SMTPPort
	s.SMTPUser = mod.SMTPUser
	s.SMTPPassword = mod.SMTPPassword
	s.SMTPFrom = mod.SMTPFrom
	s.Metadata.FromModel(mod.Metadata)
}
