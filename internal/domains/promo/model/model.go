package model

import (
	"time"

	"karaoke/shared/model"
	"karaoke/shared/timezone"
)

const (
	TableName  = "promo_codes"
	EntityName = "promo_code"

	FieldCode   = "code"
	FieldActive = "active"
)

// PromoCode is keyed by its lower-cased code.
type PromoCode struct {
	Code               string     `db:"code"`
	DiscountPercentage float64    `db:"discount_percentage"`
	Active             bool       `db:"active"`
	ExpiresAt          *time.Time `db:"expires_at"`
	model.Metadata
}

func (p PromoCode) IsEmpty() bool {
	return p.Code == ""
}

// Usable reports whether the code currently grants its discount.
func (p PromoCode) Usable() bool {
	return p.Active && (p.ExpiresAt == nil || p.ExpiresAt.After(timezone.Now()))
}
