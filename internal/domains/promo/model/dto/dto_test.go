package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"karaoke/internal/domains/promo/model"
	"karaoke/internal/domains/promo/model/dto"
	"karaoke/shared/timezone"
)

func TestCreatePromoCodeRequest_ToModel(t *testing.T) {
	req := dto.CreatePromoCodeRequest{
		Code:               "SAVE10",
		DiscountPercentage: 10,
	}

	promo := req.ToModel("admin-1")

	assert.Equal(t, "save10", promo.Code, "expected code to be lower cased")
	assert.Equal(t, float64(10), promo.DiscountPercentage)
	assert.True(t, promo.Active)
	assert.Nil(t, promo.ExpiresAt)
	assert.Equal(t, "admin-1", promo.CreatedBy)
}

func TestPromoCode_Usable(t *testing.T) {
	past := timezone.Now().Add(-time.Hour)
	future := timezone.Now().Add(time.Hour)

	tests := []struct {
		name  string
		promo model.PromoCode
		want  bool
	}{
		{
			name:  "active without expiry",
			promo: model.PromoCode{Code: "save10", Active: true},
			want:  true,
		},
		{
			name:  "active before expiry",
			promo: model.PromoCode{Code: "save10", Active: true, ExpiresAt: &future},
			want:  true,
		},
		{
			name:  "expired",
			promo: model.PromoCode{Code: "save10", Active: true, ExpiresAt: &past},
			want:  false,
		},
		{
			name:  "inactive",
			promo: model.PromoCode{Code: "save10", Active: false},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.promo.Usable())
		})
	}
}
