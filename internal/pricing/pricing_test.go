package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"karaoke/internal/pricing"
)

func TestCalculate(t *testing.T) {
	override := float64(200)
	zeroOverride := float64(0)

	tests := []struct {
		name     string
		people   int
		hours    int
		start    string
		promo    *pricing.Promo
		override *float64
		params   pricing.Params
		want     pricing.Breakdown
	}{
		{
			name:   "tiered price with default parameters",
			people: 4,
			hours:  5,
			start:  "14:00",
			params: pricing.Params{},
			want: pricing.Breakdown{
				BasePrice:       120,
				FinalPrice:      120,
				DepositAmount:   36,
				RemainingAmount: 84,
				Discount:        0,
				IsPeakTime:      false,
			},
		},
		{
			name:   "base hours or fewer charge the base rate only",
			people: 4,
			hours:  3,
			start:  "14:00",
			params: pricing.Params{},
			want: pricing.Breakdown{
				BasePrice:       80,
				FinalPrice:      80,
				DepositAmount:   24,
				RemainingAmount: 56,
			},
		},
		{
			name:   "usable promo discounts the final price",
			people: 4,
			hours:  5,
			start:  "14:00",
			promo:  &pricing.Promo{DiscountPercentage: 10, Usable: true},
			params: pricing.Params{},
			want: pricing.Breakdown{
				BasePrice:       120,
				FinalPrice:      108,
				DepositAmount:   32,
				RemainingAmount: 76,
				Discount:        12,
			},
		},
		{
			name:   "unusable promo is ignored",
			people: 4,
			hours:  5,
			start:  "14:00",
			promo:  &pricing.Promo{DiscountPercentage: 10, Usable: false},
			params: pricing.Params{},
			want: pricing.Breakdown{
				BasePrice:       120,
				FinalPrice:      120,
				DepositAmount:   36,
				RemainingAmount: 84,
			},
		},
		{
			name:   "peak hour multiplies the base price",
			people: 2,
			hours:  3,
			start:  "19:30",
			params: pricing.Params{
				PeakHours:           []int{18, 19, 20},
				PeakPriceMultiplier: 1.5,
			},
			want: pricing.Breakdown{
				BasePrice:       60,
				FinalPrice:      60,
				DepositAmount:   18,
				RemainingAmount: 42,
				IsPeakTime:      true,
			},
		},
		{
			name:   "empty peak hours never flag peak time",
			people: 2,
			hours:  3,
			start:  "19:30",
			params: pricing.Params{PeakPriceMultiplier: 1.5},
			want: pricing.Breakdown{
				BasePrice:       40,
				FinalPrice:      40,
				DepositAmount:   12,
				RemainingAmount: 28,
				IsPeakTime:      false,
			},
		},
		{
			name:   "peak hour with zero multiplier keeps the base price",
			people: 2,
			hours:  3,
			start:  "19:30",
			params: pricing.Params{PeakHours: []int{19}},
			want: pricing.Breakdown{
				BasePrice:       40,
				FinalPrice:      40,
				DepositAmount:   12,
				RemainingAmount: 28,
				IsPeakTime:      true,
			},
		},
		{
			name:     "positive override wins over everything",
			people:   4,
			hours:    5,
			start:    "19:00",
			promo:    &pricing.Promo{DiscountPercentage: 50, Usable: true},
			override: &override,
			params: pricing.Params{
				PeakHours:           []int{19},
				PeakPriceMultiplier: 2,
			},
			want: pricing.Breakdown{
				BasePrice:       200,
				FinalPrice:      200,
				DepositAmount:   60,
				RemainingAmount: 140,
			},
		},
		{
			name:     "zero override falls through to tiered pricing",
			people:   4,
			hours:    3,
			start:    "14:00",
			override: &zeroOverride,
			params:   pricing.Params{},
			want: pricing.Breakdown{
				BasePrice:       80,
				FinalPrice:      80,
				DepositAmount:   24,
				RemainingAmount: 56,
			},
		},
		{
			name:   "custom deposit percentage",
			people: 4,
			hours:  3,
			start:  "14:00",
			params: pricing.Params{DepositPercentage: 50},
			want: pricing.Breakdown{
				BasePrice:       80,
				FinalPrice:      80,
				DepositAmount:   40,
				RemainingAmount: 40,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pricing.Calculate(tt.people, tt.hours, tt.start, tt.promo, tt.override, tt.params)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, got.FinalPrice, got.DepositAmount+got.RemainingAmount)
		})
	}
}

func TestStartHour(t *testing.T) {
	assert.Equal(t, 19, pricing.StartHour("19:30"))
	assert.Equal(t, 9, pricing.StartHour("09:00"))
	assert.Equal(t, 0, pricing.StartHour("bad"))
}
