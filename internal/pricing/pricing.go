package pricing

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

// Defaults used field by field whenever the venue settings leave a
// parameter unset (zero).
const (
	DefaultBaseHours                = 3
	DefaultPricePerPersonBase       = 20
	DefaultPricePerPersonAdditional = 5
	DefaultDepositPercentage        = 30
	DefaultPeakPriceMultiplier      = 1.5
)

// Params carries the pricing-relevant slice of the venue settings.
type Params struct {
	BaseHours                int
	PricePerPersonBase       float64
	PricePerPersonAdditional float64
	DepositPercentage        float64
	PeakHours                []int
	PeakPriceMultiplier      float64
}

// Promo is the resolved promo code a caller looked up, if any.
type Promo struct {
	DiscountPercentage float64
	Usable             bool
}

type Breakdown struct {
	BasePrice       int  `json:"base_price"`
	FinalPrice      int  `json:"final_price"`
	DepositAmount   int  `json:"deposit_amount"`
	RemainingAmount int  `json:"remaining_amount"`
	Discount        int  `json:"discount"`
	IsPeakTime      bool `json:"is_peak_time"`
}

// Calculate prices a booking. An admin override greater than zero wins over
// everything else. Otherwise the price is tiered per person, multiplied
// during peak hours, then discounted by a usable promo code. Only the final
// price is rounded; the deposit is rounded separately and the remainder
// absorbs the difference so deposit+remaining always equals final.
func Calculate(numberOfPeople, hours int, startTime string, promo *Promo, customPriceOverride *float64, params Params) Breakdown {
	depositPercentage := params.DepositPercentage
	if depositPercentage == 0 {
		depositPercentage = DefaultDepositPercentage
	}

	if customPriceOverride != nil && *customPriceOverride > 0 {
		finalPrice := int(math.Round(*customPriceOverride))
		depositAmount := int(math.Round(*customPriceOverride * depositPercentage / 100))

		return Breakdown{
			BasePrice:       finalPrice,
			FinalPrice:      finalPrice,
			DepositAmount:   depositAmount,
			RemainingAmount: finalPrice - depositAmount,
			Discount:        0,
			IsPeakTime:      false,
		}
	}

	baseHours := params.BaseHours
	if baseHours == 0 {
		baseHours = DefaultBaseHours
	}

	pricePerPersonBase := params.PricePerPersonBase
	if pricePerPersonBase == 0 {
		pricePerPersonBase = DefaultPricePerPersonBase
	}

	pricePerPersonAdditional := params.PricePerPersonAdditional
	if pricePerPersonAdditional == 0 {
		pricePerPersonAdditional = DefaultPricePerPersonAdditional
	}

	var basePrice float64

	if hours <= baseHours {
		basePrice = float64(numberOfPeople) * pricePerPersonBase
	} else {
		additionalHours := float64(hours - baseHours)
		basePrice = float64(numberOfPeople) * (pricePerPersonBase + additionalHours*pricePerPersonAdditional)
	}

	isPeakTime := false

	if len(params.PeakHours) > 0 {
		isPeakTime = slices.Contains(params.PeakHours, StartHour(startTime))

		if isPeakTime && params.PeakPriceMultiplier != 0 {
			basePrice *= params.PeakPriceMultiplier
		}
	}

	var discount float64

	if promo != nil && promo.Usable {
		discount = basePrice * promo.DiscountPercentage / 100
	}

	finalPrice := int(math.Round(basePrice - discount))
	depositAmount := int(math.Round(float64(finalPrice) * depositPercentage / 100))

	return Breakdown{
		BasePrice:       int(math.Round(basePrice)),
		FinalPrice:      finalPrice,
		DepositAmount:   depositAmount,
		RemainingAmount: finalPrice - depositAmount,
		Discount:        int(math.Round(discount)),
		IsPeakTime:      isPeakTime,
	}
}

// StartHour truncates an "HH:MM" start time to its hour. Minutes are not
// distinguished for peak or conflict purposes.
func StartHour(startTime string) int {
	hour, err := strconv.Atoi(strings.Split(startTime, ":")[0])
	if err != nil {
		return 0
	}

	return hour
}
