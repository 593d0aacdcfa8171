package dto

import (
	"strings"
	"time"

	"karaoke/internal/domains/promo/model"
	"karaoke/shared"
	"karaoke/shared/constant"
	gDto "karaoke/shared/dto"
	gModel "karaoke/shared/model"
	"karaoke/shared/timezone"
)

type CreatePromoCodeRequest struct {
	Code               string     `json:"code"                validate:"required,max=50"`
	DiscountPercentage float64    `json:"discount_percentage" validate:"required,min=0,max=100"`
	ExpiresAt          *time.Time `json:"expires_at"          validate:"omitempty"`
}

func (c *CreatePromoCodeRequest) ToModel(user string) model.PromoCode {
	return model.PromoCode{
		Code:               strings.ToLower(c.Code),
		DiscountPercentage: c.DiscountPercentage,
		Active:             true,
		ExpiresAt:          c.ExpiresAt,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdatePromoCodeRequest struct {
	Active             *bool      `db:"active"              json:"active"              validate:"omitempty"`
	DiscountPercentage *float64   `db:"discount_percentage" json:"discount_percentage" validate:"omitempty,min=0,max=100"`
	ExpiresAt          *time.Time `db:"expires_at"          json:"expires_at"          validate:"omitempty"`
}

type PromoCodeResponse struct {
	Code               string `json:"code"`
	DiscountPercentage float64 `json:"discount_percentage"`
	Active             bool   `json:"active"`
	ExpiresAt          string `json:"expires_at,omitempty"`
	gDto.Metadata
}

func (p *PromoCodeResponse) FromModel(mod model.PromoCode) {
	p.Code = mod.Code
	p.DiscountPercentage = mod.DiscountPercentage
	p.Active = mod.Active

	if mod.ExpiresAt != nil {
		p.ExpiresAt = timezone.Format(*mod.ExpiresAt, constant.DateFormat)
	}

	p.Metadata.FromModel(mod.Metadata)
}

type GetPromoCodesResponse struct {
	PromoCodes []PromoCodeResponse `json:"promo_codes"`
	TotalPage  int                 `json:"total_page"`
	TotalData  int                 `json:"total_data"`
}

func (p *GetPromoCodesResponse) FromModels(models []model.PromoCode, totalData, limit int) {
	p.TotalData = totalData
	p.TotalPage = shared.CalculateTotalPage(totalData, limit)

	p.PromoCodes = make([]PromoCodeResponse, len(models))
	for i, mod := range models {
		p.PromoCodes[i].FromModel(mod)
	}
}
