package dto

import (
	"github.com/google/uuid"

	"karaoke/internal/domains/customer/model"
	"karaoke/shared"
	gDto "karaoke/shared/dto"
	gModel "karaoke/shared/model"
	"karaoke/shared/timezone"
)

// NewCustomer builds the record created implicitly on a first booking.
func NewCustomer(fullName, mobile, email, user string) model.Customer {
	return model.Customer{
		ID:          uuid.NewString(),
		FullName:    fullName,
		Mobile:      mobile,
		Email:       email,
		TotalVisits: 0,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateCustomerRequest struct {
	Notes *string `db:"notes" json:"notes" validate:"omitempty,max=1000"`
}

type CustomerResponse struct {
	ID          string `json:"id"`
	FullName    string `json:"full_name"`
	Mobile      string `json:"mobile"`
	Email       string `json:"email"`
	TotalVisits int    `json:"total_visits"`
	Notes       string `json:"notes"`
	gDto.Metadata
}

func (c *CustomerResponse) FromModel(mod model.Customer) {
	c.ID = mod.ID
	c.FullName = mod.FullName
	c.Mobile = mod.Mobile
	c.Email = mod.Email
	c.TotalVisits = mod.TotalVisits
	c.Notes = mod.Notes
	c.Metadata.FromModel(mod.Metadata)
}

type GetCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (c *GetCustomersResponse) FromModels(models []model.Customer, totalData, limit int) {
	c.TotalData = totalData
	c.TotalPage = shared.CalculateTotalPage(totalData, limit)

	c.Customers = make([]CustomerResponse, len(models))
	for i, mod := range models {
		c.Customers[i].FromModel(mod)
	}
}
