package dto

import (
	"github.com/google/uuid"

	"karaoke/internal/domains/booking/model"
	"karaoke/internal/pricing"
	"karaoke/shared"
	gDto "karaoke/shared/dto"
	gModel "karaoke/shared/model"
	"karaoke/shared/timezone"
)

type CreateBookingRequest struct {
	Date                   string `json:"date"                    validate:"required,datetime=2006-01-02"`
	StartTime              string `json:"start_time"              validate:"required,datetime=15:04"`
	Hours                  int    `json:"hours"                   validate:"required,min=1,max=12"`
	NumberOfPeople         int    `json:"number_of_people"        validate:"required,min=1"`
	FullName               string `json:"full_name"               validate:"required,max=100"`
	Mobile                 string `json:"mobile"                  validate:"required,max=30"`
	Email                  string `json:"email"                   validate:"required,email"`
	Notes                  string `json:"notes"                   validate:"omitempty,max=1000"`
	PreferredCommunication string `json:"preferred_communication" validate:"required,oneof=whatsapp email"`
	PromoCode              string `json:"promo_code"              validate:"omitempty,max=50"`
}

func (c *CreateBookingRequest) ToModel(user, roomID, customerID, cancellationToken string, price pricing.Breakdown) model.Booking {
	return model.Booking{
		ID:                     uuid.NewString(),
		Date:                   c.Date,
		StartTime:              c.StartTime,
		Hours:                  c.Hours,
		NumberOfPeople:         c.NumberOfPeople,
		FullName:               c.FullName,
		Mobile:                 c.Mobile,
		Email:                  c.Email,
		Notes:                  c.Notes,
		PreferredCommunication: c.PreferredCommunication,
		RoomID:                 roomID,
		Status:                 model.StatusPending,
		TotalPrice:             price.FinalPrice,
		DepositAmount:          price.DepositAmount,
		RemainingAmount:        price.RemainingAmount,
		DepositPaid:            false,
		CancellationToken:      cancellationToken,
		ReminderSent24h:        false,
		ReminderSent2h:         false,
		CustomerID:             customerID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateBookingRequest struct {
	Date                string   `db:"date"                  json:"date"                  validate:"omitempty,datetime=2006-01-02"`
	StartTime           string   `db:"start_time"            json:"start_time"            validate:"omitempty,datetime=15:04"`
	Hours               int      `db:"hours"                 json:"hours"                 validate:"omitempty,min=1,max=12"`
	NumberOfPeople      int      `db:"number_of_people"      json:"number_of_people"      validate:"omitempty,min=1"`
	RoomID              string   `db:"room_id"               json:"room_id"               validate:"omitempty,uuid"`
	Notes               *string  `db:"notes"                 json:"notes"                 validate:"omitempty,max=1000"`
	AdminNotes          *string  `db:"admin_notes"           json:"admin_notes"           validate:"omitempty,max=1000"`
	CustomPriceOverride *float64 `db:"custom_price_override" json:"custom_price_override" validate:"omitempty,min=0"`
}

type EstimateRequest struct {
	Hours          int    `json:"hours"            validate:"required,min=1,max=12"`
	NumberOfPeople int    `json:"number_of_people" validate:"required,min=1"`
	StartTime      string `json:"start_time"       validate:"required,datetime=15:04"`
	PromoCode      string `json:"promo_code"       validate:"omitempty,max=50"`
}

type ConfirmPaymentRequest struct {
	SessionID string `json:"session_id" validate:"required"`
}

type ApproveBookingResponse struct {
	PaymentURL string `json:"payment_url"`
}

type BookingResponse struct {
	ID                     string   `json:"id"`
	Date                   string   `json:"date"`
	StartTime              string   `json:"start_time"`
	Hours                  int      `json:"hours"`
	NumberOfPeople         int      `json:"number_of_people"`
	FullName               string   `json:"full_name"`
	Mobile                 string   `json:"mobile"`
	Email                  string   `json:"email"`
	Notes                  string   `json:"notes"`
	PreferredCommunication string   `json:"preferred_communication"`
	RoomID                 string   `json:"room_id"`
	Status                 string   `json:"status"`
	TotalPrice             int      `json:"total_price"`
	DepositAmount          int      `json:"deposit_amount"`
	RemainingAmount        int      `json:"remaining_amount"`
	DepositPaid            bool     `json:"deposit_paid"`
	CustomPriceOverride    *float64 `json:"custom_price_override,omitempty"`
	AdminNotes             string   `json:"admin_notes"`
	CancellationToken      string   `json:"cancellation_token"`
	PaymentSessionID       string   `json:"payment_session_id"`
	ReminderSent24h        bool     `json:"reminder_sent_24h"`
	ReminderSent2h         bool     `json:"reminder_sent_2h"`
	CustomerID             string   `json:"customer_id"`
	gDto.Metadata
}

func (b *BookingResponse) FromModel(mod model.Booking) {
	b.ID = mod.ID
	b.Date = mod.Date
	b.StartTime = mod.StartTime
	b.Hours = mod.Hours
	b.NumberOfPeople = mod.NumberOfPeople
	b.FullName = mod.FullName
	b.Mobile = mod.Mobile
	b.Email = mod.Email
	b.Notes = mod.Notes
	b.PreferredCommunication = mod.PreferredCommunication
	b.RoomID = mod.RoomID
	b.Status = mod.Status
	b.TotalPrice = mod.TotalPrice
	b.DepositAmount = mod.DepositAmount
	b.RemainingAmount = mod.RemainingAmount
	b.DepositPaid = mod.DepositPaid
	b.CustomPriceOverride = mod.CustomPriceOverride
	b.AdminNotes = mod.AdminNotes
	b.CancellationToken = mod.CancellationToken
	b.PaymentSessionID = mod.PaymentSessionID
	b.ReminderSent24h = mod.ReminderSent24h
	b.ReminderSent2h = mod.ReminderSent2h
	b.CustomerID = mod.CustomerID
	b.Metadata.FromModel(mod.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (b *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	b.TotalData = totalData
	b.TotalPage = shared.CalculateTotalPage(totalData, limit)

	b.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		b.Bookings[i].FromModel(mod)
	}
}
