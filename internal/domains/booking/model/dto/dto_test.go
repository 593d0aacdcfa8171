package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"karaoke/internal/domains/booking/model"
	"karaoke/internal/domains/booking/model/dto"
	"karaoke/internal/pricing"
)

func TestCreateBookingRequest_ToModel(t *testing.T) {
	req := dto.CreateBookingRequest{
		Date:                   "2026-09-01",
		StartTime:              "19:00",
		Hours:                  5,
		NumberOfPeople:         4,
		FullName:               "Jane Smith",
		Mobile:                 "+447700900000",
		Email:                  "jane@example.com",
		PreferredCommunication: "whatsapp",
	}

	price := pricing.Breakdown{
		BasePrice:       120,
		FinalPrice:      120,
		DepositAmount:   36,
		RemainingAmount: 84,
	}

	booking := req.ToModel("customer", "room-1", "cust-1", "token-1", price)

	assert.NotEmpty(t, booking.ID, "expected ID to be generated")
	assert.Equal(t, model.StatusPending, booking.Status)
	assert.Equal(t, "room-1", booking.RoomID)
	assert.Equal(t, "cust-1", booking.CustomerID)
	assert.Equal(t, "token-1", booking.CancellationToken)
	assert.Equal(t, 120, booking.TotalPrice)
	assert.Equal(t, 36, booking.DepositAmount)
	assert.Equal(t, 84, booking.RemainingAmount)
	assert.False(t, booking.DepositPaid)
	assert.False(t, booking.ReminderSent24h)
	assert.False(t, booking.ReminderSent2h)
	assert.Equal(t, "customer", booking.CreatedBy)
	assert.False(t, booking.CreatedAt.IsZero(), "expected CreatedAt to be set")
}

func TestBookingResponse_FromModel(t *testing.T) {
	booking := model.Booking{
		ID:                "booking-1",
		Date:              "2026-09-01",
		StartTime:         "19:00",
		Hours:             5,
		Status:            model.StatusConfirmed,
		TotalPrice:        120,
		DepositAmount:     36,
		RemainingAmount:   84,
		DepositPaid:       true,
		CancellationToken: "token-1",
	}

	var response dto.BookingResponse
	response.FromModel(booking)

	assert.Equal(t, booking.ID, response.ID)
	assert.Equal(t, booking.Status, response.Status)
	assert.Equal(t, booking.TotalPrice, response.TotalPrice)
	assert.True(t, response.DepositPaid)
	assert.Equal(t, booking.CancellationToken, response.CancellationToken)
}

func TestGetBookingsResponse_FromModels(t *testing.T) {
	bookings := []model.Booking{
		{ID: "booking-1", Status: model.StatusPending},
		{ID: "booking-2", Status: model.StatusConfirmed},
	}

	var response dto.GetBookingsResponse
	response.FromModels(bookings, 12, 10)

	assert.Equal(t, 12, response.TotalData)
	assert.Equal(t, 2, response.TotalPage)
	assert.Len(t, response.Bookings, 2)
	assert.Equal(t, "booking-1", response.Bookings[0].ID)
}
