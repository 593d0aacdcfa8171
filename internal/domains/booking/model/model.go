package model

import "karaoke/shared/model"

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID                = "id"
	FieldDate              = "date"
	FieldStartTime         = "start_time"
	FieldHours             = "hours"
	FieldNumberOfPeople    = "number_of_people"
	FieldFullName          = "full_name"
	FieldRoomID            = "room_id"
	FieldStatus            = "status"
	FieldDepositPaid       = "deposit_paid"
	FieldCancellationToken = "cancellation_token"
	FieldPaymentSessionID  = "payment_session_id"
	FieldReminderSent24h   = "reminder_sent_24h"
	FieldReminderSent2h    = "reminder_sent_2h"
	FieldCustomerID        = "customer_id"
)

const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusRejected  = "rejected"
)

const (
	CommunicationWhatsApp = "whatsapp"
	CommunicationEmail    = "email"
)

// ActiveStatuses are the statuses that occupy a room slot. Rejected and
// cancelled bookings never conflict.
var ActiveStatuses = []string{StatusPending, StatusApproved, StatusConfirmed}

type Booking struct {
	ID                     string   `db:"id"`
	Date                   string   `db:"date"`
	StartTime              string   `db:"start_time"`
	Hours                  int      `db:"hours"`
	NumberOfPeople         int      `db:"number_of_people"`
	FullName               string   `db:"full_name"`
	Mobile                 string   `db:"mobile"`
	Email                  string   `db:"email"`
	Notes                  string   `db:"notes"`
	PreferredCommunication string   `db:"preferred_communication"`
	RoomID                 string   `db:"room_id"`
	Status                 string   `db:"status"`
	TotalPrice             int      `db:"total_price"`
	DepositAmount          int      `db:"deposit_amount"`
	RemainingAmount        int      `db:"remaining_amount"`
	DepositPaid            bool     `db:"deposit_paid"`
	CustomPriceOverride    *float64 `db:"custom_price_override"`
	AdminNotes             string   `db:"admin_notes"`
	CancellationToken      string   `db:"cancellation_token"`
	PaymentSessionID       string   `db:"payment_session_id"`
	ReminderSent24h        bool     `db:"reminder_sent_24h"`
	ReminderSent2h         bool     `db:"reminder_sent_2h"`
	CustomerID             string   `db:"customer_id"`
	model.Metadata
}

func (b Booking) IsEmpty() bool {
	return b.ID == ""
}
