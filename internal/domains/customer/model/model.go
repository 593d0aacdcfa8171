package model

import "karaoke/shared/model"

const (
	TableName  = "customers"
	EntityName = "customer"

	FieldID          = "id"
	FieldFullName    = "full_name"
	FieldMobile      = "mobile"
	FieldEmail       = "email"
	FieldTotalVisits = "total_visits"
	FieldNotes       = "notes"
)

type Customer struct {
	ID          string `db:"id"`
	FullName    string `db:"full_name"`
	Mobile      string `db:"mobile"`
	Email       string `db:"email"`
	TotalVisits int    `db:"total_visits"`
	Notes       string `db:"notes"`
	model.Metadata
}

func (c Customer) IsEmpty() bool {
	return c.ID == ""
}
