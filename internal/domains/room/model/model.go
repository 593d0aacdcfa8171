package model

import "karaoke/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID           = "id"
	FieldName         = "name"
	FieldCapacity     = "capacity"
	FieldHourlyRate   = "hourly_rate"
	FieldDisplayOrder = "display_order"
	FieldPhoto        = "photo"
)

type Room struct {
	ID           string  `db:"id"`
	Name         string  `db:"name"`
	Capacity     int     `db:"capacity"`
	HourlyRate   float64 `db:"hourly_rate"`
	DisplayOrder int     `db:"display_order"`
	Photo        string  `db:"photo"`
	model.Metadata
}

func (r Room) IsEmpty() bool {
	return r.ID == ""
}
