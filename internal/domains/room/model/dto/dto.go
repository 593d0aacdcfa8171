package dto

import (
	"mime/multipart"

	"github.com/google/uuid"

	"karaoke/internal/domains/room/model"
	"karaoke/shared"
	gDto "karaoke/shared/dto"
	gModel "karaoke/shared/model"
	"karaoke/shared/timezone"
)

type CreateRoomRequest struct {
	Name       string                `json:"name"        validate:"required,max=100"`
	Capacity   int                   `json:"capacity"    validate:"required,min=1"`
	HourlyRate float64               `json:"hourly_rate" validate:"omitempty,min=0"`
	Photo      *multipart.FileHeader `json:"photo"       validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	PhotoFile  multipart.File        `json:"-"`
}

func (c *CreateRoomRequest) ToModel(user string, displayOrder int, photoURL string) model.Room {
	return model.Room{
		ID:           uuid.NewString(),
		Name:         c.Name,
		Capacity:     c.Capacity,
		HourlyRate:   c.HourlyRate,
		DisplayOrder: displayOrder,
		Photo:        photoURL,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	Name       string                `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Capacity   *int                  `db:"capacity"    json:"capacity"    validate:"omitempty,min=1"`
	HourlyRate *float64              `db:"hourly_rate" json:"hourly_rate" validate:"omitempty,min=0"`
	Photo      *multipart.FileHeader `json:"photo"     validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	PhotoFile  multipart.File        `json:"-"`
}

type RoomResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Capacity     int     `json:"capacity"`
	HourlyRate   float64 `json:"hourly_rate"`
	DisplayOrder int     `json:"display_order"`
	Photo        string  `json:"photo"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(mod model.Room) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Capacity = mod.Capacity
	r.HourlyRate = mod.HourlyRate
	r.DisplayOrder = mod.DisplayOrder
	r.Photo = mod.Photo
	r.Metadata.FromModel(mod.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
