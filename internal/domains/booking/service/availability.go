package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"karaoke/internal/domains/booking/model"
	roomModel "karaoke/internal/domains/room/model"
	"karaoke/internal/pricing"
	gDto "karaoke/shared/dto"
	"karaoke/shared/failure"
)

// findAvailableRoom walks the rooms in display order and assigns the first one
// with no overlapping active booking on the requested date. Start times are
// truncated to the hour and slots are half open, so [10,12) and [12,14) on the
// same room do not conflict.
func (s *serviceImpl) findAvailableRoom(ctx context.Context, date, startTime string, hours int) (room roomModel.Room, err error) {
	rooms, err := s.rooms.GetAll(ctx, gDto.QueryParams{
		SortBy:  roomModel.FieldDisplayOrder,
		SortDir: gDto.SortDirAsc,
	}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return room, fmt.Errorf("failed to get rooms: %w", err)
	}

	if len(rooms) == 0 {
		return room, failure.BadRequestFromString("no rooms configured") // nolint:wrapcheck
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldDate,
				Value:    date,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Value:    model.ActiveStatuses,
				Operator: gDto.FilterOperatorIn,
				Table:    model.TableName,
			},
		},
	}

	bookings, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings for availability check")

		return room, fmt.Errorf("failed to get bookings for availability check: %w", err)
	}

	start := pricing.StartHour(startTime)
	end := start + hours

	for _, candidate := range rooms {
		if !hasConflict(bookings, candidate.ID, start, end) {
			return candidate, nil
		}
	}

	return room, failure.BadRequestFromString("no rooms available for the selected time slot") // nolint:wrapcheck
}

func hasConflict(bookings []model.Booking, roomID string, start, end int) bool {
	for _, booking := range bookings {
		if booking.RoomID != roomID {
			continue
		}

		bookedStart := pricing.StartHour(booking.StartTime)
		bookedEnd := bookedStart + booking.Hours

		if start < bookedEnd && end > bookedStart {
			return true
		}
	}

	return false
}
