package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"karaoke/config"
	"karaoke/infras/otel"
	bookingModel "karaoke/internal/domains/booking/model"
	bookingRepo "karaoke/internal/domains/booking/repository"
	roomModel "karaoke/internal/domains/room/model"
	roomRepo "karaoke/internal/domains/room/repository"
	settingsModel "karaoke/internal/domains/settings/model"
	settingsRepo "karaoke/internal/domains/settings/repository"
	"karaoke/internal/notification"
	"karaoke/shared"
	"karaoke/shared/constant"
	gDto "karaoke/shared/dto"
	"karaoke/shared/timezone"
)

const schedulerActor = "scheduler"

// Reminder periodically sweeps confirmed bookings and sends the 24 hour and
// 2 hour reminders. Each reminder is one shot: the sent flag is persisted
// right after a successful send so the next sweep skips it.
type Reminder struct {
	repo     bookingRepo.Booking
	rooms    roomRepo.Room
	settings settingsRepo.Settings
	notifier notification.Notifier
	cfg      *config.Config
	otel     otel.Otel
	cron     *cron.Cron
}

func NewReminder(
	repo bookingRepo.Booking,
	rooms roomRepo.Room,
	settings settingsRepo.Settings,
	notifier notification.Notifier,
	cfg *config.Config,
	otel otel.Otel,
) *Reminder {
	return &Reminder{
		repo:     repo,
		rooms:    rooms,
		settings: settings,
		notifier: notifier,
		cfg:      cfg,
		otel:     otel,
		cron:     cron.New(),
	}
}

func (r *Reminder) Start() error {
	spec := fmt.Sprintf("@every %dm", r.cfg.Scheduler.SweepIntervalMinutes)

	_, err := r.cron.AddFunc(spec, r.run)
	if err != nil {
		return fmt.Errorf("failed to schedule reminder sweep: %w", err)
	}

	r.cron.Start()
	log.Info().Str("spec", spec).Msg("reminder sweep scheduled")

	return nil
}

func (r *Reminder) Stop() {
	r.cron.Stop()
	log.Info().Msg("reminder sweep stopped")
}

// run contains a single sweep so one bad run never kills the schedule.
func (r *Reminder) run() {
	defer func() {
		if rec := recover(); rec != nil {
			log.Error().Interface("panic", rec).Msg("reminder sweep panicked")
		}
	}()

	if err := r.Sweep(context.Background()); err != nil {
		log.Error().Err(err).Msg("reminder sweep failed")
	}
}

// Sweep sends every reminder that is due right now.
func (r *Reminder) Sweep(ctx context.Context) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelSchedulerScopeName, constant.OtelSchedulerScopeName+".Sweep")
	defer scope.End()
	defer scope.TraceIfError(err)

	settings, err := r.settings.Get(ctx, shared.FilterByID(settingsModel.SingletonID, settingsModel.FieldID, settingsModel.TableName))
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if settings.IsEmpty() {
		settings = settingsModel.Default(schedulerActor)
	}

	bookings, err := r.repo.GetAll(ctx, gDto.QueryParams{}, shared.FilterByID(bookingModel.StatusConfirmed, bookingModel.FieldStatus, bookingModel.TableName))
	if err != nil {
		return fmt.Errorf("failed to get confirmed bookings: %w", err)
	}

	for _, booking := range bookings {
		if booking.ReminderSent24h && booking.ReminderSent2h {
			continue
		}

		if sweepErr := r.sweepOne(ctx, settings, booking); sweepErr != nil {
			log.Error().Err(sweepErr).Str("bookingID", booking.ID).Msg("failed to process reminder")
		}
	}

	return nil
}

func (r *Reminder) sweepOne(ctx context.Context, settings settingsModel.Settings, booking bookingModel.Booking) error {
	startsAt, err := timezone.Parse(constant.DateOnlyFormat+" "+constant.TimeOfDay, booking.Date+" "+booking.StartTime)
	if err != nil {
		return fmt.Errorf("failed to parse booking start: %w", err)
	}

	hoursUntil := startsAt.Sub(timezone.Now()).Hours()

	window := float64(r.cfg.Scheduler.ReminderWindowHours)
	lead24 := float64(r.cfg.Scheduler.Reminder24LeadHours)
	lead2 := float64(r.cfg.Scheduler.Reminder2LeadHours)

	if !booking.ReminderSent24h && hoursUntil <= lead24 && hoursUntil > lead24-window {
		return r.send(ctx, settings, booking, notification.Window24h, bookingModel.FieldReminderSent24h)
	}

	if !booking.ReminderSent2h && hoursUntil <= lead2 && hoursUntil > lead2-window {
		return r.send(ctx, settings, booking, notification.Window2h, bookingModel.FieldReminderSent2h)
	}

	return nil
}

func (r *Reminder) send(ctx context.Context, settings settingsModel.Settings, booking bookingModel.Booking, window, sentField string) error {
	roomName := constant.Empty

	room, err := r.rooms.Get(ctx, shared.FilterByID(booking.RoomID, roomModel.FieldID, roomModel.TableName))
	if err == nil {
		roomName = room.Name
	}

	r.notifier.SendReminder(ctx, settings, booking, roomName, window)

	fields := map[string]any{
		sentField:                true,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: schedulerActor,
	}

	if err = r.repo.Update(ctx, fields, shared.FilterByID(booking.ID, bookingModel.FieldID, bookingModel.TableName)); err != nil {
		return fmt.Errorf("failed to persist reminder flag: %w", err)
	}

	log.Info().Str("bookingID", booking.ID).Str("window", window).Msg("reminder sent")

	return nil
}
