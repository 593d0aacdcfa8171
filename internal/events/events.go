package events

//go:generate go run go.uber.org/mock/mockgen -source=./events.go -destination=./mocks/events_mock.go -package=mocks

import (
	"context"

	"github.com/rs/zerolog/log"

	"karaoke/config"
	"karaoke/infras/kafka"
	"karaoke/infras/otel"
	"karaoke/shared/constant"
	"karaoke/shared/timezone"
)

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

type ChangeEvent struct {
	Entity     string `json:"entity"`
	EntityID   string `json:"entity_id"`
	Action     string `json:"action"`
	OccurredAt string `json:"occurred_at"`
}

// Publisher emits entity change events for downstream consumers. Publishing
// is best effort, a broker outage never fails the originating request.
type Publisher interface {
	EntityChanged(ctx context.Context, entity, entityID, action string)
}

type kafkaPublisher struct {
	client kafka.Client
	cfg    *config.Config
	otel   otel.Otel
}

func NewKafkaPublisher(client kafka.Client, cfg *config.Config, otl otel.Otel) Publisher {
	return &kafkaPublisher{
		client: client,
		cfg:    cfg,
		otel:   otl,
	}
}

func (p *kafkaPublisher) EntityChanged(ctx context.Context, entity, entityID, action string) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".EntityChanged")
	defer scope.End()

	event := ChangeEvent{
		Entity:     entity,
		EntityID:   entityID,
		Action:     action,
		OccurredAt: timezone.Now().Format(constant.DateFormat),
	}

	message := kafka.Message{
		Key:   entity + ":" + entityID,
		Value: event,
	}

	if err := p.client.SendMessages(ctx, p.cfg.Kafka.EventTopic, message); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("entity", entity).Str("action", action).Msg("failed to publish change event")
	}
}
