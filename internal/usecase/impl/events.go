package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "stayscape/internal/delivery/context"
	"stayscape/internal/domain/service"

	"github.com/google/uuid"
)

// publishEvent emits a domain event after the unit of work that produced it has committed.
// Publishing failures are logged and never fail the operation.
func publishEvent(
	ctx context.Context,
	publisher service.EventPublisher,
	logger *slog.Logger,
	eventType string,
	propertyID, actorID int64,
	payload map[string]any,
) {
	if publisher == nil {
		return
	}

	event := &service.DomainEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		PropertyID: propertyID,
		ActorID:    actorID,
		Payload:    payload,
		OccurredAt: time.Now().UTC(),
	}

	if err := publisher.Publish(ctx, event); err != nil {
		logger.Warn("Failed to publish domain event",
			slog.String("eventType", eventType),
			slog.String("eventID", event.ID),
			slog.Int64("propertyID", propertyID),
			slog.Any("error", err))
	}
}
