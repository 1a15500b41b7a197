package events

import (
	"context"
	"fmt"
	"log/slog"
)

// SubscribeLifecycleLog writes one structured log record per complaint
// lifecycle event. Nothing is persisted.
func SubscribeLifecycleLog(bus *Bus, logger *slog.Logger) {
	lg := logger.With("component", "complaint_lifecycle")

	bus.Subscribe(EventTypeComplaintSubmitted, func(ctx context.Context, event Event) error {
		e, ok := event.(*ComplaintSubmittedEvent)
		if !ok {
			return fmt.Errorf("unexpected payload %T for %s", event, EventTypeComplaintSubmitted)
		}
		lg.InfoContext(ctx, "complaint lifecycle event",
			"event_id", e.ID,
			"event_type", e.Type,
			"complaint_id", e.ComplaintID,
			"user_id", e.UserID,
			"category", e.Category,
			"priority", e.Priority,
			"occurred_at", e.Timestamp)
		return nil
	})

	bus.Subscribe(EventTypeComplaintStatusChanged, func(ctx context.Context, event Event) error {
		e, ok := event.(*ComplaintStatusChangedEvent)
		if !ok {
			return fmt.Errorf("unexpected payload %T for %s", event, EventTypeComplaintStatusChanged)
		}
		lg.InfoContext(ctx, "complaint lifecycle event",
			"event_id", e.ID,
			"event_type", e.Type,
			"complaint_id", e.ComplaintID,
			"status", e.Status,
			"occurred_at", e.Timestamp)
		return nil
	})
}
