package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"support-desk/contract"
	"support-desk/domain/event"
	"support-desk/errors"
)

// Router maps domain events to the topics their subscribers listen on.
// It publishes synchronously: callers hold the dialog lock, so the publish
// order on a topic follows the order in which state changed.
type Router struct {
	log       *slog.Logger
	publisher contract.IPublisher
}

func NewRouter(log *slog.Logger, publisher contract.IPublisher) *Router {
	return &Router{log: log, publisher: publisher}
}

func (r *Router) Route(ctx context.Context, evt event.DomainEvent) error {
	switch e := evt.(type) {
	case event.ChatMessage:
		return r.publisher.PublishToTopic(ctx, event.DialogTopic(e.Dialog), e)
	case event.DialogClosed:
		return r.publisher.PublishToTopic(ctx, event.DialogTopic(e.Dialog), e)
	case event.InactivityWarning:
		return r.publisher.PublishToTopic(ctx, event.DialogTopic(e.Dialog), e)
	case event.StatusChanged:
		return r.publisher.PublishToTopic(ctx, event.StatusUpdateTopic, e)
	case event.ParticipantInvited:
		return r.publisher.PublishToTopic(ctx, event.InvitesTopic(e.Dialog), e)
	case event.MessagesRead:
		return r.publisher.PublishToTopic(ctx, event.ReadTopic(e.Dialog), e)
	case event.DialogCreated:
		return r.publisher.PublishToUser(ctx, e.Username, event.DialogCreatedQueue, e)
	default:
		return fmt.Errorf("no route for %T: %w", evt, errors.ErrInvalidPayload)
	}
}

// RouteAll publishes events in order. A failed publish is logged and the rest still go out:
// the state they describe is already persisted.
func (r *Router) RouteAll(ctx context.Context, events ...event.DomainEvent) {
	for _, evt := range events {
		if err := r.Route(ctx, evt); err != nil {
			r.log.Warn("Unable to publish event", "dialog_id", evt.DialogID(), "event", fmt.Sprintf("%T", evt), "error", err)
		}
	}
}
