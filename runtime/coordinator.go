package runtime

import (
	"context"
	stdErrors "errors"
	"fmt"
	"log/slog"
	"support-desk/auth"
	"support-desk/contract"
	"support-desk/domain"
	"support-desk/domain/event"
	"support-desk/errors"
	"support-desk/observability"
	"sync"
	"time"

	"github.com/samber/lo"
)

var (
	_ contract.ICoordinator      = (*Coordinator)(nil)
	_ contract.IInactivityTarget = (*Coordinator)(nil)
)

// Coordinator drives the dialog state machine against the session registry,
// the store and the router.
//
// Every mutation of a dialog runs under that dialog's lock, from the registry
// update to the last publish. Store writes always happen before the matching
// notices go out, so a subscriber never hears about state that isn't durable.
type Coordinator struct {
	log      *slog.Logger
	dialogs  contract.IDialogRepository
	messages contract.IMessageRepository
	profiles contract.IProfileRepository
	registry contract.IRegistry
	locks    *DialogLocks
	router   *Router
	policy   domain.InactivityPolicy
	now      func() time.Time

	warnedMu sync.Mutex
	warned   map[domain.DialogID]struct{} // dialogs already warned in their current inactivity episode
}

func NewCoordinator(
	log *slog.Logger,
	dialogs contract.IDialogRepository,
	messages contract.IMessageRepository,
	profiles contract.IProfileRepository,
	registry contract.IRegistry,
	locks *DialogLocks,
	router *Router,
	policy domain.InactivityPolicy,
) *Coordinator {
	return &Coordinator{
		log:      log,
		dialogs:  dialogs,
		messages: messages,
		profiles: profiles,
		registry: registry,
		locks:    locks,
		router:   router,
		policy:   policy,
		now:      time.Now,
		warned:   make(map[domain.DialogID]struct{}),
	}
}

// WithClock replaces the wall clock, tests use it to age dialogs.
func (c *Coordinator) WithClock(now func() time.Time) *Coordinator {
	c.now = now
	return c
}

func (c *Coordinator) CreateDialog(ctx context.Context, owner domain.Principal, topic string) (dialog domain.Dialog, err error) {
	defer observe("create_dialog", time.Now(), &err)

	// Topic collisions are per owner: the owner's dialogs are read and the new one
	// written under the same lock.
	unlockOwner := c.locks.Lock(ownerLockKey(owner.ParticipantID))
	defer unlockOwner()

	owned, err := c.dialogs.FindByParticipant(ctx, owner.ParticipantID)
	if err != nil {
		return domain.Dialog{}, err
	}
	topics := lo.Map(owned, func(d domain.Dialog, _ int) string { return d.Topic })

	now := c.now()
	dialog = domain.NewDialog(domain.GenerateTopic(topic, topics, now), owner.ParticipantID, now)

	unlock := c.locks.Lock(dialog.ID)
	defer unlock()

	if err = c.dialogs.Save(ctx, dialog); err != nil {
		return domain.Dialog{}, err
	}
	c.log.Info("Dialog created", "dialog_id", dialog.ID, "topic", dialog.Topic, "owner", owner.ParticipantID)

	c.broadcast(ctx, event.DialogCreated{Dialog: dialog.ID, Topic: dialog.Topic, Username: owner.Username})
	return dialog, nil
}

// SendMessage persists a chat message, makes the sender a durable participant
// and applies the message transition. The message and the dialog are saved together.
func (c *Coordinator) SendMessage(ctx context.Context, dialogID domain.DialogID, senderID, content string, isClientSender bool) (msg domain.Message, err error) {
	defer observe("send_message", time.Now(), &err)

	sender, err := c.profiles.ProfileForUser(ctx, senderID)
	if err != nil {
		return domain.Message{}, err
	}

	unlock := c.locks.Lock(dialogID)
	defer unlock()

	current, err := c.dialogs.Find(ctx, dialogID)
	if err != nil {
		return domain.Message{}, err
	}

	now := c.now()
	t, err := domain.Apply(current, domain.Event{Kind: domain.MessageSent, At: now, ClientSender: isClientSender})
	if err != nil {
		return domain.Message{}, err
	}
	next := t.Dialog
	next.AddParticipant(senderID)

	msg = domain.NewChatMessage(dialogID, senderID, content, now)
	if err = c.messages.SaveMessage(ctx, next, msg); err != nil {
		return domain.Message{}, err
	}

	c.settle(t)
	c.broadcast(ctx, append([]event.DomainEvent{event.NewChatMessage(msg, sender.DisplayName)}, transitionNotices(t)...)...)
	return msg, nil
}

// MarkMessagesRead flags what others wrote as read for readerID.
// One read notice is published per call, with the number of messages that changed.
func (c *Coordinator) MarkMessagesRead(ctx context.Context, dialogID domain.DialogID, readerID string) (count int, err error) {
	defer observe("mark_read", time.Now(), &err)

	unlock := c.locks.Lock(dialogID)
	defer unlock()

	if _, err = c.dialogs.Find(ctx, dialogID); err != nil {
		return 0, err
	}
	count, err = c.messages.MarkRead(ctx, dialogID, readerID)
	if err != nil {
		return 0, err
	}

	c.broadcast(ctx, event.NewMessagesRead(dialogID, readerID, count))
	return count, nil
}

// CloseDialog is the only way to close a dialog on request.
// Closing a closed dialog fails with errors.ErrAlreadyClosed.
func (c *Coordinator) CloseDialog(ctx context.Context, dialogID domain.DialogID) (dialog domain.Dialog, err error) {
	defer observe("close_dialog", time.Now(), &err)

	unlock := c.locks.Lock(dialogID)
	defer unlock()

	return c.transition(ctx, dialogID, domain.Event{Kind: domain.ExplicitClose, At: c.now()})
}

// InviteParticipant adds userID to the durable participants. Only staff may invite.
// Inviting someone who is already a participant changes nothing and publishes nothing.
func (c *Coordinator) InviteParticipant(ctx context.Context, inviter domain.Principal, dialogID domain.DialogID, userID string) (dialog domain.Dialog, err error) {
	defer observe("invite", time.Now(), &err)

	if err = auth.RequireStaff(inviter); err != nil {
		return domain.Dialog{}, fmt.Errorf("%s may not invite to %s: %w", inviter.Username, dialogID, err)
	}
	invited, err := c.profiles.ProfileForUser(ctx, userID)
	if err != nil {
		return domain.Dialog{}, err
	}

	unlock := c.locks.Lock(dialogID)
	defer unlock()

	dialog, err = c.dialogs.Find(ctx, dialogID)
	if err != nil {
		return domain.Dialog{}, err
	}
	if !dialog.AddParticipant(userID) {
		c.log.Debug("Already a participant", "dialog_id", dialogID, "participant_id", userID)
		return dialog, nil
	}
	if err = c.dialogs.Save(ctx, dialog); err != nil {
		return domain.Dialog{}, err
	}

	c.broadcast(ctx, event.NewParticipantInvited(dialogID, invited))
	return dialog, nil
}

// UserJoinedSession records a live connection and opens a pending dialog once two people are present.
func (c *Coordinator) UserJoinedSession(ctx context.Context, dialogID domain.DialogID, participantID string) (dialog domain.Dialog, err error) {
	defer observe("join", time.Now(), &err)
	return c.presence(ctx, dialogID, participantID, domain.ParticipantJoined)
}

// UserLeftSession drops a live connection and closes an open dialog once fewer than two remain.
func (c *Coordinator) UserLeftSession(ctx context.Context, dialogID domain.DialogID, participantID string) (dialog domain.Dialog, err error) {
	defer observe("leave", time.Now(), &err)
	return c.presence(ctx, dialogID, participantID, domain.ParticipantLeft)
}

// LeaveAllSessions runs UserLeftSession on every open dialog of a participant whose connection dropped.
// One failing dialog doesn't stop the others; all errors are returned joined.
func (c *Coordinator) LeaveAllSessions(ctx context.Context, participantID string) error {
	open, err := c.dialogs.FindOpenWithParticipant(ctx, participantID)
	if err != nil {
		return err
	}
	var errs []error
	for _, d := range open {
		if _, err := c.UserLeftSession(ctx, d.ID, participantID); err != nil {
			c.log.Warn("Unable to leave session", "dialog_id", d.ID, "participant_id", participantID, "error", err)
			errs = append(errs, err)
		}
	}
	return stdErrors.Join(errs...)
}

// History returns a page of messages, newest first, and the cursor of the next page.
func (c *Coordinator) History(ctx context.Context, dialogID domain.DialogID, cursor *string) ([]domain.Message, *string, error) {
	if _, err := c.dialogs.Find(ctx, dialogID); err != nil {
		return nil, nil, err
	}
	return c.messages.GetMessages(ctx, dialogID, cursor)
}

func (c *Coordinator) OpenDialogs(ctx context.Context) ([]domain.DialogID, error) {
	open, err := c.dialogs.FindByStatus(ctx, domain.StatusOpen)
	if err != nil {
		return nil, err
	}
	return lo.Map(open, func(d domain.Dialog, _ int) domain.DialogID { return d.ID }), nil
}

// CheckInactivity warns or closes one dialog depending on how long it has been idle.
// It returns the event applied, or an empty kind when nothing was due.
// A dialog closed concurrently by someone else is not an error here.
func (c *Coordinator) CheckInactivity(ctx context.Context, dialogID domain.DialogID) (kind domain.EventKind, err error) {
	defer observe("check_inactivity", time.Now(), &err)

	unlock := c.locks.Lock(dialogID)
	defer unlock()

	current, err := c.dialogs.Find(ctx, dialogID)
	if err != nil {
		return "", err
	}

	now := c.now()
	warned := c.isWarned(dialogID)
	kind, due := c.policy.Evaluate(current, now, warned)
	if !due {
		return "", nil
	}

	switch kind {
	case domain.InactivityWarn:
		t, err := domain.Apply(current, domain.Event{Kind: kind, At: now, AlreadyWarned: warned})
		if err != nil {
			return "", err
		}
		if !t.Has(domain.EffectWarnNotice) {
			return "", nil
		}
		c.markWarned(dialogID)
		c.broadcast(ctx, event.NewInactivityWarning(dialogID, c.policy.WarningText()))
		observability.RecordNotice(kind)
		c.log.Info("Inactivity warning sent", "dialog_id", dialogID, "idle", current.InactiveFor(now))
		return kind, nil

	default:
		if _, err := c.transition(ctx, dialogID, domain.Event{Kind: kind, At: now}); err != nil {
			if stdErrors.Is(err, errors.ErrAlreadyClosed) {
				return "", nil
			}
			return "", err
		}
		observability.RecordNotice(kind)
		c.log.Info("Dialog closed for inactivity", "dialog_id", dialogID, "idle", current.InactiveFor(now))
		return kind, nil
	}
}

// presence applies a join or a leave. The registry is updated under the dialog
// lock so that the count the transition sees is the count after this very event.
func (c *Coordinator) presence(ctx context.Context, dialogID domain.DialogID, participantID string, kind domain.EventKind) (domain.Dialog, error) {
	profile, err := c.profiles.ProfileForUser(ctx, participantID)
	if err != nil {
		return domain.Dialog{}, err
	}

	unlock := c.locks.Lock(dialogID)
	defer unlock()

	current, err := c.dialogs.Find(ctx, dialogID)
	if err != nil {
		return domain.Dialog{}, err
	}

	// The registry only moves under the dialog lock, so comparing counts tells
	// whether this call changed it and what undoing it means.
	before := c.registry.PresentCount(dialogID)
	var count int
	var undo func()
	notice := domain.MessageJoin
	if kind == domain.ParticipantJoined {
		count = c.registry.Join(dialogID, participantID)
		undo = func() {
			if count > before {
				c.registry.Leave(dialogID, participantID)
			}
		}
	} else {
		count = c.registry.Leave(dialogID, participantID)
		notice = domain.MessageLeave
		undo = func() {
			if count < before {
				c.registry.Join(dialogID, participantID)
			}
		}
	}

	now := c.now()
	t, err := domain.Apply(current, domain.Event{Kind: kind, At: now, PresentCount: count})
	if err == nil {
		err = c.dialogs.Save(ctx, t.Dialog)
	}
	if err != nil {
		undo()
		return domain.Dialog{}, err
	}

	c.settle(t)
	c.log.Debug("Presence changed", "dialog_id", dialogID, "participant_id", participantID,
		"event", kind, "present", count, "status", t.To)
	c.broadcast(ctx, append([]event.DomainEvent{event.NewPresenceMessage(dialogID, profile, notice, now)}, transitionNotices(t)...)...)
	return t.Dialog, nil
}

// transition loads, applies, saves and publishes. The caller holds the dialog lock.
func (c *Coordinator) transition(ctx context.Context, dialogID domain.DialogID, evt domain.Event) (domain.Dialog, error) {
	current, err := c.dialogs.Find(ctx, dialogID)
	if err != nil {
		return domain.Dialog{}, err
	}
	t, err := domain.Apply(current, evt)
	if err != nil {
		return domain.Dialog{}, err
	}
	if err := c.dialogs.Save(ctx, t.Dialog); err != nil {
		return domain.Dialog{}, err
	}
	c.settle(t)
	c.broadcast(ctx, transitionNotices(t)...)
	return t.Dialog, nil
}

// settle does the in-memory bookkeeping of a persisted transition.
func (c *Coordinator) settle(t domain.Transition) {
	if t.Has(domain.EffectClearWarned) {
		c.clearWarned(t.Dialog.ID)
	}
	observability.RecordTransition(t.From, t.To)
}

// broadcast publishes notices for state that is already persisted. The caller's
// cancellation no longer applies: a saved transition always gets its notices.
func (c *Coordinator) broadcast(ctx context.Context, events ...event.DomainEvent) {
	c.router.RouteAll(context.WithoutCancel(ctx), events...)
}

func ownerLockKey(participantID string) domain.DialogID {
	return domain.DialogID("owner:" + participantID)
}

func transitionNotices(t domain.Transition) []event.DomainEvent {
	var notices []event.DomainEvent
	if t.Has(domain.EffectCloseNotice) {
		notices = append(notices, event.NewDialogClosed(t.Dialog.ID))
	}
	if t.Has(domain.EffectStatusUpdate) && t.Changed() {
		notices = append(notices, event.StatusChanged{Dialog: t.Dialog.ID, Status: t.To})
	}
	return notices
}

func (c *Coordinator) isWarned(id domain.DialogID) bool {
	c.warnedMu.Lock()
	defer c.warnedMu.Unlock()
	_, ok := c.warned[id]
	return ok
}

func (c *Coordinator) markWarned(id domain.DialogID) {
	c.warnedMu.Lock()
	defer c.warnedMu.Unlock()
	c.warned[id] = struct{}{}
}

func (c *Coordinator) clearWarned(id domain.DialogID) {
	c.warnedMu.Lock()
	defer c.warnedMu.Unlock()
	delete(c.warned, id)
}

func observe(operation string, started time.Time, err *error) {
	code := "ok"
	if *err != nil {
		code = string(errors.ToCode(*err))
	}
	observability.RecordOperation(operation, code, started)
}
