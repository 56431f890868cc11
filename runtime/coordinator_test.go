package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"support-desk/domain"
	"support-desk/domain/event"
	"support-desk/errors"
	"support-desk/infrastructure/storage"
	"support-desk/mocks"
	"sync"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	t0     = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	policy = domain.InactivityPolicy{WarnAfter: 49 * time.Minute, CloseAfter: 59 * time.Minute}

	client = domain.Principal{ParticipantID: "client-1", Username: "alice", Role: domain.RoleUser}
	agent  = domain.Principal{ParticipantID: "agent-1", Username: "bob", Role: domain.RoleAgent}
)

type published struct {
	Key     string
	Payload any
	Status  domain.Status // dialog status found in the store at publish time
}

// recordingPublisher keeps every publish in order and snapshots the store
// so tests can check that notices never run ahead of durable state.
type recordingPublisher struct {
	mu      sync.Mutex
	dialogs *storage.DialogRepository
	items   []published
}

func (p *recordingPublisher) PublishToTopic(ctx context.Context, topic string, payload any) error {
	item := published{Key: topic, Payload: payload}
	if evt, ok := payload.(event.DomainEvent); ok {
		if d, err := p.dialogs.Find(ctx, evt.DialogID()); err == nil {
			item.Status = d.Status
		}
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.items = append(p.items, item)
	return nil
}

func (p *recordingPublisher) PublishToUser(_ context.Context, username, queue string, payload any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.items = append(p.items, published{Key: username + queue, Payload: payload})
	return nil
}

func (p *recordingPublisher) on(key string) []published {
	p.mu.Lock()
	defer p.mu.Unlock()
	return lo.Filter(p.items, func(item published, _ int) bool { return item.Key == key })
}

func (p *recordingPublisher) statusUpdates(id domain.DialogID, status domain.Status) []published {
	return lo.Filter(p.on(event.StatusUpdateTopic), func(item published, _ int) bool {
		changed := item.Payload.(event.StatusChanged)
		return changed.Dialog == id && changed.Status == status
	})
}

func (p *recordingPublisher) closeNotices(id domain.DialogID) []published {
	return lo.Filter(p.on(event.DialogTopic(id)), func(item published, _ int) bool {
		_, ok := item.Payload.(event.DialogClosed)
		return ok
	})
}

type fakeClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now
	c.now = c.now.Add(c.step)
	return now
}

func (c *fakeClock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

type fixture struct {
	coordinator *Coordinator
	dialogs     *storage.DialogRepository
	messages    *storage.MessageRepository
	registry    *Registry
	publisher   *recordingPublisher
	clock       *fakeClock
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	log := slog.Default()
	dialogs := storage.NewDialogRepository(db, log)
	messages := storage.NewMessageRepository(db, log, 0)
	profiles := storage.NewProfileRepository(db)
	for _, p := range []domain.Profile{
		{ID: client.ParticipantID, DisplayName: "Alice", Role: domain.RoleUser},
		{ID: agent.ParticipantID, DisplayName: "Bob", Role: domain.RoleAgent},
		{ID: "client-2", DisplayName: "Carol", Role: domain.RoleUser},
	} {
		require.NoError(t, profiles.SaveProfile(context.Background(), p))
	}

	publisher := &recordingPublisher{dialogs: dialogs}
	registry := NewRegistry()
	clock := &fakeClock{now: t0}
	coordinator := NewCoordinator(log, dialogs, messages, profiles, registry, NewDialogLocks(),
		NewRouter(log, publisher), policy).WithClock(clock.Now)

	return fixture{
		coordinator: coordinator,
		dialogs:     dialogs,
		messages:    messages,
		registry:    registry,
		publisher:   publisher,
		clock:       clock,
	}
}

func requireClosedAtInvariant(t *testing.T, d domain.Dialog) {
	t.Helper()
	require.Equal(t, d.Status == domain.StatusClosed, d.ClosedAt != nil, "status %s with closedAt %v", d.Status, d.ClosedAt)
}

// openDialog creates a dialog owned by the client and brings both sides online.
func (f fixture) openDialog(t *testing.T) domain.Dialog {
	t.Helper()
	ctx := context.Background()
	dialog, err := f.coordinator.CreateDialog(ctx, client, "Refund")
	require.NoError(t, err)
	_, err = f.coordinator.UserJoinedSession(ctx, dialog.ID, client.ParticipantID)
	require.NoError(t, err)
	dialog, err = f.coordinator.UserJoinedSession(ctx, dialog.ID, agent.ParticipantID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusOpen, dialog.Status)
	return dialog
}

func TestCoordinator_CreateDialog_Acknowledges_Creator(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()

	// When the client creates two dialogs with the same topic and one without topic
	first, err := f.coordinator.CreateDialog(ctx, client, "Refund")
	req.NoError(err)
	second, err := f.coordinator.CreateDialog(ctx, client, "Refund")
	req.NoError(err)
	blank, err := f.coordinator.CreateDialog(ctx, client, "")
	req.NoError(err)

	// Then the dialogs start pending with deduplicated topics
	req.Equal(domain.StatusPending, first.Status)
	req.Equal([]string{client.ParticipantID}, first.Participants)
	req.Equal("Refund", first.Topic)
	req.Equal("Refund.@2026-03-14 09:00:00", second.Topic)
	req.Equal("Chat_2026-03-14 09:00:00", blank.Topic)
	requireClosedAtInvariant(t, first)

	// And each creation is acknowledged on the creator queue only
	acks := f.publisher.on("alice" + event.DialogCreatedQueue)
	req.Len(acks, 3)
	req.Equal(event.DialogCreated{Dialog: first.ID, Topic: "Refund", Username: "alice"}, acks[0].Payload)

	stored, err := f.dialogs.Find(ctx, first.ID)
	req.NoError(err)
	req.Equal(first, stored)
}

func TestCoordinator_Join_Then_Join_Opens_Once(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()
	dialog, err := f.coordinator.CreateDialog(ctx, client, "Refund")
	req.NoError(err)

	// When both participants join at the same time
	var wg sync.WaitGroup
	for _, p := range []string{client.ParticipantID, agent.ParticipantID} {
		wg.Add(1)
		go func(p string) {
			defer wg.Done()
			_, err := f.coordinator.UserJoinedSession(ctx, dialog.ID, p)
			assert.NoError(t, err)
		}(p)
	}
	wg.Wait()

	// Then the dialog is open and the change was announced exactly once
	stored, err := f.dialogs.Find(ctx, dialog.ID)
	req.NoError(err)
	req.Equal(domain.StatusOpen, stored.Status)
	requireClosedAtInvariant(t, stored)
	req.Len(f.publisher.statusUpdates(dialog.ID, domain.StatusOpen), 1)
	req.Equal(2, f.registry.PresentCount(dialog.ID))

	// And both JOIN notices went out on the dialog topic
	joins := lo.Filter(f.publisher.on(event.DialogTopic(dialog.ID)), func(item published, _ int) bool {
		m, ok := item.Payload.(event.ChatMessage)
		return ok && m.Type == domain.MessageJoin
	})
	req.Len(joins, 2)
}

func TestCoordinator_Same_Participant_Joining_Twice_Keeps_Pending(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()
	dialog, err := f.coordinator.CreateDialog(ctx, client, "Refund")
	req.NoError(err)

	_, err = f.coordinator.UserJoinedSession(ctx, dialog.ID, client.ParticipantID)
	req.NoError(err)
	dialog, err = f.coordinator.UserJoinedSession(ctx, dialog.ID, client.ParticipantID)
	req.NoError(err)

	req.Equal(domain.StatusPending, dialog.Status)
	req.Empty(f.publisher.on(event.StatusUpdateTopic))
}

func TestCoordinator_Concurrent_Leaves_Close_Once(t *testing.T) {
	for run := 0; run < 20; run++ {
		t.Run(fmt.Sprintf("run %d", run), func(t *testing.T) {
			req := require.New(t)
			f := newFixture(t)
			ctx := context.Background()
			dialog := f.openDialog(t)

			// When both participants leave at the same time
			var wg sync.WaitGroup
			for _, p := range []string{client.ParticipantID, agent.ParticipantID} {
				wg.Add(1)
				go func(p string) {
					defer wg.Done()
					_, err := f.coordinator.UserLeftSession(ctx, dialog.ID, p)
					assert.NoError(t, err)
				}(p)
			}
			wg.Wait()

			// Then the dialog is closed, once
			stored, err := f.dialogs.Find(ctx, dialog.ID)
			req.NoError(err)
			req.Equal(domain.StatusClosed, stored.Status)
			requireClosedAtInvariant(t, stored)
			req.Len(f.publisher.closeNotices(dialog.ID), 1)
			req.Len(f.publisher.statusUpdates(dialog.ID, domain.StatusClosed), 1)
			req.Zero(f.registry.PresentCount(dialog.ID))
		})
	}
}

func TestCoordinator_Notices_Follow_Durable_State(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()
	dialog := f.openDialog(t)

	_, err := f.coordinator.UserLeftSession(ctx, dialog.ID, agent.ParticipantID)
	req.NoError(err)

	// Every status update was published after the store already held that status
	for _, item := range f.publisher.on(event.StatusUpdateTopic) {
		req.Equal(item.Payload.(event.StatusChanged).Status, item.Status)
	}
	for _, item := range f.publisher.closeNotices(dialog.ID) {
		req.Equal(domain.StatusClosed, item.Status)
	}
}

func TestCoordinator_Message_On_Closed_Dialog_Reopens(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()
	dialog := f.openDialog(t)
	dialog, err := f.coordinator.UserLeftSession(ctx, dialog.ID, agent.ParticipantID)
	req.NoError(err)
	req.Equal(domain.StatusClosed, dialog.Status)

	// When the client writes again
	msg, err := f.coordinator.SendMessage(ctx, dialog.ID, client.ParticipantID, "still there?", true)
	req.NoError(err)

	// Then the dialog is pending again with no closedAt and the same topic
	stored, err := f.dialogs.Find(ctx, dialog.ID)
	req.NoError(err)
	req.Equal(domain.StatusPending, stored.Status)
	req.Nil(stored.ClosedAt)
	req.Equal("Refund", stored.Topic)
	requireClosedAtInvariant(t, stored)
	req.Len(f.publisher.statusUpdates(dialog.ID, domain.StatusPending), 1)

	// And the message is durable and linked to the dialog
	req.Equal(dialog.ID, msg.DialogID)
	history, _, err := f.coordinator.History(ctx, dialog.ID, nil)
	req.NoError(err)
	req.Equal([]domain.Message{msg}, history)
}

func TestCoordinator_Staff_Message_Opens_Pending_Dialog(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()
	dialog, err := f.coordinator.CreateDialog(ctx, client, "Refund")
	req.NoError(err)

	// A client message keeps it pending
	_, err = f.coordinator.SendMessage(ctx, dialog.ID, client.ParticipantID, "hello", true)
	req.NoError(err)
	stored, err := f.dialogs.Find(ctx, dialog.ID)
	req.NoError(err)
	req.Equal(domain.StatusPending, stored.Status)

	// A staff message opens it and makes the agent a participant
	_, err = f.coordinator.SendMessage(ctx, dialog.ID, agent.ParticipantID, "hi, how can I help?", false)
	req.NoError(err)
	stored, err = f.dialogs.Find(ctx, dialog.ID)
	req.NoError(err)
	req.Equal(domain.StatusOpen, stored.Status)
	req.True(stored.HasParticipant(agent.ParticipantID))

	// Messages are broadcast with the sender display name
	chats := lo.FilterMap(f.publisher.on(event.DialogTopic(dialog.ID)), func(item published, _ int) (event.ChatMessage, bool) {
		m, ok := item.Payload.(event.ChatMessage)
		return m, ok && m.Type == domain.MessageChat
	})
	req.Len(chats, 2)
	req.Equal("Alice", chats[0].Sender)
	req.Equal("Bob", chats[1].Sender)
}

func TestCoordinator_SendMessage_Failures(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()
	dialog, err := f.coordinator.CreateDialog(ctx, client, "Refund")
	req.NoError(err)

	_, err = f.coordinator.SendMessage(ctx, dialog.ID, "ghost", "boo", true)
	req.ErrorIs(err, errors.ErrProfileNotFound)

	_, err = f.coordinator.SendMessage(ctx, domain.NewDialogID(), client.ParticipantID, "hello", true)
	req.ErrorIs(err, errors.ErrDialogNotFound)

	// An empty content is still a message
	msg, err := f.coordinator.SendMessage(ctx, dialog.ID, client.ParticipantID, "", true)
	req.NoError(err)
	req.Empty(msg.Content)
}

func TestCoordinator_Join_Unknown_Dialog_Leaves_Registry_Untouched(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	unknown := domain.NewDialogID()

	_, err := f.coordinator.UserJoinedSession(context.Background(), unknown, client.ParticipantID)

	req.ErrorIs(err, errors.ErrDialogNotFound)
	req.Zero(f.registry.PresentCount(unknown))
	req.Empty(f.publisher.on(event.DialogTopic(unknown)))
}

func TestCoordinator_CloseDialog_Twice(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()
	dialog := f.openDialog(t)

	closed, err := f.coordinator.CloseDialog(ctx, dialog.ID)
	req.NoError(err)
	req.Equal(domain.StatusClosed, closed.Status)
	requireClosedAtInvariant(t, closed)

	_, err = f.coordinator.CloseDialog(ctx, dialog.ID)
	req.ErrorIs(err, errors.ErrAlreadyClosed)
	req.Len(f.publisher.closeNotices(dialog.ID), 1)

	_, err = f.coordinator.CloseDialog(ctx, domain.NewDialogID())
	req.ErrorIs(err, errors.ErrDialogNotFound)
}

func TestCoordinator_InviteParticipant(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()
	dialog, err := f.coordinator.CreateDialog(ctx, client, "Refund")
	req.NoError(err)
	invites := event.InvitesTopic(dialog.ID)

	// A client may not invite
	_, err = f.coordinator.InviteParticipant(ctx, client, dialog.ID, "client-2")
	req.ErrorIs(err, errors.ErrUnauthorized)
	req.Empty(f.publisher.on(invites))

	// Staff may, without being present
	dialog, err = f.coordinator.InviteParticipant(ctx, agent, dialog.ID, "client-2")
	req.NoError(err)
	req.True(dialog.HasParticipant("client-2"))
	req.Len(f.publisher.on(invites), 1)
	req.Equal(event.NewParticipantInvited(dialog.ID, domain.Profile{ID: "client-2", DisplayName: "Carol", Role: domain.RoleUser}),
		f.publisher.on(invites)[0].Payload)

	// Inviting again adds nothing and announces nothing
	dialog, err = f.coordinator.InviteParticipant(ctx, agent, dialog.ID, "client-2")
	req.NoError(err)
	req.Len(lo.Filter(dialog.Participants, func(p string, _ int) bool { return p == "client-2" }), 1)
	req.Len(f.publisher.on(invites), 1)

	// Unknown user
	_, err = f.coordinator.InviteParticipant(ctx, agent, dialog.ID, "ghost")
	req.ErrorIs(err, errors.ErrProfileNotFound)
}

func TestCoordinator_MarkMessagesRead_Twice(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()
	dialog := f.openDialog(t)
	_, err := f.coordinator.SendMessage(ctx, dialog.ID, agent.ParticipantID, "hello", false)
	req.NoError(err)
	_, err = f.coordinator.SendMessage(ctx, dialog.ID, client.ParticipantID, "hi", true)
	req.NoError(err)

	// When the client reads twice
	first, err := f.coordinator.MarkMessagesRead(ctx, dialog.ID, client.ParticipantID)
	req.NoError(err)
	second, err := f.coordinator.MarkMessagesRead(ctx, dialog.ID, client.ParticipantID)
	req.NoError(err)

	// Then only the agent message was marked, and each call published one notice
	req.Equal(1, first)
	req.Zero(second)
	notices := f.publisher.on(event.ReadTopic(dialog.ID))
	req.Len(notices, 2)
	req.Equal(event.NewMessagesRead(dialog.ID, client.ParticipantID, 1), notices[0].Payload)
	req.Equal(event.NewMessagesRead(dialog.ID, client.ParticipantID, 0), notices[1].Payload)
}

func TestCoordinator_Inactivity_Warns_Then_Closes(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()
	dialog := f.openDialog(t)
	warnings := func() []published {
		return lo.Filter(f.publisher.on(event.DialogTopic(dialog.ID)), func(item published, _ int) bool {
			_, ok := item.Payload.(event.InactivityWarning)
			return ok
		})
	}

	// Given 50 minutes without activity
	f.clock.Set(t0.Add(50 * time.Minute))
	ids, err := f.coordinator.OpenDialogs(ctx)
	req.NoError(err)
	req.Equal([]domain.DialogID{dialog.ID}, ids)

	// Then one warning is sent and the dialog stays open
	kind, err := f.coordinator.CheckInactivity(ctx, dialog.ID)
	req.NoError(err)
	req.Equal(domain.InactivityWarn, kind)
	kind, err = f.coordinator.CheckInactivity(ctx, dialog.ID)
	req.NoError(err)
	req.Empty(kind)
	req.Len(warnings(), 1)
	req.Equal(event.NewInactivityWarning(dialog.ID, "This dialog is inactive and will close in 10 minutes."), warnings()[0].Payload)
	stored, err := f.dialogs.Find(ctx, dialog.ID)
	req.NoError(err)
	req.Equal(domain.StatusOpen, stored.Status)

	// Given 60 minutes without activity
	f.clock.Set(t0.Add(60 * time.Minute))
	kind, err = f.coordinator.CheckInactivity(ctx, dialog.ID)
	req.NoError(err)

	// Then the dialog is closed and no further warning is issued
	req.Equal(domain.InactivityClose, kind)
	stored, err = f.dialogs.Find(ctx, dialog.ID)
	req.NoError(err)
	req.Equal(domain.StatusClosed, stored.Status)
	requireClosedAtInvariant(t, stored)
	req.Len(f.publisher.closeNotices(dialog.ID), 1)

	f.clock.Set(t0.Add(70 * time.Minute))
	kind, err = f.coordinator.CheckInactivity(ctx, dialog.ID)
	req.NoError(err)
	req.Empty(kind)
	req.Len(warnings(), 1)
	ids, err = f.coordinator.OpenDialogs(ctx)
	req.NoError(err)
	req.Empty(ids)

	// When reopened, opened by staff and idle again, a new episode warns again
	_, err = f.coordinator.SendMessage(ctx, dialog.ID, client.ParticipantID, "back", true)
	req.NoError(err)
	_, err = f.coordinator.SendMessage(ctx, dialog.ID, agent.ParticipantID, "welcome back", false)
	req.NoError(err)
	stored, err = f.dialogs.Find(ctx, dialog.ID)
	req.NoError(err)
	req.Equal(domain.StatusOpen, stored.Status)
	f.clock.Set(t0.Add(120 * time.Minute))
	kind, err = f.coordinator.CheckInactivity(ctx, dialog.ID)
	req.NoError(err)
	req.Equal(domain.InactivityWarn, kind)
	req.Len(warnings(), 2)
}

func TestCoordinator_Inactivity_Close_Skips_Warning(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	dialog := f.openDialog(t)

	// Given a dialog already past the close threshold that was never warned
	f.clock.Set(t0.Add(3 * time.Hour))

	kind, err := f.coordinator.CheckInactivity(context.Background(), dialog.ID)

	req.NoError(err)
	req.Equal(domain.InactivityClose, kind)
	req.Len(f.publisher.closeNotices(dialog.ID), 1)
}

func TestCoordinator_Concurrent_Messages_Lose_Nothing(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()
	f.clock.step = time.Millisecond
	dialog, err := f.coordinator.CreateDialog(ctx, client, "Refund")
	req.NoError(err)

	// Given 50 participants with a profile
	senders := lo.Times(50, func(i int) string { return fmt.Sprintf("client-%03d", i) })
	for _, sender := range senders {
		req.NoError(f.coordinator.profiles.SaveProfile(ctx, domain.Profile{ID: sender, DisplayName: sender, Role: domain.RoleUser}))
	}

	// When they all write at once
	var mu sync.Mutex
	var sent []domain.Message
	var wg sync.WaitGroup
	for _, sender := range senders {
		wg.Add(1)
		go func(sender string) {
			defer wg.Done()
			msg, err := f.coordinator.SendMessage(ctx, dialog.ID, sender, "hello from "+sender, true)
			assert.NoError(t, err)
			mu.Lock()
			sent = append(sent, msg)
			mu.Unlock()
		}(sender)
	}
	wg.Wait()

	// Then every message is durable
	history, cursor, err := f.coordinator.History(ctx, dialog.ID, nil)
	req.NoError(err)
	req.Nil(cursor)
	req.Len(history, len(senders))
	req.ElementsMatch(sent, history)

	// And the dialog saw the latest activity and every participant
	stored, err := f.dialogs.Find(ctx, dialog.ID)
	req.NoError(err)
	latest := lo.MaxBy(sent, func(a, b domain.Message) bool { return a.Timestamp.After(b.Timestamp) })
	req.Equal(latest.Timestamp, stored.LastActivityAt)
	for _, sender := range senders {
		req.True(stored.HasParticipant(sender), sender)
	}
	req.Len(stored.Participants, len(senders)+1)
}

func TestCoordinator_LeaveAllSessions(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()

	// Given an agent in two open dialogs
	first := f.openDialog(t)
	second := f.openDialog(t)
	_, err := f.coordinator.SendMessage(ctx, first.ID, agent.ParticipantID, "hi", false)
	req.NoError(err)
	_, err = f.coordinator.SendMessage(ctx, second.ID, agent.ParticipantID, "hi", false)
	req.NoError(err)

	// When the agent connection drops
	req.NoError(f.coordinator.LeaveAllSessions(ctx, agent.ParticipantID))

	// Then both dialogs are closed
	for _, id := range []domain.DialogID{first.ID, second.ID} {
		stored, err := f.dialogs.Find(ctx, id)
		req.NoError(err)
		req.Equal(domain.StatusClosed, stored.Status)
		req.Equal(1, f.registry.PresentCount(id))
	}
}

func TestCoordinator_Store_Unavailable_Publishes_Nothing(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	dialogs := mocks.NewMockIDialogRepository(ctrl)
	messages := mocks.NewMockIMessageRepository(ctrl)
	profiles := mocks.NewMockIProfileRepository(ctrl)
	publisher := mocks.NewMockIPublisher(ctrl)
	dialogID := domain.NewDialogID()
	unavailable := fmt.Errorf("%w: disk full", errors.ErrStoreUnavailable)

	profiles.EXPECT().ProfileForUser(gomock.Any(), client.ParticipantID).
		Return(domain.Profile{ID: client.ParticipantID, DisplayName: "Alice"}, nil).Times(1)
	dialogs.EXPECT().Find(gomock.Any(), dialogID).
		Return(domain.Dialog{ID: dialogID, Status: domain.StatusOpen, CreatedAt: t0, LastActivityAt: t0}, nil).Times(1)
	messages.EXPECT().SaveMessage(gomock.Any(), gomock.Any(), gomock.Any()).Return(unavailable).Times(1)

	coordinator := NewCoordinator(slog.Default(), dialogs, messages, profiles, NewRegistry(), NewDialogLocks(),
		NewRouter(slog.Default(), publisher), policy)

	// When the store fails on write
	_, err := coordinator.SendMessage(context.Background(), dialogID, client.ParticipantID, "hello", true)

	// Then the caller gets the failure and nothing was broadcast
	req.ErrorIs(err, errors.ErrStoreUnavailable)
	req.Equal(errors.CodeStoreUnavailable, errors.ToCode(err))
}

func TestCoordinator_Concurrent_Creates_Keep_Topics_Unique(t *testing.T) {
	for run := 0; run < 20; run++ {
		req := require.New(t)
		f := newFixture(t)
		ctx := context.Background()

		// Given one owner creating the same topic twice at once
		var wg sync.WaitGroup
		for i := 0; i < 2; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := f.coordinator.CreateDialog(ctx, client, "Refund")
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		// Then one keeps the topic and the other gets the collision suffix
		owned, err := f.dialogs.FindByParticipant(ctx, client.ParticipantID)
		req.NoError(err)
		topics := lo.Map(owned, func(d domain.Dialog, _ int) string { return d.Topic })
		req.ElementsMatch([]string{"Refund", "Refund.@2026-03-14 09:00:00"}, topics)
	}
}

// failingSaves serves reads from the real store and fails every write.
type failingSaves struct {
	*storage.DialogRepository
}

func (failingSaves) Save(context.Context, domain.Dialog) error {
	return fmt.Errorf("%w: disk full", errors.ErrStoreUnavailable)
}

func TestCoordinator_Presence_Failure_Restores_Registry(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()
	dialog := f.openDialog(t)
	broken := NewCoordinator(slog.Default(), failingSaves{f.dialogs}, f.messages, f.coordinator.profiles, f.registry,
		NewDialogLocks(), NewRouter(slog.Default(), f.publisher), policy)

	// When a leave and a join fail to persist
	_, err := broken.UserLeftSession(ctx, dialog.ID, agent.ParticipantID)
	req.ErrorIs(err, errors.ErrStoreUnavailable)
	_, err = broken.UserJoinedSession(ctx, dialog.ID, "client-2")
	req.ErrorIs(err, errors.ErrStoreUnavailable)

	// Then the registry still reflects the last persisted presence
	req.ElementsMatch([]string{client.ParticipantID, agent.ParticipantID}, f.registry.Present(dialog.ID))
	stored, err := f.dialogs.Find(ctx, dialog.ID)
	req.NoError(err)
	req.Equal(domain.StatusOpen, stored.Status)
}
