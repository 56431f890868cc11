package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"support-desk/auth"
	"support-desk/contract"
	"support-desk/domain"
	"support-desk/errors"
	"time"

	natsio "github.com/nats-io/nats.go"
	"github.com/samber/lo"
)

// Fire-and-forget subjects, one per real-time client action.
const (
	SubjectCreateDialog     = "app.chat.createDialog"
	SubjectSendMessage      = "app.chat.sendMessage"
	SubjectAddUser          = "app.chat.addUser"
	SubjectDisconnect       = "app.chat.disconnect"
	SubjectConnectionClosed = "app.chat.connectionClosed"
)

// Request/reply subjects.
const (
	SubjectAPICreate     = "api.dialog.create"
	SubjectAPIMessage    = "api.dialog.message"
	SubjectAPIClose      = "api.dialog.close"
	SubjectAPIInvite     = "api.dialog.invite"
	SubjectAPIMarkAsRead = "api.dialog.markasread"
	SubjectAPIHistory    = "api.dialog.history"
)

// operation reads the caller from ctx, see auth.PrincipalFrom.
type operation func(ctx context.Context, data []byte) (any, error)

// Server subscribes to inbound subjects and forwards them to the coordinator.
// Every subscription joins the same queue group, so replicas split the load.
type Server struct {
	log         *slog.Logger
	conn        *natsio.Conn
	queueGroup  string
	coordinator contract.ICoordinator
	tokens      *auth.TokenManager
	events      map[string]operation
	requests    map[string]operation
}

func NewServer(log *slog.Logger, conn *natsio.Conn, queueGroup string, coordinator contract.ICoordinator, tokens *auth.TokenManager) *Server {
	s := &Server{
		log:         log,
		conn:        conn,
		queueGroup:  queueGroup,
		coordinator: coordinator,
		tokens:      tokens,
	}
	s.events = map[string]operation{
		SubjectCreateDialog:     s.createDialog,
		SubjectSendMessage:      s.sendMessage,
		SubjectAddUser:          s.joinSession,
		SubjectDisconnect:       s.leaveSession,
		SubjectConnectionClosed: s.leaveAllSessions,
	}
	s.requests = map[string]operation{
		SubjectAPICreate:     s.createDialog,
		SubjectAPIMessage:    s.sendMessage,
		SubjectAPIClose:      s.closeDialog,
		SubjectAPIInvite:     s.invite,
		SubjectAPIMarkAsRead: s.markAsRead,
		SubjectAPIHistory:    s.history,
	}
	return s
}

// Run subscribes every subject then blocks until ctx is done.
// Subscriptions are drained on exit so in-flight handlers finish.
func (s *Server) Run(ctx context.Context) error {
	var subs []*natsio.Subscription
	defer func() {
		for _, sub := range subs {
			if err := sub.Drain(); err != nil {
				s.log.Warn("Unable to drain subscription", "subject", sub.Subject, "error", err)
			}
		}
	}()

	for _, subject := range lo.Keys(s.events) {
		sub, err := s.conn.QueueSubscribe(subject, s.queueGroup, func(msg *natsio.Msg) {
			s.onEvent(ctx, msg)
		})
		if err != nil {
			return fmt.Errorf("subscribe %s failed: %w", subject, err)
		}
		subs = append(subs, sub)
	}
	for _, subject := range lo.Keys(s.requests) {
		sub, err := s.conn.QueueSubscribe(subject, s.queueGroup, func(msg *natsio.Msg) {
			s.onRequest(ctx, msg)
		})
		if err != nil {
			return fmt.Errorf("subscribe %s failed: %w", subject, err)
		}
		subs = append(subs, sub)
	}

	s.log.Info("NATS server listening", "subjects", len(subs), "queue_group", s.queueGroup, "at", time.Now().UTC())
	<-ctx.Done()
	s.log.Info("NATS server stopping")
	return nil
}

func (s *Server) onEvent(ctx context.Context, msg *natsio.Msg) {
	if err := s.HandleEvent(ctx, msg.Subject, msg.Header, msg.Data); err != nil {
		s.log.Warn("Event dropped", "subject", msg.Subject, "code", errors.ToCode(err), "error", err)
	}
}

func (s *Server) onRequest(ctx context.Context, msg *natsio.Msg) {
	reply := s.HandleRequest(ctx, msg.Subject, msg.Header, msg.Data)
	data, err := json.Marshal(reply)
	if err != nil {
		s.log.Error("Unable to encode reply", "subject", msg.Subject, "error", err)
		data = []byte(`{"error":"internal error","code":"internal"}`)
	}
	if err := msg.Respond(data); err != nil {
		s.log.Warn("Unable to respond", "subject", msg.Subject, "error", err)
	}
}

// HandleEvent runs a fire-and-forget event. There is no one to answer, so the error is only returned for logging.
func (s *Server) HandleEvent(ctx context.Context, subject string, header natsio.Header, data []byte) error {
	op, found := s.events[subject]
	if !found {
		return fmt.Errorf("unknown subject %s: %w", subject, errors.ErrInvalidPayload)
	}
	ctx, err := s.tokens.Authenticate(ctx, header.Get(auth.AuthorizationHeader))
	if err != nil {
		return err
	}
	_, err = op(ctx, data)
	return err
}

// HandleRequest runs a request/reply operation and always produces a reply.
func (s *Server) HandleRequest(ctx context.Context, subject string, header natsio.Header, data []byte) Reply {
	op, found := s.requests[subject]
	if !found {
		return failure(fmt.Errorf("unknown subject %s: %w", subject, errors.ErrInvalidPayload))
	}
	ctx, err := s.tokens.Authenticate(ctx, header.Get(auth.AuthorizationHeader))
	if err != nil {
		return failure(err)
	}
	result, err := op(ctx, data)
	if err != nil {
		if errors.ToCode(err) == errors.CodeInternal {
			principal, _ := auth.PrincipalFrom(ctx)
			s.log.Error("Request failed", "subject", subject, "participant_id", principal.ParticipantID, "error", err)
		}
		return failure(err)
	}
	return ok(result)
}

func (s *Server) createDialog(ctx context.Context, data []byte) (any, error) {
	principal, err := auth.PrincipalFrom(ctx)
	if err != nil {
		return nil, err
	}
	req, err := decodeRequest[CreateDialogRequest](data)
	if err != nil {
		return nil, err
	}
	dialog, err := s.coordinator.CreateDialog(ctx, principal, req.Topic)
	if err != nil {
		return nil, err
	}
	return toDialogView(dialog), nil
}

func (s *Server) sendMessage(ctx context.Context, data []byte) (any, error) {
	principal, err := auth.PrincipalFrom(ctx)
	if err != nil {
		return nil, err
	}
	req, err := decodeRequest[SendMessageRequest](data)
	if err != nil {
		return nil, err
	}
	message, err := s.coordinator.SendMessage(ctx, domain.DialogID(req.DialogID), principal.ParticipantID, *req.Content, principal.IsClient())
	if err != nil {
		return nil, err
	}
	return toMessageView(message), nil
}

func (s *Server) joinSession(ctx context.Context, data []byte) (any, error) {
	principal, err := auth.PrincipalFrom(ctx)
	if err != nil {
		return nil, err
	}
	req, err := decodeRequest[DialogRequest](data)
	if err != nil {
		return nil, err
	}
	dialog, err := s.coordinator.UserJoinedSession(ctx, domain.DialogID(req.DialogID), principal.ParticipantID)
	if err != nil {
		return nil, err
	}
	return toDialogView(dialog), nil
}

func (s *Server) leaveSession(ctx context.Context, data []byte) (any, error) {
	principal, err := auth.PrincipalFrom(ctx)
	if err != nil {
		return nil, err
	}
	req, err := decodeRequest[DialogRequest](data)
	if err != nil {
		return nil, err
	}
	dialog, err := s.coordinator.UserLeftSession(ctx, domain.DialogID(req.DialogID), principal.ParticipantID)
	if err != nil {
		return nil, err
	}
	return toDialogView(dialog), nil
}

func (s *Server) leaveAllSessions(ctx context.Context, _ []byte) (any, error) {
	principal, err := auth.PrincipalFrom(ctx)
	if err != nil {
		return nil, err
	}
	return nil, s.coordinator.LeaveAllSessions(ctx, principal.ParticipantID)
}

func (s *Server) closeDialog(ctx context.Context, data []byte) (any, error) {
	req, err := decodeRequest[DialogRequest](data)
	if err != nil {
		return nil, err
	}
	dialog, err := s.coordinator.CloseDialog(ctx, domain.DialogID(req.DialogID))
	if err != nil {
		return nil, err
	}
	return toDialogView(dialog), nil
}

func (s *Server) invite(ctx context.Context, data []byte) (any, error) {
	principal, err := auth.PrincipalFrom(ctx)
	if err != nil {
		return nil, err
	}
	req, err := decodeRequest[InviteRequest](data)
	if err != nil {
		return nil, err
	}
	dialog, err := s.coordinator.InviteParticipant(ctx, principal, domain.DialogID(req.DialogID), req.UserID)
	if err != nil {
		return nil, err
	}
	return toDialogView(dialog), nil
}

func (s *Server) markAsRead(ctx context.Context, data []byte) (any, error) {
	principal, err := auth.PrincipalFrom(ctx)
	if err != nil {
		return nil, err
	}
	req, err := decodeRequest[DialogRequest](data)
	if err != nil {
		return nil, err
	}
	count, err := s.coordinator.MarkMessagesRead(ctx, domain.DialogID(req.DialogID), principal.ParticipantID)
	if err != nil {
		return nil, err
	}
	return ReadView{Count: count}, nil
}

func (s *Server) history(ctx context.Context, data []byte) (any, error) {
	req, err := decodeRequest[HistoryRequest](data)
	if err != nil {
		return nil, err
	}
	messages, cursor, err := s.coordinator.History(ctx, domain.DialogID(req.DialogID), req.Cursor)
	if err != nil {
		return nil, err
	}
	return HistoryView{
		Messages: lo.Map(messages, func(m domain.Message, _ int) MessageView { return toMessageView(m) }),
		Cursor:   cursor,
	}, nil
}
