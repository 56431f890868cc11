//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"
	"support-desk/domain"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// IDialogRepository is the durable side of dialogs.
// Find returns errors.ErrDialogNotFound for unknown ids.
type IDialogRepository interface {
	Find(ctx context.Context, id domain.DialogID) (domain.Dialog, error)
	Save(ctx context.Context, dialog domain.Dialog) error
	FindByStatus(ctx context.Context, status domain.Status) ([]domain.Dialog, error)
	FindByParticipant(ctx context.Context, participantID string) ([]domain.Dialog, error)
	FindOpenWithParticipant(ctx context.Context, participantID string) ([]domain.Dialog, error)
}

type IMessageRepository interface {
	// SaveMessage stores the message and its dialog in a single transaction.
	SaveMessage(ctx context.Context, dialog domain.Dialog, message domain.Message) error
	GetMessages(ctx context.Context, dialogID domain.DialogID, cursor *string) ([]domain.Message, *string, error)
	// MarkRead flags every unread message not sent by readerID and returns how many changed.
	MarkRead(ctx context.Context, dialogID domain.DialogID, readerID string) (int, error)
}

type IProfileRepository interface {
	ProfileForUser(ctx context.Context, userID string) (domain.Profile, error)
	SaveProfile(ctx context.Context, profile domain.Profile) error
}

// IPublisher is the publish/subscribe channel. Topic keys look like "/topic/dialog/{id}".
type IPublisher interface {
	PublishToTopic(ctx context.Context, topic string, payload any) error
	PublishToUser(ctx context.Context, username, queue string, payload any) error
}

// IRegistry tracks who is connected to which dialog right now.
type IRegistry interface {
	Join(dialogID domain.DialogID, participantID string) int
	Leave(dialogID domain.DialogID, participantID string) int
	PresentCount(dialogID domain.DialogID) int
}

// ICoordinator is everything the transport layer may ask of the dialog lifecycle.
type ICoordinator interface {
	CreateDialog(ctx context.Context, owner domain.Principal, topic string) (domain.Dialog, error)
	SendMessage(ctx context.Context, dialogID domain.DialogID, senderID, content string, isClientSender bool) (domain.Message, error)
	MarkMessagesRead(ctx context.Context, dialogID domain.DialogID, readerID string) (int, error)
	CloseDialog(ctx context.Context, dialogID domain.DialogID) (domain.Dialog, error)
	InviteParticipant(ctx context.Context, inviter domain.Principal, dialogID domain.DialogID, userID string) (domain.Dialog, error)
	UserJoinedSession(ctx context.Context, dialogID domain.DialogID, participantID string) (domain.Dialog, error)
	UserLeftSession(ctx context.Context, dialogID domain.DialogID, participantID string) (domain.Dialog, error)
	LeaveAllSessions(ctx context.Context, participantID string) error
	History(ctx context.Context, dialogID domain.DialogID, cursor *string) ([]domain.Message, *string, error)
}

// IInactivityTarget is what the reaper drives on every sweep.
type IInactivityTarget interface {
	OpenDialogs(ctx context.Context) ([]domain.DialogID, error)
	CheckInactivity(ctx context.Context, dialogID domain.DialogID) (domain.EventKind, error)
}
