package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"support-desk/domain"
	"support-desk/domain/event"
	"support-desk/mocks"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRouter_Route_Picks_Topic_By_Event(t *testing.T) {
	dialogID := domain.DialogID("42")

	tests := []struct {
		name  string
		event event.DomainEvent
		topic string
	}{
		{"chat message", event.ChatMessage{Dialog: dialogID, Type: domain.MessageChat}, "/topic/dialog/42"},
		{"close notice", event.NewDialogClosed(dialogID), "/topic/dialog/42"},
		{"inactivity warning", event.NewInactivityWarning(dialogID, "soon"), "/topic/dialog/42"},
		{"status update", event.StatusChanged{Dialog: dialogID, Status: domain.StatusOpen}, "/topic/dialogs/update"},
		{"invite", event.NewParticipantInvited(dialogID, domain.Profile{ID: "7"}), "/topic/dialog/42/invites"},
		{"read", event.NewMessagesRead(dialogID, "7", 3), "/topic/dialog/42/read"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			publisher := mocks.NewMockIPublisher(ctrl)
			publisher.EXPECT().PublishToTopic(gomock.Any(), tt.topic, tt.event).Return(nil).Times(1)

			err := NewRouter(slog.Default(), publisher).Route(context.Background(), tt.event)
			require.NoError(t, err)
		})
	}
}

func TestRouter_Route_Dialog_Created_Goes_To_Creator_Only(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	publisher := mocks.NewMockIPublisher(ctrl)
	created := event.DialogCreated{Dialog: "42", Topic: "Refund", Username: "alice"}

	publisher.EXPECT().PublishToUser(gomock.Any(), "alice", "/queue/dialog-created", created).Return(nil).Times(1)

	req.NoError(NewRouter(slog.Default(), publisher).Route(context.Background(), created))
}

func TestRouter_RouteAll_Keeps_Going_After_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := mocks.NewMockIPublisher(ctrl)
	closed := event.NewDialogClosed("42")
	status := event.StatusChanged{Dialog: "42", Status: domain.StatusClosed}

	gomock.InOrder(
		publisher.EXPECT().PublishToTopic(gomock.Any(), "/topic/dialog/42", closed).Return(fmt.Errorf("broker down")),
		publisher.EXPECT().PublishToTopic(gomock.Any(), "/topic/dialogs/update", status).Return(nil),
	)

	NewRouter(slog.Default(), publisher).RouteAll(context.Background(), closed, status)
}
