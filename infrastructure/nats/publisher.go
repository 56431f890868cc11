package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"support-desk/contract"
	"support-desk/errors"
)

var _ contract.IPublisher = (*Publisher)(nil)

// Conn is the subset of *nats.Conn the publisher needs.
type Conn interface {
	Publish(subject string, data []byte) error
}

// Publisher fans domain notices out to NATS subjects.
// Delivery is at-most-once: no JetStream, no acks.
type Publisher struct {
	log  *slog.Logger
	conn Conn
}

func NewPublisher(log *slog.Logger, conn Conn) *Publisher {
	return &Publisher{log: log, conn: conn}
}

// Subject turns a topic key into a NATS subject: "/topic/dialog/42" becomes "topic.dialog.42".
func Subject(topic string) string {
	return strings.ReplaceAll(strings.Trim(topic, "/"), "/", ".")
}

// UserSubject addresses a queue private to one user: "user.alice.queue.dialog-created".
func UserSubject(username, queue string) string {
	return "user." + username + "." + Subject(queue)
}

func (p *Publisher) PublishToTopic(ctx context.Context, topic string, payload any) error {
	return p.publish(ctx, Subject(topic), payload)
}

func (p *Publisher) PublishToUser(ctx context.Context, username, queue string, payload any) error {
	if username == "" || strings.ContainsAny(username, ".*> ") {
		return fmt.Errorf("username %q is not a valid subject token: %w", username, errors.ErrInvalidPayload)
	}
	return p.publish(ctx, UserSubject(username, queue), payload)
}

func (p *Publisher) publish(ctx context.Context, subject string, payload any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInvalidPayload, err)
	}
	if err := p.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("publish to %s failed: %w", subject, err)
	}
	p.log.Debug("Notice published", "subject", subject, "bytes", len(data))
	return nil
}
