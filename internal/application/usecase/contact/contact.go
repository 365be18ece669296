package contact

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/domain/contact"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type ContactUseCase struct {
	repo      contact.Repository
	mailer    service.Mailer
	publisher service.EventPublisher
	operator  string
	logger    logger.Logger
}

// NewContactUseCase wires the relay; operator is both sender and recipient
// of notification mails.
func NewContactUseCase(r contact.Repository, m service.Mailer, pub service.EventPublisher, operator string, log logger.Logger) *ContactUseCase {
	return &ContactUseCase{repo: r, mailer: m, publisher: pub, operator: operator, logger: log}
}

type SubmitMessageInput struct {
	Name    string
	Email   string
	Message string
}

// SubmitMessage persists a visitor message, then tries to mail the operator.
// Once the record is saved the call succeeds, whatever the mail outcome.
func (uc *ContactUseCase) SubmitMessage(ctx context.Context, in SubmitMessageInput) (*contact.Message, error) {
	msg := &contact.Message{Name: in.Name, Email: in.Email, Message: in.Message}
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	if err := uc.repo.Save(ctx, msg); err != nil {
		return nil, err
	}

	uc.relay(ctx, msg)

	go func() {
		evt := service.ContactEvent{
			EventType:  service.ContactReceived,
			MessageID:  msg.ID,
			Name:       msg.Name,
			Email:      msg.Email,
			OccurredAt: time.Now().UTC(),
		}
		if err := uc.publisher.PublishContactEvent(context.Background(), evt); err != nil {
			uc.logger.Error("Failed to publish contact event", err, zap.Int64("message_id", msg.ID))
		}
	}()

	return msg, nil
}

func (uc *ContactUseCase) relay(ctx context.Context, msg *contact.Message) {
	mail := service.MailMessage{
		From:    uc.operator,
		To:      []string{uc.operator},
		Subject: fmt.Sprintf("New Contact: %s", msg.Name),
		Body:    fmt.Sprintf("Message from: %s\n\n%s", msg.Email, msg.Message),
	}
	if err := uc.mailer.Send(ctx, mail); err != nil {
		uc.logger.Warn("Email failed", zap.Int64("message_id", msg.ID), zap.Error(err))
	}
}

func (uc *ContactUseCase) ListMessages(ctx context.Context) ([]*contact.Message, error) {
	return uc.repo.List(ctx)
}

func (uc *ContactUseCase) DeleteMessage(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}
