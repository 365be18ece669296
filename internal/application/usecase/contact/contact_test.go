package contact

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/domain/contact"
	"github.com/khoahotran/portfolio-api/internal/mocks"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

func newTestUseCase(t *testing.T) (*ContactUseCase, *mocks.MockContactRepository, *mocks.MockMailer) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockContactRepository(ctrl)
	mailer := mocks.NewMockMailer(ctrl)
	pub := mocks.NewMockEventPublisher(ctrl)
	pub.EXPECT().PublishContactEvent(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	uc := NewContactUseCase(repo, mailer, pub, "owner@example.com", logger.NewNopLogger())
	return uc, repo, mailer
}

func TestSubmitMessageRelaysToOperator(t *testing.T) {
	uc, repo, mailer := newTestUseCase(t)

	repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m *contact.Message) error {
		m.ID = 7
		return nil
	})
	mailer.EXPECT().Send(gomock.Any(), service.MailMessage{
		From:    "owner@example.com",
		To:      []string{"owner@example.com"},
		Subject: "New Contact: Ann",
		Body:    "Message from: ann@example.com\n\nHello there",
	}).Return(nil)

	msg, err := uc.SubmitMessage(context.Background(), SubmitMessageInput{
		Name: "Ann", Email: "ann@example.com", Message: "Hello there",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), msg.ID)
}

func TestSubmitMessageSwallowsMailFailure(t *testing.T) {
	uc, repo, mailer := newTestUseCase(t)

	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

	msg, err := uc.SubmitMessage(context.Background(), SubmitMessageInput{
		Name: "Bob", Email: "bob@example.com", Message: "hi",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bob", msg.Name)
}

func TestSubmitMessageRejectsInvalidEmail(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	_, err := uc.SubmitMessage(context.Background(), SubmitMessageInput{
		Name: "Eve", Email: "not-an-email", Message: "x",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Fields, "email")
}

func TestSubmitMessageStoreFailure(t *testing.T) {
	uc, repo, _ := newTestUseCase(t)

	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(apperror.NewInternal("boom", nil))

	_, err := uc.SubmitMessage(context.Background(), SubmitMessageInput{
		Name: "Ann", Email: "ann@example.com", Message: "Hello",
	})
	assert.ErrorIs(t, err, apperror.ErrInternal)
}
