package mail

import (
	"context"
	"errors"
	"fmt"

	gomail "github.com/wneessen/go-mail"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/config"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

var ErrMailNotConfigured = errors.New("mail relay is not configured")

type smtpMailer struct {
	host     string
	port     int
	username string
	password string
}

// NewSMTPMailer returns a mailer that talks to the configured relay, or one
// that fails every send when no host is set.
func NewSMTPMailer(cfg config.Config, log logger.Logger) service.Mailer {
	if cfg.Mail.Host == "" {
		log.Warn("EMAIL_HOST not set, contact notifications will not be delivered")
		return nopMailer{}
	}
	log.Info("SMTP mailer configured", zap.String("host", cfg.Mail.Host), zap.Int("port", cfg.Mail.Port))
	return &smtpMailer{
		host:     cfg.Mail.Host,
		port:     cfg.Mail.Port,
		username: cfg.Mail.Username,
		password: cfg.Mail.Password,
	}
}

func (m *smtpMailer) Send(ctx context.Context, msg service.MailMessage) error {
	message := gomail.NewMsg()
	if err := message.From(msg.From); err != nil {
		return fmt.Errorf("invalid sender: %w", err)
	}
	if err := message.To(msg.To...); err != nil {
		return fmt.Errorf("invalid recipient: %w", err)
	}
	message.Subject(msg.Subject)
	message.SetBodyString(gomail.TypeTextPlain, msg.Body)

	client, err := gomail.NewClient(m.host,
		gomail.WithPort(m.port),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(m.username),
		gomail.WithPassword(m.password),
	)
	if err != nil {
		return fmt.Errorf("create smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, message); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

type nopMailer struct{}

func (nopMailer) Send(context.Context, service.MailMessage) error {
	return ErrMailNotConfigured
}
