package service

import "context"

type MailMessage struct {
	From    string
	To      []string
	Subject string
	Body    string
}

type Mailer interface {
	Send(ctx context.Context, msg MailMessage) error
}
