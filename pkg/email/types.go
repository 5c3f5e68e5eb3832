package email

import "context"

// EmailMeta identifies the recipient and template of an outgoing email.
type EmailMeta struct {
	Recipient    string
	CC           []string
	TemplateType string
}

// Email is a rendered message ready to send.
type Email struct {
	Recipient string
	Subject   string
	Body      string
	CC        []string
}

// MagicCode holds the data applied to the sign-in code template.
type MagicCode struct {
	Email         string
	Code          string
	CodeExpireMin string
}

// SMTPConfig holds SMTP server configuration.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// ISender delivers rendered emails.
type ISender interface {
	Send(ctx context.Context, e Email) error
}
