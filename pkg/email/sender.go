package email

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// smtpSender implements ISender over plain SMTP with AUTH.
type smtpSender struct {
	cfg SMTPConfig
}

// NewSMTPSender creates an SMTP-backed sender. Returns the interface.
func NewSMTPSender(cfg SMTPConfig) (ISender, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("email: SMTP host is required")
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("email: SMTP port must be between 1 and 65535")
	}
	if cfg.From == "" {
		return nil, fmt.Errorf("email: from address is required")
	}
	return &smtpSender{cfg: cfg}, nil
}

// Send delivers the email as HTML over SMTP.
func (s *smtpSender) Send(ctx context.Context, e Email) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	recipients := append([]string{e.Recipient}, e.CC...)

	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("From: %s\r\n", s.cfg.From))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", e.Recipient))
	if len(e.CC) > 0 {
		msg.WriteString(fmt.Sprintf("Cc: %s\r\n", strings.Join(e.CC, ", ")))
	}
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", e.Subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(e.Body)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, s.cfg.From, recipients, []byte(msg.String())); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
