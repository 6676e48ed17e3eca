package notification

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"go.uber.org/zap"
)

type Email struct {
	To            string
	Subject       string
	Body          string
	AttachmentURL string
}

//go:generate mockgen -source=sender.go -destination=mock/sender_mock.go -package=mock
type Sender interface {
	Send(ctx context.Context, email Email) error
}

type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

type SMTPSender struct {
	cfg      SMTPConfig
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg, sendMail: smtp.SendMail}
}

func (s *SMTPSender) Send(ctx context.Context, email Email) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(email.To) == "" {
		return ErrMissingRecipient
	}

	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	addr := net.JoinHostPort(s.cfg.Host, s.cfg.Port)
	return s.sendMail(addr, auth, s.cfg.From, []string{email.To}, buildMIME(s.cfg.From, email))
}

func buildMIME(from string, email Email) []byte {
	body := email.Body
	if email.AttachmentURL != "" {
		body += "\r\n\r\nDocument: " + email.AttachmentURL
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", email.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", email.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
	b.WriteString(body)
	return []byte(b.String())
}

// LogSender writes emails to the log. Used when SMTP is not configured.
type LogSender struct {
	logger *zap.Logger
}

func NewLogSender(logger ...*zap.Logger) *LogSender {
	l := zap.L().Named("notification.log_sender")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.log_sender")
	}
	return &LogSender{logger: l}
}

func (s *LogSender) Send(ctx context.Context, email Email) error {
	s.logger.Info("email delivery skipped, smtp not configured",
		zap.String("to", email.To),
		zap.String("subject", email.Subject),
		zap.String("attachment_url", email.AttachmentURL),
	)
	return nil
}
