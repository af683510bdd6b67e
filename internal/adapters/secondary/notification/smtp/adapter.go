package smtp

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"github.com/fedcourts/docket-engine/internal/core/port"
	"github.com/fedcourts/docket-engine/internal/infra/config"
)

// Adapter implements port.EmailSender using SMTP, delivering NEFs and other
// transactional mail.
type Adapter struct {
	cfg config.SMTPConfig
}

// New creates a new SMTP email sender.
func New(cfg config.SMTPConfig) port.EmailSender {
	return &Adapter{cfg: cfg}
}

// Send sends an email via SMTP.
func (a *Adapter) Send(ctx context.Context, req *port.NotificationRequest) error {
	addr := fmt.Sprintf("%s:%d", a.cfg.Host, a.cfg.Port)

	msg := buildMessage(a.cfg.From, req)

	var auth smtp.Auth
	if a.cfg.Username != "" {
		auth = smtp.PlainAuth("", a.cfg.Username, a.cfg.Password, a.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, a.cfg.From, []string{req.To}, []byte(msg)); err != nil {
		return fmt.Errorf("sending email via SMTP: %w", err)
	}

	slog.InfoContext(ctx, "notification sent via SMTP",
		slog.String("to", req.To),
		slog.String("subject", req.Subject),
	)

	return nil
}

// buildMessage constructs the raw email message.
func buildMessage(from string, req *port.NotificationRequest) string {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + req.To + "\r\n")
	b.WriteString("Subject: " + req.Subject + "\r\n")
	if req.ReplyTo != "" {
		b.WriteString("Reply-To: " + req.ReplyTo + "\r\n")
	}
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(req.HTMLBody)
	return b.String()
}
