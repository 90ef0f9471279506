package notifier

import (
	"log/slog"
	"net/mail"

	"gopkg.in/gomail.v2"

	"dockmon/internal/config"
	"dockmon/internal/models"
)

// Email dispatches composed alerts over SMTP as multipart/alternative
// messages (plain text plus HTML). When disabled it degrades to a no-op.
type Email struct {
	cfg     config.EmailConfig
	log     *slog.Logger
	enabled bool

	// send is swapped out in tests.
	send func(*gomail.Message) error
}

// NewEmail decides enablement once at construction: the enabled flag plus
// all three of sender address, sender credential, and recipient address.
// Any missing field forces disabled regardless of the flag.
func NewEmail(cfg config.EmailConfig, log *slog.Logger) *Email {
	complete := cfg.SenderEmail != "" && cfg.SenderPassword != "" && cfg.RecipientEmail != ""
	enabled := cfg.Enabled && complete
	switch {
	case enabled:
		log.Info("email notifier initialized", "recipient", cfg.RecipientEmail)
	case cfg.Enabled:
		log.Warn("email configuration incomplete, notifications disabled")
	default:
		log.Info("email notifications disabled")
	}

	e := &Email{cfg: cfg, log: log, enabled: enabled}
	e.send = func(m *gomail.Message) error {
		d := gomail.NewDialer(cfg.SMTPServer, cfg.SMTPPort, cfg.SenderEmail, cfg.SenderPassword)
		return d.DialAndSend(m)
	}
	return e
}

func (e *Email) Enabled() bool {
	return e.enabled
}

// Send reports whether the transport accepted the message. Every failure
// mode (bad address, build failure, transport error) collapses to false
// with the cause logged; a disabled notifier returns false without
// touching the network.
func (e *Email) Send(msg models.AlertMessage) bool {
	if !e.enabled {
		e.log.Info("email notifications disabled, skipping alert")
		return false
	}

	if _, err := mail.ParseAddress(e.cfg.SenderEmail); err != nil {
		e.log.Error("invalid sender address", "addr", e.cfg.SenderEmail, "err", err)
		return false
	}
	if _, err := mail.ParseAddress(e.cfg.RecipientEmail); err != nil {
		e.log.Error("invalid recipient address", "addr", e.cfg.RecipientEmail, "err", err)
		return false
	}

	m := gomail.NewMessage()
	m.SetHeader("From", e.cfg.SenderEmail)
	m.SetHeader("To", e.cfg.RecipientEmail)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Text)
	m.AddAlternative("text/html", msg.HTML)

	if err := e.send(m); err != nil {
		e.log.Error("send alert email", "err", err)
		return false
	}
	e.log.Info("alert email sent", "to", e.cfg.RecipientEmail)
	return true
}
