package services

import (
	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"

	"github.com/Mahesh20s/job-portal/internal/config"
)

// Mailer dispatches outbound notification mail. Delivery is fire-and-forget:
// callers log failures and move on.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer sends plain-text mail over SMTP.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
	host   string
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.MailFrom,
		host:   cfg.SMTPHost,
	}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	if m.host == "" {
		// No SMTP configured (local dev); behave as delivered.
		log.Debug().Str("to", to).Str("subject", subject).Msg("smtp not configured, dropping mail")
		return nil
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	return m.dialer.DialAndSend(msg)
}
