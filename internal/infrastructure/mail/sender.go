package mail

import (
	"gopkg.in/gomail.v2"

	"github.com/onu-facilities/parts-tracker/pkg/config"
)

// Sender is the outbound mail port. A nil Sender means mail is not
// configured and notification steps are skipped.
type Sender interface {
	Send(to, subject, htmlBody string) error
}

var _ Sender = (*SMTPSender)(nil)

// SMTPSender sends mail over SMTP via gomail.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPSender builds the sender from SMTP configuration.
func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	from := cfg.From
	if from == "" {
		from = cfg.User
	}
	return &SMTPSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   from,
	}
}

// Send delivers a single HTML message. Blocks until the SMTP exchange
// finishes or fails.
func (s *SMTPSender) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)
	return s.dialer.DialAndSend(m)
}
