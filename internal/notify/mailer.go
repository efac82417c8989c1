package notify

import (
	"catalog-service/pkg/config"

	"gopkg.in/gomail.v2"
)

// Mailer sends notification messages over SMTP
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

func NewMailer(cfg *config.SMTPConfig) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.User,
		to:     cfg.NotifyTo,
	}
}

// Send delivers msg as a plain-text mail
func (m *Mailer) Send(msg Message) error {
	mail := gomail.NewMessage()
	mail.SetHeader("From", m.from)
	mail.SetHeader("To", m.to)
	mail.SetHeader("Subject", msg.Subject)
	mail.SetBody("text/plain", msg.Body)
	return m.dialer.DialAndSend(mail)
}
