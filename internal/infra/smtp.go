package infra

import (
	"fmt"
	"net/smtp"

	"nutriapp/internal/config"

	"github.com/jordan-wright/email"
)

// Mailer wraps SMTP configuration for outbound notifications to the
// application administrator.
type Mailer struct {
	host     string
	user     string
	password string
	addr     string
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host:     cfg.EmailHost,
		user:     cfg.EmailUser,
		password: cfg.EmailPass,
		addr:     fmt.Sprintf("%s:%d", cfg.EmailHost, cfg.EmailPort),
	}
}

// Send delivers a plain-text email.
func (m *Mailer) Send(to, subject, body string) error {
	e := email.NewEmail()
	e.From = fmt.Sprintf("\"NutriApp\" <%s>", m.user)
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(body)

	auth := smtp.PlainAuth("", m.user, m.password, m.host)
	return e.Send(m.addr, auth)
}
