package email

import (
	"crypto/tls"
	"fmt"

	mail "github.com/go-mail/mail/v2"
)

// Sender delivers one HTML message. Implementations must be safe for
// concurrent use from request handlers.
type Sender interface {
	Send(to []string, subject, html string) error
}

// SMTPSender sends through a plain SMTP relay with mandatory STARTTLS,
// which covers Gmail/Office365-style submission on port 587.
type SMTPSender struct {
	host          string
	port          int
	username      string
	password      string
	from          string
	skipTLSVerify bool
}

type SMTPConfig struct {
	Host          string
	Port          int
	Username      string
	Password      string
	From          string
	SkipTLSVerify bool
}

func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	return &SMTPSender{
		host:          cfg.Host,
		port:          cfg.Port,
		username:      cfg.Username,
		password:      cfg.Password,
		from:          cfg.From,
		skipTLSVerify: cfg.SkipTLSVerify,
	}
}

func (s *SMTPSender) Send(to []string, subject, html string) error {
	if len(to) == 0 {
		return nil
	}
	if s.host == "" || s.from == "" {
		return fmt.Errorf("smtp not configured (SMTP_HOST/EMAIL_FROM)")
	}

	m := mail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", html)

	d := mail.NewDialer(s.host, s.port, s.username, s.password)
	d.StartTLSPolicy = mail.MandatoryStartTLS
	d.TLSConfig = &tls.Config{
		ServerName:         s.host,
		InsecureSkipVerify: s.skipTLSVerify, // dev only
	}

	return d.DialAndSend(m)
}
