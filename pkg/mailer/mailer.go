package mailer

import (
	"encoding/base64"
	"fmt"
	"io"

	"rioserver/internal/utils"

	gomail "gopkg.in/gomail.v2"
)

// Config mirrors the SMTP transport surface. Host, port, username and
// password are all mandatory before any send is attempted.
type Config struct {
	Host     string
	Port     int
	Secure   bool
	Username string
	Password string
}

// Message is one outbound email. Attachment content is base64 as
// produced by the attachment mapper; decoding happens at send time.
type Message struct {
	From        string
	To          string
	Subject     string
	HTML        string
	Attachments []Attachment
}

type SMTPMailer struct {
	cfg Config
}

func NewSMTPMailer(cfg Config) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// Send delivers one message. The transport is dialed per send; there is
// no connection reuse to manage for a per-request notification.
func (m *SMTPMailer) Send(msg *Message) error {
	if m.cfg.Host == "" || m.cfg.Port == 0 || m.cfg.Username == "" || m.cfg.Password == "" {
		return utils.NewConfigurationError("SMTP environment variables are not fully set")
	}

	gm := gomail.NewMessage()
	gm.SetHeader("From", msg.From)
	gm.SetHeader("To", msg.To)
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/html", msg.HTML)

	for _, a := range msg.Attachments {
		raw, err := base64.StdEncoding.DecodeString(a.Content)
		if err != nil {
			return fmt.Errorf("decode attachment %q: %w", a.Filename, err)
		}
		content := raw
		gm.Attach(a.Filename, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(content)
			return err
		}))
	}

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	dialer.SSL = m.cfg.Secure

	if err := dialer.DialAndSend(gm); err != nil {
		return utils.NewNotificationError("email send failed: "+err.Error(), 0)
	}
	return nil
}
