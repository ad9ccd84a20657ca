package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rioserver/internal/utils"
)

func TestSendRejectsIncompleteConfig(t *testing.T) {
	cases := []Config{
		{},
		{Host: "smtp.test", Port: 587, Username: "user"},
		{Host: "smtp.test", Port: 587, Password: "pass"},
		{Host: "smtp.test", Username: "user", Password: "pass"},
		{Port: 587, Username: "user", Password: "pass"},
	}

	for _, cfg := range cases {
		m := NewSMTPMailer(cfg)
		err := m.Send(&Message{To: "admin@example.com", Subject: "x", HTML: "<p>x</p>"})
		assert.Error(t, err)
		assert.True(t, utils.IsConfiguration(err), "config %+v should fail as a configuration error", cfg)
		assert.Contains(t, err.Error(), "SMTP environment variables are not fully set")
	}
}

func TestSendRejectsUndecodableAttachment(t *testing.T) {
	m := NewSMTPMailer(Config{Host: "smtp.test", Port: 587, Username: "user", Password: "pass"})
	err := m.Send(&Message{
		From:    "noreply@example.com",
		To:      "admin@example.com",
		Subject: "x",
		HTML:    "<p>x</p>",
		Attachments: []Attachment{
			{Filename: "bad.bin", Content: "not base64!!!", Encoding: "base64"},
		},
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "bad.bin")
}
