package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdminTemplateFor(t *testing.T) {
	c := &WhatsAppConfig{
		TemplateAdminFlight:    "flight_admin",
		TemplateAdminLogistics: "logistics_admin",
		TemplateGeneric:        "generic_admin",
	}

	assert.Equal(t, "flight_admin", c.AdminTemplateFor("flight"))
	assert.Equal(t, "logistics_admin", c.AdminTemplateFor("logistics"))

	c.TemplateAdminFlight = ""
	assert.Equal(t, "generic_admin", c.AdminTemplateFor("flight"))

	c.TemplateGeneric = ""
	assert.Equal(t, "", c.AdminTemplateFor("flight"))
}

func TestConfiguredCloudProvider(t *testing.T) {
	c := &WhatsAppConfig{Provider: "cloud"}
	assert.False(t, c.Configured("250788000000"))

	c.PhoneNumberID = "123456"
	c.AccessToken = "token-abc"
	assert.True(t, c.Configured("250788000000"))

	// No destination number disables the channel regardless of creds.
	assert.False(t, c.Configured(""))
}

func TestConfiguredTwilioProvider(t *testing.T) {
	c := &WhatsAppConfig{Provider: "twilio", Twilio: &TwilioConfig{}}
	assert.False(t, c.Configured("250788000000"))

	c.Twilio.AccountSID = "AC123"
	c.Twilio.AuthToken = "secret"
	c.Twilio.FromNumber = "+14155238886"
	assert.True(t, c.Configured("250788000000"))

	// Cloud credentials do not count for the twilio provider.
	c.Twilio.AuthToken = ""
	c.PhoneNumberID = "123456"
	c.AccessToken = "token-abc"
	assert.False(t, c.Configured("250788000000"))
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "cloud", cfg.WhatsApp.Provider)
	assert.Equal(t, 4000, cfg.App.Port)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("WHATSAPP_PROVIDER", "twilio")
	t.Setenv("TWILIO_ACCOUNT_SID", "AC123")
	t.Setenv("ADMIN_WHATSAPP_NUMBER", "250788000000")

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "twilio", cfg.WhatsApp.Provider)
	assert.Equal(t, "AC123", cfg.WhatsApp.Twilio.AccountSID)
	assert.Equal(t, "250788000000", cfg.Admin.WhatsAppNumber)
}
