package config

type WhatsAppConfig struct {
	Provider               string        `yaml:"provider"`
	PhoneNumberID          string        `yaml:"phone_number_id"`
	AccessToken            string        `yaml:"access_token"`
	TestTemplate           string        `yaml:"test_template"`
	TemplateAdminFlight    string        `yaml:"template_admin_flight"`
	TemplateAdminLogistics string        `yaml:"template_admin_logistics"`
	TemplateGeneric        string        `yaml:"template_generic"`
	Twilio                 *TwilioConfig `yaml:"twilio"`
}

type TwilioConfig struct {
	AccountSID string `yaml:"account_sid"`
	AuthToken  string `yaml:"auth_token"`
	FromNumber string `yaml:"from_number"`
}

func loadWhatsAppConfig() *WhatsAppConfig {
	return &WhatsAppConfig{
		Provider:               getEnv("WHATSAPP_PROVIDER", "cloud"),
		PhoneNumberID:          getEnv("WHATSAPP_PHONE_NUMBER_ID", ""),
		AccessToken:            getEnv("WHATSAPP_ACCESS_TOKEN", ""),
		TestTemplate:           getEnv("WHATSAPP_TEST_TEMPLATE", ""),
		TemplateAdminFlight:    getEnv("WHATSAPP_TEMPLATE_ADMIN_FLIGHT", ""),
		TemplateAdminLogistics: getEnv("WHATSAPP_TEMPLATE_ADMIN_LOGISTICS", ""),
		TemplateGeneric:        getEnv("WHATSAPP_TEMPLATE_GENERIC", ""),
		Twilio: &TwilioConfig{
			AccountSID: getEnv("TWILIO_ACCOUNT_SID", ""),
			AuthToken:  getEnv("TWILIO_AUTH_TOKEN", ""),
			FromNumber: getEnv("TWILIO_WHATSAPP_FROM", ""),
		},
	}
}

// AdminTemplateFor picks the admin notification template for a form
// type, falling back to the generic template when the specific one is
// unset.
func (c *WhatsAppConfig) AdminTemplateFor(formType string) string {
	var name string
	switch formType {
	case "flight":
		name = c.TemplateAdminFlight
	case "logistics":
		name = c.TemplateAdminLogistics
	}
	if name == "" {
		name = c.TemplateGeneric
	}
	return name
}

// Configured reports whether the admin WhatsApp channel can be used at
// all: provider credentials plus a destination number.
func (c *WhatsAppConfig) Configured(adminNumber string) bool {
	if adminNumber == "" {
		return false
	}
	if c.Provider == "twilio" {
		return c.Twilio != nil && c.Twilio.AccountSID != "" && c.Twilio.AuthToken != "" && c.Twilio.FromNumber != ""
	}
	return c.PhoneNumberID != "" && c.AccessToken != ""
}
