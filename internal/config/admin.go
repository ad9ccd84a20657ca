package config

// AdminConfig holds the fixed internal destinations that receive every
// notification.
type AdminConfig struct {
	ToEmail        string `yaml:"to_email"`
	WhatsAppNumber string `yaml:"whatsapp_number"`
}

func loadAdminConfig() *AdminConfig {
	return &AdminConfig{
		ToEmail:        getEnv("TO_EMAIL", ""),
		WhatsAppNumber: getEnv("ADMIN_WHATSAPP_NUMBER", ""),
	}
}
