package config

type SMTPConfig struct {
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	Secure    bool   `yaml:"secure"`
	Username  string `yaml:"username"`
	Password  string `yaml:"password"`
	ToEmail   string `yaml:"to_email"`
	FromEmail string `yaml:"from_email"`
}

func loadSMTPConfig() *SMTPConfig {
	return &SMTPConfig{
		Host:      getEnv("SMTP_HOST", ""),
		Port:      getEnvAsInt("SMTP_PORT", 0),
		Secure:    getEnvAsBool("SMTP_SECURE", false),
		Username:  getEnv("SMTP_USER", ""),
		Password:  getEnv("SMTP_PASS", ""),
		ToEmail:   getEnv("SMTP_TO_EMAIL", ""),
		FromEmail: getEnv("SMTP_FROM_EMAIL", ""),
	}
}
