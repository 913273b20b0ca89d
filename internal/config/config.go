package config

import (
	"os"
	"strconv"
	"strings"
)

const (
	// Porta e CORS são fixos; só a conexão e integrações opcionais vêm do ambiente.
	Port = ":8001"

	defaultMongoURL = "mongodb://localhost:27017/rock_bullion"
	defaultKommoURL = "https://rockbullion.kommo.com/api/v4"

	// Mesas de NY e UK, as mesmas do site.
	defaultSalesDesks = "16463915932,447424127586"
)

type Config struct {
	StorageURL string
	LogLevel   string

	RabbitMQURL string

	MailHost   string
	MailPort   int
	MailUser   string
	MailPass   string
	MailFrom   string
	SalesInbox string

	KommoAPIToken string
	KommoBaseURL  string

	WhatsAppAccessToken string
	WhatsAppPhoneID     string
	WhatsAppBaseURL     string
	WhatsAppTemplate    string
	WhatsAppSalesDesks  []string
}

// Load lê o ambiente. Chame godotenv.Load() antes se quiser o .env.
func Load() *Config {
	return &Config{
		StorageURL: firstNonEmpty(os.Getenv("MONGO_URL"), os.Getenv("DATABASE_URL"), defaultMongoURL),
		LogLevel:   getEnv("LOG_LEVEL", "info"),

		RabbitMQURL: os.Getenv("RABBITMQ_URL"),

		MailHost:   os.Getenv("MAIL_HOST"),
		MailPort:   getEnvInt("MAIL_PORT", 587),
		MailUser:   os.Getenv("MAIL_USER"),
		MailPass:   os.Getenv("MAIL_PASS"),
		MailFrom:   getEnv("MAIL_FROM", "no-reply@rockbullion.com"),
		SalesInbox: getEnv("SALES_INBOX", "sales@rockbullion.com"),

		KommoAPIToken: os.Getenv("KOMMO_API_TOKEN"),
		KommoBaseURL:  getEnv("KOMMO_BASE_URL", defaultKommoURL),

		WhatsAppAccessToken: os.Getenv("WHATSAPP_ACCESS_TOKEN"),
		WhatsAppPhoneID:     os.Getenv("WHATSAPP_PHONE_ID"),
		WhatsAppBaseURL:     os.Getenv("WHATSAPP_BASE_URL"),
		WhatsAppTemplate:    os.Getenv("WHATSAPP_TEMPLATE"),
		WhatsAppSalesDesks:  splitList(getEnv("WHATSAPP_SALES_DESKS", defaultSalesDesks)),
	}
}

func (c *Config) NotificationsEnabled() bool {
	return c.RabbitMQURL != ""
}

func (c *Config) MailEnabled() bool {
	return c.MailHost != ""
}

func (c *Config) KommoEnabled() bool {
	return c.KommoAPIToken != ""
}

func (c *Config) WhatsAppEnabled() bool {
	return c.WhatsAppAccessToken != "" && c.WhatsAppPhoneID != "" && len(c.WhatsAppSalesDesks) > 0
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v, ok := os.LookupEnv(key); ok {
		if iv, err := strconv.Atoi(v); err == nil {
			return iv
		}
	}
	return def
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// splitList separa "a, b,,c" em [a b c].
func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
