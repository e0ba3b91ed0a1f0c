package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverMongo  = "mongo"
	DriverMemory = "memory"
)

// Config is read once at startup and treated as read-only afterwards.
type Config struct {
	Port            string
	JWTSecret       string
	MongoURI        string
	MongoDatabase   string
	StoreDriver     string
	PaymentSecret   string
	PaymentCurrency string
	AllowedOrigins  []string
	AdminEmail      string
}

// Load reads a .env file when one exists and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}

	cfg := &Config{
		Port:            firstNonEmpty(os.Getenv("PORT"), os.Getenv("API_PORT"), "5000"),
		JWTSecret:       firstNonEmpty(os.Getenv("JWT_TOKEN"), os.Getenv("JWT_SECRET")),
		MongoURI:        os.Getenv("MONGO_URI"),
		MongoDatabase:   firstNonEmpty(os.Getenv("MONGO_DATABASE"), "Dental_Care"),
		StoreDriver:     strings.ToLower(firstNonEmpty(os.Getenv("STORE_DRIVER"), DriverMongo)),
		PaymentSecret:   os.Getenv("PAYMENT_SECRET_KEY"),
		PaymentCurrency: strings.ToLower(firstNonEmpty(os.Getenv("PAYMENT_CURRENCY"), "usd")),
		AllowedOrigins:  splitList(firstNonEmpty(os.Getenv("ALLOWED_ORIGINS"), "*")),
		AdminEmail:      strings.TrimSpace(os.Getenv("ADMIN_EMAIL")),
	}

	if cfg.MongoURI == "" {
		cfg.MongoURI = buildMongoURI(os.Getenv("DB_USER"), os.Getenv("DB_PASS"), os.Getenv("DB_HOST"))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports settings the server cannot start without.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_TOKEN is not configured")
	}
	switch c.StoreDriver {
	case DriverMongo:
		if c.MongoURI == "" {
			return fmt.Errorf("MONGO_URI (or DB_USER/DB_PASS/DB_HOST) is not configured")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	return nil
}

// LogSummary prints the effective configuration without secret values.
func (c *Config) LogSummary() {
	log.Printf("PORT: %s", c.Port)
	log.Printf("STORE_DRIVER: %s", c.StoreDriver)
	log.Printf("MONGO_DATABASE: %s", c.MongoDatabase)
	log.Printf("ALLOWED_ORIGINS: %v", c.AllowedOrigins)
	if c.PaymentSecret != "" {
		log.Println("PAYMENT_SECRET_KEY is SET.")
	} else {
		log.Println("PAYMENT_SECRET_KEY is NOT SET. Payment intents will be unavailable.")
	}
}

func buildMongoURI(user, pass, host string) string {
	if user == "" || pass == "" || host == "" {
		return ""
	}
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority",
		url.QueryEscape(user), url.QueryEscape(pass), host)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
