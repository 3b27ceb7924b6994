package config

import (
	"os"
	"strings"
)

// Config carries everything the handlers need from the process environment.
// It is built once in main and passed down explicitly; nothing reads the
// environment after Load returns.
type Config struct {
	Port           string
	SecretKey      string
	CategoryCode   string
	Sandbox        bool
	BaseURL        string
	CallbackURL    string
	ReturnURL      string
	VerifySecret   string
	AllowedOrigins []string
	Debug          bool
}

func Load() *Config {
	cfg := &Config{
		Port:         getenv("PORT", "8080"),
		SecretKey:    os.Getenv("TOYYIBPAY_SECRET_KEY"),
		CategoryCode: os.Getenv("TOYYIBPAY_CATEGORY_CODE"),
		Sandbox:      parseBool(getenv("TOYYIBPAY_SANDBOX", "true")),
		VerifySecret: os.Getenv("CALLBACK_VERIFY_SECRET"),
		Debug:        strings.EqualFold(os.Getenv("LOG_LEVEL"), "debug"),
	}

	cfg.BaseURL = strings.TrimRight(getenv("APP_BASE_URL", "http://localhost:"+cfg.Port), "/")
	cfg.CallbackURL = getenv("CALLBACK_URL", cfg.BaseURL+"/payment/callback")
	cfg.ReturnURL = getenv("RETURN_URL", cfg.BaseURL+"/payment/return")

	for _, origin := range strings.Split(getenv("ALLOWED_ORIGINS", "*"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
		}
	}

	return cfg
}

// Environment names the gateway deployment the relay talks to.
func (c *Config) Environment() string {
	if c.Sandbox {
		return "sandbox"
	}
	return "production"
}

// HasCredentials reports whether both gateway credentials are set. The
// server boots without them; only bill creation requires them.
func (c *Config) HasCredentials() bool {
	return c.SecretKey != "" && c.CategoryCode != ""
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
