package utils

import "os"

// Config carries the environment-driven settings for the storefront.
type Config struct {
	Port          string
	SessionSecret string
	CatalogPath   string
	PostmarkToken string
	EmailSender   string
	ShopEmail     string
	LogLevel      string
}

// LoadConfig reads configuration from the environment, with development
// defaults where a value is unset.
func LoadConfig() Config {
	return Config{
		Port:          getEnv("PORT", "8000"),
		SessionSecret: getEnv("SESSION_SECRET", "dev_secret_key"),
		CatalogPath:   getEnv("CATALOG_PATH", "static/data/products.json"),
		PostmarkToken: os.Getenv("POSTMARK_API_TOKEN"),
		EmailSender:   os.Getenv("EMAIL_SENDER"),
		ShopEmail:     os.Getenv("SHOP_EMAIL"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
