package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds everything the admin client reads from the environment.
type Config struct {
	AppPort             string
	APIBaseURL          string
	PlaceholderImageURL string
	CurrencyLabel       string
	// HTTPTimeout of zero leaves the transport's default in place.
	HTTPTimeout time.Duration
}

// Load reads configuration from an optional .env file and the
// environment, falling back to defaults.
func Load() *Config {
	// A missing .env file is fine, environment variables still apply.
	_ = godotenv.Load()

	viper.SetDefault("APP_PORT", ":3000")
	viper.SetDefault("API_BASE_URL", "http://localhost:8080/api/v1")
	viper.SetDefault("PLACEHOLDER_IMAGE_URL", "https://via.placeholder.com/400x300?text=Urun")
	viper.SetDefault("CURRENCY_LABEL", "TL")
	viper.SetDefault("HTTP_TIMEOUT", time.Duration(0))
	viper.AutomaticEnv()

	return &Config{
		AppPort:             viper.GetString("APP_PORT"),
		APIBaseURL:          viper.GetString("API_BASE_URL"),
		PlaceholderImageURL: viper.GetString("PLACEHOLDER_IMAGE_URL"),
		CurrencyLabel:       viper.GetString("CURRENCY_LABEL"),
		HTTPTimeout:         viper.GetDuration("HTTP_TIMEOUT"),
	}
}
