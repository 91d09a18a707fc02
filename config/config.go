package config

import (
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server       Server
	Upstream     Upstream
	GeminiApiKey string
}

type Server struct {
	Port           string
	AllowedOrigins []string
}

// Upstream points at the assessment API. The base URL is injected per
// deployment, never hardcoded.
type Upstream struct {
	BaseURL string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("API_BASE_URL", "http://localhost:5000/api")
	viper.SetDefault("ALLOWED_ORIGINS", "*")

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Server.AllowedOrigins = splitOrigins(viper.GetString("ALLOWED_ORIGINS"))
	config.Upstream.BaseURL = viper.GetString("API_BASE_URL")
	config.GeminiApiKey = viper.GetString("GEMINI_API_KEY")

	log.Info().Str("port", config.Server.Port).Str("api_base_url", config.Upstream.BaseURL).Msg("Config loaded")
	return &config, nil
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return origins
}
