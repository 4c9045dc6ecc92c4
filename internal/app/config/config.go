// Package config loads process-wide settings from the environment.
package config

import (
	"log"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"jobmatch_backend/internal/feature/analysis/domain/entity"
)

// Config holds every setting read once at process start.
type Config struct {
	Debug          bool
	Host           string
	Port           int
	RequestTimeout time.Duration // page fetch timeout
	LogLevel       string
	LogFile        string

	LLM     LLMConfig
	History HistoryConfig
	Redis   RedisConfig
}

// LLMConfig holds LLM provider settings. Missing keys are reported per request, not at startup.
type LLMConfig struct {
	Provider     entity.Provider
	OpenAIAPIKey string
	OpenAIAPIURL string
	GeminiAPIKey string
	GeminiModel  string
}

// HistoryConfig selects where analysis records are stored.
type HistoryConfig struct {
	Backend string // none, redis, postgres or sqlite
	DSN     string
	TTL     time.Duration
}

// RedisConfig holds the Redis connection settings.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

const (
	HistoryNone     = "none"
	HistoryRedis    = "redis"
	HistoryPostgres = "postgres"
	HistorySQLite   = "sqlite"
)

// Load reads .env (when present) and the environment.
func Load() Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("DEBUG", true)
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", 8082)
	v.SetDefault("REQUEST_TIMEOUT", 10)
	v.SetDefault("LOG_LEVEL", "INFO")
	v.SetDefault("LOG_FILE", "")
	v.SetDefault("LLM_PROVIDER", string(entity.ProviderChatCompletion))
	v.SetDefault("OPENAI_API_KEY", "")
	v.SetDefault("OPENAI_API_URL", "")
	v.SetDefault("GEMINI_API_KEY", "")
	v.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	v.SetDefault("HISTORY_BACKEND", HistoryNone)
	v.SetDefault("HISTORY_DSN", "")
	v.SetDefault("HISTORY_TTL", "24h")
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.AutomaticEnv()
	return v
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) Config {
	timeout := v.GetInt("REQUEST_TIMEOUT")
	if timeout <= 0 {
		timeout = 10
	}
	return Config{
		Debug:          v.GetBool("DEBUG"),
		Host:           v.GetString("HOST"),
		Port:           v.GetInt("PORT"),
		RequestTimeout: time.Duration(timeout) * time.Second,
		LogLevel:       strings.ToUpper(v.GetString("LOG_LEVEL")),
		LogFile:        v.GetString("LOG_FILE"),
		LLM: LLMConfig{
			Provider:     entity.Provider(strings.ToLower(v.GetString("LLM_PROVIDER"))),
			OpenAIAPIKey: v.GetString("OPENAI_API_KEY"),
			OpenAIAPIURL: v.GetString("OPENAI_API_URL"),
			GeminiAPIKey: v.GetString("GEMINI_API_KEY"),
			GeminiModel:  v.GetString("GEMINI_MODEL"),
		},
		History: HistoryConfig{
			Backend: strings.ToLower(v.GetString("HISTORY_BACKEND")),
			DSN:     v.GetString("HISTORY_DSN"),
			TTL:     v.GetDuration("HISTORY_TTL"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
		},
	}
}

// Addr returns the listen address of the HTTP server.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Addr returns the Redis address.
func (r RedisConfig) Addr() string {
	return net.JoinHostPort(r.Host, r.Port)
}

// Credentials returns the server-side LLM credentials for the configured provider.
func (c Config) Credentials() entity.Credentials {
	if c.LLM.Provider == entity.ProviderGemini {
		return entity.Credentials{Provider: entity.ProviderGemini, APIKey: c.LLM.GeminiAPIKey}
	}
	return entity.Credentials{
		Provider: entity.ProviderChatCompletion,
		APIKey:   c.LLM.OpenAIAPIKey,
		APIURL:   c.LLM.OpenAIAPIURL,
	}
}
