package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Item parsing
	Parser    ParserConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	Batch     BatchConfig

	// LLM Provider Abstraction
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// ParserConfig controls the deterministic parser.
type ParserConfig struct {
	DefaultExpirationDays int
	// Timezone decides which calendar day "today" is.
	Timezone string
	// KnowledgeBasePath points at a YAML knowledge base; empty uses the
	// compiled-in tables.
	KnowledgeBasePath  string
	WatchKnowledgeBase bool
}

// CacheConfig sizes the AI candidate cache.
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

type RateLimitConfig struct {
	RequestsPerMin int
}

type BatchConfig struct {
	MaxItems    int
	Concurrency int
}

// LLMConfig holds configuration for the LLM provider abstraction layer.
// An empty provider list disables AI candidates.
type LLMConfig struct {
	Providers        []ProviderConfig `yaml:"providers"`
	FallbackEnabled  bool             `yaml:"fallback_enabled"`
	RetryAttempts    int              `yaml:"retry_attempts"`
	RetryDelay       string           `yaml:"retry_delay"`
	MaxTotalTimeout  string           `yaml:"max_total_timeout"`
	CandidateTimeout string           `yaml:"candidate_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Parser
	cfg.Parser.DefaultExpirationDays = viper.GetInt("parser.default_expiration_days")
	cfg.Parser.Timezone = viper.GetString("parser.timezone")
	cfg.Parser.KnowledgeBasePath = viper.GetString("parser.knowledge_base_path")
	cfg.Parser.WatchKnowledgeBase = viper.GetBool("parser.watch_knowledge_base")

	cfg.Cache.Size = viper.GetInt("cache.size")
	cfg.Cache.TTL = viper.GetDuration("cache.ttl")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")
	cfg.Batch.MaxItems = viper.GetInt("batch.max_items")
	cfg.Batch.Concurrency = viper.GetInt("batch.concurrency")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")
	cfg.LLM.CandidateTimeout = viper.GetString("llm.candidate_timeout")

	if viper.IsSet("llm.providers") {
		if providersList, ok := viper.Get("llm.providers").([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					})
				}
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values that would otherwise fail later at startup.
func (c *Config) Validate() error {
	if c.Parser.DefaultExpirationDays <= 0 {
		return fmt.Errorf("parser.default_expiration_days must be positive, got %d", c.Parser.DefaultExpirationDays)
	}
	if _, err := time.LoadLocation(c.Parser.Timezone); err != nil {
		return fmt.Errorf("parser.timezone: %w", err)
	}
	if c.Batch.MaxItems <= 0 || c.Batch.Concurrency <= 0 {
		return fmt.Errorf("batch.max_items and batch.concurrency must be positive")
	}
	for _, key := range []struct{ name, value string }{
		{"llm.retry_delay", c.LLM.RetryDelay},
		{"llm.max_total_timeout", c.LLM.MaxTotalTimeout},
		{"llm.candidate_timeout", c.LLM.CandidateTimeout},
	} {
		if key.value == "" {
			continue
		}
		if _, err := time.ParseDuration(key.value); err != nil {
			return fmt.Errorf("%s: %w", key.name, err)
		}
	}
	if len(c.LLM.Providers) > 0 {
		if err := validateLLMConfig(&c.LLM); err != nil {
			return fmt.Errorf("llm: %w", err)
		}
	}
	return nil
}

// AIEnabled reports whether at least one LLM provider is enabled.
func (c LLMConfig) AIEnabled() bool {
	for _, p := range c.Providers {
		if p.Enabled {
			return true
		}
	}
	return false
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("parser.default_expiration_days", 30)
	viper.SetDefault("parser.timezone", "UTC")
	viper.SetDefault("parser.watch_knowledge_base", false)

	viper.SetDefault("cache.size", 1024)
	viper.SetDefault("cache.ttl", "1h")
	viper.SetDefault("rate_limit.requests_per_min", 120)
	viper.SetDefault("batch.max_items", 100)
	viper.SetDefault("batch.concurrency", 8)

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 2)
	viper.SetDefault("llm.retry_delay", "500ms")
	viper.SetDefault("llm.max_total_timeout", "20s")
	viper.SetDefault("llm.candidate_timeout", "8s")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := viper.GetString(envVar); envValue != "" {
		return envValue
	}
	if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	if envValue := os.Getenv(envVar); envValue != "" {
		return envValue
	}
	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}
		if !provider.Enabled {
			continue
		}
		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
	}

	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// JSON-decoded numbers arrive as float64
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
