// Package config loads server/CLI configuration from config.yaml with
// environment-variable overrides and sane defaults.
package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Port string `yaml:"port"`
	Mode string `yaml:"mode"` // languagetool | openai | anthropic

	LanguageToolURL  string `yaml:"languagetool_url"`
	LanguageToolLang string `yaml:"languagetool_language"` // empty = autodetect

	OpenAIAPIKey    string `yaml:"openai_api_key"`
	AnthropicAPIKey string `yaml:"anthropic_api_key"`
	LLMModel        string `yaml:"llm_model"`
	LLMBaseURL      string `yaml:"llm_base_url"`

	RedisAddr     string `yaml:"redis_addr"` // empty = no cache
	RedisPassword string `yaml:"redis_password"`
	RedisDB       int    `yaml:"redis_db"`
	CacheTTLHours int    `yaml:"cache_ttl_hours"`

	RateRPS   float64 `yaml:"rate_rps"`
	RateBurst int     `yaml:"rate_burst"`

	ChunkWords int `yaml:"chunk_words"`
}

// Load reads config.yaml (or $CONFIG_PATH), applies env overrides, then
// fills defaults. A missing file is fine; a broken one is fatal.
func Load() Config {
	var cfg Config

	path := "config.yaml"
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		path = envPath
	}
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			log.Fatalf("config: parsing %s: %v", path, err)
		}
		log.Printf("config: loaded %s", path)
	}

	envOverride(&cfg.Port, "PORT")
	envOverride(&cfg.Mode, "MODE")
	envOverride(&cfg.LanguageToolURL, "LANGUAGETOOL_URL")
	envOverride(&cfg.LanguageToolLang, "LANGUAGETOOL_LANGUAGE")
	envOverride(&cfg.OpenAIAPIKey, "OPENAI_API_KEY")
	envOverride(&cfg.AnthropicAPIKey, "ANTHROPIC_API_KEY")
	envOverride(&cfg.LLMModel, "LLM_MODEL")
	envOverride(&cfg.LLMBaseURL, "LLM_BASE_URL")
	envOverride(&cfg.RedisAddr, "REDIS_ADDR")
	envOverride(&cfg.RedisPassword, "REDIS_PASSWORD")
	envOverrideInt(&cfg.RedisDB, "REDIS_DB")
	envOverrideInt(&cfg.CacheTTLHours, "CACHE_TTL_HOURS")
	envOverrideFloat(&cfg.RateRPS, "RATE_RPS")
	envOverrideInt(&cfg.RateBurst, "RATE_BURST")
	envOverrideInt(&cfg.ChunkWords, "CHUNK_WORDS")

	// Defaults
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Mode == "" {
		cfg.Mode = "languagetool"
	}
	if cfg.CacheTTLHours == 0 {
		cfg.CacheTTLHours = 24
	}
	if cfg.RateRPS == 0 {
		cfg.RateRPS = 5
	}
	if cfg.RateBurst == 0 {
		cfg.RateBurst = 10
	}

	return cfg
}

func envOverride(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envOverrideInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func envOverrideFloat(dst *float64, key string) {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}
