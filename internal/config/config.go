package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultBaseURL     = "https://newsdata.io/api/1"
	DefaultLanguage    = "en"
	DefaultHTTPTimeout = 15 * time.Second
	DefaultMaxPages    = 5
	// MaxPagesCeiling keeps a single request within the upstream free tier.
	MaxPagesCeiling        = 6
	DefaultPagesPerCompany = 2
	DefaultAPIKeyEnv       = "NEWS_API_KEY"
)

// Config holds the runtime settings for the news function. The API key is
// not part of it: it is resolved per request by the secrets package.
type Config struct {
	BaseURL        string
	Language       string
	HTTPTimeout    time.Duration
	MaxPages       int
	DefaultPages   int
	APIKeyEnv      string
	APIKeySSMParam string
	AlertsTopicARN string
	LogLevel       string
	LocalAddr      string
}

// Load reads configuration from the process environment.
func Load() (Config, error) {
	v := viper.New()
	v.SetDefault("news_api_base_url", DefaultBaseURL)
	v.SetDefault("news_language", DefaultLanguage)
	v.SetDefault("news_http_timeout", DefaultHTTPTimeout)
	v.SetDefault("news_max_pages_per_company", DefaultMaxPages)
	v.SetDefault("news_default_pages_per_company", DefaultPagesPerCompany)
	v.SetDefault("news_api_key_env", DefaultAPIKeyEnv)
	v.SetDefault("news_api_key_ssm_param", "")
	v.SetDefault("news_alerts_topic_arn", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("local_addr", ":8080")
	v.AutomaticEnv()

	cfg := Config{
		BaseURL:        strings.TrimRight(strings.TrimSpace(v.GetString("news_api_base_url")), "/"),
		Language:       strings.TrimSpace(v.GetString("news_language")),
		HTTPTimeout:    v.GetDuration("news_http_timeout"),
		MaxPages:       v.GetInt("news_max_pages_per_company"),
		DefaultPages:   v.GetInt("news_default_pages_per_company"),
		APIKeyEnv:      strings.TrimSpace(v.GetString("news_api_key_env")),
		APIKeySSMParam: strings.TrimSpace(v.GetString("news_api_key_ssm_param")),
		AlertsTopicARN: strings.TrimSpace(v.GetString("news_alerts_topic_arn")),
		LogLevel:       strings.TrimSpace(v.GetString("log_level")),
		LocalAddr:      strings.TrimSpace(v.GetString("local_addr")),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the handler cannot run with.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("NEWS_API_BASE_URL is empty")
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("NEWS_HTTP_TIMEOUT must be positive, got %s", c.HTTPTimeout)
	}
	if c.MaxPages < 1 || c.MaxPages > MaxPagesCeiling {
		return fmt.Errorf("NEWS_MAX_PAGES_PER_COMPANY must be within [1, %d], got %d", MaxPagesCeiling, c.MaxPages)
	}
	if c.DefaultPages < 1 || c.DefaultPages > c.MaxPages {
		return fmt.Errorf("NEWS_DEFAULT_PAGES_PER_COMPANY must be within [1, %d], got %d", c.MaxPages, c.DefaultPages)
	}
	if c.APIKeyEnv == "" {
		return fmt.Errorf("NEWS_API_KEY_ENV is empty")
	}
	return nil
}

// NeedsAWS reports whether any AWS-backed integration is configured.
func (c Config) NeedsAWS() bool {
	return c.APIKeySSMParam != "" || c.AlertsTopicARN != ""
}
