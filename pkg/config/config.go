package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/umputun/hnscope/pkg/domain"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server ServerConfig `yaml:"server" json:"server" jsonschema:"description=Server configuration"`
	HN     HNConfig     `yaml:"hn" json:"hn" jsonschema:"description=Upstream story API configuration"`
	Flags  FlagsConfig  `yaml:"flags" json:"flags" jsonschema:"description=Feature flag provider configuration"`
	Users  []UserConfig `yaml:"users" json:"users" jsonschema:"description=Mock accounts allowed to log in"`
}

// ServerConfig holds http server settings
type ServerConfig struct {
	Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	BaseURL string        `yaml:"base_url" json:"base_url" jsonschema:"default=http://localhost:8080,description=Base URL for RSS feeds and external links"`
	DevMode bool          `yaml:"dev_mode" json:"dev_mode" jsonschema:"default=false,description=Enable development affordances like flag overrides"`
}

// HNConfig holds upstream story API settings
type HNConfig struct {
	BaseURL   string        `yaml:"base_url" json:"base_url" jsonschema:"default=https://hacker-news.firebaseio.com,description=Story API base URL"`
	SiteURL   string        `yaml:"site_url" json:"site_url" jsonschema:"default=https://news.ycombinator.com,description=Site used for author and comment links"`
	PageLimit int           `yaml:"page_limit" json:"page_limit" jsonschema:"default=20,minimum=1,description=Stories rendered per feed"`
	Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Upstream request timeout"`
}

// FlagsConfig holds feature flag provider settings
type FlagsConfig struct {
	ProviderURL  string          `yaml:"provider_url" json:"provider_url" jsonschema:"description=Flag configuration endpoint, empty to serve defaults only"`
	APIKey       string          `yaml:"api_key" json:"api_key" jsonschema:"description=Flag provider key (can use environment variable)"`
	EvalTimeout  time.Duration   `yaml:"eval_timeout" json:"eval_timeout" jsonschema:"default=200ms,description=Maximum time a single flag evaluation may take"`
	SyncTimeout  time.Duration   `yaml:"sync_timeout" json:"sync_timeout" jsonschema:"default=5s,description=Timeout of a configuration fetch"`
	SyncInterval time.Duration   `yaml:"sync_interval" json:"sync_interval" jsonschema:"default=1m,description=Interval between configuration refreshes"`
	Targeting    TargetingConfig `yaml:"targeting" json:"targeting" jsonschema:"description=Targeting properties registered at startup"`
}

// TargetingConfig holds targeting properties registered once at startup
type TargetingConfig struct {
	BetaUser bool   `yaml:"beta_user" json:"beta_user" jsonschema:"default=false,description=Register the process as a beta user"`
	LoggedIn bool   `yaml:"logged_in" json:"logged_in" jsonschema:"default=false,description=Register the process as logged in"`
	Company  string `yaml:"company" json:"company" jsonschema:"description=Company property for targeting"`
}

// UserConfig describes a mock account
type UserConfig struct {
	Username string `yaml:"username" json:"username" jsonschema:"required,description=Login name"`
	Password string `yaml:"password" json:"password" jsonschema:"required,description=Plain text password of the mock account"`
	Beta     bool   `yaml:"beta" json:"beta" jsonschema:"default=false,description=Beta tester account"`
	Company  string `yaml:"company" json:"company" jsonschema:"description=Company of the account"`
}

// New returns a configuration with all defaults applied
func New() *Config {
	var cfg Config
	setDefaults(&cfg)
	return &cfg
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	setDefaults(&cfg)

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

func setDefaults(cfg *Config) {
	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}
	if cfg.Server.BaseURL == "" {
		cfg.Server.BaseURL = "http://localhost:8080"
	}

	// set defaults for upstream api
	if cfg.HN.BaseURL == "" {
		cfg.HN.BaseURL = "https://hacker-news.firebaseio.com"
	}
	if cfg.HN.SiteURL == "" {
		cfg.HN.SiteURL = "https://news.ycombinator.com"
	}
	if cfg.HN.PageLimit == 0 {
		cfg.HN.PageLimit = domain.DefaultPageLimit
	}
	if cfg.HN.Timeout == 0 {
		cfg.HN.Timeout = 10 * time.Second
	}

	// set defaults for flags
	if cfg.Flags.EvalTimeout == 0 {
		cfg.Flags.EvalTimeout = 200 * time.Millisecond
	}
	if cfg.Flags.SyncTimeout == 0 {
		cfg.Flags.SyncTimeout = 5 * time.Second
	}
	if cfg.Flags.SyncInterval == 0 {
		cfg.Flags.SyncInterval = time.Minute
	}

	// mock accounts offered by the login page
	if len(cfg.Users) == 0 {
		cfg.Users = []UserConfig{
			{Username: "normaluser", Password: "normaluser"},
			{Username: "betauser", Password: "betauser", Beta: true},
		}
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	if u, err := url.Parse(cfg.HN.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("hn.base_url must be an absolute URL")
	}
	if cfg.HN.PageLimit < 1 {
		return fmt.Errorf("hn.page_limit must be at least 1")
	}

	if cfg.Flags.ProviderURL != "" {
		if u, err := url.Parse(cfg.Flags.ProviderURL); err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("flags.provider_url must be an absolute URL")
		}
	}
	if cfg.Flags.EvalTimeout <= 0 {
		return fmt.Errorf("flags.eval_timeout must be positive")
	}
	if cfg.Flags.SyncInterval < time.Second {
		return fmt.Errorf("flags.sync_interval must be at least 1 second")
	}

	seen := map[string]bool{}
	for _, u := range cfg.Users {
		if u.Username == "" || u.Password == "" {
			return fmt.Errorf("users require username and password")
		}
		if seen[u.Username] {
			return fmt.Errorf("duplicate user %q", u.Username)
		}
		seen[u.Username] = true
	}

	return nil
}

// Targeting returns the targeting context registered with the flag provider
func (c *Config) Targeting() domain.TargetingContext {
	return domain.TargetingContext{
		IsBetaUser: c.Flags.Targeting.BetaUser,
		IsLoggedIn: c.Flags.Targeting.LoggedIn,
		Company:    c.Flags.Targeting.Company,
	}
}
