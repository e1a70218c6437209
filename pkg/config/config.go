package config

import (
	"encoding/json"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "/etc/boardhub/config"
	ConfigFileName    = "boardhub.yml"
)

// Config holds all boardhub configuration settings
type Config struct {
	// TrustedProxies is a list of CIDR ranges for trusted proxies
	TrustedProxies []string `yaml:"trusted_proxies" json:"trusted_proxies"`

	// RecentBoardsLimit is how many boards a recent-sorted listing returns
	RecentBoardsLimit int `yaml:"recent_boards_limit" json:"recent_boards_limit"`

	// SearchResultLimit caps title-search results (typeahead sizing)
	SearchResultLimit int `yaml:"search_result_limit" json:"search_result_limit"`

	// TokenTTL is the lifetime of issued auth tokens in seconds
	TokenTTL int `yaml:"token_ttl" json:"token_ttl"`

	// TokenSecret signs and verifies auth tokens. Environment only, never
	// read from the config file.
	TokenSecret string `yaml:"-" json:"-"`

	// RedisURL is the connection URL for the recency store
	RedisURL string `yaml:"redis_url" json:"redis_url"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// Attribute represents a configuration attribute with its value and source
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// Global singleton config
var (
	globalConfig *Config
	configMu     sync.RWMutex
)

// Get returns the global configuration, loading it if necessary
func Get() *Config {
	configMu.RLock()
	if globalConfig != nil {
		configMu.RUnlock()
		return globalConfig
	}
	configMu.RUnlock()

	configMu.Lock()
	defer configMu.Unlock()

	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			// Return defaults on error
			globalConfig = newDefault()
		} else {
			globalConfig = cfg
		}
	}
	return globalConfig
}

// Reload reloads the configuration from file and environment
func Reload() error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	configMu.Lock()
	globalConfig = cfg
	configMu.Unlock()
	return nil
}

// newDefault returns a config with default values
func newDefault() *Config {
	return &Config{
		TrustedProxies:    []string{},
		RecentBoardsLimit: 4,
		SearchResultLimit: 2,
		TokenTTL:          3600,
		RedisURL:          "redis://localhost:6379/0",
		sources:           make(map[string]string),
	}
}

// Load loads configuration from file and environment variables.
// Environment variables take precedence over file values.
func Load() (*Config, error) {
	config := newDefault()

	for _, name := range attributeNames() {
		config.sources[name] = "default"
	}

	configPath := os.Getenv("BOARDHUB_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	config.configFilePath = filepath.Join(configPath, ConfigFileName)

	if data, err := os.ReadFile(config.configFilePath); err == nil {
		var fileConfig Config
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", config.configFilePath, err)
		}
		config.applyFileConfig(&fileConfig)
	}

	config.applyEnvConfig()

	return config, nil
}

func attributeNames() []string {
	return []string{
		"trusted_proxies", "recent_boards_limit", "search_result_limit",
		"token_ttl", "token_secret", "redis_url",
	}
}

func (c *Config) applyFileConfig(file *Config) {
	if len(file.TrustedProxies) > 0 {
		c.TrustedProxies = file.TrustedProxies
		c.sources["trusted_proxies"] = "file"
	}
	if file.RecentBoardsLimit != 0 {
		c.RecentBoardsLimit = file.RecentBoardsLimit
		c.sources["recent_boards_limit"] = "file"
	}
	if file.SearchResultLimit != 0 {
		c.SearchResultLimit = file.SearchResultLimit
		c.sources["search_result_limit"] = "file"
	}
	if file.TokenTTL != 0 {
		c.TokenTTL = file.TokenTTL
		c.sources["token_ttl"] = "file"
	}
	if file.RedisURL != "" {
		c.RedisURL = file.RedisURL
		c.sources["redis_url"] = "file"
	}
}

func (c *Config) applyEnvConfig() {
	if val := os.Getenv("BOARDHUB_TRUSTED_PROXIES"); val != "" {
		c.TrustedProxies = splitAndTrim(val)
		c.sources["trusted_proxies"] = "environment"
	}
	if val := os.Getenv("BOARDHUB_RECENT_BOARDS_LIMIT"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.RecentBoardsLimit = i
			c.sources["recent_boards_limit"] = "environment"
		}
	}
	if val := os.Getenv("BOARDHUB_SEARCH_RESULT_LIMIT"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.SearchResultLimit = i
			c.sources["search_result_limit"] = "environment"
		}
	}
	if val := os.Getenv("BOARDHUB_TOKEN_TTL"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.TokenTTL = i
			c.sources["token_ttl"] = "environment"
		}
	}
	if val := os.Getenv("BOARDHUB_TOKEN_SECRET"); val != "" {
		c.TokenSecret = val
		c.sources["token_secret"] = "environment"
	}
	if val := os.Getenv("REDIS_URL"); val != "" {
		c.RedisURL = val
		c.sources["redis_url"] = "environment"
	}
}

// ConfigFilePath returns the path to the config file
func (c *Config) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *Config) Source(name string) string {
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}

// TokenLifetime returns the token TTL as a duration
func (c *Config) TokenLifetime() time.Duration {
	return time.Duration(c.TokenTTL) * time.Second
}

// IsTrustedProxy checks if an IP is from a trusted proxy
func (c *Config) IsTrustedProxy(ip string) bool {
	if len(c.TrustedProxies) == 0 {
		return false
	}

	parsedIP := net.ParseIP(ip)
	if parsedIP == nil {
		return false
	}

	for _, cidr := range c.TrustedProxies {
		_, network, err := net.ParseCIDR(cidr)
		if err != nil {
			// Try as plain IP
			if net.ParseIP(cidr) != nil && cidr == ip {
				return true
			}
			continue
		}
		if network.Contains(parsedIP) {
			return true
		}
	}
	return false
}

// Validate validates the configuration
func (c *Config) Validate() error {
	for _, cidr := range c.TrustedProxies {
		if _, _, err := net.ParseCIDR(cidr); err != nil {
			if net.ParseIP(cidr) == nil {
				return fmt.Errorf("invalid trusted_proxies value: %s", cidr)
			}
		}
	}

	if c.RecentBoardsLimit < 1 {
		return fmt.Errorf("recent_boards_limit must be positive, got %d", c.RecentBoardsLimit)
	}
	if c.SearchResultLimit < 1 {
		return fmt.Errorf("search_result_limit must be positive, got %d", c.SearchResultLimit)
	}
	if c.TokenTTL < 1 {
		return fmt.Errorf("token_ttl must be positive, got %d", c.TokenTTL)
	}

	return nil
}

// Attributes returns all configuration attributes with their values and sources
func (c *Config) Attributes() []Attribute {
	secret := ""
	if c.TokenSecret != "" {
		secret = "(set)"
	}
	return []Attribute{
		{Name: "trusted_proxies", Value: strings.Join(c.TrustedProxies, ","), Source: c.Source("trusted_proxies")},
		{Name: "recent_boards_limit", Value: strconv.Itoa(c.RecentBoardsLimit), Source: c.Source("recent_boards_limit")},
		{Name: "search_result_limit", Value: strconv.Itoa(c.SearchResultLimit), Source: c.Source("search_result_limit")},
		{Name: "token_ttl", Value: strconv.Itoa(c.TokenTTL), Source: c.Source("token_ttl")},
		{Name: "token_secret", Value: secret, Source: c.Source("token_secret")},
		{Name: "redis_url", Value: c.RedisURL, Source: c.Source("redis_url")},
	}
}

// FormatText returns a text representation of the configuration
func (c *Config) FormatText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Config file: %s\n\n", c.configFilePath))
	sb.WriteString(fmt.Sprintf("%-40s %-30s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-40s %-30s %s\n", "----", "-----", "------"))

	for _, attr := range c.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-40s %-30s %s\n", attr.Name, value, attr.Source))
	}
	return sb.String()
}

// FormatJSON returns a JSON representation of the configuration
func (c *Config) FormatJSON() (string, error) {
	result := map[string]interface{}{
		"config_file": c.configFilePath,
		"attributes":  c.Attributes(),
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
