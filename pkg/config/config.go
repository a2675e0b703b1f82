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

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "/etc/jobtrackr/config"
	ConfigFileName    = "jobtrackr.yml"
)

// Config holds all JobTrackr server settings. Values are layered: defaults,
// then the YAML config file, then JOBTRACKR_* environment variables. A
// Config is safe for concurrent use; Apply swaps values under a write lock
// so a file watcher can reload settings while the server runs.
type Config struct {
	// TokenTTLSeconds is the lifetime of issued bearer tokens in seconds
	TokenTTLSeconds int `yaml:"token_ttl" json:"token_ttl"`

	// BcryptCost is the bcrypt cost used when hashing passwords
	BcryptCost int `yaml:"bcrypt_cost" json:"bcrypt_cost"`

	// TrustedProxies is a list of CIDR ranges whose X-Forwarded-For is honored
	TrustedProxies []string `yaml:"trusted_proxies" json:"trusted_proxies"`

	mu sync.RWMutex

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

// newDefault returns a config with default values
func newDefault() *Config {
	return &Config{
		TokenTTLSeconds: 3600,
		BcryptCost:      bcrypt.DefaultCost,
		TrustedProxies:  []string{},
		sources:         make(map[string]string),
	}
}

func attributeNames() []string {
	return []string{"token_ttl", "bcrypt_cost", "trusted_proxies"}
}

// Load loads configuration from file and environment variables.
// Environment variables take precedence over file values.
func Load() (*Config, error) {
	config := newDefault()

	for _, name := range attributeNames() {
		config.sources[name] = "default"
	}

	configPath := os.Getenv("JOBTRACKR_CONFIG_PATH")
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

func (c *Config) applyFileConfig(file *Config) {
	if file.TokenTTLSeconds != 0 {
		c.TokenTTLSeconds = file.TokenTTLSeconds
		c.sources["token_ttl"] = "file"
	}
	if file.BcryptCost != 0 {
		c.BcryptCost = file.BcryptCost
		c.sources["bcrypt_cost"] = "file"
	}
	if len(file.TrustedProxies) > 0 {
		c.TrustedProxies = file.TrustedProxies
		c.sources["trusted_proxies"] = "file"
	}
}

func (c *Config) applyEnvConfig() {
	if val := os.Getenv("JOBTRACKR_TOKEN_TTL"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.TokenTTLSeconds = i
			c.sources["token_ttl"] = "environment"
		}
	}
	if val := os.Getenv("JOBTRACKR_BCRYPT_COST"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.BcryptCost = i
			c.sources["bcrypt_cost"] = "environment"
		}
	}
	if val := os.Getenv("JOBTRACKR_TRUSTED_PROXIES"); val != "" {
		c.TrustedProxies = splitAndTrim(val)
		c.sources["trusted_proxies"] = "environment"
	}
}

// Apply copies the values and sources of other into c under the write lock.
// Used by the config file watcher to swap in a reloaded configuration.
func (c *Config) Apply(other *Config) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.TokenTTLSeconds = other.TokenTTLSeconds
	c.BcryptCost = other.BcryptCost
	c.TrustedProxies = other.TrustedProxies
	c.sources = other.sources
}

// ConfigFilePath returns the path to the config file
func (c *Config) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *Config) Source(name string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}

// UserTokenTTL returns the bearer token lifetime as a duration
func (c *Config) UserTokenTTL() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return time.Duration(c.TokenTTLSeconds) * time.Second
}

// Cost returns the bcrypt cost for password hashing
func (c *Config) Cost() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.BcryptCost
}

// IsTrustedProxy checks if an IP belongs to a trusted proxy
func (c *Config) IsTrustedProxy(ip string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

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
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.TokenTTLSeconds <= 0 {
		return fmt.Errorf("token_ttl must be positive, got %d", c.TokenTTLSeconds)
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("bcrypt_cost must be between %d and %d, got %d",
			bcrypt.MinCost, bcrypt.MaxCost, c.BcryptCost)
	}
	for _, cidr := range c.TrustedProxies {
		if _, _, err := net.ParseCIDR(cidr); err != nil {
			if net.ParseIP(cidr) == nil {
				return fmt.Errorf("invalid trusted_proxies value: %s", cidr)
			}
		}
	}
	return nil
}

// Attributes returns all configuration attributes with their values and sources
func (c *Config) Attributes() []Attribute {
	c.mu.RLock()
	ttl := strconv.Itoa(c.TokenTTLSeconds)
	cost := strconv.Itoa(c.BcryptCost)
	proxies := strings.Join(c.TrustedProxies, ",")
	c.mu.RUnlock()

	return []Attribute{
		{Name: "token_ttl", Value: ttl, Source: c.Source("token_ttl")},
		{Name: "bcrypt_cost", Value: cost, Source: c.Source("bcrypt_cost")},
		{Name: "trusted_proxies", Value: proxies, Source: c.Source("trusted_proxies")},
	}
}

// FormatJSON returns a JSON representation of the configuration
func (c *Config) FormatJSON() (string, error) {
	data, err := json.MarshalIndent(c.Attributes(), "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FormatText returns a text representation of the configuration
func (c *Config) FormatText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Config file: %s\n\n", c.configFilePath))
	sb.WriteString(fmt.Sprintf("%-20s %-30s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-20s %-30s %s\n", "----", "-----", "------"))

	for _, attr := range c.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-20s %-30s %s\n", attr.Name, value, attr.Source))
	}
	return sb.String()
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
