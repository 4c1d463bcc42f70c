// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"strings"
	"time"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// defaultAPIBase is the National Weather Service API root.
	defaultAPIBase = "https://api.weather.gov"
	// defaultUserAgent identifies the client to the NWS API, which rejects anonymous requests.
	defaultUserAgent = "weather-app/1.0 (github.com/mwiater/nimbus)"
	// defaultRequestTimeout is the default timeout for upstream HTTP requests.
	defaultRequestTimeout = 10 * time.Second
)

// Config represents the top-level application configuration.
type Config struct {
	Debug      bool   `json:"debug"`
	APIBase    string `json:"apiBase,omitempty"`
	UserAgent  string `json:"userAgent,omitempty"`
	Timeout    int    `json:"timeout,omitempty"` // seconds
	LogFile    string `json:"logFile,omitempty"`
	ConfigPath string `json:"-"`
}

// APIBaseURL returns the upstream weather API root, falling back to the NWS default.
func (c Config) APIBaseURL() string {
	if base := strings.TrimSpace(c.APIBase); base != "" {
		return strings.TrimRight(base, "/")
	}
	return defaultAPIBase
}

// UserAgentString returns the User-Agent header value sent with every upstream request.
func (c Config) UserAgentString() string {
	if ua := strings.TrimSpace(c.UserAgent); ua != "" {
		return ua
	}
	return defaultUserAgent
}

// RequestTimeout returns the timeout duration for upstream HTTP requests,
// falling back to the default if not specified.
func (c Config) RequestTimeout() time.Duration {
	if c.Timeout <= 0 {
		return defaultRequestTimeout
	}
	return time.Duration(c.Timeout) * time.Second
}

// LogFilePath returns the path to the application log file. Empty means
// diagnostics go to stderr only.
func (c Config) LogFilePath() string {
	return strings.TrimSpace(c.LogFile)
}
