package wikipedia

import (
	"fmt"
	"os"
	"time"
)

// DefaultLocale is the Wikipedia language edition used when none is configured.
const DefaultLocale = "en"

// Config holds Wikipedia connection settings
type Config struct {
	// Locale selects the language edition (e.g. "en", "de", "fi")
	Locale string

	// BaseURL is the API endpoint. Derived from Locale unless overridden,
	// which lets tests and self-hosted MediaWiki installs point elsewhere.
	BaseURL string

	// Timeout for API requests
	Timeout time.Duration

	// UserAgent identifies the client to the wiki
	UserAgent string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	locale := os.Getenv("WIKIPEDIA_LOCALE")
	if locale == "" {
		locale = DefaultLocale
	}

	baseURL := os.Getenv("WIKIPEDIA_API_URL")
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.wikipedia.org/w/api.php", locale)
	}

	timeout := 30 * time.Second
	if t := os.Getenv("WIKIPEDIA_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil {
			timeout = d
		}
	}

	userAgent := os.Getenv("WIKIPEDIA_USER_AGENT")
	if userAgent == "" {
		userAgent = "WikipediaMCPServer/1.0 (https://github.com/olgasafonova/wikipedia-mcp-server)"
	}

	return &Config{
		Locale:    locale,
		BaseURL:   baseURL,
		Timeout:   timeout,
		UserAgent: userAgent,
	}, nil
}
