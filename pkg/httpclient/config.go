package httpclient

import (
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is used when Config.BaseURL is empty.
	DefaultBaseURL = "http://localhost:3001/api/v1/"
	// DefaultTimeout bounds a whole request, including reading the body.
	DefaultTimeout = 5 * time.Minute
	// DefaultMaxBodyBytes caps request and response bodies (1 GiB).
	DefaultMaxBodyBytes int64 = 1 << 30

	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	ContentTypeJSON     = "application/json"
)

// Config describes the shared API client. It is copied by New; later changes
// to a Config value have no effect on clients already built from it.
type Config struct {
	BaseURL              string
	Timeout              time.Duration
	Headers              map[string]string
	MaxRequestBodyBytes  int64
	MaxResponseBodyBytes int64

	// Transport is the underlying RoundTripper. Nil uses a clone of http.DefaultTransport.
	Transport http.RoundTripper
}

// DefaultConfig returns the fixed client settings with the given base URL
// (DefaultBaseURL when empty).
func DefaultConfig(baseURL string) Config {
	return Config{
		BaseURL:              baseURL,
		Timeout:              DefaultTimeout,
		Headers:              map[string]string{HeaderContentType: ContentTypeJSON},
		MaxRequestBodyBytes:  DefaultMaxBodyBytes,
		MaxResponseBodyBytes: DefaultMaxBodyBytes,
	}
}

func normalizeConfig(cfg Config) Config {
	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxRequestBodyBytes <= 0 {
		cfg.MaxRequestBodyBytes = DefaultMaxBodyBytes
	}
	if cfg.MaxResponseBodyBytes <= 0 {
		cfg.MaxResponseBodyBytes = DefaultMaxBodyBytes
	}

	headers := make(map[string]string, len(cfg.Headers)+1)
	for k, v := range cfg.Headers {
		key := strings.TrimSpace(k)
		if key == "" {
			continue
		}
		headers[key] = v
	}
	if _, ok := headers[HeaderContentType]; !ok {
		headers[HeaderContentType] = ContentTypeJSON
	}
	cfg.Headers = headers

	if cfg.Transport == nil {
		cfg.Transport = defaultTransport()
	}
	return cfg
}

func defaultTransport() http.RoundTripper {
	base, _ := http.DefaultTransport.(*http.Transport)
	if base == nil {
		return &http.Transport{}
	}
	return base.Clone()
}
