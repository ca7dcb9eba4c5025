package httpclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client is the shared API client. It is immutable once New returns and safe
// for concurrent use.
type Client struct {
	rc    *resty.Client
	cfg   Config
	after []ResponseInterceptor
}

// Option customizes a Client at construction time.
type Option func(*options)

type options struct {
	log    Logger
	before []RequestInterceptor
	after  []ResponseInterceptor
}

// WithLogger routes client and resty diagnostics to log.
func WithLogger(log Logger) Option {
	return func(o *options) { o.log = log }
}

// WithRequestInterceptors appends interceptors that run after the bearer token hook.
func WithRequestInterceptors(ics ...RequestInterceptor) Option {
	return func(o *options) { o.before = append(o.before, ics...) }
}

// WithResponseInterceptors appends interceptors that run after PassThrough.
func WithResponseInterceptors(ics ...ResponseInterceptor) Option {
	return func(o *options) { o.after = append(o.after, ics...) }
}

// New builds a client from cfg. When tokens is non-nil every request carries
// the provider's current bearer token.
func New(cfg Config, tokens TokenProvider, opts ...Option) (*Client, error) {
	cfg = normalizeConfig(cfg)

	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, &url.Error{Op: "parse", URL: cfg.BaseURL, Err: errors.New("base url must be absolute")}
	}

	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	log := ensureLogger(o.log)

	rc := resty.New()
	rc.SetBaseURL(cfg.BaseURL)
	rc.SetTimeout(cfg.Timeout)
	rc.SetHeaders(cfg.Headers)
	rc.SetTransport(newLimitTransport(cfg.Transport, cfg.MaxRequestBodyBytes, cfg.MaxResponseBodyBytes))
	rc.SetLogger(restyLogger{log: log})

	before := make([]RequestInterceptor, 0, len(o.before)+2)
	if tokens != nil {
		before = append(before, BearerToken(tokens))
	}
	before = append(before, o.before...)
	before = append(before, debugRequest(log))
	for _, ic := range before {
		if ic == nil {
			continue
		}
		ic := ic
		rc.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			return ic(req)
		})
	}

	after := make([]ResponseInterceptor, 0, len(o.after)+1)
	after = append(after, PassThrough)
	for _, ic := range o.after {
		if ic != nil {
			after = append(after, ic)
		}
	}

	return &Client{rc: rc, cfg: cfg, after: after}, nil
}

// BaseURL returns the prefix relative request paths are resolved against.
func (c *Client) BaseURL() string { return c.cfg.BaseURL }

// Timeout returns the per-request timeout.
func (c *Client) Timeout() time.Duration { return c.cfg.Timeout }

// Headers returns a copy of the default request headers.
func (c *Client) Headers() map[string]string {
	out := make(map[string]string, len(c.cfg.Headers))
	for k, v := range c.cfg.Headers {
		out[k] = v
	}
	return out
}

// MaxBodyBytes returns the request and response body ceilings.
func (c *Client) MaxBodyBytes() (request, response int64) {
	return c.cfg.MaxRequestBodyBytes, c.cfg.MaxResponseBodyBytes
}

// Get performs a GET request against path.
func (c *Client) Get(ctx context.Context, path string) (Response, error) {
	return c.Do(ctx, http.MethodGet, path, nil)
}

// Do sends a single request. Errors from interceptors, the transport, or a
// status of 400 and above reach the caller as produced; nothing is retried.
func (c *Client) Do(ctx context.Context, method, path string, body any) (Response, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	req := c.rc.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := toResponse(req.Execute(method, path))
	for _, ic := range c.after {
		resp, err = ic(resp, err)
	}
	return resp, err
}

func toResponse(raw *resty.Response, err error) (Response, error) {
	if err != nil {
		return nil, err
	}
	resp := &restyResponseAdapter{resp: raw}
	if raw.IsError() {
		return resp, &StatusError{
			Method:     raw.Request.Method,
			URL:        raw.Request.URL,
			StatusCode: raw.StatusCode(),
			Body:       raw.Body(),
		}
	}
	return resp, nil
}

// restyResponseAdapter adapts resty.Response to the httpclient.Response interface.
type restyResponseAdapter struct {
	resp *resty.Response
}

func (r *restyResponseAdapter) Body() []byte        { return r.resp.Body() }
func (r *restyResponseAdapter) StatusCode() int     { return r.resp.StatusCode() }
func (r *restyResponseAdapter) Header() http.Header { return r.resp.Header() }

// restyLogger forwards resty's printf-style diagnostics to Logger.
type restyLogger struct {
	log Logger
}

func (l restyLogger) Errorf(format string, v ...interface{}) {
	l.log.ErrorObj("resty error", "resty", fmt.Sprintf(format, v...))
}

func (l restyLogger) Warnf(format string, v ...interface{}) {
	l.log.WarnObj("resty warning", "resty", fmt.Sprintf(format, v...))
}

func (l restyLogger) Debugf(format string, v ...interface{}) {
	l.log.DebugObj("resty debug", "resty", fmt.Sprintf(format, v...))
}
