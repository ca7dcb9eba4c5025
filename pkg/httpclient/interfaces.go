package httpclient

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// Response is a minimal HTTP response contract.
type Response interface {
	Body() []byte
	StatusCode() int
	Header() http.Header
}

// TokenProvider returns the bearer token to attach to outgoing requests.
// An empty token means no session; the request is sent without Authorization.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// TokenFunc adapts a plain function to TokenProvider.
type TokenFunc func(ctx context.Context) (string, error)

func (f TokenFunc) Token(ctx context.Context) (string, error) { return f(ctx) }

// RequestInterceptor may inspect or modify a request before it is sent.
// A non-nil error aborts the send and is returned to the caller unchanged.
type RequestInterceptor func(req *resty.Request) error

// ResponseInterceptor sees the outcome of every send, success or failure,
// and returns the outcome the caller should observe.
type ResponseInterceptor func(resp Response, err error) (Response, error)

// Logger defines the logging surface the client relies on.
type Logger interface {
	InfoObj(msg, key string, obj interface{})
	DebugObj(msg, key string, obj interface{})
	WarnObj(msg, key string, obj interface{})
	ErrorObj(msg, key string, obj interface{})
}

type noopLogger struct{}

func (noopLogger) InfoObj(string, string, interface{})  {}
func (noopLogger) DebugObj(string, string, interface{}) {}
func (noopLogger) WarnObj(string, string, interface{})  {}
func (noopLogger) ErrorObj(string, string, interface{}) {}

func ensureLogger(log Logger) Logger {
	if log == nil {
		return noopLogger{}
	}
	return log
}
