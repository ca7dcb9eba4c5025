package httpclient

import (
	"github.com/go-resty/resty/v2"
)

// BearerToken reads the current token from p at send time and, when it is
// non-empty, sets "Authorization: Bearer <token>". Provider errors abort the send.
func BearerToken(p TokenProvider) RequestInterceptor {
	return func(req *resty.Request) error {
		token, err := p.Token(req.Context())
		if err != nil {
			return err
		}
		if token != "" {
			req.SetHeader(HeaderAuthorization, "Bearer "+token)
		}
		return nil
	}
}

// PassThrough returns the outcome unchanged.
func PassThrough(resp Response, err error) (Response, error) {
	return resp, err
}

func debugRequest(log Logger) RequestInterceptor {
	return func(req *resty.Request) error {
		log.DebugObj("api request", "api_request", map[string]any{
			"method":        req.Method,
			"path":          req.URL,
			"authenticated": req.Header.Get(HeaderAuthorization) != "",
		})
		return nil
	}
}
