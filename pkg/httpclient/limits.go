package httpclient

import (
	"io"
	"net/http"
	"sync/atomic"
)

// limitTransport rejects request and response bodies larger than the
// configured ceilings instead of truncating them.
type limitTransport struct {
	base        http.RoundTripper
	maxRequest  int64
	maxResponse int64
}

func newLimitTransport(base http.RoundTripper, maxRequest, maxResponse int64) http.RoundTripper {
	return &limitTransport{base: base, maxRequest: maxRequest, maxResponse: maxResponse}
}

func (t *limitTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	var reqBody *limitedBody
	if req.Body != nil && req.Body != http.NoBody {
		if req.ContentLength > t.maxRequest {
			req.Body.Close()
			return nil, ErrPayloadTooLarge
		}
		// A non-nil body with ContentLength 0 is sent chunked, same as -1.
		if req.ContentLength <= 0 {
			reqBody = &limitedBody{rc: req.Body, limit: t.maxRequest}
			req = req.Clone(req.Context())
			req.Body = reqBody
		}
	}

	resp, err := t.base.RoundTrip(req)
	if reqBody != nil && reqBody.tripped.Load() {
		if resp != nil {
			resp.Body.Close()
		}
		return nil, ErrPayloadTooLarge
	}
	if err != nil {
		return nil, err
	}

	if resp.ContentLength > t.maxResponse {
		resp.Body.Close()
		return nil, ErrPayloadTooLarge
	}
	resp.Body = &limitedBody{rc: resp.Body, limit: t.maxResponse}
	return resp, nil
}

// limitedBody never yields more than limit bytes; the read that would cross
// it returns ErrPayloadTooLarge and marks the body tripped.
type limitedBody struct {
	rc      io.ReadCloser
	limit   int64
	read    int64
	tripped atomic.Bool
}

func (l *limitedBody) Read(p []byte) (int, error) {
	if l.tripped.Load() {
		return 0, ErrPayloadTooLarge
	}
	if room := l.limit - l.read + 1; int64(len(p)) > room {
		p = p[:room]
	}
	n, err := l.rc.Read(p)
	l.read += int64(n)
	if l.read > l.limit {
		l.tripped.Store(true)
		return n - int(l.read-l.limit), ErrPayloadTooLarge
	}
	return n, err
}

func (l *limitedBody) Close() error { return l.rc.Close() }
