package profile

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/samvad-hq/samvad-account-client/internal/domain"
	"github.com/samvad-hq/samvad-account-client/pkg/httpclient"
)

// Requester is the slice of httpclient.Client the fetcher needs.
type Requester interface {
	Get(ctx context.Context, path string) (httpclient.Response, error)
}

// Fetcher reads the signed-in user's profile.
type Fetcher struct {
	client Requester
	path   string
}

// NewFetcher returns a Fetcher that calls GET path through client.
func NewFetcher(client Requester, path string) *Fetcher {
	return &Fetcher{client: client, path: path}
}

// GetCurrentUser fetches the profile of the user the session token belongs to.
// Client errors are returned exactly as the client produced them.
func (f *Fetcher) GetCurrentUser(ctx context.Context) (domain.User, error) {
	resp, err := f.client.Get(ctx, f.path)
	if err != nil {
		return nil, err
	}

	body := resp.Body()
	if len(body) == 0 {
		return domain.User{}, nil
	}

	var user domain.User
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("decode current user: %w", err)
	}
	return user, nil
}
