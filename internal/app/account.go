package app

import (
	"context"
	"fmt"

	"github.com/samvad-hq/samvad-account-client/internal/config"
	"github.com/samvad-hq/samvad-account-client/internal/domain"
	"github.com/samvad-hq/samvad-account-client/internal/logger"
	"github.com/samvad-hq/samvad-account-client/internal/session"
	"github.com/samvad-hq/samvad-account-client/pkg/endpoints"
	"github.com/samvad-hq/samvad-account-client/pkg/httpclient"
	"github.com/samvad-hq/samvad-account-client/pkg/profile"
)

// Account wires the session store, API client and profile fetcher together.
// Build it once per process; it is safe for concurrent use.
type Account struct {
	cfg     *config.Config
	log     logger.Logger
	store   session.Store
	client  *httpclient.Client
	fetcher *profile.Fetcher
}

// NewAccount builds the account runtime from config.
func NewAccount(cfg *config.Config, log logger.Logger) (*Account, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = &logger.NopLogger{}
	}

	reg, err := endpoints.LoadRegistry(cfg.EndpointsFile)
	if err != nil {
		return nil, fmt.Errorf("load endpoints registry: %w", err)
	}
	log.InfoObj("endpoints registry loaded", "endpoints_meta", map[string]any{
		"file":  cfg.EndpointsFile,
		"names": reg.Names(),
	})

	store, err := session.NewStore(cfg.SessionType, cfg.SessionPath)
	if err != nil {
		return nil, fmt.Errorf("init session store: %w", err)
	}
	// The seed lives only in this process; the stored session is left alone.
	store = session.WithSeed(store, cfg.SessionToken)
	log.InfoObj("session store initialized", "session_config", map[string]any{
		"type":   cfg.SessionType,
		"path":   cfg.SessionPath,
		"seeded": cfg.SessionToken != "",
	})

	clientCfg := httpclient.DefaultConfig(cfg.APIBase)
	clientCfg.Timeout = cfg.RequestTimeout
	clientCfg.MaxRequestBodyBytes = cfg.MaxBodyBytes
	clientCfg.MaxResponseBodyBytes = cfg.MaxBodyBytes

	client, err := httpclient.New(clientCfg, store, httpclient.WithLogger(log))
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("build api client: %w", err)
	}
	log.InfoObj("api client initialized", "api_client", map[string]any{
		"base_url":   client.BaseURL(),
		"timeout_ms": client.Timeout().Milliseconds(),
	})

	return &Account{
		cfg:     cfg,
		log:     log,
		store:   store,
		client:  client,
		fetcher: profile.NewFetcher(client, reg.GetMe()),
	}, nil
}

// Me returns the current user's profile. Client errors are returned unchanged.
func (a *Account) Me(ctx context.Context) (domain.User, error) {
	if a == nil || a.fetcher == nil {
		return nil, fmt.Errorf("account is not initialized")
	}
	return a.fetcher.GetCurrentUser(ctx)
}

// Login stores token as the active session.
func (a *Account) Login(ctx context.Context, token string) error {
	if a == nil || a.store == nil {
		return fmt.Errorf("account is not initialized")
	}
	if err := a.store.SetToken(ctx, token); err != nil {
		return fmt.Errorf("store session token: %w", err)
	}
	a.log.InfoObj("session started", "session_type", a.cfg.SessionType)
	return nil
}

// Logout drops the active session.
func (a *Account) Logout(ctx context.Context) error {
	if a == nil || a.store == nil {
		return fmt.Errorf("account is not initialized")
	}
	if err := a.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear session token: %w", err)
	}
	a.log.InfoObj("session cleared", "session_type", a.cfg.SessionType)
	return nil
}

// SessionActive reports whether a token is stored.
func (a *Account) SessionActive(ctx context.Context) (bool, error) {
	if a == nil || a.store == nil {
		return false, fmt.Errorf("account is not initialized")
	}
	token, err := a.store.Token(ctx)
	if err != nil {
		return false, fmt.Errorf("read session token: %w", err)
	}
	return token != "", nil
}

// Close releases the session store.
func (a *Account) Close() {
	if a == nil || a.store == nil {
		return
	}
	if err := a.store.Close(); err != nil {
		a.log.ErrorObj("session store close failed", "error", err)
	}
}
