package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/samvad-hq/samvad-account-client/internal/domain"
)

type fakeAccount struct {
	user   domain.User
	err    error
	token  string
	logins int
}

func (f *fakeAccount) Me(context.Context) (domain.User, error) { return f.user, f.err }

func (f *fakeAccount) Login(_ context.Context, token string) error {
	f.logins++
	f.token = token
	return nil
}

func (f *fakeAccount) Logout(context.Context) error {
	f.token = ""
	return nil
}

func (f *fakeAccount) SessionActive(context.Context) (bool, error) { return f.token != "", nil }

func execute(t *testing.T, acct accountService, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd(acct)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestMeCommandPrintsProfile(t *testing.T) {
	out, err := execute(t, &fakeAccount{user: domain.User{"id": "u-1"}}, "me")
	if err != nil {
		t.Fatalf("me: %v", err)
	}
	if !strings.Contains(out, `"id": "u-1"`) {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestMeCommandReturnsError(t *testing.T) {
	errBoom := errors.New("boom")
	_, err := execute(t, &fakeAccount{err: errBoom}, "me")
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected boom error, got %v", err)
	}
}

func TestSessionCommands(t *testing.T) {
	acct := &fakeAccount{}

	if _, err := execute(t, acct, "session", "login", "jwt-1"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if acct.token != "jwt-1" || acct.logins != 1 {
		t.Fatalf("login did not store token: %+v", acct)
	}

	out, err := execute(t, acct, "session", "show")
	if err != nil || !strings.Contains(out, "signed in") {
		t.Fatalf("show: out=%q err=%v", out, err)
	}
	if strings.Contains(out, "jwt-1") {
		t.Fatalf("show must not print the token")
	}

	if _, err := execute(t, acct, "session", "logout"); err != nil {
		t.Fatalf("logout: %v", err)
	}
	out, err = execute(t, acct, "session", "show")
	if err != nil || !strings.Contains(out, "signed out") {
		t.Fatalf("show after logout: out=%q err=%v", out, err)
	}
}

func TestLoginRequiresToken(t *testing.T) {
	if _, err := execute(t, &fakeAccount{}, "session", "login"); err == nil {
		t.Fatalf("expected error without token argument")
	}
}
