package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/samvad-hq/samvad-account-client/internal/domain"
	"github.com/spf13/cobra"
)

// accountService is what the commands need from app.Account.
type accountService interface {
	Me(ctx context.Context) (domain.User, error)
	Login(ctx context.Context, token string) error
	Logout(ctx context.Context) error
	SessionActive(ctx context.Context) (bool, error)
}

func newRootCmd(acct accountService) *cobra.Command {
	root := &cobra.Command{
		Use:           "account",
		Short:         "Samvad account API client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newMeCmd(acct), newSessionCmd(acct))
	return root
}

func newMeCmd(acct accountService) *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Print the signed-in user's profile as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := acct.Me(cmd.Context())
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(user, "", "  ")
			if err != nil {
				return fmt.Errorf("encode profile: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}

func newSessionCmd(acct accountService) *cobra.Command {
	sessionCmd := &cobra.Command{
		Use:   "session",
		Short: "Manage the stored session token",
	}

	login := &cobra.Command{
		Use:   "login <token>",
		Short: "Store a bearer token as the active session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := acct.Login(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "session stored")
			return nil
		},
	}

	logout := &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := acct.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "session cleared")
			return nil
		},
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Report whether a session token is stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			active, err := acct.SessionActive(cmd.Context())
			if err != nil {
				return err
			}
			if active {
				fmt.Fprintln(cmd.OutOrStdout(), "signed in")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "signed out")
			}
			return nil
		},
	}

	sessionCmd.AddCommand(login, logout, show)
	return sessionCmd
}
