package main

import (
	"github.com/spacesedan/postcraft/internal/accounts"
	"github.com/spf13/cobra"
)

func newAccountsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Inspect and connect publishing accounts",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List known accounts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeJSON(cmd, a.accounts.List())
		},
	}

	var creds accounts.Credentials
	connect := &cobra.Command{
		Use:   "connect <platform>",
		Short: "Connect a platform account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := a.accounts.Connect(args[0], creds)
			if err != nil {
				return err
			}
			return writeJSON(cmd, account)
		},
	}
	connect.Flags().StringVar(&creds.Username, "username", "", "account handle")
	connect.Flags().StringVar(&creds.DisplayName, "display-name", "", "profile name")
	connect.Flags().StringVar(&creds.AccessToken, "token", "", "access token")

	sync := &cobra.Command{
		Use:   "sync <platform>",
		Short: "Refresh a connected account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := a.accounts.Sync(args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd, account)
		},
	}

	show := &cobra.Command{
		Use:   "show <platform>",
		Short: "Print one account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := a.accounts.Get(args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd, account)
		},
	}

	var autoPost, optimalTiming, crossPost bool
	settings := &cobra.Command{
		Use:   "settings <platform>",
		Short: "Change posting settings for an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var update accounts.SettingsUpdate
			if cmd.Flags().Changed("auto-post") {
				update.AutoPost = &autoPost
			}
			if cmd.Flags().Changed("optimal-timing") {
				update.OptimalTiming = &optimalTiming
			}
			if cmd.Flags().Changed("cross-post") {
				update.CrossPost = &crossPost
			}
			result, err := a.accounts.UpdateSettings(args[0], update)
			if err != nil {
				return err
			}
			return writeJSON(cmd, result)
		},
	}
	settings.Flags().BoolVar(&autoPost, "auto-post", false, "publish without confirmation")
	settings.Flags().BoolVar(&optimalTiming, "optimal-timing", false, "post at the platform's best hours")
	settings.Flags().BoolVar(&crossPost, "cross-post", false, "mirror posts to other connected accounts")

	disconnect := &cobra.Command{
		Use:   "disconnect <platform>",
		Short: "Disconnect a platform account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.accounts.Disconnect(args[0])
		},
	}

	cmd.AddCommand(list, show, connect, settings, sync, disconnect)
	return cmd
}
