package main

import (
	"time"

	"github.com/spacesedan/postcraft/internal/models"
	"github.com/spacesedan/postcraft/internal/vault"
	"github.com/spf13/cobra"
)

func newVaultCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vault",
		Short: "Manage saved content",
	}

	var filter vault.Filter
	var platform, status string
	list := &cobra.Command{
		Use:   "list",
		Short: "List saved content, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter.Platform = models.ContentType(platform)
			filter.Status = models.ContentStatus(status)
			items, err := a.vault.List(cmd.Context(), filter)
			if err != nil {
				return err
			}
			return writeJSON(cmd, items)
		},
	}
	list.Flags().StringVar(&platform, "platform", "", "only this content type")
	list.Flags().StringVar(&status, "status", "", "draft, published or scheduled")
	list.Flags().StringVar(&filter.Query, "query", "", "match title or keyword")

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Print one saved item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := a.vault.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd, item)
		},
	}

	publish := &cobra.Command{
		Use:   "publish <id> <platform>...",
		Short: "Mark saved content as published to the given platforms",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := a.vault.Publish(cmd.Context(), args[0], args[1:])
			if err != nil {
				return err
			}
			return writeJSON(cmd, item)
		},
	}

	var in time.Duration
	schedule := &cobra.Command{
		Use:   "schedule <id> <platform>...",
		Short: "Schedule saved content for later publication",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := a.vault.Schedule(cmd.Context(), args[0], time.Now().Add(in), args[1:])
			if err != nil {
				return err
			}
			return writeJSON(cmd, item)
		},
	}
	schedule.Flags().DurationVar(&in, "in", time.Hour, "delay before publication")

	var title, newStatus string
	var tags []string
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Change the title, status or tags of saved content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var change vault.ContentUpdate
			if cmd.Flags().Changed("title") {
				change.Title = &title
			}
			if cmd.Flags().Changed("status") {
				status := models.ContentStatus(newStatus)
				change.Status = &status
			}
			if cmd.Flags().Changed("tag") {
				change.Tags = tags
			}
			item, err := a.vault.Update(cmd.Context(), args[0], change)
			if err != nil {
				return err
			}
			return writeJSON(cmd, item)
		},
	}
	update.Flags().StringVar(&title, "title", "", "new title")
	update.Flags().StringVar(&newStatus, "status", "", "draft, published or scheduled")
	update.Flags().StringSliceVar(&tags, "tag", nil, "replace tags (repeatable)")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove saved content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.vault.Delete(cmd.Context(), args[0])
		},
	}

	cmd.AddCommand(list, show, update, publish, schedule, del)
	return cmd
}

func newAnalyticsCmd(a *app) *cobra.Command {
	var timeRange string
	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Summarise engagement across saved content",
		RunE: func(cmd *cobra.Command, _ []string) error {
			summary, err := a.vault.Analytics(cmd.Context(), timeRange)
			if err != nil {
				return err
			}
			return writeJSON(cmd, summary)
		},
	}
	cmd.Flags().StringVar(&timeRange, "range", "30d", "7d, 30d, 90d or 1y")
	return cmd
}
