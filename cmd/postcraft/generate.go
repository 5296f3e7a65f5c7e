package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spacesedan/postcraft/internal/generation"
	"github.com/spacesedan/postcraft/internal/models"
	"github.com/spacesedan/postcraft/internal/render"
	"github.com/spf13/cobra"
)

var formats = map[string]bool{"json": true, "markdown": true, "md": true, "html": true}

func newGenerateCmd(a *app) *cobra.Command {
	var (
		brief       models.ContentBrief
		contentType string
		tone        string
		format      string
		batchFile   string
		save        bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate content for one platform from a brief, or for every brief in a file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !formats[format] {
				return fmt.Errorf("unknown format %q", format)
			}
			if batchFile != "" {
				return runBatch(cmd, a, batchFile, format, save)
			}

			brief.ContentType = models.ContentType(contentType)
			brief.Tone = models.Tone(tone)
			if err := brief.Validate(); err != nil {
				return err
			}

			content, err := a.generator.Generate(cmd.Context(), brief)
			if err != nil {
				return err
			}
			if save {
				if err := saveContent(cmd, a, brief, content); err != nil {
					return err
				}
			}
			return writeContent(cmd, content, format)
		},
	}

	f := cmd.Flags()
	f.StringVar(&brief.Keyword, "keyword", "", "topic the content is about")
	f.StringVar(&brief.Goal, "goal", "", "what the content should achieve")
	f.StringVar(&contentType, "type", "", "twitter, instagram, blog, youtube, email or linkedin")
	f.StringVar(&brief.Audience, "audience", "", "intended readers")
	f.StringVar(&tone, "tone", "", "professional, casual, funny, inspirational, sarcastic or educational")
	f.IntVar(&brief.Creativity, "creativity", 50, "0 to 100")
	f.StringVar(&brief.AdditionalContext, "context", "", "extra instructions for the writer")
	f.StringVar(&format, "format", "json", "json, markdown or html")
	f.StringVar(&batchFile, "batch", "", "JSON file holding an array of briefs; replaces the brief flags")
	f.BoolVar(&save, "save", false, "store the result in the vault")

	return cmd
}

type batchOutput struct {
	Keyword     string                   `json:"keyword"`
	ContentType models.ContentType       `json:"contentType"`
	Content     *models.GeneratedContent `json:"content,omitempty"`
	Error       string                   `json:"error,omitempty"`
}

// runBatch validates every brief before generating any of them.
func runBatch(cmd *cobra.Command, a *app, path, format string, save bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read batch: %w", err)
	}
	var briefs []models.ContentBrief
	if err := json.Unmarshal(data, &briefs); err != nil {
		return fmt.Errorf("decode batch %s: %w", path, err)
	}
	for i, b := range briefs {
		if err := b.Validate(); err != nil {
			return fmt.Errorf("brief %d: %w", i, err)
		}
	}

	results := generation.GenerateAll(cmd.Context(), a.generator, briefs)

	out := make([]batchOutput, 0, len(results))
	failed := 0
	for _, r := range results {
		o := batchOutput{Keyword: r.Brief.Keyword, ContentType: r.Brief.ContentType}
		if r.Err != nil {
			failed++
			o.Error = r.Err.Error()
			out = append(out, o)
			continue
		}
		if save {
			if err := saveContent(cmd, a, r.Brief, r.Content); err != nil {
				return err
			}
		}
		o.Content = &r.Content
		out = append(out, o)
	}

	if format == "json" {
		if err := writeJSON(cmd, out); err != nil {
			return err
		}
	} else {
		for _, o := range out {
			if o.Content == nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s (%s): %s\n", o.Keyword, o.ContentType, o.Error)
				continue
			}
			if err := writeContent(cmd, *o.Content, format); err != nil {
				return err
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d briefs failed", failed, len(results))
	}
	return nil
}

func saveContent(cmd *cobra.Command, a *app, brief models.ContentBrief, content models.GeneratedContent) error {
	saved, err := a.vault.Save(cmd.Context(), models.NewContentFromBrief(brief, content))
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "saved as %s\n", saved.ID)
	return nil
}

func writeContent(cmd *cobra.Command, content models.GeneratedContent, format string) error {
	out := cmd.OutOrStdout()
	switch format {
	case "markdown", "md":
		_, err := fmt.Fprint(out, render.Markdown(content))
		return err
	case "html":
		_, err := fmt.Fprint(out, render.HTML(content))
		return err
	case "json":
		return writeJSON(cmd, content)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
