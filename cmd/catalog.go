package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	catalogview "github.com/bnema/recitebot/internal/adapters/render/catalog"
	"github.com/bnema/recitebot/internal/domain"
	"github.com/spf13/cobra"
)

func newCatalogCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the recitation catalog",
	}

	cmd.AddCommand(
		newCatalogRecitersCmd(opts),
		newCatalogChaptersCmd(opts),
		newCatalogAudioCmd(opts),
	)

	return cmd
}

func newCatalogRecitersCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "reciters",
		Short: "List available reciters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := wireApp(cmd, opts)
			if err != nil {
				return err
			}

			reciters, err := fetch(cmd.Context(), cmd.ErrOrStderr(), asJSON, "Fetching reciters...", app.catalog.Reciters)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, reciters)
			}
			return writeCatalogView(cmd, app, catalogview.View{Reciters: reciters})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newCatalogChaptersCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "chapters",
		Short: "List chapters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := wireApp(cmd, opts)
			if err != nil {
				return err
			}

			chapters, err := fetch(cmd.Context(), cmd.ErrOrStderr(), asJSON, "Fetching chapters...", app.catalog.Chapters)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, chapters.Sorted())
			}
			return writeCatalogView(cmd, app, catalogview.View{Chapters: chapters})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

type audioOutput struct {
	ReciterID int    `json:"reciter_id"`
	Reciter   string `json:"reciter"`
	ChapterID int    `json:"chapter_id"`
	URL       string `json:"url"`
	SizeBytes int64  `json:"size_bytes"`
	LinkOnly  bool   `json:"link_only"`
}

func newCatalogAudioCmd(opts *rootOptions) *cobra.Command {
	var reciterID int
	var chapterID int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "audio",
		Short: "Resolve the audio file for a reciter and chapter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if reciterID <= 0 {
				return fmt.Errorf("--reciter must be a positive id, got %d", reciterID)
			}
			if chapterID < 1 || chapterID > domain.ChapterCount {
				return fmt.Errorf("--chapter must be between 1 and %d, got %d", domain.ChapterCount, chapterID)
			}

			app, err := wireApp(cmd, opts)
			if err != nil {
				return err
			}

			id := domain.ReciterID(reciterID)
			ref, err := fetch(cmd.Context(), cmd.ErrOrStderr(), asJSON, "Resolving audio...", func(ctx context.Context) (domain.AudioRef, error) {
				if _, err := app.catalog.Reciters(ctx); err != nil {
					app.logger.Warn("reciter names unavailable", "err", err)
				}
				return app.catalog.ResolveAudio(ctx, id, chapterID)
			})
			if err != nil {
				return err
			}

			name := app.catalog.ReciterName(id)
			if asJSON {
				return writeJSON(cmd, audioOutput{
					ReciterID: reciterID,
					Reciter:   name,
					ChapterID: chapterID,
					URL:       ref.URL,
					SizeBytes: ref.SizeBytes,
					LinkOnly:  ref.Exceeds(app.cfg.Playback.MaxDispatchBytes),
				})
			}

			return writeCatalogView(cmd, app, catalogview.View{Audio: &catalogview.AudioView{
				ReciterID:   id,
				ReciterName: name,
				ChapterID:   chapterID,
				Ref:         ref,
			}})
		},
	}

	cmd.Flags().IntVar(&reciterID, "reciter", 0, "Reciter ID")
	cmd.Flags().IntVar(&chapterID, "chapter", 0, "Chapter number (1-114)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	_ = cmd.MarkFlagRequired("reciter")
	_ = cmd.MarkFlagRequired("chapter")

	return cmd
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeCatalogView(cmd *cobra.Command, app *app, view catalogview.View) error {
	rendered, err := app.catalogRender(view, catalogview.RenderOptions{
		MaxDispatchBytes: app.cfg.Playback.MaxDispatchBytes,
	})
	if err != nil {
		return fmt.Errorf("render catalog: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
