package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/nmarks413/class-deps/pkg/catalog"
	"github.com/nmarks413/class-deps/pkg/config"
	"github.com/nmarks413/class-deps/pkg/render"
	"github.com/nmarks413/class-deps/pkg/tui"

	"github.com/spf13/cobra"
)

// addParseFlags registers the flags shared by every command that scrapes.
func addParseFlags(cmd *cobra.Command) {
	cmd.Flags().String("policy", "", "What to do with a malformed course: skip or fail-fast (default from config)")
	cmd.Flags().Bool("flush-trailing", false, "Keep the course after the last course marker on a page")
	cmd.Flags().IntP("workers", "w", 0, "Number of courses built in parallel (default from config)")
}

// scrapeRun is everything a scraping command needs, resolved from config and flags.
type scrapeRun struct {
	cfg    *config.AppConfig
	urls   []string
	opts   catalog.Options
	styles render.Styles
	quiet  bool
}

func resolveRun(cmd *cobra.Command, urls []string) (*scrapeRun, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("policy") {
		cfg.Policy, _ = cmd.Flags().GetString("policy")
	}
	if cmd.Flags().Changed("flush-trailing") {
		cfg.FlushTrailing, _ = cmd.Flags().GetBool("flush-trailing")
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers, _ = cmd.Flags().GetInt("workers")
	}

	opts, err := cfg.ParseOptions()
	if err != nil {
		return nil, err
	}

	if len(urls) == 0 {
		urls = cfg.DefaultURLs
	}
	if len(urls) == 0 {
		return nil, fmt.Errorf("no catalog page given and no default_urls configured")
	}

	return &scrapeRun{
		cfg:    cfg,
		urls:   urls,
		opts:   opts,
		styles: render.NewStyles(cfg.AccentColor),
	}, nil
}

// fetch scrapes every page behind a spinner and reports skipped courses on stderr.
func (r *scrapeRun) fetch(cmd *cobra.Command) (catalog.Result, error) {
	client := catalog.NewClient(r.cfg.ClientOptions())

	var res catalog.Result
	var err error
	action := func(ctx context.Context) {
		res, err = client.FetchCatalogs(ctx, r.urls, r.opts)
	}

	if r.quiet || verbose {
		action(cmd.Context())
	} else {
		title := fmt.Sprintf("Scraping %d catalog page(s)...", len(r.urls))
		if spinErr := tui.Spin(cmd.Context(), title, action); spinErr != nil {
			return catalog.Result{}, spinErr
		}
	}

	if err != nil {
		return res, fmt.Errorf("failed to scrape catalog: %w", err)
	}

	render.Diagnostics(os.Stderr, res.Malformed, verbose, r.styles)
	return res, nil
}
