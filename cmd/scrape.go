package cmd

import (
	"fmt"

	"github.com/nmarks413/class-deps/pkg/exporter"
	"github.com/nmarks413/class-deps/pkg/render"
	"github.com/nmarks413/class-deps/pkg/search"

	"github.com/spf13/cobra"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape [url...]",
	Short: "Scrape catalog pages and print their courses",
	Long: `Scrape one or more catalog department pages and print the extracted courses.
Without a URL the default_urls from ~/.classdeps.json are used.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		run, err := resolveRun(cmd, args)
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		dept, _ := cmd.Flags().GetString("dept")
		genEd, _ := cmd.Flags().GetString("gen-ed")
		filter := search.Filter{Department: dept, GenEd: genEd}

		// keep machine readable output free of spinner frames
		run.quiet = format == "json" || format == "csv"

		res, err := run.fetch(cmd)
		if err != nil {
			return err
		}
		courses := filter.Apply(res.Courses)

		out := cmd.OutOrStdout()
		switch format {
		case "table":
			render.Table(out, courses)
			render.Summary(out, res, run.opts, run.styles)
		case "detail":
			render.Detail(out, courses, run.styles)
			render.Summary(out, res, run.opts, run.styles)
		case "json":
			return exporter.GenerateJSON(courses, out)
		case "csv":
			return exporter.GenerateCSV(courses, out)
		default:
			return fmt.Errorf("unknown format %q (expected table, detail, json or csv)", format)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scrapeCmd)
	addParseFlags(scrapeCmd)

	scrapeCmd.Flags().StringP("format", "f", "table", "Output format: table, detail, json or csv")
	scrapeCmd.Flags().StringP("dept", "d", "", "Only show courses of this department")
	scrapeCmd.Flags().StringP("gen-ed", "g", "", "Only show courses with this gen ed code or family (e.g. MF, PE, PR-C)")
}
