package cmd

import (
	"fmt"

	"github.com/nmarks413/class-deps/pkg/catalog"
	"github.com/nmarks413/class-deps/pkg/render"
	"github.com/nmarks413/class-deps/pkg/search"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query> [url...]",
	Short: "Fuzzy search the courses of catalog pages",
	Long:  `Search courses by identifier (MATH 19A), department prefix or title words. Typos are tolerated.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		run, err := resolveRun(cmd, args[1:])
		if err != nil {
			return err
		}
		threshold, _ := cmd.Flags().GetFloat64("threshold")
		detail, _ := cmd.Flags().GetBool("detail")

		res, err := run.fetch(cmd)
		if err != nil {
			return err
		}

		matches := search.Search(res.Courses, args[0], threshold)
		if len(matches) == 0 {
			return fmt.Errorf("no courses match %q", args[0])
		}

		courses := make([]catalog.Course, 0, len(matches))
		for _, m := range matches {
			courses = append(courses, m.Course)
		}

		if detail {
			render.Detail(cmd.OutOrStdout(), courses, run.styles)
		} else {
			render.Table(cmd.OutOrStdout(), courses)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	addParseFlags(searchCmd)

	searchCmd.Flags().Float64("threshold", search.DefaultThreshold, "Minimum similarity (0-1) for fuzzy matches")
	searchCmd.Flags().Bool("detail", false, "Show full course details instead of a table")
}
