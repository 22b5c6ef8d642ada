package cmd

import (
	"fmt"
	"os"

	"github.com/nmarks413/class-deps/pkg/exporter"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [url...]",
	Short: "Export scraped courses to a JSON or CSV file",
	Long:  `Scrape catalog pages and write the courses to a file without printing them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		formatStr, _ := cmd.Flags().GetString("format")

		format := exporter.FormatFromPath(output)
		if formatStr != "" {
			var err error
			format, err = exporter.ParseFormat(formatStr)
			if err != nil {
				return err
			}
		}

		run, err := resolveRun(cmd, args)
		if err != nil {
			return err
		}

		res, err := run.fetch(cmd)
		if err != nil {
			return err
		}

		if len(res.Courses) == 0 {
			return fmt.Errorf("no courses found on %d page(s)", len(run.urls))
		}

		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()

		if err := exporter.Export(res.Courses, format, file); err != nil {
			return fmt.Errorf("failed to export courses: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Successfully exported %d courses to %s\n", len(res.Courses), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	addParseFlags(exportCmd)

	exportCmd.Flags().StringP("output", "o", "courses.json", "Output file path")
	exportCmd.Flags().StringP("format", "f", "", "Output format: json or csv (default from the file extension)")
}
