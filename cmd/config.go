package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/nmarks413/class-deps/pkg/catalog"
	"github.com/nmarks413/class-deps/pkg/config"
	"github.com/nmarks413/class-deps/pkg/tui"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage classdeps configuration",
	Long:  "View or edit your local configuration settings (default catalog pages, parsing behaviour).",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadFile()
		if err != nil {
			return err
		}

		changed := false
		if addURL, _ := cmd.Flags().GetString("add-url"); addURL != "" {
			cfg.DefaultURLs = append(cfg.DefaultURLs, addURL)
			changed = true
		}
		if cmd.Flags().Changed("policy") {
			policy, _ := cmd.Flags().GetString("policy")
			p, err := catalog.ParsePolicy(policy)
			if err != nil {
				return err
			}
			cfg.Policy = p.String()
			changed = true
		}
		if cmd.Flags().Changed("workers") {
			cfg.Workers, _ = cmd.Flags().GetInt("workers")
			if cfg.Workers < 1 {
				return fmt.Errorf("workers must be at least 1")
			}
			changed = true
		}
		if cmd.Flags().Changed("flush-trailing") {
			cfg.FlushTrailing, _ = cmd.Flags().GetBool("flush-trailing")
			changed = true
		}

		if changed {
			if err := config.Save(cfg); err != nil {
				return err
			}
			path, _ := config.Path()
			fmt.Printf("✅ Configuration saved to %s\n", path)
			return nil
		}

		if show, _ := cmd.Flags().GetBool("show"); show {
			effective, err := config.Load()
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(effective, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}

		// If no flags are given, launch the interactive TUI flow
		return tui.RunConfigTUI()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().String("add-url", "", "Add a catalog page to the default pages")
	configCmd.Flags().String("policy", "", "Set the malformed course policy: skip or fail-fast")
	configCmd.Flags().Int("workers", 1, "Set the number of parallel workers")
	configCmd.Flags().Bool("flush-trailing", false, "Keep the course after the last marker on each page")
	configCmd.Flags().Bool("show", false, "Print the effective configuration (defaults and local overrides applied)")
}
