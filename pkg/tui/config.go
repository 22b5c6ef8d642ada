package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nmarks413/class-deps/pkg/catalog"
	"github.com/nmarks413/class-deps/pkg/config"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// RunConfigTUI launches the interactive experience for managing configurations
func RunConfigTUI() error {
	for {
		// edit the saved file only, so local overrides and defaults are not baked in
		cfg, err := config.LoadFile()
		if err != nil {
			return err
		}

		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Configuration Settings").
					Options(
						huh.NewOption("Set Accent Color (Theme)", "theme"),
						huh.NewOption("Set Default Catalog Pages", "urls"),
						huh.NewOption("Set Parsing Behaviour", "parsing"),
						huh.NewOption("View Current Config", "view"),
						huh.NewOption("Back to Main Menu", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		switch action {
		case "back":
			return nil
		case "theme":
			err = runSetThemeTUI(cfg)
		case "urls":
			err = runSetURLsTUI(cfg)
		case "parsing":
			err = runSetParsingTUI(cfg)
		case "view":
			err = printConfig()
		}

		if err != nil {
			return err
		}
	}
}

func printConfig() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	path, _ := config.Path()

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n--- Current Configuration (%s) ---", path)))
	fmt.Printf("Default Pages: %d\n", len(cfg.DefaultURLs))
	for _, u := range cfg.DefaultURLs {
		fmt.Printf("  %s\n", u)
	}
	fmt.Printf("Malformed Groups: %s\n", cfg.Policy)
	fmt.Printf("Flush Trailing Group: %t\n", cfg.FlushTrailing)
	fmt.Printf("Workers: %d\n", cfg.Workers)
	fmt.Printf("Timeout: %s\n", cfg.Timeout())
	fmt.Printf("Accent Color: %s\n", cfg.AccentColor)
	fmt.Println()
	return nil
}

func runSetURLsTUI(cfg *config.AppConfig) error {
	input := strings.Join(cfg.DefaultURLs, "\n")

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Default catalog pages").
				Description("One URL per line. These are scraped when no URL is given.").
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	var urls []string
	for _, line := range strings.Split(input, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			urls = append(urls, line)
		}
	}
	cfg.DefaultURLs = urls

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Saved %d default catalog page(s).\n", len(urls))))
	return nil
}

func runSetParsingTUI(cfg *config.AppConfig) error {
	policy := cfg.Policy
	if policy == "" {
		policy = catalog.PolicySkip.String()
	}
	flush := cfg.FlushTrailing
	workers := strconv.Itoa(max(cfg.Workers, 1))

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("When a course cannot be parsed").
				Options(
					huh.NewOption("Skip it and keep going", catalog.PolicySkip.String()),
					huh.NewOption("Abort the whole page", catalog.PolicyFailFast.String()),
				).
				Value(&policy),
			huh.NewConfirm().
				Title("Keep the last course on the page?").
				Description("The catalog only ends a course when the next one starts, so the last one is dropped unless this is enabled.").
				Value(&flush),
			huh.NewInput().
				Title("Parallel workers").
				Value(&workers).
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil || n < 1 {
						return fmt.Errorf("must be a positive number")
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	n, _ := strconv.Atoi(workers)
	cfg.Policy = policy
	cfg.FlushTrailing = flush
	cfg.Workers = n

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ Parsing settings saved.\n"))
	return nil
}

func colorBlock(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("■")
}

func runSetThemeTUI(cfg *config.AppConfig) error {
	var input string

	inputForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose an Accent Color").
				Description("Select a curated color or choose Custom to enter your own Hex.").
				Options(
					huh.NewOption(fmt.Sprintf("%s Slug Purple", colorBlock("99")), "99"),
					huh.NewOption(fmt.Sprintf("%s Redwood", colorBlock("124")), "124"),
					huh.NewOption(fmt.Sprintf("%s Bay Blue", colorBlock("33")), "33"),
					huh.NewOption(fmt.Sprintf("%s Banana Yellow", colorBlock("220")), "220"),
					huh.NewOption("✨ Custom Hex Code", "custom"),
				).
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := inputForm.Run(); err != nil {
		return err
	}

	if input == "custom" {
		var hexInput string
		hexForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Enter a Hex Color Code").
					Description("Include the `#` symbol. Example: #FF00FF").
					Placeholder("#").
					Value(&hexInput).
					Validate(validHex),
			),
		).WithTheme(GetTheme())

		if err := hexForm.Run(); err != nil {
			return err
		}
		cfg.AccentColor = hexInput
	} else {
		cfg.AccentColor = input
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.AccentColor)).Render("\n✅ The theme color is now saved.\n"))
	return nil
}

func validHex(s string) error {
	if len(s) != 7 || !strings.HasPrefix(s, "#") {
		return fmt.Errorf("must be a valid 6-character hex code starting with #")
	}
	if _, err := strconv.ParseUint(s[1:], 16, 32); err != nil {
		return fmt.Errorf("must be a valid 6-character hex code starting with #")
	}
	return nil
}
