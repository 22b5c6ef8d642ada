package tui

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/nmarks413/class-deps/pkg/catalog"
	"github.com/nmarks413/class-deps/pkg/config"
	"github.com/nmarks413/class-deps/pkg/render"
	"github.com/nmarks413/class-deps/pkg/search"

	"github.com/charmbracelet/huh"
)

// fetch asks which catalog pages to scrape and downloads them behind a spinner.
func fetch(cfg *config.AppConfig) (catalog.Result, error) {
	var selectedURLs []string
	var extraURL string

	var urlOptions []huh.Option[string]
	for _, u := range cfg.DefaultURLs {
		urlOptions = append(urlOptions, huh.NewOption(u, u).Selected(true))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Select catalog pages").
				Description("Space = toggle, Enter = confirm").
				Options(urlOptions...).
				Value(&selectedURLs),
			huh.NewInput().
				Title("Another catalog page URL (optional)").
				Value(&extraURL),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return catalog.Result{}, err
	}

	if extraURL = strings.TrimSpace(extraURL); extraURL != "" {
		selectedURLs = append(selectedURLs, extraURL)
	}
	if len(selectedURLs) == 0 {
		return catalog.Result{}, fmt.Errorf("no catalog pages selected")
	}

	opts, err := cfg.ParseOptions()
	if err != nil {
		return catalog.Result{}, err
	}

	client := catalog.NewClient(cfg.ClientOptions())
	var res catalog.Result
	title := fmt.Sprintf("Scraping %d catalog page(s)...", len(selectedURLs))
	if spinErr := Spin(context.Background(), title, func(ctx context.Context) {
		res, err = client.FetchCatalogs(ctx, selectedURLs, opts)
	}); spinErr != nil {
		return catalog.Result{}, spinErr
	}

	if err != nil {
		return res, fmt.Errorf("failed to scrape catalog: %w", err)
	}

	styles := render.NewStyles(cfg.AccentColor)
	render.Summary(os.Stdout, res, opts, styles)
	render.Diagnostics(os.Stdout, res.Malformed, false, styles)
	return res, nil
}

// RunBrowseTUI scrapes the chosen pages and shows the courses picked from the result.
func RunBrowseTUI() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	res, err := fetch(cfg)
	if err != nil {
		return err
	}
	if len(res.Courses) == 0 {
		fmt.Println(errorStyle.Render("No courses found on the selected pages!"))
		return nil
	}

	return pickAndShow(cfg, res.Courses, "Select courses to view")
}

// RunSearchTUI scrapes the chosen pages and lets the user fuzzy search them.
func RunSearchTUI() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	res, err := fetch(cfg)
	if err != nil {
		return err
	}

	var query string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Search").
				Description("Course id (MATH 19A), department or title words").
				Value(&query).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("query cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	matches := search.Search(res.Courses, query, search.DefaultThreshold)
	if len(matches) == 0 {
		fmt.Println(errorStyle.Render(fmt.Sprintf("No courses match %q", query)))
		return nil
	}

	courses := make([]catalog.Course, 0, len(matches))
	for _, m := range matches {
		courses = append(courses, m.Course)
	}
	return pickAndShow(cfg, courses, fmt.Sprintf("%d match(es) for %q", len(courses), query))
}

func pickAndShow(cfg *config.AppConfig, courses []catalog.Course, title string) error {
	var options []huh.Option[int]
	for i, c := range courses {
		options = append(options, huh.NewOption(fmt.Sprintf("%s  %s", c.ID(), c.Title), i))
	}

	var selected []int
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[int]().
				Title(title).
				Description("Space = toggle, Enter = confirm. Start typing to filter.").
				Options(options...).
				Value(&selected).
				Filterable(true).
				Height(14),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	var picked []catalog.Course
	for _, i := range selected {
		picked = append(picked, courses[i])
	}
	if len(picked) == 0 {
		fmt.Println(errorStyle.Render("No courses selected!"))
		return nil
	}

	fmt.Println()
	render.Detail(os.Stdout, picked, render.NewStyles(cfg.AccentColor))
	return nil
}
