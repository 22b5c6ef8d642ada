package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
	"github.com/nmarks413/class-deps/pkg/catalog"
	"github.com/titanous/json5"
)

const (
	fileName      = ".classdeps.json"
	localFileName = ".classdeps.local.json"
)

// AppConfig holds all user-defined persistent settings
type AppConfig struct {
	// DefaultURLs are scraped when no URL is given on the command line.
	DefaultURLs    []string `json:"default_urls,omitempty"`
	Policy         string   `json:"policy,omitempty"`
	FlushTrailing  bool     `json:"flush_trailing,omitempty"`
	Workers        int      `json:"workers,omitempty"`
	TimeoutSeconds int      `json:"timeout_seconds,omitempty"`
	UserAgent      string   `json:"user_agent,omitempty"`
	AccentColor    string   `json:"accent_color,omitempty"`
}

// Defaults returns the settings used for anything the config file leaves unset.
func Defaults() AppConfig {
	return AppConfig{
		DefaultURLs: []string{
			"https://catalog.ucsc.edu/en/current/general-catalog/courses/math-mathematics/",
		},
		Policy:         "skip",
		Workers:        1,
		TimeoutSeconds: 30,
		AccentColor:    "99",
	}
}

// Timeout converts TimeoutSeconds to a duration.
func (c *AppConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func getConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return homeDir, nil
}

// Path returns the absolute path to ~/.classdeps.json
func Path() (string, error) {
	dir, err := getConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// readFile decodes a json5 file into out, reporting false if it does not exist.
func readFile(path string, out *AppConfig) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := json5.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return true, nil
}

// LoadFile reads only the saved configuration, without local overrides or
// defaults. Returns an empty struct if the file does not exist.
func LoadFile() (*AppConfig, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}

	var cfg AppConfig
	if _, err := readFile(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load reads ~/.classdeps.json, applies ~/.classdeps.local.json over it and
// fills whatever is still unset from Defaults. Missing files are not an error.
// Keys present in the local file always win, including false and 0, so a
// local "flush_trailing": false turns off a base true.
func Load() (*AppConfig, error) {
	cfg, err := LoadFile()
	if err != nil {
		return nil, err
	}

	dir, err := getConfigDir()
	if err != nil {
		return nil, err
	}
	localPath := filepath.Join(dir, localFileName)

	// decoding onto the base only touches the keys the local file sets
	found, err := readFile(localPath, cfg)
	if err != nil {
		return nil, err
	}
	if found {
		slog.Debug("merged config with local overrides", "local", localPath)
	}

	if err := mergo.Merge(cfg, Defaults()); err != nil {
		return nil, fmt.Errorf("failed to apply config defaults: %w", err)
	}

	return cfg, nil
}

// Save writes the application configuration back to disk.
func Save(cfg *AppConfig) error {
	path, err := Path()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ParseOptions converts the stored settings into parse options.
func (c *AppConfig) ParseOptions() (catalog.Options, error) {
	policy, err := catalog.ParsePolicy(c.Policy)
	if err != nil {
		return catalog.Options{}, err
	}
	opts := catalog.Options{
		Policy:  policy,
		Workers: c.Workers,
	}
	if c.FlushTrailing {
		opts.Trailing = catalog.FlushTrailing
	}
	return opts, nil
}

// ClientOptions converts the stored settings into HTTP client options.
func (c *AppConfig) ClientOptions() catalog.ClientOptions {
	return catalog.ClientOptions{
		Timeout:   c.Timeout(),
		UserAgent: c.UserAgent,
		Retries:   2,
	}
}
