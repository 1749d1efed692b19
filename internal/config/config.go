// Package config defines the project configuration record (config.json) and
// the validation applied to it after the operator finishes provisioning.
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// FileName is the configuration record inside the project directory.
const FileName = "config.json"

// CredentialFileName is the expected path (relative to the project directory)
// of the service-account key bundle the operator downloads from the Google
// Cloud console. This tool never creates it.
const CredentialFileName = "google-credentials.json"

// PlaceholderSheetURL is written by the scaffolder and must be replaced by the
// operator. A record still carrying it is "not configured", never a real URL.
const PlaceholderSheetURL = "PASTE_YOUR_GOOGLE_SHEET_URL_HERE"

// Config is the configuration record consumed by the scraper at startup.
// The field set and JSON names are a fixed contract with that program.
type Config struct {
	GoogleCredentials string   `json:"google_credentials" mapstructure:"google_credentials"`
	GoogleSheetURL    string   `json:"google_sheet_url" mapstructure:"google_sheet_url"`
	TargetRegions     []string `json:"target_regions" mapstructure:"target_regions"`
	TargetTitles      []string `json:"target_titles" mapstructure:"target_titles"`
}

// Default returns the template record the scaffolder writes.
func Default() Config {
	return Config{
		GoogleCredentials: CredentialFileName,
		GoogleSheetURL:    PlaceholderSheetURL,
		TargetRegions:     []string{"Ras Al Khaimah", "Sharjah"},
		TargetTitles: []string{
			"IT Director",
			"IT Manager",
			"CTO",
			"CIO",
			"VP IT",
			"VP Technology",
			"Infrastructure Manager",
		},
	}
}

// Render marshals the record as the indented JSON written to config.json.
func (c Config) Render() ([]byte, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return append(data, '\n'), nil
}

// Load reads and structurally validates a config.json.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate enforces the structural contract; it does not judge whether the
// operator has completed provisioning (see SheetConfigured).
func (c Config) Validate() error {
	if strings.TrimSpace(c.GoogleCredentials) == "" {
		return fmt.Errorf("google_credentials must be set")
	}
	if len(c.TargetRegions) == 0 {
		return fmt.Errorf("target_regions must list at least one region")
	}
	if len(c.TargetTitles) == 0 {
		return fmt.Errorf("target_titles must list at least one title")
	}
	return nil
}

// SheetConfigured rejects records whose sheet URL was never filled in, or was
// filled with something that is not an https spreadsheet URL.
func (c Config) SheetConfigured() error {
	raw := strings.TrimSpace(c.GoogleSheetURL)
	if raw == "" || raw == PlaceholderSheetURL {
		return fmt.Errorf("google_sheet_url is not configured: replace the placeholder with your sheet's URL")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("google_sheet_url is not a valid URL: %w", err)
	}
	if u.Scheme != "https" || u.Host == "" {
		return fmt.Errorf("google_sheet_url must be an https URL, got %q", raw)
	}
	return nil
}

// CredentialPath resolves the credential file relative to the project
// directory unless the record holds an absolute path.
func (c Config) CredentialPath(projectDir string) string {
	if filepath.IsAbs(c.GoogleCredentials) {
		return c.GoogleCredentials
	}
	return filepath.Join(projectDir, c.GoogleCredentials)
}

// ServiceAccountKey is the subset of the Google service-account key bundle the
// doctor inspects. Key material itself is never logged or printed.
type ServiceAccountKey struct {
	Type        string `json:"type"`
	ProjectID   string `json:"project_id"`
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
}

// LoadServiceAccountKey reads the externally provisioned credential file and
// checks it looks like a service-account key bundle.
func LoadServiceAccountKey(path string) (ServiceAccountKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ServiceAccountKey{}, fmt.Errorf("read credential file: %w", err)
	}

	var key ServiceAccountKey
	if err := json.Unmarshal(data, &key); err != nil {
		return ServiceAccountKey{}, fmt.Errorf("credential file is not valid JSON: %w", err)
	}
	if key.Type != "service_account" {
		return ServiceAccountKey{}, fmt.Errorf("credential file type is %q, want \"service_account\"", key.Type)
	}
	if key.ClientEmail == "" || key.PrivateKey == "" {
		return ServiceAccountKey{}, fmt.Errorf("credential file is missing client_email or private_key")
	}
	return key, nil
}
