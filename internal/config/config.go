// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Default Airtable table names.
const (
	DefaultFundingTable  = "Funding Programs"
	DefaultProjectsTable = "Project Submissions"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via
// CLI flags or environment variables.
type Config struct {
	// Catalog source
	AirtablePAT    string `json:"airtable_pat,omitempty"`     // Airtable personal access token
	AirtableBaseID string `json:"airtable_base_id,omitempty"` // Airtable base ID
	FundingTable   string `json:"funding_table,omitempty"`    // Funding programs table name
	ProjectsTable  string `json:"projects_table,omitempty"`   // Project submissions table name
	CatalogFile    string `json:"catalog_file,omitempty"`     // Local catalog snapshot (overrides Airtable)

	// Storage
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Paths
	TemplatesDir string `json:"templates_dir,omitempty"` // Directory of funding template documents

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv builds a Config from environment variables. Values already set on the
// receiver are kept.
func (c *Config) FromEnv() {
	if c.AirtablePAT == "" {
		c.AirtablePAT = os.Getenv("AIRTABLE_PAT")
	}
	if c.AirtableBaseID == "" {
		c.AirtableBaseID = os.Getenv("AIRTABLE_BASE_ID")
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// A local snapshot and a hosted catalog are mutually exclusive sources
	if c.CatalogFile != "" && c.AirtableBaseID != "" {
		return fmt.Errorf("config error: 'catalog_file' and 'airtable_base_id' are mutually exclusive")
	}

	if c.AirtableBaseID != "" && c.AirtablePAT == "" {
		return fmt.Errorf("config error: 'airtable_pat' is required when 'airtable_base_id' is set")
	}

	// Validate file paths exist (if specified)
	if c.CatalogFile != "" {
		if _, err := os.Stat(c.CatalogFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: catalog file not found: %s", c.CatalogFile)
		}
	}

	if c.TemplatesDir != "" {
		if _, err := os.Stat(c.TemplatesDir); os.IsNotExist(err) {
			return fmt.Errorf("config error: templates directory not found: %s", c.TemplatesDir)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.AirtablePAT == "" {
		result.AirtablePAT = defaults.AirtablePAT
	}
	if result.AirtableBaseID == "" {
		result.AirtableBaseID = defaults.AirtableBaseID
	}
	if result.CatalogFile == "" {
		result.CatalogFile = defaults.CatalogFile
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.TemplatesDir == "" {
		result.TemplatesDir = defaults.TemplatesDir
	}

	if result.FundingTable == "" {
		if defaults.FundingTable != "" {
			result.FundingTable = defaults.FundingTable
		} else {
			result.FundingTable = DefaultFundingTable
		}
	}
	if result.ProjectsTable == "" {
		if defaults.ProjectsTable != "" {
			result.ProjectsTable = defaults.ProjectsTable
		} else {
			result.ProjectsTable = DefaultProjectsTable
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
