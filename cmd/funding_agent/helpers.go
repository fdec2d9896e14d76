package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ecoproject/funding-matcher/internal/catalog"
	"github.com/ecoproject/funding-matcher/internal/config"
	"github.com/ecoproject/funding-matcher/internal/types"
)

// loadIntake reads and validates a ProjectIntake JSON file.
func loadIntake(path string) (*types.ProjectIntake, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read intake file %s: %w", path, err)
	}

	var intake types.ProjectIntake
	if err := json.Unmarshal(content, &intake); err != nil {
		return nil, fmt.Errorf("failed to unmarshal intake JSON: %w", err)
	}

	if err := intake.Validate(); err != nil {
		return nil, fmt.Errorf("invalid intake: %w", err)
	}
	return &intake, nil
}

// resolveConfig loads the optional config file, validates it, fills unset
// values from the environment, and applies defaults. Flag overrides are
// applied by each command afterwards, so explicit flags always win.
func resolveConfig(path string) (config.Config, error) {
	cfg := config.Config{}
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return config.Config{}, err
		}
		cfg = *loaded
	}
	cfg.FromEnv()
	return cfg.MergeWithDefaults(config.Config{}), nil
}

// catalogProvider picks the program source: a local snapshot file when
// configured, otherwise the hosted Airtable catalog.
func catalogProvider(cfg config.Config) (catalog.Provider, error) {
	if cfg.CatalogFile != "" {
		return catalog.NewFileProvider(cfg.CatalogFile), nil
	}

	if cfg.AirtableBaseID == "" || cfg.AirtablePAT == "" {
		return nil, fmt.Errorf("no catalog source: provide --catalog (or 'catalog_file' in --config) or set AIRTABLE_PAT and AIRTABLE_BASE_ID")
	}
	return catalog.NewAirtableProvider(cfg.AirtablePAT, cfg.AirtableBaseID, cfg.FundingTable), nil
}

// loadPrograms fetches the full program catalog from the chosen source.
func loadPrograms(ctx context.Context, cfg config.Config) ([]types.FundingProgram, error) {
	provider, err := catalogProvider(cfg)
	if err != nil {
		return nil, err
	}

	programs, err := provider.ListPrograms(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load funding programs: %w", err)
	}
	return programs, nil
}

// resolveTemplatesDir prefers an explicit --templates-dir flag, then the
// configured directory, then the flag default.
func resolveTemplatesDir(cmd *cobra.Command, flagValue string, cfg config.Config) string {
	if !cmd.Flags().Changed("templates-dir") && cfg.TemplatesDir != "" {
		return cfg.TemplatesDir
	}
	return flagValue
}

// writeJSONOutput marshals a value with indentation and writes it to path,
// creating the parent directory if needed.
func writeJSONOutput(path string, value any) error {
	jsonOutput, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output to JSON: %w", err)
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(path, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}

// loadResponses reads a question-id to answer map from a JSON file.
func loadResponses(path string) (map[string]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read responses file %s: %w", path, err)
	}

	var responses map[string]string
	if err := json.Unmarshal(content, &responses); err != nil {
		return nil, fmt.Errorf("failed to unmarshal responses JSON: %w", err)
	}
	return responses, nil
}
