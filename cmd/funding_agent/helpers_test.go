package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecoproject/funding-matcher/internal/config"
)

func TestResolveConfig_FromFile(t *testing.T) {
	tmpDir := t.TempDir()
	catalogFile := filepath.Join(tmpDir, "catalog.json")
	require.NoError(t, os.WriteFile(catalogFile, []byte("[]"), 0644))

	configFile := filepath.Join(tmpDir, "config.json")
	configJSON := `{"catalog_file": "` + catalogFile + `", "templates_dir": "` + tmpDir + `"}`
	require.NoError(t, os.WriteFile(configFile, []byte(configJSON), 0644))

	cfg, err := resolveConfig(configFile)
	require.NoError(t, err)

	assert.Equal(t, catalogFile, cfg.CatalogFile)
	assert.Equal(t, tmpDir, cfg.TemplatesDir)
	assert.Equal(t, config.DefaultFundingTable, cfg.FundingTable, "defaults fill unset table names")
}

func TestResolveConfig_EmptyPathUsesEnv(t *testing.T) {
	t.Setenv("AIRTABLE_PAT", "pat-from-env")
	t.Setenv("AIRTABLE_BASE_ID", "base-from-env")

	cfg, err := resolveConfig("")
	require.NoError(t, err)

	assert.Equal(t, "pat-from-env", cfg.AirtablePAT)
	assert.Equal(t, "base-from-env", cfg.AirtableBaseID)
}

func TestResolveConfig_InvalidConfigRejected(t *testing.T) {
	tmpDir := t.TempDir()
	catalogFile := filepath.Join(tmpDir, "catalog.json")
	require.NoError(t, os.WriteFile(catalogFile, []byte("[]"), 0644))

	configFile := filepath.Join(tmpDir, "config.json")
	configJSON := `{"catalog_file": "` + catalogFile + `", "airtable_base_id": "appXYZ"}`
	require.NoError(t, os.WriteFile(configFile, []byte(configJSON), 0644))

	_, err := resolveConfig(configFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestResolveConfig_MissingFile(t *testing.T) {
	_, err := resolveConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestResolveTemplatesDir(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	var dir string
	cmd.Flags().StringVarP(&dir, "templates-dir", "d", "templates", "")

	cfg := config.Config{TemplatesDir: "/configured/templates"}
	assert.Equal(t, "/configured/templates", resolveTemplatesDir(cmd, dir, cfg),
		"config wins when the flag is left at its default")

	assert.Equal(t, "templates", resolveTemplatesDir(cmd, dir, config.Config{}),
		"flag default applies when nothing is configured")

	require.NoError(t, cmd.Flags().Set("templates-dir", "/flag/templates"))
	assert.Equal(t, "/flag/templates", resolveTemplatesDir(cmd, dir, cfg),
		"an explicit flag beats the config")
}

func TestCatalogProvider_NoSource(t *testing.T) {
	_, err := catalogProvider(config.Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no catalog source")
}
