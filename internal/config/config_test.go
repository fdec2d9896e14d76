package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeConfigFile(t, `{
		"airtable_pat": "pat-token",
		"airtable_base_id": "appBASE",
		"templates_dir": "templates",
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "pat-token", cfg.AirtablePAT)
	assert.Equal(t, "appBASE", cfg.AirtableBaseID)
	assert.Equal(t, "templates", cfg.TemplatesDir)
	assert.True(t, cfg.Verbose)
	assert.Empty(t, cfg.FundingTable, "table names default only at merge time")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadConfig_MalformedJSON(t *testing.T) {
	path := writeConfigFile(t, `{"airtable_pat": `)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate_MutuallyExclusiveSources(t *testing.T) {
	cfg := &Config{CatalogFile: "catalog.json", AirtableBaseID: "appBASE"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestValidate_AirtableRequiresToken(t *testing.T) {
	cfg := &Config{AirtableBaseID: "appBASE"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "airtable_pat")
}

func TestValidate_MissingCatalogFile(t *testing.T) {
	cfg := &Config{CatalogFile: filepath.Join(t.TempDir(), "absent.json")}
	assert.Error(t, cfg.Validate())
}

func TestValidate_ExistingPaths(t *testing.T) {
	dir := t.TempDir()
	catalogPath := filepath.Join(dir, "catalog.json")
	require.NoError(t, os.WriteFile(catalogPath, []byte("[]"), 0o644))

	cfg := &Config{CatalogFile: catalogPath, TemplatesDir: dir}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := &Config{AirtablePAT: "explicit-token"}
	merged := cfg.MergeWithDefaults(Config{
		AirtablePAT:    "default-token",
		AirtableBaseID: "appBASE",
		TemplatesDir:   "templates",
	})

	assert.Equal(t, "explicit-token", merged.AirtablePAT, "explicit values win")
	assert.Equal(t, "appBASE", merged.AirtableBaseID)
	assert.Equal(t, "templates", merged.TemplatesDir)
	assert.Equal(t, DefaultFundingTable, merged.FundingTable)
	assert.Equal(t, DefaultProjectsTable, merged.ProjectsTable)
}

func TestMergeWithDefaults_TableOverrides(t *testing.T) {
	cfg := &Config{FundingTable: "Custom Programs"}
	merged := cfg.MergeWithDefaults(Config{ProjectsTable: "Custom Submissions"})

	assert.Equal(t, "Custom Programs", merged.FundingTable)
	assert.Equal(t, "Custom Submissions", merged.ProjectsTable)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("AIRTABLE_PAT", "env-token")
	t.Setenv("AIRTABLE_BASE_ID", "appENV")
	t.Setenv("DATABASE_URL", "postgres://localhost/matcher")

	cfg := &Config{AirtablePAT: "explicit-token"}
	cfg.FromEnv()

	assert.Equal(t, "explicit-token", cfg.AirtablePAT, "explicit values win over env")
	assert.Equal(t, "appENV", cfg.AirtableBaseID)
	assert.Equal(t, "postgres://localhost/matcher", cfg.DatabaseURL)
}
