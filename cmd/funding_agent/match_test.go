package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecoproject/funding-matcher/internal/types"
)

const testIntakeJSON = `{
	"organization": "Nadleh Whut'en First Nation",
	"applicant_type": "First Nation",
	"region": "Omineca",
	"budget_range": "$50–250k",
	"stage": "Planning",
	"project_types": ["Reforestation"],
	"themes": ["Climate adaptation"],
	"description": "Replanting beetle-killed stands with climate-adapted species"
}`

const testCatalogJSON = `[
	{
		"id": "rec001",
		"fields": {
			"Program_Name": "Forest Carbon Initiative",
			"Eligible_Regions": ["Omineca", "Skeena"],
			"Eligible_Applicants": ["First Nation", "Non-profit / Charity"],
			"Eligible_Project_Types": ["Reforestation"],
			"Themes": ["Climate adaptation"]
		}
	},
	{
		"id": "rec002",
		"fields": {
			"Program_Name": "Urban Parks Fund",
			"Eligible_Regions": ["Metro Vancouver"],
			"Eligible_Applicants": ["Municipality / Regional District"],
			"Eligible_Project_Types": ["Park development"]
		}
	}
]`

func TestMatchCommand_MissingIntakeFlag(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	outputFile := filepath.Join(tmpDir, "matches.json")

	cmd := exec.Command(binaryPath, "match", "--out", outputFile)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required")
}

func TestMatchCommand_MissingOutputFlag(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "match", "--intake", "intake.json")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required")
}

func TestMatchCommand_ValidInput(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	intakeFile := filepath.Join(tmpDir, "intake.json")
	catalogFile := filepath.Join(tmpDir, "catalog.json")
	outputFile := filepath.Join(tmpDir, "matches.json")

	require.NoError(t, os.WriteFile(intakeFile, []byte(testIntakeJSON), 0644))
	require.NoError(t, os.WriteFile(catalogFile, []byte(testCatalogJSON), 0644))

	cmd := exec.Command(binaryPath, "match",
		"--intake", intakeFile,
		"--catalog", catalogFile,
		"--out", outputFile)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "command output: %s", string(output))

	content, err := os.ReadFile(outputFile)
	require.NoError(t, err)

	var matches types.RankedMatches
	require.NoError(t, json.Unmarshal(content, &matches))
	require.Len(t, matches.Ranked, 2)

	assert.Equal(t, "Forest Carbon Initiative", matches.Ranked[0].ProgramName,
		"the program matching region, applicant, type, and theme ranks first")
	assert.Greater(t, matches.Ranked[0].Score, matches.Ranked[1].Score)
}

func TestMatchCommand_ConfigFile(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	intakeFile := filepath.Join(tmpDir, "intake.json")
	catalogFile := filepath.Join(tmpDir, "catalog.json")
	configFile := filepath.Join(tmpDir, "config.json")
	outputFile := filepath.Join(tmpDir, "matches.json")

	require.NoError(t, os.WriteFile(intakeFile, []byte(testIntakeJSON), 0644))
	require.NoError(t, os.WriteFile(catalogFile, []byte(testCatalogJSON), 0644))
	configJSON := `{"catalog_file": "` + catalogFile + `"}`
	require.NoError(t, os.WriteFile(configFile, []byte(configJSON), 0644))

	cmd := exec.Command(binaryPath, "match",
		"--config", configFile,
		"--intake", intakeFile,
		"--out", outputFile)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "command output: %s", string(output))

	content, err := os.ReadFile(outputFile)
	require.NoError(t, err)

	var matches types.RankedMatches
	require.NoError(t, json.Unmarshal(content, &matches))
	require.Len(t, matches.Ranked, 2, "the configured catalog file is used without --catalog")
	assert.Equal(t, "Forest Carbon Initiative", matches.Ranked[0].ProgramName)
}

func TestMatchCommand_ConfigVerboseShowsProgramDetails(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	intakeFile := filepath.Join(tmpDir, "intake.json")
	catalogFile := filepath.Join(tmpDir, "catalog.json")
	configFile := filepath.Join(tmpDir, "config.json")
	outputFile := filepath.Join(tmpDir, "matches.json")

	detailedCatalog := `[
		{
			"id": "rec001",
			"fields": {
				"Program_Name": "Forest Carbon Initiative",
				"Eligible_Regions": ["Omineca"],
				"Max_Grant_Amount": "$500,000",
				"Application_Deadline": "rolling",
				"Competitiveness_Level": "Medium"
			}
		}
	]`
	require.NoError(t, os.WriteFile(intakeFile, []byte(testIntakeJSON), 0644))
	require.NoError(t, os.WriteFile(catalogFile, []byte(detailedCatalog), 0644))
	configJSON := `{"catalog_file": "` + catalogFile + `", "verbose": true}`
	require.NoError(t, os.WriteFile(configFile, []byte(configJSON), 0644))

	cmd := exec.Command(binaryPath, "match",
		"--config", configFile,
		"--intake", intakeFile,
		"--out", outputFile)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "command output: %s", string(output))

	text := string(output)
	assert.Contains(t, text, "Loaded config from:")
	assert.Contains(t, text, "TOP MATCHES")
	assert.Contains(t, text, "$500,000")
	assert.Contains(t, text, "Due: rolling")
	assert.Contains(t, text, "Competitiveness: Medium")
}

func TestMatchCommand_TopLimit(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	intakeFile := filepath.Join(tmpDir, "intake.json")
	catalogFile := filepath.Join(tmpDir, "catalog.json")
	outputFile := filepath.Join(tmpDir, "matches.json")

	require.NoError(t, os.WriteFile(intakeFile, []byte(testIntakeJSON), 0644))
	require.NoError(t, os.WriteFile(catalogFile, []byte(testCatalogJSON), 0644))

	cmd := exec.Command(binaryPath, "match",
		"--intake", intakeFile,
		"--catalog", catalogFile,
		"--top", "1",
		"--out", outputFile)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "command output: %s", string(output))

	content, err := os.ReadFile(outputFile)
	require.NoError(t, err)

	var matches types.RankedMatches
	require.NoError(t, json.Unmarshal(content, &matches))
	assert.Len(t, matches.Ranked, 1)
}

func TestMatchCommand_InvalidIntake(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	intakeFile := filepath.Join(tmpDir, "intake.json")
	catalogFile := filepath.Join(tmpDir, "catalog.json")
	outputFile := filepath.Join(tmpDir, "matches.json")

	require.NoError(t, os.WriteFile(intakeFile, []byte(`{"applicant_type": "Martian"}`), 0644))
	require.NoError(t, os.WriteFile(catalogFile, []byte(testCatalogJSON), 0644))

	cmd := exec.Command(binaryPath, "match",
		"--intake", intakeFile,
		"--catalog", catalogFile,
		"--out", outputFile)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "applicant_type")
}
