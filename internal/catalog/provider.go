// Package catalog loads the funding program catalog that scoring runs against.
// Programs come either from an Airtable base or from a local JSON snapshot.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ecoproject/funding-matcher/internal/types"
)

// Provider supplies the funding programs to score an intake against.
type Provider interface {
	ListPrograms(ctx context.Context) ([]types.FundingProgram, error)
}

// FileProvider reads a catalog snapshot from a local JSON file. The file holds an
// array of records in the same shape the hosted catalog returns: an id plus a
// free-form fields object.
type FileProvider struct {
	Path string
}

// NewFileProvider creates a provider backed by a JSON snapshot file.
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{Path: path}
}

type snapshotRecord struct {
	ID     string         `json:"id"`
	Fields map[string]any `json:"fields"`
}

// ListPrograms loads every program from the snapshot file.
func (p *FileProvider) ListPrograms(_ context.Context) ([]types.FundingProgram, error) {
	data, err := os.ReadFile(p.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog snapshot %s: %w", p.Path, err)
	}

	var records []snapshotRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse catalog snapshot %s: %w", p.Path, err)
	}

	programs := make([]types.FundingProgram, 0, len(records))
	for _, record := range records {
		if record.ID == "" {
			continue
		}
		fields := record.Fields
		if fields == nil {
			fields = map[string]any{}
		}
		programs = append(programs, types.FundingProgram{ID: record.ID, Fields: fields})
	}
	return programs, nil
}
