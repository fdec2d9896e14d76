package templates

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/ecoproject/funding-matcher/internal/types"
)

// Manager loads template documents from a directory and caches parsed results.
// It is safe for concurrent use.
type Manager struct {
	dir string

	mu    sync.Mutex
	cache map[string]*types.FundingTemplate
}

// NewManager creates a Manager that reads template documents from dir.
func NewManager(dir string) *Manager {
	return &Manager{
		dir:   dir,
		cache: make(map[string]*types.FundingTemplate),
	}
}

// Get returns the parsed template with the given id, loading and validating it
// from disk on first access. It returns (nil, nil) when no template document
// exists for the id, and an error when the document is present but invalid.
func (m *Manager) Get(templateID string) (*types.FundingTemplate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if tmpl, ok := m.cache[templateID]; ok {
		return tmpl, nil
	}

	path := filepath.Join(m.dir, templateID+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read template %s: %w", templateID, err)
	}

	tmpl, err := ParseTemplate(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", templateID, err)
	}

	m.cache[templateID] = tmpl
	return tmpl, nil
}

// GetByProgramName resolves a catalog program name to its template document and
// loads it. It returns (nil, nil) when the program has no template.
func (m *Manager) GetByProgramName(programName string) (*types.FundingTemplate, error) {
	id := TemplateID(programName)
	if id == "" {
		return nil, nil
	}
	return m.Get(id)
}
