package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileProvider_ListPrograms(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	snapshot := `[
		{"id": "rec001", "fields": {"Program_Name": "Forest Carbon Initiative", "Max_Grant_Amount": 500000}},
		{"id": "rec002", "fields": {"Program_Name": "Salmon Habitat Fund"}},
		{"id": "", "fields": {"Program_Name": "No ID"}},
		{"id": "rec003"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(snapshot), 0o644))

	programs, err := NewFileProvider(path).ListPrograms(context.Background())
	require.NoError(t, err)
	require.Len(t, programs, 3, "records without an id are skipped")

	assert.Equal(t, "rec001", programs[0].ID)
	assert.Equal(t, "Forest Carbon Initiative", programs[0].Name())
	assert.Equal(t, "Salmon Habitat Fund", programs[1].Name())
	assert.NotNil(t, programs[2].Fields, "missing fields decode to an empty map")
}

func TestFileProvider_MissingFile(t *testing.T) {
	_, err := NewFileProvider(filepath.Join(t.TempDir(), "absent.json")).ListPrograms(context.Background())
	assert.Error(t, err)
}

func TestFileProvider_MalformedSnapshot(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"not": "an array"}`), 0o644))

	_, err := NewFileProvider(path).ListPrograms(context.Background())
	assert.Error(t, err)
}

func TestAirtableProvider_ListProgramsPaginates(t *testing.T) {
	var authHeaders []string
	var offsets []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeaders = append(authHeaders, r.Header.Get("Authorization"))
		offset := r.URL.Query().Get("offset")
		offsets = append(offsets, offset)

		w.Header().Set("Content-Type", "application/json")
		if offset == "" {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"records": []map[string]any{
					{"id": "rec001", "fields": map[string]any{"Program_Name": "Forest Carbon Initiative"}},
					{"id": "rec002", "fields": map[string]any{"Program_Name": "Salmon Habitat Fund"}},
				},
				"offset": "page2",
			})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"records": []map[string]any{
				{"id": "rec003", "fields": map[string]any{"Program_Name": "Watershed Security Fund"}},
			},
		})
	}))
	defer server.Close()

	provider := NewAirtableProvider("test-token", "appBASE", "Funding Programs")
	provider.BaseURL = server.URL

	programs, err := provider.ListPrograms(context.Background())
	require.NoError(t, err)
	require.Len(t, programs, 3)

	assert.Equal(t, "Forest Carbon Initiative", programs[0].Name())
	assert.Equal(t, "Watershed Security Fund", programs[2].Name())
	assert.Equal(t, []string{"Bearer test-token", "Bearer test-token"}, authHeaders)
	assert.Equal(t, []string{"", "page2"}, offsets)
}

func TestAirtableProvider_HTTPErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "NOT_AUTHORIZED"}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	provider := NewAirtableProvider("bad-token", "appBASE", "Funding Programs")
	provider.BaseURL = server.URL

	_, err := provider.ListPrograms(context.Background())
	require.Error(t, err)

	var catalogErr *Error
	require.True(t, errors.As(err, &catalogErr))
	assert.Equal(t, "Funding Programs", catalogErr.Table)
	assert.Contains(t, catalogErr.Message, "401")
}

func TestAirtableProvider_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	provider := NewAirtableProvider("token", "appBASE", "Funding Programs")
	provider.BaseURL = server.URL

	_, err := provider.ListPrograms(context.Background())
	assert.Error(t, err)
}
