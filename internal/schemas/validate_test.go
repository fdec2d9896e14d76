package schemas

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const questionSchema = `{
	"type": "object",
	"required": ["id", "category", "question"],
	"properties": {
		"id": {"type": "string"},
		"category": {"type": "string", "enum": ["critical", "project_specific", "strengthen"]},
		"question": {"type": "string"},
		"scoring_weight": {"type": "number", "minimum": 0}
	}
}`

func TestValidateJSONString_Valid(t *testing.T) {
	doc := `{"id": "org_eligibility", "category": "critical", "question": "Who holds tenure?", "scoring_weight": 15}`
	assert.NoError(t, ValidateJSONString(questionSchema, doc))
}

func TestValidateJSONString_MissingRequiredField(t *testing.T) {
	doc := `{"id": "org_eligibility", "category": "critical"}`
	err := ValidateJSONString(questionSchema, doc)
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	require.NotEmpty(t, validationErr.Errors)
	assert.Contains(t, err.Error(), "question")
}

func TestValidateJSONString_EnumViolation(t *testing.T) {
	doc := `{"id": "q1", "category": "optional", "question": "x"}`
	err := ValidateJSONString(questionSchema, doc)
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
}

func TestValidateJSONString_MalformedSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": [`, `{}`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestValidateJSON_FileBased(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "question.schema.json")
	docPath := filepath.Join(dir, "question.json")

	require.NoError(t, os.WriteFile(schemaPath, []byte(questionSchema), 0644))
	require.NoError(t, os.WriteFile(docPath, []byte(`{"id": "q1", "category": "strengthen", "question": "x"}`), 0644))

	assert.NoError(t, ValidateJSON(schemaPath, docPath))
}

func TestValidateJSON_MissingFiles(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "question.schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(questionSchema), 0644))

	err := ValidateJSON(schemaPath, filepath.Join(dir, "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	err = ValidateJSON(filepath.Join(dir, "nope.schema.json"), schemaPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestResolveSchemaPath_NotFound(t *testing.T) {
	assert.Empty(t, ResolveSchemaPath("schemas/does-not-exist.schema.json"))
}
