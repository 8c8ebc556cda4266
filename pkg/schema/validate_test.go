package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/dynamic-profile/internal/domain/profile"
)

func TestValidateDocument_DefaultDocument(t *testing.T) {
	raw, err := json.Marshal(profile.Default())
	require.NoError(t, err)

	assert.NoError(t, ValidateDocument(raw))
}

func TestValidateDocument_LegacyDocument(t *testing.T) {
	raw := `{"personalInfo": {"name": "Old"}, "projects": null, "settings": {"enableAnimations": true}}`
	assert.NoError(t, ValidateDocument([]byte(raw)))
}

func TestValidateDocument_MissingPersonalInfo(t *testing.T) {
	err := ValidateDocument([]byte(`{"experience": []}`))
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Len(t, validationErr.Errors, 1)
	assert.Equal(t, "(root)", validationErr.Errors[0].Field)
}

func TestValidateDocument_WrongTypes(t *testing.T) {
	raw := `{"personalInfo": {"name": 7}, "settings": {"layout": "grid"}, "skills": {"frontend": [{"level": "high"}]}}`
	err := ValidateDocument([]byte(raw))
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.GreaterOrEqual(t, len(validationErr.Errors), 3)
	assert.Len(t, validationErr.Details(), len(validationErr.Errors))
}

func TestValidateDocument_NotJSON(t *testing.T) {
	err := ValidateDocument([]byte(`{"personalInfo":`))
	assert.Error(t, err)
}

func TestValidateGenerated(t *testing.T) {
	valid := `{
		"personalInfo": {"name": "Jane", "contact": {"email": "jane@example.com"}},
		"experience": [{"title": "Engineer", "company": "Acme", "skillsUsed": ["Go"]}],
		"skills": {"backend": [{"name": "Go", "level": 90}]}
	}`
	assert.NoError(t, ValidateGenerated([]byte(valid)))

	assert.Error(t, ValidateGenerated([]byte(`{}`)))
	assert.Error(t, ValidateGenerated([]byte(`{"experience": {"title": "x"}}`)))
	assert.Error(t, ValidateGenerated([]byte(`{"skills": {"tools": [{"level": 3}]}}`)))
}

func TestBrokenSchemaReportsLoadError(t *testing.T) {
	var loadErr *SchemaLoadError
	assert.ErrorAs(t, validate(compiler("broken", `{"type": 12}`), []byte(`{}`)), &loadErr)
	assert.Equal(t, "broken", loadErr.Name)
}
