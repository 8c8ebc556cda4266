// Package schema validates imported profile documents and AI-generated
// profiles against embedded JSON Schemas.
package schema

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed profile.schema.json
var profileSchema string

//go:embed generated.schema.json
var generatedSchema string

// ValidationError lists every schema violation found in a document.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is a single violation at a JSON field path.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// Details renders the violations as "field: message" strings.
func (ve *ValidationError) Details() []string {
	out := make([]string, 0, len(ve.Errors))
	for _, e := range ve.Errors {
		out = append(out, e.Field+": "+e.Message)
	}
	return out
}

// SchemaLoadError means an embedded schema could not be compiled.
type SchemaLoadError struct {
	Name  string
	Cause error
}

func (e *SchemaLoadError) Error() string {
	return fmt.Sprintf("failed to load schema %s: %v", e.Name, e.Cause)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func compiler(name, content string) func() (*gojsonschema.Schema, error) {
	return sync.OnceValues(func() (*gojsonschema.Schema, error) {
		s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(content))
		if err != nil {
			return nil, &SchemaLoadError{Name: name, Cause: err}
		}
		return s, nil
	})
}

var (
	profileCompiled   = compiler("profile", profileSchema)
	generatedCompiled = compiler("generated", generatedSchema)
)

// ValidateDocument checks raw JSON against the profile document schema.
// Documents written before the schema version field existed are accepted.
func ValidateDocument(raw []byte) error {
	return validate(profileCompiled, raw)
}

// ValidateGenerated checks an AI response against the generated-profile schema.
func ValidateGenerated(raw []byte) error {
	return validate(generatedCompiled, raw)
}

func validate(load func() (*gojsonschema.Schema, error), raw []byte) error {
	s, err := load()
	if err != nil {
		return err
	}
	result, err := s.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return &ValidationError{Errors: []FieldError{{Field: "(root)", Message: err.Error()}}}
	}
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
