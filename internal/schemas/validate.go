// Package schemas validates imported JSON documents against the embedded
// JSON Schemas.
package schemas

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed data/*.schema.json
var schemaFS embed.FS

const (
	ResumeSchema  = "resume.schema.json"
	CatalogSchema = "catalog.schema.json"
)

// ErrInvalidJSON is returned when the document is not JSON at all
var ErrInvalidJSON = errors.New("document is not valid JSON")

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or parsing the schema itself
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

// ValidateResume checks a resume document
func ValidateResume(doc []byte) error {
	return Validate(ResumeSchema, doc)
}

// ValidateCatalog checks a job catalog document
func ValidateCatalog(doc []byte) error {
	return Validate(CatalogSchema, doc)
}

// Validate checks doc against the named embedded schema
func Validate(name string, doc []byte) error {
	if !json.Valid(doc) {
		return ErrInvalidJSON
	}

	schema, err := schemaFS.ReadFile("data/" + name)
	if err != nil {
		return &SchemaLoadError{Name: name, Cause: err}
	}

	result, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(schema), gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return &SchemaLoadError{Name: name, Cause: err}
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
