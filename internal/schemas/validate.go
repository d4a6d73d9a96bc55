// Package schemas provides JSON Schema validation for the wire shapes the
// API emits. The schemas double as the contract documentation for clients.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed assessment_set.schema.json
var assessmentSetSchema string

//go:embed compatibility_report.schema.json
var compatibilityReportSchema string

// ValidationError represents a schema validation failure with field paths.
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field.
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

// ValidateAssessmentSet checks a JSON document against the assessment set schema.
func ValidateAssessmentSet(document []byte) error {
	return validate(assessmentSetSchema, document)
}

// ValidateCompatibilityReport checks a JSON document against the report schema.
func ValidateCompatibilityReport(document []byte) error {
	return validate(compatibilityReportSchema, document)
}

func validate(schema string, document []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(schema)
	documentLoader := gojsonschema.NewBytesLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation failed during load: %w", err)
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
