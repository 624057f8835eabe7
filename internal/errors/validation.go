package errors

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// MetaFields is the Meta key holding the per-field messages of a
// validation failure.
const MetaFields = "fields"

// ValidationBuilder collects per-field problems and turns them into a
// single InvalidArgument error.
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", in.Name, vb)
//	if err := vb.Build(); err != nil {
//		return nil, err
//	}
type ValidationBuilder struct {
	fields map[string][]string
}

// NewValidationBuilder returns an empty builder
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{fields: make(map[string][]string)}
}

// Field records a problem with field
func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	vb.fields[field] = append(vb.fields[field], message)
	return vb
}

// Fieldf is Field with a formatted message
func (vb *ValidationBuilder) Fieldf(field, format string, args ...any) *ValidationBuilder {
	return vb.Field(field, fmt.Sprintf(format, args...))
}

// RequiredField records that field is missing
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

// Build returns nil when nothing was recorded. Otherwise the error message
// lists every field in name order and Meta[MetaFields] carries a copy of
// the messages.
func (vb *ValidationBuilder) Build() error {
	if len(vb.fields) == 0 {
		return nil
	}

	names := make([]string, 0, len(vb.fields))
	fields := make(map[string][]string, len(vb.fields))
	for name, msgs := range vb.fields {
		names = append(names, name)
		fields[name] = append([]string(nil), msgs...)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("validation failed: ")
	for i, name := range names {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(strings.Join(fields[name], ", "))
	}

	return InvalidArgument(b.String()).WithMeta(MetaFields, fields)
}

// ValidateRequired records field when value is blank
func ValidateRequired(field, value string, vb *ValidationBuilder) {
	if strings.TrimSpace(value) == "" {
		vb.RequiredField(field)
	}
}

// ValidateMaxLength records field when value has more than maxRunes characters
func ValidateMaxLength(field, value string, maxRunes int, vb *ValidationBuilder) {
	if utf8.RuneCountInString(value) > maxRunes {
		vb.Fieldf(field, "must be no more than %d characters", maxRunes)
	}
}

// ValidatePositive records field when an identifier is not greater than zero
func ValidatePositive(field string, value int64, vb *ValidationBuilder) {
	if value <= 0 {
		vb.Fieldf(field, "must be a positive integer, got %d", value)
	}
}

// ValidateRange records field when value falls outside [lo, hi]
func ValidateRange(field string, value, lo, hi int, vb *ValidationBuilder) {
	if value < lo || value > hi {
		vb.Fieldf(field, "must be between %d and %d", lo, hi)
	}
}
