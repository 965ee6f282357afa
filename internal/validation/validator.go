// Package validation turns raw form values into the numeric feature vector
// a model expects. It is the only place untyped input becomes numbers.
package validation

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/healthgate/internal/common"
	"github.com/dmitrijs2005/healthgate/internal/diseases"
)

// Kind classifies a ValidationError.
type Kind int

const (
	FieldCount Kind = iota + 1
	MissingField
	NotNumeric
)

func (k Kind) String() string {
	switch k {
	case FieldCount:
		return "field_count"
	case MissingField:
		return "missing_field"
	case NotNumeric:
		return "not_numeric"
	default:
		return "unknown"
	}
}

// ValidationError describes the first problem found in a submission.
// Index is zero-based; Field is the feature name at that index.
type ValidationError struct {
	Kind  Kind
	Index int
	Field string
	Value string
	Want  int
	Got   int
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case FieldCount:
		return fmt.Sprintf("expected %d fields, got %d", e.Want, e.Got)
	case MissingField:
		return fmt.Sprintf("field %d (%s) must be filled", e.Index+1, e.Field)
	case NotNumeric:
		return fmt.Sprintf("field %d (%s): %q is not a number", e.Index+1, e.Field, e.Value)
	default:
		return "invalid input"
	}
}

// Unwrap lets callers match the kind with errors.Is against the common
// sentinels.
func (e *ValidationError) Unwrap() error {
	switch e.Kind {
	case FieldCount:
		return common.ErrFieldCount
	case MissingField:
		return common.ErrMissingField
	case NotNumeric:
		return common.ErrNotNumeric
	default:
		return nil
	}
}

// Validate checks raw against spec and returns the parsed vector in the same
// order. Rules run in order and the first failure wins: field count, then
// per field blank check and decimal parse.
//
// Value ranges are not checked. A 5 in a 0/1 flag passes through.
func Validate(spec *diseases.Spec, raw []string) ([]float64, error) {
	if len(raw) != len(spec.Fields) {
		return nil, &ValidationError{Kind: FieldCount, Index: -1, Want: len(spec.Fields), Got: len(raw)}
	}

	trimmed := make([]string, len(raw))
	for i, v := range raw {
		trimmed[i] = strings.TrimSpace(v)
		if trimmed[i] == "" {
			return nil, &ValidationError{Kind: MissingField, Index: i, Field: spec.Fields[i].Name}
		}
	}

	out := make([]float64, len(raw))
	for i, v := range trimmed {
		f, ok := parseDecimal(v)
		if !ok {
			return nil, &ValidationError{Kind: NotNumeric, Index: i, Field: spec.Fields[i].Name, Value: raw[i]}
		}
		out[i] = f
	}
	return out, nil
}

// parseDecimal accepts finite decimal numbers, including exponent notation.
// Hex floats, digit separators, NaN and infinities are rejected.
func parseDecimal(s string) (float64, bool) {
	if strings.ContainsRune(s, '_') {
		return 0, false
	}
	unsigned := strings.TrimLeft(s, "+-")
	if len(unsigned) > 1 && unsigned[0] == '0' && (unsigned[1] == 'x' || unsigned[1] == 'X') {
		return 0, false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
