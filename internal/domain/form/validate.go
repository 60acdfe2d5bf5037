package form

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError describes one invalid field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every field-level violation found in one pass.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// OrNil returns nil when no violation was recorded.
func (e *ValidationError) OrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// Has reports whether the given field has at least one violation.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

func fieldPath(i int) string {
	return fmt.Sprintf("fields[%d]", i)
}

var validate = validator.New()

// CheckboxSeparator splits checkbox answers submitted as a single string.
const CheckboxSeparator = ","

// ValidateAnswers checks submitted data (label -> value) against the
// definition: no unknown labels, required fields non-empty, option-backed
// values drawn from the declared options, typed values well formed.
func (d *Definition) ValidateAnswers(data map[string]any) error {
	verr := &ValidationError{}

	labels := make([]string, 0, len(data))
	for k := range data {
		labels = append(labels, k)
	}
	sort.Strings(labels)
	for _, label := range labels {
		if _, ok := d.FieldByLabel(label); !ok {
			verr.Add(label, "unknown field")
		}
	}

	for i := range d.Fields {
		f := &d.Fields[i]
		values, err := AnswerValues(f, data[f.Label])
		if err != nil {
			verr.Add(f.Label, err.Error())
			continue
		}
		if len(values) == 0 {
			if f.Required {
				verr.Add(f.Label, "is required")
			}
			continue
		}
		if msg := f.check(values); msg != "" {
			verr.Add(f.Label, msg)
		}
	}
	return verr.OrNil()
}

// AnswerValues normalizes a raw answer into its non-empty values. Checkbox
// answers may be a list or a comma-delimited string; every other type takes
// a single string (numbers are accepted for number fields).
func AnswerValues(f *Field, raw any) ([]string, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case string:
		if f.Type == FieldCheckbox {
			return splitNonEmpty(strings.Split(v, CheckboxSeparator)), nil
		}
		if strings.TrimSpace(v) == "" {
			return nil, nil
		}
		return []string{v}, nil
	case []string:
		if f.Type != FieldCheckbox {
			return nil, fmt.Errorf("must be a single value")
		}
		return splitNonEmpty(v), nil
	case []any:
		if f.Type != FieldCheckbox {
			return nil, fmt.Errorf("must be a single value")
		}
		items := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("must be a list of strings")
			}
			items = append(items, s)
		}
		return splitNonEmpty(items), nil
	case float64:
		if f.Type == FieldNumber {
			return []string{strconv.FormatFloat(v, 'f', -1, 64)}, nil
		}
	case int:
		if f.Type == FieldNumber {
			return []string{strconv.Itoa(v)}, nil
		}
	}
	return nil, fmt.Errorf("must be a string")
}

// NormalizeAnswers returns data in its stored shape: checkbox answers as a
// list of choices, every other answer as a single string. Unanswered fields
// are dropped. data is expected to have passed ValidateAnswers.
func (d *Definition) NormalizeAnswers(data map[string]any) map[string]any {
	out := make(map[string]any, len(data))
	for i := range d.Fields {
		f := &d.Fields[i]
		values, err := AnswerValues(f, data[f.Label])
		if err != nil || len(values) == 0 {
			continue
		}
		if f.Type == FieldCheckbox {
			out[f.Label] = values
		} else {
			out[f.Label] = values[0]
		}
	}
	return out
}

func (f *Field) check(values []string) string {
	switch f.Type {
	case FieldSelect, FieldRadio:
		if len(values) != 1 {
			return "exactly one option must be chosen"
		}
		if !f.hasOption(values[0]) {
			return fmt.Sprintf("%q is not one of the options", values[0])
		}
	case FieldCheckbox:
		seen := make(map[string]bool, len(values))
		for _, v := range values {
			if !f.hasOption(v) {
				return fmt.Sprintf("%q is not one of the options", v)
			}
			if seen[v] {
				return fmt.Sprintf("%q is chosen more than once", v)
			}
			seen[v] = true
		}
	case FieldNumber:
		if _, err := strconv.ParseFloat(strings.TrimSpace(values[0]), 64); err != nil {
			return "must be a number"
		}
	case FieldEmail:
		if validate.Var(strings.TrimSpace(values[0]), "email") != nil {
			return "must be a valid email address"
		}
	case FieldDate:
		if validate.Var(strings.TrimSpace(values[0]), "datetime=2006-01-02") != nil {
			return "must be a date in YYYY-MM-DD format"
		}
	}
	return ""
}

func (f *Field) hasOption(v string) bool {
	for _, o := range f.Options {
		if o == v {
			return true
		}
	}
	return false
}

func splitNonEmpty(items []string) []string {
	out := make([]string, 0, len(items))
	for _, s := range items {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}
