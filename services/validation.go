package services

import (
	"fmt"
	"strconv"
	"strings"
)

// Verdict is the outcome of validating one field value.
type Verdict struct {
	IsValid bool
	Message string
}

func valid() Verdict {
	return Verdict{IsValid: true}
}

func invalid(message string) Verdict {
	return Verdict{Message: message}
}

// ValidateField checks a raw value against its field definition. Values are
// trimmed before checking. Sections carry no value and checkboxes are valid
// in either state, so both always pass.
func ValidateField(field Field, rawValue string) Verdict {
	if field.Input == InputSection || field.Input == InputCheckbox {
		return valid()
	}

	value := strings.TrimSpace(rawValue)

	if field.Required && value == "" {
		return invalid("This field is required.")
	}
	if !field.Required && value == "" {
		return valid()
	}

	if field.Input == InputNumber {
		num, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return invalid("Please enter a valid number.")
		}
		if field.Min != nil && num < *field.Min {
			return invalid(fmt.Sprintf("Value must be at least %v.", *field.Min))
		}
		if field.Max != nil && num > *field.Max {
			return invalid(fmt.Sprintf("Value must be at most %v.", *field.Max))
		}
	}

	if field.MinLength > 0 && len(value) < field.MinLength {
		return invalid(fmt.Sprintf("Please enter at least %d characters.", field.MinLength))
	}
	if field.MaxLength > 0 && len(value) > field.MaxLength {
		return invalid(fmt.Sprintf("Please keep this under %d characters.", field.MaxLength))
	}

	return valid()
}

// ValidateInputs checks every value-carrying field of a service form and
// returns the per-field verdicts for the ones that failed.
func ValidateInputs(fields []Field, inputs map[string]string) map[string]Verdict {
	failures := map[string]Verdict{}
	for _, f := range fields {
		if f.Input == InputSection {
			continue
		}
		v := ValidateField(f, inputs[f.ID])
		if !v.IsValid {
			failures[f.ID] = v
		}
	}
	return failures
}
