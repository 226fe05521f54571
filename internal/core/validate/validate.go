// Package validate provides shared validation functions.
package validate

import (
	"fmt"
	"strings"
	"time"

	"github.com/hay-kot/criterio"
)

// Required validates a value is non-empty after trimming whitespace.
func Required(v string) error {
	if strings.TrimSpace(v) == "" {
		return fmt.Errorf("is required")
	}
	return nil
}

// RequiredField returns a criterio validation for a required string field.
func RequiredField(field, v string) error {
	return criterio.Run(field, v, Required)
}

// DateYMD validates a date in YYYY-MM-DD form. Empty is allowed; callers
// that need a value should combine with Required.
func DateYMD(v string) error {
	if v == "" {
		return nil
	}
	if _, err := time.ParseInLocation("2006-01-02", v, time.Local); err != nil {
		return fmt.Errorf("must be a YYYY-MM-DD date")
	}
	return nil
}

// DateYMDField returns a criterio validation for a YYYY-MM-DD date field.
func DateYMDField(field, v string) error {
	return criterio.Run(field, v, DateYMD)
}
