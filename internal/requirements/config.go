// Package requirements classifies role skills into mandatory, preferred and
// optional requirement levels, merging employer declarations with market
// frequency data.
package requirements

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Default classification thresholds: a skill demanded by >=70% of market
// postings defaults to mandatory, 30-70% to preferred, below that optional.
const (
	DefaultMandatoryThreshold = 0.7
	DefaultPreferredThreshold = 0.3
)

// ConfigError reports an invalid classifier configuration. Thresholds are
// validated once at construction and never silently corrected.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("requirements config error: %s: %s", e.Field, e.Message)
}

// Config is the immutable threshold configuration for a Classifier.
// MandatoryThreshold must be strictly greater than PreferredThreshold and both
// must fall in (0,1].
type Config struct {
	MandatoryThreshold float64 `json:"mandatory_threshold" validate:"gt=0,lte=1"`
	PreferredThreshold float64 `json:"preferred_threshold" validate:"gt=0,lte=1"`
}

// DefaultConfig returns the default threshold configuration.
func DefaultConfig() Config {
	return Config{
		MandatoryThreshold: DefaultMandatoryThreshold,
		PreferredThreshold: DefaultPreferredThreshold,
	}
}

// newValidate builds a validator that reports fields by their JSON names.
func newValidate() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return validate
}

// Validate checks the threshold invariants. Per-field ranges are enforced by
// the struct tags; the threshold ordering is a cross-field rule checked here.
func (c Config) Validate() error {
	if err := newValidate().Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return &ConfigError{
				Field:   fe.Field(),
				Message: fmt.Sprintf("failed %q validation, got %v", fe.Tag(), fe.Value()),
			}
		}
		return err
	}
	if c.MandatoryThreshold <= c.PreferredThreshold {
		return &ConfigError{
			Field:   "mandatory_threshold",
			Message: fmt.Sprintf("must be greater than preferred_threshold (%v <= %v)",
				c.MandatoryThreshold, c.PreferredThreshold),
		}
	}
	return nil
}
