// Package gate evaluates candidate skill evidence against classified role
// requirements, applying the mandatory hard-reject rule and producing a
// bounded score with human-readable reasons.
package gate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Default gate thresholds and score weights. A mandatory skill counts as
// covered only with real evidence (>=0.5); dropping below 80% mandatory
// coverage is an automatic reject with the score capped at 30. The cap is a
// cap rather than a zero so rejected candidates keep their relative ranking
// for later human review.
const (
	DefaultMinSkillScore        = 0.5
	DefaultMinMandatoryCoverage = 0.8
	DefaultHardFailScoreCap     = 30
	DefaultGoThreshold          = 70
	DefaultHoldThreshold        = 40

	// Base score weights: mandatory coverage dominates preferred coverage.
	DefaultMandatoryWeight = 0.7
	DefaultPreferredWeight = 0.3
)

// ConfigError reports an invalid scorer configuration. Validated once at
// construction, never silently corrected.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("gate config error: %s: %s", e.Field, e.Message)
}

// ScorerConfig is the immutable configuration for a Scorer.
type ScorerConfig struct {
	MinSkillScore        float64 `json:"min_skill_score" validate:"gte=0,lte=1"`
	MinMandatoryCoverage float64 `json:"min_mandatory_coverage" validate:"gte=0,lte=1"`
	HardFailScoreCap     int     `json:"hard_fail_score_cap" validate:"gte=0,lte=100"`
	GoThreshold          int     `json:"go_threshold" validate:"gte=0,lte=100"`
	HoldThreshold        int     `json:"hold_threshold" validate:"gte=0,lte=100"`
	MandatoryWeight      float64 `json:"mandatory_weight" validate:"gte=0,lte=1"`
	PreferredWeight      float64 `json:"preferred_weight" validate:"gte=0,lte=1"`
}

// DefaultScorerConfig returns the default gate configuration.
func DefaultScorerConfig() ScorerConfig {
	return ScorerConfig{
		MinSkillScore:        DefaultMinSkillScore,
		MinMandatoryCoverage: DefaultMinMandatoryCoverage,
		HardFailScoreCap:     DefaultHardFailScoreCap,
		GoThreshold:          DefaultGoThreshold,
		HoldThreshold:        DefaultHoldThreshold,
		MandatoryWeight:      DefaultMandatoryWeight,
		PreferredWeight:      DefaultPreferredWeight,
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

// Validate checks the scorer configuration invariants. Per-field ranges are
// enforced by the struct tags; threshold ordering and the weight sum are
// cross-field rules checked here.
func (c ScorerConfig) Validate() error {
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
	if c.GoThreshold <= c.HoldThreshold {
		return &ConfigError{
			Field:   "go_threshold",
			Message: fmt.Sprintf("must be greater than hold_threshold (%d <= %d)",
				c.GoThreshold, c.HoldThreshold),
		}
	}
	if c.MandatoryWeight < 0 || c.PreferredWeight < 0 ||
		c.MandatoryWeight+c.PreferredWeight > 1.0000001 {
		return &ConfigError{
			Field:   "mandatory_weight",
			Message: fmt.Sprintf("weights must be non-negative and sum to at most 1 (%v + %v)",
				c.MandatoryWeight, c.PreferredWeight),
		}
	}
	return nil
}
