package config

import (
	"errors"
	"fmt"
	"math"
)

// DefaultJumpHeight is the apex height a jump is calibrated to reach.
const DefaultJumpHeight = 6.0

// Tuning holds the named movement options an actor exposes to the host.
// Every field can be changed independently between simulation runs.
type Tuning struct {
	MaxSpeed           float64 `mapstructure:"max_speed" yaml:"max_speed" json:"maxSpeed"`
	MaxAcceleration    float64 `mapstructure:"max_acceleration" yaml:"max_acceleration" json:"maxAcceleration"`
	MaxAirAcceleration float64 `mapstructure:"max_air_acceleration" yaml:"max_air_acceleration" json:"maxAirAcceleration"`
	AlignmentSpeed     float64 `mapstructure:"alignment_speed" yaml:"alignment_speed" json:"alignmentSpeed"`
	LinearDamping      float64 `mapstructure:"linear_damping" yaml:"linear_damping" json:"linearDamping"`
	MaxJumpCount       int     `mapstructure:"max_jump_count" yaml:"max_jump_count" json:"maxJumpCount"`
	TargetJumpHeight   float64 `mapstructure:"target_jump_height" yaml:"target_jump_height" json:"targetJumpHeight"`
}

// DefaultTuning returns the stock movement options.
func DefaultTuning() Tuning {
	return Tuning{
		MaxSpeed:           5,
		MaxAcceleration:    10,
		MaxAirAcceleration: 5,
		AlignmentSpeed:     5,
		LinearDamping:      0, // no air resistance
		MaxJumpCount:       3,
		TargetJumpHeight:   DefaultJumpHeight,
	}
}

// Error describes one rejected configuration value.
type Error struct {
	Field  string
	Value  any
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("config: %s=%v: %s", e.Field, e.Value, e.Reason)
}

// Validate reports every out-of-range option, joined into one error.
func (t Tuning) Validate() error {
	var errs []error
	nonNegative := func(field string, v float64) {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			errs = append(errs, &Error{Field: field, Value: v, Reason: "must be finite"})
			return
		}
		if v < 0 {
			errs = append(errs, &Error{Field: field, Value: v, Reason: "must not be negative"})
		}
	}

	nonNegative("max_speed", t.MaxSpeed)
	nonNegative("max_acceleration", t.MaxAcceleration)
	nonNegative("max_air_acceleration", t.MaxAirAcceleration)
	nonNegative("alignment_speed", t.AlignmentSpeed)
	nonNegative("linear_damping", t.LinearDamping)

	if t.MaxJumpCount < 0 {
		errs = append(errs, &Error{Field: "max_jump_count", Value: t.MaxJumpCount, Reason: "must not be negative"})
	}
	if math.IsNaN(t.TargetJumpHeight) || math.IsInf(t.TargetJumpHeight, 0) || t.TargetJumpHeight <= 0 {
		errs = append(errs, &Error{Field: "target_jump_height", Value: t.TargetJumpHeight, Reason: "must be a positive finite number"})
	}

	return errors.Join(errs...)
}
