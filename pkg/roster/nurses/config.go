package nurses

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Config sizes a roster instance. Shift 0 is reserved to mean "not
// working", so a nurse's day always resolves to exactly one of Shifts
// slots, off-day included.
//
// The coverage constraint fills every (day, shift) slot with exactly one
// nurse, which is only satisfiable when Nurses equals Shifts. Build does
// not enforce that coupling: an instance with Nurses != Shifts still
// builds, and the engine reports it infeasible.
type Config struct {
	Nurses int `mapstructure:"nurses"`
	Shifts int `mapstructure:"shifts"`
	Days   int `mapstructure:"days"`

	// Off-day window per nurse over the cycle.
	MinDaysOff int `mapstructure:"minDaysOff"`
	MaxDaysOff int `mapstructure:"maxDaysOff"`

	// At most this many distinct nurses may ever be assigned a given
	// working shift during the cycle.
	MaxNursesPerShift int `mapstructure:"maxNursesPerShift"`
}

// DefaultConfig returns the reference instance: four nurses rotating
// over three working shifts plus the off shift, across a seven-day cycle.
func DefaultConfig() Config {
	return Config{
		Nurses:            4,
		Shifts:            4,
		Days:              7,
		MinDaysOff:        1,
		MaxDaysOff:        2,
		MaxNursesPerShift: 2,
	}
}

// Validate checks structural sanity only. Feasibility is not pre-checked:
// an empty off-day window or mismatched nurse/shift counts build fine and
// come back from the engine as infeasible.
func (c Config) Validate() error {
	if c.Nurses <= 0 {
		return fmt.Errorf("nurse count must be positive, got %d", c.Nurses)
	}
	if c.Shifts <= 0 {
		return fmt.Errorf("shift count must be positive, got %d", c.Shifts)
	}
	if c.Days <= 0 {
		return fmt.Errorf("day count must be positive, got %d", c.Days)
	}
	if c.MinDaysOff < 0 || c.MaxDaysOff < 0 {
		return fmt.Errorf("off-day bounds must be non-negative, got [%d,%d]", c.MinDaysOff, c.MaxDaysOff)
	}
	if c.MaxNursesPerShift < 0 {
		return fmt.Errorf("per-shift nurse cap must be non-negative, got %d", c.MaxNursesPerShift)
	}
	return nil
}

// ConfigFromMap decodes loosely-typed configuration (e.g. parsed JSON)
// over the defaults, so partial files only override what they name.
func ConfigFromMap(raw map[string]interface{}) (Config, error) {
	cfg := DefaultConfig()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &cfg,
		ErrorUnused: true,
	})
	if err != nil {
		return Config{}, err
	}
	if err := decoder.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("invalid roster config: %w", err)
	}
	return cfg, nil
}
