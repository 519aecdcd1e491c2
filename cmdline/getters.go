package cmdline

import (
	"fmt"
	"strconv"
	"time"
)

// IsSet reports whether name has a resolved value: bound during the last
// parse, present as a flag, or seeded from a default.
func (a *Args) IsSet(name string) bool {
	_, ok := a.values[name]
	return ok
}

// Get returns the raw string value for name, or "" when it was never set.
// Flags resolve to "" as a presence marker, so callers should consult IsSet
// before reading anything that is neither required nor defaulted.
func (a *Args) Get(name string) string {
	return a.values[name]
}

// GetAsInt converts the stored value to an int. Conversion failure and
// absence are both reported as errors, distinct from a parse-phase failure.
func (a *Args) GetAsInt(name string) (int, error) {
	v, err := a.stored(name)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("argument %s: %w", name, err)
	}
	return n, nil
}

// GetAsBool converts the stored value to a bool, accepting the forms
// strconv.ParseBool does (true/false, 1/0, t/f).
func (a *Args) GetAsBool(name string) (bool, error) {
	v, err := a.stored(name)
	if err != nil {
		return false, err
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("argument %s: %w", name, err)
	}
	return b, nil
}

// GetAsFloat converts the stored value to a float64.
func (a *Args) GetAsFloat(name string) (float64, error) {
	v, err := a.stored(name)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("argument %s: %w", name, err)
	}
	return f, nil
}

// GetAsDuration converts the stored value to a time.Duration using
// time.ParseDuration forms such as "1h30m".
func (a *Args) GetAsDuration(name string) (time.Duration, error) {
	v, err := a.stored(name)
	if err != nil {
		return 0, err
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("argument %s: %w", name, err)
	}
	return d, nil
}

// Must accessors return the fallback on absence or conversion failure,
// trading explicit errors for call-site brevity.

// MustGet returns the stored string or fallback when name was never set.
func (a *Args) MustGet(name, fallback string) string {
	if v, ok := a.values[name]; ok {
		return v
	}
	return fallback
}

// MustGetInt returns the stored value as an int or fallback.
func (a *Args) MustGetInt(name string, fallback int) int {
	if n, err := a.GetAsInt(name); err == nil {
		return n
	}
	return fallback
}

// MustGetBool returns the stored value as a bool or fallback.
func (a *Args) MustGetBool(name string, fallback bool) bool {
	if b, err := a.GetAsBool(name); err == nil {
		return b
	}
	return fallback
}

// MustGetFloat returns the stored value as a float64 or fallback.
func (a *Args) MustGetFloat(name string, fallback float64) float64 {
	if f, err := a.GetAsFloat(name); err == nil {
		return f
	}
	return fallback
}

// MustGetDuration returns the stored value as a time.Duration or fallback.
func (a *Args) MustGetDuration(name string, fallback time.Duration) time.Duration {
	if d, err := a.GetAsDuration(name); err == nil {
		return d
	}
	return fallback
}

func (a *Args) stored(name string) (string, error) {
	v, ok := a.values[name]
	if !ok {
		return "", fmt.Errorf("argument %s was not set", name)
	}
	return v, nil
}
