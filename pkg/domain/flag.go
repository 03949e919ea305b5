package domain

import (
	"slices"
	"time"
)

// FlagKind defines the type of flag value
type FlagKind string

// enum of flag kinds
const (
	FlagBoolean          FlagKind = "boolean"
	FlagEnumeratedString FlagKind = "string"
)

// names of flags used by the ui
const (
	FlagScore       = "score"
	FlagAsk         = "ask"
	FlagShow        = "show"
	FlagHeaderColor = "headerColor"
)

// FlagDefinition declares a flag with its static default
type FlagDefinition struct {
	Name          string   `json:"name"`
	Kind          FlagKind `json:"kind"`
	Default       string   `json:"default"`
	AllowedValues []string `json:"allowed_values,omitempty"`
}

// Allows reports whether value is a legal value for the flag
func (d FlagDefinition) Allows(value string) bool {
	switch d.Kind {
	case FlagBoolean:
		return value == "true" || value == "false"
	default:
		return value == d.Default || slices.Contains(d.AllowedValues, value)
	}
}

// BoolFlag declares a boolean flag
func BoolFlag(name string, def bool) FlagDefinition {
	v := "false"
	if def {
		v = "true"
	}
	return FlagDefinition{Name: name, Kind: FlagBoolean, Default: v}
}

// StringFlag declares an enumerated string flag
func StringFlag(name, def string, allowed ...string) FlagDefinition {
	return FlagDefinition{Name: name, Kind: FlagEnumeratedString, Default: def, AllowedValues: allowed}
}

// DefaultFlags returns the flags registered by the ui
func DefaultFlags() []FlagDefinition {
	return []FlagDefinition{
		BoolFlag(FlagScore, false),
		BoolFlag(FlagAsk, false),
		BoolFlag(FlagShow, false),
		StringFlag(FlagHeaderColor, "is-dark", "is-dark", "is-primary", "is-white"),
	}
}

// TargetingContext holds user attributes used for flag evaluation
type TargetingContext struct {
	IsBetaUser bool
	IsLoggedIn bool
	Company    string
}

// Impression reports a single flag evaluation
type Impression struct {
	Name     string
	Value    string
	Targeted bool
	At       time.Time
}
