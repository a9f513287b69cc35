package entity

import "strings"

// Sections the docking config keys are grouped under.
const (
	ConfigSectionDock       = "Dock"
	ConfigSectionLogging    = "Logging"
	ConfigSectionAppearance = "Appearance"
)

// ConfigKeyInfo documents one key of the docking config file.
type ConfigKeyInfo struct {
	// Key is the dotted TOML path, e.g. "dock.splitter_width".
	Key string `json:"key"`

	// Type is the Go type of the value.
	Type string `json:"type"`

	// Default is the value written by `docking config init`.
	Default string `json:"default"`

	Description string `json:"description"`

	// Values lists the accepted strings of an enum key, such as logging.format.
	Values []string `json:"values,omitempty"`

	// Range is the accepted numeric interval, such as "0-<0.5" for dock.min_split_ratio.
	Range string `json:"range,omitempty"`

	// Section is one of the ConfigSection constants.
	Section string `json:"section"`
}

// Constraint renders the accepted values of the key, preferring the enum
// list over the range. Empty when the key is unconstrained.
func (k ConfigKeyInfo) Constraint() string {
	switch {
	case len(k.Values) > 0:
		return "Values: " + strings.Join(k.Values, ", ")
	case k.Range != "":
		return "Range: " + k.Range
	default:
		return ""
	}
}
