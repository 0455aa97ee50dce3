// Package config provides configuration loading and defaults for sonder.
package config

// DefaultConfigDir is the default location for sonder configuration.
const DefaultConfigDir = "~/.config/sonder"

// DefaultDBName is the filename for the SQLite history database.
const DefaultDBName = "history.db"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultHistoryLimit is the number of past runs shown by the history
// command when no limit is given.
const DefaultHistoryLimit = 20

// DefaultScaleLabels are the agreement labels for the standard 1-5
// Likert scale, in ascending order.
var DefaultScaleLabels = []string{
	"Strongly disagree",
	"Disagree",
	"Neutral",
	"Agree",
	"Strongly agree",
}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}
