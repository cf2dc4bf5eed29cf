// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Default file names used when no flag or config value overrides them.
const (
	DefaultSlidesFile = "slides.md"
	DefaultCodesFile  = "codes.md"
)

// StripConfig holds settings for the annotation filter.
type StripConfig struct {
	// Input is the slide deck to read (default slides.md).
	Input string `json:"input" yaml:"input" mapstructure:"input"`

	// Output is the file the filtered lines are written to (default codes.md).
	Output string `json:"output" yaml:"output" mapstructure:"output"`
}

// RetimeConfig holds settings for the timestamp normalizer.
type RetimeConfig struct {
	// File is the slide deck rewritten in place (default slides.md).
	File string `json:"file" yaml:"file" mapstructure:"file"`

	// DryRun prints the rewritten deck instead of overwriting File.
	DryRun bool `json:"dry_run" yaml:"dry_run" mapstructure:"dry_run"`
}

// ScheduleFormat selects how a computed timing schedule is printed.
type ScheduleFormat string

const (
	ScheduleNone ScheduleFormat = ""
	ScheduleYAML ScheduleFormat = "yaml"
	ScheduleJSON ScheduleFormat = "json"
)

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is a logrus level name: debug, info, warn, error.
	Level string `json:"level" yaml:"level" mapstructure:"level"`
}

// Config groups all deck-tools settings as read from deck-tools.yaml.
type Config struct {
	Strip  StripConfig  `json:"strip" yaml:"strip" mapstructure:"strip"`
	Retime RetimeConfig `json:"retime" yaml:"retime" mapstructure:"retime"`
	Log    LogConfig    `json:"log" yaml:"log" mapstructure:"log"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Strip:  StripConfig{Input: DefaultSlidesFile, Output: DefaultCodesFile},
		Retime: RetimeConfig{File: DefaultSlidesFile},
		Log:    LogConfig{Level: "warn"},
	}
}
