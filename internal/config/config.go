package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Trainer TrainerConfig `mapstructure:"trainer" validate:"required"`
	Log     LogConfig     `mapstructure:"log"     validate:"required"`
}

// TrainerConfig contains the settings of a practice session.
type TrainerConfig struct {
	// Notation selects the accidental glyphs for the whole session.
	Notation string `mapstructure:"notation" validate:"required,oneof=unicode ascii"`
	// Exercise preselects the exercise; empty means ask the player.
	Exercise string `mapstructure:"exercise" validate:"omitempty,oneof=tone scale"`
	// Levels preselects the levels, e.g. "3a4"; empty means ask the player.
	Levels string `mapstructure:"levels" validate:"omitempty,max=32"`
	// Seed fixes the question order; 0 draws a random seed.
	Seed int64 `mapstructure:"seed"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}
