package config

// LoggerConfig controls how the zap logger is built.
type LoggerConfig struct {
	Name       string `mapstructure:"name" yaml:"name"`
	Level      string `mapstructure:"level" yaml:"level"`
	Format     string `mapstructure:"format" yaml:"format"` // "console" or "json"
	File       string `mapstructure:"file" yaml:"file"`     // Optional rotating log file
	MaxSize    int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge     int    `mapstructure:"max_age" yaml:"max_age"`
	Compress   bool   `mapstructure:"compress" yaml:"compress"`
}

// DefaultLogger returns console logging at info level.
func DefaultLogger() LoggerConfig {
	return LoggerConfig{
		Name:       "rollsphere",
		Level:      "info",
		Format:     "console",
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     7,
	}
}
