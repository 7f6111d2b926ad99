package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment overrides, e.g. ROLLSPHERE_ACTOR_RADIUS.
const EnvPrefix = "ROLLSPHERE"

// File is the on-disk configuration layout.
type File struct {
	Logger LoggerConfig `mapstructure:"logger" yaml:"logger"`
	Actor  ActorConfig  `mapstructure:"actor" yaml:"actor"`
	Sim    SimConfig    `mapstructure:"sim" yaml:"sim"`
}

// SetDefaults registers every known key so env overrides and partial files work.
func SetDefaults(v *viper.Viper) {
	lg := DefaultLogger()
	v.SetDefault("logger.name", lg.Name)
	v.SetDefault("logger.level", lg.Level)
	v.SetDefault("logger.format", lg.Format)
	v.SetDefault("logger.file", lg.File)
	v.SetDefault("logger.max_size", lg.MaxSize)
	v.SetDefault("logger.max_backups", lg.MaxBackups)
	v.SetDefault("logger.max_age", lg.MaxAge)
	v.SetDefault("logger.compress", lg.Compress)

	v.SetDefault("actor.radius", Actor.Radius)
	t := Actor.Tuning
	v.SetDefault("actor.tuning.max_speed", t.MaxSpeed)
	v.SetDefault("actor.tuning.max_acceleration", t.MaxAcceleration)
	v.SetDefault("actor.tuning.max_air_acceleration", t.MaxAirAcceleration)
	v.SetDefault("actor.tuning.alignment_speed", t.AlignmentSpeed)
	v.SetDefault("actor.tuning.linear_damping", t.LinearDamping)
	v.SetDefault("actor.tuning.max_jump_count", t.MaxJumpCount)
	v.SetDefault("actor.tuning.target_jump_height", t.TargetJumpHeight)

	v.SetDefault("sim.tick_rate", Sim.TickRate)
	v.SetDefault("sim.delta_time", Sim.DeltaTime)
	v.SetDefault("sim.kill_y", Sim.KillY)
}

// NewViper returns a viper instance with defaults and env overrides, reading
// path when it is not empty.
func NewViper(path string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	return v, nil
}

// NewFromViper unmarshals and validates a File.
func NewFromViper(v *viper.Viper) (*File, error) {
	var f File
	if err := v.Unmarshal(&f); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &f, nil
}

// Load reads path (optional) into a validated File.
func Load(path string) (*File, error) {
	v, err := NewViper(path)
	if err != nil {
		return nil, err
	}
	return NewFromViper(v)
}

// Validate checks the file for sane values.
func (f *File) Validate() error {
	var errs []error
	if f.Actor.Radius <= 0 {
		errs = append(errs, &Error{Field: "actor.radius", Value: f.Actor.Radius, Reason: "must be positive"})
	}
	if err := f.Actor.Tuning.Validate(); err != nil {
		errs = append(errs, err)
	}
	if f.Sim.TickRate <= 0 {
		errs = append(errs, &Error{Field: "sim.tick_rate", Value: f.Sim.TickRate, Reason: "must be positive"})
	}
	if f.Sim.DeltaTime < 0 {
		errs = append(errs, &Error{Field: "sim.delta_time", Value: f.Sim.DeltaTime, Reason: "must not be negative"})
	}
	return errors.Join(errs...)
}

// Apply copies the file's actor and sim sections into the global config.
func (f *File) Apply() {
	Actor = f.Actor
	Sim = f.Sim
}
