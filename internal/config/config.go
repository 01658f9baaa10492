// Package config provides Viper-based configuration loading for the battle
// simulator.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// GridConfig holds hexagonal board construction settings.
type GridConfig struct {
	// HexSize is the hex radius in pixels used for coordinate conversion.
	HexSize float64 `mapstructure:"hex_size"`
	// Radius is the number of rings around the origin; the board holds
	// 3r(r+1)+1 cells.
	Radius int `mapstructure:"radius"`
	// OriginX is the pixel x of the board's center hex.
	OriginX float64 `mapstructure:"origin_x"`
	// OriginY is the pixel y of the board's center hex.
	OriginY float64 `mapstructure:"origin_y"`
}

// BattleConfig holds encounter setup settings.
type BattleConfig struct {
	// Walls is the number of wall obstacles placed before the battle.
	Walls int `mapstructure:"walls"`
	// Traps is the number of trap obstacles placed before the battle.
	Traps int `mapstructure:"traps"`
	// Enemies is the number of enemy units spawned from the template table.
	Enemies int `mapstructure:"enemies"`
	// Seed drives all placement randomness; 0 selects a crypto-backed source.
	Seed int64 `mapstructure:"seed"`
	// MaxRounds bounds the simulation loop against stalemates.
	MaxRounds int `mapstructure:"max_rounds"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// Config is the top-level application configuration.
type Config struct {
	Grid    GridConfig    `mapstructure:"grid"`
	Battle  BattleConfig  `mapstructure:"battle"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Load reads configuration from path with HEXBATTLE_-prefixed environment
// variable overrides.
//
// Precondition: path must point to a readable config file.
// Postcondition: Returns a validated Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetEnvPrefix("HEXBATTLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	return LoadFromViper(v)
}

// LoadFromViper unmarshals and validates a Config from an existing Viper
// instance. Useful for tests.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("grid.hex_size", 32.0)
	v.SetDefault("grid.radius", 5)
	v.SetDefault("grid.origin_x", 0.0)
	v.SetDefault("grid.origin_y", 0.0)

	v.SetDefault("battle.walls", 6)
	v.SetDefault("battle.traps", 3)
	v.SetDefault("battle.enemies", 3)
	v.SetDefault("battle.seed", 0)
	v.SetDefault("battle.max_rounds", 50)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error
// describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateGrid(c.Grid); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateBattle(c.Battle); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateGrid(g GridConfig) error {
	var errs []string
	if g.HexSize <= 0 {
		errs = append(errs, fmt.Sprintf("grid.hex_size must be > 0, got %v", g.HexSize))
	}
	if g.Radius < 1 {
		errs = append(errs, fmt.Sprintf("grid.radius must be >= 1, got %d", g.Radius))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateBattle(b BattleConfig) error {
	var errs []string
	if b.Walls < 0 {
		errs = append(errs, fmt.Sprintf("battle.walls must be >= 0, got %d", b.Walls))
	}
	if b.Traps < 0 {
		errs = append(errs, fmt.Sprintf("battle.traps must be >= 0, got %d", b.Traps))
	}
	if b.Enemies < 1 {
		errs = append(errs, fmt.Sprintf("battle.enemies must be >= 1, got %d", b.Enemies))
	}
	if b.MaxRounds < 1 {
		errs = append(errs, fmt.Sprintf("battle.max_rounds must be >= 1, got %d", b.MaxRounds))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}
