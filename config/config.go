// Package config loads chill-out.toml through viper
// Every key has a default, a missing file in the working directory is not an error
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/pipejesus/chill-out/input"
	"github.com/pipejesus/chill-out/level"
	"github.com/pipejesus/chill-out/parameter"
	"github.com/pipejesus/chill-out/player"
	"github.com/pipejesus/chill-out/vmath"
)

const (
	// FileName is looked up in the working directory when no path is given
	FileName = "chill-out"

	// EnvPrefix prefixes environment overrides, CHILLOUT_LEVEL_ENEMIES=5
	EnvPrefix = "CHILLOUT"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Frame   FrameConfig   `mapstructure:"frame"`
	Level   LevelConfig   `mapstructure:"level"`
	Player  PlayerConfig  `mapstructure:"player"`
	Input   InputConfig   `mapstructure:"input"`
	Audio   AudioConfig   `mapstructure:"audio"`
	Journal JournalConfig `mapstructure:"journal"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type FrameConfig struct {
	Rate int `mapstructure:"rate"`
}

type LevelConfig struct {
	Enemies   int       `mapstructure:"enemies"`
	Radius    float64   `mapstructure:"radius"`
	Center    []float64 `mapstructure:"center"`
	Health    float64   `mapstructure:"health"`
	HitDamage float64   `mapstructure:"hit_damage"`
	Seed      int64     `mapstructure:"seed"`
}

type PlayerConfig struct {
	Start []float64 `mapstructure:"start"`
}

type InputConfig struct {
	HoldTimeout time.Duration     `mapstructure:"hold_timeout"`
	Keys        map[string]string `mapstructure:"keys"`
}

type AudioConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"`
}

type JournalConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Driver  string `mapstructure:"driver"`
	DSN     string `mapstructure:"dsn"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "chill-out.log")

	v.SetDefault("frame.rate", parameter.DefaultFrameRate)

	v.SetDefault("level.enemies", parameter.EnemyCount)
	v.SetDefault("level.radius", parameter.EnemyOrbitRadius)
	v.SetDefault("level.center", []float64{parameter.EnemyCenterX, parameter.EnemyCenterY, parameter.EnemyCenterZ})
	v.SetDefault("level.health", parameter.EnemyHealth)
	v.SetDefault("level.hit_damage", parameter.EnemyHitDamage)
	v.SetDefault("level.seed", 0)

	v.SetDefault("player.start", []float64{parameter.PlayerStartX, parameter.PlayerStartY, parameter.PlayerStartZ})

	v.SetDefault("input.hold_timeout", parameter.InputHoldTimeout)
	for action, key := range input.DefaultBindings() {
		v.SetDefault("input.keys."+action, key)
	}

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", 0.5)

	v.SetDefault("journal.enabled", false)
	v.SetDefault("journal.driver", "sqlite")
	v.SetDefault("journal.dsn", "chill-out.db")
}

// Load reads path, or chill-out.toml from the working directory when path is empty
// Environment variables override file values
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigType("toml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ranges and key bindings
func (c *Config) Validate() error {
	if c.Frame.Rate <= 0 {
		return fmt.Errorf("%w: frame.rate must be positive, got %d", ErrInvalid, c.Frame.Rate)
	}
	if c.Level.Enemies < 0 {
		return fmt.Errorf("%w: level.enemies must not be negative, got %d", ErrInvalid, c.Level.Enemies)
	}
	if c.Level.Health <= 0 || c.Level.HitDamage <= 0 {
		return fmt.Errorf("%w: level.health and level.hit_damage must be positive", ErrInvalid)
	}
	if len(c.Level.Center) != 3 {
		return fmt.Errorf("%w: level.center needs 3 components, got %d", ErrInvalid, len(c.Level.Center))
	}
	if len(c.Player.Start) != 3 {
		return fmt.Errorf("%w: player.start needs 3 components, got %d", ErrInvalid, len(c.Player.Start))
	}
	if c.Input.HoldTimeout <= 0 {
		return fmt.Errorf("%w: input.hold_timeout must be positive", ErrInvalid)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio.volume must be within [0,1], got %g", ErrInvalid, c.Audio.Volume)
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}
	switch c.Journal.Driver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("%w: journal.driver %q", ErrInvalid, c.Journal.Driver)
	}
	if _, err := input.ParseKeyTable(c.Input.Keys); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// KeyTable returns the parsed bindings
func (c *Config) KeyTable() (*input.KeyTable, error) {
	return input.ParseKeyTable(c.Input.Keys)
}

// FrameInterval returns the tick period for the configured rate
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.Frame.Rate)
}

// PlayerConfig returns the player setup with eyes lifted above the start point
func (c *Config) PlayerConfig() player.Config {
	pc := player.DefaultConfig()
	start := vec(c.Player.Start)
	pc.Eyes = vmath.V3F(start.X, start.Y+parameter.PlayerEyesAboveGround, start.Z)
	return pc
}

// LevelConfig returns the level setup
func (c *Config) LevelConfig() level.Config {
	lc := level.DefaultConfig()
	lc.Enemies = c.Level.Enemies
	lc.Enemy.Center = vec(c.Level.Center)
	lc.Enemy.Radius = c.Level.Radius
	lc.Enemy.Health = c.Level.Health
	lc.Enemy.HitDamage = c.Level.HitDamage
	lc.Maze.Seed = c.Level.Seed
	return lc
}

func vec(v []float64) vmath.Vec3F {
	if len(v) != 3 {
		return vmath.Vec3F{}
	}
	return vmath.V3F(v[0], v[1], v[2])
}
