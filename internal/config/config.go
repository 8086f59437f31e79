// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/Katlego-Ram2/MorseCodeTranslator/synth"
)

const EnvPrefix = "MORSE"

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	Server  ServerConfig  `mapstructure:"server" yaml:"server"`
	Audio   AudioConfig   `mapstructure:"audio" yaml:"audio"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// ServerConfig holds the HTTP API settings.
type ServerConfig struct {
	Address      string        `mapstructure:"address" yaml:"address"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout" yaml:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout" yaml:"write_timeout"`
	// CacheTTL bounds how long rendered audio is kept. Zero disables caching.
	CacheTTL time.Duration `mapstructure:"cache_ttl" yaml:"cache_ttl"`
}

// AudioConfig shapes the rendered signal.
type AudioConfig struct {
	SampleRate int     `mapstructure:"sample_rate" yaml:"sample_rate"`
	Frequency  float64 `mapstructure:"frequency" yaml:"frequency"`
	WPM        int     `mapstructure:"wpm" yaml:"wpm"`
	BitDepth   int     `mapstructure:"bit_depth" yaml:"bit_depth"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
	Output string `mapstructure:"output" yaml:"output"`
}

func Defaults() Config {
	return Config{
		Server: ServerConfig{
			Address:      ":8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			CacheTTL:     10 * time.Minute,
		},
		Audio: AudioConfig{
			SampleRate: synth.DefaultSampleRate,
			Frequency:  synth.DefaultSchedule().Frequency,
			BitDepth:   8,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := Defaults()

	v.SetDefault("server.address", d.Server.Address)
	v.SetDefault("server.read_timeout", d.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", d.Server.WriteTimeout)
	v.SetDefault("server.cache_ttl", d.Server.CacheTTL)

	v.SetDefault("audio.sample_rate", d.Audio.SampleRate)
	v.SetDefault("audio.frequency", d.Audio.Frequency)
	v.SetDefault("audio.wpm", d.Audio.WPM)
	v.SetDefault("audio.bit_depth", d.Audio.BitDepth)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.output", d.Logging.Output)
}

// Load builds the configuration from defaults, the YAML file at path (if
// not empty) and the environment.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server config: %w", err)
	}
	if err := c.Audio.Validate(); err != nil {
		return fmt.Errorf("audio config: %w", err)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Address == "" {
		return fmt.Errorf("%w: address cannot be empty", ErrInvalid)
	}
	if s.ReadTimeout <= 0 || s.WriteTimeout <= 0 {
		return fmt.Errorf("%w: timeouts must be positive", ErrInvalid)
	}
	if s.CacheTTL < 0 {
		return fmt.Errorf("%w: cache_ttl cannot be negative, got %s", ErrInvalid, s.CacheTTL)
	}
	return nil
}

func (a *AudioConfig) Validate() error {
	if a.SampleRate < 4000 || a.SampleRate > 192000 {
		return fmt.Errorf("%w: sample_rate must be between 4000 and 192000, got %d", ErrInvalid, a.SampleRate)
	}
	// the tone has to stay below Nyquist
	if a.Frequency <= 0 || a.Frequency >= float64(a.SampleRate)/2 {
		return fmt.Errorf("%w: frequency must be in (0, %d), got %g", ErrInvalid, a.SampleRate/2, a.Frequency)
	}
	if a.WPM < 0 || a.WPM > 100 {
		return fmt.Errorf("%w: wpm must be between 0 and 100, got %d", ErrInvalid, a.WPM)
	}
	if a.BitDepth != 8 && a.BitDepth != 16 {
		return fmt.Errorf("%w: bit_depth must be 8 or 16, got %d", ErrInvalid, a.BitDepth)
	}
	return nil
}

func (l *LoggingConfig) Validate() error {
	switch l.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalid, l.Level)
	}
	switch l.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalid, l.Format)
	}
	return nil
}

// Schedule returns the tone schedule the audio section describes.
func (a AudioConfig) Schedule() synth.Schedule {
	if a.WPM == 0 {
		s := synth.DefaultSchedule()
		if a.Frequency > 0 {
			s.Frequency = a.Frequency
		}
		return s
	}
	return synth.ScheduleFromWPM(a.WPM, a.Frequency)
}

// Synth returns the synthesizer configuration for the audio section.
func (a AudioConfig) Synth() synth.Config {
	return synth.Config{SampleRate: a.SampleRate, Schedule: a.Schedule()}
}

// YAML renders the effective configuration.
func (c *Config) YAML() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return out, nil
}
