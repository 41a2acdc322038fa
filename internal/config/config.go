package config

import (
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/marnixbouhuis/httplog"
)

const (
	DefaultPort    = 1337
	DefaultEnvFile = ".env"

	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"
)

// portPattern requires at least two digits, so single digit ports like "8"
// are rejected along with "0" and leading zeroes.
var portPattern = regexp.MustCompile(`^[1-9]\d+$`)

var levelNames = []interface{}{
	httplog.ErrorLevel.String(),
	httplog.WarnLevel.String(),
	httplog.InfoLevel.String(),
	httplog.VerboseLevel.String(),
	httplog.DebugLevel.String(),
}

type Config struct {
	Port     int
	LogLevel httplog.Level

	// Ignored holds settings that were present but invalid, keyed by
	// environment variable. Their defaults are used instead.
	Ignored validation.Errors
}

func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

type rawConfig struct {
	Port     string `mapstructure:"port"`
	LogLevel string `mapstructure:"log_level"`
}

// Validate reports invalid settings. Empty settings are valid, they mean "use the default".
func (r *rawConfig) Validate() error {
	return validation.Errors{
		EnvPort:     validation.Validate(r.Port, validation.Match(portPattern)),
		EnvLogLevel: validation.Validate(strings.ToLower(strings.TrimSpace(r.LogLevel)), validation.In(levelNames...)),
	}.Filter()
}

// Load reads the configuration from the environment after loading envFiles
// (DefaultEnvFile when none are given). Missing env files are skipped and
// variables that are already set are never overridden. Invalid values fall
// back to their defaults and are reported in Config.Ignored.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{DefaultEnvFile}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %q: %w", file, err)
		}
	}

	v := viper.New()
	if err := v.BindEnv("port", EnvPort); err != nil {
		return nil, err
	}
	if err := v.BindEnv("log_level", EnvLogLevel); err != nil {
		return nil, err
	}

	var raw rawConfig
	if err := v.Unmarshal(&raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return fromRaw(&raw), nil
}

func fromRaw(raw *rawConfig) *Config {
	cfg := &Config{
		Port:     DefaultPort,
		LogLevel: httplog.DefaultLevel,
		Ignored:  validation.Errors{},
	}

	if err := raw.Validate(); err != nil {
		var errs validation.Errors
		if errors.As(err, &errs) {
			cfg.Ignored = errs
		}
	}

	if _, invalid := cfg.Ignored[EnvPort]; !invalid && raw.Port != "" {
		port, err := strconv.Atoi(raw.Port)
		if err != nil {
			// Matches the pattern but overflows an int.
			cfg.Ignored[EnvPort] = err
		} else {
			cfg.Port = port
		}
	}

	if _, invalid := cfg.Ignored[EnvLogLevel]; !invalid && raw.LogLevel != "" {
		cfg.LogLevel = httplog.ParseLevelOrDefault(raw.LogLevel)
	}

	return cfg
}

// ParsePort returns the port in raw, or DefaultPort when raw is empty or
// does not match the port pattern.
func ParsePort(raw string) int {
	return fromRaw(&rawConfig{Port: raw}).Port
}
