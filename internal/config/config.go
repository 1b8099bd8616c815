package config

import (
	"fmt"
	"os"
	"strconv"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/asaskevich/govalidator"
	"github.com/pelletier/go-toml/v2"
)

// StdStream selects stdin or stdout instead of a file.
const StdStream = "-"

type Config struct {
	Input         string `toml:"input" valid:"required"`
	Output        string `toml:"output" valid:"required"`
	LogLevel      string `toml:"log_level" valid:"in(debug|info|warn|error)"`
	NormalizeBusy bool   `toml:"normalize_busy"`
}

func DefaultConfig() Config {
	return Config{
		Input:    "input.txt",
		Output:   "output.txt",
		LogLevel: "info",
	}
}

// Load reads the TOML file at path over the defaults, then applies the
// environment overrides. An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, errRead := os.ReadFile(path)
		if errRead != nil && !os.IsNotExist(errRead) {
			return nil,
				fmt.Errorf("reading config file: %w", errRead)
		}

		if errRead == nil {
			if errUnmarshal := toml.Unmarshal(data, &cfg); errUnmarshal != nil {
				return nil,
					fmt.Errorf("parsing config file: %w", errUnmarshal)
			}
		}
	}

	if errEnv := applyEnvOverrides(&cfg); errEnv != nil {
		return nil,
			errEnv
	}

	if errValidation := cfg.IsValid(); errValidation != nil {
		return nil,
			errValidation
	}

	return &cfg,
		nil
}

func (cfg *Config) IsValid() error {
	if _, errValidation := govalidator.ValidateStruct(cfg); errValidation != nil {
		return goerrors.ErrServiceValidation{
			ServiceName: "Config",
			Caller:      "IsValid",
			Issue:       errValidation,
		}
	}

	return nil
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("MEETINGSLOTS_INPUT"); v != "" {
		cfg.Input = v
	}

	if v := os.Getenv("MEETINGSLOTS_OUTPUT"); v != "" {
		cfg.Output = v
	}

	if v := os.Getenv("MEETINGSLOTS_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if v := os.Getenv("MEETINGSLOTS_NORMALIZE_BUSY"); v != "" {
		normalize, errParse := strconv.ParseBool(v)
		if errParse != nil {
			return goerrors.ErrInvalidInput{
				Caller:     "applyEnvOverrides",
				InputName:  "MEETINGSLOTS_NORMALIZE_BUSY",
				InputValue: v,
				Issue:      errParse,
			}
		}

		cfg.NormalizeBusy = normalize
	}

	return nil
}
