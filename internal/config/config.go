// Package config loads and validates the YAML configuration of the
// aromatic command and turns it into a Detector.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvchem/aromaticity"
	"github.com/katalvlaran/lvchem/cycles"
	"github.com/katalvlaran/lvchem/internal/logging"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// validate is a singleton validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Config is the on-disk configuration. Zero fields in a file keep the
// values of DefaultConfig.
type Config struct {
	// Model selects the electron-donation model.
	Model string `yaml:"model" validate:"required,oneof=strict exocyclic daylight cdk cdk-exo cdk-allow-exocyclic"`
	// Cycles selects the cycle finder.
	Cycles string `yaml:"cycles" validate:"required,oneof=all shortest all-or-shortest explicit"`
	// CycleLimit bounds the "all" finder; 0 means cycles.DefaultLimit.
	CycleLimit int `yaml:"cycle_limit" validate:"gte=0"`
	// Workers is the batch concurrency.
	Workers int `yaml:"workers" validate:"gte=1,lte=256"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" validate:"omitempty,oneof=debug info warn warning error"`
	// Rings are the atom cycles used by the "explicit" finder.
	Rings [][]int `yaml:"rings,omitempty" validate:"required_if=Cycles explicit,dive,min=3,dive,gte=0"`
}

// DefaultConfig returns the daylight model over all elementary cycles.
func DefaultConfig() Config {
	return Config{
		Model:    aromaticity.NameDaylight,
		Cycles:   cycles.SelectAll,
		Workers:  4,
		LogLevel: "info",
	}
}

// Load reads and validates the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read the config file: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data over DefaultConfig. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse the config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the struct tags.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Marshal renders c as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	return logging.ParseLevel(c.LogLevel)
}

// Detector builds the Detector described by c.
func (c Config) Detector(opts ...aromaticity.Option) (*aromaticity.Detector, error) {
	model, err := aromaticity.ParseModel(c.Model)
	if err != nil {
		return nil, err
	}
	finder, err := cycles.ParseFinder(c.Cycles, c.CycleLimit, c.Rings)
	if err != nil {
		return nil, err
	}
	return aromaticity.New(aromaticity.Config{Model: model, Cycles: finder}, opts...)
}
