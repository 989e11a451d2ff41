package types

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Config holds backend selection and parameters for the inventory CLI.
type Config struct {
	Backend           string `mapstructure:"backend" yaml:"backend" validate:"required,oneof=json sqlite"`
	DataDir           string `mapstructure:"data_dir" yaml:"data_dir,omitempty"`
	File              string `mapstructure:"file" yaml:"file" validate:"required"`
	LowStockThreshold int    `mapstructure:"low_stock_threshold" yaml:"low_stock_threshold" validate:"min=0"`
	LogLevel          string `mapstructure:"log_level" yaml:"log_level" validate:"oneof=debug info warn warning error"`
}

// Supported backend names.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Configuration defaults.
const (
	DefaultFile              = "inventory.json"
	DefaultLowStockThreshold = 5
	DefaultLogLevel          = "info"
)

// Config validation errors.
var (
	ErrBackendEmpty     = errors.New("backend must not be empty")
	ErrBackendUnknown   = errors.New("unknown backend")
	ErrFileEmpty        = errors.New("file must not be empty")
	ErrThresholdInvalid = errors.New("low stock threshold must not be negative")
	ErrLogLevelUnknown  = errors.New("unknown log level")
	ErrConfigInvalid    = errors.New("invalid configuration")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// DefaultConfig returns a Config populated with defaults.
func DefaultConfig() Config {
	return Config{
		Backend:           BackendJSON,
		File:              DefaultFile,
		LowStockThreshold: DefaultLowStockThreshold,
		LogLevel:          DefaultLogLevel,
	}
}

// Validate checks that the Config is well-formed. It returns one of the
// sentinel errors of this package for the first failing field.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %v", ErrConfigInvalid, err)
	}
	fe := fieldErrs[0]
	switch fe.Field() {
	case "Backend":
		if fe.Tag() == "required" {
			return ErrBackendEmpty
		}
		return fmt.Errorf("%w: %q", ErrBackendUnknown, c.Backend)
	case "File":
		return ErrFileEmpty
	case "LowStockThreshold":
		return ErrThresholdInvalid
	case "LogLevel":
		return fmt.Errorf("%w: %q", ErrLogLevelUnknown, c.LogLevel)
	}
	return fmt.Errorf("%w: %s", ErrConfigInvalid, fe.Error())
}
