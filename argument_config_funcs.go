package goargs

import (
	"time"

	"github.com/araddon/dateparse"
	"github.com/napalu/goargs/errs"
)

func newArgConfig(configs []ConfigureArgFunc) (*ArgConfig, error) {
	cfg := &ArgConfig{}
	var err error
	for _, config := range configs {
		config(cfg, &err)
		if err != nil {
			return cfg, err
		}
	}

	return cfg, nil
}

// WithShortName sets the name matched after the short prefix. Short names are
// matched as a prefix of the token, so the value follows without separator:
//
//	-a3
func WithShortName(shortName string) ConfigureArgFunc {
	return func(cfg *ArgConfig, err *error) {
		cfg.ShortName = shortName
	}
}

// WithMetaVar names the value in hints and help, e.g. --count=<N>. Options
// taking a value default to their upper-cased name.
func WithMetaVar(metaVar string) ConfigureArgFunc {
	return func(cfg *ArgConfig, err *error) {
		cfg.MetaVar = metaVar
	}
}

// WithDescription the description will be used in help output presented to the user
func WithDescription(description string) ConfigureArgFunc {
	return func(cfg *ArgConfig, err *error) {
		cfg.Description = description
	}
}

// WithDefault sets the value used when the argument is absent. The type must
// fit the argument: bool for flags, an integer for Int, a string for String
// and positional strings, an index or candidate for Choice, []string for
// collections, a float for FloatArg and a time.Time or date string for Time.
func WithDefault[T any](value T) ConfigureArgFunc {
	return func(cfg *ArgConfig, err *error) {
		cfg.Default = value
		cfg.HasDefault = true
	}
}

// WithEmptyValues lets a Collection accept empty values (--name= or a bare
// --name). Other kinds reject this setting.
func WithEmptyValues(accept bool) ConfigureArgFunc {
	return func(cfg *ArgConfig, err *error) {
		cfg.AcceptEmpty = accept
		cfg.emptyValuesSet = true
	}
}

func defaultBool(name string, cfg *ArgConfig) (bool, error) {
	if !cfg.HasDefault {
		return false, nil
	}
	v, ok := cfg.Default.(bool)
	if !ok {
		return false, errs.ErrDefaultTypeMismatch.WithArgs(name, "bool", cfg.Default)
	}
	return v, nil
}

func defaultInt(name string, cfg *ArgConfig) (int64, error) {
	switch v := cfg.Default.(type) {
	case int:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case uint8:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	default:
		return 0, errs.ErrDefaultTypeMismatch.WithArgs(name, "int64", cfg.Default)
	}
}

func defaultFloat(name string, cfg *ArgConfig) (float64, error) {
	switch v := cfg.Default.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, errs.ErrDefaultTypeMismatch.WithArgs(name, "float64", cfg.Default)
	}
}

func defaultString(name string, cfg *ArgConfig) (string, error) {
	v, ok := cfg.Default.(string)
	if !ok {
		return "", errs.ErrDefaultTypeMismatch.WithArgs(name, "string", cfg.Default)
	}
	return v, nil
}

func defaultStrings(name string, cfg *ArgConfig) ([]string, error) {
	if !cfg.HasDefault {
		return nil, nil
	}
	v, ok := cfg.Default.([]string)
	if !ok {
		return nil, errs.ErrDefaultTypeMismatch.WithArgs(name, "[]string", cfg.Default)
	}
	return append([]string(nil), v...), nil
}

func defaultTime(name string, cfg *ArgConfig) (time.Time, error) {
	switch v := cfg.Default.(type) {
	case time.Time:
		return v, nil
	case string:
		t, err := dateparse.ParseAny(v)
		if err != nil {
			return time.Time{}, errs.ErrDefaultTypeMismatch.WithArgs(name, "time.Time", cfg.Default).Wrap(err)
		}
		return t, nil
	default:
		return time.Time{}, errs.ErrDefaultTypeMismatch.WithArgs(name, "time.Time", cfg.Default)
	}
}
