package goargs

import (
	"strings"

	"github.com/iancoleman/strcase"
)

const (
	// DefaultPrefix introduces long options such as --name=value
	DefaultPrefix = "--"
	// DefaultShortPrefix introduces short options such as -nvalue
	DefaultShortPrefix = "-"
	// PositionalSeparator switches a command to positional-only parsing
	PositionalSeparator = "--"
)

// ConfigureArgFunc is used when describing options and positional arguments
type ConfigureArgFunc func(cfg *ArgConfig, err *error)

// ConfigureCommandFunc is used when defining Command options
type ConfigureCommandFunc func(cmd *Command, err *error)

// NameConversionFunc converts a declared option name to the name matched on the command line
type NameConversionFunc func(string) string

// Built-in conversion strategies
var (
	// ToKebabCase converts a string to kebab case "my-option-name"
	ToKebabCase = func(s string) string {
		return strcase.ToKebab(s)
	}

	// ToSnakeCase converts a string to snake case "my_option_name"
	ToSnakeCase = func(s string) string {
		return strcase.ToSnake(s)
	}

	// ToLowerCamel converts a string to lower camel case "myOptionName"
	ToLowerCamel = func(s string) string {
		return strcase.ToLowerCamel(s)
	}

	// ToLowerCase converts a string to lower case "myoptionname"
	ToLowerCase = func(s string) string {
		return strings.ToLower(s)
	}
)

// ArgConfig collects the settings of an option or positional argument before
// it is constructed. Not every setting applies to every kind.
type ArgConfig struct {
	// ShortName is matched after the short prefix, e.g. "v" for -v
	ShortName string
	// MetaVar names the value in help output
	MetaVar string
	// Description is shown in help output
	Description string
	// Default is used when the argument is absent from the command line
	Default    interface{}
	HasDefault bool
	// AcceptEmpty lets collections accept empty values
	AcceptEmpty    bool
	emptyValuesSet bool
}
