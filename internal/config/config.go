package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables read by Parse.
const EnvPrefix = "YAML_INCLUDE"

// ErrUsage is wrapped by Parse for invalid command lines.
var ErrUsage = errors.New("usage error")

// Config holds the command line configuration.
type Config struct {
	// Input is the document to resolve.
	Input string `mapstructure:"input" validate:"required"`
	// Output is the file to write to; empty means stdout. A .gz, .zst or .lz4
	// suffix compresses the output.
	Output string `mapstructure:"output"`
	// ErrorOnCircular fails on circular includes.
	ErrorOnCircular bool `mapstructure:"error-on-circular"`
	// Format is the output encoding.
	Format string `mapstructure:"format" validate:"required,oneof=yaml json cbor"`
	// Deps prints the files the input depends on instead of the document.
	Deps bool `mapstructure:"deps" validate:"excluded_with=Digest Dump"`
	// Digest prints the BLAKE3 digest of the output instead of the document.
	Digest bool `mapstructure:"digest" validate:"excluded_with=Dump"`
	// Dump prints a Go-syntax dump of the resolved value.
	Dump bool `mapstructure:"dump"`
	// Color controls syntax highlighting of terminal output.
	Color string `mapstructure:"color" validate:"required,oneof=auto always never"`
	// LogLevel is the minimum level of log records.
	LogLevel string `mapstructure:"log-level" validate:"required,oneof=debug info warn error"`
	// LogFormat is the log record encoding.
	LogFormat string `mapstructure:"log-format" validate:"required,oneof=text json"`
}

// NewFlagSet declares the command line flags.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SortFlags = false

	fs.StringP("output", "o", "", "write the result to `PATH` instead of stdout (.gz, .zst and .lz4 compress)")
	fs.BoolP("error-on-circular", "e", false, "fail on circular includes instead of emitting !circular placeholders")
	fs.StringP("format", "f", "yaml", "output format: yaml, json or cbor")
	fs.Bool("deps", false, "print the files the input depends on, with BLAKE3 digests")
	fs.Bool("digest", false, "print the BLAKE3 digest of the output")
	fs.Bool("dump", false, "print a Go-syntax dump of the resolved value")
	fs.String("color", "auto", "highlight terminal output: auto, always or never")
	fs.String("log-level", "warn", "log level: debug, info, warn or error")
	fs.String("log-format", "text", "log format: text or json")
	fs.BoolP("help", "h", false, "show help")

	return fs
}

// Parse parses args against fs, layers YAML_INCLUDE_* environment variables
// underneath and validates the result. It returns pflag.ErrHelp when help was
// requested.
func Parse(fs *pflag.FlagSet, args []string) (*Config, error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, err
		}

		return nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}

	if help, _ := fs.GetBool("help"); help {
		return nil, pflag.ErrHelp
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("binding flags: %w", err)
	}

	switch fs.NArg() {
	case 0:
		return nil, fmt.Errorf("%w: missing input file", ErrUsage)
	case 1:
		v.Set("input", fs.Arg(0))
	default:
		return nil, fmt.Errorf("%w: unexpected argument %q", ErrUsage, fs.Arg(1))
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}

	cfg.Format = strings.ToLower(cfg.Format)
	cfg.Color = strings.ToLower(cfg.Color)
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

var validate = newValidator()

func newValidator() func(*Config) error {
	val := validator.New(validator.WithRequiredStructEnabled())
	val.RegisterTagNameFunc(func(field reflect.StructField) string {
		return field.Tag.Get("mapstructure")
	})

	return func(cfg *Config) error {
		err := val.Struct(cfg)

		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}

		msgs := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			msgs = append(msgs, describe(fe))
		}

		return fmt.Errorf("%w: %s", ErrUsage, strings.Join(msgs, "; "))
	}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("--%s is required", fe.Field())
	case "oneof":
		return fmt.Sprintf("invalid --%s %q: must be one of %s", fe.Field(), fe.Value(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "excluded_with":
		return fmt.Sprintf("--%s cannot be combined with --%s", fe.Field(), strings.ToLower(strings.ReplaceAll(fe.Param(), " ", " or --")))
	default:
		return fmt.Sprintf("invalid --%s: %s", fe.Field(), fe.Tag())
	}
}
