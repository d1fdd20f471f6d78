// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"fmt"
	"go/token"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gitlab.com/accumulatenetwork/ircgen/pkg/errors"
	"gitlab.com/accumulatenetwork/ircgen/tools/internal/typegen"
)

// DefaultInput is the table read when no input is given.
const DefaultInput = "codes.txt"

// Stdout is the output name that selects standard output.
const Stdout = "-"

// Config is the configuration of a generator run.
type Config struct {
	Input    string `mapstructure:"input" validate:"required"`
	Out      string `mapstructure:"out" validate:"required"`
	Package  string `mapstructure:"package" validate:"required,go-ident"`
	Type     string `mapstructure:"type" validate:"required,go-ident"`
	Template string `mapstructure:"template"`
	Prefix   bool   `mapstructure:"prefix"`
	Unique   bool   `mapstructure:"unique"`
	Check    bool   `mapstructure:"check"`

	LogLevel  string `mapstructure:"log-level"`
	LogFormat string `mapstructure:"log-format" validate:"oneof=plain text json"`

	Files typegen.FileReader `mapstructure:",squash"`
}

func (c *Config) SetFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.Input, "input", DefaultInput, "Code table to read")
	flags.StringVarP(&c.Out, "out", "o", Stdout, "Output file, or - for standard output")
	flags.StringVar(&c.Package, "package", "irc", "Package name")
	flags.StringVar(&c.Type, "type", "Code", "Type name")
	flags.StringVar(&c.Template, "template", "", "Template file to use instead of the built-in Go template")
	flags.BoolVar(&c.Prefix, "prefix", false, "Prefix values with the type name")
	flags.BoolVar(&c.Unique, "unique", false, "Fail if two codes have the same identifier")
	flags.BoolVar(&c.Check, "check", false, "Verify the output file is up to date instead of writing it")
	flags.StringVar(&c.LogLevel, "log-level", "warn", "Log level")
	flags.StringVar(&c.LogFormat, "log-format", "plain", "Log format (plain, text, or json)")
	c.Files.SetFlags(flags, "codes")
}

// ToStdout returns true if the output goes to standard output.
func (c *Config) ToStdout() bool { return c.Out == Stdout }

// LoadConfig resolves the configuration from flags, GEN_CODE_* environment
// variables, and the config file, if one is given.
func LoadConfig(flags *pflag.FlagSet, file string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("GEN_CODE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	err := v.BindPFlags(flags)
	if err != nil {
		return nil, errors.BadRequest.WithFormat("bind flags: %w", err)
	}

	if file != "" {
		v.SetConfigFile(file)
		err = v.ReadInConfig()
		if err != nil {
			return nil, errors.ResourceUnavailable.WithFormat("read %s: %w", file, err)
		}
	}

	cfg := new(Config)
	err = v.Unmarshal(cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToSliceHookFunc(","),
	)))
	if err != nil {
		return nil, errors.BadRequest.WithFormat("unmarshal: %w", err)
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	v, err := newValidator()
	if err != nil {
		return errors.UnknownError.WithFormat("validator: %w", err)
	}

	err = v.Struct(c)
	if err != nil {
		return errors.BadRequest.WithFormat("invalid configuration: %w", err)
	}
	if c.Check && c.ToStdout() {
		return errors.BadRequest.With("--check requires --out")
	}
	return nil
}

// newValidator returns a validator that also knows go-ident, which accepts
// Go identifiers that are not keywords.
func newValidator() (*validator.Validate, error) {
	v := validator.New()
	err := v.RegisterValidation("go-ident", func(fl validator.FieldLevel) bool {
		if fl.Field().Kind() != reflect.String {
			panic(fmt.Errorf("%q is not a string", fl.FieldName()))
		}
		return token.IsIdentifier(fl.Field().String())
	})
	return v, err
}
