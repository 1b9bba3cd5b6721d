package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/deepnoodle-ai/esparse/parser"
)

// flagKeys maps flag names to the configuration keys they override. Keys
// follow the field names of parser.Config.
var flagKeys = map[string]string{
	"attach-comment": "attachComment",
	"max-depth":      "maxDepth",
}

func (a *app) bindFlags(flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Name == "feature" {
			return
		}
		key := f.Name
		if k, ok := flagKeys[f.Name]; ok {
			key = k
		}
		// BindPFlag only fails for a nil flag.
		_ = a.v.BindPFlag(key, f)
	})
}

// initConfig reads the config file and environment. An explicit --config
// file must exist; the default $HOME/.esparse.yaml is optional.
func (a *app) initConfig() error {
	a.v.SetEnvPrefix("esparse")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if file := a.v.GetString("config"); file != "" {
		a.v.SetConfigFile(file)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", file, err)
		}
		return nil
	}

	home, err := homedir.Dir()
	if err != nil {
		return nil
	}
	a.v.AddConfigPath(home)
	a.v.SetConfigName(".esparse")
	a.v.SetConfigType("yaml")
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

// parseConfig assembles the parser configuration from the config file,
// environment and flags. --feature flags apply on top of any features set
// in the config file.
func (a *app) parseConfig(features []string, label string) (parser.Config, error) {
	var cfg parser.Config
	if err := a.v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	for _, spec := range features {
		name, on, err := parseFeatureFlag(spec)
		if err != nil {
			return cfg, err
		}
		if cfg.Features == nil {
			cfg.Features = map[string]bool{}
		}
		cfg.Features[name] = on
	}
	if cfg.Source == "" {
		cfg.Source = label
	}
	return cfg, nil
}

// parseFeatureFlag parses "name=bool". A bare name enables the feature.
func parseFeatureFlag(spec string) (string, bool, error) {
	name, value, found := strings.Cut(spec, "=")
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false, fmt.Errorf("invalid feature %q: missing name", spec)
	}
	if !found {
		return name, true, nil
	}
	on, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return "", false, fmt.Errorf("invalid feature %q: %s is not a boolean", spec, value)
	}
	return name, on, nil
}
