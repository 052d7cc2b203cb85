package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "APP_"

// profilePattern keeps profile names usable as plain file names.
var profilePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

// Option adjusts Load.
type Option func(*loader)

type loader struct {
	dir string
}

// WithConfigDir reads YAML files from dir instead of ./configs.
func WithConfigDir(dir string) Option {
	return func(l *loader) {
		l.dir = dir
	}
}

// Load assembles the configuration for profile. Each layer overrides the
// ones before it:
//
//	built-in defaults
//	<dir>/base.yaml
//	<dir>/<profile>.yaml
//	APP_* environment variables
//
// Environment names are matched against the keys already known, so
// APP_SEED_REMOTE_BASE_URL sets seed.remote.base_url rather than
// seed.remote.base.url. Unknown names fall back to one level per underscore.
func Load(profile string, opts ...Option) (*Config, error) {
	if !profilePattern.MatchString(profile) {
		return nil, fmt.Errorf("invalid profile %q: want letters, digits, '-' or '_'", profile)
	}

	l := &loader{dir: "configs"}
	for _, opt := range opts {
		opt(l)
	}

	k := koanf.New(".")
	for key, value := range defaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("setting default %s: %w", key, err)
		}
	}

	for _, name := range []string{"base", profile} {
		path := filepath.Join(l.dir, name+".yaml")
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:        envPrefix,
		TransformFunc: envKeyMapper(k.Keys()),
	}), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Join(fmt.Errorf("config profile %q is invalid", profile), err)
	}
	return &cfg, nil
}

// envKeyMapper turns APP_FOO_BAR into the dotted koanf key it names.
func envKeyMapper(known []string) func(string, string) (string, any) {
	byEnv := make(map[string]string, len(known))
	for _, key := range known {
		byEnv[strings.ReplaceAll(key, ".", "_")] = key
	}

	return func(name, value string) (string, any) {
		name = strings.ToLower(strings.TrimPrefix(name, envPrefix))
		if key, ok := byEnv[name]; ok {
			return key, value
		}
		return strings.ReplaceAll(name, "_", "."), value
	}
}
