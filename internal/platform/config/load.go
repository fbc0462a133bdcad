package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
)

// Option configures the Load function.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
	envFiles  []string
}

// WithConfigDir sets the directory where config YAML files are located.
// Defaults to "configs" relative to the working directory.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// WithEnvFiles loads the given dotenv files into the process environment
// before the APP_* layer is read. Missing files are skipped and variables
// already set in the environment win.
func WithEnvFiles(paths ...string) Option {
	return func(o *loadOptions) {
		o.envFiles = append(o.envFiles, paths...)
	}
}

// Load reads configuration in four layers, later ones overriding earlier:
//
//  1. built-in defaults
//  2. {configDir}/base.yaml
//  3. {configDir}/{profile}.yaml
//  4. APP_* environment variables, optionally seeded from dotenv files
//
// Env names are matched against the known keys so that field-internal
// underscores survive:
//
//	APP_SERVER_READ_TIMEOUT                    -> server.read_timeout
//	APP_STORAGE_REMOTE_DSN                     -> storage.remote.dsn
//	APP_CLIENTS_FA_SCHEDULE_RETRY_MAX_ATTEMPTS -> clients.fa_schedule.retry.max_attempts
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")
	layers := []struct {
		name string
		load func(*koanf.Koanf) error
	}{
		{"defaults", loadDefaults},
		{"base config", yamlLayer(filepath.Join(o.configDir, "base.yaml"))},
		{"profile config", yamlLayer(filepath.Join(o.configDir, profile+".yaml"))},
		{"environment", envLayer(o.envFiles)},
	}
	for _, l := range layers {
		if err := l.load(k); err != nil {
			return nil, fmt.Errorf("loading %s: %w", l.name, err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

func loadDefaults(k *koanf.Koanf) error {
	for key, val := range defaults() {
		if err := k.Set(key, val); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

func yamlLayer(path string) func(*koanf.Koanf) error {
	return func(k *koanf.Koanf) error {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return nil
	}
}

// envLayer reads APP_* variables. Names are resolved against the keys the
// earlier layers produced; unknown names fall back to one key segment per
// underscore.
func envLayer(envFiles []string) func(*koanf.Koanf) error {
	return func(k *koanf.Koanf) error {
		if err := loadEnvFiles(envFiles); err != nil {
			return err
		}
		known := buildEnvLookup(k.Keys())
		return k.Load(env.Provider(".", env.Opt{
			Prefix: envPrefix,
			TransformFunc: func(name, value string) (string, any) {
				name = strings.ToLower(strings.TrimPrefix(name, envPrefix))
				if key, ok := known[name]; ok {
					return key, value
				}
				return strings.ReplaceAll(name, "_", "."), value
			},
		}), nil)
	}
}

func loadEnvFiles(paths []string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("loading env file %s: %w", p, err)
		}
	}
	return nil
}

// validateProfile rejects names that could escape configDir.
func validateProfile(profile string) error {
	if strings.TrimSpace(profile) == "" {
		return errors.New("profile must not be empty")
	}
	if strings.ContainsAny(profile, `/\`) {
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	}
	if strings.Contains(profile, "..") {
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	}
	return nil
}

// buildEnvLookup maps the env form of every known key ("storage_remote_dsn")
// back to its dotted koanf key ("storage.remote.dsn").
func buildEnvLookup(keys []string) map[string]string {
	lookup := make(map[string]string, len(keys))
	for _, key := range keys {
		envKey := strings.ReplaceAll(key, ".", "_")
		lookup[envKey] = key
	}
	return lookup
}
