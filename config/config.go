// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/tintscan/tintscan/constant"
	"github.com/tintscan/tintscan/filesystem"
	"github.com/tintscan/tintscan/where"
)

// EnvKeyReplacer is a strings.Replacer used to normalize configuration keys into environment variable naming conventions.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// ProjectFile is the name of the optional per-project configuration file merged over the user configuration.
const ProjectFile = "." + constant.Tintscan + ".toml"

// Setup initializes the global configuration state, including defaults, environment bindings, and localized file resolution.
func Setup() error {
	viper.SetConfigName(constant.Tintscan)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Tintscan)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}

	return nil
}

// MergeProject overlays the project configuration found in dir, if any, on top of the user configuration.
// A missing project file is not an error.
func MergeProject(dir string) error {
	path := filepath.Join(dir, ProjectFile)

	exists, err := filesystem.API().Exists(path)
	if err != nil || !exists {
		return err
	}

	f, err := filesystem.API().Open(path)
	if err != nil {
		return fmt.Errorf("open project config: %w", err)
	}
	defer f.Close()

	if err := viper.MergeConfig(f); err != nil {
		return fmt.Errorf("merge project config %s: %w", path, err)
	}

	return nil
}

// File returns the path of the user configuration file.
func File() string {
	return filepath.Join(where.Config(), constant.Tintscan+".toml")
}

// Parse converts the textual form of a value to the type of the key's default.
func Parse(key string, values []string) (any, error) {
	field, ok := Default[key]
	if !ok {
		return nil, fmt.Errorf("unknown key %s", key)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("no value for %s", key)
	}

	switch field.Value.(type) {
	case string:
		return values[0], nil
	case int:
		n, err := strconv.Atoi(values[0])
		if err != nil {
			return nil, fmt.Errorf("invalid integer value: %s", values[0])
		}
		return n, nil
	case bool:
		b, err := strconv.ParseBool(values[0])
		if err != nil {
			return nil, fmt.Errorf("invalid boolean value: %s", values[0])
		}
		return b, nil
	case []string:
		return lo.FlatMap(values, func(v string, _ int) []string {
			return lo.Map(strings.Split(v, ","), func(s string, _ int) string { return strings.TrimSpace(s) })
		}), nil
	default:
		return nil, fmt.Errorf("unsupported type for %s", key)
	}
}

// SetProject writes a key into the project configuration file of dir.
func SetProject(dir, key string, value any) error {
	project := viper.New()
	project.SetFs(filesystem.API())
	project.SetConfigType("toml")

	path := filepath.Join(dir, ProjectFile)
	if exists, _ := filesystem.API().Exists(path); exists {
		project.SetConfigFile(path)
		if err := project.ReadInConfig(); err != nil {
			return fmt.Errorf("read project config: %w", err)
		}
	}

	project.Set(key, value)
	return project.WriteConfigAs(path)
}
