// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"fmt"
	"strings"

	"github.com/anisan-cli/anidb/constant"
	"github.com/anisan-cli/anidb/filesystem"
	"github.com/anisan-cli/anidb/mask"
	"github.com/anisan-cli/anidb/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer normalizes configuration keys into environment variable names.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup registers defaults and environment bindings and reads the config file, if any.
func Setup() error {
	viper.SetConfigName(constant.App)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.App)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return err
	}

	return nil
}

// Mask reads the hex mask stored under k and parses it with table t.
func Mask(k string, t *mask.Table) (mask.Mask, error) {
	m, err := t.Parse(viper.GetString(k))
	if err != nil {
		return mask.Mask{}, fmt.Errorf("config %s: %w", k, err)
	}
	return m, nil
}
