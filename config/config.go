// Package config reads settings from an optional JSON file with viper,
// falling back to defaults for anything the file leaves out.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/lixenwraith/term-invaders/input"
)

// Load sets defaults and reads term-invaders.cfg.json from configDir if it
// exists. A missing file is fine; a malformed one is a startup error.
func Load(configDir string) error {
	viper.SetDefault("logFile", "term-invaders.log")
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("startLevel", 1)

	for action, key := range input.DefaultBindings() {
		viper.SetDefault("keys."+action, key)
	}

	viper.SetConfigName("term-invaders.cfg.json")
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

// LogFile returns the log file path.
func LogFile() string {
	return viper.GetString("logFile")
}

// LogLevel returns the configured zerolog level name.
func LogLevel() string {
	return viper.GetString("logLevel")
}

// StartLevel returns the level a new run starts on.
func StartLevel() int {
	return viper.GetInt("startLevel")
}

// Bindings returns the action-name to key-name map for the keymap.
func Bindings() map[string]string {
	bindings := make(map[string]string)
	for action := range input.DefaultBindings() {
		bindings[action] = viper.GetString("keys." + action)
	}
	return bindings
}
