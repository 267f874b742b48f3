package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// configFilePath stores the path to the loaded config file
var configFilePath string

var (
	loaded   *Config
	loadedMu sync.Mutex
)

// Init initializes the configuration subsystem.
// It searches for configuration files in priority order:
//  1. Directory specified by HIERPATH_CONFIG_DIR environment variable
//  2. ~/.config/hierpath/
//  3. Current working directory (.)
//
// If no config file is found, sensible defaults are used.
// If a config file exists but is invalid or unreadable, Init returns an error.
func Init() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("HIERPATH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if envPath := os.Getenv("HIERPATH_CONFIG_DIR"); envPath != "" {
		viper.AddConfigPath(envPath)
	}

	if home := os.Getenv("HOME"); home != "" {
		viper.AddConfigPath(filepath.Join(home, ".config", "hierpath"))
	}

	viper.AddConfigPath(".")

	err := viper.ReadInConfig()
	if err != nil {
		// A missing config file is acceptable - defaults apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			configFilePath = ""
			return nil
		}

		return fmt.Errorf("failed to read config; %w", err)
	}

	configFilePath = viper.ConfigFileUsed()
	return nil
}

// Get returns the typed configuration, unmarshaled from the current viper
// state. The result is cached until Reset.
func Get() *Config {
	loadedMu.Lock()
	defer loadedMu.Unlock()

	if loaded != nil {
		return loaded
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		// Defaults are registered for every key, so unmarshal failure means
		// a type mismatch in the config file; fall back to defaults.
		cfg = &Config{
			LogLevel: DefaultLogLevel,
			LogFile:  DefaultLogFile,
			Store:    StoreConfig{FilePath: DefaultStoreFilePath},
		}
	}
	loaded = cfg
	return loaded
}

// ConfigFilePath returns the path to the loaded config file,
// or empty string if using defaults only.
func ConfigFilePath() string {
	return configFilePath
}

// Reset clears the configuration state for testing purposes.
func Reset() {
	loadedMu.Lock()
	defer loadedMu.Unlock()

	viper.Reset()
	configFilePath = ""
	loaded = nil
}

// GetString returns the string value for the given key.
// Returns empty string if key is not found.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetPath returns the string value for the given key with ~ expanded to
// $HOME. Returns empty string if key is not found.
func GetPath(key string) string {
	return ExpandPath(viper.GetString(key))
}

// ExpandPath expands a leading ~ in path to the user's home directory.
// Only expands "~" alone or "~/..." patterns. Patterns like "~user" are not
// expanded. Returns the path unchanged if home cannot be determined.
func ExpandPath(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	if len(path) > 1 && path[1] != '/' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	if len(path) == 1 {
		return home
	}

	return filepath.Join(home, path[2:])
}
