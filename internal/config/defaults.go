package config

import "github.com/spf13/viper"

// Default configuration values.
const (
	DefaultLogLevel = "info"
	DefaultLogFile  = "~/.config/hierpath/hierpath.log"

	DefaultStoreFilePath = "~/.config/hierpath/paths.json"
)

// setDefaults registers all default configuration values with viper.
// Called during Init() before reading config files.
func setDefaults() {
	viper.SetDefault("log_level", DefaultLogLevel)
	viper.SetDefault("log_file", DefaultLogFile)

	viper.SetDefault("store.file_path", DefaultStoreFilePath)
}
