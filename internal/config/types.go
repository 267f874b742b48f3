package config

// Config is the root configuration structure for the application.
type Config struct {
	LogLevel string      `yaml:"log_level" mapstructure:"log_level"`
	LogFile  string      `yaml:"log_file" mapstructure:"log_file"`
	Store    StoreConfig `yaml:"store" mapstructure:"store"`
}

// StoreConfig holds path-store persistence configuration.
type StoreConfig struct {
	// FilePath is the JSON document the path tree is persisted to.
	FilePath string `yaml:"file_path" mapstructure:"file_path"`
}
