package config

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

// Config holds the configuration for the aitoolbox server.
type Config struct {
	// Listen is the address the server will listen on.
	Listen string `yaml:"listen" mapstructure:"listen"`
	// ServerURL is the base URL of the server.
	ServerURL string `yaml:"server_url" mapstructure:"server_url"`
	// LogLevel is the log level (debug, info, warn, error).
	LogLevel string `yaml:"log_level" mapstructure:"log_level"`
	// Database holds the database configuration.
	Database *DatabaseConfig `yaml:"database" mapstructure:"database"`
	// Session holds the session configuration.
	Session *SessionConfig `yaml:"session" mapstructure:"session"`
	// Admin holds the default admin identity seeded on first startup.
	Admin *AdminConfig `yaml:"admin" mapstructure:"admin"`
}

// DatabaseConfig holds the database configuration.
type DatabaseConfig struct {
	// Path is the path to the sqlite database file.
	Path string `yaml:"path" mapstructure:"path"`
}

// SessionConfig holds the session configuration.
type SessionConfig struct {
	// Key is the key used to encrypt session data.
	Key string `yaml:"key" mapstructure:"key"`
	// MaxAge is the maximum age of a session in seconds.
	MaxAge int `yaml:"max_age" mapstructure:"max_age"`
}

// AdminConfig holds the default admin identity.
// The admin row is only created if no admin with that username exists yet,
// so changing the password here has no effect after the first startup.
type AdminConfig struct {
	// Username is the reserved admin username.
	Username string `yaml:"username" mapstructure:"username"`
	// Password is the initial admin password.
	Password string `yaml:"password" mapstructure:"password"`
}

// Load reads the configuration from the specified path and returns a Config struct.
// If path is empty, it will use default search paths for config files.
// If no config file is found, the defaults are used.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigType("yaml")
	v.SetEnvPrefix("AITOOLBOX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.aitoolbox")
		v.AddConfigPath("/etc/aitoolbox")
	}

	if err := v.ReadInConfig(); err != nil {
		// If no config file is found, use defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		log.Debug("Using config file", "file", v.ConfigFileUsed())
		log.Debug("Environment variables with AITOOLBOX_ prefix will override config file values")
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&c); err != nil {
		return nil, err
	}

	return &c, nil
}

// setDefaults sets default values for the configuration.
func setDefaults(v *viper.Viper) {
	v.SetDefault("listen", "0.0.0.0:3003")
	v.SetDefault("server_url", "http://localhost:3003")
	v.SetDefault("log_level", "info")

	v.SetDefault("database.path", "data/aitoolbox.db")

	v.SetDefault("session.max_age", 86400) // 24 hours

	v.SetDefault("admin.username", "admin")
	v.SetDefault("admin.password", "admin123")
}

// validateConfig validates the configuration.
func validateConfig(c *Config) error {
	if c == nil {
		return fmt.Errorf("missing config")
	}

	if c.Database == nil || c.Database.Path == "" {
		return fmt.Errorf("database path is required")
	}

	if c.Admin == nil || c.Admin.Username == "" {
		return fmt.Errorf("admin username is required")
	}
	if c.Admin.Password == "" {
		return fmt.Errorf("admin password is required")
	}

	if c.Session == nil || c.Session.MaxAge <= 0 {
		return fmt.Errorf("session max age must be positive")
	}

	if c.Session.Key == "" {
		log.Warn("No session key configured, sessions will not survive restarts")
	}

	return nil
}
