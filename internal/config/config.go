package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the timeclock application
type Config struct {
	Owner       OwnerConfig       `toml:"owner"`
	Database    DatabaseConfig    `toml:"database"`
	Entry       EntryConfig       `toml:"entry"`
	Application ApplicationConfig `toml:"application"`
}

// OwnerConfig identifies whose time is being tracked
type OwnerConfig struct {
	ID string `toml:"id"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string        `toml:"dir"`
	Filename       string        `toml:"filename"`
	QueryTimeout   time.Duration `toml:"query_timeout"`
	WriteTimeout   time.Duration `toml:"write_timeout"`
	DirPermissions uint32        `toml:"dir_permissions"`
}

// EntryConfig holds defaults applied when recording time
type EntryConfig struct {
	// BackdateEndHour anchors duration-mode entries logged for past dates
	// at this local wall-clock hour.
	BackdateEndHour int    `toml:"backdate_end_hour"`
	DefaultActivity string `toml:"default_activity"`
	DefaultBillable bool   `toml:"default_billable"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `toml:"timeout"`
	Verbose bool          `toml:"verbose"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".timeclock")

	ownerID := os.Getenv("USER")
	if ownerID == "" {
		ownerID = "default"
	}

	return &Config{
		Owner: OwnerConfig{
			ID: ownerID,
		},
		Database: DatabaseConfig{
			Dir:            defaultDBDir,
			Filename:       "timeclock.db",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Entry: EntryConfig{
			BackdateEndHour: 17,
			DefaultActivity: "development",
			DefaultBillable: false,
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// GetQueryTimeout returns the database query timeout
func (c *Config) GetQueryTimeout() time.Duration {
	return c.Database.QueryTimeout
}

// GetWriteTimeout returns the database write timeout
func (c *Config) GetWriteTimeout() time.Duration {
	return c.Database.WriteTimeout
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	if owner := os.Getenv("TC_OWNER"); owner != "" {
		c.Owner.ID = owner
	}

	// Database configuration
	if dir := os.Getenv("TC_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("TC_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if timeout := os.Getenv("TC_DB_QUERY_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.QueryTimeout = d
		}
	}
	if timeout := os.Getenv("TC_DB_WRITE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.WriteTimeout = d
		}
	}
	if perms := os.Getenv("TC_DB_DIR_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Database.DirPermissions = uint32(p)
		}
	}

	// Entry configuration
	if hour := os.Getenv("TC_ENTRY_BACKDATE_END_HOUR"); hour != "" {
		if h, err := strconv.Atoi(hour); err == nil {
			c.Entry.BackdateEndHour = h
		}
	}
	if activity := os.Getenv("TC_ENTRY_DEFAULT_ACTIVITY"); activity != "" {
		c.Entry.DefaultActivity = activity
	}
	if billable := os.Getenv("TC_ENTRY_DEFAULT_BILLABLE"); billable != "" {
		if b, err := strconv.ParseBool(billable); err == nil {
			c.Entry.DefaultBillable = b
		}
	}

	// Application configuration
	if timeout := os.Getenv("TC_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("TC_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Owner.ID == "" {
		return &ConfigError{Field: "owner.id", Message: "owner ID cannot be empty"}
	}

	// Validate database configuration
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Database.WriteTimeout <= 0 {
		return &ConfigError{Field: "database.write_timeout", Message: "write timeout must be positive"}
	}

	// Validate entry configuration
	if c.Entry.BackdateEndHour < 0 || c.Entry.BackdateEndHour > 23 {
		return &ConfigError{Field: "entry.backdate_end_hour", Message: "backdate end hour must be between 0 and 23"}
	}

	// Validate application configuration
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
