package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Security SecurityConfig `yaml:"security"`
	Paths    PathsConfig    `yaml:"paths"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	Mode string `yaml:"mode"`
}

type DatabaseConfig struct {
	Type   string       `yaml:"type"`
	SQLite SQLiteConfig `yaml:"sqlite"`
	MySQL  MySQLConfig  `yaml:"mysql"`
}

type SQLiteConfig struct {
	Path string `yaml:"path"`
}

type MySQLConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	Charset  string `yaml:"charset"`
}

type SecurityConfig struct {
	PasswordScheme string `yaml:"password_scheme"` // sha256 or bcrypt
	PasswordSalt   string `yaml:"password_salt"`
	BcryptCost     int    `yaml:"bcrypt_cost"`
	SessionTTL     string `yaml:"session_ttl"`
}

type PathsConfig struct {
	Uploads string `yaml:"uploads"`
}

var Global *Config

// SessionTTL parses the configured session lifetime, defaulting to 12 hours.
func (c *Config) SessionTTL() time.Duration {
	ttl, err := time.ParseDuration(c.Security.SessionTTL)
	if err != nil || ttl <= 0 {
		return 12 * time.Hour
	}
	return ttl
}

// Load reads the configuration file and environment variables
func Load(configPath string) (*Config, error) {
	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Override with environment variables
	if salt := os.Getenv("ASSETMGR_PASSWORD_SALT"); salt != "" {
		cfg.Security.PasswordSalt = salt
	}

	if scheme := os.Getenv("ASSETMGR_PASSWORD_SCHEME"); scheme != "" {
		cfg.Security.PasswordScheme = scheme
	}

	if dbType := os.Getenv("ASSETMGR_DB_TYPE"); dbType != "" {
		cfg.Database.Type = dbType
	}

	if dbPath := os.Getenv("ASSETMGR_DB_PATH"); dbPath != "" {
		cfg.Database.SQLite.Path = dbPath
	}

	if mysqlHost := os.Getenv("ASSETMGR_MYSQL_HOST"); mysqlHost != "" {
		cfg.Database.MySQL.Host = mysqlHost
	}

	if mysqlUser := os.Getenv("ASSETMGR_MYSQL_USER"); mysqlUser != "" {
		cfg.Database.MySQL.Username = mysqlUser
	}

	if mysqlPass := os.Getenv("ASSETMGR_MYSQL_PASSWORD"); mysqlPass != "" {
		cfg.Database.MySQL.Password = mysqlPass
	}

	if mysqlDB := os.Getenv("ASSETMGR_MYSQL_DATABASE"); mysqlDB != "" {
		cfg.Database.MySQL.Database = mysqlDB
	}

	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
	}

	// Defaults
	if cfg.Security.PasswordSalt == "" {
		cfg.Security.PasswordSalt = "assetmgr_salt_v1"
	}
	if cfg.Security.PasswordScheme == "" {
		cfg.Security.PasswordScheme = "sha256"
	}
	if cfg.Security.BcryptCost == 0 {
		cfg.Security.BcryptCost = 12
	}
	if cfg.Paths.Uploads == "" {
		cfg.Paths.Uploads = "uploads"
	}

	// Ensure data directory exists for SQLite
	if cfg.Database.Type == "sqlite" {
		dataDir := filepath.Dir(cfg.Database.SQLite.Path)
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	// Validate MySQL configuration if MySQL is selected
	if cfg.Database.Type == "mysql" {
		if cfg.Database.MySQL.Username == "" {
			return nil, fmt.Errorf("MySQL username is required")
		}
		if cfg.Database.MySQL.Database == "" {
			return nil, fmt.Errorf("MySQL database name is required")
		}
	}

	// Ensure uploads directory exists
	if err := os.MkdirAll(cfg.Paths.Uploads, 0755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}

	Global = &cfg
	return &cfg, nil
}
