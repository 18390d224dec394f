package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	SMTP      SMTPConfig      `yaml:"smtp"`
	Log       LogConfig       `yaml:"log"`
	Billing   BillingConfig   `yaml:"billing"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DatabaseConfig contains PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`
}

// SMTPConfig contains email service settings. Email sending is
// disabled when Host is empty.
type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// BillingConfig contains invoice generation settings
type BillingConfig struct {
	// Day of month written as the payment date on generated rent invoices.
	InvoiceDueDay int `yaml:"invoice_due_day"`
	// Days ahead of a contract's end date at which expiry notices go out.
	ExpiryNoticeDays int `yaml:"expiry_notice_days"`
	// Minutes a pending delete confirmation token stays valid.
	DeleteTokenTTLMinutes int `yaml:"delete_token_ttl_minutes"`
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	GenerateMonthlyInvoices string `yaml:"generate_monthly_invoices"`
	SendOverdueReminders    string `yaml:"send_overdue_reminders"`
	SendExpiryNotices       string `yaml:"send_expiry_notices"`
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Override with environment variables if present
	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	// Database
	if val := os.Getenv("DB_HOST"); val != "" {
		c.Database.Host = val
	}
	if val := os.Getenv("DB_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Database.Port)
	}
	if val := os.Getenv("DB_USER"); val != "" {
		c.Database.User = val
	}
	if val := os.Getenv("DB_PASSWORD"); val != "" {
		c.Database.Password = val
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		c.Database.Database = val
	}
	if val := os.Getenv("DB_SSL_MODE"); val != "" {
		c.Database.SSLMode = val
	}

	// SMTP
	if val := os.Getenv("SMTP_HOST"); val != "" {
		c.SMTP.Host = val
	}
	if val := os.Getenv("SMTP_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.SMTP.Port)
	}
	if val := os.Getenv("SMTP_USER"); val != "" {
		c.SMTP.User = val
	}
	if val := os.Getenv("SMTP_PASSWORD"); val != "" {
		c.SMTP.Password = val
	}
	if val := os.Getenv("SMTP_FROM"); val != "" {
		c.SMTP.From = val
	}

	// Server
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}

	// Set defaults for log if not configured
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Server validation
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	// Database validation
	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}
	if c.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}

	// SMTP validation (optional, but when set the port must be sane)
	if c.SMTP.Host != "" {
		if c.SMTP.Port <= 0 || c.SMTP.Port > 65535 {
			return fmt.Errorf("invalid SMTP port: %d", c.SMTP.Port)
		}
		if c.SMTP.From == "" {
			return fmt.Errorf("SMTP from address is required")
		}
	}

	// Billing defaults
	if c.Billing.InvoiceDueDay <= 0 || c.Billing.InvoiceDueDay > 28 {
		c.Billing.InvoiceDueDay = 25
	}
	if c.Billing.ExpiryNoticeDays <= 0 {
		c.Billing.ExpiryNoticeDays = 30
	}
	if c.Billing.DeleteTokenTTLMinutes <= 0 {
		c.Billing.DeleteTokenTTLMinutes = 15
	}

	// Scheduler defaults
	if c.Scheduler.GenerateMonthlyInvoices == "" {
		c.Scheduler.GenerateMonthlyInvoices = "0 0 1 1 * *" // 1st of month at 1 AM UTC
	}
	if c.Scheduler.SendOverdueReminders == "" {
		c.Scheduler.SendOverdueReminders = "0 0 9 * * *" // Daily at 9 AM UTC
	}
	if c.Scheduler.SendExpiryNotices == "" {
		c.Scheduler.SendExpiryNotices = "0 30 9 * * *" // Daily at 9:30 AM UTC
	}

	return nil
}

// GetDatabaseConnectionString returns a PostgreSQL connection string
func (c *Config) GetDatabaseConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Database,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// EmailEnabled reports whether SMTP is configured
func (c *Config) EmailEnabled() bool {
	return c.SMTP.Host != ""
}
