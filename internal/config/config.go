package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Gemini     GeminiConfig     `yaml:"gemini"`
	Gmail      GmailConfig      `yaml:"gmail"`
	Redis      RedisConfig      `yaml:"redis"`
	SendGrid   SendGridConfig   `yaml:"sendgrid"`
	Auth       AuthConfig       `yaml:"auth"`
	Processing ProcessingConfig `yaml:"processing"`
	Scheduler  SchedulerConfig  `yaml:"scheduler"`
	Log        LogConfig        `yaml:"log"`
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

// GeminiConfig contains generative model settings
type GeminiConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

// GmailConfig contains mailbox polling settings. Polling is disabled
// when no refresh token is configured.
type GmailConfig struct {
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	RefreshToken string `yaml:"refresh_token"`
	Query        string `yaml:"query"`
	BatchSize    int64  `yaml:"batch_size"`
}

// RedisConfig contains dedup cache settings. Optional; an in-process
// cache is used when no address is configured.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// SendGridConfig contains notification email settings
type SendGridConfig struct {
	APIKey    string `yaml:"api_key"`
	FromEmail string `yaml:"from_email"`
	FromName  string `yaml:"from_name"`
}

// AuthConfig contains token verification settings
type AuthConfig struct {
	JWTSecret         string `yaml:"jwt_secret"`
	AdminPasswordHash string `yaml:"admin_password_hash"`
}

// ProcessingConfig contains extraction pipeline policy settings
type ProcessingConfig struct {
	DefaultDailyLimit int32 `yaml:"default_daily_limit"`
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	PollMailbox string `yaml:"poll_mailbox"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
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

	// Gemini
	if val := os.Getenv("GEMINI_API_KEY"); val != "" {
		c.Gemini.APIKey = val
	}
	if val := os.Getenv("GEMINI_MODEL"); val != "" {
		c.Gemini.Model = val
	}

	// Gmail
	if val := os.Getenv("GMAIL_CLIENT_ID"); val != "" {
		c.Gmail.ClientID = val
	}
	if val := os.Getenv("GMAIL_CLIENT_SECRET"); val != "" {
		c.Gmail.ClientSecret = val
	}
	if val := os.Getenv("GMAIL_REFRESH_TOKEN"); val != "" {
		c.Gmail.RefreshToken = val
	}

	// Redis
	if val := os.Getenv("REDIS_ADDR"); val != "" {
		c.Redis.Addr = val
	}
	if val := os.Getenv("REDIS_PASSWORD"); val != "" {
		c.Redis.Password = val
	}

	// SendGrid
	if val := os.Getenv("SENDGRID_API_KEY"); val != "" {
		c.SendGrid.APIKey = val
	}
	if val := os.Getenv("SENDGRID_FROM_EMAIL"); val != "" {
		c.SendGrid.FromEmail = val
	}

	// Auth
	if val := os.Getenv("JWT_SECRET"); val != "" {
		c.Auth.JWTSecret = val
	}
	if val := os.Getenv("ADMIN_PASSWORD_HASH"); val != "" {
		c.Auth.AdminPasswordHash = val
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

	// Gemini validation
	if c.Gemini.APIKey == "" {
		return fmt.Errorf("gemini API key is required")
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-1.5-flash"
	}

	// Auth validation
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("JWT secret must be at least 32 characters")
	}

	// Gmail polling is optional, but partial credentials are a
	// misconfiguration rather than "disabled".
	if c.Gmail.RefreshToken != "" {
		if c.Gmail.ClientID == "" || c.Gmail.ClientSecret == "" {
			return fmt.Errorf("gmail client_id and client_secret are required when a refresh token is set")
		}
	}
	if c.Gmail.Query == "" {
		c.Gmail.Query = "is:unread (guest OR visitor OR visit OR meeting OR appointment OR access)"
	}
	if c.Gmail.BatchSize <= 0 {
		c.Gmail.BatchSize = 10
	}

	// Processing defaults
	if c.Processing.DefaultDailyLimit <= 0 {
		c.Processing.DefaultDailyLimit = 10
	}

	// Scheduler defaults
	if c.Scheduler.PollMailbox == "" {
		c.Scheduler.PollMailbox = "*/30 * * * * *" // Every 30 seconds
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
