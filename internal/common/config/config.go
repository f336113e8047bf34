// internal/common/config/config.go
package config

import (
	"fmt"
	"time"
)

// Config is the main application configuration struct.
type Config struct {
	App           AppConfig          `mapstructure:"app"`
	Server        ServerConfig       `mapstructure:"server"`
	Database      DatabaseConfig     `mapstructure:"database"`
	Admin         AdminConfig        `mapstructure:"admin"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	Logging       LoggingConfig      `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Port            int      `mapstructure:"port"`
	ReadTimeout     int      `mapstructure:"read_timeout"`     // seconds
	WriteTimeout    int      `mapstructure:"write_timeout"`    // seconds
	ShutdownTimeout int      `mapstructure:"shutdown_timeout"` // seconds
	AllowedOrigins  []string `mapstructure:"allowed_origins"`
}

func (s ServerConfig) ReadDuration() time.Duration {
	return secondsOrDefault(s.ReadTimeout, 15)
}

func (s ServerConfig) WriteDuration() time.Duration {
	return secondsOrDefault(s.WriteTimeout, 30)
}

func (s ServerConfig) ShutdownDuration() time.Duration {
	return secondsOrDefault(s.ShutdownTimeout, 30)
}

func secondsOrDefault(v, def int) time.Duration {
	if v <= 0 {
		v = def
	}
	return time.Duration(v) * time.Second
}

type DatabaseConfig struct {
	Postgres PostgresConfig `mapstructure:"postgres"`
	Redis    RedisConfig    `mapstructure:"redis"`
}

type PostgresConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Database       string `mapstructure:"database"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	MaxConnections int    `mapstructure:"max_connections"`
	MaxIdle        int    `mapstructure:"max_idle"`
	SSLMode        string `mapstructure:"sslmode"`
}

// GetDSN returns the PostgreSQL connection string
func (p PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// AdminConfig holds the back-office credential pair and session policy.
// Credentials come from the environment (ADMIN_EMAIL / ADMIN_PASSWORD),
// never from the yaml files.
type AdminConfig struct {
	Email      string `mapstructure:"email"`
	Password   string `mapstructure:"password"`
	SessionTTL int    `mapstructure:"session_ttl"` // hours
}

func (a AdminConfig) SessionDuration() time.Duration {
	hours := a.SessionTTL
	if hours <= 0 {
		hours = 24
	}
	return time.Duration(hours) * time.Hour
}

// NotificationConfig wires the inquiry notifier.
type NotificationConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	AWSRegion   string `mapstructure:"aws_region"`
	FromEmail   string `mapstructure:"from_email"`
	OfficeEmail string `mapstructure:"office_email"`
	SNSTopicARN string `mapstructure:"sns_topic_arn"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
