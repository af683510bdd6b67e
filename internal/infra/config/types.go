package config

import (
	"fmt"
	"time"
)

// Config represents the complete application configuration.
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Auth        AuthConfig     `mapstructure:"auth"`
	Storage     StorageConfig  `mapstructure:"storage"`
	Logging     LoggingConfig  `mapstructure:"logging"`
	SMTP        SMTPConfig     `mapstructure:"smtp"`
	SMS         SMSConfig      `mapstructure:"sms"`
	Jobs        JobsConfig     `mapstructure:"jobs"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port            string `mapstructure:"port"`
	ReadTimeout     int    `mapstructure:"read_timeout"`
	WriteTimeout    int    `mapstructure:"write_timeout"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"`
	RequestTimeout  int    `mapstructure:"request_timeout"`
}

// ReadTimeoutDuration returns the read timeout as time.Duration.
func (s ServerConfig) ReadTimeoutDuration() time.Duration {
	return time.Duration(s.ReadTimeout) * time.Second
}

// WriteTimeoutDuration returns the write timeout as time.Duration.
func (s ServerConfig) WriteTimeoutDuration() time.Duration {
	return time.Duration(s.WriteTimeout) * time.Second
}

// ShutdownTimeoutDuration returns the shutdown timeout as time.Duration.
func (s ServerConfig) ShutdownTimeoutDuration() time.Duration {
	return time.Duration(s.ShutdownTimeout) * time.Second
}

// RequestTimeoutDuration returns the per-request timeout as time.Duration.
func (s ServerConfig) RequestTimeoutDuration() time.Duration {
	return time.Duration(s.RequestTimeout) * time.Second
}

// DatabaseConfig holds PostgreSQL connection configuration.
type DatabaseConfig struct {
	Host               string `mapstructure:"host"`
	Port               int    `mapstructure:"port"`
	User               string `mapstructure:"user"`
	Password           string `mapstructure:"password"`
	Name               string `mapstructure:"name"`
	SSLMode            string `mapstructure:"ssl_mode"`
	MaxPoolSize        int    `mapstructure:"max_pool_size"`
	MinPoolSize        int    `mapstructure:"min_pool_size"`
	MaxIdleTimeSeconds int    `mapstructure:"max_idle_time_seconds"`
}

// MaxIdleTimeDuration returns the max idle time as time.Duration.
func (d DatabaseConfig) MaxIdleTimeDuration() time.Duration {
	return time.Duration(d.MaxIdleTimeSeconds) * time.Second
}

// DSN builds a pgx connection string from the configured fields.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s pool_max_conns=%d pool_min_conns=%d",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode, d.MaxPoolSize, d.MinPoolSize)
}

// AuthConfig holds JWT/JWKS authentication configuration.
type AuthConfig struct {
	JWKSURL  string `mapstructure:"jwks_url"`
	Issuer   string `mapstructure:"issuer"`
	Audience string `mapstructure:"audience"`
}

// StorageConfig holds S3 storage configuration for filed documents.
type StorageConfig struct {
	Bucket          string `mapstructure:"bucket"`
	Region          string `mapstructure:"region"`
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	UsePathStyle    bool   `mapstructure:"use_path_style"`
	PresignTTLSecs  int    `mapstructure:"presign_ttl_seconds"`
}

// PresignTTLDuration returns the presigned URL lifetime as time.Duration.
func (s StorageConfig) PresignTTLDuration() time.Duration {
	return time.Duration(s.PresignTTLSecs) * time.Second
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SMTPConfig holds outbound mail configuration for NEF email delivery.
type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

// SMSConfig holds configuration for the SMS gateway used for NEF recipients
// who opted into text delivery.
type SMSConfig struct {
	AccountSID string `mapstructure:"account_sid"`
	AuthToken  string `mapstructure:"auth_token"`
	FromNumber string `mapstructure:"from_number"`
	APIBaseURL string `mapstructure:"api_base_url"`
}

// JobsConfig holds configuration for the background job runner that delivers
// NEFs asynchronously after a filing is submitted, plus the scheduled sweeps
// that run alongside it.
type JobsConfig struct {
	MaxWorkers  int `mapstructure:"max_workers"`
	MaxAttempts int `mapstructure:"max_attempts"`

	SchedulerEnabled            bool `mapstructure:"scheduler_enabled"`
	UploadExpiryIntervalSeconds int  `mapstructure:"upload_expiry_interval_seconds"`
	UploadExpiryBatchSize       int  `mapstructure:"upload_expiry_batch_size"`
}

// UploadExpiryIntervalDuration returns the upload expiry sweep interval as a
// time.Duration.
func (j JobsConfig) UploadExpiryIntervalDuration() time.Duration {
	return time.Duration(j.UploadExpiryIntervalSeconds) * time.Second
}
