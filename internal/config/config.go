package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Database drivers.
const (
	DriverMongo  = "mongo"
	DriverMemory = "memory"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	S3       S3Config       `mapstructure:"s3"`
	Export   ExportConfig   `mapstructure:"export"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Log      LogConfig      `mapstructure:"log"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

type ServerConfig struct {
	Address      string        `mapstructure:"address"`
	Mode         string        `mapstructure:"mode"` // gin mode: debug, release or test
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

type DatabaseConfig struct {
	Driver string `mapstructure:"driver"`
	URI    string `mapstructure:"uri"`
	Name   string `mapstructure:"name"`
}

type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	UseSSL          bool   `mapstructure:"use_ssl"`
}

// ExportConfig controls the data export feature, which needs S3.
type ExportConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	URLExpiry time.Duration `mapstructure:"url_expiry"`
}

// JWTConfig defines how bearer tokens from the identity provider are verified.
type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	Issuer     string        `mapstructure:"issuer"`
	Expiration time.Duration `mapstructure:"expiration"` // lifetime of dev tokens
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	JSON   bool   `mapstructure:"json"`
	File   string `mapstructure:"file"`
	Stdout bool   `mapstructure:"stdout"`
}

type MetricsConfig struct {
	Namespace string `mapstructure:"namespace"`
	Subsystem string `mapstructure:"subsystem"`
}

// LoadConfig reads configuration from file or environment variables.
// A missing config file is not an error.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// server.address -> SERVER_ADDRESS, jwt.expiration -> JWT_EXPIRATION
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	setDefaults(v)

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("read config: %w", err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("unmarshal config: %w", err)
	}
	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "10s")

	v.SetDefault("database.driver", DriverMongo)
	v.SetDefault("database.uri", "mongodb://localhost:27017")
	v.SetDefault("database.name", "fitness_tracker")

	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.access_key_id", "")
	v.SetDefault("s3.secret_access_key", "")
	v.SetDefault("s3.bucket_name", "")
	v.SetDefault("s3.use_ssl", true)

	v.SetDefault("export.enabled", false)
	v.SetDefault("export.url_expiry", "15m")

	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.issuer", "")
	v.SetDefault("jwt.expiration", "1h")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetDefault("log.file", "")
	v.SetDefault("log.stdout", true)

	v.SetDefault("metrics.namespace", "fitness")
	v.SetDefault("metrics.subsystem", "tracker")
}

// Validate reports configuration the server cannot start with.
func (c Config) Validate() error {
	if c.JWT.Secret == "" {
		return errors.New("jwt.secret must be set")
	}
	switch c.Database.Driver {
	case DriverMongo:
		if c.Database.URI == "" || c.Database.Name == "" {
			return errors.New("database.uri and database.name must be set for the mongo driver")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown database.driver %q", c.Database.Driver)
	}
	switch c.Server.Mode {
	case "", "debug", "release", "test":
	default:
		return fmt.Errorf("unknown server.mode %q", c.Server.Mode)
	}
	if c.Export.Enabled && c.S3.BucketName == "" {
		return errors.New("export.enabled requires s3.bucket_name")
	}
	return nil
}
