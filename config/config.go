package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	BackendLocal = "local"
	BackendS3    = "s3"
)

var sizePattern = regexp.MustCompile(`(?i)^(\d+(?:\.\d+)?)\s*(B|KB|MB|GB|TB)?$`)

// ParseSize converts a human-readable size string (e.g. "50MB", "1GB") to bytes.
// Plain numbers are taken as bytes.
func ParseSize(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty size string")
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}

	matches := sizePattern.FindStringSubmatch(s)
	if matches == nil {
		return 0, fmt.Errorf("invalid size format: %s (use e.g. '50MB', '1GB')", s)
	}

	value, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number in size: %s", s)
	}

	multipliers := map[string]float64{
		"":   1,
		"B":  1,
		"KB": 1024,
		"MB": 1024 * 1024,
		"GB": 1024 * 1024 * 1024,
		"TB": 1024 * 1024 * 1024 * 1024,
	}
	return int64(value * multipliers[strings.ToUpper(matches[2])]), nil
}

type Config struct {
	Listen      string         `yaml:"listen"`
	GinMode     string         `yaml:"gin_mode"`
	CORSOrigins []string       `yaml:"cors_origins"`
	Database    DatabaseConfig `yaml:"database"`
	Storage     StorageConfig  `yaml:"storage"`
	Log         LogConfig      `yaml:"log"`
	Slack       SlackConfig    `yaml:"slack"`
}

type DatabaseConfig struct {
	Driver         string `yaml:"driver"` // mysql, postgres or sqlite
	DSN            string `yaml:"dsn"`
	MaxConnections int    `yaml:"max_connections"`
	LogLevel       string `yaml:"log_level"`

	// When SSMParameter is set the DSN is built from the entry called Name
	// in that parameter instead of DSN.
	SSMParameter string `yaml:"ssm_parameter"`
	Name         string `yaml:"name"`
}

type StorageConfig struct {
	Backend          string   `yaml:"backend"`
	UploadDir        string   `yaml:"upload_dir"`
	URLPrefix        string   `yaml:"url_prefix"`
	MaxUploadSize    int64    `yaml:"-"`
	MaxUploadSizeRaw string   `yaml:"max_upload_size"`
	S3               S3Config `yaml:"s3"`
}

type S3Config struct {
	Region        string `yaml:"region"`
	Bucket        string `yaml:"bucket"`
	KeyPrefix     string `yaml:"key_prefix"`
	Endpoint      string `yaml:"endpoint"`
	PublicBaseURL string `yaml:"public_base_url"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // json or console
}

type SlackConfig struct {
	Token          string `yaml:"token"`
	ErrorChannelID string `yaml:"error_channel"`
}

func defaults() *Config {
	return &Config{
		Listen:      ":3000",
		CORSOrigins: []string{"*"},
		Database: DatabaseConfig{
			Driver:         "postgres",
			MaxConnections: 10,
			LogLevel:       "warn",
		},
		Storage: StorageConfig{
			Backend:       BackendLocal,
			UploadDir:     "uploads",
			URLPrefix:     "/uploads",
			MaxUploadSize: 50 * 1024 * 1024,
			S3: S3Config{
				KeyPrefix: "logs/",
			},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load builds the configuration from defaults, an optional .env file, an
// optional YAML file at path and finally the process environment.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	c := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, c); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		case !errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}

	if c.Storage.MaxUploadSizeRaw != "" {
		size, err := ParseSize(c.Storage.MaxUploadSizeRaw)
		if err != nil {
			return nil, err
		}
		c.Storage.MaxUploadSize = size
	}

	if err := c.applyEnv(); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		c.Listen = ":" + v
	}
	if v := os.Getenv("LISTEN"); v != "" {
		c.Listen = v
	}
	if v := os.Getenv("GIN_MODE"); v != "" {
		c.GinMode = v
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		c.CORSOrigins = splitList(v)
	}

	if v := os.Getenv("DB_DRIVER"); v != "" {
		c.Database.Driver = strings.ToLower(v)
	}
	if v := os.Getenv("DSN"); v != "" {
		c.Database.DSN = v
	}
	if v := os.Getenv("DB_MAX_CONNECTIONS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("DB_MAX_CONNECTIONS: %w", err)
		}
		c.Database.MaxConnections = n
	}
	if v := os.Getenv("DB_LOG_LEVEL"); v != "" {
		c.Database.LogLevel = v
	}
	if v := os.Getenv("DB_SSM_PARAMETER"); v != "" {
		c.Database.SSMParameter = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		c.Database.Name = v
	}

	if v := os.Getenv("STORAGE_BACKEND"); v != "" {
		c.Storage.Backend = strings.ToLower(v)
	}
	if v := os.Getenv("UPLOAD_DIR"); v != "" {
		c.Storage.UploadDir = v
	}
	if v := os.Getenv("UPLOAD_URL_PREFIX"); v != "" {
		c.Storage.URLPrefix = v
	}
	if v := os.Getenv("UPLOAD_MAX_SIZE"); v != "" {
		size, err := ParseSize(v)
		if err != nil {
			return fmt.Errorf("UPLOAD_MAX_SIZE: %w", err)
		}
		c.Storage.MaxUploadSize = size
	}
	if v := os.Getenv("AWS_REGION"); v != "" {
		c.Storage.S3.Region = v
	}
	if v := os.Getenv("S3_BUCKET"); v != "" {
		c.Storage.S3.Bucket = v
	}
	if v := os.Getenv("S3_KEY_PREFIX"); v != "" {
		c.Storage.S3.KeyPrefix = v
	}
	if v := os.Getenv("S3_ENDPOINT"); v != "" {
		c.Storage.S3.Endpoint = v
	}
	if v := os.Getenv("S3_PUBLIC_BASE_URL"); v != "" {
		c.Storage.S3.PublicBaseURL = v
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}

	if v := os.Getenv("SLACK_BOT_TOKEN"); v != "" {
		c.Slack.Token = v
	}
	if v := os.Getenv("SLACK_ERROR_CHANNEL"); v != "" {
		c.Slack.ErrorChannelID = v
	}
	return nil
}

func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "mysql", "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Database.DSN == "" && c.Database.SSMParameter == "" {
		return errors.New("database DSN is required (set DSN or DB_SSM_PARAMETER)")
	}
	if c.Database.SSMParameter != "" && c.Database.Name == "" {
		return errors.New("DB_NAME is required when DB_SSM_PARAMETER is set")
	}

	switch c.Storage.Backend {
	case BackendLocal:
		if c.Storage.UploadDir == "" {
			return errors.New("upload directory is required for the local storage backend")
		}
	case BackendS3:
		if c.Storage.S3.Bucket == "" || c.Storage.S3.Region == "" {
			return errors.New("S3_BUCKET and AWS_REGION are required for the s3 storage backend")
		}
	default:
		return fmt.Errorf("unsupported storage backend %q", c.Storage.Backend)
	}

	if c.Storage.MaxUploadSize <= 0 {
		return errors.New("max upload size must be positive")
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
