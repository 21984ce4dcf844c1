package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	OCR      OCRConfig
	Tasks    TasksConfig
	Registry RegistryConfig
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	DialTimeout     time.Duration
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	GRPCAddr string
}

// OCRConfig holds OCR-related configuration.
type OCRConfig struct {
	TesseractLang string
	TessdataDir   string
	DPI           int
	MaxPages      int
}

// TasksConfig holds async coordinator configuration.
type TasksConfig struct {
	Workers      int
	QueueSize    int
	ScratchDir   string
	PollInterval time.Duration
	PollCeiling  time.Duration
	MaxAttempts  int
}

// RegistryConfig holds cross-validator configuration.
type RegistryConfig struct {
	Enabled     bool
	HTTPTimeout time.Duration
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:             getEnv("DB_URL", ""),
			MaxConns:        getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:        getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:     getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		OCR: OCRConfig{
			TesseractLang: getEnv("TESSERACT_LANG", "spa"),
			TessdataDir:   getEnv("TESSDATA_PREFIX", ""),
			DPI:           getEnvAsInt("OCR_DPI", 300),
			MaxPages:      getEnvAsInt("OCR_MAX_PAGES", 10),
		},
		Tasks: TasksConfig{
			Workers:      getEnvAsInt("TASK_WORKERS", 4),
			QueueSize:    getEnvAsInt("TASK_QUEUE_SIZE", 256),
			ScratchDir:   getEnv("TASK_SCRATCH_DIR", os.TempDir()),
			PollInterval: getEnvAsDuration("TASK_POLL_INTERVAL", 2*time.Second),
			PollCeiling:  getEnvAsDuration("TASK_POLL_CEILING", 45*time.Second),
			MaxAttempts:  getEnvAsInt("TASK_MAX_ATTEMPTS", 3),
		},
		Registry: RegistryConfig{
			Enabled:     getEnvAsBool("REGISTRY_CHECK_ENABLED", true),
			HTTPTimeout: getEnvAsDuration("REGISTRY_HTTP_TIMEOUT", 10*time.Second),
		},
	}
}

// Validate validates the loaded configuration.
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewValidationError("DB_URL", "is required")
	}
	if c.Server.GRPCAddr == "" {
		return NewValidationError("GRPC_ADDR", "is required")
	}
	if c.Tasks.PollCeiling <= c.Tasks.PollInterval {
		return NewValidationError("TASK_POLL_CEILING", "must exceed TASK_POLL_INTERVAL")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
