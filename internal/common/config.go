package common

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database        DatabaseConfig
	Server          ServerConfig
	Extract         ExtractConfig
	LLM             LLMConfig
	BackgroundCheck BackgroundCheckConfig
	Identity        IdentityConfig
	Storage         StorageConfig
	Batch           BatchConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// ExtractConfig holds text-extraction configuration
type ExtractConfig struct {
	Pdftotext     string // binary name or absolute path; if empty -> "pdftotext"
	Pdftoppm      string
	Tesseract     string
	TesseractLang string
	DPI           int // rasterization DPI for image-only PDFs
	MaxPages      int // 0 = no limit
}

// LLMConfig holds scoring-model configuration
type LLMConfig struct {
	BaseURL     string
	Model       string
	APIKey      string
	Temperature float32
	Timeout     time.Duration
	// Score weights for the skill/experience/tenure combination.
	SkillsWeight     float64
	ExperienceWeight float64
	TenureWeight     float64
}

// BackgroundCheckConfig holds verification-API configuration
type BackgroundCheckConfig struct {
	BaseURL     string
	Username    string
	Secret      string
	Interval    time.Duration
	MaxAttempts int
	Workers     int
}

// IdentityConfig holds the external identity endpoint configuration
type IdentityConfig struct {
	BaseURL        string
	Username       string
	Password       string
	BasicAuthToken string
	ExpiryBuffer   time.Duration
}

// StorageConfig holds object-storage configuration
type StorageConfig struct {
	Endpoint  string
	Bucket    string
	AccessKey string
	SecretKey string
	UseSSL    bool
}

// BatchConfig holds batch-processing configuration
type BatchConfig struct {
	Size int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Extract: ExtractConfig{
			Pdftotext:     getEnv("PDFTOTEXT_BIN", "pdftotext"),
			Pdftoppm:      getEnv("PDFTOPPM_BIN", "pdftoppm"),
			Tesseract:     getEnv("TESSERACT_BIN", "tesseract"),
			TesseractLang: getEnv("TESSERACT_LANG", "eng"),
			DPI:           getEnvAsInt("EXTRACT_DPI", 300),
			MaxPages:      getEnvAsInt("EXTRACT_MAX_PAGES", 0),
		},
		LLM: LLMConfig{
			BaseURL:          getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Model:            getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			APIKey:           getEnv("OPENAI_API_KEY", ""),
			Temperature:      getEnvAsFloat32("OPENAI_TEMPERATURE", 0.0),
			Timeout:          getEnvAsDuration("OPENAI_TIMEOUT", 90*time.Second),
			SkillsWeight:     getEnvAsFloat64("SCORE_SKILLS_WEIGHT", 0.5),
			ExperienceWeight: getEnvAsFloat64("SCORE_EXPERIENCE_WEIGHT", 0.3),
			TenureWeight:     getEnvAsFloat64("SCORE_TENURE_WEIGHT", 0.2),
		},
		BackgroundCheck: BackgroundCheckConfig{
			BaseURL:     getEnv("BGCHECK_BASE_URL", "https://dash-board.tusdatos.co/api"),
			Username:    getEnv("BGCHECK_USER", ""),
			Secret:      getEnv("BGCHECK_SECRET", ""),
			Interval:    getEnvAsDuration("BGCHECK_INTERVAL", 10*time.Second),
			MaxAttempts: getEnvAsInt("BGCHECK_MAX_ATTEMPTS", 10),
			Workers:     getEnvAsInt("BGCHECK_WORKERS", 4),
		},
		Identity: IdentityConfig{
			BaseURL:        getEnv("IDENTITY_BASE_URL", ""),
			Username:       getEnv("IDENTITY_USERNAME", ""),
			Password:       getEnv("IDENTITY_PASSWORD", ""),
			BasicAuthToken: getEnv("IDENTITY_BASIC_AUTH_TOKEN", ""),
			ExpiryBuffer:   getEnvAsDuration("IDENTITY_EXPIRY_BUFFER", 10*time.Second),
		},
		Storage: StorageConfig{
			Endpoint:  getEnv("S3_ENDPOINT", ""),
			Bucket:    getEnv("S3_BUCKET", ""),
			AccessKey: getEnv("S3_ACCESS_KEY", ""),
			SecretKey: getEnv("S3_SECRET_KEY", ""),
			UseSSL:    getEnvAsBool("S3_USE_SSL", true),
		},
		Batch: BatchConfig{
			Size: getEnvAsInt("BATCH_SIZE", 10),
		},
	}
}

// Helper functions for environment variable parsing
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

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
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

// ValidateConfig validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrConfiguration)
	}
	if c.LLM.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "OPENAI_API_KEY is required", ErrConfiguration)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrConfiguration)
	}
	return nil
}
