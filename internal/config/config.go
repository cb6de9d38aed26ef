package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	CORS     CORSConfig
	Data     DataConfig
	Log      LogConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Cache    CacheConfig
}

type ServerConfig struct {
	Port    string
	GinMode string
}

// CORSConfig lists what cross-origin callers may send; empty methods or headers fall back to the defaults.
type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

const (
	DefaultCORSMethods = "GET,POST,OPTIONS"
	DefaultCORSHeaders = "Content-Type,Authorization,X-API-Key,X-Request-ID"
)

// DataConfig locates the four datasets; .xlsx paths are read as spreadsheets, anything else as CSV
type DataConfig struct {
	HospitalPath        string
	DepartmentPath      string
	DoctorPath          string
	PatientPath         string
	LocationMappingPath string
	MigrateOnLoad       bool
}

type LogConfig struct {
	Level  string
	Format string
}

// DatabaseConfig configures the optional MySQL mirror
type DatabaseConfig struct {
	Enabled  bool
	Host     string
	Port     string
	User     string
	Password string
	Database string
}

// AuthConfig configures service tokens and API keys; with neither set the API is open
type AuthConfig struct {
	ServiceTokenSecret string
	ServiceTokenExpiry time.Duration
	APIKeyHashes       []string
}

// Enabled reports whether any credential is configured
func (a AuthConfig) Enabled() bool {
	return a.ServiceTokenSecret != "" || len(a.APIKeyHashes) > 0
}

type CacheConfig struct {
	DistanceCacheSize int
}

func LoadConfig() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port:    getEnv("PORT", "8080"),
			GinMode: getEnv("GIN_MODE", "debug"),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")),
			AllowedMethods: parseList(getEnv("CORS_ALLOWED_METHODS", DefaultCORSMethods)),
			AllowedHeaders: parseList(getEnv("CORS_ALLOWED_HEADERS", DefaultCORSHeaders)),
		},
		Data: DataConfig{
			HospitalPath:        getEnv("HOSPITAL_DATA_PATH", "data/hospital_trends.csv"),
			DepartmentPath:      getEnv("DEPARTMENT_DATA_PATH", "data/departments.csv"),
			DoctorPath:          getEnv("DOCTOR_DATA_PATH", "data/doctors.csv"),
			PatientPath:         getEnv("PATIENT_DATA_PATH", "data/patients.csv"),
			LocationMappingPath: getEnv("LOCATION_MAPPING_PATH", ""),
			MigrateOnLoad:       parseBool(getEnv("MIGRATE_ON_LOAD", "true"), true),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Database: DatabaseConfig{
			Enabled:  parseBool(getEnv("DB_ENABLED", "false"), false),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "3306"),
			User:     getEnv("DB_USER", "root"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "hospital_reception"),
		},
		Auth: AuthConfig{
			ServiceTokenSecret: getEnv("SERVICE_TOKEN_SECRET", ""),
			ServiceTokenExpiry: parseDuration(getEnv("SERVICE_TOKEN_EXPIRY", "24h"), 24*time.Hour),
			// bcrypt hashes contain '$'; quote them in .env files
			APIKeyHashes:       parseList(getEnv("SERVICE_API_KEY_HASHES", "")),
		},
		Cache: CacheConfig{
			DistanceCacheSize: parseInt(getEnv("DISTANCE_CACHE_SIZE", "256"), 256),
		},
	}

	return config
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(s)
	if err != nil {
		fmt.Printf("Warning: Invalid duration format '%s', using default\n", s)
		return fallback
	}
	return duration
}

func parseBool(s string, fallback bool) bool {
	b, err := strconv.ParseBool(s)
	if err != nil {
		fmt.Printf("Warning: Invalid boolean '%s', using default\n", s)
		return fallback
	}
	return b
}

func parseInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		fmt.Printf("Warning: Invalid integer '%s', using default\n", s)
		return fallback
	}
	return n
}

func parseList(s string) []string {
	items := []string{}
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
