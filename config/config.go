package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

//go:embed version
var version string

//go:embed name
var name string

type LogLevel string

const (
	Debug  LogLevel = "debug"
	Info   LogLevel = "info"
	Notice LogLevel = "notice"
	Warn   LogLevel = "warn"
	Error  LogLevel = "error"
)

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("EDU_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("EDU_DEBUG") == "true"
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("EDU_DB_FOLDER")
	if dbFolderPath == "" {
		dbFolderPath = "/etc/edu-center"
	}
	return dbFolderPath
}

func GetDBPath() string {
	return fmt.Sprintf("%s/%s.db", GetDBFolderPath(), GetName())
}

func GetLogFolder() string {
	logFolderPath := os.Getenv("EDU_LOG_FOLDER")
	if logFolderPath == "" {
		logFolderPath = "/var/log"
	}
	return logFolderPath
}

func GetListenPort() int {
	port, err := strconv.Atoi(os.Getenv("EDU_PORT"))
	if err != nil || port <= 0 || port > 65535 {
		return 8080
	}
	return port
}

func GetBasePath() string {
	basePath := os.Getenv("EDU_BASE_PATH")
	if basePath == "" {
		return "/"
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	if !strings.HasSuffix(basePath, "/") {
		basePath += "/"
	}
	return basePath
}

func GetJWTSecret() string {
	secret := os.Getenv("EDU_JWT_SECRET")
	if secret == "" {
		secret = "dev-secret-change-me"
	}
	return secret
}

func GetSessionSecret() string {
	secret := os.Getenv("EDU_SESSION_SECRET")
	if secret == "" {
		secret = GetJWTSecret()
	}
	return secret
}

func GetAccessTokenLifetime() time.Duration {
	if minutes, err := strconv.Atoi(os.Getenv("EDU_ACCESS_TOKEN_MINUTES")); err == nil && minutes > 0 {
		return time.Duration(minutes) * time.Minute
	}
	return 30 * time.Minute
}

func GetRefreshTokenLifetime() time.Duration {
	if hours, err := strconv.Atoi(os.Getenv("EDU_REFRESH_TOKEN_HOURS")); err == nil && hours > 0 {
		return time.Duration(hours) * time.Hour
	}
	return 7 * 24 * time.Hour
}

// GetSessionMaxAge returns the session cookie lifetime in seconds.
func GetSessionMaxAge() int {
	if minutes, err := strconv.Atoi(os.Getenv("EDU_SESSION_MINUTES")); err == nil && minutes > 0 {
		return minutes * 60
	}
	return 3600
}

// StorageConfig holds blob storage settings. Backend "local" keeps media
// under MediaDir and serves it from MediaBaseURL; backend "s3" talks to an
// S3-compatible endpoint (MinIO included).
type StorageConfig struct {
	Backend string `env:"EDU_STORAGE_BACKEND" envDefault:"local"`

	MediaDir     string `env:"EDU_MEDIA_DIR" envDefault:"media"`
	MediaBaseURL string `env:"EDU_MEDIA_BASE_URL" envDefault:"http://localhost:8080/media"`

	S3Endpoint        string `env:"EDU_S3_ENDPOINT"`
	S3Region          string `env:"EDU_S3_REGION" envDefault:"us-east-1"`
	S3Bucket          string `env:"EDU_S3_BUCKET"`
	S3AccessKeyID     string `env:"EDU_S3_ACCESS_KEY_ID"`
	S3SecretAccessKey string `env:"EDU_S3_SECRET_ACCESS_KEY"`
	S3UseSSL          bool   `env:"EDU_S3_USE_SSL" envDefault:"false"`
	S3PublicBaseURL   string `env:"EDU_S3_PUBLIC_BASE_URL"`
}

func GetStorageConfig() (*StorageConfig, error) {
	cfg := &StorageConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
