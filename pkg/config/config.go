package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Config struct {
	Server Server
	Upload Upload
	Media  Media
	DB     DB
	Redis  Redis
	Auth   Auth
	S3     S3
}

type Server struct {
	Port string
	Host string
}

type Upload struct {
	BaseDir      string // uploads klasörünün kökü
	VideoDir     string
	ThumbnailDir string
	AvatarDir    string
	MaxFileSize  int64 // bytes
}

type Media struct {
	Driver         string // "local" veya "s3"
	ProcessTimeout time.Duration
	ThumbnailW     int
	ThumbnailH     int
}

type DB struct {
	Path string
}

type Redis struct {
	Host string
	Port string
}

type Auth struct {
	JWTSecret     string
	SessionMaxAge time.Duration
}

type S3 struct {
	Bucket string
	Region string
}

func LoadConfig() *Config {
	baseDir := getEnv("UPLOAD_DIR", "uploads")

	config := &Config{
		Server: Server{
			Port: getEnv("SERVER_PORT", "3000"),
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
		},
		Upload: Upload{
			BaseDir:      baseDir,
			VideoDir:     filepath.Join(baseDir, "videos"),
			ThumbnailDir: filepath.Join(baseDir, "thumbnails"),
			AvatarDir:    filepath.Join(baseDir, "avatars"),
			MaxFileSize:  getEnvAsInt64("UPLOAD_MAX_FILE_SIZE", 10*1024*1024*1024), // 10GB
		},
		Media: Media{
			Driver:         getEnv("STORAGE_DRIVER", "local"),
			ProcessTimeout: getEnvAsDuration("MEDIA_PROCESS_TIMEOUT", 30*time.Second),
			ThumbnailW:     640,
			ThumbnailH:     360,
		},
		DB: DB{
			Path: getEnv("DB_PATH", "video-platform.db"),
		},
		Redis: Redis{
			Host: getEnv("REDIS_HOST", ""),
			Port: getEnv("REDIS_PORT", "6379"),
		},
		Auth: Auth{
			JWTSecret:     getEnv("JWT_SECRET", "dev-secret"),
			SessionMaxAge: getEnvAsDuration("SESSION_MAX_AGE", 30*24*time.Hour),
		},
		S3: S3{
			Bucket: getEnv("S3_BUCKET", ""),
			Region: getEnv("S3_REGION", "eu-central-1"),
		},
	}

	return config
}

// EnsureDirs creates the upload folders if they do not exist yet.
func (c *Config) EnsureDirs() {
	for _, dir := range []string{c.Upload.VideoDir, c.Upload.ThumbnailDir, c.Upload.AvatarDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			panic(err)
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
