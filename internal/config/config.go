package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	DatabaseURL      string
	AllowOrigins     []string
	LogstashTCPAddr  string
	MinIOEndpoint    string
	MinIOAccessKey   string
	MinIOSecretKey   string
	MinIOUseSSL      bool
	MinIOBucketPets  string
	MinIOPublicURL   string
	SessionTTLDays   int
	PetImageMaxBytes int64
	FFmpegPath       string
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	ttlDays := 7
	if v, err := strconv.Atoi(getenv("SESSION_TTL_DAYS", "7")); err == nil && v > 0 {
		ttlDays = v
	}

	imageMax := int64(10 * 1024 * 1024)
	if v, err := strconv.ParseInt(getenv("PET_IMAGE_MAX_BYTES", "10485760"), 10, 64); err == nil && v > 0 {
		imageMax = v
	}

	return Config{
		Port:             getenv("PORT", "8080"),
		DatabaseURL:      must("DATABASE_URL"),
		LogstashTCPAddr:  getenv("LOGSTASH_TCP_ADDR", ""),
		MinIOEndpoint:    must("MINIO_ENDPOINT"),
		MinIOAccessKey:   must("MINIO_ACCESS_KEY"),
		MinIOSecretKey:   must("MINIO_SECRET_KEY"),
		MinIOUseSSL:      getenv("MINIO_USE_SSL", "false") == "true",
		MinIOBucketPets:  getenv("MINIO_BUCKET_PETS", "pets-paws-images"),
		MinIOPublicURL:   getenv("MINIO_PUBLIC_URL", ""),
		SessionTTLDays:   ttlDays,
		PetImageMaxBytes: imageMax,
		FFmpegPath:       getenv("FFMPEG_PATH", "ffmpeg"),
		AllowOrigins:     splitAndTrim(getenv("ALLOW_ORIGINS", "*")),
	}
}

func splitAndTrim(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		panic("missing env: " + k)
	}
	return v
}
