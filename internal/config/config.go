package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var (
	JwtSecret      string
	Issuer         string
	TokenTTLHours  int
	DbHost         string
	DbPort         string
	DbUser         string
	DbPassword     string
	DbName         string
	ServerPort     string
	Environment    string
	LogLevel       string
	AllowedOrigins []string
	PublicBaseURL  string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioBucket    string

	// AttachmentMaxBytes caps a single uploaded file.
	AttachmentMaxBytes int64
	// AuditRetentionDays is how long audit entries are kept; 0 keeps them forever.
	AuditRetentionDays int
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	Issuer = getEnv("ISSUER", "request-portal")
	TokenTTLHours = getEnvInt("TOKEN_TTL_HOURS", 24)
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "portal")
	ServerPort = getEnv("SERVER_PORT", "8080")
	Environment = getEnv("APP_ENV", "development")
	LogLevel = getEnv("LOG_LEVEL", "")
	AllowedOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:,http://127.0.0.1:"))
	PublicBaseURL = strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:8080"), "/")

	MinioEndpoint = getEnv("MINIO_ENDPOINT", "localhost:9000")
	MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "minioadmin")
	MinioSecretKey = getEnv("MINIO_SECRET_KEY", "minioadmin")
	MinioBucket = getEnv("MINIO_BUCKET", "attachments")
	MinioUseSSL, _ = strconv.ParseBool(getEnv("MINIO_USE_SSL", "false"))
	AttachmentMaxBytes = int64(getEnvInt("ATTACHMENT_MAX_BYTES", 10<<20))
	AuditRetentionDays = getEnvInt("AUDIT_RETENTION_DAYS", 365)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
