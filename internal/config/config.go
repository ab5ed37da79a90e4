package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreMySQL   = "mysql"
	StoreSQLite  = "sqlite3"
	StoreMongoDB = "mongodb"
	StoreMemory  = "memory"
)

type Config struct {
	AppPort           string
	StoreDriver       string
	DbHost            string
	DbPort            string
	DbUser            string
	DbPassword        string
	DbName            string
	DbParams          string
	SQLitePath        string
	MongoURI          string
	MongoDatabase     string
	JWTSecret         string
	JWTTTL            time.Duration
	BcryptCost        int
	TranslationFolder string
	TrustedProxies    []string
	CORSOrigins       []string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:           getEnv("APP_PORT", "8080"),
		StoreDriver:       strings.ToLower(getEnv("STORE_DRIVER", StoreMySQL)),
		DbHost:            getEnv("MYSQL_HOST", "db"),
		DbPort:            getEnv("MYSQL_PORT", "3306"),
		DbUser:            getEnv("MYSQL_USER", "projecthub"),
		DbPassword:        getEnv("MYSQL_PASSWORD", "projecthub"),
		DbName:            getEnv("MYSQL_DATABASE", "projecthub"),
		DbParams:          getEnv("MYSQL_PARAMS", "parseTime=true&multiStatements=true"),
		SQLitePath:        getEnv("SQLITE_PATH", "projecthub.db"),
		MongoURI:          getEnv("MONGO_URI", "mongodb://mongo:27017"),
		MongoDatabase:     getEnv("MONGO_DATABASE", "projecthub"),
		JWTSecret:         getEnv("JWT_SECRET", ""),
		JWTTTL:            getDuration("JWT_TTL", 72*time.Hour),
		BcryptCost:        getInt("BCRYPT_COST", 10),
		TranslationFolder: getEnv("TRANSLATION_FOLDER", "pkg/translator/translation"),
		TrustedProxies:    parseList(os.Getenv("TRUSTED_PROXIES")),
		CORSOrigins:       parseList(getEnv("CORS_ORIGINS", "http://localhost:5173")),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	value, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return value
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key)))
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

// parseList splits a comma separated value, dropping blank entries.
func parseList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil
	}

	return items
}
