package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

type Config struct {
	AppPort         string
	DbDriver        string
	DbHost          string
	DbPort          string
	DbUser          string
	DbPassword      string
	DbName          string
	DbParams        string
	SqlitePath      string
	TrustedProxies  []string
	TranslationDir  string
	Timezone        string
	MinTimeBetween  int
	RejectPastDates bool
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:         getEnv("APP_PORT", "8080"),
		DbDriver:        getEnv("DB_DRIVER", DriverMySQL),
		DbHost:          getEnv("MYSQL_HOST", "db"),
		DbPort:          getEnv("MYSQL_PORT", "3306"),
		DbUser:          getEnv("MYSQL_USER", "bussola"),
		DbPassword:      getEnv("MYSQL_PASSWORD", "bussola"),
		DbName:          getEnv("MYSQL_DATABASE", "bussola"),
		DbParams:        getEnv("MYSQL_PARAMS", "parseTime=true&multiStatements=true&clientFoundRows=true"),
		SqlitePath:      getEnv("SQLITE_PATH", "bussola.db"),
		TrustedProxies:  parseTrustedProxies(os.Getenv("TRUSTED_PROXIES")),
		TranslationDir:  getEnv("TRANSLATION_DIR", ""),
		Timezone:        getEnv("APP_TIMEZONE", "America/Sao_Paulo"),
		MinTimeBetween:  getEnvInt("MIN_TIME_BETWEEN_MINUTES", 0),
		RejectPastDates: getEnvBool("REJECT_PAST_DATES", false),
	}
}

// Location resolves the configured timezone. Unknown zones fall back to the
// process local zone.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		zap.L().Warn("unknown timezone, using local", zap.String("timezone", c.Timezone), zap.Error(err))
		return time.Local
	}
	return loc
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 0 {
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return b
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
