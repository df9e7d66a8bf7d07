package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv string
	Port   string

	// StoreDriver memilih backend document store: mysql, postgres, sqlite, memory.
	StoreDriver string
	DBUser      string
	DBPassword  string
	DBHost      string
	DBPort      string
	DBName      string
	SQLitePath  string
	PostgresURL string

	JWTSecret string
	JWTTTL    time.Duration

	LogLevel string
	LogFile  string

	RosterFile string

	TolerateFetchErrors bool
	ShiftTickerEnabled  bool
}

var drivers = map[string]bool{"mysql": true, "postgres": true, "sqlite": true, "memory": true}

// Load membaca .env (jika ada) lalu environment variables.
// Tidak ada cache global: pemanggil menyimpan dan meneruskan *Config secara eksplisit.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Relying on environment variables.")
	}
	return FromEnv()
}

// FromEnv membangun Config hanya dari environment variables.
func FromEnv() (*Config, error) {
	cfg := &Config{
		AppEnv:              getenv("APP_ENV", "dev"),
		Port:                getenv("PORT", "8080"),
		StoreDriver:         strings.ToLower(getenv("STORE_DRIVER", "sqlite")),
		DBUser:              os.Getenv("DB_USER"),
		DBPassword:          os.Getenv("DB_PASSWORD"),
		DBHost:              getenv("DB_HOST", "127.0.0.1"),
		DBPort:              getenv("DB_PORT", "3306"),
		DBName:              os.Getenv("DB_NAME"),
		SQLitePath:          getenv("SQLITE_PATH", "caregiver.db"),
		PostgresURL:         os.Getenv("POSTGRES_URL"),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		JWTTTL:              time.Duration(getint("JWT_TTL_HOURS", 12)) * time.Hour,
		LogLevel:            getenv("LOG_LEVEL", "info"),
		LogFile:             os.Getenv("LOG_FILE"),
		RosterFile:          os.Getenv("ROSTER_FILE"),
		TolerateFetchErrors: getbool("SUMMARY_TOLERATE_FETCH_ERRORS"),
		ShiftTickerEnabled:  getbool("SHIFT_TICKER_ENABLED"),
	}

	if !drivers[cfg.StoreDriver] {
		return nil, fmt.Errorf("STORE_DRIVER %q tidak dikenal (mysql, postgres, sqlite, memory)", cfg.StoreDriver)
	}
	if cfg.StoreDriver == "postgres" && cfg.PostgresURL == "" {
		return nil, fmt.Errorf("POSTGRES_URL harus diisi untuk STORE_DRIVER=postgres")
	}
	return cfg, nil
}

// MySQLDSN format: username:password@tcp(host:port)/dbname?parseTime=true
func (c *Config) MySQLDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getint(key string, def int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func getbool(key string) bool {
	b, _ := strconv.ParseBool(os.Getenv(key))
	return b
}

// IsProduction: APP_ENV=prod. Endpoint sample-data tidak dipasang di production.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "prod")
}
