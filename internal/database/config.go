package database

import (
	"os"
	"strconv"
)

// Config holds the database configuration
type Config struct {
	URL              string
	AuthToken        string
	ProjectsDir      string
	MultiProjectMode bool
	MaxOpenConns     int
	MaxIdleConns     int
	ConnMaxIdleSec   int
	ConnMaxLifeSec   int
}

// NewConfig creates a new Config from environment variables
func NewConfig() *Config {
	url := os.Getenv("LIBSQL_URL")
	if url == "" {
		url = "file:./crimeweb.db"
	}

	return &Config{
		URL:            url,
		AuthToken:      os.Getenv("LIBSQL_AUTH_TOKEN"),
		MaxOpenConns:   envInt("LIBSQL_MAX_OPEN_CONNS"),
		MaxIdleConns:   envInt("LIBSQL_MAX_IDLE_CONNS"),
		ConnMaxIdleSec: envInt("LIBSQL_CONN_MAX_IDLE_SEC"),
		ConnMaxLifeSec: envInt("LIBSQL_CONN_MAX_LIFE_SEC"),
	}
}

func envInt(key string) int {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
