package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr        string
	DBUrl       string
	TokenSecret string
	TokenTTL    time.Duration
	Debug       bool

	// Operator credential pair for the bulk clear endpoint.
	ClearUsername string
	ClearPassword string

	// When set, the reviewer account is (re)seeded with this password at
	// startup.
	AdminPassword string
}

// ParseFlags builds the configuration from a .env file (if present), the
// process environment, and command-line flags, in increasing precedence.
func ParseFlags() (cfg Config, err error) {
	// Missing .env is fine; env vars may come from the process environment.
	_ = godotenv.Load()

	var host string
	flag.StringVar(&host, "host", "0.0.0.0", "listen host name (default 0.0.0.0)")
	var port uint
	flag.UintVar(&port, "port", 8080, "listen port number (default 8080)")
	flag.StringVar(&cfg.DBUrl, "db-url", envOr("DB_URL", "d2c.sqlite"),
		"path to SQLite3 DB file; empty runs on the in-memory store")
	flag.StringVar(&cfg.TokenSecret, "token-secret", os.Getenv("TOKEN_SECRET"),
		"secret key for token encryption and decryption")
	var ttl uint
	flag.UintVar(&ttl, "token-ttl", 1200, "token TTL in seconds (default 1200)")
	flag.BoolVar(&cfg.Debug, "debug", false, "log at DEBUG level")
	flag.Parse()

	cfg.Addr = net.JoinHostPort(host, strconv.Itoa(int(port)))
	cfg.TokenTTL = time.Duration(ttl) * time.Second

	cfg.ClearUsername = os.Getenv("CLEAR_ALL_USERNAME")
	cfg.ClearPassword = os.Getenv("CLEAR_ALL_PASSWORD")
	cfg.AdminPassword = os.Getenv("ADMIN_PASSWORD")

	if !cfg.DemoMode() && cfg.TokenSecret == "" {
		err = errors.New("missing parameter -token-secret (or TOKEN_SECRET)")
	}

	return
}

// DemoMode reports whether the service runs without configured storage, on
// the in-memory repository.
func (cfg Config) DemoMode() bool {
	return cfg.DBUrl == ""
}

// ClearConfigured reports whether the bulk clear endpoint has an operator
// credential pair to check against.
func (cfg Config) ClearConfigured() bool {
	return cfg.ClearUsername != "" && cfg.ClearPassword != ""
}

func (cfg Config) Url() (url string) {
	url = cfg.Addr
	url = regexp.MustCompile(`^0.0.0.0`).ReplaceAllString(url, "localhost")
	url = "http://" + url
	return
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
