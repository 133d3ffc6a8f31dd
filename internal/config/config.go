package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const defaultHTTPAddr = ":8080"
const defaultLogLevel = "info"

type Config struct {
	HTTPAddr     string
	DatabaseDSN  string
	KafkaBrokers []string
	LogLevel     string
}

// Load reads the optional .env file at envFile, then the environment.
// Variables already set in the environment win over the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	addr := strings.TrimSpace(os.Getenv("HTTP_ADDR"))
	if addr == "" {
		addr = defaultHTTPAddr
	}

	level := strings.TrimSpace(os.Getenv("LOG_LEVEL"))
	if level == "" {
		level = defaultLogLevel
	}

	return Config{
		HTTPAddr:     addr,
		DatabaseDSN:  strings.TrimSpace(os.Getenv("DATABASE_DSN")),
		KafkaBrokers: splitList(os.Getenv("KAFKA_BROKERS")),
		LogLevel:     level,
	}, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
