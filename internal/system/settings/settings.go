// Released under an MIT license. See LICENSE.

// Package settings loads hyper's configuration from the environment.
package settings

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/michaelmacinnis/adapted"
)

// T (settings) holds the values that configure an evaluator.
type T struct {
	CaseSensitive bool
	ItemDelimiter string
	LineEnding    string
	LogLevel      slog.Level
	Permissions   []string
	Seed          int64
}

// Load reads settings from the environment. A .env file in the current
// directory, if present, supplies values not already set.
func Load() (*T, error) {
	_ = godotenv.Load()

	return FromEnv()
}

// FromEnv reads settings from the environment only.
func FromEnv() (*T, error) {
	s := &T{
		ItemDelimiter: getEnv("HYPER_ITEM_DELIMITER", ","),
		Permissions:   List(getEnv("HYPER_PERMISSIONS", "file read")),
		Seed:          time.Now().UnixNano(),
	}

	ending, err := adapted.ActualBytes(getEnv("HYPER_LINE_ENDING", `\n`))
	if err != nil {
		return nil, fmt.Errorf("HYPER_LINE_ENDING must be a valid escaped string: %w", err)
	}

	s.LineEnding = ending

	if v := getEnv("HYPER_CASE_SENSITIVE", ""); v != "" {
		s.CaseSensitive, err = strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("HYPER_CASE_SENSITIVE must be true or false: %w", err)
		}
	}

	if v := getEnv("HYPER_SEED", ""); v != "" {
		s.Seed, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("HYPER_SEED must be a valid integer: %w", err)
		}
	}

	err = s.LogLevel.UnmarshalText([]byte(getEnv("HYPER_LOG_LEVEL", "warn")))
	if err != nil {
		return nil, fmt.Errorf("HYPER_LOG_LEVEL must be debug, info, warn or error: %w", err)
	}

	return s, nil
}

// List splits a comma separated list, dropping blank entries.
func List(s string) []string {
	var l []string

	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			l = append(l, v)
		}
	}

	return l
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}
