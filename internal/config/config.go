package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	SheetsCredentialsFile string
	SheetsCredentialsJSON string
	SpreadsheetID         string
	SheetName             string
	SheetRange            string

	CacheTTLSec int

	HTTPAddr  string
	LogLevel  string
	OutputDir string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		SheetsCredentialsFile: getEnv("SHEETS_CREDENTIALS_FILE", ""),
		SheetsCredentialsJSON: getEnv("SHEETS_CREDENTIALS_JSON", ""),
		SpreadsheetID:         getEnv("SPREADSHEET_ID", ""),
		SheetName:             getEnv("SHEET_NAME", "info"),
		SheetRange:            getEnv("SHEET_RANGE", "A:U"),

		CacheTTLSec: getEnvInt("CACHE_TTL_SEC", 300),

		HTTPAddr:  getEnv("HTTP_ADDR", ":8080"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		OutputDir: getEnv("OUTPUT_DIR", filepath.Join(cwd, "out")),
	}

	return cfg, nil
}

// SourceKey identifies the fetch result in the grid cache.
func (c Config) SourceKey() string {
	return c.SpreadsheetID + "/" + c.SheetName
}

func (c Config) Require(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("missing required env var: %s", name)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
