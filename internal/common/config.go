package common

import (
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	OCR       OCRConfig
	DBPath    string
	OutputDir string
}

// OCRConfig holds OCR-related configuration
type OCRConfig struct {
	Pdftoppm    string
	Tesseract   string
	Lang        string
	DPI         int
	MaxPages    int
	TessdataDir string
	PSM         int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		OCR: OCRConfig{
			Pdftoppm:    getEnv("OCR_PDFTOPPM", "pdftoppm"),
			Tesseract:   getEnv("OCR_TESSERACT", "tesseract"),
			Lang:        getEnv("OCR_LANG", "jpn"),
			DPI:         getEnvAsInt("OCR_DPI", 300),
			MaxPages:    getEnvAsInt("OCR_MAX_PAGES", 0),
			TessdataDir: getEnv("TESSDATA_PREFIX", ""),
			PSM:         getEnvAsInt("OCR_PSM", 0),
		},
		DBPath:    getEnv("DB_PATH", "roster.db"),
		OutputDir: getEnv("OUTPUT_DIR", "output"),
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
