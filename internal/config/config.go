// Package config loads service configuration from the environment.
package config

import (
	"os"
	"strconv"
)

// Config holds runtime settings for the HTTP service.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port string

	// MinArea is the minimum hold bounding-box area in pixels.
	MinArea int

	// MaxUploadMB caps the size of multipart image uploads.
	MaxUploadMB int64

	// OutputDir, when non-empty, is where visualizations and background
	// cutouts are also saved as timestamped PNG files.
	OutputDir string

	// LogFile, when non-empty, tees the service log to this file in
	// addition to stderr.
	LogFile string
}

// Load reads configuration from environment variables, applying defaults
// for anything unset.
func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		MinArea:     getEnvInt("HOLDSCAN_MIN_AREA", 100),
		MaxUploadMB: int64(getEnvInt("HOLDSCAN_MAX_UPLOAD_MB", 10)),
		OutputDir:   getEnv("HOLDSCAN_OUTPUT_DIR", ""),
		LogFile:     getEnv("HOLDSCAN_LOG_FILE", ""),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}
