package config

import (
	"os"
	"path/filepath"
	"strings"
)

// Config is the client configuration, resolved from environment variables
// (a .env file is honored through the godotenv autoload in main).
type Config struct {
	// APIBaseURL is the REST base, including the /api suffix.
	APIBaseURL string
	// StateDir holds the durable session database.
	StateDir string
	// CameraDevice is the rear-facing ("environment") device node.
	CameraDevice string
	// CameraFallbackDevice is used when the rear camera cannot be acquired.
	CameraFallbackDevice string
	// Port is only used by the stub server.
	Port string
}

func Load() Config {
	return Config{
		APIBaseURL:           getEnv("API_BASE_URL", "http://localhost:3333/api"),
		StateDir:             getEnv("OS_CLIENT_STATE_DIR", defaultStateDir()),
		CameraDevice:         getEnv("CAMERA_DEVICE", "/dev/video0"),
		CameraFallbackDevice: getEnv("CAMERA_FALLBACK_DEVICE", "/dev/video1"),
		Port:                 getEnv("PORT", "3333"),
	}
}

// APIOrigin is the base URL with the API path suffix stripped; relative photo
// addresses resolve against it.
func (c Config) APIOrigin() string {
	return strings.TrimSuffix(c.APIBaseURL, "/api")
}

func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".os-client"
	}
	return filepath.Join(home, ".os-client")
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
