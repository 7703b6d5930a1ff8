package config

import (
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Mode string

const (
	ModeMock Mode = "mock"
	ModeLive Mode = "live"
)

type Config struct {
	Environment string
	Mode        Mode
	APIBaseURL  string
	TokenPath   string
	LogDir      string
	// PDF source resolution
	S3Region string
	// Gallery behavior
	PageSize         int
	SearchDebounceMS int
	// Debug flags
	Debug bool
}

// fileConfig is the optional YAML config file layer. Environment variables win
// over file values.
type fileConfig struct {
	Mode             string `yaml:"mode"`
	APIBaseURL       string `yaml:"api_base_url"`
	TokenPath        string `yaml:"token_path"`
	LogDir           string `yaml:"log_dir"`
	S3Region         string `yaml:"s3_region"`
	PageSize         int    `yaml:"page_size"`
	SearchDebounceMS int    `yaml:"search_debounce_ms"`
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")
	fc := loadFile()

	cfg := &Config{
		Environment:      env,
		Mode:             Mode(getEnv("MONEYMONG_MODE", orDefault(fc.Mode, "mock"))),
		APIBaseURL:       getEnv("MONEYMONG_API_BASE_URL", orDefault(fc.APIBaseURL, "http://localhost:8000")),
		TokenPath:        getEnv("MONEYMONG_TOKEN_PATH", orDefault(fc.TokenPath, defaultTokenPath())),
		LogDir:           getEnv("MONEYMONG_LOG_DIR", orDefault(fc.LogDir, defaultConfigDir("logs"))),
		S3Region:         getEnv("MONEYMONG_S3_REGION", orDefault(fc.S3Region, "ap-northeast-2")),
		PageSize:         getEnvInt("MONEYMONG_PAGE_SIZE", orDefaultInt(fc.PageSize, 20)),
		SearchDebounceMS: getEnvInt("MONEYMONG_SEARCH_DEBOUNCE_MS", orDefaultInt(fc.SearchDebounceMS, 300)),
		Debug:            getEnv("DEBUG", getDefaultDebug(env)) == "true",
	}

	if cfg.Mode != ModeMock && cfg.Mode != ModeLive {
		cfg.Mode = ModeMock
	}
	return cfg
}

// loadFile reads the optional YAML config. A missing or unreadable file is not
// an error; the file layer just stays empty.
func loadFile() fileConfig {
	var fc fileConfig
	path := os.Getenv("MONEYMONG_CONFIG")
	if path == "" {
		path = defaultConfigDir("config.yaml")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fc
	}
	_ = yaml.Unmarshal(data, &fc)
	return fc
}

// getDefaultDebug returns the default debug setting based on environment
func getDefaultDebug(env string) string {
	if env == "prod" {
		return "false"
	}
	return "true"
}

func defaultConfigDir(parts ...string) string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(append([]string{base, "moneymong"}, parts...)...)
}

func defaultTokenPath() string {
	return defaultConfigDir("tokens.json")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func orDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}

func orDefaultInt(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}
