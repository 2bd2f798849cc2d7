package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const defaultSearchLimit = 5

type Config struct {
	APIBaseURL   string `toml:"api_base_url"`
	CardProvider string `toml:"provider"`
	SearchLimit  int    `toml:"search_limit"`

	DBPath    string `toml:"db_path"`
	OutputDir string `toml:"output_dir"`
	ServeAddr string `toml:"serve_addr"`
	NoColor   bool   `toml:"no_color"`
}

// Load reads defaults, then the optional TOML config file, then the
// environment (including a .env file in the working directory).
func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		APIBaseURL:   "https://api.articraft.io/api",
		CardProvider: "articraft",
		SearchLimit:  defaultSearchLimit,
		DBPath:       filepath.Join(GetXDGDataHome(), "articraft", "collection.db"),
		OutputDir:    filepath.Join(cwd, "out"),
		ServeAddr:    ":8080",
	}

	if err := loadFile(GetConfigFilePath(), &cfg); err != nil {
		return Config{}, err
	}

	cfg.APIBaseURL = getEnv("ARTICRAFT_API_BASE_URL", cfg.APIBaseURL)
	cfg.CardProvider = getEnv("ARTICRAFT_PROVIDER", cfg.CardProvider)
	cfg.SearchLimit = getEnvInt("ARTICRAFT_SEARCH_LIMIT", cfg.SearchLimit)
	cfg.DBPath = getEnv("ARTICRAFT_DB_PATH", cfg.DBPath)
	cfg.OutputDir = getEnv("ARTICRAFT_OUTPUT_DIR", cfg.OutputDir)
	cfg.ServeAddr = getEnv("ARTICRAFT_SERVE_ADDR", cfg.ServeAddr)
	cfg.NoColor = getEnvBool("ARTICRAFT_NO_COLOR", cfg.NoColor)

	if cfg.SearchLimit < 1 {
		cfg.SearchLimit = defaultSearchLimit
	}

	return cfg, nil
}

func (c Config) Require(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("missing required setting: %s", name)
	}
	return nil
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "articraft", "config.toml")
}

func loadFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("error decoding config file %s: %w", path, err)
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

func getEnvBool(key string, fallback bool) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(key, "")))
	if value == "" {
		return fallback
	}
	if value == "1" || value == "true" || value == "yes" || value == "on" {
		return true
	}
	if value == "0" || value == "false" || value == "no" || value == "off" {
		return false
	}
	return fallback
}
