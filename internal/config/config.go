package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/crypto/bcrypt"
)

const defaultConfigFile = "config.toml"

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr        string
	SlideshowsDir     string
	SessionSecret     string
	GinMode           string
	AdminPassword     string
	AdminPasswordHash string
	ConfigFile        string
}

// AuthEnabled reports whether an admin password (plain or hashed) is configured.
func (c AppConfig) AuthEnabled() bool {
	return c.AdminPassword != "" || c.AdminPasswordHash != ""
}

// Source names where the configuration came from, for startup logs.
func (c AppConfig) Source() string {
	if c.ConfigFile == "" {
		return "environment"
	}
	return c.ConfigFile
}

// fileConfig is the optional TOML file layout.
type fileConfig struct {
	AdminPassword     string `toml:"admin_password"`
	AdminPasswordHash string `toml:"admin_password_hash"`
	SlideshowsDir     string `toml:"slideshows_dir"`
	ListenAddr        string `toml:"listen_addr"`
	SessionSecret     string `toml:"session_secret"`
}

// Load 从配置文件与环境变量读取应用配置，环境变量优先，并为缺失项提供默认值。
func Load() (AppConfig, error) {
	return LoadFile(strings.TrimSpace(os.Getenv("SLIDES_CONFIG")))
}

// LoadFile is Load with an explicit config file path. An empty path falls back
// to config.toml in the working directory when that file exists.
func LoadFile(path string) (AppConfig, error) {
	file, resolved, err := readFile(path)
	if err != nil {
		return AppConfig{}, err
	}

	port := envOr("PORT", "8080")

	listenAddr := envOr("LISTEN_ADDR", strings.TrimSpace(file.ListenAddr))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	slideshowsDir := envOr("SLIDESHOWS_DIR", strings.TrimSpace(file.SlideshowsDir))
	if slideshowsDir == "" {
		slideshowsDir = "slideshows"
	}

	sessionSecret := envOr("SESSION_SECRET", strings.TrimSpace(file.SessionSecret))
	if sessionSecret == "" {
		sessionSecret = "slides-dev-secret"
	}

	ginMode := envOr("GIN_MODE", "release")
	switch ginMode {
	case "debug", "release", "test":
	default:
		return AppConfig{}, fmt.Errorf("invalid GIN_MODE %q", ginMode)
	}

	// Passwords are compared exactly and never trimmed. An empty variable
	// leaves the file value in place like every other key.
	adminPassword := file.AdminPassword
	if v := os.Getenv("SLIDES_ADMIN_PASSWORD"); v != "" {
		adminPassword = v
	}
	adminPasswordHash := envOr("SLIDES_ADMIN_PASSWORD_HASH", strings.TrimSpace(file.AdminPasswordHash))

	cfg := AppConfig{
		ListenAddr:        listenAddr,
		SlideshowsDir:     slideshowsDir,
		SessionSecret:     sessionSecret,
		GinMode:           ginMode,
		AdminPassword:     adminPassword,
		AdminPasswordHash: adminPasswordHash,
		ConfigFile:        resolved,
	}
	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate rejects a configured password hash that bcrypt cannot read, since
// such a hash would refuse every login.
func (c AppConfig) Validate() error {
	if c.AdminPasswordHash == "" {
		return nil
	}
	if _, err := bcrypt.Cost([]byte(c.AdminPasswordHash)); err != nil {
		return fmt.Errorf("invalid admin password hash: %w", err)
	}
	return nil
}

func readFile(path string) (fileConfig, string, error) {
	var cfg fileConfig

	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, "", nil
		}
		return cfg, "", fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, "", fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, path, nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
