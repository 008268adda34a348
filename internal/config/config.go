package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// EngineConfig configures segmentation, ranking and answer formatting.
type EngineConfig struct {
	Segmentation        string `yaml:"segmentation"`
	TopK                int    `yaml:"top_k"`
	MinTokenLength      int    `yaml:"min_token_length"`
	KeepPunctuation     bool   `yaml:"keep_punctuation"`
	Match               string `yaml:"match"`
	Highlight           bool   `yaml:"highlight"`
	HighlightOpen       string `yaml:"highlight_open"`
	HighlightClose      string `yaml:"highlight_close"`
	ResponseCharCap     int    `yaml:"response_char_cap"`
	FallbackPrefixChars int    `yaml:"fallback_prefix_chars"`
	NotFoundMessage     string `yaml:"not_found_message"`
}

// ServerConfig configures the HTTP transport.
type ServerConfig struct {
	Port             int      `yaml:"port"`
	ReadTimeoutSecs  int      `yaml:"read_timeout_secs"`
	WriteTimeoutSecs int      `yaml:"write_timeout_secs"`
	AllowedOrigins   []string `yaml:"allowed_origins"`
}

// SourceConfig configures document providers.
type SourceConfig struct {
	TimeoutSecs int   `yaml:"timeout_secs"`
	MaxBytes    int64 `yaml:"max_bytes"`
}

// LogConfig configures the logger. An empty File logs to stderr.
type LogConfig struct {
	Level   string `yaml:"level"`
	File    string `yaml:"file"`
	Console bool   `yaml:"console"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Engine EngineConfig `yaml:"engine"`
	Server ServerConfig `yaml:"server"`
	Source SourceConfig `yaml:"source"`
	Log    LogConfig    `yaml:"log"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := defaultConfig()
			applyEnv(cfg)
			return cfg, nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	applyConfigDefaults(&cfg)
	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/docqa/config.yaml.
// If neither exists, it writes defaults to ~/.config/docqa/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	applyEnv(cfg)
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate rejects values the engine cannot use.
func (c *AppConfig) Validate() error {
	switch c.Engine.Segmentation {
	case "paragraph", "sentence":
	default:
		return fmt.Errorf("engine.segmentation must be paragraph or sentence, got %q", c.Engine.Segmentation)
	}
	switch c.Engine.Match {
	case "substring", "word":
	default:
		return fmt.Errorf("engine.match must be substring or word, got %q", c.Engine.Match)
	}
	if c.Engine.TopK < 0 || c.Engine.MinTokenLength < 0 || c.Engine.ResponseCharCap < 0 || c.Engine.FallbackPrefixChars < 0 {
		return errors.New("engine limits must not be negative")
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	return nil
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "docqa", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	cfg := &AppConfig{
		Engine: EngineConfig{
			Segmentation:        "paragraph",
			TopK:                1,
			MinTokenLength:      3,
			Match:               "substring",
			HighlightOpen:       "**",
			HighlightClose:      "**",
			ResponseCharCap:     1000,
			FallbackPrefixChars: 500,
			NotFoundMessage:     "I couldn't find relevant information about that in the document.",
		},
		Server: ServerConfig{Port: 8080, ReadTimeoutSecs: 15, WriteTimeoutSecs: 15, AllowedOrigins: []string{"*"}},
		Source: SourceConfig{TimeoutSecs: 30, MaxBytes: 16 << 20},
		Log:    LogConfig{Level: "info"},
	}
	return cfg
}

func applyConfigDefaults(cfg *AppConfig) {
	def := defaultConfig()
	e := &cfg.Engine
	e.Segmentation = strings.ToLower(strings.TrimSpace(e.Segmentation))
	if e.Segmentation == "" {
		e.Segmentation = def.Engine.Segmentation
	}
	e.Match = strings.ToLower(strings.TrimSpace(e.Match))
	if e.Match == "" {
		e.Match = def.Engine.Match
	}
	if e.TopK == 0 {
		e.TopK = def.Engine.TopK
	}
	if e.MinTokenLength == 0 {
		e.MinTokenLength = def.Engine.MinTokenLength
	}
	if e.HighlightOpen == "" && e.HighlightClose == "" {
		e.HighlightOpen, e.HighlightClose = def.Engine.HighlightOpen, def.Engine.HighlightClose
	}
	if e.ResponseCharCap == 0 {
		e.ResponseCharCap = def.Engine.ResponseCharCap
	}
	if e.FallbackPrefixChars == 0 {
		e.FallbackPrefixChars = def.Engine.FallbackPrefixChars
	}
	if e.NotFoundMessage == "" {
		e.NotFoundMessage = def.Engine.NotFoundMessage
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = def.Server.Port
	}
	if cfg.Server.ReadTimeoutSecs == 0 {
		cfg.Server.ReadTimeoutSecs = def.Server.ReadTimeoutSecs
	}
	if cfg.Server.WriteTimeoutSecs == 0 {
		cfg.Server.WriteTimeoutSecs = def.Server.WriteTimeoutSecs
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = def.Server.AllowedOrigins
	}
	if cfg.Source.TimeoutSecs == 0 {
		cfg.Source.TimeoutSecs = def.Source.TimeoutSecs
	}
	if cfg.Source.MaxBytes == 0 {
		cfg.Source.MaxBytes = def.Source.MaxBytes
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}
}

// applyEnv lets DOCQA_PORT and DOCQA_LOG_LEVEL override the file.
func applyEnv(cfg *AppConfig) {
	if v := os.Getenv("DOCQA_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("DOCQA_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}
