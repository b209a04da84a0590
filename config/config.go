package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/goccy/go-yaml"
)

type Config struct {
	ServerPort        string `yaml:"server_port"`
	TesseractDataPath string `yaml:"tessdata_prefix"`
	OCRLanguage       string `yaml:"ocr_language"`
	MaxFileSize       int64  `yaml:"max_file_size"`
	LogFlags          string `yaml:"log_flags"`
}

func defaults() *Config {
	return &Config{
		ServerPort:        "8080",
		TesseractDataPath: "/usr/share/tesseract-ocr/5/tessdata/",
		OCRLanguage:       "eng",
		MaxFileSize:       10 * 1024 * 1024, // 10 MB
	}
}

// LoadConfig builds the configuration from defaults, the YAML file named by
// DIRDEDUPE_CONFIG (if any) and finally environment variables.
func LoadConfig() (*Config, error) {
	cfg := defaults()

	if path := os.Getenv("DIRDEDUPE_CONFIG"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("SERVER_PORT"); v != "" {
		c.ServerPort = v
	}
	if v := os.Getenv("TESSDATA_PREFIX"); v != "" {
		c.TesseractDataPath = v
	}
	if v := os.Getenv("OCR_LANGUAGE"); v != "" {
		c.OCRLanguage = v
	}
	if v := os.Getenv("LOG_FLAGS"); v != "" {
		c.LogFlags = v
	}
	if v := os.Getenv("MAX_FILE_SIZE"); v != "" {
		size, err := strconv.ParseInt(v, 10, 64)
		if err != nil || size <= 0 {
			return fmt.Errorf("invalid MAX_FILE_SIZE %q", v)
		}
		c.MaxFileSize = size
	}
	return nil
}
