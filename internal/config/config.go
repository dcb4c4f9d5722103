package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/thomas-vilte/commitwise/internal/models"
)

type (
	Config struct {
		GeminiAPIKey string `json:"gemini_api_key,omitempty"`
		Model        Model  `json:"model"`
		Language     string `json:"language"`
		DefaultTone  string `json:"default_tone"`
		ListenAddr   string `json:"listen_addr"`
		Environment  string `json:"environment,omitempty"`
		PathFile     string `json:"path_file"`

		// Overrides come from the process environment and are never saved.
		Overrides Overrides `json:"-"`
	}

	Overrides struct {
		APIKey      string
		Model       Model
		Language    string
		ListenAddr  string
		Environment string
	}
)

const (
	// PlaceholderAPIKey is what an unset variable renders as once it has been
	// stringified by a hosting dashboard; it counts as "not configured".
	PlaceholderAPIKey = "undefined"

	defaultLang       = LangEN
	defaultListenAddr = ":8080"
	configDirName     = ".commitwise"
	configFileName    = "config.json"
)

// Environment variables read by ApplyEnv.
const (
	EnvAPIKey       = "API_KEY"
	EnvGeminiAPIKey = "GEMINI_API_KEY"
	EnvModel        = "COMMITWISE_MODEL"
	EnvLanguage     = "COMMITWISE_LANG"
	EnvListenAddr   = "COMMITWISE_ADDR"
	EnvEnvironment  = "COMMITWISE_ENV"
)

func LoadConfig(path string) (*Config, error) {
	var configPath string

	if filepath.Ext(path) == ".json" {
		configPath = path
	} else {
		configDir := filepath.Join(path, configDirName)
		configPath = filepath.Join(configDir, configFileName)

		if _, err := os.Stat(configDir); os.IsNotExist(err) {
			if err := os.MkdirAll(configDir, 0755); err != nil {
				return nil, fmt.Errorf("error creating config directory: %w", err)
			}
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error decoding config JSON: %w", err)
	}
	config.PathFile = configPath

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("loaded configuration is invalid: %w", err)
	}

	return &config, nil
}

func createDefaultConfig(path string) (*Config, error) {
	config := &Config{
		Model:       DefaultModel(),
		Language:    defaultLang,
		DefaultTone: string(models.DefaultTone),
		ListenAddr:  defaultListenAddr,
		PathFile:    path,
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error encoding default config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return nil, fmt.Errorf("error saving default config: %w", err)
	}

	return config, nil
}

func SaveConfig(config *Config) error {
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration to save is invalid: %w", err)
	}

	if config.PathFile == "" {
		return errors.New("config file path is not set")
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	if err := os.WriteFile(config.PathFile, data, 0600); err != nil {
		return fmt.Errorf("error saving config: %w", err)
	}

	return nil
}

// ApplyEnv loads the given dotenv files (".env" when none are given) without
// clobbering variables that are already set, then records the overrides.
// Missing dotenv files are not an error.
func (c *Config) ApplyEnv(envFiles ...string) error {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("error loading %s: %w", f, err)
		}
	}

	c.Overrides = Overrides{
		APIKey:      firstNonEmpty(os.Getenv(EnvAPIKey), os.Getenv(EnvGeminiAPIKey)),
		Model:       Model(os.Getenv(EnvModel)),
		Language:    os.Getenv(EnvLanguage),
		ListenAddr:  os.Getenv(EnvListenAddr),
		Environment: os.Getenv(EnvEnvironment),
	}

	if c.Overrides.Model != "" && !IsSupportedModel(c.Overrides.Model) {
		return fmt.Errorf("%s: unsupported model %q", EnvModel, c.Overrides.Model)
	}
	if c.Overrides.Language != "" && !IsSupportedLanguage(c.Overrides.Language) {
		return fmt.Errorf("%s: unsupported language %q", EnvLanguage, c.Overrides.Language)
	}

	return nil
}

// APIKey returns the credential, preferring the environment over the file.
func (c *Config) APIKey() string {
	return strings.TrimSpace(firstNonEmpty(c.Overrides.APIKey, c.GeminiAPIKey))
}

// HasAPIKey is the "configured" check: no external call is made.
func (c *Config) HasAPIKey() bool {
	key := c.APIKey()
	return key != "" && key != PlaceholderAPIKey
}

// APIKeySource reports where the active key comes from: "env", "file" or "".
func (c *Config) APIKeySource() string {
	switch {
	case !c.HasAPIKey():
		return ""
	case strings.TrimSpace(c.Overrides.APIKey) != "":
		return "env"
	default:
		return "file"
	}
}

func (c *Config) ActiveModel() Model {
	if c.Overrides.Model != "" {
		return c.Overrides.Model
	}
	if c.Model == "" {
		return DefaultModel()
	}
	return c.Model
}

func (c *Config) ActiveLanguage() string {
	return GetLocaleConfig(firstNonEmpty(c.Overrides.Language, c.Language))
}

func (c *Config) ListenAddress() string {
	return firstNonEmpty(c.Overrides.ListenAddr, c.ListenAddr, defaultListenAddr)
}

func (c *Config) EnvironmentName() string {
	return firstNonEmpty(c.Overrides.Environment, c.Environment)
}

// Tone returns the configured default tone, or the global default when the
// stored value is empty.
func (c *Config) Tone() models.Tone {
	if tone, ok := models.ParseTone(c.DefaultTone); ok {
		return tone
	}
	return models.DefaultTone
}

func validateConfig(config *Config) error {
	if config.Language == "" {
		return errors.New("language cannot be empty")
	}
	if !IsSupportedLanguage(config.Language) {
		return fmt.Errorf("unsupported language: %s", config.Language)
	}
	if config.Model != "" && !IsSupportedModel(config.Model) {
		return fmt.Errorf("unsupported model: %s", config.Model)
	}
	if config.DefaultTone != "" {
		if _, ok := models.ParseTone(config.DefaultTone); !ok {
			return fmt.Errorf("unsupported tone: %s", config.DefaultTone)
		}
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
