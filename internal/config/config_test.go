package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thomas-vilte/commitwise/internal/models"
)

// clearEnv unsets every variable ApplyEnv reads for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvAPIKey, EnvGeminiAPIKey, EnvModel, EnvLanguage, EnvListenAddr, EnvEnvironment} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("should create default config when missing", func(t *testing.T) {
		// arrange
		tmpDir := t.TempDir()

		// act
		cfg, err := LoadConfig(tmpDir)

		// assert
		require.NoError(t, err)
		assert.Equal(t, LangEN, cfg.Language)
		assert.Equal(t, DefaultModel(), cfg.Model)
		assert.Equal(t, string(models.ToneConventional), cfg.DefaultTone)
		assert.Equal(t, ":8080", cfg.ListenAddr)
		assert.FileExists(t, filepath.Join(tmpDir, ".commitwise", "config.json"))
	})

	t.Run("should load an explicit json file", func(t *testing.T) {
		// arrange
		path := filepath.Join(t.TempDir(), "custom.json")
		data, _ := json.Marshal(&Config{GeminiAPIKey: "file-key", Language: LangES, Model: ModelGeminiV25Flash})
		require.NoError(t, os.WriteFile(path, data, 0600))

		// act
		cfg, err := LoadConfig(path)

		// assert
		require.NoError(t, err)
		assert.Equal(t, "file-key", cfg.GeminiAPIKey)
		assert.Equal(t, LangES, cfg.Language)
		assert.Equal(t, ModelGeminiV25Flash, cfg.ActiveModel())
		assert.Equal(t, path, cfg.PathFile)
	})

	t.Run("should reject invalid configuration", func(t *testing.T) {
		// arrange
		path := filepath.Join(t.TempDir(), "config.json")
		data, _ := json.Marshal(&Config{Language: "fr"})
		require.NoError(t, os.WriteFile(path, data, 0600))

		// act
		_, err := LoadConfig(path)

		// assert
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported language")
	})

	t.Run("should reject malformed JSON", func(t *testing.T) {
		// arrange
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte("{malformed json"), 0600))

		// act
		_, err := LoadConfig(path)

		// assert
		assert.Error(t, err)
	})
}

func TestSaveConfig(t *testing.T) {
	t.Run("should fail without a path", func(t *testing.T) {
		err := SaveConfig(&Config{Language: LangEN})
		assert.Error(t, err)
	})

	t.Run("should fail on invalid tone", func(t *testing.T) {
		err := SaveConfig(&Config{Language: LangEN, DefaultTone: "Shouty", PathFile: filepath.Join(t.TempDir(), "c.json")})
		assert.Error(t, err)
	})

	t.Run("should not persist environment overrides", func(t *testing.T) {
		// arrange
		path := filepath.Join(t.TempDir(), "config.json")
		cfg := &Config{
			Language:  LangEN,
			PathFile:  path,
			Overrides: Overrides{APIKey: "env-secret"},
		}

		// act
		err := SaveConfig(cfg)

		// assert
		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "env-secret")
	})
}

func TestApplyEnv(t *testing.T) {
	t.Run("environment key wins over file key", func(t *testing.T) {
		// arrange
		clearEnv(t)
		t.Setenv(EnvAPIKey, "env-key")
		cfg := &Config{GeminiAPIKey: "file-key", Language: LangEN}

		// act
		err := cfg.ApplyEnv(filepath.Join(t.TempDir(), "missing.env"))

		// assert
		require.NoError(t, err)
		assert.Equal(t, "env-key", cfg.APIKey())
		assert.Equal(t, "env", cfg.APIKeySource())
	})

	t.Run("GEMINI_API_KEY is accepted as a fallback", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvGeminiAPIKey, "gemini-key")
		cfg := &Config{Language: LangEN}

		require.NoError(t, cfg.ApplyEnv(filepath.Join(t.TempDir(), "missing.env")))
		assert.Equal(t, "gemini-key", cfg.APIKey())
	})

	t.Run("dotenv file provides the key", func(t *testing.T) {
		// arrange
		clearEnv(t)
		envFile := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(envFile, []byte("API_KEY=dotenv-key\nCOMMITWISE_ADDR=127.0.0.1:9999\n"), 0600))
		cfg := &Config{Language: LangEN}

		// act
		err := cfg.ApplyEnv(envFile)

		// assert
		require.NoError(t, err)
		assert.Equal(t, "dotenv-key", cfg.APIKey())
		assert.Equal(t, "127.0.0.1:9999", cfg.ListenAddress())
	})

	t.Run("unsupported model in the environment is rejected", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvModel, "gpt-4o")
		cfg := &Config{Language: LangEN}

		err := cfg.ApplyEnv(filepath.Join(t.TempDir(), "missing.env"))
		assert.Error(t, err)
	})
}

func TestHasAPIKey(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want bool
	}{
		{"absent", Config{}, false},
		{"blank", Config{GeminiAPIKey: "   "}, false},
		{"placeholder in file", Config{GeminiAPIKey: PlaceholderAPIKey}, false},
		{"placeholder in env", Config{Overrides: Overrides{APIKey: PlaceholderAPIKey}}, false},
		{"file key", Config{GeminiAPIKey: "abc"}, true},
		{"env key", Config{Overrides: Overrides{APIKey: "abc"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.HasAPIKey())
		})
	}
}

func TestDefaults(t *testing.T) {
	cfg := &Config{}

	assert.Equal(t, ModelGemini3FlashPreview, cfg.ActiveModel())
	assert.Equal(t, ":8080", cfg.ListenAddress())
	assert.Equal(t, LangEN, cfg.ActiveLanguage())
	assert.Equal(t, models.ToneConventional, cfg.Tone())
	assert.Equal(t, "", cfg.APIKeySource())
}
