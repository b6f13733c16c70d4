package utils

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadJSON(t *testing.T) {
	t.Run("loads valid JSON file", func(t *testing.T) {
		jsonFile := filepath.Join(t.TempDir(), "alice.json")
		require.NoError(t, os.WriteFile(jsonFile, []byte(`{"session_name": "alice"}`), 0o600))

		var result struct {
			SessionName string `json:"session_name"`
		}
		require.NoError(t, LoadJSON(jsonFile, &result))
		assert.Equal(t, "alice", result.SessionName)
	})

	t.Run("missing file wraps ErrNotExist", func(t *testing.T) {
		var result map[string]any
		err := LoadJSON(filepath.Join(t.TempDir(), "missing.json"), &result)

		require.Error(t, err)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("whitespace-only file is ErrEmptyFile", func(t *testing.T) {
		jsonFile := filepath.Join(t.TempDir(), "empty.json")
		require.NoError(t, os.WriteFile(jsonFile, []byte("  \n"), 0o600))

		var result map[string]any
		err := LoadJSON(jsonFile, &result)

		assert.ErrorIs(t, err, ErrEmptyFile)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		jsonFile := filepath.Join(t.TempDir(), "invalid.json")
		require.NoError(t, os.WriteFile(jsonFile, []byte("{invalid json}"), 0o600))

		var result map[string]any
		err := LoadJSON(jsonFile, &result)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to unmarshal JSON")
	})
}

func TestSaveJSON(t *testing.T) {
	t.Run("creates parent directory and writes private file", func(t *testing.T) {
		jsonFile := filepath.Join(t.TempDir(), "user_agents", "alice.json")

		require.NoError(t, SaveJSON(jsonFile, map[string]string{"session_name": "alice"}))

		content, err := os.ReadFile(jsonFile)
		require.NoError(t, err)
		assert.Contains(t, string(content), "    \"session_name\": \"alice\"")

		info, err := os.Stat(jsonFile)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})

	t.Run("non-serializable data", func(t *testing.T) {
		err := SaveJSON(filepath.Join(t.TempDir(), "x.json"), map[string]any{"channel": make(chan int)})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to marshal data")
	})
}
