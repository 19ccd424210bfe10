// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME at a temp dir and clears the MEGASENA_* overrides.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	for _, k := range []string{"MEGASENA_LOG_LEVEL", "MEGASENA_LOG_FILE", "MEGASENA_NO_ANIMATION", "MEGASENA_THEME"} {
		t.Setenv(k, "")
	}
	return home
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
}

// =============================================================================
// DEFAULTS
// =============================================================================

func TestDefault(t *testing.T) {
	home := isolate(t)
	cfg := Default()

	assert.Equal(t, 6, cfg.UI.DefaultDezenas)
	assert.Equal(t, 1, cfg.UI.DefaultCartoes)
	assert.True(t, cfg.UI.Animate)
	assert.Equal(t, "dark", cfg.UI.Theme)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, filepath.Join(home, ".megasena", "megasena.log"), cfg.Logging.File)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

// =============================================================================
// LOADING
// =============================================================================

func TestLoad_TOML(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, ".megasena", "config.toml"), `
[ui]
default_dezenas = 8
theme = "light"

[logging]
level = "debug"
file = "~/logs/ms.log"
`)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.UI.DefaultDezenas)
	assert.Equal(t, 1, cfg.UI.DefaultCartoes, "missing keys keep defaults")
	assert.True(t, cfg.UI.Animate, "missing bool keeps default")
	assert.Equal(t, "light", cfg.UI.Theme)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, filepath.Join(home, "logs", "ms.log"), cfg.Logging.File)
}

func TestLoad_JSONFallback(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, ".megasena", "config.json"),
		`{"ui": {"default_cartoes": 4, "animate": false}}`)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.UI.DefaultCartoes)
	assert.False(t, cfg.UI.Animate)
}

func TestLoad_BrokenFileReturnsDefaultsAndError(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, ".megasena", "config.toml"), "[ui\nbroken")

	cfg, err := Load()
	require.Error(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, 6, cfg.UI.DefaultDezenas)
}

func TestLoad_OutOfRangeDefaultsRejected(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, ".megasena", "config.toml"), "[ui]\ndefault_dezenas = 13\n")

	cfg, err := Load()
	require.Error(t, err)
	assert.Nil(t, cfg)

	var verrs ValidateErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 1)
	assert.Equal(t, "ui.default_dezenas", verrs[0].Field)
}

func TestLoadFromPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.toml")
	writeFile(t, path, "[ui]\ndefault_cartoes = 10\n")

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.UI.DefaultCartoes)

	_, err = LoadFromPath(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

// =============================================================================
// ENV OVERRIDES
// =============================================================================

func TestApplyEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("MEGASENA_LOG_LEVEL", "WARNING")
	t.Setenv("MEGASENA_LOG_FILE", "/tmp/ms.log")
	t.Setenv("MEGASENA_NO_ANIMATION", "1")
	t.Setenv("MEGASENA_THEME", "auto")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "/tmp/ms.log", cfg.Logging.File)
	assert.False(t, cfg.UI.Animate)
	assert.Equal(t, "auto", cfg.UI.Theme)
}

func TestApplyEnvOverrides_InvalidTheme(t *testing.T) {
	isolate(t)
	t.Setenv("MEGASENA_THEME", "neon")

	_, err := Load()
	assert.Error(t, err)
}

// =============================================================================
// VALIDATION
// =============================================================================

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := &Config{
		UI:      UIConfig{DefaultDezenas: 5, DefaultCartoes: 11, Theme: "blue"},
		Logging: LoggingConfig{Level: "loud"},
	}

	err := cfg.Validate()
	require.Error(t, err)

	verrs, ok := err.(ValidateErrors)
	require.True(t, ok)
	assert.Len(t, verrs, 4)
	assert.Contains(t, err.Error(), "ui.default_cartoes: must be between 1 and 10, got 11")
}

// =============================================================================
// SAVE
// =============================================================================

func TestSaveTOML_RoundTrip(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := Default()
	cfg.UI.DefaultDezenas = 9
	cfg.UI.Animate = false
	require.NoError(t, SaveTOML(cfg, path))

	loaded, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, 9, loaded.UI.DefaultDezenas)
	assert.False(t, loaded.UI.Animate)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# megasena configuration file")
}

func TestSaveJSON(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.json")

	require.NoError(t, SaveJSON(Default(), path))

	loaded, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), loaded)
}

// =============================================================================
// GET/SET
// =============================================================================

func TestGetSet(t *testing.T) {
	isolate(t)
	cfg := Default()

	v, err := cfg.Get("ui.default_dezenas")
	require.NoError(t, err)
	assert.Equal(t, 6, v)

	require.NoError(t, cfg.Set("ui.default_dezenas", "10"))
	require.NoError(t, cfg.Set("ui.animate", "false"))
	require.NoError(t, cfg.Set("logging.level", "debug"))
	assert.Equal(t, 10, cfg.UI.DefaultDezenas)
	assert.False(t, cfg.UI.Animate)
	assert.Equal(t, "debug", cfg.Logging.Level)

	assert.Error(t, cfg.Set("ui.default_dezenas", "many"))
	assert.Error(t, cfg.Set("ui.unknown", "1"))
	_, err = cfg.Get("ui")
	assert.Error(t, err, "sections are not values")
	_, err = cfg.Get("")
	assert.Error(t, err)
}

func TestGetAllKeys_Resolve(t *testing.T) {
	isolate(t)
	cfg := Default()
	for _, key := range GetAllKeys() {
		_, err := cfg.Get(key)
		assert.NoError(t, err, key)
	}
}

// =============================================================================
// GLOBAL
// =============================================================================

// TestConfig_ConcurrentAccess tests that Global() and SetGlobal() can be
// called concurrently. Run with: go test -race ./internal/config/
func TestConfig_ConcurrentAccess(t *testing.T) {
	isolate(t)
	ResetGlobalForTesting()
	defer ResetGlobalForTesting()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			SetGlobal(Default())
		}()
		go func() {
			defer wg.Done()
			if Global() == nil {
				t.Error("Global() returned nil")
			}
		}()
	}
	wg.Wait()
}
