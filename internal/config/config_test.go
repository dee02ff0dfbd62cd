package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Unset(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Nil(t, cfg.Uppercase)
	assert.Nil(t, cfg.Length)
	assert.Nil(t, cfg.SpecialCount)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv(EnvUppercase, "false")
	t.Setenv(EnvSpecial, "1")
	t.Setenv(EnvLength, "32")
	t.Setenv(EnvNumbersCount, "0")
	t.Setenv(EnvNumbers, "")

	cfg, err := Load(nil)
	require.NoError(t, err)

	require.NotNil(t, cfg.Uppercase)
	assert.False(t, *cfg.Uppercase)
	require.NotNil(t, cfg.Special)
	assert.True(t, *cfg.Special)
	require.NotNil(t, cfg.Length)
	assert.Equal(t, 32, *cfg.Length)
	require.NotNil(t, cfg.NumbersCount)
	assert.Equal(t, 0, *cfg.NumbersCount)
	assert.Nil(t, cfg.Numbers, "empty value is treated as unset")
	assert.Nil(t, cfg.LettersCount)
}

func TestLoad_InvalidValue(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "bool", key: EnvNumbers, value: "maybe"},
		{name: "int", key: EnvLength, value: "twenty"},
		{name: "count", key: EnvLettersCount, value: "5.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load(nil)
			require.ErrorIs(t, err, ErrInvalidValue)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "password.env")
	require.NoError(t, os.WriteFile(path, []byte("PASSWORD_LENGTH=12\nPASSWORD_SPECIAL_COUNT=3\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv(EnvLength)
		os.Unsetenv(EnvSpecialCount)
	})

	cfg, err := LoadFile(path, nil)
	require.NoError(t, err)

	require.NotNil(t, cfg.Length)
	assert.Equal(t, 12, *cfg.Length)
	require.NotNil(t, cfg.SpecialCount)
	assert.Equal(t, 3, *cfg.SpecialCount)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"), nil)
	assert.Error(t, err)
}

func TestLoad_UsesGivenLogger(t *testing.T) {
	t.Setenv(EnvLength, "9")

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := Load(logger)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "no .env file found")
	assert.Contains(t, buf.String(), "key="+EnvLength)
}
