package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultpass/passgen-go/internal/charset"
	"github.com/vaultpass/passgen-go/internal/crypto"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Length)
	assert.Equal(t, 1, cfg.Count)
	assert.Equal(t, SourceCrypto, cfg.Source)
	assert.False(t, cfg.Interactive)
	assert.False(t, cfg.Hash)
	assert.Equal(t, crypto.DefaultHashParams(), cfg.HashParams())
	assert.Equal(t, slog.LevelWarn, cfg.SlogLevel())

	classes, err := cfg.CharacterClasses()
	require.NoError(t, err)
	assert.Equal(t, charset.All(), classes)
}

func TestParseFlags(t *testing.T) {
	cfg, err := Parse([]string{"-l", "20", "-c", "digits", "--class", "upper", "-n", "3", "--json", "--hash", "--log-level", "debug"})
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.Length)
	assert.Equal(t, 3, cfg.Count)
	assert.True(t, cfg.JSON)
	assert.True(t, cfg.Hash)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())

	classes, err := cfg.CharacterClasses()
	require.NoError(t, err)
	assert.Equal(t, []charset.Class{charset.Digits, charset.Uppercase}, classes)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("PASSGEN_LENGTH", "30")
	t.Setenv("PASSGEN_CLASSES", "lower,digits")
	t.Setenv("PASSGEN_SOURCE", "seeded")
	t.Setenv("PASSGEN_SEED", "77")
	t.Setenv("PASSGEN_HASH_ITERATIONS", "1")

	cfg, err := Parse(nil)
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Length)
	assert.Equal(t, SourceSeeded, cfg.Source)
	assert.Equal(t, uint64(77), cfg.Seed)
	assert.Equal(t, uint32(1), cfg.HashParams().Iterations)

	classes, err := cfg.CharacterClasses()
	require.NoError(t, err)
	assert.Equal(t, []charset.Class{charset.Lowercase, charset.Digits}, classes)
}

func TestParseFlagOverridesEnv(t *testing.T) {
	t.Setenv("PASSGEN_LENGTH", "30")

	cfg, err := Parse([]string{"--length", "8"})
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Length)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown class", []string{"-c", "emoji"}},
		{"zero count", []string{"-n", "0"}},
		{"zero length", []string{"-l", "0"}},
		{"bad source", []string{"--source", "dice"}},
		{"non-integer length", []string{"-l", "twelve"}},
		{"unknown flag", []string{"--bogus"}},
		{"positional argument", []string{"extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.args)
			require.Error(t, err)
			assert.False(t, IsHelp(err))
		})
	}
}

func TestParseHelp(t *testing.T) {
	_, err := Parse([]string{"--help"})
	require.Error(t, err)
	assert.True(t, IsHelp(err))
}

func TestRandomSource(t *testing.T) {
	for _, name := range []string{SourceCrypto, SourceChaCha8, SourceSeeded} {
		t.Run(name, func(t *testing.T) {
			src, err := Config{Source: name, Seed: 1}.RandomSource()
			require.NoError(t, err)
			ch, err := src.Choice("ab")
			require.NoError(t, err)
			assert.Contains(t, "ab", string(ch))
		})
	}

	_, err := Config{Source: "dice"}.RandomSource()
	assert.Error(t, err)
}

func TestSlogLevelFallback(t *testing.T) {
	assert.Equal(t, slog.LevelWarn, Config{LogLevel: "loud"}.SlogLevel())
	assert.Equal(t, slog.LevelError, Config{LogLevel: "error"}.SlogLevel())
}
