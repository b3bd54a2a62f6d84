package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randorium/randorium-go/internal/crypto"
	"github.com/randorium/randorium-go/internal/dice"
	"github.com/randorium/randorium-go/internal/prompt"
)

func seed(b byte) [32]byte {
	var s [32]byte
	s[0] = b
	return s
}

func run(t *testing.T, a *app, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LLM_PROVIDER", "mock")
	t.Setenv("ENV", "development")

	var out bytes.Buffer
	root := a.rootCmd(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestPasswordCmd(t *testing.T) {
	out, err := run(t, newApp(), "password", "--length", "20", "--count", "3")
	require.NoError(t, err)

	lines := strings.Fields(out)
	require.Len(t, lines, 3)
	for _, pw := range lines {
		assert.Len(t, pw, 20)
	}
}

func TestPasswordCmdDigitsOnly(t *testing.T) {
	out, err := run(t, newApp(), "password", "--no-upper", "--no-lower", "--no-symbols")
	require.NoError(t, err)

	pw := strings.TrimSpace(out)
	assert.Len(t, pw, crypto.DefaultLength)
	for _, c := range pw {
		assert.True(t, unicode.IsDigit(c), "unexpected %q", c)
	}
}

func TestPasswordCmdErrors(t *testing.T) {
	_, err := run(t, newApp(), "password", "--no-upper", "--no-lower", "--no-digits", "--no-symbols")
	assert.ErrorIs(t, err, crypto.ErrNoClassSelected)

	_, err = run(t, newApp(), "password", "--length", "4")
	assert.ErrorIs(t, err, crypto.ErrLengthTooShort)

	_, err = run(t, newApp(), "password", "--count", "0")
	assert.Error(t, err)

	_, err = run(t, newApp(), "password", "--count", "101")
	assert.ErrorContains(t, err, "between 1 and 100")

	_, err = run(t, newApp(), "password", "--classes", "upper,emoji")
	assert.ErrorIs(t, err, crypto.ErrUnknownClass)

	_, err = run(t, newApp(), "password", "--classes", "upper", "--no-lower")
	assert.Error(t, err)
}

func TestPasswordCmdClasses(t *testing.T) {
	out, err := run(t, newApp(), "password", "--classes", "Upper,digits", "--length", "12")
	require.NoError(t, err)

	pw := strings.TrimSpace(out)
	require.Len(t, pw, 12)
	assert.True(t, strings.ContainsAny(pw, "ABCDEFGHIJKLMNOPQRSTUVWXYZ"))
	assert.True(t, strings.ContainsAny(pw, "0123456789"))
	for _, c := range pw {
		assert.True(t, unicode.IsUpper(c) || unicode.IsDigit(c), "unexpected %q", c)
	}
}

func TestPasswordCmdHelpShowsBounds(t *testing.T) {
	a := newApp()
	a.gen = crypto.NewGenerator(crypto.WithLengthBounds(4, 64))
	out, err := run(t, a, "password", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "password length (4-64)")
}

func TestPasswordCmdSeeded(t *testing.T) {
	a := newApp()
	a.gen = crypto.NewGenerator(crypto.WithSource(crypto.NewSeededSource(seed(1))))
	first, err := run(t, a, "password")
	require.NoError(t, err)

	b := newApp()
	b.gen = crypto.NewGenerator(crypto.WithSource(crypto.NewSeededSource(seed(1))))
	second, err := run(t, b, "password")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRollCmd(t *testing.T) {
	a := newApp()
	a.roller = dice.NewRoller(crypto.NewSeededSource(seed(2)))

	out, err := run(t, a, "roll", "3d6")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "3d6: ["), out)
	assert.Contains(t, out, " total ")

	out, err = run(t, newApp(), "roll", "--dice", "100")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "1d100: "), out)
}

func TestRollCmdErrors(t *testing.T) {
	_, err := run(t, newApp(), "roll", "banana")
	assert.ErrorIs(t, err, dice.ErrInvalidNotation)

	_, err = run(t, newApp(), "roll", "--count", "101")
	assert.ErrorIs(t, err, dice.ErrInvalidDiceCount)
}

func TestPromptCmd(t *testing.T) {
	out, err := run(t, newApp(), "prompt", "--genre", "western", "--keywords", "cactus")
	require.NoError(t, err)
	assert.Contains(t, out, "western")
	assert.Contains(t, out, "cactus")

	out, err = run(t, newApp(), "prompt", "--html")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<p>"), out)
}

func TestPromptCmdRender(t *testing.T) {
	out, err := run(t, newApp(), "prompt", "--render", "--genre", "mystery")
	require.NoError(t, err)
	assert.Contains(t, out, "mystery")

	_, err = run(t, newApp(), "prompt", "--render", "--html")
	assert.Error(t, err)
}

func TestPromptCmdConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "randorium.yaml")
	require.NoError(t, os.WriteFile(path, []byte("llm:\n  provider: openai\n  model: gpt-4o\n"), 0o600))

	var got prompt.Settings
	a := newApp()
	a.newClient = func(_ context.Context, s prompt.Settings) (prompt.Client, error) {
		got = s
		return prompt.MockClient{}, nil
	}

	_, err := run(t, a, "--config", path, "prompt")
	require.NoError(t, err)
	assert.Equal(t, "openai", got.Provider)
	assert.Equal(t, "gpt-4o", got.Model)
}

func TestConfigFileMissing(t *testing.T) {
	_, err := run(t, newApp(), "--config", filepath.Join(t.TempDir(), "missing.yaml"), "roll")
	assert.Error(t, err)
}
