package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		flagFallInterval = 0
	})
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestShapesCommand(t *testing.T) {
	out := execute(t, "shapes")

	assert.Contains(t, out, "I (cyan)")
	assert.Contains(t, out, "O (yellow)")
	assert.Contains(t, out, "████████")
}

func TestConfigCommandAppliesOverrides(t *testing.T) {
	out := execute(t, "config", "--fall-interval", "0.25")

	var cfg config.TetrisConfig
	require.NoError(t, yaml.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, 0.25, cfg.Timing.FallInterval)
	assert.Equal(t, config.DefaultTetrisConfig().Shapes, cfg.Shapes)
}
