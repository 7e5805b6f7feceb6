package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazu/cuboid/pkg/config"
	"github.com/chazu/cuboid/pkg/cuboid"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	dims := cfg.Dimensions()
	w, ok := dims.Width.Magnitude()
	assert.True(t, ok)
	assert.Equal(t, 400.0, w)
	h, _ := dims.Height.Magnitude()
	assert.Equal(t, 200.0, h)
	assert.Equal(t, 40.0, dims.Depth)
	assert.Empty(t, dims.Unit, "the demo leaves the unit to the builder default")
	assert.Equal(t, config.Perspective{Target: "body", Value: "100px"}, cfg.Perspective)
}

func TestDecodeTOML(t *testing.T) {
	src := `
id = "hero"
width = 40
height = "auto"
depth = 10
unit = "%"
log_level = "warning"

[perspective]
target = "#stage"
value = "800px"
`
	cfg, err := config.Decode(strings.NewReader(src), config.FormatTOML)
	require.NoError(t, err)

	dims := cfg.Dimensions()
	w, ok := dims.Width.Magnitude()
	require.True(t, ok)
	assert.Equal(t, 40.0, w)
	raw, ok := dims.Height.Raw()
	require.True(t, ok)
	assert.Equal(t, "auto", raw)
	assert.Equal(t, 10.0, dims.Depth)
	assert.Equal(t, "%", dims.Unit)
	assert.Equal(t, "hero", cfg.ID)
	assert.Equal(t, "#stage", cfg.Perspective.Target)
	assert.Equal(t, "warning", cfg.LogLevel)
}

func TestDecodeYAMLKeepsDefaults(t *testing.T) {
	src := "depth: 12.5\nunit: em\n"
	cfg, err := config.Decode(strings.NewReader(src), config.FormatYAML)
	require.NoError(t, err)

	dims := cfg.Dimensions()
	w, _ := dims.Width.Magnitude()
	assert.Equal(t, 400.0, w)
	assert.Equal(t, 12.5, dims.Depth)
	assert.Equal(t, "em", dims.Unit)
	assert.True(t, cfg.Perspective.Enabled())
}

func TestDecodeEmptyYAML(t *testing.T) {
	cfg, err := config.Decode(strings.NewReader(""), config.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestDisablePerspective(t *testing.T) {
	cfg, err := config.Decode(strings.NewReader("perspective:\n  value: \"\"\n"), config.FormatYAML)
	require.NoError(t, err)
	assert.False(t, cfg.Perspective.Enabled())
}

func TestUnsupportedWidthIsNotAConfigError(t *testing.T) {
	cfg, err := config.Decode(strings.NewReader("width: true\n"), config.FormatYAML)
	require.NoError(t, err)
	assert.False(t, cfg.Dimensions().Width.Valid())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"string depth", `depth = "10px"`},
		{"negative depth", `depth = -1`},
		{"bad log level", `log_level = "loud"`},
		{"syntax", `width = `},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Decode(strings.NewReader(tt.src), config.FormatTOML)
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "box.yml")
	require.NoError(t, os.WriteFile(path, []byte("width: 10\nheight: 20\ndepth: 5\nunit: px\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cuboid.Dimensions{
		Width:  cuboid.Magnitude(10),
		Height: cuboid.Magnitude(20),
		Depth:  5,
		Unit:   "px",
	}, cfg.Dimensions())

	_, err = config.Load(filepath.Join(dir, "box.json"))
	assert.Error(t, err)

	_, err = config.Load(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}

func TestFormatOf(t *testing.T) {
	f, err := config.FormatOf("a/b.TOML")
	require.NoError(t, err)
	assert.Equal(t, config.FormatTOML, f)
	f, err = config.FormatOf("x.yaml")
	require.NoError(t, err)
	assert.Equal(t, "yaml", f.String())
}
