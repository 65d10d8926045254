package snapshot

import (
	"bytes"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tumble/internal/config"
	"github.com/vovakirdan/tumble/internal/core"
	"github.com/vovakirdan/tumble/internal/games/tumble"
)

func TestRenderWritesPNG(t *testing.T) {
	g := tumble.NewWithConfig(tumble.VariantBowl, config.DefaultTumbleConfig())

	var buf bytes.Buffer
	state, err := Render(g, Options{
		Config: core.RuntimeConfig{Seed: 42, TickRate: 50},
		Frames: 30,
		Logger: log.New(io.Discard),
	}, &buf)
	require.NoError(t, err)
	assert.False(t, state.GameOver)
	assert.Equal(t, 2, state.Score)

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, 300, img.Bounds().Dx())
	require.Equal(t, 400, img.Bounds().Dy())

	rgb := func(x, y int) [3]uint32 {
		r, g, b, _ := img.At(x, y).RGBA()
		return [3]uint32{r >> 8, g >> 8, b >> 8}
	}
	gray := [3]uint32{190, 190, 190}
	white := [3]uint32{255, 255, 255}

	assert.Equal(t, gray, rgb(150, 395), "bowl floor")
	assert.Equal(t, gray, rgb(260, 200), "right wall")
	assert.Equal(t, white, rgb(185, 100), "open well")
}

func TestRenderScales(t *testing.T) {
	g := tumble.NewWithConfig(tumble.VariantBucket, config.DefaultTumbleConfig())

	var buf bytes.Buffer
	_, err := Render(g, Options{
		Config: core.RuntimeConfig{Seed: 1, TickRate: 50},
		Scale:  0.5,
		Logger: log.New(io.Discard),
	}, &buf)
	require.NoError(t, err)

	cfg, err := png.DecodeConfig(&buf)
	require.NoError(t, err)
	assert.Equal(t, 150, cfg.Width)
	assert.Equal(t, 200, cfg.Height)
}

func TestRenderUsesConfiguredWellSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tumble.yaml")
	require.NoError(t, os.WriteFile(path, []byte("well:\n  width: 200\n  height: 300\n"), 0o644))
	tumble.SetConfigPath(path)
	t.Cleanup(func() { tumble.SetConfigPath("") })

	var buf bytes.Buffer
	_, err := Render(tumble.NewBucket(), Options{
		Config: core.RuntimeConfig{Seed: 3, TickRate: 50},
		Frames: 1,
		Logger: log.New(io.Discard),
	}, &buf)
	require.NoError(t, err)

	cfg, err := png.DecodeConfig(&buf)
	require.NoError(t, err)
	assert.Equal(t, 200, cfg.Width)
	assert.Equal(t, 300, cfg.Height)
}
