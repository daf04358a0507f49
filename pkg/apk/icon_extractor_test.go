package apk

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, size int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for x := 0; x < size; x++ {
		img.Set(x, x, color.RGBA{R: 255, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.String()
}

func TestIconExtractor_ZipFallback(t *testing.T) {
	path := writeZip(t, map[string]string{
		"res/mipmap-mdpi/ic_launcher_foreground.png": pngBytes(t, 8),
		"res/mipmap-hdpi/ic_launcher.png":            pngBytes(t, 72),
	})

	data, err := NewIconExtractor(0).ExtractIcon(path)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, DefaultIconSize, img.Bounds().Dx())
	assert.Equal(t, DefaultIconSize, img.Bounds().Dy())
}

func TestIconExtractor_AnyLauncherIcon(t *testing.T) {
	path := writeZip(t, map[string]string{
		"res/mipmap-anydpi/ic_launcher_round.png": pngBytes(t, 32),
	})

	out := filepath.Join(t.TempDir(), "icon.png")
	require.NoError(t, NewIconExtractor(48).WriteIcon(path, out))
	assert.FileExists(t, out)
}

func TestIconExtractor_NoIcon(t *testing.T) {
	path := writeZip(t, map[string]string{"classes.dex": "dex"})

	_, err := NewIconExtractor(48).ExtractIcon(path)
	assert.Error(t, err)
}
