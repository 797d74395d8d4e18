package photo

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/choco-radar/site/config"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestProcessScalesDownWideImages(t *testing.T) {
	data, err := Process(pngBytes(t, 2000, 1000))
	require.NoError(t, err)

	img, err := webp.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, maxWidth, img.Bounds().Dx())
	assert.Equal(t, maxWidth/2, img.Bounds().Dy())
}

func TestProcessKeepsSmallImages(t *testing.T) {
	data, err := Process(pngBytes(t, 320, 240))
	require.NoError(t, err)

	img, err := webp.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 320, img.Bounds().Dx())
	assert.Equal(t, 240, img.Bounds().Dy())
}

func TestProcessRejectsGarbage(t *testing.T) {
	_, err := Process([]byte("not an image"))
	assert.Error(t, err)
}

func TestKeyPrefix(t *testing.T) {
	assert.Equal(t, "22/", keyPrefix("22/1712.webp"))
	assert.Equal(t, "nokey", keyPrefix("nokey"))
}

func TestSignedURLWithoutConfig(t *testing.T) {
	require.NoError(t, Init())

	origServer := config.B2FileServerURL
	config.B2FileServerURL = ""
	defer func() { config.B2FileServerURL = origServer }()

	assert.Equal(t, "", SignedURL("22/1712.webp"))
	assert.Equal(t, "", SignedURL(""))
}

func TestDownloadTokenMissingCredentials(t *testing.T) {
	origKey, origApp, origBucket := config.B2KeyID, config.B2AppKey, config.B2BucketID
	config.B2KeyID, config.B2AppKey, config.B2BucketID = "", "", ""
	defer func() {
		config.B2KeyID, config.B2AppKey, config.B2BucketID = origKey, origApp, origBucket
	}()

	_, err := downloadTokenForPrefix("22/")
	assert.Error(t, err)
}
