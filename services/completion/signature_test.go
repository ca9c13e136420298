package completion

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"carebridge/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSignatureEmptyCanvasIsWhite(t *testing.T) {
	data, err := RenderSignature(nil, 40, 20)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())
	assert.Equal(t, 20, img.Bounds().Dy())

	r, g, b, _ := img.At(5, 5).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), g)
	assert.Equal(t, uint32(0xffff), b)
}

func TestRenderSignatureDrawsSegments(t *testing.T) {
	strokes := []models.Stroke{
		{Points: []models.Point{{X: 0, Y: 10}, {X: 39, Y: 10}}},
	}
	data, err := RenderSignature(strokes, 40, 20)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	// Every pixel along the horizontal segment is inked.
	for x := 0; x < 40; x++ {
		c := color.RGBAModel.Convert(img.At(x, 10)).(color.RGBA)
		assert.Equal(t, uint8(0), c.R, "pixel (%d,10) should be black", x)
	}
	// A row off the segment stays white.
	c := color.RGBAModel.Convert(img.At(20, 5)).(color.RGBA)
	assert.Equal(t, uint8(255), c.R)
}

func TestRenderSignatureClampsOutOfBounds(t *testing.T) {
	strokes := []models.Stroke{
		{Points: []models.Point{{X: -50, Y: -50}, {X: 500, Y: 500}}},
	}
	data, err := RenderSignature(strokes, 40, 20)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestRenderSignatureSinglePointDot(t *testing.T) {
	strokes := []models.Stroke{
		{Points: []models.Point{{X: 7, Y: 3}}},
	}
	data, err := RenderSignature(strokes, 40, 20)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	c := color.RGBAModel.Convert(img.At(7, 3)).(color.RGBA)
	assert.Equal(t, uint8(0), c.R)
}

func TestRenderSignatureRejectsBadCanvas(t *testing.T) {
	_, err := RenderSignature(nil, 0, 20)
	assert.Error(t, err)
	_, err = RenderSignature(nil, 40, -1)
	assert.Error(t, err)
}
