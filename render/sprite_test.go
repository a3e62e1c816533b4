package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenSprite(t *testing.T) {
	img := TokenSprite(32)
	assert.Equal(t, 32, img.Bounds().Dx())

	_, _, _, a := img.At(0, 0).RGBA()
	assert.Zero(t, a, "corner outside the disc")

	r, g, b, a := img.At(16, 16).RGBA()
	assert.Equal(t, uint32(0xffff), a)
	assert.Equal(t, []uint32{0xffff, 0xffff, 0xffff}, []uint32{r, g, b}, "white center takes the tint")
}

func TestPanelSprite(t *testing.T) {
	img := PanelSprite(8)
	assert.Equal(t, 17, img.Bounds().Dx())

	_, _, _, a := img.At(0, 0).RGBA()
	assert.Zero(t, a, "rounded corner")
	_, _, _, a = img.At(8, 8).RGBA()
	assert.Equal(t, uint32(0xffff), a)
	_, _, _, a = img.At(8, 0).RGBA()
	assert.NotZero(t, a, "top edge is filled")
}
