package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

var pixel *ebiten.Image

// Pixel is a 1x1 white image. Sprites are drawn by scaling it and tinting
// with the sprite colour.
func Pixel() *ebiten.Image {
	if pixel == nil {
		pixel = ebiten.NewImage(1, 1)
		pixel.Fill(color.White)
	}
	return pixel
}
