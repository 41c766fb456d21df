package component

import "image/color"

// Sprite is a solid rectangle of Width x Height drawn around the transform
// origin. OriginX/OriginY are in unscaled sprite pixels from the top left.
type Sprite struct {
	Width   float64
	Height  float64
	Color   color.Color
	OriginX float64
	OriginY float64
	Hidden  bool
}

var SpriteComponent = NewComponent[Sprite]()
