package render

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/magnetfisher/ecs"
	"github.com/milk9111/magnetfisher/ecs/component"
)

type Renderer struct {
	camEntity ecs.Entity
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Draw paints every visible sprite in layer order, then entity order.
func (r *Renderer) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	if !w.IsAlive(r.camEntity) {
		if camEntity, ok := w.First(component.CameraComponent.Kind()); ok {
			r.camEntity = camEntity
		}
	}
	bounds := screen.Bounds()
	view := NewView(w, r.camEntity, bounds.Dx(), bounds.Dy())

	entities := w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		li, lj := layerOf(w, entities[i]), layerOf(w, entities[j])
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	img := Pixel()
	for _, e := range entities {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		s, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
		if !ok || s.Hidden || s.Width <= 0 || s.Height <= 0 {
			continue
		}

		sx := t.ScaleX
		if sx == 0 {
			sx = 1
		}
		sy := t.ScaleY
		if sy == 0 {
			sy = 1
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(s.Width, s.Height)
		op.GeoM.Translate(-s.OriginX, -s.OriginY)
		op.GeoM.Scale(sx, sy)
		// world rotation is counter-clockwise with +Y up
		op.GeoM.Rotate(-t.Rotation)
		op.GeoM.Scale(view.Zoom, view.Zoom)
		x, y := view.ToScreen(t.X, t.Y)
		op.GeoM.Translate(x, y)
		if s.Color != nil {
			op.ColorScale.ScaleWithColor(s.Color)
		}

		screen.DrawImage(img, op)
	}
}

func layerOf(w *ecs.World, e ecs.Entity) int {
	if layer, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
		return layer.Index
	}
	return 0
}
