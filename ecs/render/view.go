package render

import (
	"github.com/milk9111/magnetfisher/ecs"
	"github.com/milk9111/magnetfisher/ecs/component"
)

// View maps world coordinates (+Y up) to screen pixels (+Y down) with the
// camera point at the centre of the screen.
type View struct {
	CamX    float64
	CamY    float64
	Zoom    float64
	centerX float64
	centerY float64
}

func NewView(w *ecs.World, camEntity ecs.Entity, screenW, screenH int) View {
	v := View{Zoom: 1, centerX: float64(screenW) / 2, centerY: float64(screenH) / 2}
	if w == nil {
		return v
	}
	if !w.IsAlive(camEntity) {
		e, ok := w.First(component.CameraComponent.Kind())
		if !ok {
			return v
		}
		camEntity = e
	}
	if cam, ok := ecs.Get(w, camEntity, component.CameraComponent.Kind()); ok {
		v.CamX = cam.X
		v.CamY = cam.Y
		if cam.Zoom > 0 {
			v.Zoom = cam.Zoom
		}
	}
	return v
}

func (v View) ToScreen(x, y float64) (float64, float64) {
	return (x-v.CamX)*v.Zoom + v.centerX, (v.CamY-y)*v.Zoom + v.centerY
}
