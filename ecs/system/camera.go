package system

import (
	"github.com/milk9111/magnetfisher/common"
	"github.com/milk9111/magnetfisher/ecs"
	"github.com/milk9111/magnetfisher/ecs/component"
)

type CameraSystem struct {
	camEntity    ecs.Entity
	targetEntity ecs.Entity
}

// NewCameraSystem follows target, normally the magnet.
func NewCameraSystem(target ecs.Entity) *CameraSystem {
	return &CameraSystem{targetEntity: target}
}

// Update eases the camera toward the target's height, clamped to the camera
// bounds, and mirrors the result onto the camera transform.
func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	if !w.IsAlive(cs.camEntity) {
		camEntity, ok := w.First(component.CameraComponent.Kind())
		if !ok {
			return
		}
		cs.camEntity = camEntity
	}

	cam, ok := ecs.Get(w, cs.camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}
	target, ok := ecs.Get(w, cs.targetEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}

	smooth := cam.Smoothness
	if smooth <= 0 || smooth > 1 {
		smooth = 1
	}
	cam.Y = common.Lerp(cam.Y, target.Y, smooth)
	if cam.MaxY > cam.MinY {
		cam.Y = common.Clamp(cam.Y, cam.MinY, cam.MaxY)
	}

	if tr, ok := ecs.Get(w, cs.camEntity, component.TransformComponent.Kind()); ok {
		tr.X = cam.X
		tr.Y = cam.Y
	}
}
