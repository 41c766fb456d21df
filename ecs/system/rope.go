package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/magnetfisher/ecs"
	"github.com/milk9111/magnetfisher/ecs/component"
	"github.com/milk9111/magnetfisher/rope"
)

// RopeSystem advances every rope's chain toward its magnet and mirrors the
// chain links onto segment entities. A rope whose magnet has no transform yet
// is skipped for the frame.
type RopeSystem struct {
	params rope.Params
}

func NewRopeSystem(params rope.Params) *RopeSystem {
	return &RopeSystem{params: params}
}

// SetParams swaps the tuning of the system and of every live rope.
func (s *RopeSystem) SetParams(w *ecs.World, params rope.Params) {
	if s == nil {
		return
	}
	s.params = params
	ecs.ForEach(w, component.RopeComponent.Kind(), func(_ ecs.Entity, r *component.Rope) {
		r.Params = params
		r.Chain.SetParams(params)
	})
}

func (s *RopeSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	ecs.ForEach(w, component.RopeComponent.Kind(), func(e ecs.Entity, r *component.Rope) {
		mt, ok := ecs.Get(w, ecs.Entity(r.Magnet), component.TransformComponent.Kind())
		if !ok {
			return
		}
		if !r.AnchorXSet {
			r.AnchorX = mt.X
			r.AnchorXSet = true
		}

		anchor := cp.Vector{X: r.AnchorX, Y: r.AnchorY}
		magnet := cp.Vector{X: mt.X, Y: mt.Y}
		if r.Chain == nil {
			if r.Params == (rope.Params{}) {
				r.Params = s.params
			}
			r.Chain = rope.NewChain(anchor, magnet, r.Params)
		}
		r.Chain.Update(anchor, magnet)

		s.syncSegments(w, e, r)
	})
}

// syncSegments grows or trims the segment pool to one entity per link, then
// writes each link's pose. New segments start at the anchor; trailing ones
// are destroyed first.
func (s *RopeSystem) syncSegments(w *ecs.World, ropeEntity ecs.Entity, r *component.Rope) {
	links := r.Chain.Links()

	alive := r.Segments[:0]
	for _, id := range r.Segments {
		if w.IsAlive(ecs.Entity(id)) {
			alive = append(alive, id)
		}
	}
	r.Segments = alive

	for len(r.Segments) > len(links) {
		last := len(r.Segments) - 1
		ecs.DestroyEntity(w, ecs.Entity(r.Segments[last]))
		r.Segments = r.Segments[:last]
	}
	for len(r.Segments) < len(links) {
		seg := s.createSegment(w, ropeEntity, r, len(r.Segments))
		r.Segments = append(r.Segments, uint64(seg))
	}

	for i, link := range links {
		tr, ok := ecs.Get(w, ecs.Entity(r.Segments[i]), component.TransformComponent.Kind())
		if !ok {
			continue
		}
		tr.X = link.Mid.X
		tr.Y = link.Mid.Y
		tr.Rotation = link.Angle
		tr.ScaleX = 1
		tr.ScaleY = link.ScaleY
	}
}

func (s *RopeSystem) createSegment(w *ecs.World, ropeEntity ecs.Entity, r *component.Rope, index int) ecs.Entity {
	base := r.Chain.Params.BaseSegmentLength
	if base <= 0 {
		base = rope.DefaultParams().BaseSegmentLength
	}
	thickness := r.Thickness
	if thickness <= 0 {
		thickness = 2
	}

	seg := ecs.CreateEntity(w)
	_ = ecs.Add(w, seg, component.TransformComponent.Kind(), &component.Transform{
		X:      r.AnchorX,
		Y:      r.AnchorY,
		ScaleX: 1,
		ScaleY: 1,
	})
	_ = ecs.Add(w, seg, component.SpriteComponent.Kind(), &component.Sprite{
		Width:   thickness,
		Height:  base,
		Color:   r.Color,
		OriginX: thickness / 2,
		OriginY: base / 2,
	})
	_ = ecs.Add(w, seg, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: r.Layer})
	_ = ecs.Add(w, seg, component.RopeSegmentComponent.Kind(), &component.RopeSegment{Rope: uint64(ropeEntity), Index: index})
	return seg
}
