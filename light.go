package spincube

import (
	"github.com/go-gl/mathgl/mgl32"
)

type LightType uint32

const (
	LightTypePoint       LightType = 0
	LightTypeDirectional LightType = 1
)

// LightComponent is the ECS component for lights. A directional light shines
// from its transform position towards Target.
type LightComponent struct {
	Type      LightType
	Color     [3]float32 // RGB
	Intensity float32
	Target    mgl32.Vec3
}

// ToLight returns the unit vector from the lit point towards the light for a
// light placed at position.
func (l *LightComponent) ToLight(position mgl32.Vec3) mgl32.Vec3 {
	dir := position.Sub(l.Target)
	if dir.Len() == 0 {
		return mgl32.Vec3{0, 1, 0}
	}
	return dir.Normalize()
}
