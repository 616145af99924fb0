package spincube

import (
	"github.com/go-gl/mathgl/mgl32"
)

// TransformComponent places an entity in world space. Rotation holds Euler
// angles in radians applied in XYZ order; angles are never wrapped.
type TransformComponent struct {
	Position mgl32.Vec3
	Rotation mgl32.Vec3
	Scale    mgl32.Vec3
}

func NewTransform(position mgl32.Vec3) TransformComponent {
	return TransformComponent{
		Position: position,
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// RotationMatrix returns Rx * Ry * Rz.
func (t *TransformComponent) RotationMatrix() mgl32.Mat4 {
	return mgl32.HomogRotate3DX(t.Rotation.X()).
		Mul4(mgl32.HomogRotate3DY(t.Rotation.Y())).
		Mul4(mgl32.HomogRotate3DZ(t.Rotation.Z()))
}

func (t *TransformComponent) ModelMatrix() mgl32.Mat4 {
	return mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z()).
		Mul4(t.RotationMatrix()).
		Mul4(mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z()))
}

// clipDepthCorrection maps GL clip depth [-w, w] to the WebGPU range [0, w].
var clipDepthCorrection = mgl32.Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 0.5, 0,
	0, 0, 0.5, 1,
}

// CameraComponent is a perspective camera. Fov is the vertical field of view in degrees.
type CameraComponent struct {
	Fov    float32
	Aspect float32
	Near   float32
	Far    float32
}

func (c *CameraComponent) ProjectionMatrix() mgl32.Mat4 {
	return clipDepthCorrection.Mul4(mgl32.Perspective(mgl32.DegToRad(c.Fov), c.Aspect, c.Near, c.Far))
}

// MeshComponent pairs a geometry asset with a material asset.
type MeshComponent struct {
	Geometry AssetId
	Material AssetId
}

// Spinning adds Rate radians to the entity rotation on every frame.
type Spinning struct {
	Rate mgl32.Vec3
}

// ColorFromHex converts 0xRRGGBB to RGB in [0, 1].
func ColorFromHex(hex uint32) [3]float32 {
	return [3]float32{
		float32((hex>>16)&0xff) / 255,
		float32((hex>>8)&0xff) / 255,
		float32(hex&0xff) / 255,
	}
}
