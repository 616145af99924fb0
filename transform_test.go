package spincube

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestColorFromHex(t *testing.T) {
	assert.Equal(t, [3]float32{0, 1, 0}, ColorFromHex(0x00ff00))
	assert.Equal(t, [3]float32{1, 1, 1}, ColorFromHex(0xffffff))
	assert.Equal(t, [3]float32{0, 0, 0}, ColorFromHex(0))
	c := ColorFromHex(0x336699)
	assert.InDelta(t, 0.2, c[0], 1e-6)
	assert.InDelta(t, 0.4, c[1], 1e-6)
	assert.InDelta(t, 0.6, c[2], 1e-6)
}

func TestNewTransform(t *testing.T) {
	tr := NewTransform(mgl32.Vec3{0, 0, 5})
	assert.Equal(t, mgl32.Vec3{0, 0, 5}, tr.Position)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, tr.Scale)
	assert.Equal(t, mgl32.Vec3{}, tr.Rotation)
	assert.True(t, tr.ModelMatrix().ApproxEqual(mgl32.Translate3D(0, 0, 5)))
}

func TestTransform_RotationOrderXYZ(t *testing.T) {
	tr := NewTransform(mgl32.Vec3{})
	tr.Rotation = mgl32.Vec3{0.3, 0.5, 0.7}
	want := mgl32.HomogRotate3DX(0.3).Mul4(mgl32.HomogRotate3DY(0.5)).Mul4(mgl32.HomogRotate3DZ(0.7))
	assert.True(t, tr.RotationMatrix().ApproxEqualThreshold(want, 1e-6))
}

func TestCamera_ProjectionDepthRange(t *testing.T) {
	cam := CameraComponent{Fov: 75, Aspect: 800.0 / 600.0, Near: 0.1, Far: 1000}
	proj := cam.ProjectionMatrix()

	ndcDepth := func(z float32) float32 {
		clip := proj.Mul4x1(mgl32.Vec4{0, 0, z, 1})
		return clip.Z() / clip.W()
	}
	// The camera looks down -z; near maps to 0 and far to 1.
	assert.InDelta(t, 0, ndcDepth(-0.1), 1e-4)
	assert.InDelta(t, 1, ndcDepth(-1000), 1e-4)
}

func TestCamera_ProjectionAspect(t *testing.T) {
	cam := CameraComponent{Fov: 75, Aspect: 2, Near: 0.1, Far: 1000}
	proj := cam.ProjectionMatrix()
	assert.InDelta(t, proj.At(1, 1)/2, proj.At(0, 0), 1e-6)
}

func TestLight_ToLight(t *testing.T) {
	light := LightComponent{Type: LightTypeDirectional}
	dir := light.ToLight(mgl32.Vec3{0, 4, 4})
	assert.InDelta(t, 0, dir.X(), 1e-6)
	assert.InDelta(t, 0.70710677, dir.Y(), 1e-6)
	assert.InDelta(t, 0.70710677, dir.Z(), 1e-6)

	assert.Equal(t, mgl32.Vec3{0, 1, 0}, light.ToLight(mgl32.Vec3{}))
}
