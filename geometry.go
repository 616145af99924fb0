package spincube

import (
	"github.com/go-gl/mathgl/mgl32"
)

type meshVertex struct {
	Position [3]float32 `gekko:"layout" location:"0" format:"float3"`
	Normal   [3]float32 `gekko:"layout" location:"1" format:"float3"`
}

// boxFaces lists each face normal with two in-plane axes u, v where u x v = normal,
// so corners emitted as (-u-v, +u-v, +u+v, -u+v) wind counter-clockwise seen from outside.
var boxFaces = [6]struct{ n, u, v mgl32.Vec3 }{
	{n: mgl32.Vec3{1, 0, 0}, u: mgl32.Vec3{0, 0, -1}, v: mgl32.Vec3{0, 1, 0}},
	{n: mgl32.Vec3{-1, 0, 0}, u: mgl32.Vec3{0, 0, 1}, v: mgl32.Vec3{0, 1, 0}},
	{n: mgl32.Vec3{0, 1, 0}, u: mgl32.Vec3{1, 0, 0}, v: mgl32.Vec3{0, 0, -1}},
	{n: mgl32.Vec3{0, -1, 0}, u: mgl32.Vec3{1, 0, 0}, v: mgl32.Vec3{0, 0, 1}},
	{n: mgl32.Vec3{0, 0, 1}, u: mgl32.Vec3{1, 0, 0}, v: mgl32.Vec3{0, 1, 0}},
	{n: mgl32.Vec3{0, 0, -1}, u: mgl32.Vec3{-1, 0, 0}, v: mgl32.Vec3{0, 1, 0}},
}

// buildBox tessellates an axis-aligned box centred on the origin: four
// vertices per face so each face keeps a flat normal.
func buildBox(width, height, depth float32) ([]meshVertex, []uint16) {
	half := mgl32.Vec3{width / 2, height / 2, depth / 2}
	vertices := make([]meshVertex, 0, 24)
	indices := make([]uint16, 0, 36)

	for _, f := range boxFaces {
		center := hadamard(f.n, half)
		u := hadamard(f.u, half)
		v := hadamard(f.v, half)
		base := uint16(len(vertices))

		for _, corner := range [4]mgl32.Vec3{
			center.Sub(u).Sub(v),
			center.Add(u).Sub(v),
			center.Add(u).Add(v),
			center.Sub(u).Add(v),
		} {
			vertices = append(vertices, meshVertex{Position: corner, Normal: f.n})
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}
	return vertices, indices
}

func hadamard(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}
