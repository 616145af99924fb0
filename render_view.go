package spincube

import (
	"github.com/go-gl/mathgl/mgl32"
)

// MeshDraw is one renderable scene member, resolved for drawing.
type MeshDraw struct {
	Entity   EntityId
	Geometry AssetId
	Material MaterialAsset
	Model    mgl32.Mat4
	Rotation mgl32.Vec3
}

type LightDraw struct {
	Type      LightType
	Position  mgl32.Vec3
	ToLight   mgl32.Vec3
	Color     [3]float32
	Intensity float32
}

// RenderView is the state handed to a Renderer for one frame.
type RenderView struct {
	Scene          *Scene
	Camera         EntityId
	CameraPosition mgl32.Vec3
	View           mgl32.Mat4
	Projection     mgl32.Mat4
	ViewProj       mgl32.Mat4
	Meshes         []MeshDraw
	Lights         []LightDraw
}

// BuildRenderView resolves the scene members in insertion order. Entities that
// are not members are ignored.
func BuildRenderView(cmd *Commands, scene *Scene, assets *AssetServer) (*RenderView, error) {
	camId, ok := scene.Camera()
	if !ok {
		return nil, ErrNoCamera
	}
	camTransform, okT := Component[TransformComponent](cmd, camId)
	cam, okC := Component[CameraComponent](cmd, camId)
	if !okT || !okC {
		return nil, ErrNoCamera
	}

	view := camTransform.ModelMatrix().Inv()
	projection := cam.ProjectionMatrix()
	rv := &RenderView{
		Scene:          scene,
		Camera:         camId,
		CameraPosition: camTransform.Position,
		View:           view,
		Projection:     projection,
		ViewProj:       projection.Mul4(view),
	}

	for _, eid := range scene.Members() {
		transform, ok := Component[TransformComponent](cmd, eid)
		if !ok {
			continue
		}
		if mesh, ok := Component[MeshComponent](cmd, eid); ok {
			material, err := assets.Material(mesh.Material)
			if err != nil {
				return nil, err
			}
			if _, err := assets.Geometry(mesh.Geometry); err != nil {
				return nil, err
			}
			rv.Meshes = append(rv.Meshes, MeshDraw{
				Entity:   eid,
				Geometry: mesh.Geometry,
				Material: material,
				Model:    transform.ModelMatrix(),
				Rotation: transform.Rotation,
			})
		}
		if light, ok := Component[LightComponent](cmd, eid); ok {
			rv.Lights = append(rv.Lights, LightDraw{
				Type:      light.Type,
				Position:  transform.Position,
				ToLight:   light.ToLight(transform.Position),
				Color:     light.Color,
				Intensity: light.Intensity,
			})
		}
	}
	return rv, nil
}
