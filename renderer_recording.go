package spincube

import (
	"github.com/go-gl/mathgl/mgl32"
)

// RecordingRenderer draws nothing; it records what it was asked to draw.
// It backs headless runs and tests.
type RecordingRenderer struct {
	Frames uint64
	Scene  *Scene
	Camera EntityId
	// Retargeted counts calls whose scene or camera differed from the first call.
	Retargeted   uint64
	LastView     *RenderView
	LastRotation mgl32.Vec3
}

func (r *RecordingRenderer) Name() RendererName {
	return RendererRecording
}

func (r *RecordingRenderer) Render(view *RenderView) error {
	if r.Frames == 0 {
		r.Scene = view.Scene
		r.Camera = view.Camera
	} else if view.Scene != r.Scene || view.Camera != r.Camera {
		r.Retargeted++
	}
	r.Frames++
	r.LastView = view
	if len(view.Meshes) > 0 {
		r.LastRotation = view.Meshes[0].Rotation
	}
	return nil
}

// RecordingRendererModule installs a RecordingRenderer. Recorder may be
// supplied to inspect it afterwards; it is also registered as a resource.
type RecordingRendererModule struct {
	Recorder *RecordingRenderer
}

func (m RecordingRendererModule) Install(app *App, cmd *Commands) {
	ensureSingleRenderer(app, RendererRecording)

	rec := m.Recorder
	if rec == nil {
		rec = &RecordingRenderer{}
	}
	cmd.AddResources(rec)
	installSurface(app, rec)
}
