package spincube

import (
	"reflect"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureSingleRenderer(t *testing.T) {
	app := NewAppBuilder().Build()
	ensureSingleRenderer(app, RendererRecording)
	// Same renderer again is fine.
	ensureSingleRenderer(app, RendererRecording)

	assert.PanicsWithValue(t, "Multiple renderers installed: recording and wgpu", func() {
		ensureSingleRenderer(app, RendererWGPU)
	})
}

func TestRecordingRendererModule_InstallsSurface(t *testing.T) {
	rec := &RecordingRenderer{}
	app := NewAppBuilder().
		UseModule(HeadlessWindowModule{Width: 800, Height: 600}).
		UseModule(RecordingRendererModule{Recorder: rec}).
		Build()

	surface, ok := Resource[RenderSurface](app)
	require.True(t, ok)
	assert.Equal(t, 800, surface.Width)
	assert.Equal(t, 600, surface.Height)
	assert.Same(t, rec, surface.Renderer())

	got, ok := Resource[RecordingRenderer](app)
	require.True(t, ok)
	assert.Same(t, rec, got)
}

func TestRecordingRendererModule_TwiceOnOneAppPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewAppBuilder().
			UseModule(RecordingRendererModule{}).
			UseModule(RecordingRendererModule{}).
			Build()
	})
}

func TestInstallSurface_DefaultsToHeadlessWindow(t *testing.T) {
	app := NewAppBuilder().UseModule(RecordingRendererModule{}).Build()
	surface, ok := Resource[RenderSurface](app)
	require.True(t, ok)
	assert.Equal(t, defaultWindowWidth, surface.Width)
	assert.Equal(t, defaultWindowHeight, surface.Height)

	window, ok := Resource[WindowState](app)
	require.True(t, ok)
	assert.False(t, window.Native())
}

func TestRecordingRenderer_Render(t *testing.T) {
	rec := &RecordingRenderer{}
	scene := NewScene()
	other := NewScene()

	view := &RenderView{Scene: scene, Camera: 1, Meshes: []MeshDraw{{Rotation: mgl32.Vec3{0.1, 0.2, 0.3}}}}
	require.NoError(t, rec.Render(view))
	require.NoError(t, rec.Render(&RenderView{Scene: scene, Camera: 1}))
	require.NoError(t, rec.Render(&RenderView{Scene: other, Camera: 1}))
	require.NoError(t, rec.Render(&RenderView{Scene: scene, Camera: 2}))

	assert.Equal(t, uint64(4), rec.Frames)
	assert.Same(t, scene, rec.Scene)
	assert.Equal(t, EntityId(1), rec.Camera)
	assert.Equal(t, uint64(2), rec.Retargeted)
	assert.Equal(t, mgl32.Vec3{0.1, 0.2, 0.3}, rec.LastRotation)
	assert.Equal(t, EntityId(2), rec.LastView.Camera)
	assert.Equal(t, RendererRecording, rec.Name())
}

func TestObjectUniforms(t *testing.T) {
	model := mgl32.Translate3D(1, 2, 3)
	view := &RenderView{
		ViewProj: mgl32.Ident4(),
		Lights: []LightDraw{
			{Type: LightTypePoint, ToLight: mgl32.Vec3{1, 0, 0}, Color: [3]float32{1, 0, 0}, Intensity: 1},
			{Type: LightTypeDirectional, ToLight: mgl32.Vec3{0, 0.6, 0.8}, Color: [3]float32{1, 1, 1}, Intensity: 0.5},
		},
	}
	draw := MeshDraw{Model: model, Material: MaterialAsset{Shading: ShadingStandard, Color: [3]float32{0, 1, 0}}}

	u := objectUniforms(view, draw)
	assert.Equal(t, mgl32.Ident4(), u.ViewProj)
	assert.Equal(t, model, u.Model)
	assert.True(t, u.NormalMx.ApproxEqual(model.Inv().Transpose()))
	assert.Equal(t, mgl32.Vec4{0, 1, 0, 1}, u.BaseColor)
	assert.Equal(t, mgl32.Vec4{0, 0.6, 0.8, 1}, u.ToLight)
	assert.Equal(t, mgl32.Vec4{0.5, 0.5, 0.5, 1}, u.LightColor)
}

func TestObjectUniforms_Unlit(t *testing.T) {
	view := &RenderView{Lights: []LightDraw{{Type: LightTypeDirectional, ToLight: mgl32.Vec3{0, 1, 0}, Intensity: 1}}}
	u := objectUniforms(view, MeshDraw{Model: mgl32.Ident4(), Material: MaterialAsset{Shading: ShadingUnlit}})
	assert.Equal(t, float32(0), u.ToLight.W())
}

func TestObjectUniformSize(t *testing.T) {
	assert.Equal(t, uintptr(objectUniformSize), reflect.TypeOf(objectUniform{}).Size())
}

func TestRendererModules(t *testing.T) {
	window := WindowConfig{Width: 640, Height: 480, Title: "t"}

	modules, err := RendererModules(RendererRecording, window)
	require.NoError(t, err)
	require.Len(t, modules, 2)
	assert.Equal(t, HeadlessWindowModule{Width: 640, Height: 480}, modules[0])
	assert.IsType(t, RecordingRendererModule{}, modules[1])

	modules, err = RendererModules(RendererWGPU, window)
	require.NoError(t, err)
	assert.Equal(t, &PlatformWindowModule{Width: 640, Height: 480, Title: "t"}, modules[0])
	assert.IsType(t, WgpuRendererModule{}, modules[1])

	_, err = RendererModules("vulkan", window)
	assert.Error(t, err)
}

func TestAppBuilder_UseRenderer(t *testing.T) {
	builder, err := NewAppBuilder().UseRenderer(RendererRecording, WindowConfig{Width: 320, Height: 200})
	require.NoError(t, err)
	app := builder.Build()

	surface, ok := Resource[RenderSurface](app)
	require.True(t, ok)
	assert.Equal(t, RendererRecording, surface.Renderer().Name())
	assert.Equal(t, 320, surface.Width)
}
