package spincube

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

// WgpuRendererModule renders to the platform window with WebGPU. It needs a
// native WindowState, so PlatformWindowModule must be installed first.
type WgpuRendererModule struct {
	ClearColor [3]float32
}

type objectUniform struct {
	ViewProj   mgl32.Mat4
	Model      mgl32.Mat4
	NormalMx   mgl32.Mat4
	BaseColor  mgl32.Vec4
	ToLight    mgl32.Vec4
	LightColor mgl32.Vec4
}

type gpuMesh struct {
	vertexBuf  *wgpu.Buffer
	indexBuf   *wgpu.Buffer
	indexCount uint32
}

type gpuObject struct {
	uniformBuf *wgpu.Buffer
	bindGroup  *wgpu.BindGroup
}

type wgpuRenderer struct {
	gpu        *GpuState
	assets     *AssetServer
	pipeline   *wgpu.RenderPipeline
	depthView  *wgpu.TextureView
	clearColor wgpu.Color
	meshes     map[AssetId]*gpuMesh
	objects    map[EntityId]*gpuObject
}

func (mod WgpuRendererModule) Install(app *App, cmd *Commands) {
	ensureSingleRenderer(app, RendererWGPU)

	window := ensureWindowResource(app)
	assets, ok := Resource[AssetServer](app)
	if !ok {
		assets = NewAssetServer()
		cmd.AddResources(assets)
	}

	r, err := newWgpuRenderer(window, assets, mod.ClearColor)
	if err != nil {
		panic(fmt.Errorf("wgpu renderer: %w", err))
	}
	cmd.AddResources(r.gpu)
	installSurface(app, r)
}

func newWgpuRenderer(window *WindowState, assets *AssetServer, clear [3]float32) (*wgpuRenderer, error) {
	gpuState, err := createGpuState(window)
	if err != nil {
		return nil, err
	}
	pipeline, err := createRenderPipeline("lit_mesh", litMeshShader, meshVertex{}, gpuState)
	if err != nil {
		return nil, err
	}
	depthView, err := createDepthView(gpuState)
	if err != nil {
		return nil, err
	}
	return &wgpuRenderer{
		gpu:        gpuState,
		assets:     assets,
		pipeline:   pipeline,
		depthView:  depthView,
		clearColor: wgpu.Color{R: float64(clear[0]), G: float64(clear[1]), B: float64(clear[2]), A: 1},
		meshes:     map[AssetId]*gpuMesh{},
		objects:    map[EntityId]*gpuObject{},
	}, nil
}

func (r *wgpuRenderer) Name() RendererName {
	return RendererWGPU
}

func (r *wgpuRenderer) Render(view *RenderView) error {
	for _, draw := range view.Meshes {
		obj, err := r.object(draw.Entity)
		if err != nil {
			return err
		}
		if err := r.gpu.queue.WriteBuffer(obj.uniformBuf, 0, wgpu.ToBytes([]objectUniform{objectUniforms(view, draw)})); err != nil {
			return fmt.Errorf("write uniforms: %w", err)
		}
	}

	nextTexture, err := r.gpu.surface.GetCurrentTexture()
	if err != nil {
		return fmt.Errorf("acquire surface texture: %w", err)
	}
	defer nextTexture.Release()
	target, err := nextTexture.CreateView(nil)
	if err != nil {
		return err
	}
	defer target.Release()

	encoder, err := r.gpu.device.CreateCommandEncoder(nil)
	if err != nil {
		return err
	}
	defer encoder.Release()

	renderPass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       target,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: r.clearColor,
			},
		},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            r.depthView,
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpStore,
			DepthClearValue: 1,
		},
	})
	defer renderPass.Release()

	renderPass.SetPipeline(r.pipeline)
	for _, draw := range view.Meshes {
		mesh, err := r.mesh(draw.Geometry)
		if err != nil {
			renderPass.End()
			return err
		}
		renderPass.SetBindGroup(0, r.objects[draw.Entity].bindGroup, nil)
		renderPass.SetVertexBuffer(0, mesh.vertexBuf, 0, wgpu.WholeSize)
		renderPass.SetIndexBuffer(mesh.indexBuf, wgpu.IndexFormatUint16, 0, wgpu.WholeSize)
		renderPass.DrawIndexed(mesh.indexCount, 1, 0, 0, 0)
	}
	if err := renderPass.End(); err != nil {
		return err
	}

	cmdBuffer, err := encoder.Finish(nil)
	if err != nil {
		return err
	}
	defer cmdBuffer.Release()

	r.gpu.queue.Submit(cmdBuffer)
	r.gpu.surface.Present()
	return nil
}

// mesh uploads geometry on first use. Geometry assets are immutable.
func (r *wgpuRenderer) mesh(id AssetId) (*gpuMesh, error) {
	if m, ok := r.meshes[id]; ok {
		return m, nil
	}
	geometry, err := r.assets.Geometry(id)
	if err != nil {
		return nil, err
	}
	vertexBuf, indexBuf, err := createVertexIndexBuffers(geometry.Vertices, geometry.Indices, r.gpu.device)
	if err != nil {
		return nil, err
	}
	m := &gpuMesh{vertexBuf: vertexBuf, indexBuf: indexBuf, indexCount: uint32(len(geometry.Indices))}
	r.meshes[id] = m
	return m, nil
}

func (r *wgpuRenderer) object(eid EntityId) (*gpuObject, error) {
	if o, ok := r.objects[eid]; ok {
		return o, nil
	}
	uniformBuf, err := r.gpu.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: fmt.Sprintf("Object %d Uniforms", eid),
		Size:  objectUniformSize,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("uniform buffer: %w", err)
	}

	layout := r.pipeline.GetBindGroupLayout(0)
	defer layout.Release()
	bindGroup, err := r.gpu.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Layout: layout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, Buffer: uniformBuf, Size: wgpu.WholeSize},
		},
	})
	if err != nil {
		uniformBuf.Release()
		return nil, fmt.Errorf("bind group: %w", err)
	}

	o := &gpuObject{uniformBuf: uniformBuf, bindGroup: bindGroup}
	r.objects[eid] = o
	return o, nil
}

const objectUniformSize = 3*64 + 3*16

// objectUniforms lights the mesh with the first directional light of the
// view. Without one, lit materials render black.
func objectUniforms(view *RenderView, draw MeshDraw) objectUniform {
	u := objectUniform{
		ViewProj:  view.ViewProj,
		Model:     draw.Model,
		NormalMx:  draw.Model.Inv().Transpose(),
		BaseColor: mgl32.Vec4{draw.Material.Color[0], draw.Material.Color[1], draw.Material.Color[2], 1},
	}
	if draw.Material.Shading == ShadingUnlit {
		return u
	}

	u.ToLight = mgl32.Vec4{0, 1, 0, 1}
	for _, light := range view.Lights {
		if light.Type != LightTypeDirectional {
			continue
		}
		u.ToLight = light.ToLight.Vec4(1)
		u.LightColor = mgl32.Vec4{
			light.Color[0] * light.Intensity,
			light.Color[1] * light.Intensity,
			light.Color[2] * light.Intensity,
			1,
		}
		break
	}
	return u
}
