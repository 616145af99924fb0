package spincube

import (
	"fmt"
	"reflect"
)

// RendererName identifies a concrete renderer module.
type RendererName string

const (
	RendererWGPU      RendererName = "wgpu"
	RendererRecording RendererName = "recording"
)

// Renderer draws one frame of a RenderView to its surface.
type Renderer interface {
	Name() RendererName
	Render(view *RenderView) error
}

// RenderSurface is the output target. Its size is captured from the window
// when the renderer is installed and never changes.
type RenderSurface struct {
	Width    int
	Height   int
	Frames   uint64
	renderer Renderer
}

func (s *RenderSurface) Renderer() Renderer {
	return s.renderer
}

// RendererTag marks that a renderer has been installed into the App.
// Only one renderer should be installed at a time.
type RendererTag struct {
	Name RendererName
}

// ensureSingleRenderer enforces a single renderer invariant.
// If a different renderer is already installed, it panics with a clear message.
func ensureSingleRenderer(app *App, name RendererName) {
	if app == nil {
		panic("ensureSingleRenderer: app is nil")
	}
	t := reflect.TypeOf((*RendererTag)(nil)).Elem()
	if res, ok := app.resources[t]; ok {
		if tag, ok := res.(*RendererTag); ok {
			if tag.Name != name {
				app.Logger().Errorf("Multiple renderers installed: %s and %s", tag.Name, name)
				panic(fmt.Sprintf("Multiple renderers installed: %s and %s", tag.Name, name))
			}
			return
		}
		panic("RendererTag resource present with unexpected type")
	}
	app.addResources(&RendererTag{Name: name})
}

// installSurface registers the surface for r, sized from the current window.
func installSurface(app *App, r Renderer) *RenderSurface {
	if _, ok := Resource[RenderSurface](app); ok {
		panic(fmt.Sprintf("render surface already installed, cannot add %s", r.Name()))
	}
	window := ensureWindowResource(app)
	surface := &RenderSurface{
		Width:    window.Width,
		Height:   window.Height,
		renderer: r,
	}
	app.addResources(surface)
	app.Logger().Infof("Renderer: %s, surface %dx%d", r.Name(), surface.Width, surface.Height)
	return surface
}
