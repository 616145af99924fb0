package spincube

import (
	"fmt"
)

// RendererModules returns the window module and renderer module that make
// up the named renderer. The wgpu renderer opens a native window; the
// recording renderer runs headless at the configured size.
func RendererModules(name RendererName, window WindowConfig) ([]Module, error) {
	switch name {
	case RendererWGPU:
		return []Module{
			NewPlatformWindow(window.Width, window.Height, window.Title),
			WgpuRendererModule{},
		}, nil
	case RendererRecording:
		return []Module{
			HeadlessWindowModule{Width: window.Width, Height: window.Height},
			RecordingRendererModule{},
		}, nil
	default:
		return nil, fmt.Errorf("unknown renderer %q", name)
	}
}

// UseRenderer adds the modules of the named renderer to the builder.
func (b *AppBuilder) UseRenderer(name RendererName, window WindowConfig) (*AppBuilder, error) {
	modules, err := RendererModules(name, window)
	if err != nil {
		return b, err
	}
	return b.UseModule(modules...), nil
}
