package spincube

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	defaultWindowWidth  = 1280
	defaultWindowHeight = 720
	defaultWindowTitle  = "spincube"
)

// WindowState is the host window. Width and Height are read once when the
// window is created; no resize callback is registered.
type WindowState struct {
	Width  int
	Height int
	Title  string

	windowGlfw *glfw.Window
}

// Native reports whether a real GLFW window backs the state.
func (ws *WindowState) Native() bool {
	return ws.windowGlfw != nil
}

// PlatformWindowModule ensures a single shared GLFW window (WindowState) is created
// and made available as a resource for the renderer.
// Install is idempotent: if a WindowState resource already exists, it is reused.
type PlatformWindowModule struct {
	Width  int
	Height int
	Title  string
}

// NewPlatformWindow creates a module that provides a shared WindowState resource.
// If Width/Height are zero, sensible defaults are used.
func NewPlatformWindow(width, height int, title string) *PlatformWindowModule {
	width, height, title = windowDefaults(width, height, title)
	return &PlatformWindowModule{
		Width:  width,
		Height: height,
		Title:  title,
	}
}

func (m PlatformWindowModule) Install(app *App, cmd *Commands) {
	if _, ok := Resource[WindowState](app); ok {
		// Already created by another module; no-op to preserve single-window invariant.
		return
	}

	ws, err := createWindowState(windowDefaults(m.Width, m.Height, m.Title))
	if err != nil {
		panic(err)
	}
	cmd.AddResources(ws)
	app.Logger().Infof("Created window (%dx%d) '%s'", ws.Width, ws.Height, ws.Title)

	app.UseSystem(
		System(windowEventsSystem).
			InStage(PreUpdate).
			RunAlways(),
	)
}

// HeadlessWindowModule provides a WindowState of fixed size without a native window.
type HeadlessWindowModule struct {
	Width  int
	Height int
}

func (m HeadlessWindowModule) Install(app *App, cmd *Commands) {
	if _, ok := Resource[WindowState](app); ok {
		return
	}
	width, height, title := windowDefaults(m.Width, m.Height, "")
	cmd.AddResources(&WindowState{Width: width, Height: height, Title: title})
	app.Logger().Infof("Headless window (%dx%d)", width, height)
}

// ensureWindowResource returns the shared WindowState, adding a headless one
// with default size if no window module ran.
func ensureWindowResource(app *App) *WindowState {
	if ws, ok := Resource[WindowState](app); ok {
		return ws
	}
	app.Logger().Warnf("No window installed, using a headless %dx%d window", defaultWindowWidth, defaultWindowHeight)
	ws := &WindowState{Width: defaultWindowWidth, Height: defaultWindowHeight, Title: defaultWindowTitle}
	app.addResources(ws)
	return ws
}

func windowDefaults(width, height int, title string) (int, int, string) {
	if width <= 0 {
		width = defaultWindowWidth
	}
	if height <= 0 {
		height = defaultWindowHeight
	}
	if title == "" {
		title = defaultWindowTitle
	}
	return width, height, title
}

func createWindowState(windowWidth int, windowHeight int, windowTitle string) (*WindowState, error) {
	// GLFW must stay on the main OS thread.
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI) // Important: tell GLFW we don't want OpenGL
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	// The window manager may not honour the requested size; use what we got.
	width, height := win.GetFramebufferSize()
	return &WindowState{
		Width:      width,
		Height:     height,
		Title:      windowTitle,
		windowGlfw: win,
	}, nil
}

// Destroy closes the native window and terminates GLFW. It is a no-op for
// headless windows.
func (ws *WindowState) Destroy() {
	if ws.windowGlfw == nil {
		return
	}
	ws.windowGlfw.Destroy()
	ws.windowGlfw = nil
	glfw.Terminate()
}

func windowEventsSystem(cmd *Commands, state *WindowState) {
	glfw.PollEvents()
	if state.windowGlfw.ShouldClose() {
		cmd.Logger().Infof("Window closed")
		cmd.Exit()
	}
}
