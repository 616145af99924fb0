package spincube

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	StateInitializing State = 0
	StateRunning      State = 1
)

const statsInterval = 120

// FrameDriver holds the entities spawned by setup.
type FrameDriver struct {
	Config Config
	Camera EntityId
	Cube   EntityId
	Light  EntityId
}

// FrameCounter counts rendered frames. Budget 0 renders until the host ends the loop.
type FrameCounter struct {
	Frames  uint64
	Budget  uint64
	Started time.Time

	statsFrame uint64
	statsTime  time.Time
}

// FrameDriverModule builds the spinning cube scene and drives it once per
// loop iteration. The App must use StateInitializing..StateRunning.
// A zero Config means DefaultConfig.
type FrameDriverModule struct {
	Config Config
}

func (mod FrameDriverModule) Install(app *App, cmd *Commands) {
	cfg := mod.Config
	if cfg == (Config{}) {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		panic(fmt.Errorf("frame driver: %w", err))
	}

	ensureWindowResource(app)
	if _, ok := Resource[AssetServer](app); !ok {
		cmd.AddResources(NewAssetServer())
	}
	app.UseModules(TimeModule{})

	cmd.AddResources(
		NewScene(),
		&FrameDriver{Config: cfg},
		&FrameCounter{Budget: cfg.Frames},
	)

	app.UseSystem(
		System(frameDriverSetupSystem).
			InState(OnEnter(StateInitializing)),
	).UseSystem(
		System(frameClockSystem).
			InState(OnEnter(StateRunning)),
	).UseSystem(
		System(spinSystem).
			InStage(Update).
			InState(OnExecute(StateRunning)),
	).UseSystem(
		System(renderSystem).
			InStage(Render).
			InState(OnExecute(StateRunning)),
	).UseSystem(
		System(frameBudgetSystem).
			InStage(PostRender).
			InState(OnExecute(StateRunning)),
	).UseSystem(
		System(frameStatsSystem).
			InStage(PostRender).
			InState(OnExecute(StateRunning)),
	)
}

func frameDriverSetupSystem(cmd *Commands, driver *FrameDriver, scene *Scene, assets *AssetServer, window *WindowState) {
	log := cmd.Logger()
	cfg := driver.Config

	driver.Camera = cmd.AddEntity(
		NewTransform(mgl32.Vec3(cfg.Camera.Position)),
		CameraComponent{
			Fov:    cfg.Camera.Fov,
			Aspect: float32(window.Width) / float32(window.Height),
			Near:   cfg.Camera.Near,
			Far:    cfg.Camera.Far,
		},
	)
	scene.Add(driver.Camera)
	if err := scene.UseCamera(driver.Camera); err != nil {
		panic(err)
	}
	log.Infof("Camera position: %v", cfg.Camera.Position)

	size := cfg.Cube.Size
	driver.Cube = cmd.AddEntity(
		NewTransform(mgl32.Vec3{}),
		MeshComponent{
			Geometry: assets.CreateBoxGeometry(size[0], size[1], size[2]),
			Material: assets.CreateStandardMaterial(uint32(cfg.Cube.Color)),
		},
		Spinning{Rate: mgl32.Vec3(cfg.Cube.SpinRate)},
	)
	scene.Add(driver.Cube)
	log.Infof("Cube position: %v, color 0x%06x", mgl32.Vec3{}, uint32(cfg.Cube.Color))

	driver.Light = cmd.AddEntity(
		NewTransform(mgl32.Vec3(cfg.Light.Position)),
		LightComponent{
			Type:      LightTypeDirectional,
			Color:     ColorFromHex(uint32(cfg.Light.Color)),
			Intensity: cfg.Light.Intensity,
		},
	)
	scene.Add(driver.Light)
	log.Infof("Light position: %v", cfg.Light.Position)

	log.Infof("Scene: %d members, window %dx%d", scene.Len(), window.Width, window.Height)
	cmd.ChangeState(StateRunning)
}

func frameClockSystem(cmd *Commands, counter *FrameCounter) {
	counter.Started = time.Now()
	counter.statsTime = counter.Started
	if counter.Budget > 0 {
		cmd.Logger().Infof("Running for %d frames", counter.Budget)
	} else {
		cmd.Logger().Infof("Running until the window closes")
	}
}

func spinSystem(cmd *Commands) {
	MakeQuery2[TransformComponent, Spinning](cmd).Map(func(eid EntityId, t *TransformComponent, s *Spinning) bool {
		t.Rotation = t.Rotation.Add(s.Rate)
		return true
	})
}

func renderSystem(cmd *Commands, scene *Scene, assets *AssetServer, surface *RenderSurface, counter *FrameCounter) {
	view, err := BuildRenderView(cmd, scene, assets)
	if err != nil {
		panic(fmt.Errorf("frame %d: %w", counter.Frames, err))
	}
	if err := surface.Renderer().Render(view); err != nil {
		panic(fmt.Errorf("frame %d: render: %w", counter.Frames, err))
	}
	surface.Frames++
	counter.Frames++
}

func frameBudgetSystem(cmd *Commands, counter *FrameCounter) {
	if counter.Budget > 0 && counter.Frames >= counter.Budget {
		cmd.Logger().Infof("Frame budget of %d reached", counter.Budget)
		cmd.Exit()
	}
}

func frameStatsSystem(cmd *Commands, counter *FrameCounter, t *Time) {
	if counter.Frames-counter.statsFrame < statsInterval {
		return
	}
	log := cmd.Logger()
	if log.DebugEnabled() {
		if elapsed := t.Time.Sub(counter.statsTime); elapsed > 0 {
			fps := float64(counter.Frames-counter.statsFrame) / elapsed.Seconds()
			log.Debugf("frame %d: %.1f fps, dt %v", counter.Frames, fps, t.Dt)
		}
	}
	counter.statsFrame = counter.Frames
	counter.statsTime = t.Time
}

// AverageFPS is the mean frame rate since the loop entered StateRunning.
func (c *FrameCounter) AverageFPS(now time.Time) float64 {
	elapsed := now.Sub(c.Started)
	if c.Started.IsZero() || elapsed <= 0 {
		return 0
	}
	return float64(c.Frames) / elapsed.Seconds()
}
