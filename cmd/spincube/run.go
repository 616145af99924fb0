package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gekko3d/spincube"
	"github.com/olekukonko/tablewriter"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli"
)

// loadConfig reads the optional config file and applies flags that were set
// explicitly on the command line.
func loadConfig(ctx *cli.Context) (spincube.Config, error) {
	cfg := spincube.DefaultConfig()
	if path := ctx.String("config"); path != "" {
		var err error
		if cfg, err = spincube.LoadConfig(path); err != nil {
			return cfg, err
		}
	}

	if ctx.IsSet("width") {
		cfg.Window.Width = ctx.Int("width")
	}
	if ctx.IsSet("height") {
		cfg.Window.Height = ctx.Int("height")
	}
	if ctx.IsSet("title") {
		cfg.Window.Title = ctx.String("title")
	}
	if ctx.IsSet("frames") {
		cfg.Frames = ctx.Uint64("frames")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	if ctx.Bool("headless") && cfg.Frames == 0 {
		return cfg, errors.New("--headless needs a frame budget (--frames)")
	}
	return cfg, nil
}

func runScene(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	renderer := spincube.RendererWGPU
	if ctx.Bool("headless") {
		renderer = spincube.RendererRecording
	}

	builder, err := spincube.NewAppBuilder().
		UseStates(spincube.StateInitializing, spincube.StateRunning).
		UseModule(spincube.LoggingModule{Prefix: "spincube", Debug: ctx.Bool("v")}).
		UseRenderer(renderer, cfg.Window)
	if err != nil {
		return err
	}
	if renderer == spincube.RendererRecording {
		builder.UseModule(progressModule{total: cfg.Frames})
	}

	app := builder.
		UseModule(spincube.FrameDriverModule{Config: cfg}).
		Build()

	if window, ok := spincube.Resource[spincube.WindowState](app); ok {
		defer window.Destroy()
	}

	app.Run()

	displayRunStats(app, time.Now())
	return nil
}

// progressModule draws a progress bar on stderr for runs with a frame budget.
type progressModule struct {
	total uint64
}

type frameProgress struct {
	bar *progressbar.ProgressBar
}

func (m progressModule) Install(app *spincube.App, cmd *spincube.Commands) {
	if m.total == 0 {
		return
	}
	cmd.AddResources(&frameProgress{
		bar: progressbar.NewOptions64(int64(m.total),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("rendering"),
			progressbar.OptionShowCount(),
			progressbar.OptionThrottle(65*time.Millisecond),
			progressbar.OptionOnCompletion(func() { fmt.Fprintln(os.Stderr) }),
		),
	})
	app.UseSystem(
		spincube.System(progressSystem).
			InStage(spincube.PostRender).
			InState(spincube.OnExecute(spincube.StateRunning)),
	)
}

func progressSystem(progress *frameProgress) {
	_ = progress.bar.Add(1)
}

func displayRunStats(app *spincube.App, now time.Time) {
	counter, _ := spincube.Resource[spincube.FrameCounter](app)
	surface, _ := spincube.Resource[spincube.RenderSurface](app)
	driver, _ := spincube.Resource[spincube.FrameDriver](app)
	if counter == nil || surface == nil || driver == nil {
		return
	}

	rotation := "-"
	if t, ok := spincube.Component[spincube.TransformComponent](app.Commands(), driver.Cube); ok {
		rotation = fmt.Sprintf("(%.3f, %.3f, %.3f) rad", t.Rotation[0], t.Rotation[1], t.Rotation[2])
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader([]string{"Renderer", "Surface", "Frames", "Elapsed", "Avg fps", "Cube rotation"})
	table.Append([]string{
		string(surface.Renderer().Name()),
		fmt.Sprintf("%dx%d", surface.Width, surface.Height),
		fmt.Sprintf("%d", counter.Frames),
		now.Sub(counter.Started).Round(time.Millisecond).String(),
		fmt.Sprintf("%.1f", counter.AverageFPS(now)),
		rotation,
	})
	table.Render()
	app.Logger().Infof("run statistics\n%s", buf.String())
}
