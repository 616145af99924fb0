package spincube

import (
	"time"
)

// Time is the wall clock at the start of the current frame. Dt is the time
// since the previous frame.
type Time struct {
	Time  time.Time
	Dt    time.Duration
	Start time.Time
}

type TimeModule struct {
}

func (mod TimeModule) Install(app *App, cmd *Commands) {
	if _, ok := Resource[Time](app); ok {
		return
	}
	now := time.Now()
	cmd.AddResources(&Time{
		Time:  now,
		Dt:    0,
		Start: now,
	})
	app.UseSystem(
		System(timeSystem).
			InStage(Prelude).
			RunAlways(),
	)
}

func timeSystem(timeResource *Time) {
	now := time.Now()

	timeResource.Dt = now.Sub(timeResource.Time)
	timeResource.Time = now
}

// Elapsed is the time since the module was installed.
func (t *Time) Elapsed() time.Duration {
	return t.Time.Sub(t.Start)
}
