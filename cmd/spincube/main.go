package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/urfave/cli"
)

func init() {
	// GLFW and the WebGPU surface must live on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	app := cli.NewApp()
	app.Name = "spincube"
	app.Usage = "render a spinning lit cube"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Usage: "YAML file overriding the default scene",
		},
		cli.IntFlag{
			Name:  "width",
			Value: 1280,
			Usage: "window width",
		},
		cli.IntFlag{
			Name:  "height",
			Value: 720,
			Usage: "window height",
		},
		cli.StringFlag{
			Name:  "title",
			Value: "spincube",
			Usage: "window title",
		},
		cli.Uint64Flag{
			Name:  "frames, n",
			Usage: "stop after this many frames (0 runs until the window closes)",
		},
		cli.BoolFlag{
			Name:  "headless",
			Usage: "run without a window using the recording renderer; requires --frames",
		},
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable debug logging",
		},
	}
	app.Action = runScene

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err.Error())
		os.Exit(1)
	}
}
