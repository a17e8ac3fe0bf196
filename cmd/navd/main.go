// Command navd is the navigation stack's controller executable: it loads a
// DWA planner configuration and drives one navigation attempt, reporting
// its outcome via exit code. Concrete base/localization drivers and any
// viewer/RPC transport are out of scope (spec.md §1) — this binary wires
// the core against fakes to exercise the full stack end to end, the way a
// real deployment would wire it against hardware-backed capabilities.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"

	"github.com/urfave/cli/v2"
	goutils "go.viam.com/utils"

	"go.viam.com/nav/capability"
	"go.viam.com/nav/config"
	"go.viam.com/nav/gridmap"
	"go.viam.com/nav/logging"
	"go.viam.com/nav/navigator"
	"go.viam.com/nav/navpath"
)

func main() {
	app := &cli.App{
		Name:  "navd",
		Usage: "run the 2D local navigation stack for one navigation attempt",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config-file",
				Aliases: []string{"f"},
				Usage:   "path to a DwaPlanner YAML configuration file",
				EnvVars: []string{config.EnvVarConfigPath},
			},
			&cli.BoolFlag{
				Name:  "debug-dump",
				Usage: "log an ASCII dump of the occupancy map before navigating",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	logger := logging.NewLogger("navd")
	if c.Bool("debug-dump") {
		logger = logging.NewDebugLogger("navd")
	}

	configPath := c.String("config-file")
	if configPath == "" {
		return cli.Exit("no configuration file given: pass -f/--config-file or set "+config.EnvVarConfigPath, 2)
	}

	cfg, err := config.LoadFromFile(configPath)
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to load planner config: %v", err), 2)
	}
	planner := cfg.ToPlanner()
	logger.Infow("loaded planner configuration", "path", configPath, "numVelSample", planner.NumVelSample)

	occupancyMap := gridmap.New[uint8](gridmap.NewPosition(-1, -1), gridmap.NewPosition(3, 3), 0.05)
	start := navpath.NewPose(0, 0, 0)
	goal := navpath.NewPose(2, 2, 0)

	if c.Bool("debug-dump") {
		logger.Debugf("occupancy map:\n%s", gridmap.DumpASCII(occupancyMap, 1.0))
	}

	base := capability.NewFakeBase(true)
	localizer := capability.NewFakePoseSource(start, goal)
	execCfg := navigator.DefaultExecutorConfig("map")

	exec := navigator.New(base, localizer, planner, execCfg, logger, nil, rand.New(rand.NewSource(1)))

	// Run the attempt on a dedicated goroutine, as Executor.Run's doc
	// comment recommends, so a panic inside the DWA scorer or the global
	// planner can't take the whole process down silently.
	type runResult struct {
		status navigator.Status
		err    error
	}
	done := make(chan runResult, 1)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	goutils.PanicCapturingGo(func() {
		status, err := exec.Run(ctx, start, goal, occupancyMap)
		done <- runResult{status, err}
	})
	result := <-done

	status, runErr := result.status, result.err
	logger.Infow("navigation attempt finished", "sessionID", exec.SessionID(), "status", status.String())

	if c.Bool("debug-dump") {
		if angles := exec.DiagnosticAngles(); angles != nil {
			if heading, ok := angles.Space("heading_error"); ok {
				logger.Debugf("final heading error: %.4f rad", heading)
			}
		}
	}

	if status != navigator.StateArrived {
		return cli.Exit(fmt.Sprintf("navigation attempt did not arrive: %v", runErr), 1)
	}
	return nil
}
