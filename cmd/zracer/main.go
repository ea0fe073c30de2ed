package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/zracer/audio"
	"github.com/lixenwraith/zracer/config"
	"github.com/lixenwraith/zracer/constants"
	"github.com/lixenwraith/zracer/core"
	"github.com/lixenwraith/zracer/engine"
	"github.com/lixenwraith/zracer/input"
	"github.com/lixenwraith/zracer/render"
	"github.com/lixenwraith/zracer/terminal"
	"github.com/lixenwraith/zracer/track"
)

// Exit codes
const (
	exitOK     = 0
	exitFailed = 1
	exitConfig = 2
)

var terminalSize = terminal.Size

func main() {
	opts := registerFlags(flag.CommandLine)
	flag.Parse()

	if logFile := setupLogging(opts.debug); logFile != nil {
		defer logFile.Close()
	}

	code := run(opts)
	if code != exitOK {
		// Deferred close is skipped by os.Exit
		log.Printf("zracer: exit %d", code)
		os.Exit(code)
	}
}

func run(opts *options) int {
	cfg, err := opts.loadConfig()
	if err == nil {
		cfg, err = opts.apply(flag.CommandLine, cfg)
	}
	if err != nil {
		return reportError(err)
	}

	if err := terminal.RequireTTY(os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "zracer: %v\n", err)
		return exitFailed
	}
	if err := preflight(cfg, os.Stdout); err != nil {
		return reportError(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "zracer: failed to create screen: %v\n", err)
		return exitFailed
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "zracer: failed to initialize screen: %v\n", err)
		return exitFailed
	}
	core.SetCrashTerminal(screen)

	// Panic Recovery: Ensure terminal is reset even if the race crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	res, err := race(screen, cfg, opts.mute)

	core.SetCrashTerminal(nil)
	screen.Fini()

	if err != nil {
		return reportError(err)
	}
	fmt.Println(res.String())
	return exitOK
}

// preflight resolves the geometry against the terminal before the screen is taken over,
// so configuration errors print on the normal screen
// An unknown size defers the check to the tcell screen
func preflight(cfg config.Config, f *os.File) error {
	w, h, err := terminalSize(f)
	if err != nil {
		log.Printf("config: %v, checking geometry after screen init", err)
		return nil
	}
	log.Printf("config: terminal %dx%d", w, h)
	_, err = cfg.Resolve(w, h)
	return err
}

// race owns the screen from geometry resolution until the results message is dismissed
func race(screen tcell.Screen, cfg config.Config, mute bool) (engine.Result, error) {
	sw, sh := screen.Size()
	resolved, err := cfg.Resolve(sw, sh)
	if err != nil {
		return engine.Result{}, err
	}
	log.Printf("config: screen %dx%d, track %dx%d, minimal %d, %d players %s/%s",
		sw, sh, resolved.RaceLength, resolved.RaceWidth, resolved.MinimalWidth,
		resolved.Players, resolved.Sharing, resolved.Split)

	views := render.Viewports(screen, resolved.Players, resolved.Split)
	surfaces := make([]render.Surface, len(views))
	for i, v := range views {
		surfaces[i] = v
	}

	queue := input.NewQueue(constants.InputQueueSize)
	core.Go(func() { queue.Pump(screen.PollEvent) })

	session, err := engine.NewSession(resolved, surfaces, queue, track.NewRand(resolved.Seed))
	if err != nil {
		return engine.Result{}, err
	}

	audioCfg := audio.LoadAudioConfig()
	if mute {
		audioCfg.Enabled = false
	}
	sounds := audio.NewSoundManager(audioCfg)
	if err := sounds.Initialize(); err != nil {
		// Non-fatal, the race runs without sound
		log.Printf("audio: initialization failed: %v", err)
	}
	defer sounds.Cleanup()
	session.SetSounds(sounds)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	screen.Clear()
	sounds.PlayStart()
	res := session.Run(ctx, resolved.TickDelay())

	for _, v := range views {
		v.Clear()
	}
	render.Message(screen, res.String()+"\n\nPress Esc to exit")
	waitForDismiss(ctx, queue)
	return res, nil
}

// waitForDismiss blocks until a quit key, Enter or cancellation
func waitForDismiss(ctx context.Context, source input.Source) {
	ticker := time.NewTicker(constants.ResultPollInterval)
	defer ticker.Stop()

	for {
		for {
			ev, ok := source.Poll()
			if !ok {
				break
			}
			if kev, ok := ev.(*tcell.EventKey); ok && (input.IsQuit(kev) || kev.Key() == tcell.KeyEnter) {
				return
			}
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// reportError prints err after the terminal is restored; configuration problems exit with exitConfig
func reportError(err error) int {
	log.Printf("zracer: %v", err)
	fmt.Fprintf(os.Stderr, "zracer: %v\n", err)
	if errors.Is(err, config.ErrConfiguration) {
		fmt.Fprintln(os.Stderr, "Check the flags (zracer -h) or the config file.")
		return exitConfig
	}
	return exitFailed
}
