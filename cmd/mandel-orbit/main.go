// Command mandel-orbit shows the orbit of a point under z -> z^2 + c in the terminal
// C follows the mouse over the plot or the two sliders; right-click toggles between them
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/mandel-orbit/audio"
	"github.com/lixenwraith/mandel-orbit/config"
	"github.com/lixenwraith/mandel-orbit/engine"
	"github.com/lixenwraith/mandel-orbit/view"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	debug      bool
	audio      bool
}

func main() {
	if err := mainCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func mainCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "mandel-orbit",
		Short: "Interactive orbit viewer for z -> z^2 + c",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// At this point usage information has already been printed if obviously incorrect.
			cmd.SilenceUsage = true
			return run(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "TOML file overriding the built-in settings")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "write a debug log to "+logDir+"/"+logFileName)
	cmd.Flags().BoolVar(&opts.audio, "audio", false, "play a short cue on every mode toggle")

	return cmd
}

func run(ctx context.Context, opts options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.debug {
		cfg.Log.Debug = true
	}
	if opts.audio {
		cfg.Audio.Enabled = true
	}

	if logFile := setupLogging(cfg.Log.Debug); logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: Ensure terminal is reset even if the viewer crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nMANDEL-ORBIT CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	var sound *audio.SoundManager
	if cfg.Audio.Enabled {
		sound = audio.NewSoundManager()
		if err := sound.Initialize(); err != nil {
			// Non-fatal, the viewer runs without sound
			log.Printf("Audio initialization failed: %v (continuing without audio)", err)
		} else {
			defer sound.Cleanup()
		}
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("starting: seed %v, initial C %v, bound %g", cfg.Seed(), cfg.InitialC(), cfg.Plot.Bound)
	return engine.New(screen, view.New(cfg), sound).Run(ctx)
}
