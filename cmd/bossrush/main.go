// BossRush is a turn-based boss-rush combat game for the terminal.
// Usage: bossrush [--version] [--plain] [--script <file>] [--roster <dir>]
//
//	[--log-file <path>] [--report <path>] [--quiet-log]
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/nathoo/bossrush/cli"
	"github.com/nathoo/bossrush/config"
	"github.com/nathoo/bossrush/engine"
	"github.com/nathoo/bossrush/engine/events"
	"github.com/nathoo/bossrush/engine/report"
	"github.com/nathoo/bossrush/engine/state"
	"github.com/nathoo/bossrush/loader"
	"github.com/nathoo/bossrush/telemetry"
	"github.com/nathoo/bossrush/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const usage = "Usage: bossrush [--version] [--plain] [--script <file>] [--roster <dir>] " +
	"[--log-file <path>] [--report <path>] [--quiet-log]\n"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading .env: %v\n", err)
		return 1
	}

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("bossrush %s (commit %s, built %s)\n", version, commit, date)
			return 0
		case "--plain":
			cfg.Plain = true
		case "--quiet-log":
			cfg.QuietLog = true
		case "--script", "--roster", "--log-file", "--report":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "%s requires a value\n", args[i])
				return 1
			}
			i++
			switch args[i-1] {
			case "--script":
				cfg.ScriptFile = args[i]
			case "--roster":
				cfg.RosterDir = args[i]
			case "--log-file":
				cfg.LogFile = args[i]
			case "--report":
				cfg.ReportPath = args[i]
			}
		default:
			fmt.Fprintf(os.Stderr, "unknown argument %q\n%s", args[i], usage)
			return 1
		}
	}

	logger, err := newLogger(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log: %v\n", err)
		return 1
	}
	defer logger.Sync()

	runID := report.NewRunID()
	logger = logger.With(zap.String("run_id", runID))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if telemetry.Enabled() {
		shutdown, err := telemetry.Setup(ctx, runID)
		if err != nil {
			logger.Warn("tracing disabled", zap.Error(err))
		} else {
			defer shutdown(context.Background())
		}
	}

	defs := state.DefaultDefs()
	if cfg.RosterDir != "" {
		loaded, warnings, err := loader.Load(cfg.RosterDir)
		for _, w := range warnings {
			logger.Warn("roster", zap.String("warning", w))
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading roster: %v\n", err)
			return 1
		}
		defs = loaded
	}

	collector := &events.Collector{}
	log := events.NewLog(collector)
	if cfg.LogFile != "" {
		log.Add(events.Zap{Logger: logger})
	}

	var camp *engine.Campaign
	switch {
	case cfg.ScriptFile != "":
		f, ferr := os.Open(cfg.ScriptFile)
		if ferr != nil {
			fmt.Fprintf(os.Stderr, "Error opening script: %v\n", ferr)
			return 1
		}
		defer f.Close()
		c := cli.New()
		c.In = f
		c.EchoInput = true
		camp, err = runPlain(ctx, c, defs, log, cfg)

	case cfg.Plain || !isTerminal():
		c := cli.New()
		c.ClearScreen = isTerminal()
		camp, err = runPlain(ctx, c, defs, log, cfg)

	default:
		camp, err = tui.Run(ctx, engine.New(defs, log), cfg.QuietLog)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logger.Info("run finished",
		zap.String("player", playerName(camp)),
		zap.Bool("won", camp.Won),
		zap.Int("battles", len(camp.Records)))

	if cfg.ReportPath != "" {
		if err := report.WriteFile(cfg.ReportPath, report.Build(runID, camp, collector.Events())); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}
	return 0
}

// runPlain plays the campaign on the line-based CLI, echoing combat
// events to its output unless quieted.
func runPlain(ctx context.Context, c *cli.CLI, defs *state.Defs, log *events.Log, cfg *config.Config) (*engine.Campaign, error) {
	if !cfg.QuietLog {
		log.Add(events.Console{Out: c.Out})
	}
	fmt.Fprintf(c.Out, "%s\n\n", defs.Game.Title)
	return c.Run(ctx, engine.New(defs, log))
}

func playerName(camp *engine.Campaign) string {
	if camp == nil || camp.Player == nil {
		return ""
	}
	return camp.Player.Name
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
