package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lunaracodes/gagwatch/internal/catalog"
	"github.com/lunaracodes/gagwatch/internal/clock"
	"github.com/lunaracodes/gagwatch/internal/config"
	"github.com/lunaracodes/gagwatch/internal/logging"
	"github.com/lunaracodes/gagwatch/internal/notify"
	"github.com/lunaracodes/gagwatch/internal/prefs"
	"github.com/lunaracodes/gagwatch/internal/state"
	"github.com/lunaracodes/gagwatch/internal/stock"
	"github.com/lunaracodes/gagwatch/internal/tray"
	"github.com/lunaracodes/gagwatch/internal/ui"
	"github.com/lunaracodes/gagwatch/internal/watch"
)

// Options configure the gagwatch application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/gagwatch/prefs.toml
	WatchPath  string // overrides watch_file from the config
	CheckOnce  bool   // run a single check, print matches and return
	NoTray     bool
	Debug      bool
	Stdout     io.Writer // nil uses os.Stdout
	Stderr     io.Writer // nil uses os.Stderr
}

// env holds everything Run wires together before choosing a mode.
type env struct {
	cfg       config.Config
	log       zerolog.Logger
	selection *watch.Selection
	store     *state.Store
	notifier  *notify.Multi
	checker   *Checker
}

// Run boots gagwatch until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	stdout, stderr := opts.Stdout, opts.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if strings.TrimSpace(opts.WatchPath) != "" {
		if cfg.WatchFile, err = config.ExpandPath(opts.WatchPath); err != nil {
			return fmt.Errorf("resolve watch file: %w", err)
		}
	}

	// The window owns the terminal; console logging is for --check only.
	logCfg := logging.DefaultConfig(cfg.LogFile)
	logCfg.Level = cfg.LogLevel
	if opts.Debug {
		logCfg.Level = "debug"
	}
	if opts.CheckOnce {
		logCfg.Console = stderr
	}
	log, closer, err := logging.New(logCfg)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = closer.Close() }()

	client, err := stock.NewClient(cfg.SeedsURL, cfg.GearURL, cfg.RequestTimeout)
	if err != nil {
		return fmt.Errorf("init stock client: %w", err)
	}

	sel := watch.New()
	if err := watch.Load(cfg.WatchFile, sel); err != nil {
		log.Warn().Err(err).Str("path", cfg.WatchFile).Msg("watch file unusable; watching everything")
	}

	e := &env{
		cfg:       cfg,
		log:       log,
		selection: sel,
		store:     &state.Store{},
		notifier:  notify.NewMulti(notify.NewDesktop(log, tray.Icon())),
	}
	if opts.CheckOnce {
		e.notifier.Add(notify.NewPrinter(stdout))
	}
	e.checker = NewChecker(client, sel, e.store, e.notifier, clock.Real(), log)

	log.Info().
		Str("seeds_url", client.Endpoint(catalog.Seeds)).
		Str("gear_url", client.Endpoint(catalog.Gear)).
		Int("granularity", cfg.Granularity).
		Bool("check_once", opts.CheckOnce).
		Msg("gagwatch starting")

	if opts.CheckOnce {
		return runOnce(ctx, e.checker, stdout)
	}
	return runInteractive(ctx, e, opts)
}

// runOnce performs one check and prints a summary line. Matches have already
// been printed by the notifier.
func runOnce(ctx context.Context, checker *Checker, w io.Writer) error {
	result := checker.CheckAll(ctx)
	matched := result.Matched()
	switch len(matched) {
	case 0:
		_, _ = fmt.Fprintln(w, "no watched items in stock")
	default:
		_, _ = fmt.Fprintf(w, "%d watched item(s) in stock: %s\n", len(matched), strings.Join(matched, ", "))
	}
	if err := result.Err(); err != nil {
		return fmt.Errorf("check: %w", err)
	}
	return nil
}

func runInteractive(parent context.Context, e *env, opts Options) error {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		e.log.Warn().Err(err).Msg("preferences unusable; using defaults")
	}

	sched := NewScheduler(e.checker, e.store, clock.Real(), e.cfg.Granularity, e.log)
	sched.Start(ctx)

	var icon *tray.Tray
	if !opts.NoTray {
		icon, err = tray.Start(e.log)
		if err != nil {
			e.log.Warn().Err(err).Msg("running without tray; minimize disabled")
			icon = nil
		}
	}

	host := &windowHost{show: make(chan struct{}, 1)}
	if icon != nil {
		go forwardTray(ctx, icon.Events(), host, e.checker, cancel, e.log)
	}

	uiOpts := ui.Options{
		Context:   ctx,
		Store:     e.store,
		Selection: e.selection,
		CheckNow: func(ctx context.Context) {
			e.checker.CheckAll(ctx)
		},
		Clock:       clock.Real(),
		ThemeName:   userPrefs.Theme,
		ViewName:    userPrefs.View,
		PrefsPath:   opts.PrefsPath,
		CanMinimize: icon != nil,
		Log:         e.log,
	}
	runErr := host.loop(ctx, uiOpts, e.log)

	if err := watch.Save(e.cfg.WatchFile, e.selection); err != nil {
		e.log.Error().Err(err).Str("path", e.cfg.WatchFile).Msg("save watch file")
	} else {
		e.log.Info().Str("path", e.cfg.WatchFile).Msg("watch list saved")
	}

	cancel()
	sched.Wait()
	if icon != nil {
		icon.Stop()
	}
	e.log.Info().Msg("gagwatch stopped")
	return runErr
}
