package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	flag "github.com/spf13/pflag"

	"github.com/lunaracodes/gagwatch/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (default ~/.config/gagwatch/config.toml)")
	prefsPath := flag.String("prefs", "", "override preferences path (default ~/.config/gagwatch/prefs.toml)")
	watchPath := flag.String("watch-file", "", "override the saved watch list path")
	checkOnce := flag.Bool("check", false, "run one stock check, print matches and exit")
	noTray := flag.Bool("no-tray", false, "do not show a tray icon")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
		WatchPath:  *watchPath,
		CheckOnce:  *checkOnce,
		NoTray:     *noTray,
		Debug:      *debug,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "gagwatch: %v\n", err)
		return 1
	}
	return 0
}
