package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/flipgrid/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional, .toml or .yaml)")
	prefsPath := flag.String("prefs", "", "override prefs path (optional)")
	autoplay := flag.Int("autoplay", 0, "force a random card every N seconds (optional, 0 disables)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{ConfigPath: *configPath, PrefsPath: *prefsPath}
	if n := *autoplay; n > 0 {
		opts.Autoplay = n
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "flipgrid: %v\n", err)
		return 1
	}
	return 0
}
