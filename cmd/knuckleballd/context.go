package main

import (
	"fmt"
	"os"

	"github.com/knuckleball-lang/knuckleball"
	"github.com/knuckleball-lang/knuckleball/config"
)

// buildContext loads cfg from path (empty means defaults + env only),
// opens the configured log sink, constructs a *knuckleball.Context,
// and starts a background watcher that hot-applies later edits to the
// same file. The returned stop func releases the watcher and sink.
func buildContext(path string) (*knuckleball.Context, func(), error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}

	var sink knuckleball.LogSink
	if cfg.LogfileName != "" {
		sink, err = knuckleball.OpenLogSink(cfg.LogfileName)
		if err != nil {
			return nil, nil, err
		}
	}

	ctx := knuckleball.NewContext(cfg.FloatPrecision, cfg.FloatComparisonTolerance, cfg.QuietMode, sink)

	var watcher *config.Watcher
	if path != "" {
		watcher, err = config.Watch(path, func(newCfg *config.Config, err error) {
			if err != nil {
				fmt.Fprintln(os.Stderr, "knuckleballd: config reload rejected:", err)
				return
			}
			ctx.ApplyConfig(newCfg.FloatPrecision, newCfg.FloatComparisonTolerance, newCfg.QuietMode)
		})
		if err != nil {
			// A missing watch capability (e.g. path doesn't support inotify)
			// is not fatal: the process still runs with its initial config.
			fmt.Fprintln(os.Stderr, "knuckleballd: config watch disabled:", err)
			watcher = nil
		}
	}

	stop := func() {
		if watcher != nil {
			watcher.Close()
		}
		if sink != nil {
			sink.Close()
		}
	}
	return ctx, stop, nil
}
