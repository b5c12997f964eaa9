package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/guptanshuman124/ImGraph/app"
	"github.com/guptanshuman124/ImGraph/hal"
)

func main() {
	var hcfg hal.HeadlessConfig
	var expr string
	flag.BoolVar(&hcfg.Enabled, "headless", false, "Render without a window.")
	flag.IntVar(&hcfg.Hz, "hz", 60, "Frame rate in headless mode.")
	flag.Uint64Var(&hcfg.Ticks, "ticks", 0, "Stop after N frames in headless mode (0 = run forever).")
	flag.StringVar(&expr, "expr", "", "Initial expression (default: "+app.DefaultExpression+").")
	flag.Parse()

	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, app.Config{Expr: expr})
	}

	if hcfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, hcfg); err != nil {
			if err == context.Canceled {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(newApp); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
