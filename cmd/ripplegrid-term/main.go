package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/iburimskiy/ripple-grid/internal/applog"
	"github.com/iburimskiy/ripple-grid/internal/config"
	"github.com/iburimskiy/ripple-grid/internal/term"
)

var debugFlag = flag.Bool("debug", false, "Write debug log to "+config.LogDir+"/"+config.LogFileName)

func main() {
	flag.Parse()

	if f := applog.Setup(*debugFlag, config.LogDir); f != nil {
		defer f.Close()
	}

	r, err := term.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal before reporting a crash so the trace is readable
	defer func() {
		if rec := recover(); rec != nil {
			r.Fini()
			fmt.Fprintf(os.Stderr, "\nripplegrid crashed: %v\n", rec)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	r.Run()
	r.Fini()
}
