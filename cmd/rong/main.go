package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/diegok/rong/internal/app"
	"github.com/diegok/rong/internal/config"
	"github.com/diegok/rong/internal/logger"
)

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if err == pflag.ErrHelp {
		printUsage()
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	log, closer, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	application := app.NewApp(cfg, log)
	if err := application.Run(); err != nil {
		log.WithError(err).Error("exiting")
		closer.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  rong [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprint(os.Stderr, config.Usage())
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Every option can also be set with a RONG_ environment variable,")
	fmt.Fprintln(os.Stderr, "e.g. RONG_WIN_THRESHOLD=10, or in the file given to --config.")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Controls:")
	fmt.Fprintln(os.Stderr, "  Player 1: W / S      Player 2: Up / Down")
	fmt.Fprintln(os.Stderr, "  Enter: new match once one is won      q / Esc: quit")
}
