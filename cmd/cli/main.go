package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/daypack/internal/app"
	"github.com/specialistvlad/daypack/internal/cli"
	"github.com/specialistvlad/daypack/internal/config"
	"github.com/specialistvlad/daypack/internal/hcl"
	"github.com/specialistvlad/daypack/internal/yamlconfig"
)

// main is the entrypoint for the daypack application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW, errW io.Writer, args []string) (err error) {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// Registry validation and solver precondition failures surface as panics.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application panicked: %v", r)
		}
	}()

	loader := config.NewMultiLoader(hcl.NewLoader(), yamlconfig.NewLoader())
	daypackApp := app.NewApp(outW, errW, appConfig, loader)

	return daypackApp.Run(context.Background(), appConfig)
}
