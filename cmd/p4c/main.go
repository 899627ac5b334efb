package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/specialistvlad/p4cdriver/internal/app"
	"github.com/specialistvlad/p4cdriver/internal/cli"
	"github.com/specialistvlad/p4cdriver/internal/hclconfig"
)

// main is the entrypoint for the p4c compiler driver.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Stdout, os.Stderr, os.Args[1:], os.Getenv)
	stop()

	if err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		os.Exit(app.ExitCode(err))
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. Errors other than *cli.ExitError have already been reported on outW.
func run(ctx context.Context, outW, logW io.Writer, args []string, getenv func(string) string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW, getenv)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	loader := hclconfig.NewLoaderWithEnv(getenv)
	driver := app.NewApp(outW, logW, appConfig, loader, nil)

	return driver.Run(ctx)
}
