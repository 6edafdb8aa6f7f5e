package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/apex/log"

	"github.com/vegasq/pqtool/internal/command"
	"github.com/vegasq/pqtool/internal/config"
	mylog "github.com/vegasq/pqtool/internal/log"
)

func main() {
	os.Exit(realMain(context.Background(), os.Args, os.Stdout, os.Stderr))
}

// realMain runs the CLI and maps its outcome to an exit code: 0 on
// success, the code carried by a command.ExitError, and 2 for any other
// failure.
func realMain(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil && !errors.Is(err, config.ErrNotFound) {
		fmt.Fprintf(stderr, "Warning: %v\n", err)
	}
	mylog.InitLogger(cfg.GetString("log", ""))

	if len(args) < 2 {
		fmt.Fprintln(stderr, "No command specified.")
		args = append(args, "--help")
	}

	app := command.InitApp(ctx, &command.Env{
		Config: cfg,
		Out:    stdout,
		Err:    stderr,
	})

	if err := app.Run(ctx, args); err != nil {
		var exitErr *command.ExitError
		if errors.As(err, &exitErr) {
			log.WithError(err).Debug("exiting")
			return exitErr.Code
		}
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(stderr, "Error: %v\nPlease check the file path and try again.\n", err)
			return 2
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	return 0
}
