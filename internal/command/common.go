package command

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/vegasq/pqtool/internal/reader"
)

// ErrMissingFile is returned when a command is run without its file
// argument.
var ErrMissingFile = errors.New("missing parquet file argument")

// ExitError asks the caller to exit with Code. The message, if any, has
// already been shown to the user.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode implements cli.ExitCoder.
func (e *ExitError) ExitCode() int {
	return e.Code
}

// fileArg returns the single positional argument of cmd.
func fileArg(cmd *cli.Command) (string, error) {
	switch cmd.Args().Len() {
	case 0:
		return "", ErrMissingFile
	case 1:
		return cmd.Args().First(), nil
	default:
		return "", fmt.Errorf("expected one parquet file, got %d arguments", cmd.Args().Len())
	}
}

// withReader opens the file named by the command's argument, runs fn and
// closes the file.
func withReader(cmd *cli.Command, fn func(r *reader.Reader) error) error {
	path, err := fileArg(cmd)
	if err != nil {
		return err
	}

	r, err := reader.NewReader(path)
	if err != nil {
		return err
	}
	defer func() { _ = r.Close() }()

	return fn(r)
}
