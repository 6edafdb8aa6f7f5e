package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/vegasq/pqtool/internal/output"
	"github.com/vegasq/pqtool/internal/reader"
)

const (
	defaultLineLimit = 1_000_000
	noLineLimit      = -1
)

// ErrTooManyRows is wrapped by the ExitError returned when cat refuses a
// file with more rows than --line-limit.
var ErrTooManyRows = errors.New("row count exceeds line limit")

func CatCommandBuilder(env *Env) *cli.Command {
	return &cli.Command{
		Name:      "cat",
		Usage:     "dump a parquet file to the console as CSV",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			NewLineLimitFlag(env.Config),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return catCommandAction(ctx, cmd, env)
		},
	}
}

func catCommandAction(_ context.Context, cmd *cli.Command, env *Env) error {
	limit := int64(cmd.Int("line-limit"))

	return withReader(cmd, func(r *reader.Reader) error {
		rows := r.NumRows()
		log.Debugf("cat: %s has %d rows, limit %d", r.Path(), rows, limit)

		if limit != noLineLimit && rows > limit {
			fmt.Fprintf(env.Out, "File %s has more than %d rows. Change --line-limit or disable with %d.\n",
				r.Path(), limit, noLineLimit)
			return &ExitError{Code: 1, Err: fmt.Errorf("%w: %d > %d", ErrTooManyRows, rows, limit)}
		}

		text, err := output.Render(r.Scan(-1), output.FormatCSV)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(env.Out, text)
		return err
	})
}
