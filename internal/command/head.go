package command

import (
	"context"
	"fmt"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/vegasq/pqtool/internal/output"
	"github.com/vegasq/pqtool/internal/reader"
)

func HeadCommandBuilder(env *Env) *cli.Command {
	return &cli.Command{
		Name:      "head",
		Usage:     "display the first N records of a parquet file",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			NewRecordsFlag(env.Config),
			NewFormatFlag(env.Config, "head", "PQTOOL_FORMAT", "pretty", output.TableFormats),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return headCommandAction(ctx, cmd, env)
		},
	}
}

func headCommandAction(_ context.Context, cmd *cli.Command, env *Env) error {
	format, err := output.ParseFormatIn(cmd.String("format"), output.TableFormats)
	if err != nil {
		return err
	}
	records := cmd.Int("records")

	return withReader(cmd, func(r *reader.Reader) error {
		log.Debugf("head: %d records of %s as %s", records, r.Path(), format)

		text, err := output.Render(r.Scan(int64(records)), format)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(env.Out, text)
		return err
	})
}
