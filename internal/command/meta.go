package command

import (
	"context"
	"fmt"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/vegasq/pqtool/internal/output"
	"github.com/vegasq/pqtool/internal/reader"
)

func MetaCommandBuilder(env *Env) *cli.Command {
	return &cli.Command{
		Name:      "meta",
		Usage:     "display the file metadata of a parquet file",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			NewFormatFlag(env.Config, "meta", "PQTOOL_META_FORMAT", "toml", output.MetaFormats),
			&cli.BoolFlag{
				Name:        "include-row-groups",
				Usage:       "include row group and column chunk metadata",
				HideDefault: true,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return metaCommandAction(ctx, cmd, env)
		},
	}
}

func metaCommandAction(_ context.Context, cmd *cli.Command, env *Env) error {
	format, err := output.ParseFormatIn(cmd.String("format"), output.MetaFormats)
	if err != nil {
		return err
	}
	includeRowGroups := cmd.Bool("include-row-groups")

	return withReader(cmd, func(r *reader.Reader) error {
		log.Debugf("meta: %s as %s, row groups %t", r.Path(), format, includeRowGroups)

		m := r.Metadata(includeRowGroups)
		if includeRowGroups {
			m = output.Sanitize(m)
		}

		text, err := output.EncodeMeta(m, format)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(env.Out, text)
		return err
	})
}
