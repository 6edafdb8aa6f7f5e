package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/vegasq/pqtool/internal/output"
	"github.com/vegasq/pqtool/internal/reader"
	"github.com/vegasq/pqtool/internal/table"
)

var statsColumns = []string{
	"path",
	"physical_type",
	"num_values",
	"null_count",
	"min",
	"max",
	"compression",
	"compressed_size",
	"uncompressed_size",
}

func StatsCommandBuilder(env *Env) *cli.Command {
	return &cli.Command{
		Name:      "stats",
		Usage:     "display per-column statistics of a parquet file",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			NewFormatFlag(env.Config, "stats", "PQTOOL_STATS_FORMAT", "pretty", output.TableFormats),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return statsCommandAction(ctx, cmd, env)
		},
	}
}

func statsCommandAction(_ context.Context, cmd *cli.Command, env *Env) error {
	format, err := output.ParseFormatIn(cmd.String("format"), output.TableFormats)
	if err != nil {
		return err
	}

	return withReader(cmd, func(r *reader.Reader) error {
		stats := r.Stats()
		log.Debugf("stats: %d columns in %s", len(stats), r.Path())

		text, err := output.Render(statsTable(stats, format == output.FormatPretty), format)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(env.Out, text)
		return err
	})
}

// statsTable builds the stats relation. Human readable sizes are only
// used for pretty output; the other formats keep byte counts.
func statsTable(stats []reader.ColumnStats, humanSizes bool) *table.Table {
	rows := make([]map[string]any, len(stats))
	for i, cs := range stats {
		row := map[string]any{
			"path":              cs.Path,
			"physical_type":     cs.PhysicalType,
			"num_values":        cs.NumValues,
			"null_count":        cs.NullCount,
			"min":               cs.Min,
			"max":               cs.Max,
			"compression":       strings.Join(cs.CompressionCodecs, ","),
			"compressed_size":   cs.CompressedSize,
			"uncompressed_size": cs.UncompressedSize,
		}
		if humanSizes {
			row["compressed_size"] = humanize.Bytes(uint64(cs.CompressedSize))
			row["uncompressed_size"] = humanize.Bytes(uint64(cs.UncompressedSize))
		}
		rows[i] = row
	}
	return table.New(statsColumns, rows)
}
