package command

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/apex/log"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/urfave/cli/v3"

	"github.com/vegasq/pqtool/internal/output"
	"github.com/vegasq/pqtool/internal/reader"
	"github.com/vegasq/pqtool/internal/table"
)

func SchemaCommandBuilder(env *Env) *cli.Command {
	return &cli.Command{
		Name:      "schema",
		Usage:     "display the flattened schema of a parquet file",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "schema-metadata",
				Usage:       "include schema-level key/value metadata",
				HideDefault: true,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return schemaCommandAction(ctx, cmd, env)
		},
	}
}

func schemaCommandAction(_ context.Context, cmd *cli.Command, env *Env) error {
	withMetadata := cmd.Bool("schema-metadata")

	return withReader(cmd, func(r *reader.Reader) error {
		columns := r.Schema()
		log.Debugf("schema: %s has %d leaf columns", r.Path(), len(columns))

		rows := make([]map[string]any, len(columns))
		for i, c := range columns {
			rows[i] = c.Row()
		}

		text, err := output.Render(table.New(reader.SchemaColumns, rows), output.FormatPretty)
		if err != nil {
			return err
		}

		var b strings.Builder
		b.WriteString(text)
		b.WriteByte('\n')
		if withMetadata {
			writeSchemaMetadata(&b, r.SchemaMetadata())
		}

		_, err = io.WriteString(env.Out, b.String())
		return err
	})
}

// writeSchemaMetadata writes each entry as "key:" followed by its value.
// JSON values are indented, other text is written as-is and values that
// are not UTF-8 are written base64 encoded.
func writeSchemaMetadata(w io.Writer, kvs []reader.KeyValue) {
	if len(kvs) == 0 {
		fmt.Fprintln(w, "<no schema-level metadata>")
		return
	}

	fmt.Fprintln(w, "-- schema metadata --")
	for _, kv := range kvs {
		fmt.Fprintf(w, "%s:\n", displayText(kv.Key))

		value, err := reader.DecodeText([]byte(kv.Value))
		switch {
		case errors.Is(err, reader.ErrNotUTF8):
			fmt.Fprintf(w, "<binary, %d bytes, base64>\n%s\n",
				len(kv.Value), base64.StdEncoding.EncodeToString([]byte(kv.Value)))
		case gjson.Valid(value):
			fmt.Fprintln(w, strings.TrimRight(string(pretty.Pretty([]byte(value))), "\n"))
		default:
			fmt.Fprintln(w, value)
		}
	}
}

func displayText(s string) string {
	text, err := reader.DecodeText([]byte(s))
	if err != nil {
		return base64.StdEncoding.EncodeToString([]byte(s))
	}
	return text
}
