package command

import (
	"context"
	"io"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/vegasq/pqtool/internal/config"
)

// Version is reported by --version. It is overridden at build time.
var Version = "dev"

// Env carries what every command needs besides its flags.
type Env struct {
	Config config.Type
	Out    io.Writer
	Err    io.Writer
}

// InitApp builds the root command with every subcommand attached.
func InitApp(ctx context.Context, env *Env) *cli.Command {
	app := &cli.Command{
		Name:                  "pqtool",
		Usage:                 "Parquet inspection tool: preview, dump, schema and metadata",
		Version:               Version,
		Writer:                env.Out,
		ErrWriter:             env.Err,
		EnableShellCompletion: true,
		// Exit codes are mapped by the caller, never by the library.
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}

	app.Commands = append(app.Commands,
		HeadCommandBuilder(env),
		CatCommandBuilder(env),
		SchemaCommandBuilder(env),
		MetaCommandBuilder(env),
		StatsCommandBuilder(env),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app
}
