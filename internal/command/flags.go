package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/vegasq/pqtool/internal/config"
	"github.com/vegasq/pqtool/internal/output"
)

// sources resolves a flag from an environment variable first and then from
// key in the config file, when there is one.
func sources(cfg config.Type, envVar, key string) cli.ValueSourceChain {
	chain := []cli.ValueSource{cli.EnvVar(envVar)}
	if cfg.Source != "" {
		chain = append(chain, yaml.YAML(key, altsrc.StringSourcer(cfg.Source)))
	}
	return cli.NewValueSourceChain(chain...)
}

// NewFormatFlag constructs the --format flag for the command named ns. Only
// the allowed formats pass validation.
func NewFormatFlag(cfg config.Type, ns, envVar, value string, allowed []output.Format) *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "output format, one of " + output.FormatNames(allowed),
		Value:   value,
		Sources: sources(cfg, envVar, ns+".format"),
		Validator: func(value string) error {
			return FlagValidators(value, FormatValidator(allowed))
		},
	}
}

// NewRecordsFlag constructs the --records flag of head.
func NewRecordsFlag(cfg config.Type) *cli.IntFlag {
	return &cli.IntFlag{
		Name:    "records",
		Aliases: []string{"n"},
		Usage:   "number of records to show",
		Value:   10,
		Sources: sources(cfg, "PQTOOL_RECORDS", "head.records"),
		Validator: func(value int) error {
			return FlagValidators(value, MinValidator(0))
		},
	}
}

// NewLineLimitFlag constructs the --line-limit flag of cat.
func NewLineLimitFlag(cfg config.Type) *cli.IntFlag {
	return &cli.IntFlag{
		Name:    "line-limit",
		Usage:   "refuse files with more rows than this. -1 to disable",
		Value:   defaultLineLimit,
		Sources: sources(cfg, "PQTOOL_LINE_LIMIT", "cat.line-limit"),
		Validator: func(value int) error {
			return FlagValidators(value, MinValidator(noLineLimit))
		},
	}
}
