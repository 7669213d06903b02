package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// options shared by the subcommands.
type options struct {
	definition string
	logLevel   string

	stdout io.Writer
	stderr io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "reportgen",
		Short: "Build category-filtered report tables from a product tree",
		Long: `Build hierarchical report tables from a YAML report definition.

A report definition declares the category library, the category filter
tree, the report columns and the product tree. Elements whose categories
match a filter level become rows; the rest are pruned.

Examples:
  reportgen validate -d satellite.yaml
  reportgen build -d satellite.yaml
  reportgen build -d satellite.yaml -f yaml --leaves-only
  reportgen build -d satellite.yaml --from sat -f json --columns total_mass`,
		SilenceUsage: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVarP(&opts.definition, "definition", "d", "", "Report definition YAML file")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	_ = root.MarkPersistentFlagRequired("definition")

	root.AddCommand(newBuildCmd(opts))
	root.AddCommand(newValidateCmd(opts))

	return root
}

// logger writes to stderr: console encoding at debug level, JSON otherwise.
func (o *options) logger() (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(o.logLevel)
	if err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	enc := zapcore.NewJSONEncoder(encCfg)
	if lvl == zapcore.DebugLevel {
		encCfg = zap.NewDevelopmentEncoderConfig()
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(o.stderr), lvl)), nil
}
