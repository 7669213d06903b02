package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvreport/config"
	"github.com/katalvlaran/lvreport/datasource"
	"github.com/katalvlaran/lvreport/metrics"
)

type buildOptions struct {
	*options
	format     string
	leavesOnly bool
	from       string
	columns    []string
	metrics    bool
}

func newBuildCmd(opts *options) *cobra.Command {
	bo := &buildOptions{options: opts}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Generate the report and print it",
		Long: `Generate the report tree and print its table projection.

Formats:
  table   aligned text, one row per node (default)
  yaml    rows with groups, values and cell errors
  json    same as yaml, as JSON

Invisible rows (brackets in table output) hold level-skipped rows in place
and carry no values.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error { return bo.run() },
	}

	cmd.Flags().StringVarP(&bo.format, "format", "f", formatTable, "Output format (table, yaml, json)")
	cmd.Flags().BoolVar(&bo.leavesOnly, "leaves-only", false, "Only print rows matched at a leaf level")
	cmd.Flags().StringVar(&bo.from, "from", "", "Qualified short name of the element to start from")
	cmd.Flags().StringSliceVar(&bo.columns, "columns", nil, "Columns to print (default: all)")
	cmd.Flags().BoolVar(&bo.metrics, "metrics", false, "Print Prometheus metrics to stderr after the report")

	return cmd
}

func (bo *buildOptions) run() error {
	// 1. Validate flags before any work
	w, err := writerFor(bo.format)
	if err != nil {
		return err
	}
	log, err := bo.logger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	// 2. Load the definition
	doc, err := config.LoadFile(bo.definition)
	if err != nil {
		return err
	}
	compiled, err := doc.Compile()
	if err != nil {
		return err
	}

	// 3. Generate and project, optionally recorded
	genOpts := []datasource.Option{datasource.WithLogger(log)}
	var (
		reg       *prometheus.Registry
		collector *metrics.Collector
	)
	if bo.metrics {
		reg = prometheus.NewRegistry()
		if collector, err = metrics.NewCollector("reportgen", reg); err != nil {
			return err
		}
		genOpts = append(genOpts, datasource.WithRecorder(collector))
	}

	var timer *prometheus.Timer
	if collector != nil {
		timer = prometheus.NewTimer(collector.BuildDuration)
	}

	gen := datasource.NewGenerator(compiled.Shape, genOpts...)
	var report *datasource.Report
	if bo.from == "" {
		report, err = gen.Generate(compiled.Hierarchy, compiled.Elements)
	} else {
		start := compiled.Index.Find(bo.from)
		if start == nil {
			return fmt.Errorf("--from %q: %w", bo.from, datasource.ErrMissingRootElement)
		}
		report, err = gen.GenerateFrom(compiled.Hierarchy, start, compiled.Elements)
	}
	if err != nil {
		return err
	}

	var projOpts []datasource.ProjectOption
	if bo.leavesOnly {
		projOpts = append(projOpts, datasource.WithLeavesOnly())
	}
	if len(bo.columns) > 0 {
		projOpts = append(projOpts, datasource.WithColumns(bo.columns...))
	}
	table := datasource.Project(report, projOpts...)
	if timer != nil {
		timer.ObserveDuration()
	}

	log.Info("report built",
		zap.String("definition", bo.definition),
		zap.Int("rows", len(table.Rows)),
		zap.Int("pruned", report.Pruned()))

	// 4. Print
	if err := w(bo.stdout, table); err != nil {
		return fmt.Errorf("write %s: %w", bo.format, err)
	}
	if reg != nil {
		return writeMetrics(bo, reg)
	}

	return nil
}

func writeMetrics(bo *buildOptions, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	enc := expfmt.NewEncoder(bo.stderr, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("encode metrics: %w", err)
		}
	}

	return nil
}
