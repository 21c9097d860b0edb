package cmd

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/predlab/predeval/config"
	"github.com/predlab/predeval/core/prediction"
	"github.com/predlab/predeval/core/report"
	"github.com/predlab/predeval/dataset"
	"github.com/predlab/predeval/infra/logger"
	"github.com/predlab/predeval/infra/metrics"
	"github.com/predlab/predeval/pkg/export"
)

var (
	frameFormat  string
	serveMetrics bool
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate a dataset of fitted and real values",
	RunE:  runEvaluate,
}

func init() {
	evaluateCmd.Flags().StringVar(&frameFormat, "frame", "", "dump the per-row frame to stdout (csv or json)")
	evaluateCmd.Flags().BoolVar(&serveMetrics, "serve", false, "keep serving the Prometheus registry after evaluating")
	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := logger.SetLevel(cfg.Logging.Level); err != nil {
		return err
	}
	log := logger.New("evaluate")

	set, err := dataset.Load(cfg.Dataset.Path)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}
	name := cfg.Dataset.Name
	if name == "" {
		name = set.Name
	}
	log.Debugw("dataset loaded", map[string]any{
		"name": name, "elements": len(set.Fitted), "kind": cfg.Evaluation.Kind,
	})

	rep, frame, err := evaluate(cfg.Evaluation, name, set)
	if err != nil {
		return err
	}

	sink, err := metrics.NewFromConfig(cfg.Metrics)
	if err != nil {
		return fmt.Errorf("metrics sink: %w", err)
	}
	if err := sink.RecordReport(rep); err != nil {
		log.Errorf("record report: %v", err)
	}
	log.Infof("run %s: dataset %s evaluated (%d elements)", rep.RunID, name, rep.N)

	printSummary(cmd.OutOrStdout(), rep)
	switch frameFormat {
	case "":
	case "csv":
		if err := export.WriteCSV(cmd.OutOrStdout(), frame); err != nil {
			return err
		}
	case "json":
		if err := export.WriteJSON(cmd.OutOrStdout(), frame); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown frame format %s", frameFormat)
	}

	if serveMetrics && cfg.Metrics.PrometheusEnabled {
		log.Infof("serving metrics on :%d", cfg.Metrics.PrometheusPort)
		return metrics.StartPromServer(cfg.Metrics.PrometheusPort)
	}
	return nil
}

func evaluate(cfg config.EvaluationConfig, name string, set *dataset.Set) (report.Report, *prediction.Frame, error) {
	switch cfg.Kind {
	case "numeric":
		fitted, real, err := set.Numeric()
		if err != nil {
			return report.Report{}, nil, err
		}
		p, err := prediction.NewNumeric(fitted, real)
		if err != nil {
			return report.Report{}, nil, err
		}
		return report.FromNumeric(name, p, cfg.Tolerance), p.AsFrame(), nil
	case "binary":
		p, err := prediction.NewBinary(set.Fitted, set.Real, cfg.ValuePositive)
		if err != nil {
			return report.Report{}, nil, err
		}
		return report.FromBinary(name, p), p.ConfusionFrame(), nil
	default:
		p, err := prediction.New(set.Fitted, set.Real)
		if err != nil {
			return report.Report{}, nil, err
		}
		return report.FromGeneric(name, p), p.AsFrame(), nil
	}
}

func printSummary(w io.Writer, rep report.Report) {
	fmt.Fprintf(w, "dataset %s (%s, %d elements)\n", rep.Dataset, rep.Kind, rep.N)
	scalars := rep.Scalars()
	names := make([]string, 0, len(scalars))
	for n := range scalars {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Fprintf(w, "  %s: %g\n", n, scalars[n])
	}
	if rep.Kind == report.KindBinary {
		fmt.Fprintf(w, "  confusion: %v\n", rep.Confusion)
	}
}
