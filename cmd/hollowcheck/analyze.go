package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hollowcheck/hollowcheck/app"
	"github.com/hollowcheck/hollowcheck/domain"
	"github.com/hollowcheck/hollowcheck/internal/apperr"
	"github.com/hollowcheck/hollowcheck/internal/config"
	"github.com/hollowcheck/hollowcheck/internal/contractio"
	"github.com/hollowcheck/hollowcheck/internal/report"
	"github.com/hollowcheck/hollowcheck/service"
)

var (
	analyzeContractPath string
	analyzeFormat       string
	analyzeThreshold    int
	analyzeSkipRegistry bool
	analyzeShowSuppress bool
	analyzeStrict       bool
	analyzeRelaxed      bool
	analyzeBaselineRef  string
	analyzeIncludeGlobs []string
	analyzeExcludeGlobs []string
)

func analyzeCmd() *cobra.Command {
	cfg, _ := config.Load()

	cmd := &cobra.Command{
		Use:   "analyze [path]",
		Short: "Run the hollowcheck quality gate against a codebase",
		Long: `Scans path (default ".") against a contract, scores the findings, and
exits 0 on pass, 1 on fail, 2 on error.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAnalyze,
	}

	cmd.Flags().StringVarP(&analyzeContractPath, "contract", "c", cfg.ContractPath, "Path to the contract YAML")
	cmd.Flags().StringVar(&analyzeFormat, "format", "pretty", "Output format: pretty, json, or sarif")
	cmd.Flags().IntVar(&analyzeThreshold, "threshold", cfg.Threshold, "Override the contract's pass/fail threshold")
	cmd.Flags().BoolVar(&analyzeSkipRegistry, "skip-registry-check", false, "Skip the dependency verifier's network probes")
	cmd.Flags().BoolVar(&analyzeShowSuppress, "show-suppressed", false, "Include suppressed findings in the report")
	cmd.Flags().BoolVar(&analyzeStrict, "strict", false, "Halve god-object thresholds")
	cmd.Flags().BoolVar(&analyzeRelaxed, "relaxed", false, "Double god-object thresholds")
	cmd.Flags().StringVar(&analyzeBaselineRef, "baseline", "", "Git ref to diff against; only new violations affect pass/fail")
	cmd.Flags().StringSliceVar(&analyzeIncludeGlobs, "include", nil, "Glob(s) restricting the scan to matching paths")
	cmd.Flags().StringSliceVar(&analyzeExcludeGlobs, "exclude", nil, "Glob(s) excluded from the scan, on top of the contract's excluded_paths")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return apperr.Input("invalid path %s: %v", root, err)
	}
	if _, err := os.Stat(absRoot); err != nil {
		return apperr.Input("path does not exist: %s", absRoot)
	}

	contract, err := contractio.Load(analyzeContractPath)
	if err != nil {
		return err
	}

	opts := domain.DefaultOptions()
	opts.SkipRegistryCheck = analyzeSkipRegistry
	opts.ShowSuppressed = analyzeShowSuppress
	opts.Include = analyzeIncludeGlobs
	opts.Exclude = analyzeExcludeGlobs
	if cmd.Flags().Changed("threshold") || os.Getenv("HOLLOWCHECK_THRESHOLD") != "" {
		opts.ThresholdOverride = &analyzeThreshold
	}
	switch {
	case analyzeStrict && analyzeRelaxed:
		return apperr.Input("--strict and --relaxed are mutually exclusive")
	case analyzeStrict:
		opts.GodObjectMultiplier = 0.5
	case analyzeRelaxed:
		opts.GodObjectMultiplier = 2.0
	}

	cfg, _ := config.Load()
	pm := service.NewProgressManager(analyzeFormat == "pretty" && !cfg.NoColor)
	defer pm.Close()
	opts.Progress = pm

	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}
	cacheDir = filepath.Join(cacheDir, "hollowcheck")

	useCase := app.NewAnalyzeUseCase(cacheDir, pm)

	ctx := context.Background()
	var result *domain.Report
	if analyzeBaselineRef != "" {
		opts.BaselineRef = analyzeBaselineRef
		result, err = useCase.AnalyzeWithBaseline(ctx, absRoot, contract, opts)
	} else {
		result, err = useCase.Analyze(ctx, absRoot, contract, opts)
	}
	if err != nil {
		return err
	}

	formatter, err := formatterFor(analyzeFormat)
	if err != nil {
		return apperr.Input("%v", err)
	}

	out, err := formatter.Format(result)
	if err != nil {
		return apperr.Internal(err, "failed to render report")
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))

	if !result.Passed {
		return &ExitError{Code: 1}
	}
	return nil
}

func formatterFor(format string) (domain.ReportFormatter, error) {
	switch format {
	case "", "pretty":
		return report.NewPrettyFormatter(), nil
	case "json":
		return report.NewJSONFormatter(), nil
	case "sarif":
		return report.NewSARIFFormatter(), nil
	default:
		return nil, fmt.Errorf("unknown format %q (want pretty, json, or sarif)", format)
	}
}
