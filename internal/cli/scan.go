package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/pprof"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gohilite/internal/logging"
	"github.com/yaklabco/gohilite/pkg/config"
	"github.com/yaklabco/gohilite/pkg/reporter"
	"github.com/yaklabco/gohilite/pkg/runner"
)

type scanFlags struct {
	format     string
	language   string
	ignore     []string
	extensions []string
	strict     bool
	noContext  bool
	compact    bool
	verbose    bool
	cpuprofile string
}

func newScanCommand() *cobra.Command {
	var cfg config.Config
	flags := &scanFlags{}

	cmd := &cobra.Command{
		Use:   "scan [paths...]",
		Short: "Highlight a tree of files and audit bracket balance",
		Long:  scanLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, args, &cfg, flags)
		},
	}

	addScanFlags(cmd, &cfg, flags)

	return cmd
}

const scanLongDescription = `Highlight every source file under the given paths and report statistics.

By default, scans all files with an extension claimed by a language profile
in the current directory and subdirectories. Each file is highlighted, its
spans are counted per kind, and its brackets are audited outside strings
and comments.

Examples:
  gohilite scan                      # Scan current directory
  gohilite scan src/                 # Scan a directory
  gohilite scan --format table       # One row per file
  gohilite scan --format summary     # Totals by language and span kind
  gohilite scan --format json        # Machine-readable output
  gohilite scan --strict             # Exit 1 on unmatched brackets`

func runScan(cmd *cobra.Command, args []string, cfg *config.Config, flags *scanFlags) error {
	ctx := commandContext(cmd)
	logger := logging.FromContext(ctx)

	if flags.cpuprofile != "" {
		stop, err := startCPUProfile(flags.cpuprofile)
		if err != nil {
			return err
		}
		defer stop()
	}

	// Only set values that were explicitly provided via CLI flags.
	if cmd.Flags().Changed("format") {
		cfg.Format = config.OutputFormat(flags.format)
	}
	cfg.Language = flags.language
	cfg.Ignore = flags.ignore

	finalCfg, err := loadConfig(ctx, cmd, cfg)
	if err != nil {
		return err
	}

	logger.Debug("configuration loaded",
		logging.FieldMode, finalCfg.Highlight.Mode,
		logging.FieldMaxBytes, finalCfg.Highlight.MaxBytes,
		logging.FieldJobs, finalCfg.Jobs,
	)

	lang, err := parseLanguageFlag(finalCfg.Language)
	if err != nil {
		return err
	}

	engine, err := newEngine(finalCfg)
	if err != nil {
		return err
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	runOpts := runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		Extensions:   normalizeExtensions(flags.extensions),
		ExcludeGlobs: finalCfg.Ignore,
		Jobs:         finalCfg.Jobs,
		Language:     lang,
		Config:       finalCfg,
	}

	logger.Debug("starting scan",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := runner.New(engine).Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("scan failed"), err)
	}

	logger.Debug("scan finished",
		logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFilesSkipped, result.Stats.FilesSkipped,
		logging.FieldSpansTotal, result.Stats.SpansTotal,
		logging.FieldUnmatched, result.Stats.UnmatchedBrackets,
	)

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto" // Default to auto if flag retrieval fails
	}

	format, err := reporter.ParseFormat(string(finalCfg.Format))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidUsage, err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      format,
		Color:       colorMode,
		ShowContext: !flags.noContext,
		ShowSummary: true,
		Verbose:     flags.verbose,
		Compact:     flags.compact,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	return errorForExitCode(ExitCodeFromResult(result, flags.strict))
}

// normalizeExtensions lowercases extensions and adds the leading dot.
func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}

// startCPUProfile begins CPU profiling into path and returns its stop func.
func startCPUProfile(path string) (func(), error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create cpu profile: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("start cpu profile: %w", err)
	}
	return func() {
		pprof.StopCPUProfile()
		_ = f.Close()
	}, nil
}

func addScanFlags(cmd *cobra.Command, cfg *config.Config, flags *scanFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, table, json, summary")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringVarP(&flags.language, "language", "l", "", "force a language profile for every file")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.extensions, "ext", nil, "file extensions to scan (default: all profile extensions)")
	cmd.Flags().IntVar(&cfg.Highlight.MaxBytes, "max-bytes", 0, "skip files larger than this many bytes")
	cmd.Flags().StringVar(&cfg.Highlight.Mode, "mode", "", "overlap mode: exclusive, layered")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "exit with status 1 when brackets are unmatched")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in output")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output format")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "list every file, not only unbalanced ones")

	// Profiling flags.
	cmd.Flags().StringVar(&flags.cpuprofile, "cpuprofile", "", "write CPU profile to file")
}
