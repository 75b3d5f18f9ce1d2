package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gohilite/internal/configloader"
	"github.com/yaklabco/gohilite/internal/logging"
	"github.com/yaklabco/gohilite/pkg/config"
	"github.com/yaklabco/gohilite/pkg/fsutil"
)

// initFlags holds the flags for the init command.
type initFlags struct {
	force    bool
	full     bool
	noBackup bool
	format   string
	output   string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new gohilite configuration file",
		Long: `Create a new .gohilite.yml configuration file in the current directory
with sensible defaults for the highlight engine and the minimap renderer.

When the file exists, init asks before overwriting it on a terminal and
refuses otherwise unless --force is given. The previous file is kept as
a .bak backup.

Examples:
  gohilite init                      Create minimal .gohilite.yml
  gohilite init --full               Create full config with every setting
  gohilite init --format json        Create .gohilite.json instead
  gohilite init --output custom.yml  Write to a custom file path`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "Generate full template with every setting")
	cmd.Flags().BoolVar(&flags.noBackup, "no-backup", false, "Do not keep a backup when overwriting")
	cmd.Flags().StringVar(&flags.format, "format", "yaml", "Output format: yaml or json")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default: .gohilite.yml or .gohilite.json)")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.NewInteractive()
	ctx := commandContext(cmd)

	// Validate format
	if flags.format != "yaml" && flags.format != formatJSON {
		return fmt.Errorf("%w: format %q: must be yaml or json", ErrInvalidUsage, flags.format)
	}

	// Determine output path
	outputPath := flags.output
	if outputPath == "" {
		if flags.format == formatJSON {
			outputPath = ".gohilite.json"
		} else {
			outputPath = configloader.ProjectConfigFiles[0]
		}
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if fsutil.Exists(absPath) && !flags.force {
		if !configloader.IsInteractive() {
			return fmt.Errorf("%w: file %q already exists; use --force to overwrite", ErrInvalidUsage, outputPath)
		}
		ok, err := configloader.Confirm(os.Stdin, cmd.ErrOrStderr(),
			fmt.Sprintf("%s already exists. Overwrite?", outputPath), false)
		if err != nil {
			return fmt.Errorf("confirm overwrite: %w", err)
		}
		if !ok {
			logger.Info("left existing file unchanged", logging.FieldPath, outputPath)
			return nil
		}
	}

	content, err := config.GenerateTemplate(config.TemplateOptions{
		Full:   flags.full,
		Format: flags.format,
	})
	if err != nil {
		return fmt.Errorf("generate template: %w", err)
	}

	written, err := configloader.WriteConfigFile(ctx, absPath, content, !flags.noBackup)
	if err != nil {
		return err
	}

	if !written {
		logger.Info("configuration already up to date", logging.FieldPath, outputPath)
		return nil
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	if flags.full {
		logger.Info("full template includes every setting with its default")
	}
	logger.Info("run 'gohilite languages' to see the available language profiles")

	return nil
}
