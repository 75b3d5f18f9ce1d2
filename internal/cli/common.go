package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gohilite/internal/configloader"
	"github.com/yaklabco/gohilite/internal/logging"
	"github.com/yaklabco/gohilite/pkg/config"
	"github.com/yaklabco/gohilite/pkg/document"
	"github.com/yaklabco/gohilite/pkg/fsutil"
	"github.com/yaklabco/gohilite/pkg/highlight"
	"github.com/yaklabco/gohilite/pkg/langdetect"
	"github.com/yaklabco/gohilite/pkg/syntax"
)

const formatJSON = "json"

// commandContext returns the command context with the default logger
// attached and tagged with the subcommand name.
func commandContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return logging.WithCommand(logging.WithLogger(ctx, logging.Default()), cmd.Name())
}

// loadConfig resolves the layered configuration with cliCfg on top.
func loadConfig(ctx context.Context, cmd *cobra.Command, cliCfg *config.Config) (*config.Config, error) {
	logger := logging.FromContext(ctx)

	// Reject a bad --language before validation folds it into a config error.
	if cliCfg != nil {
		if _, err := parseLanguageFlag(cliCfg.Language); err != nil {
			return nil, err
		}
	}

	// Get the explicit config path from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, errors.Join(ErrConfig, err)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	return loadResult.Config, nil
}

// newEngine builds a highlight engine from configuration.
func newEngine(cfg *config.Config) (*highlight.Engine, error) {
	mode, err := highlight.ParseMode(cfg.Highlight.Mode)
	if err != nil {
		return nil, errors.Join(ErrConfig, err)
	}

	return highlight.NewEngine(highlight.Options{
		Mode:           mode,
		MaxBytes:       cfg.Highlight.MaxBytes,
		ReleaseOnClose: cfg.Highlight.ReleaseOnClose,
		Logger:         logging.Default(),
	}), nil
}

// parseLanguageFlag resolves --language. The empty string means detect.
func parseLanguageFlag(name string) (syntax.Language, error) {
	if name == "" {
		return syntax.LanguageNone, nil
	}
	lang, ok := syntax.ParseLanguage(name)
	if !ok {
		return syntax.LanguageNone, fmt.Errorf("%w: %q (see 'gohilite languages')", ErrUnknownLanguage, name)
	}
	return lang, nil
}

// loadDocument reads path and resolves its language, honoring a forced
// language from configuration.
func loadDocument(ctx context.Context, path string, cfg *config.Config) (document.Document, error) {
	forced, err := parseLanguageFlag(cfg.Language)
	if err != nil {
		return document.Document{}, err
	}

	content, _, err := fsutil.ReadSource(ctx, path, int64(cfg.Highlight.MaxBytes))
	if err != nil {
		return document.Document{}, err
	}

	lang := forced
	if lang == syntax.LanguageNone {
		lang = langdetect.Detect(path, content)
	}
	if lang == syntax.LanguageNone {
		return document.Document{}, fmt.Errorf("%w: cannot detect language of %s; use --language", ErrUnknownLanguage, path)
	}

	logging.FromContext(ctx).Debug("loaded document",
		logging.FieldPath, path,
		logging.FieldLanguage, lang,
		logging.FieldBytes, len(content),
	)

	doc := document.New(string(content), lang)
	doc.Path = path
	return doc, nil
}
