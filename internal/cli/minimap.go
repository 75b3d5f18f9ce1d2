package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gohilite/internal/logging"
	"github.com/yaklabco/gohilite/internal/ui/pretty"
	"github.com/yaklabco/gohilite/pkg/config"
	"github.com/yaklabco/gohilite/pkg/fsutil"
	"github.com/yaklabco/gohilite/pkg/minimap"
)

// pngFilePermissions is the file mode for written PNG images.
const pngFilePermissions = 0o644

type minimapFlags struct {
	language  string
	scroll    float64
	viewLines float64
	width     int
	height    int
	scale     int
	png       string
	preview   bool
	compact   bool
}

func newMinimapCommand() *cobra.Command {
	flags := &minimapFlags{}

	cmd := &cobra.Command{
		Use:   "minimap FILE",
		Short: "Render a minimap of a source file",
		Long: `Render a scaled overview of a source file.

Each line becomes a thin bar colored by a coarse category (comment,
definition, import, control flow or plain), indented by its leading
whitespace and sized by its length. An outline marks the lines visible in
the primary view. The frame is written as JSON by default.

Examples:
  gohilite minimap app.py                          # Frame as JSON
  gohilite minimap app.py --scroll 120 --view-lines 40
  gohilite minimap app.py --png map.png --scale 3  # Write a PNG
  gohilite minimap app.py --preview                # Terminal preview`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMinimap(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.language, "language", "l", "", "language profile (default: detect)")
	cmd.Flags().Float64Var(&flags.scroll, "scroll", 0, "first visible line of the primary view (0-based)")
	cmd.Flags().Float64Var(&flags.viewLines, "view-lines", 0, "lines visible in the primary view (default from config)")
	cmd.Flags().IntVar(&flags.width, "width", 0, "canvas width in pixels (default from config)")
	cmd.Flags().IntVar(&flags.height, "height", 0, "canvas height in pixels (default from config)")
	cmd.Flags().IntVar(&flags.scale, "scale", 0, "PNG upscaling factor (default from config)")
	cmd.Flags().StringVar(&flags.png, "png", "", "write the minimap as a PNG image to this path")
	cmd.Flags().BoolVar(&flags.preview, "preview", false, "draw the minimap in the terminal")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact JSON output")
	cmd.MarkFlagsMutuallyExclusive("png", "preview")

	return cmd
}

func runMinimap(cmd *cobra.Command, path string, flags *minimapFlags) error {
	if flags.scroll < 0 {
		return fmt.Errorf("%w: --scroll must not be negative", ErrInvalidUsage)
	}

	ctx := commandContext(cmd)

	cfg, err := loadConfig(ctx, cmd, &config.Config{
		Language: flags.language,
		Minimap: config.MinimapConfig{
			Width:     flags.width,
			Height:    flags.height,
			ViewLines: flags.viewLines,
			Scale:     flags.scale,
		},
	})
	if err != nil {
		return err
	}

	doc, err := loadDocument(ctx, path, cfg)
	if err != nil {
		return err
	}
	doc = doc.WithScroll(flags.scroll)

	renderer := minimap.NewRenderer(rendererOptions(cfg.Minimap))
	frame := renderer.Render(doc.Text, minimap.Viewport{
		FirstLine:    doc.ScrollFirstLine,
		VisibleLines: cfg.Minimap.ViewLines,
	}, canvasSize(cfg.Minimap))

	logger := logging.FromContext(ctx)
	logger.Debug("rendered minimap",
		logging.FieldPath, path,
		logging.FieldLines, frame.TotalLines,
		logging.FieldRects, len(frame.Rects),
		logging.FieldCanvas, fmt.Sprintf("%dx%d", frame.Canvas.Width, frame.Canvas.Height),
	)

	switch {
	case flags.png != "":
		scale := max(1, cfg.Minimap.Scale)
		err := fsutil.WriteAtomicFunc(ctx, flags.png, pngFilePermissions, func(w io.Writer) error {
			return frame.WritePNG(w, scale)
		})
		if err != nil {
			return fmt.Errorf("write png: %w", err)
		}
		logging.NewInteractive().Info("wrote minimap", logging.FieldOutput, flags.png, logging.FieldScale, scale)
		return nil

	case flags.preview:
		out := cmd.OutOrStdout()
		colorMode, _ := cmd.Flags().GetString("color") //nolint:errcheck // Falls back to auto.
		styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, out))
		if _, err := io.WriteString(out, styles.RenderPreview(frame, pretty.TerminalWidth(out, frame.Canvas.Width))); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil

	default:
		return writeJSON(cmd.OutOrStdout(), frame, flags.compact)
	}
}

// rendererOptions maps minimap configuration onto renderer geometry.
// The loaded config already carries the defaults; NewRenderer repairs
// anything left out of range.
func rendererOptions(cfg config.MinimapConfig) minimap.Options {
	return minimap.Options{
		LineHeight:    cfg.LineHeight,
		LineGap:       cfg.LineGap,
		MaxLineLength: cfg.MaxLineLength,
		WindowBefore:  cfg.WindowBefore,
		WindowAfter:   cfg.WindowAfter,
		TabWidth:      cfg.TabWidth,
	}
}

// canvasSize returns the configured canvas, defaulting unset dimensions.
func canvasSize(cfg config.MinimapConfig) minimap.Size {
	size := minimap.Size{Width: cfg.Width, Height: cfg.Height}
	if size.Width <= 0 {
		size.Width = minimap.DefaultWidth
	}
	if size.Height <= 0 {
		size.Height = minimap.DefaultHeight
	}
	return size
}
