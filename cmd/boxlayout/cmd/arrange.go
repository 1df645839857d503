package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-drift/boxlayout/cmd/boxlayout/internal/config"
	"github.com/go-drift/boxlayout/pkg/document"
	"github.com/go-drift/boxlayout/pkg/graphics"
	"github.com/go-drift/boxlayout/pkg/layout"
	"github.com/go-drift/boxlayout/pkg/view"
)

func init() {
	RegisterCommand(&Command{
		Name:  "arrange",
		Short: "Arrange a document and print the bounds",
		Long: `Arrange a layout document and print the committed bounds of every
managed view.

The root is arranged at:
  --fit                 its best size
  --width and --height  the given size
  --width or --height   the given extent and the best extent for it
  otherwise             the document viewport, then the configured viewport

The text format prints absolute bounds, one view per line. The yaml format
prints a snapshot with parent-relative bounds, which --expect compares
against instead of printing.`,
		Usage: "boxlayout arrange FILE [--width W] [--height H] [--fit] [--format text|yaml] [--expect SNAPSHOT]",
		Run:   runArrange,
	})
}

type arrangeOptions struct {
	file   string
	width  float64
	height float64
	fit    bool
	format string
	expect string
}

func parseArrangeArgs(args []string) (arrangeOptions, error) {
	opts := arrangeOptions{width: layout.Unset, height: layout.Unset}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "--") {
			if opts.file != "" {
				return opts, fmt.Errorf("arrange takes one document, got %s and %s", opts.file, arg)
			}
			opts.file = arg
			continue
		}
		if arg == "--fit" {
			opts.fit = true
			continue
		}
		name, value, err := flagValue(args, &i)
		if err != nil {
			return opts, err
		}
		switch name {
		case "--width":
			opts.width, err = parseSize(name, value)
		case "--height":
			opts.height, err = parseSize(name, value)
		case "--format":
			opts.format = strings.ToLower(value)
			err = config.ValidateFormat(opts.format)
		case "--expect":
			opts.expect = value
		default:
			return opts, fmt.Errorf("unknown flag: %s", name)
		}
		if err != nil {
			return opts, err
		}
	}
	if opts.file == "" {
		return opts, fmt.Errorf("arrange requires a document")
	}
	if opts.fit && (opts.width >= 0 || opts.height >= 0) {
		return opts, fmt.Errorf("--fit cannot be combined with --width or --height")
	}
	return opts, nil
}

// viewport picks the size the root is arranged at.
func (o arrangeOptions) viewport(doc *document.Document, root view.Node, cfg *config.Resolved) graphics.Size {
	switch {
	case o.fit:
		return layout.Measure(root)
	case o.width >= 0 && o.height >= 0:
		return graphics.Size{Width: o.width, Height: o.height}
	case o.width >= 0:
		return graphics.Size{Width: o.width, Height: layout.BestHeight(root, o.width)}
	case o.height >= 0:
		return graphics.Size{Width: layout.BestWidth(root, o.height), Height: o.height}
	case doc.Viewport != nil:
		return graphics.Size{Width: doc.Viewport.Width, Height: doc.Viewport.Height}
	default:
		return graphics.Size{Width: cfg.ViewportWidth, Height: cfg.ViewportHeight}
	}
}

func runArrange(args []string) error {
	opts, err := parseArrangeArgs(args)
	if err != nil {
		return err
	}
	s, err := newSession()
	if err != nil {
		return err
	}
	doc, root, err := s.load(opts.file)
	if err != nil {
		return err
	}

	view.Layout(root, opts.viewport(doc, root, s.cfg))

	if opts.expect != "" {
		return expectSnapshot(opts.expect, document.Capture(root))
	}

	format := opts.format
	if format == "" {
		format = s.cfg.Format
	}
	if format == config.FormatYAML {
		return document.Capture(root).WriteYAML(stdout)
	}
	return document.WriteText(stdout, root)
}

func expectSnapshot(path string, got document.Snapshot) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open snapshot: %w", err)
	}
	defer f.Close()

	want, err := document.ReadSnapshot(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	diffs := document.Diff(want, got)
	if len(diffs) == 0 {
		fmt.Fprintf(stdout, "matches %s\n", path)
		return nil
	}
	for _, d := range diffs {
		fmt.Fprintln(stdout, d)
	}
	return fmt.Errorf("%d difference(s) from %s", len(diffs), path)
}
