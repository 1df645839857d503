package cmd

import (
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/go-drift/boxlayout/pkg/graphics"
	"github.com/go-drift/boxlayout/pkg/layout"
)

func init() {
	RegisterCommand(&Command{
		Name:  "measure",
		Short: "Print the best size of documents",
		Long: `Print the best size of one or more layout documents.

Without flags the width is resolved first and the height for that width.
--width fixes the width and prints the best height for it; --height fixes
the height and prints the best width. Nothing is arranged.

Documents are measured concurrently and printed in argument order.`,
		Usage: "boxlayout measure FILE... [--width W | --height H]",
		Run:   runMeasure,
	})
}

type measureOptions struct {
	files  []string
	width  float64
	height float64
}

func parseMeasureArgs(args []string) (measureOptions, error) {
	opts := measureOptions{width: layout.Unset, height: layout.Unset}
	for i := 0; i < len(args); i++ {
		if !strings.HasPrefix(args[i], "--") {
			opts.files = append(opts.files, args[i])
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
		default:
			return opts, fmt.Errorf("unknown flag: %s", name)
		}
		if err != nil {
			return opts, err
		}
	}
	if len(opts.files) == 0 {
		return opts, fmt.Errorf("measure requires at least one document")
	}
	if opts.width >= 0 && opts.height >= 0 {
		return opts, fmt.Errorf("--width and --height are mutually exclusive")
	}
	return opts, nil
}

func runMeasure(args []string) error {
	opts, err := parseMeasureArgs(args)
	if err != nil {
		return err
	}
	s, err := newSession()
	if err != nil {
		return err
	}

	sizes := make([]graphics.Size, len(opts.files))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range opts.files {
		i, path := i, path
		g.Go(func() error {
			return guard("measure "+path, func() error {
				_, root, err := s.load(path)
				if err != nil {
					return err
				}
				switch {
				case opts.width >= 0:
					sizes[i] = graphics.Size{Width: opts.width, Height: layout.BestHeight(root, opts.width)}
				case opts.height >= 0:
					sizes[i] = graphics.Size{Width: layout.BestWidth(root, opts.height), Height: opts.height}
				default:
					sizes[i] = layout.Measure(root)
				}
				return nil
			})
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, path := range opts.files {
		if len(opts.files) == 1 {
			fmt.Fprintf(stdout, "%gx%g\n", sizes[i].Width, sizes[i].Height)
		} else {
			fmt.Fprintf(stdout, "%s: %gx%g\n", path, sizes[i].Width, sizes[i].Height)
		}
	}
	return nil
}
