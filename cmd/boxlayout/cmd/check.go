package cmd

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/go-drift/boxlayout/pkg/graphics"
	"github.com/go-drift/boxlayout/pkg/layout"
)

func init() {
	RegisterCommand(&Command{
		Name:  "check",
		Short: "Validate documents",
		Long: `Validate one or more layout documents.

Each document is parsed, checked against the schema version, built and
measured. Failures are reported per document; the command fails if any
document does.`,
		Usage: "boxlayout check FILE...",
		Run:   runCheck,
	})
}

func runCheck(args []string) error {
	for _, arg := range args {
		if len(arg) > 1 && arg[0] == '-' {
			return fmt.Errorf("unknown flag: %s", arg)
		}
	}
	if len(args) == 0 {
		return fmt.Errorf("check requires at least one document")
	}
	s, err := newSession()
	if err != nil {
		return err
	}

	sizes := make([]graphics.Size, len(args))
	errs := make([]error, len(args))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			errs[i] = guard("check "+path, func() error {
				_, root, err := s.load(path)
				if err != nil {
					return err
				}
				sizes[i] = layout.Measure(root)
				return nil
			})
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for i, path := range args {
		i, path := i, path
		if errs[i] != nil {
			failed++
			report("check", path, errs[i])
			continue
		}
		fmt.Fprintf(stdout, "ok  %s %gx%g\n", path, sizes[i].Width, sizes[i].Height)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed", failed, len(args))
	}
	return nil
}
