package cmd

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-drift/boxlayout/cmd/boxlayout/internal/config"
	"github.com/go-drift/boxlayout/pkg/document"
	"github.com/go-drift/boxlayout/pkg/errors"
	"github.com/go-drift/boxlayout/pkg/text"
	"github.com/go-drift/boxlayout/pkg/view"
)

// session carries the resolved configuration and the label metrics shared
// by every document a command touches.
type session struct {
	cfg     *config.Resolved
	metrics *text.MetricsCache
}

func newSession() (*session, error) {
	cfg, err := config.Resolve(globals.configPath)
	if err != nil {
		return nil, err
	}
	if globals.verbose {
		cfg.Verbose = true
	}
	errors.SetHandler(&errors.LogHandler{Verbose: cfg.Verbose, Out: stderr})

	face, err := text.NewFace(cfg.Font)
	if err != nil {
		return nil, fmt.Errorf("font: %w", err)
	}
	return &session{
		cfg:     cfg,
		metrics: text.NewMetricsCache(face, text.DefaultCacheLimit),
	}, nil
}

// load reads, validates and builds the document at path.
func (s *session) load(path string) (*document.Document, view.Node, error) {
	doc, err := document.Load(path)
	if err != nil {
		return nil, nil, err
	}
	root, err := doc.Build(document.BuildOptions{Metrics: s.metrics})
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, root, nil
}

// report hands a per-document failure to the error handler.
func report(op, path string, err error) {
	errors.Report(&errors.LayoutError{
		Op:      op,
		Kind:    errors.KindDocument,
		Element: path,
		Err:     err,
	})
}

// guard runs fn, turning an engine panic into an error. Goroutines need
// their own guard; runCommand only covers the calling goroutine.
func guard(op string, fn func() error) (err error) {
	defer errors.RecoverWithCallback(op, func(r any) {
		err = fmt.Errorf("%s: internal error: %v", op, r)
	})
	return fn()
}

// flagValue returns the value of a flag given as "--name value" or
// "--name=value", advancing i past a separate value.
func flagValue(args []string, i *int) (name, value string, err error) {
	name, value, ok := strings.Cut(args[*i], "=")
	if ok {
		return name, value, nil
	}
	if *i+1 >= len(args) {
		return name, "", fmt.Errorf("%s requires a value", name)
	}
	*i++
	return name, args[*i], nil
}

// parseSize parses a non-negative finite size flag.
func parseSize(name, value string) (float64, error) {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%s: invalid size %q", name, value)
	}
	return v, nil
}
