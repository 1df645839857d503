package cmd

import (
	"fmt"
)

func init() {
	RegisterCommand(&Command{
		Name:  "env",
		Short: "Show the resolved configuration",
		Long: `Show the configuration boxlayout resolved: the config file in use, the
default viewport, the label font, the output format and the enclosing Go
module, if any.`,
		Usage: "boxlayout env",
		Run:   runEnv,
	})
}

func runEnv(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("env takes no arguments")
	}
	s, err := newSession()
	if err != nil {
		return err
	}
	cfg := s.cfg

	source := cfg.Source
	if source == "" {
		source = "(defaults)"
	}
	fmt.Fprintf(stdout, "Config:   %s\n", source)
	fmt.Fprintf(stdout, "Viewport: %gx%g\n", cfg.ViewportWidth, cfg.ViewportHeight)
	fmt.Fprintf(stdout, "Font:     %s %gpt @%gdpi (line height %g)\n",
		cfg.Font.Face, cfg.Font.Size, cfg.Font.DPI, s.metrics.Face().LineHeight())
	fmt.Fprintf(stdout, "Format:   %s\n", cfg.Format)
	fmt.Fprintf(stdout, "Verbose:  %t\n", cfg.Verbose)
	if cfg.ProjectRoot != "" {
		fmt.Fprintln(stdout)
		fmt.Fprintf(stdout, "Project:  %s (%s)\n", cfg.ProjectName, cfg.ModulePath)
		fmt.Fprintf(stdout, "Root:     %s\n", cfg.ProjectRoot)
	}
	return nil
}
