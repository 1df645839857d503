// Package cmd implements the boxlayout CLI commands.
//
// The command structure follows standard Go CLI patterns with a root command
// that dispatches to subcommands (measure, arrange, check, env).
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-drift/boxlayout/cmd/boxlayout/internal/config"
	"github.com/go-drift/boxlayout/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name        string
	Short       string
	Long        string
	Usage       string
	Run         func(args []string) error
	SubCommands []*Command
}

var rootCmd = &Command{
	Name:  "boxlayout",
	Short: "boxlayout - box layout for view trees",
	Long: `boxlayout measures and arranges view trees described in YAML layout
documents, using column, row, box, scalebox, border, stack and grid
containers.

Use "boxlayout <command> --help" for more information about a command.`,
	Usage: "boxlayout <command> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// Output destinations. Tests replace them.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// globals holds the flags accepted before or after the command name.
var globals struct {
	configPath string
	verbose    bool
}

// Execute runs the CLI with the process arguments.
func Execute() error {
	return Run(os.Args[1:])
}

// Run runs the CLI with the given arguments.
func Run(args []string) error {
	globals.configPath = ""
	globals.verbose = false

	// Handle no arguments
	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	// Handle global flags and extract --config and --verbose
	var filteredArgs []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-h", "--help", "help":
			if len(filteredArgs) == 0 {
				printHelp(rootCmd)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "-v", "--version", "version":
			if len(filteredArgs) == 0 {
				fmt.Fprintf(stdout, "boxlayout version %s (built %s)\n", Version, BuildTime)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "--config":
			if i+1 < len(args) {
				globals.configPath = args[i+1]
				i++
			} else {
				return fmt.Errorf("--config requires a file path")
			}
		case "--verbose":
			globals.verbose = true
		default:
			if strings.HasPrefix(arg, "--config=") {
				globals.configPath = strings.TrimPrefix(arg, "--config=")
				continue
			}
			filteredArgs = append(filteredArgs, arg)
		}
	}
	args = filteredArgs

	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	// Find and execute the command
	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintf(stderr, "Error: unknown command %q\n\n", cmdName)
		printHelp(rootCmd)
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	// Check for help flag on subcommand
	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(cmd)
			return nil
		}
	}

	return runCommand(cmd, cmdArgs)
}

// runCommand turns a panic in the engine (a contract violation in a
// document that slipped past validation) into an error.
func runCommand(cmd *Command, args []string) (err error) {
	defer errors.RecoverWithCallback("cmd."+cmd.Name, func(r any) {
		err = fmt.Errorf("%s: internal error: %v", cmd.Name, r)
	})
	return cmd.Run(args)
}

func printHelp(cmd *Command) {
	w := stdout
	fmt.Fprintln(w, cmd.Long)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s\n", cmd.Usage)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, sub := range cmd.SubCommands {
		fmt.Fprintf(w, "  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -h, --help           Show help for a command")
	fmt.Fprintln(w, "  -v, --version        Show version information")
	fmt.Fprintln(w, "  --config FILE        Read settings from FILE (default: ./boxlayout.yaml)")
	fmt.Fprintln(w, "  --verbose            Log errors with kinds and stack traces")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintf(w, "  %-20s Config file override (lower priority than --config)\n", config.EnvVar)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  boxlayout measure card.yaml               Print the best size")
	fmt.Fprintln(w, "  boxlayout arrange card.yaml --width 320   Print arranged bounds")
	fmt.Fprintln(w, "  boxlayout check layouts/*.yaml            Validate documents")
}

func printCommandHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
}
