// Package cmd implements the podlink CLI commands.
//
// The command structure follows standard Go CLI patterns with a root command
// that dispatches to subcommands (generate, show, targets, verify).
package cmd

import (
	"fmt"
	"os"
	"strings"
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
	Name:  "podlink",
	Short: "podlink - private build settings for pod targets",
	Long: `Podlink generates the private xcconfig file for each pod target in a
dependency sandbox. Public settings are merged into a target baseline and
re-exposed under a target-unique namespace, so every public setting stays
reachable even when the baseline overrides it.

Use "podlink <command> --help" for more information about a command.`,
	Usage: "podlink <command> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// Global flag values for the current invocation.
var (
	sandboxOverride  string // --sandbox DIR
	manifestOverride string // --manifest FILE
)

// globalFlags documents the flags Execute extracts before dispatch.
var globalFlags = [][2]string{
	{"-h, --help", "Show help for a command"},
	{"-v, --version", "Show version information"},
	{"--sandbox DIR", "Override sandbox directory (default: Pods)"},
	{"--manifest FILE", "Manifest file to load (default: podlink.yaml in the project root)"},
}

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// Execute runs the CLI with the given arguments.
func Execute() error {
	args := os.Args[1:]

	// Handle no arguments
	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	// Handle global flags and extract --sandbox
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
				fmt.Printf("podlink version %s (built %s)\n", Version, BuildTime)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "--sandbox":
			if i+1 < len(args) {
				sandboxOverride = args[i+1]
				i++
			} else {
				return fmt.Errorf("--sandbox requires a directory path")
			}
		case "--manifest":
			if i+1 < len(args) {
				manifestOverride = args[i+1]
				i++
			} else {
				return fmt.Errorf("--manifest requires a file path")
			}
		default:
			if strings.HasPrefix(arg, "--sandbox=") {
				sandboxOverride = strings.TrimPrefix(arg, "--sandbox=")
				continue
			}
			if strings.HasPrefix(arg, "--manifest=") {
				manifestOverride = strings.TrimPrefix(arg, "--manifest=")
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
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", cmdName)
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

	return cmd.Run(cmdArgs)
}

func printHelp(cmd *Command) {
	width := 0
	for _, f := range globalFlags {
		if len(f[0]) > width {
			width = len(f[0])
		}
	}
	for _, sub := range cmd.SubCommands {
		if len(sub.Name) > width {
			width = len(sub.Name)
		}
	}

	fmt.Println(cmd.Long)
	fmt.Printf("\nUsage:\n  %s\n\nCommands:\n", cmd.Usage)
	for _, sub := range cmd.SubCommands {
		fmt.Printf("  %-*s  %s\n", width, sub.Name, sub.Short)
	}
	fmt.Println("\nFlags:")
	for _, f := range globalFlags {
		fmt.Printf("  %-*s  %s\n", width, f[0], f[1])
	}
	fmt.Println("\nEnvironment:")
	fmt.Printf("  %-*s  %s\n", width, "PODLINK_SANDBOX", "Sandbox directory override (lower priority than --sandbox)")
	fmt.Println("\nExamples:")
	fmt.Println("  podlink generate          Generate private settings for all targets")
	fmt.Println("  podlink show BananaLib    Print one target's generated settings")
	fmt.Println("  podlink targets           List targets declared in podlink.yaml")
}

func printCommandHelp(cmd *Command) {
	fmt.Println(cmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", cmd.Usage)
}
