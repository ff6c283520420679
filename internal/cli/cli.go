// Package cli wires configuration, logging and the two pipeline stages into
// commands. Every command prints one status line: the success summary on
// stdout or "Error: ..." on stderr.
package cli

import (
	"fmt"
	"io"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Command is one pipeline stage exposed on the command line.
type Command struct {
	Name    string
	Summary string
	Usage   []string
	Run     func(args []string, stdout, stderr io.Writer) int
}

// Run dispatches args[0] to a command.
func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stdout)
		return ExitUsage
	}

	if isHelpArg(args[0]) {
		printUsage(stdout)
		return ExitOK
	}

	cmd := findCommand(args[0])
	if cmd == nil {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		printUsage(stderr)

		return ExitUsage
	}

	return cmd.Run(args[1:], stdout, stderr)
}

// RunExtract runs the extractor as a standalone program.
func RunExtract(args []string, stdout, stderr io.Writer) int {
	return findCommand("extract").Run(args, stdout, stderr)
}

// RunProject runs the projector as a standalone program.
func RunProject(args []string, stdout, stderr io.Writer) int {
	return findCommand("project").Run(args, stdout, stderr)
}

func findCommand(name string) *Command {
	for _, cmd := range commands {
		if cmd.Name == name {
			return cmd
		}
	}

	return nil
}

func isHelpArg(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	default:
		return false
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  quizgen <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")

	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-8s %s\n", cmd.Name, cmd.Summary)
	}

	fmt.Fprintln(w, "\nUse \"quizgen <command> --help\" for more information.")
}

func printCommandUsage(cmd *Command, w io.Writer) {
	fmt.Fprintln(w, "Usage:")

	for _, line := range cmd.Usage {
		fmt.Fprintf(w, "  %s\n", line)
	}

	if cmd.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", cmd.Summary)
	}
}

func command(name, summary string, usage []string, runner func(cmd *Command) func(args []string, stdout, stderr io.Writer) int) *Command {
	cmd := &Command{
		Name:    name,
		Summary: summary,
		Usage:   usage,
	}
	cmd.Run = runner(cmd)

	return cmd
}

var commands = []*Command{
	command("extract", "Convert the question workbook into questions.json", []string{
		"quiz-extract [-config <file>] [-input <xlsx>] [-sheet <name>] [-output <json>]",
	}, runExtract),
	command("project", "Generate quiz data sources from questions.json", []string{
		"quiz-project [-config <file>] [-input <json>] [-mapping <yaml>] [-strict]",
		"quiz-project -print-mapping [-mapping <yaml>]",
	}, runProject),
}
