package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"quiz-data-generator/internal/config"
	"quiz-data-generator/internal/logger"
)

// parseFlags parses args into flags. ok is false when the command should
// exit with code.
func parseFlags(cmd *Command, flags *flag.FlagSet, args []string, stdout, stderr io.Writer) (code int, ok bool) {
	flags.SetOutput(stderr)

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printCommandUsage(cmd, stdout)
			return ExitOK, false
		}

		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		printCommandUsage(cmd, stderr)

		return ExitUsage, false
	}

	if flags.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
		printCommandUsage(cmd, stderr)

		return ExitUsage, false
	}

	return ExitOK, true
}

// setFlags returns the names of flags given on the command line.
func setFlags(flags *flag.FlagSet) map[string]bool {
	set := map[string]bool{}
	flags.Visit(func(f *flag.Flag) { set[f.Name] = true })

	return set
}

// prepare loads configuration and builds a logger tagged with a fresh run id.
// apply sets flag overrides; validate then checks the settings of the running
// stage only, so a bad projector setting never blocks the extractor.
func prepare(
	cmd *Command,
	configPath string,
	stderr io.Writer,
	apply func(*config.Config),
	validate func(*config.Config) error,
) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	if apply != nil {
		apply(cfg)
	}

	if err := validate(cfg); err != nil {
		return nil, nil, err
	}

	log, err := logger.New(cfg, stderr)
	if err != nil {
		return nil, nil, err
	}

	log = log.With(zap.String("command", cmd.Name), zap.String("run_id", uuid.NewString()))

	return cfg, log, nil
}

func fail(stderr io.Writer, err error) int {
	fmt.Fprintf(stderr, "Error: %s\n", oneLine(err.Error()))
	return ExitError
}

// oneLine keeps the status line on a single line even when an underlying
// error spans several.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
