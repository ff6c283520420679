package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"quiz-data-generator/internal/config"
	"quiz-data-generator/internal/mapping"
	"quiz-data-generator/internal/project"
)

// runProject builds the handler for the project command.
func runProject(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		configPath := flags.String("config", "", "Path to config file (default: quizgen.yaml if present)")
		input := flags.String("input", "", "Records file to read (default: "+config.DefaultRecordsFile+")")
		mappingFile := flags.String("mapping", "", "Mapping file (default: built-in mapping)")
		strict := flags.Bool("strict", false, "Treat integrity warnings as errors")
		printMapping := flags.Bool("print-mapping", false, "Print the effective mapping file and exit")

		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}

		set := setFlags(flags)

		cfg, log, err := prepare(cmd, *configPath, stderr, func(c *config.Config) {
			if set["input"] {
				c.Project.Input = *input
			}

			if set["mapping"] {
				c.Project.MappingFile = *mappingFile
			}

			if set["strict"] {
				c.Project.Strict = *strict
			}
		}, (*config.Config).ValidateProject)
		if err != nil {
			return fail(stderr, err)
		}
		defer func() { _ = log.Sync() }()

		if *printMapping {
			return printEffectiveMapping(cfg.Project.MappingFile, stdout, stderr)
		}

		res, err := project.Run(cfg.Project, log)
		if err != nil {
			return fail(stderr, err)
		}

		fmt.Fprintf(stdout, "Success: wrote %d questions to %s\n", res.Questions, strings.Join(res.Outputs, ", "))

		return ExitOK
	}
}

// printEffectiveMapping writes the mapping in canonical form: every 121
// shorthand entry expanded into a fields entry.
func printEffectiveMapping(path string, stdout, stderr io.Writer) int {
	mf, err := mapping.Load(path)
	if err != nil {
		return fail(stderr, err)
	}

	if _, diags := mapping.Compile(mf); !diags.IsValid() {
		return fail(stderr, fmt.Errorf("invalid mapping: %w", diags.Err()))
	}

	data, err := mapping.Marshal(&mapping.MappingFile{
		Version: mf.Version,
		Fields:  mapping.Normalize(mf),
		Ignore:  mf.Ignore,
	})
	if err != nil {
		return fail(stderr, err)
	}

	_, _ = stdout.Write(data)

	return ExitOK
}
