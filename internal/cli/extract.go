package cli

import (
	"flag"
	"fmt"
	"io"

	"quiz-data-generator/internal/config"
	"quiz-data-generator/internal/extract"
)

// runExtract builds the handler for the extract command.
func runExtract(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		configPath := flags.String("config", "", "Path to config file (default: quizgen.yaml if present)")
		input := flags.String("input", "", "Workbook to read (default: "+config.DefaultWorkbook+")")
		sheet := flags.String("sheet", "", "Sheet to read (default: first sheet)")
		output := flags.String("output", "", "Records file to write (default: "+config.DefaultRecordsFile+")")

		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}

		set := setFlags(flags)

		cfg, log, err := prepare(cmd, *configPath, stderr, func(c *config.Config) {
			if set["input"] {
				c.Extract.Input = *input
			}

			if set["sheet"] {
				c.Extract.Sheet = *sheet
			}

			if set["output"] {
				c.Extract.Output = *output
			}
		}, (*config.Config).ValidateExtract)
		if err != nil {
			return fail(stderr, err)
		}
		defer func() { _ = log.Sync() }()

		res, err := extract.Run(cfg.Extract, log)
		if err != nil {
			return fail(stderr, err)
		}

		fmt.Fprintf(stdout, "Success: wrote %d records from sheet %q of %s to %s\n",
			res.Records, res.Sheet, res.Input, res.Output)

		return ExitOK
	}
}
