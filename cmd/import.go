package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	planner "github.com/GustavoNoll/advanced-finance-planner-sub005"
	"github.com/google/subcommands"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	levels bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import an SGS payload into the indicator dataset" }
func (*importCmd) Usage() string {
	return `apc import [-levels] <indicator> <payload.json>

  Import a downloaded SGS payload (Brazilian central bank series export) into
  the indicator dataset. Values are read as monthly percentages by default;
  use -levels for raw level series such as FX closes.

Usage Examples:
# Monthly CDI percentages.
$ apc import CDI cdi.json

# USD/BRL closing levels.
$ apc import -levels USDBRL usdbrl.json
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.levels, "levels", false, "Read values as raw levels instead of monthly percentages")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprint(os.Stderr, "Error: expected <indicator> and <payload.json> arguments\n")
		return subcommands.ExitUsageError
	}
	name := planner.Indicator(f.Arg(0))
	filename := f.Arg(1)

	payload, err := os.Open(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot open payload %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	defer payload.Close()

	var series *planner.IndicatorSeries
	if c.levels {
		series, err = planner.ImportSGSLevels(payload, name)
	} else {
		series, err = planner.ImportSGSRates(payload, name)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	catalog, err := LoadDataset()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	catalog.Add(series)
	if err := SaveDataset(catalog); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully imported %d month(s) of %s into %s\n", series.Len(), name, *datasetFile)
	return subcommands.ExitSuccess
}
