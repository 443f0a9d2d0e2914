package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/GustavoNoll/advanced-finance-planner-sub005/renderer"
	"github.com/google/subcommands"
)

// indicatorsCmd holds the flags for the 'indicators' subcommand.
type indicatorsCmd struct {
	raw bool
}

func (*indicatorsCmd) Name() string     { return "indicators" }
func (*indicatorsCmd) Synopsis() string { return "list the indicator datasets and their coverage" }
func (*indicatorsCmd) Usage() string {
	return `apc indicators [-raw]

  List every indicator series in the dataset file with its native currency
  and the range of competences it covers.
`
}

func (c *indicatorsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "raw", false, "Print raw markdown instead of rendering for the terminal")
}

func (c *indicatorsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	catalog, err := LoadDataset()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var buf bytes.Buffer
	renderer.RenderCatalogSummary(&buf, catalog)
	if c.raw {
		fmt.Print(buf.String())
	} else {
		printMarkdown(buf.String())
	}
	return subcommands.ExitSuccess
}
