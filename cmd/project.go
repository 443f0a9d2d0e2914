package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	planner "github.com/GustavoNoll/advanced-finance-planner-sub005"
	"github.com/GustavoNoll/advanced-finance-planner-sub005/renderer"
	"github.com/google/subcommands"
)

// projectCmd holds the flags for the 'project' subcommand.
type projectCmd struct {
	planFile string
	skipRows bool
	raw      bool
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "compute a retirement plan projection" }
func (*projectCmd) Usage() string {
	return `apc project -plan <plan.yaml> [-skip-rows] [-raw]

  Compute the month-by-month trajectory of a retirement plan, from its start
  to the limit-age competence, and render it as a report. Realized months come
  from the plan file's records; the rest is simulated under the plan's regimes.
`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.planFile, "plan", "plan.yaml", "Plan file (YAML format)")
	f.BoolVar(&c.skipRows, "skip-rows", false, "Do not render the month-by-month table")
	f.BoolVar(&c.raw, "raw", false, "Print raw markdown instead of rendering for the terminal")
}

func (c *projectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, err := DecodePlanFile(c.planFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	in.Catalog, err = LoadDataset()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	snapshots, err := planner.ComputeProjection(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	md := renderer.RenderProjection(
		renderer.NewProjection(in.Plan, snapshots),
		renderer.ProjectionRenderOptions{SkipRows: c.skipRows},
	)
	if c.raw {
		fmt.Print(md)
	} else {
		printMarkdown(md)
	}
	return subcommands.ExitSuccess
}
