package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	planner "github.com/GustavoNoll/advanced-finance-planner-sub005"
	"github.com/GustavoNoll/advanced-finance-planner-sub005/competence"
	"github.com/GustavoNoll/advanced-finance-planner-sub005/renderer"
	"github.com/google/subcommands"
)

// scheduleCmd holds the flags for the 'schedule' subcommand.
type scheduleCmd struct {
	planFile string
	raw      bool
}

func (*scheduleCmd) Name() string     { return "schedule" }
func (*scheduleCmd) Synopsis() string { return "expand a plan's goals and events into a schedule" }
func (*scheduleCmd) Usage() string {
	return `apc schedule -plan <plan.yaml> [-raw]

  Expand the plan's goals and events into the per-month cash-flow schedule the
  projection will apply, over the plan's own horizon.
`
}

func (c *scheduleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.planFile, "plan", "plan.yaml", "Plan file (YAML format)")
	f.BoolVar(&c.raw, "raw", false, "Print raw markdown instead of rendering for the terminal")
}

func (c *scheduleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, err := DecodePlanFile(c.planFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := in.Plan.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	birth := in.Plan.BirthDate
	limit := competence.New(birth.Year()+in.Plan.LimitAge, birth.Month())
	horizon := competence.NewRange(in.Plan.Start, limit)
	schedule := planner.ExpandEvents(in.Items, horizon)

	var buf bytes.Buffer
	if !renderer.RenderSchedule(&buf, schedule, horizon) && schedule.Dropped == 0 {
		fmt.Printf("No cash flows scheduled on %s.\n", horizon)
		return subcommands.ExitSuccess
	}
	if c.raw {
		fmt.Print(buf.String())
	} else {
		printMarkdown(buf.String())
	}
	return subcommands.ExitSuccess
}
