package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	planner "github.com/GustavoNoll/advanced-finance-planner-sub005"
	"github.com/GustavoNoll/advanced-finance-planner-sub005/competence"
	"github.com/GustavoNoll/advanced-finance-planner-sub005/renderer"
	"github.com/google/subcommands"
)

// yieldCmd holds the flags for the 'yield' subcommand.
type yieldCmd struct {
	mode       string
	on         string
	currency   string
	indexer    string
	operation  string
	percentage float64
	benchmark  string
	initial    float64
	raw        bool
}

func (*yieldCmd) Name() string     { return "yield" }
func (*yieldCmd) Synopsis() string { return "reconcile a month's yield against an indexer or benchmark" }
func (*yieldCmd) Usage() string {
	return `apc yield -mode <manual|custom|market> -on <month> [options]

  Compute a month's yield for confirmation:
    manual  -indexer <CDI|IPCA|PRE|MANUAL> -op <%|+> -pct <value>
    custom  same as manual, plus -initial <value> to derive the final value
            and financial gain
    market  -benchmark <indicator>, read in the -currency display currency

Usage Examples:
# 110% of CDI for March 2024.
$ apc yield -mode manual -on 2024-03 -indexer CDI -op %% -pct 110

# S&P 500 benchmark, in BRL.
$ apc yield -mode market -on 2024-03 -benchmark SP500
`
}

func (c *yieldCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.mode, "mode", "manual", "Yield mode (manual, custom, market)")
	f.StringVar(&c.on, "on", "", "Competence month of the yield (e.g. 2024-03)")
	f.StringVar(&c.currency, "currency", "BRL", "Display currency (BRL, USD)")
	f.StringVar(&c.indexer, "indexer", "CDI", "Indexer for manual/custom modes (CDI, IPCA, PRE, MANUAL)")
	f.StringVar(&c.operation, "op", "%", "Operation for manual/custom modes: % of the indexer or + annual spread")
	f.Float64Var(&c.percentage, "pct", 0, "Percentage for manual/custom modes")
	f.StringVar(&c.benchmark, "benchmark", "", "Benchmark indicator for market mode (e.g. CDI, SP500)")
	f.Float64Var(&c.initial, "initial", 0, "Initial value for custom mode currency outputs")
	f.BoolVar(&c.raw, "raw", false, "Print raw markdown instead of rendering for the terminal")
}

func (c *yieldCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := competence.Parse(c.on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: parsing -on: %v\n", err)
		return subcommands.ExitUsageError
	}
	catalog, err := LoadDataset()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	calc := planner.NewCalculator(catalog, planner.Currency(c.currency))

	result, err := c.compute(calc, on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	md := renderer.RenderYield(renderer.NewYield(result))
	if c.raw {
		fmt.Print(md)
	} else {
		printMarkdown(md)
	}
	return subcommands.ExitSuccess
}

func (c *yieldCmd) compute(calc *planner.Calculator, on competence.Competence) (*planner.YieldResult, error) {
	switch c.mode {
	case "manual":
		formula, err := c.formula()
		if err != nil {
			return nil, err
		}
		return calc.Manual(formula, on)

	case "custom":
		formula, err := c.formula()
		if err != nil {
			return nil, err
		}
		var initial *planner.Money
		if c.initial != 0 {
			m := planner.M(c.initial, c.currency)
			initial = &m
		}
		return calc.Custom(formula, on, initial)

	case "market":
		if c.benchmark == "" {
			return nil, fmt.Errorf("market mode needs -benchmark")
		}
		return calc.Market(planner.Indicator(c.benchmark), on)

	default:
		return nil, fmt.Errorf("unknown mode %q (auto mode is reconciled by the advisor layer, not the CLI)", c.mode)
	}
}

func (c *yieldCmd) formula() (planner.IndexerFormula, error) {
	indexer, err := planner.ParseIndexer(c.indexer)
	if err != nil {
		return planner.IndexerFormula{}, err
	}
	op := planner.OpPercent
	switch c.operation {
	case "%":
	case "+":
		op = planner.OpPlus
	default:
		return planner.IndexerFormula{}, fmt.Errorf("unknown operation %q, want %% or +", c.operation)
	}
	return planner.IndexerFormula{Indexer: indexer, Operation: op, Percentage: c.percentage}, nil
}
