package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/GustavoNoll/advanced-finance-planner-sub005/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	name := path.Base(os.Args[0])

	// Shell completion runs first: when invoked by the shell's completion
	// machinery it prints candidates and exits.
	completion(name)

	commander := subcommands.NewCommander(flag.CommandLine, name)
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion(name string) {
	planFlags := map[string]complete.Predictor{
		"plan": predict.Files("*.yaml"),
		"raw":  predict.Nothing,
	}
	c := &complete.Command{
		Flags: map[string]complete.Predictor{
			"dataset-file": predict.Files("*.jsonl"),
		},
		Sub: map[string]*complete.Command{
			"project":  {Flags: planFlags},
			"schedule": {Flags: planFlags},
			"yield": {Flags: map[string]complete.Predictor{
				"mode":      predict.Set{"manual", "custom", "market"},
				"indexer":   predict.Set{"CDI", "IPCA", "PRE", "MANUAL"},
				"op":        predict.Set{"%", "+"},
				"currency":  predict.Set{"BRL", "USD"},
				"benchmark": predict.Nothing,
				"on":        predict.Nothing,
				"pct":       predict.Nothing,
				"initial":   predict.Nothing,
				"raw":       predict.Nothing,
			}},
			"indicators": {},
			"topic":      {},
			"import": {
				Flags: map[string]complete.Predictor{"levels": predict.Nothing},
				Args:  predict.Files("*.json"),
			},
		},
	}
	c.Complete(name)
}
