// Package cmd implements the CLI application to compute retirement
// projections and yield reconciliations.
package cmd

import (
	"flag"

	planner "github.com/GustavoNoll/advanced-finance-planner-sub005"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&projectCmd{}, "projections")
	c.Register(&scheduleCmd{}, "projections")

	c.Register(&yieldCmd{}, "yields")

	c.Register(&indicatorsCmd{}, "datasets")
	c.Register(&importCmd{}, "datasets")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var datasetFile = flag.String("dataset-file", "indicators.jsonl", "Path to the indicator dataset file (JSONL format)")

// LoadDataset loads the app indicator dataset. A missing file yields an
// empty catalog, so a fresh setup works out of the box.
func LoadDataset() (*planner.Catalog, error) {
	return planner.LoadCatalog(*datasetFile)
}

// SaveDataset writes the catalog back into the app indicator dataset file.
func SaveDataset(c *planner.Catalog) error {
	return planner.SaveCatalog(*datasetFile, c)
}
