// Package planner provides the projection and benchmark computation engine
// of a retirement/investment-planning product. It is designed to be pure,
// deterministic and cheap to re-run, so the advisor-facing layer can
// recompute on every field edit.
//
// The core functionalities include:
//   - Regime Resolution: selecting the contribution/return configuration
//     active at any competence from a plan's ordered, time-sliced regimes.
//   - Cash-Flow Expansion: turning one-off, installment and repeating goal or
//     event items into per-competence signed amounts.
//   - Compounding Projection: a month-by-month simulation blending realized
//     history with simulated future under the plan's terminal policy.
//   - Benchmark Resolution: indexed lookup of named market/economic
//     indicators (CDI, IPCA, IBOV, ...) with currency sub-series selection.
//   - FX Adjustment: converting values and composing returns between an
//     indicator's native currency and the display currency.
//   - Yield Reconciliation: computing a period's monthly yield from linked
//     assets, indexer formulas or a market benchmark.
//
// The engine performs no I/O: indicator and FX datasets are decoded once
// (see the JSONL codec in this package) into an immutable Catalog injected
// per invocation. This package serves as the foundational logic for the
// `apc` command-line tool.
package planner
