package cmd

import (
	"fmt"
	"os"
	"time"

	planner "github.com/GustavoNoll/advanced-finance-planner-sub005"
	"github.com/GustavoNoll/advanced-finance-planner-sub005/competence"
	"gopkg.in/yaml.v3"
)

// A plan file is the advisor-facing YAML description of a retirement plan:
// the plan itself, its regime sequence, its goals and events, and the
// realized monthly records.
//
//	plan:
//	  initialAmount: 1000
//	  currency: BRL
//	  start: 2025-01
//	  birthDate: 1990-01-15
//	  finalAge: 65
//	  limitAge: 100
//	  endAccumulation: 2055-01
//	  type: end-at-limit-age
//	regimes:
//	  - effective: 2025-01
//	    monthlyDeposit: 1000
//	    expectedReturn: 12
type planFile struct {
	Plan    planConfig     `yaml:"plan"`
	Regimes []regimeConfig `yaml:"regimes"`
	Items   []itemConfig   `yaml:"items"`
	Records []recordConfig `yaml:"records"`
}

type planConfig struct {
	InitialAmount              float64  `yaml:"initialAmount"`
	Currency                   string   `yaml:"currency"`
	Start                      string   `yaml:"start"`
	BirthDate                  string   `yaml:"birthDate"`
	FinalAge                   int      `yaml:"finalAge"`
	LimitAge                   int      `yaml:"limitAge"`
	EndAccumulation            string   `yaml:"endAccumulation"`
	Type                       string   `yaml:"type"`
	LegacyAmount               float64  `yaml:"legacyAmount"`
	AdjustDepositsForInflation bool     `yaml:"adjustDepositsForInflation"`
	AdjustIncomeForInflation   bool     `yaml:"adjustIncomeForInflation"`
	InflationIndex             string   `yaml:"inflationIndex"`
	OldPortfolioSpread         *float64 `yaml:"oldPortfolioSpread"`
}

type regimeConfig struct {
	Effective          string  `yaml:"effective"`
	MonthlyDeposit     float64 `yaml:"monthlyDeposit"`
	DesiredIncome      float64 `yaml:"desiredIncome"`
	ExpectedReturn     float64 `yaml:"expectedReturn"`
	Inflation          float64 `yaml:"inflation"`
	InflateDepositRate bool    `yaml:"inflateDepositRate"`
	InflateIncomeRate  bool    `yaml:"inflateIncomeRate"`
}

type itemConfig struct {
	Kind         string  `yaml:"kind"` // goal or event
	Amount       float64 `yaml:"amount"`
	Target       string  `yaml:"target"`
	Mode         string  `yaml:"mode"` // none, installment or repeat
	Installments int     `yaml:"installments"`
	Interval     int     `yaml:"interval"`
}

type recordConfig struct {
	On                string  `yaml:"on"`
	StartingBalance   float64 `yaml:"startingBalance"`
	Contribution      float64 `yaml:"contribution"`
	Return            float64 `yaml:"return"`
	ReturnRate        float64 `yaml:"returnRate"`
	EndingBalance     float64 `yaml:"endingBalance"`
	TargetRentability float64 `yaml:"targetRentability"`
}

// DecodePlanFile reads a YAML plan file into a projection input. The catalog
// is left nil; callers inject the app dataset.
func DecodePlanFile(filename string) (planner.ProjectionInput, error) {
	var in planner.ProjectionInput

	f, err := os.Open(filename)
	if err != nil {
		return in, fmt.Errorf("cannot open plan file %q: %w", filename, err)
	}
	defer f.Close()

	var pf planFile
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&pf); err != nil {
		return in, fmt.Errorf("cannot parse plan file %q: %w", filename, err)
	}

	in.Plan, err = pf.Plan.plan()
	if err != nil {
		return in, fmt.Errorf("plan file %q: %w", filename, err)
	}
	currency := string(in.Plan.Currency)

	for i, rc := range pf.Regimes {
		r, err := rc.regime(currency)
		if err != nil {
			return in, fmt.Errorf("plan file %q: regime %d: %w", filename, i, err)
		}
		in.Regimes = append(in.Regimes, r)
	}
	for i, ic := range pf.Items {
		item, err := ic.item(currency)
		if err != nil {
			return in, fmt.Errorf("plan file %q: item %d: %w", filename, i, err)
		}
		in.Items = append(in.Items, item)
	}
	for i, rc := range pf.Records {
		rec, err := rc.record(currency)
		if err != nil {
			return in, fmt.Errorf("plan file %q: record %d: %w", filename, i, err)
		}
		in.Records = append(in.Records, rec)
	}
	return in, nil
}

func (c planConfig) plan() (planner.Plan, error) {
	var p planner.Plan

	start, err := competence.Parse(c.Start)
	if err != nil {
		return p, fmt.Errorf("parsing start: %w", err)
	}
	end, err := competence.Parse(c.EndAccumulation)
	if err != nil {
		return p, fmt.Errorf("parsing endAccumulation: %w", err)
	}
	birth, err := time.Parse("2006-01-02", c.BirthDate)
	if err != nil {
		return p, fmt.Errorf("parsing birthDate: %w", err)
	}
	typ, err := planner.ParsePlanType(c.Type)
	if err != nil {
		return p, err
	}

	p = planner.Plan{
		InitialAmount:              planner.M(c.InitialAmount, c.Currency),
		Start:                      start,
		BirthDate:                  birth,
		FinalAge:                   c.FinalAge,
		EndAccumulation:            end,
		Type:                       typ,
		Currency:                   planner.Currency(c.Currency),
		LimitAge:                   c.LimitAge,
		LegacyAmount:               planner.M(c.LegacyAmount, c.Currency),
		AdjustDepositsForInflation: c.AdjustDepositsForInflation,
		AdjustIncomeForInflation:   c.AdjustIncomeForInflation,
		InflationIndex:             planner.Indicator(c.InflationIndex),
		OldPortfolioSpread:         c.OldPortfolioSpread,
	}
	return p, nil
}

func (c regimeConfig) regime(currency string) (planner.Regime, error) {
	effective, err := competence.Parse(c.Effective)
	if err != nil {
		return planner.Regime{}, fmt.Errorf("parsing effective: %w", err)
	}
	return planner.Regime{
		Effective:          effective,
		MonthlyDeposit:     planner.M(c.MonthlyDeposit, currency),
		DesiredIncome:      planner.M(c.DesiredIncome, currency),
		ExpectedReturn:     planner.Percent(c.ExpectedReturn),
		Inflation:          planner.Percent(c.Inflation),
		InflateDepositRate: c.InflateDepositRate,
		InflateIncomeRate:  c.InflateIncomeRate,
	}, nil
}

func (c itemConfig) item(currency string) (planner.CashFlowItem, error) {
	target, err := competence.Parse(c.Target)
	if err != nil {
		return planner.CashFlowItem{}, fmt.Errorf("parsing target: %w", err)
	}
	mode, err := planner.ParsePaymentMode(c.Mode)
	if err != nil {
		return planner.CashFlowItem{}, err
	}
	kind := planner.Goal
	if c.Kind == "event" {
		kind = planner.Event
	} else if c.Kind != "" && c.Kind != "goal" {
		return planner.CashFlowItem{}, fmt.Errorf("unknown item kind %q", c.Kind)
	}
	return planner.CashFlowItem{
		Kind:         kind,
		Amount:       planner.M(c.Amount, currency),
		Target:       target,
		Mode:         mode,
		Installments: c.Installments,
		Interval:     c.Interval,
	}, nil
}

func (c recordConfig) record(currency string) (planner.ActualRecord, error) {
	on, err := competence.Parse(c.On)
	if err != nil {
		return planner.ActualRecord{}, fmt.Errorf("parsing on: %w", err)
	}
	return planner.ActualRecord{
		On:                on,
		StartingBalance:   planner.M(c.StartingBalance, currency),
		Contribution:      planner.M(c.Contribution, currency),
		Return:            planner.M(c.Return, currency),
		ReturnRate:        c.ReturnRate,
		EndingBalance:     planner.M(c.EndingBalance, currency),
		TargetRentability: c.TargetRentability,
	}, nil
}
