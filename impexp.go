package planner

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/GustavoNoll/advanced-finance-planner-sub005/competence"
	"github.com/PaesslerAG/jsonpath"
	gojson "github.com/goccy/go-json"
)

// this file contains functions to import provider payloads into indicator
// series. The payloads are files the caller already downloaded (the engine
// performs no network calls): typically Brazilian central bank SGS exports.
//
//	[
//	  {"data": "01/01/2024", "valor": "0.97"},
//	  {"data": "01/02/2024", "valor": "0.80"}
//	]

const sgsDateFormat = "02/01/2006"

// ImportSGSRates imports an SGS payload whose monthly values are percentages
// (CDI, IPCA style) into a new Index-tagged series of monthly rates.
func ImportSGSRates(r io.Reader, name Indicator) (*IndicatorSeries, error) {
	s := NewIndicatorSeries(name, Index, false)
	err := importSGS(r, name, func(on competence.Competence, value float64) {
		s.Append(on, IndicatorPoint{Rate: value / 100})
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// ImportSGSLevels imports an SGS payload whose monthly values are raw levels
// (FX closes style) into a new Index-tagged series of levels.
func ImportSGSLevels(r io.Reader, name Indicator) (*IndicatorSeries, error) {
	s := NewIndicatorSeries(name, Index, false)
	err := importSGS(r, name, func(on competence.Competence, value float64) {
		s.Append(on, IndicatorPoint{Level: value})
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// importSGS parses the payload and yields each (competence, value) entry.
func importSGS(r io.Reader, name Indicator, yield func(competence.Competence, float64)) error {
	payload, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("cannot read payload for %s: %w", name, err)
	}

	var jobj any
	if err := gojson.Unmarshal(payload, &jobj); err != nil {
		return fmt.Errorf("cannot parse payload for %s: %w", name, err)
	}

	jdates, err := jsonpath.Get("$[*].data", jobj)
	if err != nil {
		return fmt.Errorf("cannot read dates from payload for %s: %w", name, err)
	}
	jvalues, err := jsonpath.Get("$[*].valor", jobj)
	if err != nil {
		return fmt.Errorf("cannot read values from payload for %s: %w", name, err)
	}

	dates, ok := jdates.([]any)
	if !ok {
		return fmt.Errorf("unexpected payload shape for %s: dates are not a list", name)
	}
	values, ok := jvalues.([]any)
	if !ok || len(values) != len(dates) {
		return fmt.Errorf("unexpected payload shape for %s: %d dates for %d values", name, len(dates), len(values))
	}

	for i, jdate := range dates {
		str, ok := jdate.(string)
		if !ok {
			return fmt.Errorf("cannot parse payload entry %d for %s: date is not a string", i, name)
		}
		day, err := time.Parse(sgsDateFormat, str)
		if err != nil {
			return fmt.Errorf("cannot parse payload entry %d for %s: %w", i, name, err)
		}

		value, err := sgsValue(values[i])
		if err != nil {
			return fmt.Errorf("cannot parse payload entry %d for %s: %w", i, name, err)
		}
		yield(competence.Of(day), value)
	}
	return nil
}

// sgsValue reads an SGS number: the API serves them as strings, sometimes
// with a comma decimal separator.
func sgsValue(jval any) (float64, error) {
	switch v := jval.(type) {
	case float64:
		return v, nil
	case string:
		return strconv.ParseFloat(strings.ReplaceAll(v, ",", "."), 64)
	default:
		return 0, fmt.Errorf("value %v is neither a number nor a string", jval)
	}
}
