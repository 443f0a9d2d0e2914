package planner

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/GustavoNoll/advanced-finance-planner-sub005/competence"
	gojson "github.com/goccy/go-json"
)

// This file contains code to persist indicator datasets in a way that is
// still human-readable and git-friendly: a JSONL stream, one series per
// line. The datasets are static and versioned; the engine never writes them
// during a computation.
//
// A series is a single json object whose property 'indicator' contains the
// indicator name, 'currency' its native currency (BRL, USD or INDEX),
// 'needsFx' whether FX adjustment applies in another display currency, and
// 'history' a single json object keyed by competence ("2006-01") whose
// values carry the monthly 'rate' and optional raw 'level'.

// jpoint is the on-disk form of one monthly entry.
type jpoint struct {
	Rate  float64 `json:"rate"`
	Level float64 `json:"level,omitempty"`
}

// jseries is the on-disk form of one series line.
type jseries struct {
	Indicator string            `json:"indicator"`
	Currency  string            `json:"currency"`
	NeedsFX   bool              `json:"needsFx,omitempty"`
	History   map[string]jpoint `json:"history"`
}

// DecodeCatalog reads a JSONL dataset stream into a new catalog.
func DecodeCatalog(r io.Reader) (*Catalog, error) {
	c := NewCatalog()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 16*1024*1024)
	i := 0
	for scanner.Scan() {
		i++
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}

		var js jseries
		if err := gojson.Unmarshal(line, &js); err != nil {
			return nil, fmt.Errorf("parse error on line %d: not a correct json: %w", i, err)
		}
		if js.Indicator == "" {
			return nil, fmt.Errorf("parse error on line %d: missing the property %q", i, "indicator")
		}

		s := NewIndicatorSeries(Indicator(js.Indicator), Currency(js.Currency), js.NeedsFX)
		for key, p := range js.History {
			on, err := competence.Parse(key)
			if err != nil {
				return nil, fmt.Errorf("parse error on line %d: %w", i, err)
			}
			s.Append(on, IndicatorPoint{Rate: p.Rate, Level: p.Level})
		}
		c.Add(s)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read dataset stream: %w", err)
	}
	return c, nil
}

// EncodeCatalog writes the catalog to 'w' in the JSONL dataset format, one
// series per line, in a stable indicator order.
func EncodeCatalog(w io.Writer, c *Catalog) error {
	series := c.Series()
	slices.SortFunc(series, func(a, b *IndicatorSeries) int {
		if n := strings.Compare(string(a.Name()), string(b.Name())); n != 0 {
			return n
		}
		return strings.Compare(string(a.Native()), string(b.Native()))
	})

	for _, s := range series {
		js := jseries{
			Indicator: string(s.Name()),
			Currency:  string(s.Native()),
			NeedsFX:   s.NeedsFX(),
			History:   make(map[string]jpoint, s.Len()),
		}
		for on, p := range s.Values() {
			js.History[on.String()] = jpoint{Rate: p.Rate, Level: p.Level}
		}
		line, err := gojson.Marshal(js)
		if err != nil {
			return fmt.Errorf("cannot encode series %s: %w", s.Name(), err)
		}
		if _, err := fmt.Fprintf(w, "%s\n", line); err != nil {
			return fmt.Errorf("cannot write series %s: %w", s.Name(), err)
		}
	}
	return nil
}

// LoadCatalog reads a dataset file into a catalog. A missing file yields an
// empty catalog, so a fresh setup works out of the box.
func LoadCatalog(filename string) (*Catalog, error) {
	f, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return NewCatalog(), nil
		}
		return nil, fmt.Errorf("cannot open dataset file %q: %w", filename, err)
	}
	defer f.Close()

	c, err := DecodeCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read dataset file %q: %w", filename, err)
	}
	return c, nil
}

// SaveCatalog writes the catalog to a dataset file.
func SaveCatalog(filename string, c *Catalog) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("cannot open dataset file %q for writing: %w", filename, err)
	}
	defer f.Close()
	return EncodeCatalog(f, c)
}
