package planner

import (
	"strings"
	"testing"
)

const sgsRatesPayload = `[
  {"data": "01/01/2024", "valor": "0.97"},
  {"data": "01/02/2024", "valor": "0,80"},
  {"data": "01/03/2024", "valor": 0.83}
]`

func TestImportSGSRates(t *testing.T) {
	s, err := ImportSGSRates(strings.NewReader(sgsRatesPayload), CDI)
	if err != nil {
		t.Fatalf("ImportSGSRates() returned error: %v", err)
	}
	if s.Name() != CDI || s.Native() != Index {
		t.Errorf("series = %s/%s, want CDI/INDEX", s.Name(), s.Native())
	}
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}

	// percentages become monthly rates; the comma separator is accepted
	testCases := []struct {
		on   string
		want float64
	}{
		{"2024-01", 0.0097},
		{"2024-02", 0.0080},
		{"2024-03", 0.0083},
	}
	for _, tc := range testCases {
		p, ok := s.Get(cpt(tc.on))
		if !ok || !closeTo(p.Rate, tc.want) {
			t.Errorf("Get(%s).Rate = %v, %v want %v, true", tc.on, p.Rate, ok, tc.want)
		}
	}
}

func TestImportSGSLevels(t *testing.T) {
	payload := `[
  {"data": "01/12/2023", "valor": "5.00"},
  {"data": "01/01/2024", "valor": "5,10"}
]`
	s, err := ImportSGSLevels(strings.NewReader(payload), USDBRL)
	if err != nil {
		t.Fatalf("ImportSGSLevels() returned error: %v", err)
	}

	// levels are stored raw, never divided by 100
	p, ok := s.Get(cpt("2024-01"))
	if !ok || !closeTo(p.Level, 5.10) {
		t.Errorf("Get(2024-01).Level = %v, %v want 5.10, true", p.Level, ok)
	}
	if p.Rate != 0 {
		t.Errorf("Get(2024-01).Rate = %v, want 0 on a level import", p.Rate)
	}
}

func TestImportSGSRejectsBadPayloads(t *testing.T) {
	testCases := []struct {
		name    string
		payload string
	}{
		{"not json", "not json at all"},
		{"bad date", `[{"data": "2024-01-01", "valor": "0.97"}]`},
		{"bad value", `[{"data": "01/01/2024", "valor": "abc"}]`},
		{"value is an object", `[{"data": "01/01/2024", "valor": {}}]`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ImportSGSRates(strings.NewReader(tc.payload), CDI); err == nil {
				t.Errorf("ImportSGSRates(%q) = nil error, want parse error", tc.payload)
			}
		})
	}
}
