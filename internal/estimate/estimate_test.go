package estimate

import (
	"testing"

	"github.com/rcase/plumbjobs/internal/model"
)

func TestCalculate(t *testing.T) {
	got := Calculate(model.Estimate{
		LaborHours:        "2",
		LaborRate:         "75",
		MaterialsSubtotal: "100",
		MarkupPct:         "20",
		TripFee:           "50",
	})

	if got.Labor != 150 {
		t.Errorf("labor: expected 150, got %v", got.Labor)
	}
	if got.Materials != 120 {
		t.Errorf("materials: expected 120, got %v", got.Materials)
	}
	if got.Total != 320 {
		t.Errorf("total: expected 320, got %v", got.Total)
	}
	if FormatMoney(got.Total) != "320.00" {
		t.Errorf("expected formatted total 320.00, got %s", FormatMoney(got.Total))
	}
}

func TestCalculateBlankAndGarbageInputs(t *testing.T) {
	got := Calculate(model.Estimate{
		LaborHours:        "",
		LaborRate:         "abc",
		MaterialsSubtotal: "NaN",
		MarkupPct:         "Inf",
		TripFee:           " ",
	})
	if got.Total != 0 {
		t.Errorf("expected total 0 for junk inputs, got %v", got.Total)
	}
	if FormatMoney(got.Total) != "0.00" {
		t.Errorf("expected 0.00, got %s", FormatMoney(got.Total))
	}
}

func TestNum(t *testing.T) {
	cases := map[string]float64{
		"":      0,
		"1.5":   1.5,
		"-3":    -3,
		"junk":  0,
		"inf":   0,
		"-inf":  0,
		"nan":   0,
		"12.25": 12.25,
	}
	for in, want := range cases {
		if got := Num(in); got != want {
			t.Errorf("Num(%q): expected %v, got %v", in, want, got)
		}
	}
}

func TestCanonicalize(t *testing.T) {
	got := Canonicalize(model.Estimate{
		LaborHours: "2.50",
		LaborRate:  "garbage",
		TripFee:    "50",
	})
	if got.LaborHours != "2.5" {
		t.Errorf("expected 2.5, got %q", got.LaborHours)
	}
	if got.LaborRate != "0" {
		t.Errorf("expected 0 for unparseable input, got %q", got.LaborRate)
	}
	if got.TripFee != "50" {
		t.Errorf("expected 50, got %q", got.TripFee)
	}
}
