package pricing

import (
	"math"
	"testing"
)

func TestComputeItemMetrics_Example(t *testing.T) {
	m := ComputeItemMetrics(600, 400, 2, 950)
	if m.Sqft != 2.58 {
		t.Fatalf("want sqft 2.58, got %v", m.Sqft)
	}
	if m.Amount != 4902 {
		t.Fatalf("want amount 4902, got %v", m.Amount)
	}
}

func TestComputeItemMetrics_MatchesFormula(t *testing.T) {
	cases := []struct {
		l, w float64
		q    int
		r    float64
	}{
		{1, 1, 1, 0},
		{92903, 1, 1, 1},
		{1200, 600, 3, 1140},
		{450.5, 300.25, 7, 608},
		{2000, 1800, 1, 1900},
		{10, 10, 100, 494.5},
	}
	for _, c := range cases {
		got := ComputeItemMetrics(c.l, c.w, c.q, c.r)
		sqft := math.Round(c.l*c.w/92903*100) / 100
		want := math.Round(sqft*c.r*float64(c.q)*100) / 100
		if got.Sqft != sqft || got.Amount != want {
			t.Fatalf("%+v: want {%v %v}, got %+v", c, sqft, want, got)
		}
	}
}

func TestComputeItemMetrics_ZeroRate(t *testing.T) {
	m := ComputeItemMetrics(600, 400, 2, 0)
	if m.Amount != 0 || m.Sqft != 2.58 {
		t.Fatalf("unexpected metrics: %+v", m)
	}
}

func TestEffectiveRate(t *testing.T) {
	zero := 0.0
	custom := 1200.0
	negative := -5.0
	if r := EffectiveRate(nil, 950); r != 950 {
		t.Fatalf("unset override: want 950, got %v", r)
	}
	if r := EffectiveRate(&zero, 950); r != 0 {
		t.Fatalf("zero override: want 0, got %v", r)
	}
	if r := EffectiveRate(&custom, 950); r != 1200 {
		t.Fatalf("custom override: want 1200, got %v", r)
	}
	if r := EffectiveRate(&negative, 950); r != 950 {
		t.Fatalf("negative override: want 950, got %v", r)
	}
}

func TestTotals_Empty(t *testing.T) {
	if ItemsTotal(nil) != 0 || ExtraCostsTotal(nil) != 0 {
		t.Fatalf("empty totals must be 0")
	}
	s := Summarize(nil, nil)
	if s.FinalTotal != 0 {
		t.Fatalf("empty final total: %+v", s)
	}
}

func TestTotals_Discount(t *testing.T) {
	s := Summarize([]float64{4000, 6000}, []float64{-1500})
	if s.ItemsTotal != 10000 || s.ExtraCostsTotal != -1500 || s.FinalTotal != 8500 {
		t.Fatalf("unexpected summary: %+v", s)
	}
	if s.FinalTotal >= s.ItemsTotal {
		t.Fatalf("discount must lower the total")
	}
}

func TestTotals_FinalIsSum(t *testing.T) {
	items := []float64{4902, 1234.56, 0.01}
	extras := []float64{250, -99.99, 10}
	s := Summarize(items, extras)
	if s.FinalTotal != ItemsTotal(items)+ExtraCostsTotal(extras) {
		t.Fatalf("final total mismatch: %+v", s)
	}
	again := Summarize(items, extras)
	if again != s {
		t.Fatalf("summary not deterministic: %+v vs %+v", s, again)
	}
}

func TestRound2(t *testing.T) {
	cases := map[float64]float64{
		2.583: 2.58,
		2.586: 2.59,
		0:     0,
		1.004: 1,
		-1.25: -1.25,
	}
	for in, want := range cases {
		if got := Round2(in); got != want {
			t.Fatalf("Round2(%v) = %v, want %v", in, got, want)
		}
	}
}
