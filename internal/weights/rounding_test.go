package weights_test

import (
	"math"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"

	"github.com/2beens/gymweights/internal/weights"
)

func TestRoundToHalf(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: 0, want: 0},
		{in: 0.24, want: 0},
		{in: 0.25, want: 0.5},
		{in: 0.74, want: 0.5},
		{in: 0.75, want: 1},
		{in: 60, want: 60},
		{in: 61.24, want: 61},
		{in: 61.25, want: 61.5},
		{in: 62.3, want: 62.5},
		{in: 100.75, want: 101},
		{in: -5, want: 0},
		{in: -0.2, want: 0},
		{in: math.NaN(), want: 0},
		{in: math.Inf(1), want: 0},
		{in: math.Inf(-1), want: 0},
		{in: 1 << 52, want: 1 << 52},
		{in: 1e308, want: 1e308},
		{in: math.MaxFloat64, want: math.MaxFloat64},
		{in: -math.MaxFloat64, want: 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, weights.RoundToHalf(tt.in), "in: %v", tt.in)
	}
}

func TestRoundToHalf_Idempotent(t *testing.T) {
	faker := gofakeit.New(42)
	for i := 0; i < 500; i++ {
		x := faker.Float64Range(-1000, 1000)
		once := weights.RoundToHalf(x)
		assert.Equal(t, once, weights.RoundToHalf(once), "x: %v", x)
		assert.GreaterOrEqual(t, once, 0.0)
		assert.Equal(t, 0.0, math.Mod(once*2, 1), "not on the half grid: %v", once)
	}
}

func TestRoundToHalf_HugeValuesStayFinite(t *testing.T) {
	for _, x := range []float64{1 << 53, 4.5e15 + 0.5, 8.99e307, 1e308, math.MaxFloat64} {
		once := weights.RoundToHalf(x)
		assert.False(t, math.IsInf(once, 0), "x: %v", x)
		assert.Equal(t, once, weights.RoundToHalf(once), "x: %v", x)
		assert.NotContains(t, weights.FormatWeight(x), "Inf", "x: %v", x)
	}
}

func TestRoundText(t *testing.T) {
	assert.Equal(t, 0.0, weights.RoundText("abc"))
	assert.Equal(t, 0.0, weights.RoundText(""))
	assert.Equal(t, 0.0, weights.RoundText("-3"))
	assert.Equal(t, 62.5, weights.RoundText("62.5kg"))
	assert.Equal(t, 80.0, weights.RoundText("  80 "))
	assert.Equal(t, 0.5, weights.RoundText(".5"))
	assert.Equal(t, 100.0, weights.RoundText("1e2"))
	assert.Equal(t, 61.0, weights.RoundText("61.24"))
	// decimal comma is only handled by SetWeightText
	assert.Equal(t, 62.0, weights.RoundText("62,5"))
}

func TestParseWeight(t *testing.T) {
	v, ok := weights.ParseWeight("Infinity")
	assert.True(t, ok)
	assert.True(t, math.IsInf(v, 1))

	v, ok = weights.ParseWeight("1e400")
	assert.True(t, ok)
	assert.True(t, math.IsInf(v, 1))

	_, ok = weights.ParseWeight("kg 60")
	assert.False(t, ok)

	v, ok = weights.ParseWeight("+7.")
	assert.True(t, ok)
	assert.Equal(t, 7.0, v)
}

func TestFormatWeight(t *testing.T) {
	assert.Equal(t, "60", weights.FormatWeight(60))
	assert.Equal(t, "62.5", weights.FormatWeight(62.3))
	assert.Equal(t, "62.5", weights.FormatWeight(62.5))
	assert.Equal(t, "0", weights.FormatWeight(0.2))
	assert.Equal(t, "0", weights.FormatWeight(-12))
	assert.Equal(t, "101", weights.FormatWeight(100.75))
	assert.Equal(t, "0.5", weights.FormatWeight(0.3))

	assert.Equal(t, "0", weights.FormatText("abc"))
	assert.Equal(t, "42.5", weights.FormatText("42.4"))
}

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Leg Day Extra":              "leg-day-extra",
		"  Bench   Press!!  ":        "bench-press",
		"Cable\tFly\nHigh":           "cable-fly-high",
		"Übung 2":                    "bung-2",
		"Pull-Up (weighted)":         "pull-up-weighted",
		"!!!":                        "custom",
		"":                           "custom",
		"already-a-slug":             "already-a-slug",
		"Non\u00a0Breaking\u00a0Row": "non-breaking-row",
		"a\vb":                       "a-b",
		"\uFEFFSquat":                "squat",
		"Squat\uFEFF ":               "squat",
		"\f Row \u3000":              "row",
	}
	for in, want := range tests {
		assert.Equal(t, want, weights.Slugify(in), "in: %q", in)
	}
}
