package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"diagnostic-canvas/internal/catalog"
)

func TestCalculate_Empty(t *testing.T) {
	s := Calculate(catalog.Blocks(), nil)
	assert.Equal(t, Stats{Filled: 0, Total: 12, Percent: 0}, s)
	assert.Equal(t, "0/12 (0%)", s.String())
}

func TestCalculate_TrimmedAnswer(t *testing.T) {
	s := Calculate(catalog.Blocks(), map[string]string{
		"b5": "  Necesita mayor automatización  ",
		"b6": "   ",
		"b7": "\n\t",
	})
	assert.Equal(t, 1, s.Filled)
	assert.Equal(t, 8, s.Percent)
}

func TestCalculate_IgnoresUnknownKeys(t *testing.T) {
	s := Calculate(catalog.Blocks(), map[string]string{"orphan": "x"})
	assert.Equal(t, 0, s.Filled)
}

func TestCalculate_AllFilled(t *testing.T) {
	answers := map[string]string{}
	for _, b := range catalog.Blocks() {
		answers[b.ID] = "ok"
	}
	s := Calculate(catalog.Blocks(), answers)
	assert.Equal(t, Stats{Filled: 12, Total: 12, Percent: 100}, s)
	assert.InDelta(t, 1.0, s.Ratio(), 0.0001)
}

func TestPercent_Rounding(t *testing.T) {
	expected := []int{0, 8, 17, 25, 33, 42, 50, 58, 67, 75, 83, 92, 100}
	for filled, want := range expected {
		assert.Equal(t, want, Percent(filled, 12), "filled=%d", filled)
	}

	assert.Equal(t, 50, Percent(1, 2))
	assert.Equal(t, 13, Percent(1, 8), "12.5 rounds half up")
	assert.Equal(t, 0, Percent(0, 0))
	assert.Equal(t, 0, Percent(-1, 12))
}
