package level

import (
	"fmt"

	"github.com/benjaminwangfan/reading-path-builer/pkg/common"
)

// CEFRPreset builds the five-level CEFR difficulty space: A1..C1, linear
// progression, sentinel "BEYOND".
func CEFRPreset() (*Config, error) {
	levels := []string{"A1", "A2", "B1", "B2", "C1"}
	weights := map[string]float64{
		"A1": 1.5,
		"A2": 1.3,
		"B1": 1.1,
		"B2": 1.0,
		"C1": 0.9,
	}
	return NewConfig(levels, weights, ProgressionLinear, "BEYOND", nil)
}

// GradePreset builds an N-level school-grade difficulty space: Grade1..GradeN,
// exponential progression, sentinel "ADVANCED". Weights start at 2.0 and
// decrease by 0.2 per grade, floored at 0.8.
func GradePreset(n int) (*Config, error) {
	if n < 1 {
		return nil, common.NewError(common.ErrorTypeInvalidConfig, "grade preset requires at least one grade, got %d", n)
	}
	levels := make([]string, n)
	weights := make(map[string]float64, n)
	for k := 0; k < n; k++ {
		levels[k] = fmt.Sprintf("Grade%d", k+1)
		w := 2.0 - 0.2*float64(k)
		if w < 0.8 {
			w = 0.8
		}
		weights[levels[k]] = w
	}
	return NewConfig(levels, weights, ProgressionExponential, "ADVANCED", nil)
}

// FrequencyPreset builds the four-band word-frequency difficulty space:
// HighFreq, MidFreq, LowFreq, Rare, linear progression, sentinel "UNKNOWN".
func FrequencyPreset() (*Config, error) {
	levels := []string{"HighFreq", "MidFreq", "LowFreq", "Rare"}
	weights := map[string]float64{
		"HighFreq": 1.8,
		"MidFreq":  1.3,
		"LowFreq":  1.0,
		"Rare":     0.7,
	}
	return NewConfig(levels, weights, ProgressionLinear, "UNKNOWN", nil)
}
