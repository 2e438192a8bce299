package progress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatio(t *testing.T) {
	tests := []struct {
		name         string
		outputLen    int
		originalSize int64
		want         float64
	}{
		{"half of original", 50, 100, 0.5},
		{"output larger than original is clamped", 200, 100, 1.0},
		{"exact match", 100, 100, 1.0},
		{"no metadata falls back to output size", 42, 0, 1.0},
		{"no metadata and empty output", 0, 0, 1.0},
		{"empty output with metadata", 0, 100, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Ratio(tt.outputLen, tt.originalSize), 1e-9)
		})
	}
}

func TestRatio_Bounds(t *testing.T) {
	for _, outputLen := range []int{0, 1, 100, 1 << 20} {
		for _, originalSize := range []int64{0, 1, 512, 1 << 30} {
			r := Ratio(outputLen, originalSize)
			assert.GreaterOrEqual(t, r, 0.0)
			assert.LessOrEqual(t, r, 1.0)
		}
	}
}

func TestReporter_EndsAtFull(t *testing.T) {
	var out bytes.Buffer
	r := NewReporter(&out)

	r.Start()
	r.Estimate(30, 100)
	r.Finish()

	assert.Contains(t, out.String(), "100%")
}
