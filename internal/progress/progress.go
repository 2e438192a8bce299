package progress

import (
	"io"

	"github.com/schollz/progressbar/v3"
)

const units = 100

// Reporter renders the completion estimate for a single resize as a bounded
// terminal bar. Rendering is advisory: bar failures are swallowed and never
// fail the resize itself.
type Reporter struct {
	bar *progressbar.ProgressBar
}

// NewReporter creates a Reporter writing to w.
func NewReporter(w io.Writer) *Reporter {
	bar := progressbar.NewOptions(units,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("resizing"),
		progressbar.OptionSetWidth(30),
		progressbar.OptionSetPredictTime(false),
	)

	return &Reporter{bar: bar}
}

// Start renders 0% before the transform begins.
func (r *Reporter) Start() {
	_ = r.bar.Set(0)
}

// Estimate renders the byte-size based completion estimate for the produced
// output against the original size.
func (r *Reporter) Estimate(outputLen int, originalSize int64) {
	_ = r.bar.Set(int(Ratio(outputLen, originalSize) * units))
}

// Finish renders exactly 100%. It is called unconditionally once the output
// buffer exists: byte counts are a coarse proxy for transform progress, so
// the contract is a monotonic 0% -> estimate -> 100% sequence, not a precise
// one.
func (r *Reporter) Finish() {
	_ = r.bar.Set(units)
}

// Ratio maps the produced output size against the original source size to a
// completion estimate in [0,1]. originalSize is 0 when source metadata is
// unavailable; the output size itself is the fallback denominator, and a
// fully degenerate zero denominator yields 1.0 rather than an error.
func Ratio(outputLen int, originalSize int64) float64 {
	denominator := originalSize
	if denominator <= 0 {
		denominator = int64(outputLen)
	}

	if denominator == 0 {
		return 1.0
	}

	ratio := float64(outputLen) / float64(denominator)
	if ratio > 1.0 {
		ratio = 1.0
	}

	return ratio
}
