package resolution

import (
	"fmt"
	"strconv"
	"strings"
)

const separator = "x"

// Resolution is a validated target size in pixels.
type Resolution struct {
	Width  int
	Height int
}

func (r Resolution) String() string {
	return fmt.Sprintf("%d%s%d", r.Width, separator, r.Height)
}

// Reason identifies which validation rule an input string violated.
type Reason string

const (
	ReasonEmpty       Reason = "resolution string is empty"
	ReasonSeparator   Reason = "expected exactly one 'x' separator"
	ReasonTwoValues   Reason = "expected two values, width and height"
	ReasonNotANumber  Reason = "width and height must be base-10 numbers"
	ReasonNotPositive Reason = "width and height must be greater than zero"
)

// FormatError reports the first validation rule violated by an input string.
type FormatError struct {
	Input  string
	Reason Reason
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid resolution %q: %s", e.Input, e.Reason)
}

// Parse validates a "WxH" string and returns its components.
//
// Rules are checked in order and each has its own failure reason: the string
// must be non-empty, contain exactly one separator, split into two non-empty
// tokens, both tokens must be base-10 integers, and both must be greater
// than zero. Parsing the same input twice yields the same Resolution.
//
// Every entry point that accepts a raw resolution string calls Parse itself,
// even when an upstream boundary already has: callers may be invoked
// directly, so upstream validation is never assumed.
func Parse(s string) (Resolution, error) {
	if s == "" {
		return Resolution{}, &FormatError{Input: s, Reason: ReasonEmpty}
	}

	if strings.Count(s, separator) != 1 {
		return Resolution{}, &FormatError{Input: s, Reason: ReasonSeparator}
	}

	left, right, _ := strings.Cut(s, separator)
	if left == "" || right == "" {
		return Resolution{}, &FormatError{Input: s, Reason: ReasonTwoValues}
	}

	width, err := strconv.Atoi(left)
	if err != nil {
		return Resolution{}, &FormatError{Input: s, Reason: ReasonNotANumber}
	}

	height, err := strconv.Atoi(right)
	if err != nil {
		return Resolution{}, &FormatError{Input: s, Reason: ReasonNotANumber}
	}

	if width <= 0 || height <= 0 {
		return Resolution{}, &FormatError{Input: s, Reason: ReasonNotPositive}
	}

	return Resolution{Width: width, Height: height}, nil
}

// Presets is the fixed allow-list of accepted target resolutions.
var Presets = []string{
	"320x240",
	"640x480",
	"800x600",
	"1024x768",
	"1280x720",
	"1280x800",
	"1366x768",
	"1600x900",
	"1920x1080",
	"2048x1080",
	"2560x1080",
	"2560x1440",
	"3440x1440",
	"3840x1600",
	"3840x2160",
	"4096x2160",
	"5120x2160",
	"5120x2880",
	"6016x3384",
	"6144x3160",
	"7680x4320",
	"8192x4320",
}

var presetSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(Presets))
	for _, p := range Presets {
		set[p] = struct{}{}
	}
	return set
}()

// IsPreset reports whether s is one of the supported target resolutions.
// Allow-list membership is checked at the configuration boundary; structural
// validation via Parse happens again inside the pipeline regardless.
func IsPreset(s string) bool {
	_, ok := presetSet[s]
	return ok
}
