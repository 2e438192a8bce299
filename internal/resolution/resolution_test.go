package resolution

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		input  string
		width  int
		height int
	}{
		{"1920x1080", 1920, 1080},
		{"640x480", 640, 480},
		{"1x1", 1, 1},
		{"8192x4320", 8192, 4320},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			res, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.width, res.Width)
			assert.Equal(t, tt.height, res.Height)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		input  string
		reason Reason
	}{
		{"", ReasonEmpty},
		{"abc", ReasonSeparator},
		{"1920", ReasonSeparator},
		{"10x10x10", ReasonSeparator},
		{"10x", ReasonTwoValues},
		{"x10", ReasonTwoValues},
		{"axb", ReasonNotANumber},
		{"10xb", ReasonNotANumber},
		{"1920x1080 ", ReasonNotANumber},
		{"1.5x100", ReasonNotANumber},
		{"0x10", ReasonNotPositive},
		{"0x100", ReasonNotPositive},
		{"100x0", ReasonNotPositive},
		{"-640x480", ReasonNotPositive},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)

			var fe *FormatError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.reason, fe.Reason)
			assert.Equal(t, tt.input, fe.Input)
		})
	}
}

// Every preset must pass structural validation and round-trip to its literal
// numeric components.
func TestParse_Presets(t *testing.T) {
	for _, p := range Presets {
		res, err := Parse(p)
		require.NoError(t, err, p)

		left, right, _ := strings.Cut(p, "x")
		w, _ := strconv.Atoi(left)
		h, _ := strconv.Atoi(right)
		assert.Equal(t, w, res.Width, p)
		assert.Equal(t, h, res.Height, p)
		assert.Equal(t, p, res.String())
	}
}

func TestParse_Idempotent(t *testing.T) {
	first, err := Parse("2560x1440")
	require.NoError(t, err)

	second, err := Parse("2560x1440")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestIsPreset(t *testing.T) {
	assert.True(t, IsPreset("1920x1080"))
	assert.True(t, IsPreset("320x240"))
	assert.False(t, IsPreset("1921x1081"))
	assert.False(t, IsPreset("0x100"))
	assert.False(t, IsPreset(""))
}
