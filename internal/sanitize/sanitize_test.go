package sanitize

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// anything covers the hostile input space: wrong types, non-finite numbers,
// nested structures. Every sanitizer must return an in-range value for all.
var anything = []any{
	nil,
	true,
	false,
	"teal",
	"",
	"0xFF0000",
	float64(3.5),
	math.NaN(),
	math.Inf(1),
	math.Inf(-1),
	float64(-12),
	int(7),
	map[string]any{"x": 1},
	[]any{1, 2, 3},
}

func TestColorTotality(t *testing.T) {
	for _, v := range anything {
		c := Color(v)
		assert.LessOrEqual(t, c, uint32(0xFFFFFF), "input %v", v)
	}
}

func TestColorValues(t *testing.T) {
	assert.Equal(t, uint32(16711680), Color("0xFF0000"))
	assert.Equal(t, uint32(16711680), Color("#FF0000"))
	assert.Equal(t, uint32(16711680), Color("ff0000"))
	assert.Equal(t, ColorSentinel, Color("teal"))
	assert.Equal(t, ColorSentinel, Color(nil))
	assert.Equal(t, ColorSentinel, Color(true))
	assert.Equal(t, ColorSentinel, Color(map[string]any{}))
	assert.Equal(t, ColorSentinel, Color(math.NaN()))
	assert.Equal(t, uint32(0), Color(float64(-5)))
	assert.Equal(t, uint32(255), Color(float64(255.9)))
	assert.Equal(t, uint32(0xFFFFFF), Color(float64(1e12)))
}

func TestScaleTotality(t *testing.T) {
	for _, v := range anything {
		s := Scale(v)
		assert.GreaterOrEqual(t, s, MinScale, "input %v", v)
		assert.LessOrEqual(t, s, MaxScale, "input %v", v)
	}
}

func TestScaleClamping(t *testing.T) {
	assert.Equal(t, float32(10), Scale(float64(100)))
	assert.Equal(t, float32(0.1), Scale(float64(0.0001)))
	assert.Equal(t, float32(1), Scale("big"))
	assert.Equal(t, float32(1), Scale(math.Inf(1)))
	assert.Equal(t, float32(2.5), Scale(float64(2.5)))
}

func TestScalarRejectsNonFinite(t *testing.T) {
	assert.Equal(t, float32(0), Scalar(math.NaN(), 0))
	assert.Equal(t, float32(0), Scalar(math.Inf(1), 0))
	assert.Equal(t, float32(0), Scalar(math.Inf(-1), 0))
	assert.Equal(t, float32(7), Scalar("nope", 7))
	assert.Equal(t, float32(-3), Scalar(float64(-3), 0))
	for _, v := range anything {
		got := Scalar(v, 4)
		assert.False(t, math.IsNaN(float64(got)) || math.IsInf(float64(got), 0), "input %v", v)
	}
}

func TestDimensionFloor(t *testing.T) {
	assert.Equal(t, float32(1), Dimension(nil, 0.1))
	assert.Equal(t, float32(1), Dimension(float64(0), 0.1))
	assert.Equal(t, float32(0.1), Dimension(float64(-4), 0.1))
	assert.Equal(t, float32(0.1), Dimension(float64(0.01), 0.1))
	assert.Equal(t, float32(3), Dimension(float64(3), 0.1))
	assert.Equal(t, float32(1), Dimension(math.Inf(1), 0.05))
}

func TestCount(t *testing.T) {
	assert.Equal(t, int32(3), Count(nil, 3))
	assert.Equal(t, int32(3), Count(float64(2), 3))
	assert.Equal(t, int32(8), Count(float64(8.9), 3))
	assert.Equal(t, int32(3), Count(math.NaN(), 3))
}
