package ascent_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recascent/ascent"
)

func TestDefaultBuiltins(t *testing.T) {
	cases := []struct {
		src  string
		want float64
	}{
		{"sin(pi/2)", 1},
		{"cos(0)", 1},
		{"tan(0)", 0},
		{"asin(1)", math.Pi / 2},
		{"acos(1)", 0},
		{"atan(1)", math.Pi / 4},
		{"sinh(1)", math.Sinh(1)},
		{"cosh(1)", math.Cosh(1)},
		{"tanh(1)", math.Tanh(1)},
		{"asinh(1)", math.Asinh(1)},
		{"acosh(2)", math.Acosh(2)},
		{"atanh(0.5)", math.Atanh(0.5)},
		{"sqrt(2)", math.Sqrt2},
		{"cbrt(27)", 3},
		{"exp(1)", math.E},
		{"log(exp(2))", 2},
		{"log10(1000)", 3},
		{"log2(8)", 3},
		{"round(2.5)", 3},
		{"ceil(2.1)", 3},
		{"floor(2.9)", 2},
		{"abs(-3)", 3},
		{"erf(0)", 0},
		{"erfc(0)", 1},
		{"pow(2,0.5)", math.Sqrt2},
		{"atan2(0,1)", 0},
		{"mod(7.5,2)", 1.5},
	}
	p := ascent.New[float64]()
	for _, c := range cases {
		got, err := p.Parse(c.src)
		require.NoError(t, err, c.src)
		assert.InDelta(t, c.want, got, 1e-12, c.src)
	}
}

func TestSharedDefaultRandSource(t *testing.T) {
	// Engines without an injected source all draw from the process-wide
	// stream; the draws must still be in range.
	p1 := ascent.New[float64]()
	p2 := ascent.New[float64]()
	for i := 0; i < 10; i++ {
		v, err := p1.Parse("rand()")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
		v, err = p2.Parse("rand()")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}
