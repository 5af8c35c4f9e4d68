package ascent_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recascent/ascent"
)

func TestParseInt(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want int64
	}{
		{"num", "42", 42},
		{"precedence", "2+3*4", 14},
		{"div-truncates", "7/2", 3},
		{"rem", "7%3", 1},
		{"mod-func", "mod(9,4)", 1},
		{"pow", "2^10", 1024},
		{"pow-right", "2^3^2", 512},
		{"uminus", "-7/2", -3},
		{"pi-truncated", "pi", 3},
		{"sqrt-truncated", "sqrt(10)", 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ascent.New[int64]().Parse(c.src)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestIntAssignPersists(t *testing.T) {
	p := ascent.New[int64]()
	_, err := p.Parse("x=5")
	require.NoError(t, err)
	v, err := p.Parse("x*2")
	require.NoError(t, err)
	assert.EqualValues(t, 10, v)
}

func TestIntDivisionByZero(t *testing.T) {
	for _, src := range []string{"1/0", "7%0"} {
		_, err := ascent.New[int64]().Parse(src)
		var domErr *ascent.DomainError
		require.ErrorAs(t, err, &domErr, "parsing %q", src)
	}
}

func TestIntRandBounds(t *testing.T) {
	_, err := ascent.New[int64]().Parse("rand(6, 1)")
	var argErr *ascent.ArgError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "rand", argErr.Func)

	v, err := ascent.New[int64]().Parse("rand(3, 3)")
	require.NoError(t, err)
	assert.EqualValues(t, 3, v)
}

func TestIntModZeroDivisor(t *testing.T) {
	_, err := ascent.New[int64]().Parse("mod(1, 0)")
	var argErr *ascent.ArgError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "mod", argErr.Func)
}

func TestIntRand(t *testing.T) {
	p := ascent.New[int64](ascent.WithSource[int64](rand.NewSource(7)))
	seen := make(map[int64]bool)
	for i := 0; i < 200; i++ {
		v, err := p.Parse("rand(1, 6)")
		require.NoError(t, err)
		require.GreaterOrEqual(t, v, int64(1))
		require.LessOrEqual(t, v, int64(6))
		seen[v] = true
	}
	// Bounds are inclusive; 200 rolls hit every face.
	assert.Len(t, seen, 6)
}
