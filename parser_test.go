package ascent_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recascent/ascent"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want float64
	}{
		{"num", "2", 2},
		{"float", "12.5e3", 12500},
		{"spaces", " 2 + 2 ", 4},
		{"precedence", "2+3*4", 14},
		{"grouping", "(2+3)*4", 20},
		{"left-sub", "10-4-3", 3},
		{"left-div", "16/4/2", 2},
		{"mod", "7%3", 1},
		{"pow-right", "2^3^2", 512},
		{"pow-tighter", "2*3^2", 18},
		{"uminus", "-3+4", 1},
		{"uminus-group", "-(3+4)", -7},
		{"uminus-pow", "-2^2", -4},
		{"uplus", "+5", 5},
		{"double-group", "((2))", 2},
		{"pi", "pi", math.Pi},
		{"pi-expr", "2*pi", 2 * math.Pi},
		{"call0-in-expr", "0*rand()+7", 7},
		{"call1", "sin(0)", 0},
		{"call2", "pow(2,10)", 1024},
		{"call2-atan2", "atan2(1,1)", math.Pi / 4},
		{"call-mod", "mod(7,3)", 1},
		{"call-nested", "pow(1+1,sqrt(100))", 1024},
		{"call-in-sum", "1+cos(0)*2", 3},
		{"assign-value", "x = 41 + 1", 42},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := ascent.New[float64]()
			got, err := p.Parse(c.src)
			require.NoError(t, err)
			assert.InDelta(t, c.want, got, 1e-12)
		})
	}
}

func TestParenthesesRoundTrip(t *testing.T) {
	exprs := []string{
		"2+3*4", "2^3^2", "-3+4", "sin(1)", "pow(2,10)", "pi/2", "7%3",
	}
	for _, src := range exprs {
		p := ascent.New[float64]()
		plain, err := p.Parse(src)
		require.NoError(t, err, src)
		wrapped, err := p.Parse("(" + src + ")")
		require.NoError(t, err, src)
		assert.Equal(t, plain, wrapped, "(%s) differs from %s", src, src)
	}
}

func TestAssignPersists(t *testing.T) {
	p := ascent.New[float64]()
	v, err := p.Parse("x=5")
	require.NoError(t, err)
	assert.EqualValues(t, 5, v)
	v, err = p.Parse("x+1")
	require.NoError(t, err)
	assert.EqualValues(t, 6, v)

	// A fresh instance has no x.
	_, err = ascent.New[float64]().Parse("x+1")
	var nameErr *ascent.NameError
	require.ErrorAs(t, err, &nameErr)
	assert.Equal(t, "x", nameErr.Name)
}

func TestAssignInSubexpression(t *testing.T) {
	p := ascent.New[float64]()
	v, err := p.Parse("2*(x=3)+1")
	require.NoError(t, err)
	assert.EqualValues(t, 7, v)
	x, ok := p.Lookup("x")
	require.True(t, ok)
	assert.EqualValues(t, 3, x)
}

func TestAssignCommittedBeforeFailure(t *testing.T) {
	// Assignments apply on their reducing action, so ones committed by an
	// earlier call stay even when a later call fails.
	p := ascent.New[float64]()
	_, err := p.Parse("a=1")
	require.NoError(t, err)
	_, err = p.Parse("b=a+nope")
	require.Error(t, err)
	a, ok := p.Lookup("a")
	require.True(t, ok)
	assert.EqualValues(t, 1, a)
	_, ok = p.Lookup("b")
	assert.False(t, ok)
}

func TestPureExpressionIdempotent(t *testing.T) {
	p := ascent.New[float64]()
	for i := 0; i < 3; i++ {
		v, err := p.Parse("2+2")
		require.NoError(t, err)
		assert.EqualValues(t, 4, v)
	}
	_, ok := p.Lookup("x")
	assert.False(t, ok)
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		as   func() any
	}{
		{"dangling-op", "1+", func() any { return new(*ascent.TransitionError) }},
		{"unknown-var", "y+1", func() any { return new(*ascent.NameError) }},
		{"three-args", "foo(1,2,3)", func() any { return new(*ascent.TransitionError) }},
		{"assign-to-scalar", "5=3", func() any { return new(*ascent.TransitionError) }},
		{"unknown-func0", "foo()", func() any { return new(*ascent.FuncError) }},
		{"unknown-func1", "foo(1)", func() any { return new(*ascent.FuncError) }},
		{"wrong-arity", "sin(1,2)", func() any { return new(*ascent.FuncError) }},
		{"empty", "", func() any { return new(*ascent.TransitionError) }},
		{"unclosed", "(1+2", func() any { return new(*ascent.TransitionError) }},
		{"adjacent-scalars", "1 2", func() any { return new(*ascent.TransitionError) }},
		{"bad-rune", "1+$", func() any { return new(*ascent.LexError) }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ascent.New[float64]().Parse(c.src)
			require.Error(t, err, "parsing %q", c.src)
			assert.ErrorAs(t, err, c.as(), "parsing %q got %v", c.src, err)
		})
	}
}

func TestArityNoFallback(t *testing.T) {
	// sin exists with one argument only; supplying two must not fall back.
	_, err := ascent.New[float64]().Parse("sin(1,2)")
	var fnErr *ascent.FuncError
	require.ErrorAs(t, err, &fnErr)
	assert.Equal(t, "sin", fnErr.Name)
	assert.Equal(t, 2, fnErr.Arity)
}

func TestTransitionErrorDetail(t *testing.T) {
	_, err := ascent.New[float64]().Parse("1+")
	var trErr *ascent.TransitionError
	require.ErrorAs(t, err, &trErr)
	assert.NotEmpty(t, trErr.State)
	assert.Equal(t, "end", trErr.Token)
	assert.Equal(t, "1+", trErr.Input)
	assert.Contains(t, err.Error(), `"1+"`)
}

func TestRandBuiltins(t *testing.T) {
	p := ascent.New[float64](ascent.WithSource[float64](rand.NewSource(1)))
	for i := 0; i < 100; i++ {
		v, err := p.Parse("rand()")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
	for i := 0; i < 100; i++ {
		v, err := p.Parse("rand(5, 10)")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, 5.0)
		assert.LessOrEqual(t, v, 10.0)
	}
}

func TestRandBounds(t *testing.T) {
	// Reversed bounds are an error, not a panic or an out-of-range draw.
	_, err := ascent.New[float64]().Parse("rand(6, 1)")
	var argErr *ascent.ArgError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "rand", argErr.Func)

	// Equal bounds name a one-point range.
	v, err := ascent.New[float64]().Parse("rand(3, 3)")
	require.NoError(t, err)
	assert.EqualValues(t, 3, v)
}

func TestRandDeterministicWithSource(t *testing.T) {
	// The same injected source yields the same stream; the overload by
	// arity resolves to the 0- and 2-argument tables independently.
	draw := func() (float64, float64) {
		p := ascent.New[float64](ascent.WithSource[float64](rand.NewSource(42)))
		a, err := p.Parse("rand()")
		require.NoError(t, err)
		b, err := p.Parse("rand(0, 100)")
		require.NoError(t, err)
		return a, b
	}
	a1, b1 := draw()
	a2, b2 := draw()
	assert.Equal(t, a1, a2)
	assert.Equal(t, b1, b2)
}

func TestConstructionOptions(t *testing.T) {
	p := ascent.New[float64](
		ascent.WithVar("tau", 2*math.Pi),
		ascent.WithFunc0[float64]("zero", func() (float64, error) { return 0, nil }),
		ascent.WithFunc1[float64]("twice", func(x float64) (float64, error) { return 2 * x, nil }),
		ascent.WithFunc2[float64]("hypot", func(x, y float64) (float64, error) { return math.Hypot(x, y), nil }),
	)
	v, err := p.Parse("tau/2")
	require.NoError(t, err)
	assert.InDelta(t, math.Pi, v, 1e-12)
	v, err = p.Parse("zero()+twice(21)")
	require.NoError(t, err)
	assert.EqualValues(t, 42, v)
	v, err = p.Parse("hypot(3,4)")
	require.NoError(t, err)
	assert.EqualValues(t, 5, v)
}

func TestVarTableAPI(t *testing.T) {
	p := ascent.New[float64]()
	p.SetVar("x", 3)
	v, err := p.Parse("x^2")
	require.NoError(t, err)
	assert.EqualValues(t, 9, v)

	p.ClearVars()
	_, ok := p.Lookup("x")
	assert.False(t, ok)
	pi, ok := p.Lookup("pi")
	require.True(t, ok)
	assert.Equal(t, math.Pi, pi)
}
