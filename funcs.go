package ascent

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

// Func0, Func1, and Func2 are built-in functions of zero, one, and two
// arguments. A built-in reports arguments outside its domain through its
// error result. All default built-ins are pure except the rand family,
// which draws from the engine's random source.
type (
	Func0[T Num] func() (T, error)
	Func1[T Num] func(T) (T, error)
	Func2[T Num] func(T, T) (T, error)
)

// randSource is a lockable stream of random numbers. The default source is
// shared by every engine in the process on purpose, so it must serialize.
type randSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

var sharedRand = &randSource{r: rand.New(rand.NewSource(time.Now().UnixNano()))}

func (s *randSource) float() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

func (s *randSource) uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Uint64()
}

func (s *randSource) int63n(n int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Int63n(n)
}

func defaultFuncs0[T Num](src *randSource) map[string]Func0[T] {
	return map[string]Func0[T]{
		"rand": func() (T, error) {
			if isFloat[T]() {
				return T(src.float()), nil
			}
			// Truncating a uniform 64-bit draw is uniform over any
			// fixed-width integer type.
			return T(src.uint64()), nil
		},
	}
}

func defaultFuncs1[T Num]() map[string]Func1[T] {
	f := func(fn func(float64) float64) Func1[T] {
		return func(x T) (T, error) { return T(fn(float64(x))), nil }
	}
	return map[string]Func1[T]{
		"sin":  f(math.Sin),
		"cos":  f(math.Cos),
		"tan":  f(math.Tan),
		"asin": f(math.Asin),
		"acos": f(math.Acos),
		"atan": f(math.Atan),

		"sinh":  f(math.Sinh),
		"cosh":  f(math.Cosh),
		"tanh":  f(math.Tanh),
		"asinh": f(math.Asinh),
		"acosh": f(math.Acosh),
		"atanh": f(math.Atanh),

		"sqrt": f(math.Sqrt),
		"cbrt": f(math.Cbrt),

		"exp":   f(math.Exp),
		"log":   f(math.Log),
		"log10": f(math.Log10),
		"log2":  f(math.Log2),

		"round": f(math.Round),
		"ceil":  f(math.Ceil),
		"floor": f(math.Floor),
		"abs":   f(math.Abs),

		"erf":  f(math.Erf),
		"erfc": f(math.Erfc),
	}
}

func defaultFuncs2[T Num](src *randSource) map[string]Func2[T] {
	f := func(fn func(float64, float64) float64) Func2[T] {
		return func(x, y T) (T, error) { return T(fn(float64(x), float64(y))), nil }
	}
	return map[string]Func2[T]{
		"pow":   f(math.Pow),
		"atan2": f(math.Atan2),
		"mod": func(x, y T) (T, error) {
			if y == 0 && !isFloat[T]() {
				return 0, &ArgError{Func: "mod", Reason: "zero divisor"}
			}
			return modulo(x, y), nil
		},
		"rand": func(lo, hi T) (T, error) {
			if hi < lo {
				return 0, &ArgError{Func: "rand", Reason: "empty range"}
			}
			if isFloat[T]() {
				return lo + T(src.float()*float64(hi-lo)), nil
			}
			// Inclusive bounds, matching dice-style integer use. The span
			// arithmetic is unsigned: hi-lo never wraps for hi >= lo.
			span := uint64(hi-lo) + 1
			if span == 0 {
				// lo..hi covers the whole width of T.
				return T(src.uint64()), nil
			}
			if span > math.MaxInt64 {
				// Too wide for Int63n; a full-width draw folded onto the
				// span stays in bounds.
				return lo + T(src.uint64()%span), nil
			}
			return lo + T(src.int63n(int64(span))), nil
		},
	}
}

// modulo is the remainder in the sense native to T: the floating remainder
// for floats, the truncated integer remainder otherwise.
func modulo[T Num](x, y T) T {
	if isFloat[T]() {
		return T(math.Mod(float64(x), float64(y)))
	}
	return T(int64(x) % int64(y))
}

// power computes x^y through the floating power function and converts back,
// so 2^10 stays exact in integer instantiations.
func power[T Num](x, y T) T {
	return T(math.Pow(float64(x), float64(y)))
}
