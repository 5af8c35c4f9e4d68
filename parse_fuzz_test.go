package ascent_test

import (
	"testing"

	"github.com/recascent/ascent"
)

func FuzzParse(f *testing.F) {
	f.Add("2+3*4")
	f.Add("x = 5")
	f.Add("pow(2,10)")
	f.Add("-(3+4)^2")
	f.Add("rand()")
	f.Fuzz(func(t *testing.T, s string) {
		ascent.New[float64]().Parse(s)
		ascent.New[int64]().Parse(s)
	})
}
