package functional_test

import (
	"strconv"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/rogpeppe/sfn/functional"
)

var composeTests = []struct {
	testName string
	compose  func(g, f any) (functional.Func, error)
	g, f     any
	want     int
}{{
	testName: "FrontSumMinus",
	compose:  functional.ComposeFront,
	g:        sum,
	f:        minus,
	want:     3, // sum(minus(4, 3), 2)
}, {
	testName: "BackSumMinus",
	compose:  functional.ComposeBack,
	g:        sum,
	f:        minus,
	want:     5, // sum(4, minus(3, 2))
}, {
	testName: "FrontMinusSum",
	compose:  functional.ComposeFront,
	g:        minus,
	f:        sum,
	want:     5, // minus(sum(4, 3), 2)
}, {
	testName: "BackMinusSum",
	compose:  functional.ComposeBack,
	g:        minus,
	f:        sum,
	want:     -1, // minus(4, sum(3, 2))
}}

func TestComposeOrder(t *testing.T) {
	c := qt.New(t)
	for _, test := range composeTests {
		c.Run(test.testName, func(c *qt.C) {
			fn, err := test.compose(test.g, test.f)
			c.Assert(err, qt.IsNil)
			c.Assert(fn.Signature(), qt.Equals, sig[func(int, int, int) int]())
			c.Assert(functional.As[func(int, int, int) int](fn)(4, 3, 2), qt.Equals, test.want)
		})
	}
}

func TestComposeSignatures(t *testing.T) {
	c := qt.New(t)
	format := func(x int, base int) string { return strconv.FormatInt(int64(x), base) }
	parse := func(s string) int {
		n, _ := strconv.Atoi(s)
		return n
	}
	fn := functional.Must(functional.ComposeFront(format, parse))
	c.Assert(fn.Signature(), qt.Equals, sig[func(string, int) string]())
	c.Assert(functional.As[func(string, int) string](fn)("10", 2), qt.Equals, "1010")

	fn = functional.Must(functional.ComposeBack(format, f))
	c.Assert(fn.Signature(), qt.Equals, sig[func(int) string]())
	c.Assert(functional.As[func(int) string](fn)(255), qt.Equals, "11111111")
}

func TestCompose(t *testing.T) {
	c := qt.New(t)
	fn, err := functional.Compose(intIdentity, f)
	c.Assert(err, qt.IsNil)
	c.Assert(fn.Signature(), qt.Equals, sig[func() int]())
	c.Assert(functional.As[func() int](fn)(), qt.Equals, 2)

	c.Assert(functional.Composable(sum, f), qt.IsFalse)
	_, err = functional.Compose(sum, f)
	c.Assert(err, qt.ErrorMatches, `functional: composable constraint not satisfied: g has 2 parameters, not exactly the 1 results of f`)
}

func TestComposeMultipleResults(t *testing.T) {
	c := qt.New(t)
	divmod := func(a, b int) (int, int) { return a / b, a % b }
	fn := functional.Must(functional.Compose(sum, divmod))
	c.Assert(fn.Signature(), qt.Equals, sig[func(int, int) int]())
	c.Assert(functional.As[func(int, int) int](fn)(7, 2), qt.Equals, 4)

	three := func(a, b, c int) int { return a*100 + b*10 + c }
	fn = functional.Must(functional.ComposeBack(three, divmod))
	c.Assert(functional.As[func(int, int, int) int](fn)(9, 7, 2), qt.Equals, 931)
}

func TestComposeConverts(t *testing.T) {
	c := qt.New(t)
	double := func(x float64) float64 { return x * 2 }
	fn := functional.Must(functional.Compose(double, f))
	c.Assert(functional.As[func() float64](fn)(), qt.Equals, 4.0)

	fn = functional.Must(functional.Compose(acceptsShape, makeSquare))
	c.Assert(functional.As[func() float64](fn)(), qt.Equals, 9.0)
}

func TestComposeMethod(t *testing.T) {
	c := qt.New(t)
	var a A
	fn := functional.Must(functional.ComposeBack(functional.MethodOf[A]("Inc"), f))
	inc := functional.As[func(*A) int](fn)
	c.Assert(inc(&a), qt.Equals, 2)
	c.Assert(inc(&a), qt.Equals, 4)
}

func TestComposeNoExcept(t *testing.T) {
	c := qt.New(t)
	fn := functional.Must(functional.ComposeFront(functional.Nothrow{F: sum}, functional.Nothrow{F: minus}))
	c.Assert(functional.IsNoExcept(fn), qt.IsTrue)

	fn = functional.Must(functional.ComposeFront(sum, functional.Nothrow{F: minus}))
	c.Assert(functional.IsNoExcept(fn), qt.IsFalse)
}

func TestComposeRejected(t *testing.T) {
	c := qt.New(t)
	c.Assert(functional.ComposableFront(intIdentity, g), qt.IsFalse)
	_, err := functional.ComposeFront(intIdentity, g)
	c.Assert(err, qt.ErrorMatches, `functional: composable front constraint not satisfied: f has no results`)

	_, err = functional.ComposeBack(f2, func() (int, int) { return 0, 0 })
	c.Assert(err, qt.ErrorMatches, `functional: composable back constraint not satisfied: g has 1 parameters, fewer than the 2 results of f`)

	_, err = functional.ComposeFront(func(string) {}, f)
	c.Assert(err, qt.ErrorMatches, `functional: composable front constraint not satisfied: g parameter string: cannot construct from result 0 of f \(int\)`)

	_, err = functional.Compose(1, nil)
	c.Assert(err, qt.ErrorIs, functional.ErrNotCallable)
	c.Assert(err, qt.ErrorMatches, `functional: composable constraint not satisfied: g: not a callable entity: int; f: not a callable entity: <nil>`)
}

func TestComposeAbstract(t *testing.T) {
	c := qt.New(t)
	c.Assert(functional.ComposableBack(sig[func(string, int)](), sig[func() int]()), qt.IsTrue)
	c.Assert(functional.ComposableFront(sig[func(string, int)](), sig[func() int]()), qt.IsFalse)
}
