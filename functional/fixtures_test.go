package functional_test

import (
	"reflect"

	"github.com/rogpeppe/sfn/functional"
)

type A struct {
	n int
}

func (A) F() int       { return 1 }
func (a *A) G(int)     {}
func (A) G2()          {}
func (A) G3(x int) int { return x }

func (a *A) Inc(by int) int {
	a.n += by
	return a.n
}

type Shape interface {
	Area() float64
}

type Square struct {
	Side float64
}

func (s Square) Area() float64 {
	return s.Side * s.Side
}

type counter struct {
	n int
}

func f() int                       { return 2 }
func g(int)                        {}
func f2(int) int                   { return 2 }
func intIdentity(x int) int        { return x }
func sum(a, b int) int             { return a + b }
func minus(a, b int) int           { return a - b }
func makeSquare() Square           { return Square{Side: 3} }
func acceptsShape(s Shape) float64 { return s.Area() }

func bump(c counter) int {
	c.n++
	return c.n
}

var h = func(int) int { return 3 }

func sig[F any]() functional.Signature {
	return functional.SignatureOf[F]()
}

func pointerOf(fn any) uintptr {
	return reflect.ValueOf(fn).Pointer()
}
