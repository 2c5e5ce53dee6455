package functional_test

import (
	"fmt"
	"strings"

	"github.com/rogpeppe/sfn/functional"
)

type greeter struct {
	greeting string
}

func (g greeter) Greet(name string, times int) string {
	return strings.TrimSpace(strings.Repeat(g.greeting+", "+name+"! ", times))
}

func Example() {
	greet := functional.MethodOf[greeter]("Greet")
	fmt.Println(functional.Classify(greet).Kind, functional.FunctionTypeOf(greet))

	// Fix the receiver and the repeat count, leaving the name.
	hello := functional.Must(functional.BindFront(greet, greeter{"Hello"}))
	hello = functional.Must(functional.BindBack(hello, 1))

	// Feed it from a function that computes the name, and
	// tidy the result.
	upper := functional.Must(functional.Compose(strings.ToUpper, functional.Must(functional.Compose(hello, func() string {
		return "gopher"
	}))))
	fmt.Println(upper.Signature(), functional.As[func() string](upper)())

	fmt.Println(functional.Castable(hello, functional.SignatureOf[func(int)]()))
	_, err := functional.Cast(functional.SignatureOf[func(int)](), hello)
	fmt.Println(err)
	// Output:
	// member function func(functional_test.greeter, string, int) string
	// func() string HELLO, GOPHER!
	// false
	// functional: castable constraint not satisfied: parameter 0: cannot construct string from int
}

func ExampleBindFront() {
	add := func(a, b int) int { return a + b }
	inc := functional.As[func(int) int](functional.Must(functional.BindFront(add, 1)))
	fmt.Println(inc(41))
	// Output:
	// 42
}

func ExampleComposeBack() {
	div := func(a, b float64) float64 { return a / b }
	count := func() int { return 4 }
	quarter := functional.Must(functional.ComposeBack(div, count))
	fmt.Println(quarter.Signature(), functional.As[func(float64) float64](quarter)(10))
	// Output:
	// func(float64) float64 2.5
}

func ExampleSequence() {
	s := functional.Must(functional.Sequence(
		func(name string) { fmt.Println("checking", name) },
		func(name string) bool { return name != "" },
	))
	fmt.Println(s.Call("x"))
	// Output:
	// checking x
	// [true]
}
