package functional

import (
	"reflect"

	"github.com/rogpeppe/sfn/typelist"
)

// ComposableFront reports whether g and f can be composed by
// [ComposeFront]: f has at least one result, g has at least as many
// parameters as f has results, and each of g's leading parameters is
// constructible from the corresponding result of f.
func ComposableFront(g, f any) bool {
	return checkCompose(true, false, g, f) == nil
}

// ComposableBack is like [ComposableFront] for g's trailing parameters.
func ComposableBack(g, f any) bool {
	return checkCompose(false, false, g, f) == nil
}

// Composable reports whether g and f can be composed by [Compose]:
// they are composable front and g takes exactly as many parameters
// as f returns results.
func Composable(g, f any) bool {
	return checkCompose(true, true, g, f) == nil
}

func composeOp(front, exact bool) string {
	switch {
	case exact:
		return "composable"
	case front:
		return "composable front"
	}
	return "composable back"
}

func checkCompose(front, exact bool, g, f any) error {
	op := composeOp(front, exact)
	var v violations
	gsig, gok := v.invocable("g", g)
	fsig, fok := v.invocable("f", f)
	if !gok || !fok {
		return v.err(op)
	}
	k := fsig.Out.Len()
	if k == 0 {
		v.addf("f has no results")
		return v.err(op)
	}
	if gsig.Arity() < k {
		v.addf("g has %d parameters, fewer than the %d results of f", gsig.Arity(), k)
		return v.err(op)
	}
	if exact && gsig.Arity() != k {
		v.addf("g has %d parameters, not exactly the %d results of f", gsig.Arity(), k)
	}
	fed, _ := splitFed(front, gsig.In, k)
	for i, to := range fed.All() {
		if from := fsig.Out.At(i); !constructible(to, from) {
			v.addf("g parameter %v: cannot construct from result %d of f (%v)", to, i, from)
		}
	}
	return v.err(op)
}

// splitFed splits g's parameters into the k that f's
// results feed and those the caller supplies.
func splitFed(front bool, params typelist.List, k int) (fed, rest typelist.List) {
	if front {
		return params.Sublist(0, k), params.Sublist(k, typelist.NPos)
	}
	n := params.Len() - k
	return params.Sublist(n, typelist.NPos), params.Sublist(0, n)
}

// ComposeFront returns a function that calls f with its leading
// arguments, constructs g's first parameters from f's results, and
// calls g with them followed by its remaining arguments. Its parameters
// are f's followed by g's unfed ones; its results are g's.
//
// For example, with minus and sum both func(int, int) int,
// ComposeFront(minus, sum) called with (4, 3, 2) returns
// minus(sum(4, 3), 2).
//
// The result is noexcept if both g and f are.
func ComposeFront(g, f any) (Func, error) {
	return compose(true, false, g, f)
}

// ComposeBack is like [ComposeFront] but f's results feed g's last
// parameters. Its parameters are g's unfed ones followed by f's.
func ComposeBack(g, f any) (Func, error) {
	return compose(false, false, g, f)
}

// Compose returns the pipeline that feeds the results of f to g,
// which must take exactly those parameters: it is [ComposeFront]
// restricted to a g with nothing left to supply.
func Compose(g, f any) (Func, error) {
	return compose(true, true, g, f)
}

func compose(front, exact bool, g, f any) (Func, error) {
	op := "compose back"
	switch {
	case exact:
		op = "compose"
	case front:
		op = "compose front"
	}
	if err := checkCompose(front, exact, g, f); err != nil {
		logRejected(op, err)
		return Func{}, err
	}
	gfn, err := Unwrap(g)
	if err != nil {
		return Func{}, err
	}
	ffn, err := Unwrap(f)
	if err != nil {
		return Func{}, err
	}
	k := ffn.sig.Out.Len()
	fedList, rest := splitFed(front, gfn.sig.In, k)
	fed := fedList.Types()
	nf := ffn.sig.Arity()
	nrest := rest.Len()

	sig := Signature{
		Out:      gfn.sig.Out,
		NoExcept: gfn.sig.NoExcept && ffn.sig.NoExcept,
	}
	if front {
		sig.In = ffn.sig.In.Concat(rest)
	} else {
		sig.In = rest.Concat(ffn.sig.In)
	}
	return synthesize(op, sig, []Func{gfn, ffn}, func(args []reflect.Value) []reflect.Value {
		var fargs, gargs []reflect.Value
		if front {
			fargs, gargs = args[:nf], args[nf:]
		} else {
			gargs, fargs = args[:nrest], args[nrest:]
		}
		results := call(ffn.v, fargs)
		in := make([]reflect.Value, 0, k+nrest)
		if !front {
			in = append(in, gargs...)
		}
		for i, r := range results {
			in = append(in, construct(r, fed[i]))
		}
		if front {
			in = append(in, gargs...)
		}
		return call(gfn.v, in)
	}), nil
}
