// Package functional classifies callable values, extracts their
// signatures and builds new callables from old ones.
//
// # Callable entities
//
// A callable entity is one of:
//
//   - a Go function value, or a [Func] built by this package;
//   - a reference to a function: a pointer to a function variable;
//   - a member function: a [Method], obtained with [MethodOf];
//   - any of the above wrapped in [Nothrow], which declares that it
//     never panics (its noexcept specifier).
//
// An abstract signature, either a [Signature] or a reflect.Type of kind
// Func, describes a function without denoting one. [Classify] tells
// them all apart and reports the [Signature] of each: a member
// function's signature takes its receiver as the first parameter.
//
// # Transformers
//
// [Unwrap], [Sequence], [Cast], [Reinterpret], [BindFront], [BindBack],
// [ComposeFront], [ComposeBack] and [Compose] each return a new [Func].
// Each transformer is guarded by a capability predicate ([Sequencable],
// [Castable], [Reinterpretable], [BindableFront], [BindableBack],
// [ComposableFront], [ComposableBack], [Composable]) that can be
// queried on its own and accepts abstract signatures as well as
// callables. The predicate and the transformer run the same check: when
// the predicate fails, the transformer returns a *[ConstraintError]
// listing every violation, and nothing is called. A nil function fails
// every predicate that would need to call it.
//
// The checks happen when callables are composed, not when they are
// called, so composing everything up front (with [Must] if the
// composition is known to be valid) catches every mismatch before the
// program does any work.
//
// # Cost
//
// Functions built by this package are reflect.MakeFunc closures. Calling
// one costs a reflective call plus one per callee, and each holds its
// callees and any bound values. Where a transformer has nothing to
// adapt (a cast to the callable's own signature, a bind of no values, a
// sequence of one callable) it returns the original function unchanged.
package functional
