// Package optional provides a value that may be absent, together with the functor, applicative and monad operations
// needed to chain fallible computations without checking for presence at each step.
//
// Absence is the only failure an Optional can express. Once a computation yields an empty Optional every operation
// downstream of it returns an empty Optional without calling the function it was given, so a chain of Bind or
// ComposeK calls stops at the first missing value.
//
// Go has no higher-kinded types, so the operations are package-level functions rather than methods on an interface:
//
//	Map(o, f)       functor:      Optional[A], func(A) B           -> Optional[B]
//	Lift(v)         applicative:  A                                -> Optional[A]
//	Ap(of, ov)      applicative:  Optional[func(A) B], Optional[A] -> Optional[B]
//	Flatten(oo)     monad:        Optional[Optional[A]]            -> Optional[A]
//	Bind(o, f)      monad:        Optional[A], func(A) Optional[B] -> Optional[B]
//	ComposeK(g, h)  monad:        func(A) Optional[B], func(B) Optional[C] -> func(A) Optional[C]
package optional
