package compose

import "github.com/pkg/errors"

// ErrNoFunctions is the panic value of Compose when it is given no function.
var ErrNoFunctions = errors.New("at least one function must be given")

// Identity returns its argument.
func Identity[A any](a A) A {
	return a
}

// Compose2 returns f∘g.
func Compose2[A, B, C any](f func(B) C, g func(A) B) func(A) C {
	return func(a A) C {
		return f(g(a))
	}
}

// Compose3 returns f∘g∘h.
func Compose3[A, B, C, D any](f func(C) D, g func(B) C, h func(A) B) func(A) D {
	return func(a A) D {
		return f(g(h(a)))
	}
}

// Compose4 returns f∘g∘h∘i.
func Compose4[A, B, C, D, E any](f func(D) E, g func(C) D, h func(B) C, i func(A) B) func(A) E {
	return func(a A) E {
		return f(g(h(i(a))))
	}
}

// Compose5 returns f∘g∘h∘i∘j.
func Compose5[A, B, C, D, E, F any](f func(E) F, g func(D) E, h func(C) D, i func(B) C, j func(A) B) func(A) F {
	return func(a A) F {
		return f(g(h(i(j(a)))))
	}
}

// Compose folds fns right-to-left into a single function. The slice is copied, so changing it afterwards does not
// affect the returned function. It panics with ErrNoFunctions when fns is empty.
func Compose[T any](fns ...func(T) T) func(T) T {
	if len(fns) == 0 {
		panic(ErrNoFunctions)
	}

	if len(fns) == 1 {
		return fns[0]
	}

	steps := make([]func(T) T, len(fns))
	copy(steps, fns)

	return func(value T) T {
		for i := len(steps) - 1; i >= 0; i-- {
			value = steps[i](value)
		}

		return value
	}
}

// Pipe2 is Compose2 with its arguments in execution order.
func Pipe2[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return Compose2(g, f)
}

// Pipe3 is Compose3 with its arguments in execution order.
func Pipe3[A, B, C, D any](f func(A) B, g func(B) C, h func(C) D) func(A) D {
	return Compose3(h, g, f)
}
