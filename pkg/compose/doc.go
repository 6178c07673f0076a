// Package compose builds single-argument functions out of other single-argument functions.
//
// Composition follows the mathematical convention: the rightmost function is applied first and its result is fed
// to the function on its left, so Compose3(f, g, h)(x) == f(g(h(x))). Adjacent functions are checked by the
// compiler through type parameters, which means an incompatible pipeline never builds.
//
// When every function shares the same input and output type, Compose accepts any number of them. The Pipe variants
// read left-to-right for callers who prefer to list steps in execution order.
package compose
