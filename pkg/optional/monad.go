package optional

// Map applies f to the value of o. f is not called when o is empty.
func Map[A, B any](o Optional[A], f func(A) B) Optional[B] {
	if !o.present {
		return None[B]()
	}

	return Some(f(o.value))
}

// Lift wraps a plain value into a present Optional.
func Lift[A any](a A) Optional[A] {
	return Some(a)
}

// LiftFunc turns f into a function between optionals.
func LiftFunc[A, B any](f func(A) B) func(Optional[A]) Optional[B] {
	return func(o Optional[A]) Optional[B] {
		return Map(o, f)
	}
}

// Ap applies the wrapped function to the wrapped value when both are present.
func Ap[A, B any](of Optional[func(A) B], ov Optional[A]) Optional[B] {
	if !of.present || !ov.present {
		return None[B]()
	}

	return Some(of.value(ov.value))
}

// ApTo is Ap with the value first.
func ApTo[A, B any](ov Optional[A], of Optional[func(A) B]) Optional[B] {
	return Ap(of, ov)
}

// Flatten removes one level of nesting. Absence at either level gives an empty Optional.
func Flatten[A any](oo Optional[Optional[A]]) Optional[A] {
	if !oo.present {
		return None[A]()
	}

	return oo.value
}

// Bind feeds the value of o to f. f is not called when o is empty.
func Bind[A, B any](o Optional[A], f func(A) Optional[B]) Optional[B] {
	return Flatten(Map(o, f))
}

// ComposeK chains g then h. h is never called with a missing intermediate value.
func ComposeK[A, B, C any](g func(A) Optional[B], h func(B) Optional[C]) func(A) Optional[C] {
	return func(a A) Optional[C] {
		return Bind(g(a), h)
	}
}

// Filter keeps the value of o only when pred holds.
func Filter[A any](o Optional[A], pred func(A) bool) Optional[A] {
	if !o.present || !pred(o.value) {
		return None[A]()
	}

	return o
}
