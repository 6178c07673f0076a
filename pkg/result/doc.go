// Package result is the counterpart of package optional for computations whose failures need a reason.
//
// A Result holds either a value or an error. Map, Bind and ComposeK short-circuit on the first error exactly as the
// optional operations short-circuit on absence, and the error that stopped the chain is returned unchanged. Results
// and optionals convert into each other with FromOptional and ToOptional.
package result
