// Package logging provides a pipeline option writing structured logs with zerolog.
//
// Runs are logged at info level with their identifier, whether they produced a value and how long they took. Step
// evaluations are logged at debug level and skipped steps at trace level.
package logging
