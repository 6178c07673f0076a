// Package model provides the data structures shared by the pipeline package and its options.
// It defines the information attached to each step and each run, and the hooks a pipeline option implements.
package model
