// Package observability defines the logging boundary used across the
// exploration pipeline.
//
// The pipeline never logs through a concrete backend directly; every
// component accepts a [Logger] (or pulls one from the context) so that
// applications can route records wherever they want. The slogobs subpackage
// provides the standard-library adapter used by the examples.
package observability
