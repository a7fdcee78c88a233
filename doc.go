// Package optkit recognizes short and long command line options in a
// single pass over an argument vector.
//
// Options are registered into a Registry before parsing begins; a
// Scanner then walks argv once, binds option values, collects positional
// arguments and reports the first usage error it meets. The App type
// bundles both with program metadata and GNU-style --help/--version
// rendering.
package optkit
