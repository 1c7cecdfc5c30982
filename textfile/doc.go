/*
Package textfile loads UTF-8 text files into word indexes.

Files are read in fragments by a background goroutine. Loaded fragments are
broadcast to subscribers, one of which builds the word index while another
may report progress. Words cut in half at a fragment boundary are carried over
to the next fragment. The Load API itself is synchronous.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ostree'
func tracer() tracing.Trace {
	return tracing.Select("ostree")
}
