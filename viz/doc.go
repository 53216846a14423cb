/*
Package viz renders bplus trees for inspection.

The package consumes only the read-only node walker of the tree package
(`WalkNodes`); it is never required for correctness and must not be. Three
renderings are provided:

  - nested text (Render / Fprint): depth-first and right-to-left, so the
    output reads like a tree rotated onto its side, largest keys on top,
  - colored console output (FprintConsole) with width-aware wrapping of
    leaf entries,
  - an HTML document (WriteHTML) of nested lists.

Options can add node identity, full key lists and parent identity to each
line, mirroring what one wants while debugging split and merge paths.
*/
package viz

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
