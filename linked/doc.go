// Package linked implements chains of arrays: doubly linked lists whose
// nodes each own an array.Array.
//
// Links live in an arena owned by a Chain and are addressed by Link handles
// instead of pointers. A handle carries the arena slot and the generation the
// slot had when the link was created, so a handle that outlived its link is
// detected and rejected with errs.ErrInvalidHandle rather than silently
// addressing whatever link reuses the slot.
//
//	c := linked.NewChain()
//	head, _ := c.CreateLink(linked.NoLink, 8, 16)
//	tail, _ := c.CreateLink(head, 8, 16)      // head <-> tail
//	mid, _ := c.CreateLink(head, 8, 16)       // head <-> mid <-> tail
//	n, _ := c.Collapse(mid)                   // n == 3
//
// Chains are not safe for concurrent use.
package linked

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'stdx'
func tracer() tracing.Trace {
	return tracing.Select("stdx")
}
