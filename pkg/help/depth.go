package help

import (
	"fmt"
	"sync"
)

// MaxDepth bounds the parent chain of any node. A longer chain can only come from a cycle in the
// command tree.
const MaxDepth = 64

// Depths is the process-wide depth cache shared by formatters that do not bring their own.
var Depths = &DepthResolver{}

// DepthResolver computes and caches the nesting depth of nodes. The zero value is ready to use and
// safe for concurrent use.
type DepthResolver struct {
	cache sync.Map // Node -> int
}

// Depth returns the number of ancestors of n: 0 for the root command.
//
// The parent chain is walked at most once per node; every node visited on the way is cached too.
// Depth panics if the chain exceeds [MaxDepth], which means the tree contains a cycle.
func (r *DepthResolver) Depth(n Node) int {
	if d, ok := r.cache.Load(n); ok {
		return d.(int)
	}
	// chain[0] is n, chain[i+1] is the parent of chain[i].
	chain := []Node{n}
	base := -1
	for cur := n; ; {
		parent := cur.Parent()
		if parent == nil {
			break
		}
		if d, ok := r.cache.Load(parent); ok {
			base = d.(int)
			break
		}
		if len(chain) > MaxDepth {
			panic(fmt.Sprintf("internal error: command %q: parent chain exceeds %d levels, the command tree has a cycle",
				n.Name(), MaxDepth))
		}
		chain = append(chain, parent)
		cur = parent
	}
	// The last node in chain is either the root (base -1) or a child of a cached ancestor.
	for i := len(chain) - 1; i >= 0; i-- {
		base++
		r.cache.Store(chain[i], base)
	}
	return base
}

// Forget drops the cached depth of n. Frameworks call it when a node is attached to a different
// parent after its depth was computed.
func (r *DepthResolver) Forget(n Node) {
	r.cache.Delete(n)
}
