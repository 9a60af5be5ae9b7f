package graph

import "github.com/katalvlaran/lvnoise/module"

// Inspect walks the graph under root and summarises it. Empty slots are
// counted rather than reported; use Validate to reject them.
//
// Complexity: O(V + E) time, O(V) memory.
func Inspect(root module.Module, opts ...Option) (Stats, error) {
	var st Stats
	depth := make(map[module.Module]int)
	parents := make(map[module.Module]int)

	w := newWalker(opts)
	w.edge = func(_ module.Module, _ int, src module.Module) {
		parents[src]++
	}
	w.visit = func(m module.Module) error {
		st.Nodes++
		if m.SourceCount() == 0 {
			st.Generators++
		}

		// Sources are Black already, so their depth is known.
		d := 0
		for i := 0; i < m.SourceCount(); i++ {
			if src, err := m.Source(i); err == nil && depth[src] > d {
				d = depth[src]
			}
		}
		depth[m] = d + 1

		return nil
	}

	if err := w.run(root); err != nil {
		return Stats{}, err
	}

	for _, n := range parents {
		if n > 1 {
			st.Shared++
		}
	}
	st.Depth = depth[root]
	st.Unset = w.unset

	return st, nil
}
