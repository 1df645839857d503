// Package layout implements a proxy-based box layout engine.
//
// The engine computes preferred sizes and final bounds for a tree of
// elements arranged in columns, rows, boxes, scale boxes, border regions,
// stacks and grids. It never owns the element tree: it reads each element's
// [SizeConstraints], its managed children and its content measurement, and
// writes exactly one set of bounds per element when arranging.
//
// # Proxies
//
// Every call builds a fresh tree of proxies that mirrors the element subtree.
// A proxy snapshots its element's constraints and memoizes best sizes; it
// holds no geometry. Each container's algorithm is a pure function from a
// size to a list of [Placement] values (child index, bounds and scale).
// Measurement runs that function in a dry run, with the unknown extent set
// to -1, and reads the extent back from the placements. [Arrange] commits
// the same placements through CommitBounds and CommitScale, and [Plan]
// returns them without committing anything:
//
//	w := layout.BestWidth(toolbar, -1) // no element is touched
//	h := layout.BestHeight(toolbar, w)
//	layout.Arrange(toolbar, graphics.RectFromLTWH(0, 0, w, h))
//
// Because measurement and arrangement share one algorithm they can never
// disagree: an element arranged at its preferred size leaves no extra space.
//
// # Main axis rules
//
// Adjacent margins and container spacing collapse by maximum, never by sum.
// Leftover space along the main axis goes to growing children in whole
// units, with the remainder handed one unit at a time to the first growers
// in child order. Without growers, positive leftover space shifts children
// by the container alignment or a child's lean. Negative leftover space
// without growers is overflow and is left as is.
//
// # Concurrency
//
// The engine is synchronous and keeps no shared state. Calls may nest on one
// goroutine (an element's Measure may call [PrefWidth] on a child), but a
// subtree must not be mutated while it is being laid out.
package layout
