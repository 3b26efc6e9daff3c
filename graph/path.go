package graph

import (
	"github.com/doubleopen-project/spdx-go/errors"
)

// FindPath returns a shortest directed path from one identifier to
// another as an interleaved sequence: identifier, relationship type,
// identifier, and so on, always starting and ending with an identifier.
// A path from a node to itself is the single-element sequence.
//
// The search follows relationship direction and treats every edge as
// unit cost. When either endpoint is missing from the graph, or no path
// exists, FindPath returns an error matching errors.ErrNotFound.
func FindPath(g *Graph, from, to string) ([]string, error) {
	if !g.HasNode(from) {
		return nil, errors.Wrapf(errors.ErrNotFound, "element %q is not in the graph", from)
	}
	if !g.HasNode(to) {
		return nil, errors.Wrapf(errors.ErrNotFound, "element %q is not in the graph", to)
	}
	if from == to {
		return []string{from}, nil
	}

	// Breadth-first search; cameBy remembers the edge that first
	// reached each node so the path can be rebuilt backwards.
	cameBy := map[string]Edge{from: {}}
	queue := []string{from}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, edge := range g.Edges(current) {
			if _, visited := cameBy[edge.Target]; visited {
				continue
			}
			cameBy[edge.Target] = edge
			if edge.Target == to {
				return rebuildPath(cameBy, from, to), nil
			}
			queue = append(queue, edge.Target)
		}
	}

	return nil, errors.Wrapf(errors.ErrNotFound, "no path from %q to %q", from, to)
}

// rebuildPath walks the visited edges backwards from the target and
// interleaves identifiers with relationship types.
func rebuildPath(cameBy map[string]Edge, from, to string) []string {
	var reversed []string
	for current := to; current != from; {
		edge := cameBy[current]
		reversed = append(reversed, current, string(edge.Kind))
		current = edge.Source
	}
	reversed = append(reversed, from)

	path := make([]string, 0, len(reversed))
	for i := len(reversed) - 1; i >= 0; i-- {
		path = append(path, reversed[i])
	}
	return path
}
