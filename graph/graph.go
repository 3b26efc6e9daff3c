// Package graph builds a relationship graph over an SPDX document and
// answers path queries on it. Nodes are SPDX identifiers, edges are the
// document's relationships labeled with their relationship type.
package graph

import (
	"fmt"
	"sort"

	"github.com/doubleopen-project/spdx-go/logger"
	"github.com/doubleopen-project/spdx-go/spdx"
)

// Node is one SPDX element in the graph.
type Node struct {
	// ID is the element's SPDX identifier.
	ID string
}

// Edge is one directed, labeled relationship between two nodes.
type Edge struct {
	Source string
	Target string
	Kind   spdx.RelationshipType
}

// Graph is a directed multigraph over the relationships of a document.
// Parallel edges with different kinds between the same pair of nodes are
// kept separate. The graph is immutable after Build and safe for
// concurrent readers.
type Graph struct {
	nodes map[string]Node

	// adjacency holds the outgoing edges of each node in input order.
	adjacency map[string][]Edge

	edgeCount int
}

// Build constructs the relationship graph of a document. Nodes are
// created lazily from the endpoints of relationships; elements that take
// part in no relationship do not appear in the graph.
func Build(document *spdx.Document) *Graph {
	g := &Graph{
		nodes:     make(map[string]Node),
		adjacency: make(map[string][]Edge),
	}

	for _, rel := range document.Relationships {
		g.addNode(rel.SPDXElementID)
		g.addNode(rel.RelatedSPDXElement)
		g.adjacency[rel.SPDXElementID] = append(g.adjacency[rel.SPDXElementID], Edge{
			Source: rel.SPDXElementID,
			Target: rel.RelatedSPDXElement,
			Kind:   rel.RelationshipType,
		})
		g.edgeCount++
	}

	logger.Logger.Debugw("built relationship graph",
		"nodes", len(g.nodes), "edges", g.edgeCount)
	return g
}

func (g *Graph) addNode(id string) {
	if _, exists := g.nodes[id]; !exists {
		g.nodes[id] = Node{ID: id}
	}
}

// HasNode reports whether the identifier takes part in any relationship.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// NodeCount returns the number of distinct identifiers in the graph.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of relationships in the graph, counting
// parallel edges separately.
func (g *Graph) EdgeCount() int {
	return g.edgeCount
}

// Edges returns the outgoing edges of a node in input order. The
// returned slice is shared with the graph and must not be modified.
func (g *Graph) Edges(id string) []Edge {
	return g.adjacency[id]
}

// NodeIDs returns the sorted identifiers of all nodes.
func (g *Graph) NodeIDs() []string {
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// String summarizes the graph for logs.
func (g *Graph) String() string {
	return fmt.Sprintf("graph(%d nodes, %d edges)", len(g.nodes), g.edgeCount)
}
