// Copyright 2016 The Adjacent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sketch

import (
	"github.com/cpmech/gosl/io"
	"github.com/katalvlaran/lvlath/core"

	"github.com/evil-spirit/adjacent-go/constraint"
	"github.com/evil-spirit/adjacent-go/geom"
)

// LoopReport describes the closed cycles found among the sketch's
// entities. A loop of entities is the graph-theoretic precondition for a
// fully-constrained closed profile.
type LoopReport struct {
	HasLoop   bool
	BackEdges int
}

// pointUnion is a small union-find over point identity, used to collapse
// a Line's own endpoint with whatever it has been made PointsCoincident
// with — two entities that share an endpoint, directly or through a
// coincidence constraint, are connected in the loop graph.
type pointUnion struct {
	parent map[*geom.Point]*geom.Point
}

func newPointUnion() *pointUnion {
	return &pointUnion{parent: make(map[*geom.Point]*geom.Point)}
}

func (u *pointUnion) find(p *geom.Point) *geom.Point {
	root, ok := u.parent[p]
	if !ok {
		u.parent[p] = p
		return p
	}
	if root == p {
		return p
	}
	rep := u.find(root)
	u.parent[p] = rep
	return rep
}

func (u *pointUnion) union(a, b *geom.Point) {
	ra, rb := u.find(a), u.find(b)
	if ra != rb {
		u.parent[ra] = rb
	}
}

// buildGraph turns the sketch's Segmentary entities into an undirected
// graph: one vertex per entity, with an edge joining any two entities
// that share an endpoint (by pointer identity, after union-ing through
// every PointsCoincident constraint).
func (o *Sketch) buildGraph() (*core.Graph, []geom.Entity) {
	segments := make([]geom.Entity, 0, len(o.entities))
	for _, e := range o.entities {
		if _, ok := e.(geom.Segmentary); ok {
			segments = append(segments, e)
		}
	}

	g := core.NewGraph(core.WithDirected(false))
	ids := make(map[geom.Entity]string, len(segments))
	for i, e := range segments {
		id := io.Sf("v%d", i)
		ids[e] = id
		g.AddVertex(id)
	}

	u := newPointUnion()
	for _, c := range o.constraints {
		if pc, ok := c.(*constraint.PointsCoincident); ok {
			u.union(pc.P0, pc.P1)
		}
	}

	byRep := make(map[*geom.Point][]string)
	for _, e := range segments {
		seg := e.(geom.Segmentary)
		for _, p := range []*geom.Point{seg.Source(), seg.Target()} {
			rep := u.find(p)
			byRep[rep] = append(byRep[rep], ids[e])
		}
	}

	seen := make(map[[2]string]bool)
	for _, idsAtPoint := range byRep {
		for i := 0; i < len(idsAtPoint); i++ {
			for j := i + 1; j < len(idsAtPoint); j++ {
				a, b := idsAtPoint[i], idsAtPoint[j]
				if a == b {
					continue
				}
				if a > b {
					a, b = b, a
				}
				key := [2]string{a, b}
				if seen[key] {
					continue
				}
				seen[key] = true
				g.AddEdge(a, b, 0)
			}
		}
	}

	return g, segments
}

// analyzeLoops walks every connected component with a DFS, counting back
// edges (an edge to an already-visited, non-parent vertex) — the
// standard undirected cycle test: any back edge means the component
// contains a closed loop.
func (o *Sketch) analyzeLoops() LoopReport {
	g, segments := o.buildGraph()
	visited := make(map[string]bool, len(segments))
	parent := make(map[string]string, len(segments))
	report := LoopReport{}

	var walk func(id string)
	walk = func(id string) {
		visited[id] = true
		neighbors, err := g.Neighbors(id)
		if err != nil {
			return
		}
		for _, edge := range neighbors {
			other := edge.To
			if other == id {
				other = edge.From
			}
			if !visited[other] {
				parent[other] = id
				walk(other)
			} else if parent[id] != other {
				report.BackEdges++
				report.HasLoop = true
			}
		}
	}

	for i := range segments {
		id := io.Sf("v%d", i)
		if !visited[id] {
			walk(id)
		}
	}

	// Each undirected cycle edge is discovered from both endpoints.
	report.BackEdges /= 2
	return report
}
