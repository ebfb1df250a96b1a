// Sentigraph - Tweet Sentiment Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sentigraph

// Package graph lays out the tweet interaction network for rendering.
//
// Node positions are computed server-side with a Fruchterman-Reingold
// force-directed pass so every response carries renderable coordinates.
// The layout is fully deterministic: nodes start on a circle in edge-list
// order rather than at random positions, and forces accumulate in edge-list
// order, so the same edges always produce the same picture bit for bit.
package graph

import (
	"math"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/tomtom215/sentigraph/internal/models"
)

// Layout computes positioned interaction graphs. Safe for concurrent use;
// each Build call works on its own state.
type Layout struct {
	iterations int
}

// NewLayout returns a Layout running the given number of force-directed
// refinement passes per build.
func NewLayout(iterations int) *Layout {
	if iterations < 1 {
		iterations = 1
	}
	return &Layout{iterations: iterations}
}

// Build lays out the aggregated edges as a positioned directed graph.
// Node order follows first appearance in the edge list, which the database
// layer already sorts, so identical edge sets yield identical output.
func (l *Layout) Build(edges []models.NetworkEdge) *models.NetworkGraph {
	ids := make(map[string]int64)
	names := []string{}
	degrees := map[string]int{}

	intern := func(name string) int64 {
		if id, ok := ids[name]; ok {
			return id
		}
		id := int64(len(names))
		ids[name] = id
		names = append(names, name)
		return id
	}

	// pairs holds the deduplicated interned edge list in first-appearance
	// order. The attraction pass walks this slice, never g.Edges(): the
	// map-backed iterator yields edges in arbitrary order, and summing
	// forces in a different order changes the floats, so identical inputs
	// would stop producing identical positions.
	g := simple.NewDirectedGraph()
	pairs := make([][2]int, 0, len(edges))
	for _, e := range edges {
		from := intern(e.Source)
		to := intern(e.Target)
		degrees[e.Source]++
		degrees[e.Target]++
		// simple graphs reject self loops; they still count for degree
		// and still appear in the output edge list.
		if from == to {
			continue
		}
		if g.Node(from) == nil {
			g.AddNode(simple.Node(from))
		}
		if g.Node(to) == nil {
			g.AddNode(simple.Node(to))
		}
		if !g.HasEdgeFromTo(from, to) {
			g.SetEdge(simple.Edge{F: simple.Node(from), T: simple.Node(to)})
			pairs = append(pairs, [2]int{int(from), int(to)})
		}
	}
	// Nodes appearing only in self loops never made it into g but still
	// need a position, so positions are tracked per interned id instead.
	positions := l.layout(pairs, len(names))

	nodes := make([]models.NetworkNode, len(names))
	for i, name := range names {
		nodes[i] = models.NetworkNode{
			ID:     name,
			X:      positions[i].X,
			Y:      positions[i].Y,
			Degree: degrees[name],
		}
	}

	out := make([]models.NetworkEdge, len(edges))
	copy(out, edges)

	return &models.NetworkGraph{Nodes: nodes, Edges: out}
}

// layout runs Fruchterman-Reingold over the interned node set. The two
// classic sources of nondeterminism are fixed: initial placement is a unit
// circle walked in id order instead of random positions, and attraction
// walks the ordered pair list instead of an unordered edge set.
func (l *Layout) layout(pairs [][2]int, n int) []r2.Vec {
	pos := make([]r2.Vec, n)
	if n == 0 {
		return pos
	}
	if n == 1 {
		return pos // single node sits at the origin
	}

	for i := range pos {
		angle := 2 * math.Pi * float64(i) / float64(n)
		pos[i] = r2.Vec{X: math.Cos(angle), Y: math.Sin(angle)}
	}

	// Ideal pairwise distance for a 2x2 drawing area.
	k := math.Sqrt(4.0 / float64(n))
	temp := 0.1
	cool := temp / float64(l.iterations+1)

	disp := make([]r2.Vec, n)
	for iter := 0; iter < l.iterations; iter++ {
		for i := range disp {
			disp[i] = r2.Vec{}
		}

		// Repulsion between every pair.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				delta := r2.Sub(pos[i], pos[j])
				dist := math.Hypot(delta.X, delta.Y)
				if dist < 1e-9 {
					dist = 1e-9
					delta = r2.Vec{X: 1e-9}
				}
				force := k * k / dist
				push := r2.Scale(force/dist, delta)
				disp[i] = r2.Add(disp[i], push)
				disp[j] = r2.Sub(disp[j], push)
			}
		}

		// Attraction along edges, direction ignored.
		for _, p := range pairs {
			i, j := p[0], p[1]
			delta := r2.Sub(pos[i], pos[j])
			dist := math.Hypot(delta.X, delta.Y)
			if dist < 1e-9 {
				continue
			}
			force := dist * dist / k
			pull := r2.Scale(force/dist, delta)
			disp[i] = r2.Sub(disp[i], pull)
			disp[j] = r2.Add(disp[j], pull)
		}

		// Apply displacements, capped by the current temperature.
		for i := range pos {
			dist := math.Hypot(disp[i].X, disp[i].Y)
			if dist < 1e-9 {
				continue
			}
			step := math.Min(dist, temp)
			pos[i] = r2.Add(pos[i], r2.Scale(step/dist, disp[i]))
		}
		temp -= cool
		if temp < 0 {
			temp = 0
		}
	}

	return pos
}
