// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"math"
	"runtime"

	"github.com/cpmech/gravsim/errs"
	"golang.org/x/sync/errgroup"
)

// maxDepth bounds tree depth during construction. Two particles closer
// than the floating-point precision of their containing cube, but not
// bit-identical, would otherwise force subdivision without end; this is
// the backstop for that pathological case. Bit-identical particles are
// handled separately by merging at the leaf (see octNode.bodies).
const maxDepth = 64

// octNode is one cube of the Barnes-Hut arena. Nodes are addressed by
// their index into Tree.nodes rather than by pointer, so the tree is one
// contiguous allocation with no recursive ownership to unwind.
type octNode struct {
	center   [3]float64
	width    float64 // full side length of the cube
	depth    int
	children [8]int32 // -1 when absent; only meaningful once bodies == nil
	bodies   []int32  // non-nil only for an (unsubdivided) leaf; len > 1 only when particles are bit-identical
	mass     float64  // M, aggregate mass of the subtree
	com      [3]float64
}

// Tree is a Barnes-Hut octree built fresh for one acceleration evaluation
// and discarded afterwards.
type Tree struct {
	nodes []octNode
	r, m  []float64
}

func absent() [8]int32 {
	return [8]int32{-1, -1, -1, -1, -1, -1, -1, -1}
}

func childrenAllAbsent(c [8]int32) bool {
	for _, v := range c {
		if v != -1 {
			return false
		}
	}
	return true
}

// BuildOctree constructs a Barnes-Hut octree over the cube centered at
// center with full side length width, containing the N bodies described
// by r (N*3) and m (N). It fails with a GeometryError if any particle
// lies outside the root cube.
func BuildOctree(center [3]float64, width float64, r, m []float64) (*Tree, error) {
	n := len(m)
	t := &Tree{r: r, m: m}
	t.nodes = make([]octNode, 1, 8*n+1)
	t.nodes[0] = octNode{center: center, width: width, depth: 0, children: absent()}

	half := width / 2
	for i := 0; i < n; i++ {
		x, y, z := r[3*i], r[3*i+1], r[3*i+2]
		if math.Abs(x-center[0]) > half || math.Abs(y-center[1]) > half || math.Abs(z-center[2]) > half {
			return nil, errs.Geometryf("particle %d at (%v,%v,%v) lies outside root cube centered at %v with width %v", i, x, y, z, center, width)
		}
	}
	for i := 0; i < n; i++ {
		if err := t.insertOne(int32(i)); err != nil {
			return nil, err
		}
	}
	t.aggregate()
	return t, nil
}

// octantOf returns the 3-bit octant index of body i relative to center.
func (t *Tree) octantOf(i int32, center [3]float64) int {
	oct := 0
	if t.r[3*i] >= center[0] {
		oct |= 1
	}
	if t.r[3*i+1] >= center[1] {
		oct |= 2
	}
	if t.r[3*i+2] >= center[2] {
		oct |= 4
	}
	return oct
}

// childCenter returns the center of octant oct of a node with the given
// center and full width.
func childCenter(center [3]float64, width float64, oct int) [3]float64 {
	q := width / 4
	c := center
	if oct&1 != 0 {
		c[0] += q
	} else {
		c[0] -= q
	}
	if oct&2 != 0 {
		c[1] += q
	} else {
		c[1] -= q
	}
	if oct&4 != 0 {
		c[2] += q
	} else {
		c[2] -= q
	}
	return c
}

// coincident reports whether particles i and j have bit-identical
// coordinates.
func (t *Tree) coincident(i, j int32) bool {
	return t.r[3*i] == t.r[3*j] && t.r[3*i+1] == t.r[3*j+1] && t.r[3*i+2] == t.r[3*j+2]
}

// ensureChild returns the index of octant oct of node parentIdx, creating
// it if absent.
func (t *Tree) ensureChild(parentIdx int32, oct int) (int32, error) {
	if c := t.nodes[parentIdx].children[oct]; c != -1 {
		return c, nil
	}
	parent := t.nodes[parentIdx]
	if parent.depth+1 > maxDepth {
		return 0, errs.Geometryf("octree exceeded maximum depth %d: particles too close together to separate", maxDepth)
	}
	child := octNode{
		center:   childCenter(parent.center, parent.width, oct),
		width:    parent.width / 2,
		depth:    parent.depth + 1,
		children: absent(),
	}
	idx := int32(len(t.nodes))
	t.nodes = append(t.nodes, child)
	t.nodes[parentIdx].children[oct] = idx
	return idx, nil
}

// insertOne inserts body i into the tree using an explicit stack instead
// of recursion, per the octree's arena-of-indices design: descending into
// a node that must be subdivided pushes the displaced resident(s) as
// pending work rather than recursing into them in place.
func (t *Tree) insertOne(i int32) error {
	type frame struct {
		node, body int32
	}
	stack := []frame{{0, i}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nodeIdx, body := f.node, f.body

		for {
			bodies := t.nodes[nodeIdx].bodies
			children := t.nodes[nodeIdx].children

			if bodies == nil && childrenAllAbsent(children) {
				t.nodes[nodeIdx].bodies = []int32{body}
				break
			}

			if bodies != nil {
				resident := bodies[0]
				if t.coincident(body, resident) {
					t.nodes[nodeIdx].bodies = append(t.nodes[nodeIdx].bodies, body)
					break
				}
				center := t.nodes[nodeIdx].center
				t.nodes[nodeIdx].bodies = nil
				for _, b := range bodies {
					oct := t.octantOf(b, center)
					childIdx, err := t.ensureChild(nodeIdx, oct)
					if err != nil {
						return err
					}
					stack = append(stack, frame{childIdx, b})
				}
				oct := t.octantOf(body, center)
				childIdx, err := t.ensureChild(nodeIdx, oct)
				if err != nil {
					return err
				}
				nodeIdx = childIdx
				continue
			}

			center := t.nodes[nodeIdx].center
			oct := t.octantOf(body, center)
			childIdx, err := t.ensureChild(nodeIdx, oct)
			if err != nil {
				return err
			}
			nodeIdx = childIdx
		}
	}
	return nil
}

// aggregate computes M and s bottom-up for every node. Children are
// always appended to the arena after their parent, so walking the arena
// back to front visits every child before its parent.
func (t *Tree) aggregate() {
	for idx := len(t.nodes) - 1; idx >= 0; idx-- {
		n := &t.nodes[idx]
		var mass float64
		var com [3]float64
		if n.bodies != nil {
			for _, b := range n.bodies {
				mb := t.m[b]
				mass += mb
				com[0] += mb * t.r[3*b]
				com[1] += mb * t.r[3*b+1]
				com[2] += mb * t.r[3*b+2]
			}
		} else {
			for _, c := range n.children {
				if c == -1 {
					continue
				}
				cn := &t.nodes[c]
				mass += cn.mass
				com[0] += cn.mass * cn.com[0]
				com[1] += cn.mass * cn.com[1]
				com[2] += cn.mass * cn.com[2]
			}
		}
		if mass > 0 {
			com[0] /= mass
			com[1] /= mass
			com[2] /= mass
		}
		n.mass = mass
		n.com = com
	}
}

// Accelerations walks the tree once per body using the opening-angle
// acceptance criterion: a node of side w at distance d is treated as a
// single pseudo-body when w/d < theta. theta=0 forces full descent,
// recovering the exact brute-force result modulo reduction order.
func (t *Tree) Accelerations(G, eps, theta float64) ([]float64, error) {
	n := len(t.m)
	a := make([]float64, 3*n)
	if n == 0 {
		return a, nil
	}
	eps2 := eps * eps

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		if lo >= hi {
			continue
		}
		lo, hi := lo, hi
		g.Go(func() error {
			stack := make([]int32, 0, 64)
			for i := lo; i < hi; i++ {
				ax, ay, az := t.accelOn(int32(i), G, eps2, theta, stack)
				a[3*i] = ax
				a[3*i+1] = ay
				a[3*i+2] = az
			}
			return nil
		})
	}
	_ = g.Wait()
	return a, nil
}

func (t *Tree) accelOn(i int32, G, eps2, theta float64, stack []int32) (ax, ay, az float64) {
	xi, yi, zi := t.r[3*i], t.r[3*i+1], t.r[3*i+2]
	stack = stack[:0]
	stack = append(stack, 0)
	for len(stack) > 0 {
		nodeIdx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := &t.nodes[nodeIdx]

		if n.bodies != nil {
			for _, j := range n.bodies {
				if j == i {
					continue
				}
				dx := t.r[3*j] - xi
				dy := t.r[3*j+1] - yi
				dz := t.r[3*j+2] - zi
				d2 := dx*dx + dy*dy + dz*dz
				inv := math.Pow(d2+eps2, -1.5)
				mj := t.m[j]
				ax += G * mj * dx * inv
				ay += G * mj * dy * inv
				az += G * mj * dz * inv
			}
			continue
		}

		dx := n.com[0] - xi
		dy := n.com[1] - yi
		dz := n.com[2] - zi
		d2 := dx*dx + dy*dy + dz*dz
		d := math.Sqrt(d2)
		if d > 0 && n.width/d < theta {
			inv := math.Pow(d2+eps2, -1.5)
			ax += G * n.mass * dx * inv
			ay += G * n.mass * dy * inv
			az += G * n.mass * dz * inv
			continue
		}
		for _, c := range n.children {
			if c != -1 {
				stack = append(stack, c)
			}
		}
	}
	return
}

// BarnesHut computes per-body acceleration by rebuilding the octree and
// evaluating it once per evaluation. It implements Provider.
type BarnesHut struct {
	G          float64
	Eps        float64
	RootCenter [3]float64
	RootWidth  float64
	Theta      float64
}

// Accelerations builds a fresh octree from r, m and evaluates it for
// every body. The tree is owned entirely by this call and is released
// (collected) before returning.
func (k BarnesHut) Accelerations(r, m []float64) ([]float64, error) {
	tree, err := BuildOctree(k.RootCenter, k.RootWidth, r, m)
	if err != nil {
		return nil, err
	}
	return tree.Accelerations(k.G, k.Eps, k.Theta)
}
