package community

import (
	"sort"

	"torlife/pkg/core"
)

// Count returns the number of communities in the grid: maximal groups of
// live cells connected through the 8 toroidally wrapped Moore directions.
// An all-dead grid has 0 communities and allocates no disjoint-set.
func Count(g *core.BoolGrid) int {
	if !g.AnyAlive() {
		return 0
	}
	d := link(g)
	seen := make(map[int]struct{})
	for i, alive := range g.Cells() {
		if alive {
			seen[d.find(i)] = struct{}{}
		}
	}
	return len(seen)
}

// Census returns the size of every community, largest first. An all-dead
// grid yields nil. len(Census(g)) always equals Count(g).
func Census(g *core.BoolGrid) []int {
	if !g.AnyAlive() {
		return nil
	}
	d := link(g)
	sizes := make(map[int]int)
	for i, alive := range g.Cells() {
		if alive {
			root := d.find(i)
			sizes[root] = d.size[root]
		}
	}
	out := make([]int, 0, len(sizes))
	for _, s := range sizes {
		out = append(out, s)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}

// link unions every live cell with each live cell among its 8 wrapped
// neighbors. Adjacency is symmetric so most unions repeat; repeats are
// no-ops. Dead cells stay singleton roots and are never counted.
func link(g *core.BoolGrid) *disjointSet {
	rows, cols := g.Rows(), g.Cols()
	cells := g.Cells()
	d := newDisjointSet(rows * cols)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			idx := g.Index(row, col)
			if !cells[idx] {
				continue
			}
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					nr, nc := g.Wrap(row+dr, col+dc)
					ni := g.Index(nr, nc)
					if cells[ni] {
						d.union(idx, ni)
					}
				}
			}
		}
	}
	return d
}
