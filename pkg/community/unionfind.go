// Package community counts connected groups of live cells under toroidal
// 8-neighbor adjacency.
package community

// disjointSet is a weighted quick-union over flattened cell indices,
// parent and size kept in parallel slices. One is built per count call and
// discarded with it; nothing persists between calls.
type disjointSet struct {
	parent []int
	size   []int
}

func newDisjointSet(n int) *disjointSet {
	d := &disjointSet{parent: make([]int, n), size: make([]int, n)}
	for i := range d.parent {
		d.parent[i] = i
		d.size[i] = 1
	}
	return d
}

// find returns the root of i, halving the path as it walks so repeated
// lookups stay near O(1). An index outside [0,n) is a caller bug and
// panics.
func (d *disjointSet) find(i int) int {
	for i != d.parent[i] {
		d.parent[i] = d.parent[d.parent[i]]
		i = d.parent[i]
	}
	return i
}

// union links the smaller tree under the larger, the first root winning
// ties, and adds the absorbed size to the absorbing root. Joining two
// indices already in one set is a no-op.
func (d *disjointSet) union(a, b int) {
	ra, rb := d.find(a), d.find(b)
	if ra == rb {
		return
	}
	if d.size[ra] < d.size[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	d.size[ra] += d.size[rb]
}

func (d *disjointSet) connected(a, b int) bool {
	return d.find(a) == d.find(b)
}
