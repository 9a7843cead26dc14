package community

import "testing"

func distinctRoots(d *disjointSet) int {
	seen := make(map[int]struct{})
	for i := range d.parent {
		seen[d.find(i)] = struct{}{}
	}
	return len(seen)
}

func TestUnionFindConsistency(t *testing.T) {
	d := newDisjointSet(10)
	if got := distinctRoots(d); got != 10 {
		t.Fatalf("fresh set has %d roots, want 10", got)
	}

	d.union(2, 7)
	if d.find(2) != d.find(7) {
		t.Fatal("find(2) != find(7) after union")
	}
	if !d.connected(2, 7) {
		t.Fatal("connected(2,7) = false after union")
	}
	if got := distinctRoots(d); got != 9 {
		t.Fatalf("after one union %d roots, want 9", got)
	}

	// Repeating a union must be a no-op.
	d.union(2, 7)
	d.union(7, 2)
	if got := distinctRoots(d); got != 9 {
		t.Fatalf("repeated unions changed root count to %d", got)
	}

	// find is idempotent until the next union.
	first := d.find(7)
	if again := d.find(7); again != first {
		t.Fatalf("find(7) flapped: %d then %d", first, again)
	}
}

func TestUnionBySizeAbsorbsSmallerTree(t *testing.T) {
	d := newDisjointSet(6)
	d.union(0, 1)
	d.union(0, 2)

	// {0,1,2} has size 3; a singleton joining it must land under its root.
	big := d.find(0)
	d.union(5, 0)
	if d.find(5) != big {
		t.Fatal("singleton must attach under the larger tree's root")
	}
	if got := d.size[big]; got != 4 {
		t.Fatalf("absorbing root size = %d, want 4", got)
	}

	// Equal sizes: the first argument's root wins the tie.
	d2 := newDisjointSet(4)
	d2.union(0, 1)
	d2.union(2, 3)
	rootA := d2.find(0)
	d2.union(0, 2)
	if d2.find(2) != rootA {
		t.Fatal("tie must keep the first root")
	}
	if got := d2.size[rootA]; got != 4 {
		t.Fatalf("merged size = %d, want 4", got)
	}
}

func TestTransitiveUnions(t *testing.T) {
	d := newDisjointSet(8)
	d.union(0, 1)
	d.union(1, 2)
	d.union(3, 4)
	d.union(4, 0)

	root := d.find(0)
	for _, i := range []int{1, 2, 3, 4} {
		if d.find(i) != root {
			t.Fatalf("index %d not merged into the chain", i)
		}
	}
	if d.connected(0, 5) {
		t.Fatal("untouched index must stay in its own set")
	}
}
