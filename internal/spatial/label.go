package spatial

import "github.com/agrowatch/awd-atlas-cli/internal/grid"

// Patches are maximal 4-connected components of true cells. Diagonal
// neighbors do not join a patch.

// unionFind resolves provisional label equivalences from the first pass.
type unionFind struct {
	parent []int
}

func newUnionFind() *unionFind {
	return &unionFind{parent: []int{0}} // label 0 is background
}

func (u *unionFind) add() int {
	label := len(u.parent)
	u.parent = append(u.parent, label)
	return label
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra != rb {
		if ra < rb {
			u.parent[rb] = ra
		} else {
			u.parent[ra] = rb
		}
	}
}

// ExtractPatches labels the 4-connected components of mask with a classic
// two-pass union-find. Background cells get label 0; patches get 1..count in
// row-major first-touch order, which is stable for a given input.
func ExtractPatches(mask *grid.Bool) (*grid.Int, int) {
	labeled := grid.NewInt(mask.Rows, mask.Cols)
	uf := newUnionFind()

	for r := 0; r < mask.Rows; r++ {
		for c := 0; c < mask.Cols; c++ {
			if !mask.At(r, c) {
				continue
			}
			up, left := 0, 0
			if r > 0 {
				up = labeled.At(r-1, c)
			}
			if c > 0 {
				left = labeled.At(r, c-1)
			}
			switch {
			case up == 0 && left == 0:
				labeled.Set(r, c, uf.add())
			case up != 0 && left == 0:
				labeled.Set(r, c, up)
			case up == 0 && left != 0:
				labeled.Set(r, c, left)
			default:
				labeled.Set(r, c, up)
				uf.union(up, left)
			}
		}
	}

	// Second pass: collapse equivalences and renumber in first-touch order.
	final := make(map[int]int)
	count := 0
	for i, v := range labeled.Cells {
		if v == 0 {
			continue
		}
		root := uf.find(v)
		label, ok := final[root]
		if !ok {
			count++
			label = count
			final[root] = label
		}
		labeled.Cells[i] = label
	}

	return labeled, count
}
