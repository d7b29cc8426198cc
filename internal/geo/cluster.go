package geo

// Group is one drawn marker: a single point or a cluster of them.
type Group struct {
	Col, Row int
	// Members are indexes into the points passed to Cluster.
	Members []int
}

// Single reports whether the group holds one point.
func (g Group) Single() bool { return len(g.Members) == 1 }

// Cluster buckets the visible points into cells of radius rows by 2*radius
// columns and returns one group per non-empty bucket, placed at the member
// nearest the bucket's mean. The point at index pinned (use -1 for none) is
// never merged into a cluster. Off-grid points are skipped. Groups come out
// in order of their first member.
func Cluster(points []Point, v Viewport, radius, pinned int) []Group {
	if radius < 1 {
		radius = 1
	}
	type key struct{ c, r int }
	type cell struct{ col, row int }

	var (
		groups []Group
		cells  [][]cell
		bucket = map[key]int{}
	)
	for i, p := range points {
		col, row, ok := v.ToCell(p)
		if !ok {
			continue
		}
		if i == pinned {
			groups = append(groups, Group{Col: col, Row: row, Members: []int{i}})
			cells = append(cells, []cell{{col, row}})
			continue
		}
		k := key{floorDiv(col, 2*radius), floorDiv(row, radius)}
		gi, seen := bucket[k]
		if !seen {
			gi = len(groups)
			bucket[k] = gi
			groups = append(groups, Group{})
			cells = append(cells, nil)
		}
		groups[gi].Members = append(groups[gi].Members, i)
		cells[gi] = append(cells[gi], cell{col, row})
	}

	for gi := range groups {
		cs := cells[gi]
		var sc, sr int
		for _, c := range cs {
			sc += c.col
			sr += c.row
		}
		mc, mr := float64(sc)/float64(len(cs)), float64(sr)/float64(len(cs))
		best, bestD := cs[0], -1.0
		for _, c := range cs {
			dc, dr := float64(c.col)-mc, float64(c.row)-mr
			if d := dc*dc + dr*dr; bestD < 0 || d < bestD {
				best, bestD = c, d
			}
		}
		groups[gi].Col, groups[gi].Row = best.col, best.row
	}
	return groups
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
