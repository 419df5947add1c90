package maze

// Stats summarizes the passage graph of a grid.
type Stats struct {
	Cells    int
	Visited  int
	Passages int // open wall pairs
	DeadEnds int // cells with exactly one passage
	// Connected is true when every cell is reachable from cell 0.
	Connected bool
	// Acyclic is true when the passage graph has no cycles.
	Acyclic bool
	// Diameter is the longest shortest path, in steps, between two cells.
	// It is only computed for spanning trees and is 0 otherwise.
	Diameter int
	// SymmetryViolations counts neighbor pairs whose facing walls disagree.
	SymmetryViolations int
}

// SpanningTree reports whether the passages form a tree over every cell.
func (s Stats) SpanningTree() bool {
	return s.Connected && s.Acyclic && s.Passages == s.Cells-1 && s.SymmetryViolations == 0
}

// Analyze walks the passage graph of g.
func Analyze(g *Grid) Stats {
	s := Stats{Cells: g.Len()}
	for i := range g.Cells() {
		c := g.Cell(i)
		if c.Visited {
			s.Visited++
		}
		open := 0
		for _, d := range Directions {
			n, ok := g.Neighbor(i, d)
			if !ok {
				continue
			}
			if c.HasWall(d) != g.Cell(n).HasWall(d.Opposite()) {
				if d == Right || d == Bottom {
					s.SymmetryViolations++
				}
				continue
			}
			if !c.HasWall(d) {
				open++
				if d == Right || d == Bottom {
					s.Passages++
				}
			}
		}
		if open == 1 {
			s.DeadEnds++
		}
	}

	dist, far := bfs(g, 0)
	reached := 0
	for _, d := range dist {
		if d >= 0 {
			reached++
		}
	}
	s.Connected = reached == s.Cells
	// A connected graph on n vertices is a tree iff it has n-1 edges. For a
	// disconnected graph count components: edges = n - components.
	s.Acyclic = s.Passages == s.Cells-components(g)

	if s.Connected && s.Acyclic {
		dist, far = bfs(g, far)
		s.Diameter = dist[far]
	}
	return s
}

// bfs returns the passage distance from start to every cell (-1 when
// unreachable) and the farthest reachable cell.
func bfs(g *Grid, start int) ([]int, int) {
	dist := make([]int, g.Len())
	for i := range dist {
		dist[i] = -1
	}
	dist[start] = 0
	far := start
	queue := []int{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if dist[cur] > dist[far] {
			far = cur
		}
		for _, d := range Directions {
			if !g.Open(cur, d) {
				continue
			}
			n, _ := g.Neighbor(cur, d)
			if dist[n] >= 0 {
				continue
			}
			dist[n] = dist[cur] + 1
			queue = append(queue, n)
		}
	}
	return dist, far
}

func components(g *Grid) int {
	seen := make([]bool, g.Len())
	count := 0
	stack := make([]int, 0, g.Len())
	for i := range seen {
		if seen[i] {
			continue
		}
		count++
		seen[i] = true
		stack = append(stack[:0], i)
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, d := range Directions {
				if !g.Open(cur, d) {
					continue
				}
				n, _ := g.Neighbor(cur, d)
				if !seen[n] {
					seen[n] = true
					stack = append(stack, n)
				}
			}
		}
	}
	return count
}
