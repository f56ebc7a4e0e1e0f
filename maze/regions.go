package maze

// Regions finds all connected regions of rooms. Two neighbouring rooms are
// connected when at least one of them is open on the side they share, so for
// mazes with mirrored walls this is plain reachability.
// Regions are discovered in row-major order of their first room; rooms within
// a region are listed in BFS order from that room, expanding sides in the
// order of Sides.
//
// Time:   O(R·C·4).
// Memory: O(R·C) for seen flags and output.
func (m *Maze) Regions() [][]Position {
	total := m.rows * m.cols
	seen := make([]bool, total)
	var regions [][]Position

	for i0 := 0; i0 < total; i0++ {
		if seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		var region []Position

		for qi := 0; qi < len(queue); qi++ {
			p := m.Position(queue[qi])
			region = append(region, p)
			for _, s := range Sides {
				n := p.Step(s)
				if !m.InBounds(n.Row, n.Col) {
					continue
				}
				if m.HasWall(p.Row, p.Col, s) && m.HasWall(n.Row, n.Col, s.Opposite()) {
					continue
				}
				ni := m.Index(n.Row, n.Col)
				if !seen[ni] {
					seen[ni] = true
					queue = append(queue, ni)
				}
			}
		}
		regions = append(regions, region)
	}
	return regions
}
