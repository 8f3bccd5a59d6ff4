package percolation

// Clusters returns the connected groups of open sites under 4-connectivity.
// Clusters are ordered by their first site in row-major order; sites within
// a cluster are in BFS discovery order from that first site.
//
// Time:   O(n²).
// Memory: O(n²) for visited flags and output.
func (g *Grid) Clusters() [][]Site {
	seen := make([]bool, len(g.open))
	var clusters [][]Site

	for i0, isOpen := range g.open {
		if !isOpen || seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		var cluster []Site

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			s := g.site(u)
			cluster = append(cluster, s)
			for _, d := range neighborOffsets {
				r, c := s.Row+d[0], s.Col+d[1]
				if !g.inBounds(r, c) {
					continue
				}
				v := g.index(r, c)
				if g.open[v] && !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		clusters = append(clusters, cluster)
	}

	return clusters
}
