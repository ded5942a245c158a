package puyo

// MinGroupSize is the smallest connected cluster that clears.
const MinGroupSize = 4

// Group is a 4-connected cluster of same-colored units eligible for clearing.
type Group struct {
	Color Color
	Cells []Point
}

func (g Group) Size() int {
	return len(g.Cells)
}

// Contains reports whether p is a member of the group.
func (g Group) Contains(p Point) bool {
	for _, c := range g.Cells {
		if c == p {
			return true
		}
	}
	return false
}

// down, up, right, left
var neighbors = [4]Point{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}

// FindConnectedGroups flood-fills every same-colored component and returns
// those of at least MinGroupSize units. Seeds are visited in row-major order,
// so the result is deterministic for a given board.
func (b *Board) FindConnectedGroups() []Group {
	var (
		visited [Height][Width]bool
		groups  []Group
		stack   = make([]Point, 0, Width*Height)
	)

	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if visited[y][x] || !b.cells[y][x].Occupied() {
				continue
			}

			color := b.cells[y][x].Color
			cells := make([]Point, 0, MinGroupSize)
			stack = append(stack[:0], Point{X: x, Y: y})
			visited[y][x] = true

			for len(stack) > 0 {
				p := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				cells = append(cells, p)

				for _, d := range neighbors {
					n := p.Add(d)
					if !n.InBounds() || visited[n.Y][n.X] {
						continue
					}
					c := b.cells[n.Y][n.X]
					if !c.Occupied() || c.Color != color {
						continue
					}
					visited[n.Y][n.X] = true
					stack = append(stack, n)
				}
			}

			if len(cells) >= MinGroupSize {
				groups = append(groups, Group{Color: color, Cells: cells})
			}
		}
	}

	return groups
}
