package grid

import (
	"fmt"
	"strings"
)

// Path is a monotone walk over a Grid that starts at (0,0).
//
// Path has value semantics: assigning a Path copies it, and stepping one
// copy never changes another. Copies share step storage until they diverge;
// the copy that extends the shared tip appends in place, any other copy
// moves its steps to a fresh buffer first. The grid is shared read-only.
//
// Copies with a common history must not be extended from different
// goroutines at once; hand a goroutine a Clone instead.
//
// The zero Path is not usable; build one with NewPath.
type Path struct {
	g      *Grid
	buf    *stepBuf
	n      int
	row    int
	col    int
	cranes int
}

// stepBuf is the step storage shared by copies of one Path.
type stepBuf struct {
	dirs []Direction
}

// NewPath returns the zero-step path at the origin of g.
// The origin counts towards TotalCranes when it is a Crane cell.
func NewPath(g *Grid) Path {
	p := Path{g: g}
	if g.Get(0, 0) == Crane {
		p.cranes = 1
	}
	return p
}

// Grid returns the grid the path walks.
func (p Path) Grid() *Grid { return p.g }

// Len returns the number of steps taken.
func (p Path) Len() int { return p.n }

// Row returns the current row.
func (p Path) Row() int { return p.row }

// Column returns the current column.
func (p Path) Column() int { return p.col }

// TotalCranes returns the number of Crane cells visited so far.
func (p Path) TotalCranes() int { return p.cranes }

// Steps returns a copy of the step sequence.
func (p Path) Steps() []Direction {
	out := make([]Direction, p.n)
	copy(out, p.steps())
	return out
}

// Clone returns a copy of p that shares no step storage with it.
// Complexity: O(k).
func (p Path) Clone() Path {
	if p.buf != nil {
		p.buf = &stepBuf{dirs: append([]Direction(nil), p.steps()...)}
	}
	return p
}

// steps returns the first n directions of the shared buffer.
func (p Path) steps() []Direction {
	if p.buf == nil {
		return nil
	}
	return p.buf.dirs[:p.n:p.n]
}

// IsStepValid reports whether one step in direction d stays on the grid
// and does not land on a Building.
// Complexity: O(1).
func (p Path) IsStepValid(d Direction) bool {
	dr, dc := d.Delta()
	r, c := p.row+dr, p.col+dc
	return p.g.InBounds(r, c) && p.g.Get(r, c) != Building
}

// AddStep advances the path by one step in direction d.
// The caller must have checked IsStepValid; an invalid step panics.
// Complexity: amortized O(1); O(k) when p is not the latest extension of
// the steps it shares with another copy.
func (p *Path) AddStep(d Direction) {
	if !p.IsStepValid(d) {
		panic(fmt.Sprintf("grid: AddStep(%s) invalid from (%d,%d)", d, p.row, p.col))
	}
	dr, dc := d.Delta()
	p.row += dr
	p.col += dc
	if p.buf == nil || len(p.buf.dirs) != p.n {
		// Another copy owns the tip; branch off.
		dirs := make([]Direction, p.n, 2*p.n+1)
		copy(dirs, p.steps())
		p.buf = &stepBuf{dirs: dirs}
	}
	p.buf.dirs = append(p.buf.dirs, d)
	p.n++
	if p.g.Get(p.row, p.col) == Crane {
		p.cranes++
	}
}

// Cells returns every visited coordinate in order, origin first.
// Complexity: O(k).
func (p Path) Cells() []Coord {
	out := make([]Coord, 0, p.n+1)
	r, c := 0, 0
	out = append(out, Coord{r, c})
	for _, d := range p.steps() {
		dr, dc := d.Delta()
		r, c = r+dr, c+dc
		out = append(out, Coord{r, c})
	}
	return out
}

// Render draws the grid with every visited cell replaced by '*'.
func (p Path) Render() string {
	mark := make(map[Coord]struct{}, p.n+1)
	for _, rc := range p.Cells() {
		mark[rc] = struct{}{}
	}
	return p.g.render(mark)
}

// String lists the steps separated by spaces, e.g. "S E E".
// The zero-step path renders as "-".
func (p Path) String() string {
	if p.n == 0 {
		return "-"
	}
	parts := make([]string, p.n)
	for i, d := range p.steps() {
		parts[i] = d.String()
	}
	return strings.Join(parts, " ")
}
