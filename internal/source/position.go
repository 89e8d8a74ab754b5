package source

import "fmt"

// Position is a point in a source file.
// Line and Column are 1-based, Index is the 0-based byte offset.
type Position struct {
	Line   int
	Column int
	Index  int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Location is a range between two positions on the same file.
// End is exclusive; a nil End means a zero-width location at Start.
type Location struct {
	Start *Position
	End   *Position
}

// NewLocation creates a location from start to end
func NewLocation(start, end *Position) *Location {
	return &Location{
		Start: start,
		End:   end,
	}
}
