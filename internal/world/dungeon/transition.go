package dungeon

import "sort"

// Transition is one step of a depth-indexed table: from Level onward the
// value is Value
type Transition struct {
	Level int `json:"level"`
	Value int `json:"value"`
}

// Table is a list of transitions sorted by level
type Table []Transition

// Constant returns a table with one value for every depth
func Constant(value int) Table {
	return Table{{Level: 1, Value: value}}
}

// FromDungeonLevel returns the value of the highest entry whose level does
// not exceed depth, or 0 below the first entry
func FromDungeonLevel(table Table, depth int) int {
	for i := len(table) - 1; i >= 0; i-- {
		if depth >= table[i].Level {
			return table[i].Value
		}
	}
	return 0
}

// At is FromDungeonLevel as a method
func (t Table) At(depth int) int {
	return FromDungeonLevel(t, depth)
}

func (t Table) sorted() Table {
	out := make(Table, len(t))
	copy(out, t)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Level < out[j].Level })
	return out
}
