package entity

// Direction represents the eight compass directions for movement
type Direction int

const (
	DirNone Direction = iota
	DirNorth
	DirSouth
	DirEast
	DirWest
	DirNorthEast
	DirNorthWest
	DirSouthEast
	DirSouthWest
)

// Delta returns the x,y delta for a direction
func (d Direction) Delta() (int, int) {
	switch d {
	case DirNorth:
		return 0, -1
	case DirSouth:
		return 0, 1
	case DirEast:
		return 1, 0
	case DirWest:
		return -1, 0
	case DirNorthEast:
		return 1, -1
	case DirNorthWest:
		return -1, -1
	case DirSouthEast:
		return 1, 1
	case DirSouthWest:
		return -1, 1
	default:
		return 0, 0
	}
}
