package domain

import "fmt"

// Kind is the closed set of cell kinds a grid is made of.
type Kind int

const (
	Wall Kind = iota
	Corridor
	Clue
)

func (k Kind) String() string {
	switch k {
	case Wall:
		return "wall"
	case Corridor:
		return "corridor"
	case Clue:
		return "clue"
	default:
		return "unknown"
	}
}

// Direction is one of the four axis directions light travels along.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every axis direction in a fixed scan order.
var Directions = [4]Direction{Up, Down, Left, Right}

// Delta returns the row/col step for one move in direction d.
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	default:
		return 0, 1
	}
}

// HintAction tells the player what to do with the cells of a Hint.
type HintAction int

const (
	HintPlace  HintAction = iota // put a lamp on each cell
	HintRemove                   // take a lamp away (or away from around a clue)
)

func (a HintAction) String() string {
	if a == HintRemove {
		return "remove"
	}
	return "place"
}

// MarshalText renders the action by name in JSON payloads.
func (a HintAction) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// MarshalText renders the kind by name in JSON payloads.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText parses a kind name as written by MarshalText.
func (k *Kind) UnmarshalText(b []byte) error {
	for _, c := range []Kind{Wall, Corridor, Clue} {
		if c.String() == string(b) {
			*k = c
			return nil
		}
	}
	return fmt.Errorf("unknown cell kind %q", b)
}

// UnmarshalText parses an action name as written by MarshalText.
func (a *HintAction) UnmarshalText(b []byte) error {
	switch string(b) {
	case "place":
		*a = HintPlace
	case "remove":
		*a = HintRemove
	default:
		return fmt.Errorf("unknown hint action %q", b)
	}
	return nil
}
