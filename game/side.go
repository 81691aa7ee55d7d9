package game

import "fmt"

// Side identifies one of the two players.
type Side int

const (
	SideA Side = iota
	SideB
)

func (s Side) Opponent() Side {
	if s == SideA {
		return SideB
	}
	return SideA
}

func (s Side) Valid() bool {
	return s == SideA || s == SideB
}

func (s Side) String() string {
	switch s {
	case SideA:
		return "A"
	case SideB:
		return "B"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

func (s Side) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid side %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *Side) UnmarshalText(text []byte) error {
	switch string(text) {
	case "A", "a":
		*s = SideA
	case "B", "b":
		*s = SideB
	default:
		return fmt.Errorf("invalid side %q", text)
	}
	return nil
}
