package game

import "fmt"

// Rank is the hidden identity of a piece. The numbered ranks carry their
// symbol as strength: '1' Marshal, '2' General, '3' Miner up to '9' Scout.
type Rank int

const (
	Marshal Rank = iota + 1
	General
	Miner
	Colonel
	Major
	Captain
	Lieutenant
	Sergeant
	Scout
	Spy
	Bomb
	Flag
)

// Ranks lists every rank by symbol order.
var Ranks = []Rank{Marshal, General, Miner, Colonel, Major, Captain, Lieutenant, Sergeant, Scout, Spy, Bomb, Flag}

var rankSymbols = map[Rank]rune{
	Marshal:    '1',
	General:    '2',
	Miner:      '3',
	Colonel:    '4',
	Major:      '5',
	Captain:    '6',
	Lieutenant: '7',
	Sergeant:   '8',
	Scout:      '9',
	Spy:        'S',
	Bomb:       'B',
	Flag:       'F',
}

func (r Rank) Valid() bool {
	return r >= Marshal && r <= Flag
}

// Strength is the combat value of the rank, lower wins. Spy is the weakest
// regular rank and the immovable ranks have no strength.
func (r Rank) Strength() int {
	switch {
	case r >= Marshal && r <= Scout:
		return int(r)
	case r == Spy:
		return 10
	default:
		return 0
	}
}

func (r Rank) Movable() bool {
	return r.Valid() && r != Bomb && r != Flag
}

func (r Rank) Symbol() rune {
	if s, ok := rankSymbols[r]; ok {
		return s
	}
	return '?'
}

func (r Rank) String() string {
	return string(r.Symbol())
}

// ParseRank maps a rank symbol back to its Rank.
func ParseRank(symbol rune) (Rank, error) {
	for r, s := range rankSymbols {
		if s == symbol {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown rank symbol %q", symbol)
}

func (r Rank) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("invalid rank %d", int(r))
	}
	return []byte(r.String()), nil
}

func (r *Rank) UnmarshalText(text []byte) error {
	runes := []rune(string(text))
	if len(runes) != 1 {
		return fmt.Errorf("unknown rank symbol %q", text)
	}
	parsed, err := ParseRank(runes[0])
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
