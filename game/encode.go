package game

// Plane is one 10x10 input layer, indexed [y][x].
type Plane [Size][Size]float64

// Plane categories of EncodePlanes, in order.
const (
	PlaneOwnImmovable = iota
	PlaneOwnMovable
	PlaneEnemyKnownMovable
	PlaneEnemyKnownBomb
	PlaneEnemyUnknownMoved
	PlaneEnemyUnknownUnmoved
	NumPlanes
)

// Planes is the one-hot encoding of a board, one plane per category.
type Planes [NumPlanes]Plane

const (
	compactEnemyOffset    = 20
	compactUnknownMoved   = 13
	compactUnknownUnmoved = 14
	compactRange          = 32
)

// viewSquare maps a board square to the square the perspective side sees:
// side B looks at a board rotated by 180 degrees so its own pieces sit on
// the low rows like side A's.
func viewSquare(sq Square, perspective Side) Square {
	if perspective == SideB {
		return sq.Mirror()
	}
	return sq
}

// EncodePlanes splits the board into the six category planes seen from
// perspective. Hidden enemy ranks are never leaked.
func EncodePlanes(b *Board, perspective Side) Planes {
	var planes Planes
	for _, side := range []Side{SideA, SideB} {
		for _, pp := range b.Pieces(side) {
			v := viewSquare(pp.Square, perspective)
			planes[planeCategory(pp.Piece, perspective)][v.Y][v.X] = 1
		}
	}
	return planes
}

func planeCategory(p Piece, perspective Side) int {
	switch {
	case p.Side == perspective && p.Rank.Movable():
		return PlaneOwnMovable
	case p.Side == perspective:
		return PlaneOwnImmovable
	case p.Revealed && p.Rank.Movable():
		return PlaneEnemyKnownMovable
	case p.Revealed:
		return PlaneEnemyKnownBomb
	case p.HasMoved:
		return PlaneEnemyUnknownMoved
	default:
		return PlaneEnemyUnknownUnmoved
	}
}

// EncodeCompact maps every occupied square to a single value in [0,1]:
// own pieces by rank, revealed enemy pieces by rank shifted by 20, hidden
// enemy pieces by whether they moved, all divided by 32.
func EncodeCompact(b *Board, perspective Side) Plane {
	var plane Plane
	for _, side := range []Side{SideA, SideB} {
		for _, pp := range b.Pieces(side) {
			v := viewSquare(pp.Square, perspective)
			plane[v.Y][v.X] = float64(compactCode(pp.Piece, perspective)) / compactRange
		}
	}
	return plane
}

func compactCode(p Piece, perspective Side) int {
	switch {
	case p.Side == perspective:
		return int(p.Rank)
	case p.Revealed:
		return compactEnemyOffset + int(p.Rank)
	case p.HasMoved:
		return compactUnknownMoved
	default:
		return compactUnknownUnmoved
	}
}

// Flatten returns the planes as one row-major vector, plane after plane.
func (p Planes) Flatten() []float64 {
	out := make([]float64, 0, NumPlanes*Size*Size)
	for i := range p {
		out = append(out, p[i].Flatten()...)
	}
	return out
}

func (p Plane) Flatten() []float64 {
	out := make([]float64, 0, Size*Size)
	for y := range p {
		out = append(out, p[y][:]...)
	}
	return out
}
