package engine

// PieceType identifies one of the seven tetrominoes.
type PieceType int8

const (
	PieceI PieceType = iota
	PieceJ
	PieceL
	PieceO
	PieceS
	PieceT
	PieceZ
)

// PieceCount is the number of distinct tetromino types.
const PieceCount = 7

// String returns the canonical one-letter name of the piece.
func (t PieceType) String() string {
	switch t {
	case PieceI:
		return "I"
	case PieceJ:
		return "J"
	case PieceL:
		return "L"
	case PieceO:
		return "O"
	case PieceS:
		return "S"
	case PieceT:
		return "T"
	case PieceZ:
		return "Z"
	default:
		return "?"
	}
}

// Color returns the grid cell value used for this piece's blocks.
// Cell values 1..7 map to the per-type palette in the renderer.
func (t PieceType) Color() Cell {
	return Cell(t) + 1
}

// Offset is a cell position relative to a piece origin (or absolute when
// produced by Piece.Cells). Row grows downward, col to the right.
type Offset struct {
	Row, Col int
}

// baseShapes holds the rotation-0 cell offsets of each piece type,
// origin at the piece's pivot.
var baseShapes = [PieceCount][4]Offset{
	PieceI: {{0, 0}, {0, -1}, {0, 1}, {0, 2}},
	PieceJ: {{0, 0}, {0, -1}, {0, 1}, {-1, -1}},
	PieceL: {{0, 0}, {0, -1}, {0, 1}, {-1, 1}},
	PieceO: {{-1, 0}, {-1, 1}, {0, 0}, {0, 1}},
	PieceS: {{-1, 0}, {-1, -1}, {0, 0}, {0, 1}},
	PieceT: {{-1, 0}, {0, -1}, {0, 1}, {0, 0}},
	PieceZ: {{-1, 0}, {-1, 1}, {0, 0}, {0, -1}},
}

// shapes contains the precomputed offsets for every type and rotation state.
// Rotation r+1 is rotation r turned a quarter clockwise: (row,col) -> (col,-row).
var shapes [PieceCount][4][4]Offset

func init() {
	for t := range shapes {
		shapes[t][0] = baseShapes[t]
		for r := 1; r < 4; r++ {
			for i, o := range shapes[t][r-1] {
				shapes[t][r][i] = Offset{Row: o.Col, Col: -o.Row}
			}
		}
	}
}

// Shape returns the relative cell offsets for a type at a rotation state.
func Shape(t PieceType, rotation int) [4]Offset {
	return shapes[t][rotation&3]
}

// Piece is the falling tetromino: a type, a rotation state, and an origin
// position on the grid. Pieces are values; movement produces new pieces.
type Piece struct {
	Type     PieceType
	Rotation int // 0..3
	Row, Col int // origin position; may be above the grid while spawning
}

// Cells returns the four absolute cell positions occupied by the piece.
func (p Piece) Cells() [4]Offset {
	var cells [4]Offset
	for i, o := range shapes[p.Type][p.Rotation&3] {
		cells[i] = Offset{Row: p.Row + o.Row, Col: p.Col + o.Col}
	}
	return cells
}

// Rotated returns the piece turned one quarter clockwise at the same origin.
func (p Piece) Rotated() Piece {
	p.Rotation = (p.Rotation + 1) % 4
	return p
}

// Shifted returns the piece moved by the given row/column delta.
func (p Piece) Shifted(dRow, dCol int) Piece {
	p.Row += dRow
	p.Col += dCol
	return p
}
