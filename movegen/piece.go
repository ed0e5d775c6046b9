// Package movegen implements the board-state model, FEN parsing, leaper and
// slider attack tables, and the magic-number machinery that backs them. It
// is the core described in spec: given a position, it enumerates the
// squares each piece can reach. It does not check move legality, detect
// check, search, or evaluate — those are downstream concerns.
package movegen

// Color is one of the two sides.
type Color uint8

const (
	White Color = iota
	Black
)

// Other returns the opposing color.
func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "white"
}

// PieceKind is a piece type irrespective of color, plus an empty sentinel.
type PieceKind uint8

const (
	NoKind PieceKind = iota
	King
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

func (k PieceKind) String() string {
	switch k {
	case King:
		return "king"
	case Queen:
		return "queen"
	case Rook:
		return "rook"
	case Bishop:
		return "bishop"
	case Knight:
		return "knight"
	case Pawn:
		return "pawn"
	default:
		return "none"
	}
}

// Piece is a tagged (color, kind) value with an empty sentinel; 13 variants
// in total.
type Piece uint8

const (
	NoPiece Piece = iota
	WhiteKing
	WhiteQueen
	WhiteRook
	WhiteBishop
	WhiteKnight
	WhitePawn
	BlackKing
	BlackQueen
	BlackRook
	BlackBishop
	BlackKnight
	BlackPawn
)

// NewPiece combines a color and a kind into a concrete Piece. NoKind yields NoPiece.
func NewPiece(c Color, k PieceKind) Piece {
	if k == NoKind {
		return NoPiece
	}
	if c == White {
		return Piece(k)
	}
	return Piece(k) + Piece(BlackKing) - 1
}

// Kind returns the colorless piece type.
func (p Piece) Kind() PieceKind {
	switch p {
	case WhiteKing, BlackKing:
		return King
	case WhiteQueen, BlackQueen:
		return Queen
	case WhiteRook, BlackRook:
		return Rook
	case WhiteBishop, BlackBishop:
		return Bishop
	case WhiteKnight, BlackKnight:
		return Knight
	case WhitePawn, BlackPawn:
		return Pawn
	default:
		return NoKind
	}
}

// Color returns the piece's side. NoPiece defaults to White.
func (p Piece) Color() Color {
	if p >= BlackKing {
		return Black
	}
	return White
}

var pieceLetters = map[Piece]byte{
	WhiteKing: 'K', WhiteQueen: 'Q', WhiteRook: 'R', WhiteBishop: 'B', WhiteKnight: 'N', WhitePawn: 'P',
	BlackKing: 'k', BlackQueen: 'q', BlackRook: 'r', BlackBishop: 'b', BlackKnight: 'n', BlackPawn: 'p',
}

var letterToPiece = map[byte]Piece{
	'K': WhiteKing, 'Q': WhiteQueen, 'R': WhiteRook, 'B': WhiteBishop, 'N': WhiteKnight, 'P': WhitePawn,
	'k': BlackKing, 'q': BlackQueen, 'r': BlackRook, 'b': BlackBishop, 'n': BlackKnight, 'p': BlackPawn,
}

// FENByte returns the FEN piece letter, or 0 for NoPiece.
func (p Piece) FENByte() byte { return pieceLetters[p] }

// PieceFromFENByte parses a single FEN piece letter. It returns NoPiece and
// false for any character outside KQRBNPkqrbnp.
func PieceFromFENByte(ch byte) (Piece, bool) {
	p, ok := letterToPiece[ch]
	return p, ok
}

func (p Piece) String() string {
	if p == NoPiece {
		return "."
	}
	return string(p.FENByte())
}

// CastlingRights is a set of four independent flags.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside
)

// Has reports whether every flag in want is set.
func (c CastlingRights) Has(want CastlingRights) bool { return c&want == want }

func (c CastlingRights) String() string {
	if c == 0 {
		return "-"
	}
	s := ""
	if c.Has(WhiteKingside) {
		s += "K"
	}
	if c.Has(WhiteQueenside) {
		s += "Q"
	}
	if c.Has(BlackKingside) {
		s += "k"
	}
	if c.Has(BlackQueenside) {
		s += "q"
	}
	return s
}

// pieceIndex maps a (color, kind) pair onto a slot of Board's 16-slot
// bitboard array: color<<3 | kind, kind in [1..6] (Pawn highest), so White
// uses slots 1..6 and Black 9..14, leaving gaps but a single cheap index
// computation.
func pieceIndex(c Color, k PieceKind) int {
	return int(c)<<3 | int(k)
}
