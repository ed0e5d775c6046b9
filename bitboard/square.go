package bitboard

import "fmt"

// Square is a board index 0..63, or None. The mapping is little-endian
// rank-file: index = rank*8 + file, file A=0..H=7, rank 1=0..8=7. So A1=0,
// H1=7, A8=56, H8=63. Every directional shift and every precomputed table in
// this module assumes this mapping.
type Square int

// None is the sentinel value for "no square".
const None Square = 64

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// Valid reports whether sq is one of the 64 board squares (excludes None).
func (sq Square) Valid() bool { return sq >= A1 && sq <= H8 }

// File returns the file index 0 (A) .. 7 (H).
func (sq Square) File() int { return int(sq) % 8 }

// Rank returns the rank index 0 (rank 1) .. 7 (rank 8).
func (sq Square) Rank() int { return int(sq) / 8 }

// NewSquare builds a Square from a 0-based file and rank.
func NewSquare(file, rank int) Square {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return None
	}
	return Square(rank*8 + file)
}

// Bit returns the singleton bitboard {sq}, or Empty for an out-of-range square.
func (sq Square) Bit() Board {
	if !sq.Valid() {
		return Empty
	}
	return Board(1) << uint(sq)
}

// Color reports the visual color of the square (A1 is dark).
func (sq Square) Color() SquareColor {
	if sq.Bit()&LightSquares != 0 {
		return Light
	}
	return Dark
}

// SquareColor distinguishes light and dark squares.
type SquareColor int

const (
	Dark SquareColor = iota
	Light
)

var fileLetters = "abcdefgh"

// String renders the square in algebraic notation ("e4"), or "-" for None
// and out-of-range values.
func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return fmt.Sprintf("%c%d", fileLetters[sq.File()], sq.Rank()+1)
}

// ParseSquare parses algebraic notation ("e4") into a Square. It reports
// None and false on malformed input.
func ParseSquare(s string) (Square, bool) {
	if len(s) != 2 {
		return None, false
	}
	file := s[0]
	rank := s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return None, false
	}
	return NewSquare(int(file-'a'), int(rank-'1')), true
}

// FlipVertical mirrors a square across the rank-4/rank-5 boundary (rank 1 <-> rank 8).
func (sq Square) FlipVertical() Square {
	if !sq.Valid() {
		return None
	}
	return sq ^ 56
}

// FlipHorizontal mirrors a square across the file-D/file-E boundary (file A <-> file H).
func (sq Square) FlipHorizontal() Square {
	if !sq.Valid() {
		return None
	}
	return sq ^ 7
}
