package movegen

import "chessmg/bitboard"

// Precomputed leaper attack tables, filled once at package init and never
// written again. kingAttacks[sq] and knightAttacks[sq] are color-independent;
// pawnAttacks is indexed by color since pawns capture in only one direction.
var (
	kingAttacks   [64]bitboard.Board
	knightAttacks [64]bitboard.Board
	pawnAttacks   [2][64]bitboard.Board
)

func init() {
	for sq := bitboard.A1; sq <= bitboard.H8; sq++ {
		bit := sq.Bit()
		kingAttacks[sq] = kingAttacksFrom(bit)
		knightAttacks[sq] = knightAttacksFrom(bit)
		pawnAttacks[White][sq] = pawnAttacksFrom(bit, White)
		pawnAttacks[Black][sq] = pawnAttacksFrom(bit, Black)
	}
}

// kingAttacksFrom computes the eight (or fewer, at the edges) squares a king
// on the single-bit board `from` attacks.
func kingAttacksFrom(from bitboard.Board) bitboard.Board {
	return from.ShiftN() | from.ShiftS() | from.ShiftE() | from.ShiftW() |
		from.ShiftNE() | from.ShiftNW() | from.ShiftSE() | from.ShiftSW()
}

// knightAttacksFrom computes the up-to-eight squares a knight on the
// single-bit board `from` attacks.
func knightAttacksFrom(from bitboard.Board) bitboard.Board {
	return from.ShiftNNE() | from.ShiftNNW() | from.ShiftNEE() | from.ShiftNWW() |
		from.ShiftSSE() | from.ShiftSSW() | from.ShiftSEE() | from.ShiftSWW()
}

// pawnAttacksFrom computes the (up to two) squares a pawn of color c on the
// single-bit board `from` attacks. It does not account for the square ahead
// (a non-capturing advance is not an attack).
func pawnAttacksFrom(from bitboard.Board, c Color) bitboard.Board {
	if c == White {
		return from.ShiftNE() | from.ShiftNW()
	}
	return from.ShiftSE() | from.ShiftSW()
}

// KingAttacks returns the squares a king on sq attacks.
func KingAttacks(sq bitboard.Square) bitboard.Board {
	if !sq.Valid() {
		return bitboard.Empty
	}
	return kingAttacks[sq]
}

// KnightAttacks returns the squares a knight on sq attacks.
func KnightAttacks(sq bitboard.Square) bitboard.Board {
	if !sq.Valid() {
		return bitboard.Empty
	}
	return knightAttacks[sq]
}

// PawnAttacks returns the squares a pawn of color c on sq attacks (capture
// squares only, never the square directly ahead).
func PawnAttacks(c Color, sq bitboard.Square) bitboard.Board {
	if !sq.Valid() {
		return bitboard.Empty
	}
	return pawnAttacks[c][sq]
}
