package movegen

import "chessmg/bitboard"

// Attacks dispatches to the right attack generator for kind, given the color
// (used only for pawns) and the full-board occupancy (used only for
// sliders). It is the single entry point described for consumers that don't
// want to pick king/knight/bishop/rook/queen/pawn lookups by hand.
func Attacks(kind PieceKind, c Color, sq bitboard.Square, occ bitboard.Board) bitboard.Board {
	switch kind {
	case King:
		return KingAttacks(sq)
	case Knight:
		return KnightAttacks(sq)
	case Pawn:
		return PawnAttacks(c, sq)
	case Bishop:
		return BishopAttacksMagic(sq, occ)
	case Rook:
		return RookAttacksMagic(sq, occ)
	case Queen:
		return QueenAttacksMagic(sq, occ)
	default:
		return bitboard.Empty
	}
}

// AttacksFrom returns the attack bitboard for whatever piece occupies sq on
// b, given b's current full occupancy. An empty square returns Empty.
func (b *Board) AttacksFrom(sq bitboard.Square) bitboard.Board {
	p := b.PieceAt(sq)
	if p == NoPiece {
		return bitboard.Empty
	}
	return Attacks(p.Kind(), p.Color(), sq, b.AllOccupied())
}
