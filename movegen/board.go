package movegen

import "chessmg/bitboard"

// Board is the canonical position: an 8x8 mailbox of pieces, a derived
// 12-way bitboard set (one per color/kind combination), side to move,
// castling rights, en-passant target, and the two move counters. The
// mailbox and the bitboard set are kept in agreement; bitboards are always
// derived from the mailbox, never the other way around.
//
// The bitboard set is stored as a 16-slot array indexed by pieceIndex(color,
// kind) rather than twelve named fields — the teacher (goosemg) makes the
// same choice for its own per-color piece bitboards, and spec.md's design
// notes call either representation acceptable.
type Board struct {
	mailbox [64]Piece
	bb      [16]bitboard.Board

	sideToMove     Color
	castling       CastlingRights
	enPassant      bitboard.Square
	halfmoveClock  int
	fullmoveNumber int

	// fen is an advisory copy of the FEN string this state was parsed from,
	// not authoritative — mutating the board does not keep it in sync.
	fen string
}

// NewBoard returns an empty board: no pieces, White to move, no castling
// rights, no en-passant target, counters zero.
func NewBoard() *Board {
	return &Board{
		enPassant: bitboard.None,
	}
}

// clear resets every field to the empty-board defaults, used before parsing
// a new FEN record so a failed parse never leaves stale state behind.
func (b *Board) clear() {
	b.mailbox = [64]Piece{}
	b.bb = [16]bitboard.Board{}
	b.sideToMove = White
	b.castling = 0
	b.enPassant = bitboard.None
	b.halfmoveClock = 0
	b.fullmoveNumber = 0
	b.fen = ""
}

// PieceAt returns the piece occupying sq, or NoPiece if sq is empty or invalid.
func (b *Board) PieceAt(sq bitboard.Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	return b.mailbox[sq]
}

// SetPiece places p on sq, replacing whatever was there and keeping the
// mailbox and bitboard set in agreement. Passing NoPiece clears the square.
func (b *Board) SetPiece(sq bitboard.Square, p Piece) {
	if !sq.Valid() {
		return
	}
	if old := b.mailbox[sq]; old != NoPiece {
		idx := pieceIndex(old.Color(), old.Kind())
		b.bb[idx] = b.bb[idx].Clear(int(sq))
	}
	b.mailbox[sq] = p
	if p != NoPiece {
		idx := pieceIndex(p.Color(), p.Kind())
		b.bb[idx] = b.bb[idx].Set(int(sq))
	}
}

// Bitboard returns the bitboard of every square occupied by a piece of the
// given color and kind. NoKind returns Empty.
func (b *Board) Bitboard(c Color, k PieceKind) bitboard.Board {
	if k == NoKind {
		return bitboard.Empty
	}
	return b.bb[pieceIndex(c, k)]
}

// Occupied returns the bitboard of every occupied square for one color.
func (b *Board) Occupied(c Color) bitboard.Board {
	var occ bitboard.Board
	for k := King; k <= Pawn; k++ {
		occ |= b.Bitboard(c, k)
	}
	return occ
}

// AllOccupied returns the bitboard of every occupied square, either color.
func (b *Board) AllOccupied() bitboard.Board {
	return b.Occupied(White) | b.Occupied(Black)
}

// KingSquare returns the square of color's king, or bitboard.None if absent
// (a board built from a test FEN may legitimately omit one, per spec).
func (b *Board) KingSquare(c Color) bitboard.Square {
	kbb := b.Bitboard(c, King)
	if kbb.IsEmpty() {
		return bitboard.None
	}
	return bitboard.Square(kbb.LSB())
}

// SideToMove returns which color is to move.
func (b *Board) SideToMove() Color { return b.sideToMove }

// SetSideToMove sets which color is to move.
func (b *Board) SetSideToMove(c Color) { b.sideToMove = c }

// CastlingRights returns the current castling-rights flags.
func (b *Board) CastlingRights() CastlingRights { return b.castling }

// SetCastlingRights overwrites the castling-rights flags.
func (b *Board) SetCastlingRights(c CastlingRights) { b.castling = c }

// EnPassant returns the en-passant target square, or bitboard.None.
func (b *Board) EnPassant() bitboard.Square { return b.enPassant }

// SetEnPassant sets the en-passant target square.
func (b *Board) SetEnPassant(sq bitboard.Square) { b.enPassant = sq }

// HalfmoveClock returns the halfmove clock (plies since the last capture or
// pawn advance), used by consumers to enforce the 50- or 75-move rule.
func (b *Board) HalfmoveClock() int { return b.halfmoveClock }

// SetHalfmoveClock sets the halfmove clock.
func (b *Board) SetHalfmoveClock(n int) { b.halfmoveClock = n }

// FullmoveNumber returns the fullmove counter (starts at 1).
func (b *Board) FullmoveNumber() int { return b.fullmoveNumber }

// SetFullmoveNumber sets the fullmove counter.
func (b *Board) SetFullmoveNumber(n int) { b.fullmoveNumber = n }

// SourceFEN returns the FEN string this board was parsed from, if any. It is
// an advisory copy only; it is not kept in sync with subsequent edits.
func (b *Board) SourceFEN() string { return b.fen }

// bitboardsDisjoint reports whether the 12 color/kind bitboards are pairwise
// disjoint, one of the invariants spec.md requires of any board state.
func (b *Board) bitboardsDisjoint() bool {
	var seen bitboard.Board
	for c := White; c <= Black; c++ {
		for k := King; k <= Pawn; k++ {
			bb := b.Bitboard(c, k)
			if bb&seen != 0 {
				return false
			}
			seen |= bb
		}
	}
	return true
}
