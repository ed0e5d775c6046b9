// Package moveparse turns a user-supplied move token — SAN, long algebraic,
// or UCI, with the annotation clutter PGN readers tolerate — into a
// structured MoveToken. It is purely syntactic: it never consults a board
// state, so it cannot tell a legal move from an illegal one, only a
// well-formed token from a malformed one.
package moveparse

import "chessmg/movegen"

// Unspecified marks a from/to file or rank that the token did not state —
// common in SAN, which usually omits the origin square.
const Unspecified = -1

// MoveToken is the result of parsing one move string.
type MoveToken struct {
	// Text is the original, unmodified input.
	Text string

	Piece     movegen.PieceKind
	Promotion movegen.PieceKind // NoKind unless this is a promotion.

	FromFile, FromRank int // Unspecified if the token didn't state it.
	ToFile, ToRank     int

	KingsideCastle  bool
	QueensideCastle bool
	Null            bool
	Invalid         bool
	DrawOffered     bool
	EnPassant       bool
	Capture         bool
	Check           bool
	Checkmate       bool
}

// newToken returns a MoveToken with every field at its empty/unspecified
// default, ready for a pipeline stage to fill in.
func newToken(text string) MoveToken {
	return MoveToken{
		Text:      text,
		Piece:     movegen.NoKind,
		Promotion: movegen.NoKind,
		FromFile:  Unspecified,
		FromRank:  Unspecified,
		ToFile:    Unspecified,
		ToRank:    Unspecified,
	}
}

// invalid marks the token unparseable and returns it; used as a single
// return point by every pipeline stage that gives up.
func (t MoveToken) invalid() MoveToken {
	t.Invalid = true
	return t
}
