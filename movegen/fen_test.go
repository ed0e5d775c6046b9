package movegen

import (
	"testing"

	"chessmg/bitboard"
)

func TestParseFENStartPos(t *testing.T) {
	b, err := ParseFEN(StartFEN)
	if err != nil {
		t.Fatalf("ParseFEN(StartFEN): unexpected error: %v", err)
	}
	if b.SideToMove() != White {
		t.Fatalf("SideToMove: expected White, got %s", b.SideToMove())
	}
	want := WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
	if b.CastlingRights() != want {
		t.Fatalf("CastlingRights: expected all four flags, got %s", b.CastlingRights())
	}
	if b.EnPassant() != bitboard.None {
		t.Fatalf("EnPassant: expected None, got %s", b.EnPassant())
	}
	if b.HalfmoveClock() != 0 {
		t.Fatalf("HalfmoveClock: expected 0, got %d", b.HalfmoveClock())
	}
	if b.FullmoveNumber() != 1 {
		t.Fatalf("FullmoveNumber: expected 1, got %d", b.FullmoveNumber())
	}
	if b.Bitboard(White, Pawn) != bitboard.Board(0x000000000000FF00) {
		t.Fatalf("white pawns: expected 0x000000000000FF00, got %#x", uint64(b.Bitboard(White, Pawn)))
	}
	if b.Bitboard(Black, Pawn) != bitboard.Board(0x00FF000000000000) {
		t.Fatalf("black pawns: expected 0x00FF000000000000, got %#x", uint64(b.Bitboard(Black, Pawn)))
	}
	if b.KingSquare(White) != bitboard.E1 {
		t.Fatalf("white king: expected e1, got %s", b.KingSquare(White))
	}
	if b.KingSquare(Black) != bitboard.E8 {
		t.Fatalf("black king: expected e8, got %s", b.KingSquare(Black))
	}
	if !b.bitboardsDisjoint() {
		t.Fatalf("startpos bitboards: expected pairwise disjoint")
	}
}

func TestFENRoundTrip(t *testing.T) {
	cases := []string{
		StartFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"8/8/8/8/8/8/8/4K2k w - - 5 37",
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
	}
	for _, fen := range cases {
		b, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): unexpected error: %v", fen, err)
		}
		if got := b.FEN(); got != fen {
			t.Errorf("round trip %q: got %q", fen, got)
		}
	}
}

func TestParseFENRejectsMalformed(t *testing.T) {
	bad := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBZR w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w ZZZZ - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1",
	}
	for _, fen := range bad {
		if _, err := ParseFEN(fen); err == nil {
			t.Errorf("ParseFEN(%q): expected error, got none", fen)
		}
	}
}

func TestParseFENClearsPriorState(t *testing.T) {
	b, err := ParseFEN(StartFEN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b2, err := ParseFEN("8/8/8/8/8/8/8/4K2k w - - 0 1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b2.Bitboard(White, Pawn) != bitboard.Empty {
		t.Fatalf("fresh parse should not carry over pawns from an earlier board")
	}
	_ = b
}
