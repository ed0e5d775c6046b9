package movegen

import (
	"testing"

	"chessmg/bitboard"
)

func TestKingAttacksFromE4(t *testing.T) {
	got := KingAttacks(bitboard.E4)
	want := bitboard.Board(0x0000003828380000)
	if got != want {
		t.Fatalf("KingAttacks(e4): expected %#x, got %#x", uint64(want), uint64(got))
	}
}

func TestKingAttacksPopcount(t *testing.T) {
	for sq := bitboard.A1; sq <= bitboard.H8; sq++ {
		n := KingAttacks(sq).PopCount()
		switch n {
		case 3, 5, 8:
			// corner, edge, or interior — all expected.
		default:
			t.Errorf("KingAttacks(%s): unexpected popcount %d", sq, n)
		}
	}
}

func TestKnightAttacksFromA1(t *testing.T) {
	got := KnightAttacks(bitboard.A1)
	want := bitboard.Board(0x0000000000020400)
	if got != want {
		t.Fatalf("KnightAttacks(a1): expected %#x, got %#x", uint64(want), uint64(got))
	}
}

func TestKnightAttacksPopcountDistribution(t *testing.T) {
	seen := map[int]bool{}
	for sq := bitboard.A1; sq <= bitboard.H8; sq++ {
		n := KnightAttacks(sq).PopCount()
		seen[n] = true
		if n < 2 || n > 8 {
			t.Errorf("KnightAttacks(%s): popcount %d out of expected range", sq, n)
		}
	}
	for _, want := range []int{2, 3, 4, 6, 8} {
		if !seen[want] {
			t.Errorf("knight attack popcount distribution: expected to see %d somewhere on the board", want)
		}
	}
}

func TestPawnAttacksEdges(t *testing.T) {
	if PawnAttacks(White, bitboard.A2).PopCount() != 1 {
		t.Fatalf("white pawn on a2: expected exactly one attack square")
	}
	if PawnAttacks(White, bitboard.E2) != (bitboard.D3.Bit() | bitboard.F3.Bit()) {
		t.Fatalf("white pawn on e2: expected d3 and f3")
	}
	if PawnAttacks(Black, bitboard.E7) != (bitboard.D6.Bit() | bitboard.F6.Bit()) {
		t.Fatalf("black pawn on e7: expected d6 and f6")
	}
	if PawnAttacks(White, bitboard.None) != bitboard.Empty {
		t.Fatalf("invalid square: expected Empty")
	}
}
