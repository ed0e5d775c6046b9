package movegen

import (
	"math/rand"
	"testing"

	"chessmg/bitboard"
)

func ensureMagicTables(t *testing.T) {
	t.Helper()
	if tablesReady {
		return
	}
	if err := InitMagicTables(0xC0FFEE); err != nil {
		t.Fatalf("InitMagicTables: %v", err)
	}
}

func TestMagicLookupMatchesOnTheFlyRook(t *testing.T) {
	ensureMagicTables(t)
	rng := rand.New(rand.NewSource(1))
	for sq := bitboard.A1; sq <= bitboard.H8; sq++ {
		mask := RookBlockerMask(sq)
		n := mask.PopCount()
		for trial := 0; trial < 20; trial++ {
			idx := rng.Intn(1 << uint(n))
			occ := OccupancySubset(idx, mask)
			want := RookAttacks(sq, occ)
			got := RookAttacksMagic(sq, occ)
			if got != want {
				t.Fatalf("rook magic lookup mismatch at %s, occ %s: want %s got %s", sq, occ, want, got)
			}
		}
	}
}

func TestMagicLookupMatchesOnTheFlyBishop(t *testing.T) {
	ensureMagicTables(t)
	rng := rand.New(rand.NewSource(2))
	for sq := bitboard.A1; sq <= bitboard.H8; sq++ {
		mask := BishopBlockerMask(sq)
		n := mask.PopCount()
		for trial := 0; trial < 20; trial++ {
			idx := rng.Intn(1 << uint(n))
			occ := OccupancySubset(idx, mask)
			want := BishopAttacks(sq, occ)
			got := BishopAttacksMagic(sq, occ)
			if got != want {
				t.Fatalf("bishop magic lookup mismatch at %s, occ %s: want %s got %s", sq, occ, want, got)
			}
		}
	}
}

func TestQueenAttacksMagicIsUnion(t *testing.T) {
	ensureMagicTables(t)
	occ := bitboard.D1.Bit() | bitboard.A4.Bit()
	got := QueenAttacksMagic(bitboard.D4, occ)
	want := RookAttacksMagic(bitboard.D4, occ) | BishopAttacksMagic(bitboard.D4, occ)
	if got != want {
		t.Fatalf("QueenAttacksMagic: expected union of rook and bishop magic lookups")
	}
}

func TestUninitializedMagicTablesPanic(t *testing.T) {
	saved := tablesReady
	tablesReady = false
	defer func() { tablesReady = saved }()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic when querying magic tables before initialization")
		}
	}()
	RookAttacksMagic(bitboard.A1, bitboard.Empty)
}

func TestTryMagicRejectsCollidingDifferentAttackSets(t *testing.T) {
	mask := RookBlockerMask(bitboard.D4)
	// A multiplier of zero hashes every occupancy to slot 0, which only
	// survives if every subset happens to produce the same attack set —
	// never true for a rook with more than one blocker configuration.
	if _, ok := tryMagic(bitboard.D4, rookDirs, rookIncreasing, mask, 0); ok {
		t.Fatalf("zero multiplier should not produce a consistent hash for d4's rook mask")
	}
}

func TestTryMagicAcceptsSameAttackSetInSameSlot(t *testing.T) {
	// A blocker on the far edge of a ray never changes the attack set, so for
	// a bishop on h8 a mask holding only a1 yields two subsets (empty and
	// {a1}) with identical attacks. With a 1-bit mask the shift is 63 and
	// 0xDEADBEEF hashes both subsets to slot 0, so the second subset lands in
	// a slot already written with the same attack set, which must be accepted.
	mask := bitboard.A1.Bit()
	if BishopAttacks(bitboard.H8, mask) != BishopAttacks(bitboard.H8, bitboard.Empty) {
		t.Fatalf("expected an edge blocker on a1 to leave h8's bishop attacks unchanged")
	}
	if _, ok := tryMagic(bitboard.H8, bishopDirs, bishopIncreasing, mask, 0xDEADBEEF); !ok {
		t.Fatalf("expected two subsets with the same attack set in one slot to be accepted")
	}
}
