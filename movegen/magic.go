package movegen

import (
	"errors"
	"math/bits"

	"chessmg/bitboard"
)

// ErrMagicSearchExhausted is returned by InitMagicTables when the discovery
// loop exceeds its retry bound without finding a valid multiplier for a square.
var ErrMagicSearchExhausted = errors.New("movegen: magic search exhausted")

// maxMagicTrials bounds the discovery loop per square. In practice a valid
// rook or bishop magic turns up within a few hundred tries; this bound only
// exists to guarantee termination when a caller supplies a broken PRNG or an
// unreasonably constrained rank8 heuristic.
const maxMagicTrials = 1 << 28

// rank8Mask is the high-byte mask used by the discovery loop's cheap
// rejection heuristic (§4.5 step 4): a candidate whose product's top byte
// has too little bit-spread is unlikely to hash well and is discarded before
// the expensive full-subset collision test.
const rank8Mask = bitboard.Board(0xFF00000000000000)

// magicEntry is one square's precomputed magic-hashing parameters for one
// slider kind.
type magicEntry struct {
	mask   bitboard.Board
	magic  uint64
	shift  uint
	attack []bitboard.Board
}

// index computes the table slot for a given full-board occupancy.
func (e *magicEntry) index(occ bitboard.Board) int {
	relevant := uint64(occ & e.mask)
	return int((relevant * e.magic) >> e.shift)
}

var (
	rookMagics   [64]magicEntry
	bishopMagics [64]magicEntry
)

// tablesReady is set once InitMagicTables has successfully populated both
// magic-entry arrays; runtime queries panic if consulted beforehand, per the
// construction-then-freeze discipline the attack tables are built under.
var tablesReady bool

// InitMagicTables builds the rook and bishop magic tables, searching for a
// fresh magic multiplier per square with the given PRNG seed. A fixed seed
// makes the resulting tables reproducible across runs, which is the whole
// point of using a custom PRNG instead of a system entropy source here.
func InitMagicTables(seed uint32) error {
	rng := NewPRNG(seed)
	for sq := bitboard.A1; sq <= bitboard.H8; sq++ {
		re, err := buildMagicEntry(sq, rookDirs, rookIncreasing, RookBlockerMask(sq), rng)
		if err != nil {
			return err
		}
		rookMagics[sq] = re

		be, err := buildMagicEntry(sq, bishopDirs, bishopIncreasing, BishopBlockerMask(sq), rng)
		if err != nil {
			return err
		}
		bishopMagics[sq] = be
	}
	tablesReady = true
	return nil
}

// buildMagicEntry runs the discovery loop (§4.5 steps 3-6) for one square:
// draw sparse candidates from rng, reject cheaply via the rank8 heuristic,
// then fully verify by walking every blocker subset.
func buildMagicEntry(sq bitboard.Square, dirs [4]rayDir, increasing [4]bool, mask bitboard.Board, rng *PRNG) (magicEntry, error) {
	for trial := 0; trial < maxMagicTrials; trial++ {
		candidate := rng.SparseUint64()
		if bits.OnesCount64((uint64(mask)*candidate)&uint64(rank8Mask)) < 6 {
			continue
		}
		if e, ok := tryMagic(sq, dirs, increasing, mask, candidate); ok {
			return e, nil
		}
	}
	return magicEntry{}, ErrMagicSearchExhausted
}

// tryMagic verifies a single candidate multiplier against every blocker
// subset of mask, building the attack table as it goes. It returns ok=false
// on the first collision between two subsets with different attack sets
// (the same attack set landing in an already-written slot is not a
// collision and is accepted, per §4.5 step 5).
func tryMagic(sq bitboard.Square, dirs [4]rayDir, increasing [4]bool, mask bitboard.Board, candidate uint64) (magicEntry, bool) {
	r := mask.PopCount()
	shift := uint(64 - r)
	size := 1 << uint(r)

	written := make([]bool, size)
	table := make([]bitboard.Board, size)

	for i := 0; i < size; i++ {
		occ := OccupancySubset(i, mask)
		att := slidingAttacks(sq, occ, dirs, increasing)
		idx := int((uint64(occ) * candidate) >> shift)

		if !written[idx] {
			written[idx] = true
			table[idx] = att
			continue
		}
		if table[idx] != att {
			return magicEntry{}, false
		}
	}

	return magicEntry{mask: mask, magic: candidate, shift: shift, attack: table}, true
}

// RookAttacksMagic returns rook attacks from sq given full-board occupancy
// occ, using the precomputed magic table. The tables must have been built
// with InitMagicTables first.
func RookAttacksMagic(sq bitboard.Square, occ bitboard.Board) bitboard.Board {
	if !tablesReady {
		panic("movegen: magic tables consulted before initialization")
	}
	e := &rookMagics[sq]
	return e.attack[e.index(occ)]
}

// BishopAttacksMagic returns bishop attacks from sq given full-board
// occupancy occ, using the precomputed magic table.
func BishopAttacksMagic(sq bitboard.Square, occ bitboard.Board) bitboard.Board {
	if !tablesReady {
		panic("movegen: magic tables consulted before initialization")
	}
	e := &bishopMagics[sq]
	return e.attack[e.index(occ)]
}

// QueenAttacksMagic returns queen attacks from sq as the union of the
// rook and bishop magic lookups.
func QueenAttacksMagic(sq bitboard.Square, occ bitboard.Board) bitboard.Board {
	return RookAttacksMagic(sq, occ) | BishopAttacksMagic(sq, occ)
}
