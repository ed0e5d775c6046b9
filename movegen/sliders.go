package movegen

import (
	"math/bits"

	"chessmg/bitboard"
)

// rayDir is one of the eight ray directions; a rook slides along the four
// orthogonal ones and a bishop along the four diagonal ones.
type rayDir int

const (
	dirN rayDir = iota
	dirS
	dirE
	dirW
	dirNE
	dirNW
	dirSE
	dirSW
)

// rays[sq][dir] is the full-length ray from sq in direction dir, stopping at
// the board edge and excluding the origin square. Precomputed once; rook and
// bishop attack generation both walk these rays and stop early at the first
// blocker.
var rays [64][8]bitboard.Board

func init() {
	for sq := bitboard.A1; sq <= bitboard.H8; sq++ {
		file, rank := sq.File(), sq.Rank()

		rays[sq][dirN] = rayMask(file, rank, 0, 1)
		rays[sq][dirS] = rayMask(file, rank, 0, -1)
		rays[sq][dirE] = rayMask(file, rank, 1, 0)
		rays[sq][dirW] = rayMask(file, rank, -1, 0)
		rays[sq][dirNE] = rayMask(file, rank, 1, 1)
		rays[sq][dirNW] = rayMask(file, rank, -1, 1)
		rays[sq][dirSE] = rayMask(file, rank, 1, -1)
		rays[sq][dirSW] = rayMask(file, rank, -1, -1)
	}
}

// rayMask walks from (file, rank) in steps of (df, dr) until it runs off the
// board, OR-ing in every square visited (never the starting square itself).
func rayMask(file, rank, df, dr int) bitboard.Board {
	var m bitboard.Board
	f, r := file+df, rank+dr
	for f >= 0 && f < 8 && r >= 0 && r < 8 {
		m = m.Set(int(bitboard.NewSquare(f, r)))
		f += df
		r += dr
	}
	return m
}

// rookDirs and bishopDirs list the four ray directions each piece slides along.
var rookDirs = [4]rayDir{dirN, dirS, dirE, dirW}
var bishopDirs = [4]rayDir{dirNE, dirNW, dirSE, dirSW}

// nearestBlocker returns, for a ray walking away from sq, whether the
// ray should stop at the nearest blocker and if so which square to stop at.
// "increasing" rays (N, E, NE, NW from a low-index perspective) use the
// lowest-set-bit blocker; "decreasing" rays use the highest-set-bit blocker.
func nearestBlocker(ray, occ bitboard.Board, increasing bool) (sq int, ok bool) {
	blockers := ray & occ
	if blockers.IsEmpty() {
		return 0, false
	}
	if increasing {
		return bits.TrailingZeros64(uint64(blockers)), true
	}
	return 63 - bits.LeadingZeros64(uint64(blockers)), true
}

// slidingAttacks walks each of the four rays in dirs from sq, truncating a
// ray at (and including) its first blocker, per the standard rook/bishop
// "blocker stops and is itself attacked, everything past it is not" rule.
func slidingAttacks(sq bitboard.Square, occ bitboard.Board, dirs [4]rayDir, increasing [4]bool) bitboard.Board {
	var attacks bitboard.Board
	for i, d := range dirs {
		ray := rays[sq][d]
		if blocker, ok := nearestBlocker(ray, occ, increasing[i]); ok {
			ray &^= rays[blocker][d]
		}
		attacks |= ray
	}
	return attacks
}

var rookIncreasing = [4]bool{true, false, true, false}   // N, S, E, W
var bishopIncreasing = [4]bool{true, true, false, false} // NE, NW, SE, SW

// RookAttacks generates rook attacks from sq on the fly given the full board
// occupancy occ (both colors). It does not distinguish a blocker that is a
// friendly piece from one that is an enemy piece — callers mask off their
// own occupancy if they only want capturable/empty destinations.
func RookAttacks(sq bitboard.Square, occ bitboard.Board) bitboard.Board {
	if !sq.Valid() {
		return bitboard.Empty
	}
	return slidingAttacks(sq, occ, rookDirs, rookIncreasing)
}

// BishopAttacks generates bishop attacks from sq on the fly given the full
// board occupancy occ.
func BishopAttacks(sq bitboard.Square, occ bitboard.Board) bitboard.Board {
	if !sq.Valid() {
		return bitboard.Empty
	}
	return slidingAttacks(sq, occ, bishopDirs, bishopIncreasing)
}

// QueenAttacks generates queen attacks from sq as the union of rook and
// bishop attacks.
func QueenAttacks(sq bitboard.Square, occ bitboard.Board) bitboard.Board {
	return RookAttacks(sq, occ) | BishopAttacks(sq, occ)
}

// rookBlockerMask and bishopBlockerMask are the "relevant occupancy" masks
// used by the magic-number search: every square a slider's ray could pass
// through, excluding the board edge in that ray's direction, because a piece
// on the edge is always the last square of the ray regardless of whether
// it's occupied — including it would only inflate the table size.
var (
	rookBlockerMask   [64]bitboard.Board
	bishopBlockerMask [64]bitboard.Board
)

func init() {
	for sq := bitboard.A1; sq <= bitboard.H8; sq++ {
		rookBlockerMask[sq] = edgeExclusiveRay(sq, rookDirs)
		bishopBlockerMask[sq] = edgeExclusiveRay(sq, bishopDirs)
	}
}

// edgeExclusiveRay builds a blocker mask by walking each ray in dirs, adding
// every square except the final one reached before the board edge — a piece
// there is always the ray's last square regardless of occupancy, so it
// carries no information and is left out to keep the table small.
func edgeExclusiveRay(sq bitboard.Square, dirs [4]rayDir) bitboard.Board {
	file, rank := sq.File(), sq.Rank()
	var m bitboard.Board
	for _, d := range dirs {
		df, dr := dirDelta(d)
		f, r := file+df, rank+dr
		for f >= 0 && f < 8 && r >= 0 && r < 8 {
			nf, nr := f+df, r+dr
			if nf < 0 || nf > 7 || nr < 0 || nr > 7 {
				break // (f, r) is the edge square for this ray; exclude it.
			}
			m = m.Set(int(bitboard.NewSquare(f, r)))
			f, r = nf, nr
		}
	}
	return m
}

func dirDelta(d rayDir) (df, dr int) {
	switch d {
	case dirN:
		return 0, 1
	case dirS:
		return 0, -1
	case dirE:
		return 1, 0
	case dirW:
		return -1, 0
	case dirNE:
		return 1, 1
	case dirNW:
		return -1, 1
	case dirSE:
		return 1, -1
	case dirSW:
		return -1, -1
	}
	return 0, 0
}

// RookBlockerMask returns the relevant-occupancy mask for a rook on sq.
func RookBlockerMask(sq bitboard.Square) bitboard.Board {
	if !sq.Valid() {
		return bitboard.Empty
	}
	return rookBlockerMask[sq]
}

// BishopBlockerMask returns the relevant-occupancy mask for a bishop on sq.
func BishopBlockerMask(sq bitboard.Square) bitboard.Board {
	if !sq.Valid() {
		return bitboard.Empty
	}
	return bishopBlockerMask[sq]
}

// OccupancySubset returns the index-th subset of mask's set bits, under the
// standard bijection between [0, 2^popcount(mask)) and the subsets of mask:
// bit i of index selects whether the i-th set bit of mask (scanning from the
// LSB) is included in the result. Used to enumerate every relevant occupancy
// a slider could see when building its magic attack table.
func OccupancySubset(index int, mask bitboard.Board) bitboard.Board {
	var subset bitboard.Board
	squares := mask.Squares()
	for i, sq := range squares {
		if index&(1<<uint(i)) != 0 {
			subset = subset.Set(sq)
		}
	}
	return subset
}
