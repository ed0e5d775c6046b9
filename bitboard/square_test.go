package bitboard

import "testing"

func TestSquareIndexing(t *testing.T) {
	cases := []struct {
		sq   Square
		file int
		rank int
	}{
		{A1, 0, 0},
		{H1, 7, 0},
		{A8, 0, 7},
		{H8, 7, 7},
		{E4, 4, 3},
	}
	for _, c := range cases {
		if c.sq.File() != c.file || c.sq.Rank() != c.rank {
			t.Errorf("%s: expected file=%d rank=%d, got file=%d rank=%d",
				c.sq, c.file, c.rank, c.sq.File(), c.sq.Rank())
		}
	}
}

func TestNewSquare(t *testing.T) {
	if NewSquare(0, 0) != A1 {
		t.Fatalf("NewSquare(0,0): expected A1")
	}
	if NewSquare(7, 7) != H8 {
		t.Fatalf("NewSquare(7,7): expected H8")
	}
	if NewSquare(8, 0) != None {
		t.Fatalf("NewSquare(8,0) out of range: expected None")
	}
	if NewSquare(0, -1) != None {
		t.Fatalf("NewSquare(0,-1) out of range: expected None")
	}
}

func TestSquareStringRoundTrip(t *testing.T) {
	for sq := A1; sq <= H8; sq++ {
		s := sq.String()
		got, ok := ParseSquare(s)
		if !ok || got != sq {
			t.Errorf("round trip %s -> %q -> %s failed", sq, s, got)
		}
	}
	if None.String() != "-" {
		t.Fatalf("None.String(): expected \"-\", got %q", None.String())
	}
}

func TestParseSquareRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "a", "a9", "i3", "e0", "abc"} {
		if _, ok := ParseSquare(s); ok {
			t.Errorf("ParseSquare(%q): expected failure", s)
		}
	}
}

func TestSquareBit(t *testing.T) {
	if A1.Bit() != Board(1) {
		t.Fatalf("A1.Bit(): expected 1, got %d", A1.Bit())
	}
	if H8.Bit() != Board(1)<<63 {
		t.Fatalf("H8.Bit(): expected bit 63 set")
	}
	if None.Bit() != Empty {
		t.Fatalf("None.Bit(): expected Empty")
	}
}

func TestSquareColor(t *testing.T) {
	if A1.Color() != Dark {
		t.Fatalf("A1 should be dark")
	}
	if B1.Color() != Light {
		t.Fatalf("B1 should be light")
	}
	if H8.Color() != Dark {
		t.Fatalf("H8 should be dark")
	}
}

func TestFlips(t *testing.T) {
	if A1.FlipVertical() != A8 {
		t.Fatalf("A1 flipped vertically: expected A8, got %s", A1.FlipVertical())
	}
	if H1.FlipVertical() != H8 {
		t.Fatalf("H1 flipped vertically: expected H8, got %s", H1.FlipVertical())
	}
	if A1.FlipHorizontal() != H1 {
		t.Fatalf("A1 flipped horizontally: expected H1, got %s", A1.FlipHorizontal())
	}
	if None.FlipVertical() != None {
		t.Fatalf("None flip: expected None")
	}
}
