// attacks is a small driver over the movegen/moveparse core: load a
// position from FEN, query its attack tables, and check a move token's
// syntax. It does no move legality checking or search of its own.
package main

import (
	"flag"
	"fmt"
	"os"

	"chessmg/bitboard"
	"chessmg/movegen"
	"chessmg/moveparse"
)

func main() {
	fen := flag.String("fen", movegen.StartFEN, "FEN string (defaults to initial position)")
	sq := flag.String("sq", "", "Square to report attacks from (e.g. e4); requires a piece there")
	move := flag.String("move", "", "Move token to parse (SAN, long algebraic, or UCI)")
	seed := flag.Uint64("seed", 0xC0FFEE, "PRNG seed for magic-table construction")
	flag.Usage = usage
	flag.Parse()

	if err := movegen.InitMagicTables(uint32(*seed)); err != nil {
		fmt.Fprintf(os.Stderr, "magic table construction failed: %v\n", err)
		os.Exit(2)
	}

	board, err := movegen.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	fmt.Printf("side to move: %s\n", board.SideToMove())
	fmt.Printf("castling: %s\n", board.CastlingRights())
	fmt.Printf("re-emitted FEN: %s\n", board.FEN())

	if *sq != "" {
		square, ok := bitboard.ParseSquare(*sq)
		if !ok {
			fmt.Fprintf(os.Stderr, "invalid -sq: %q\n", *sq)
			os.Exit(2)
		}
		piece := board.PieceAt(square)
		if piece == movegen.NoPiece {
			fmt.Fprintf(os.Stderr, "no piece on %s\n", square)
			os.Exit(2)
		}
		attacks := board.AttacksFrom(square)
		fmt.Printf("%s on %s attacks %d squares: %s\n", piece, square, attacks.PopCount(), attacks)
	}

	if *move != "" {
		tok := moveparse.ParseMove(*move)
		if tok.Invalid {
			fmt.Printf("%q: unparseable\n", *move)
			os.Exit(1)
		}
		fmt.Printf("%q parsed as: %+v\n", *move, tok)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "attacks: inspect a FEN position's attack tables and parse move tokens\n\n")
	flag.PrintDefaults()
}
