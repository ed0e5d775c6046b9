package movegen

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"chessmg/bitboard"
)

// StartFEN is the FEN string for the standard initial chess position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ErrInvalidFEN is returned by ParseFEN for any malformed record. It wraps a
// more specific message but callers that only care "was this FEN bad" can
// test with errors.Is.
var ErrInvalidFEN = errors.New("invalid FEN")

func fenError(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidFEN, reason)
}

// ParseFEN parses a Forsyth-Edwards Notation string into a fresh Board. On
// any malformed input it returns a nil board and an error wrapping
// ErrInvalidFEN; nothing is left half-populated, since the board is only
// built up after the record has been split into fields.
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fenError("expected at least 4 space-separated fields")
	}

	b := NewBoard()
	b.clear()
	b.enPassant = bitboard.None
	b.fen = fen

	if err := b.parsePlacement(fields[0]); err != nil {
		return nil, err
	}
	if err := b.parseSideToMove(fields[1]); err != nil {
		return nil, err
	}
	if err := b.parseCastling(fields[2]); err != nil {
		return nil, err
	}
	if err := b.parseEnPassant(fields[3]); err != nil {
		return nil, err
	}

	b.halfmoveClock = 0
	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, fenError("halfmove clock is not a number")
		}
		b.halfmoveClock = n
	}

	b.fullmoveNumber = 1
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return nil, fenError("fullmove number is not a number")
		}
		b.fullmoveNumber = n
	}

	return b, nil
}

// parsePlacement fills the mailbox and bitboard set from FEN field 1.
func (b *Board) parsePlacement(field string) error {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return fenError("piece placement must have 8 ranks")
	}
	for i, rankStr := range ranks {
		if rankStr == "" {
			return fenError("empty rank description")
		}
		rankIndex := 7 - i
		file := 0
		for j := 0; j < len(rankStr); j++ {
			ch := rankStr[j]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			p, ok := PieceFromFENByte(ch)
			if !ok {
				return fenError("unrecognized piece character")
			}
			if file >= 8 {
				return fenError("too many squares in rank")
			}
			sq := bitboard.NewSquare(file, rankIndex)
			b.SetPiece(sq, p)
			file++
		}
		if file != 8 {
			return fenError("rank does not total 8 files")
		}
	}
	return nil
}

// parseSideToMove reads FEN field 2 ("w" or "b"). The field occupies a fixed
// position, so a bare 'b' here always means "black to move" and never the
// bishop letter used in field 1 or a promotion suffix elsewhere.
func (b *Board) parseSideToMove(field string) error {
	switch field {
	case "w":
		b.sideToMove = White
	case "b":
		b.sideToMove = Black
	default:
		return fenError("side to move must be 'w' or 'b'")
	}
	return nil
}

// parseCastling reads FEN field 3 ("KQkq", any subset, or "-").
func (b *Board) parseCastling(field string) error {
	b.castling = 0
	if field == "-" {
		return nil
	}
	for i := 0; i < len(field); i++ {
		switch field[i] {
		case 'K':
			b.castling |= WhiteKingside
		case 'Q':
			b.castling |= WhiteQueenside
		case 'k':
			b.castling |= BlackKingside
		case 'q':
			b.castling |= BlackQueenside
		default:
			return fenError("invalid castling rights character")
		}
	}
	return nil
}

// parseEnPassant reads FEN field 4 (a target square in algebraic notation, or "-").
func (b *Board) parseEnPassant(field string) error {
	if field == "-" {
		b.enPassant = bitboard.None
		return nil
	}
	sq, ok := bitboard.ParseSquare(field)
	if !ok {
		return fenError("invalid en-passant target square")
	}
	b.enPassant = sq
	return nil
}

// FEN renders the board's current state back into Forsyth-Edwards Notation.
func (b *Board) FEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.PieceAt(bitboard.NewSquare(file, rank))
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(p.FENByte())
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')

	if b.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')

	sb.WriteString(b.castling.String())
	sb.WriteByte(' ')

	sb.WriteString(b.enPassant.String())
	sb.WriteByte(' ')

	sb.WriteString(strconv.Itoa(b.halfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.fullmoveNumber))

	return sb.String()
}
