package moveparse

import (
	"strings"

	"chessmg/movegen"
)

// nullMoveTokens lists every spelling recognized as a null move, compared
// case-insensitively against the trimmed input.
var nullMoveTokens = map[string]bool{
	"(null)": true, "00-00": true, "null": true, "0000": true,
	"pass": true, "@@@@": true, "any": true, "z0": true,
	"<>": true, "--": true, "$0": true,
}

// ParseMove parses a single move token into a MoveToken. It never consults
// board state; a syntactically well-formed token that describes an illegal
// move still comes back with Invalid=false.
func ParseMove(text string) MoveToken {
	tok := newToken(text)

	trimmed := strings.TrimSpace(text)
	if nullMoveTokens[strings.ToLower(trimmed)] {
		tok.Null = true
		return tok
	}

	work := stripAnnotations(trimmed, &tok)

	if parseCastling(work, &tok) {
		return tok
	}

	work = stripPromotion(work, &tok)
	work = stripEnPassant(work, &tok)

	if !validateResidual(work) {
		return tok.invalid()
	}
	if !classify(work, &tok) {
		return tok.invalid()
	}
	return tok
}

// Ordered longest-match-first within each group, so a longer annotation
// (e.g. "!!!") is never shadowed by a shorter one that happens to be a
// suffix of it (e.g. "!").
var evalSymbolsByLength = []string{
	"!!!", "???", "(!)", "(?)",
	"!!", "??", "!?", "?!", "TN",
	"!", "?",
}

var positionalMarks = []string{
	"+/-", "+/=", "-/+", "=/+", "=/-", "-/=",
}

var endOfGameIndicators = []string{
	"White Resigns", "Black Resigns", "1-0", "0-1",
}

var checkSuffixes = []string{
	"dbl. ch.", "dis. ch.", "ch.", "ch", "++", "+",
}

var checkmateSuffixes = []string{
	"mate", "#",
}

// stripAnnotations removes PGN-style clutter from the tail of s, in the
// order spec'd: end-of-game markers, draw offers, evaluation symbols,
// positional marks, check suffixes, checkmate suffixes. It loops until a
// full pass strips nothing, since a token can carry more than one
// annotation (e.g. "Qh5!+").
func stripAnnotations(s string, tok *MoveToken) string {
	for {
		before := s

		for _, e := range endOfGameIndicators {
			s = strings.TrimSuffix(s, e)
		}
		if strings.HasSuffix(s, "(=)") {
			s = strings.TrimSuffix(s, "(=)")
			tok.DrawOffered = true
		}
		s = trimFirstMatchingSuffix(s, evalSymbolsByLength)
		s = trimFirstMatchingSuffix(s, positionalMarks)
		if stripped := trimFirstMatchingSuffix(s, checkSuffixes); stripped != s {
			tok.Check = true
			s = stripped
		}
		if stripped := trimFirstMatchingSuffix(s, checkmateSuffixes); stripped != s {
			tok.Checkmate = true
			s = stripped
		}

		if s == before {
			return s
		}
	}
}

// trimFirstMatchingSuffix removes the first suffix in suffixes (in list
// order) that matches s, or returns s unchanged if none do.
func trimFirstMatchingSuffix(s string, suffixes []string) string {
	for _, suf := range suffixes {
		if strings.HasSuffix(s, suf) {
			return strings.TrimSuffix(s, suf)
		}
	}
	return s
}

// parseCastling recognizes queenside and kingside castling forms. Queenside
// is tested first so its pattern is never shadowed by the kingside pattern
// that prefixes it.
func parseCastling(work string, tok *MoveToken) bool {
	normalized := strings.ReplaceAll(strings.ToUpper(work), "0", "O")
	switch normalized {
	case "O-O-O":
		tok.QueensideCastle = true
		tok.Piece = movegen.King
		return true
	case "O-O":
		tok.KingsideCastle = true
		tok.Piece = movegen.King
		return true
	}
	return false
}

// stripPromotion detects and removes a trailing promotion suffix: an
// optional separator ('=', '(', '/') followed by a piece letter in QRBN,
// immediately preceded by a rank-1 or rank-8 digit. Because the piece
// letter must be the very last character of work, the ambiguous letter 'b'
// is only ever treated as a bishop promotion when nothing follows it —
// exactly the disambiguation rule: elsewhere 'b' is a file.
func stripPromotion(work string, tok *MoveToken) string {
	if len(work) == 0 {
		return work
	}
	promo, ok := pieceLetter(toUpperByte(work[len(work)-1]))
	if !ok || promo == movegen.King {
		return work
	}
	body := work[:len(work)-1]
	if len(body) > 0 {
		switch body[len(body)-1] {
		case '=', '(', '/':
			body = body[:len(body)-1]
		}
	}
	if len(body) == 0 {
		return work
	}
	rankChar := body[len(body)-1]
	if rankChar != '1' && rankChar != '8' {
		return work
	}
	tok.Promotion = promo
	tok.Piece = movegen.Pawn
	return body
}

// stripEnPassant removes a trailing en-passant marker, longest form first.
func stripEnPassant(work string, tok *MoveToken) string {
	lower := strings.ToLower(work)
	for _, suf := range []string{"e.p.", "ep.", "ep"} {
		if strings.HasSuffix(lower, suf) {
			tok.EnPassant = true
			return work[:len(work)-len(suf)]
		}
	}
	return work
}

// validateResidual checks the character-set and piece/capture-count rules
// of step 6: only board-coordinate characters, at most one piece letter, at
// most one 'x'. Dashes are stripped first since they're non-essential
// separators in long algebraic notation ("e2-e4") and don't count against
// either rule.
func validateResidual(work string) bool {
	cleaned := strings.ReplaceAll(work, "-", "")
	if cleaned == "" {
		return false
	}
	pieceLetters, captures := 0, 0
	for i := 0; i < len(cleaned); i++ {
		c := cleaned[i]
		switch {
		case c == 'x' || c == 'X':
			captures++
		case strings.IndexByte("KQBNR", c) >= 0:
			pieceLetters++
		case strings.IndexByte("abcdefgh12345678", c) >= 0:
			// board coordinate character, always fine.
		default:
			return false
		}
	}
	return pieceLetters <= 1 && captures <= 1
}

// classify extracts from/to squares (and the moving piece, where stated)
// from a fully-stripped residual, dispatching on whether it's a capture and
// then on its length per step 7's shape table.
func classify(work string, tok *MoveToken) bool {
	noDash := strings.ReplaceAll(work, "-", "")
	if idx := strings.IndexAny(noDash, "xX"); idx >= 0 {
		return classifyCapture(noDash, idx, tok)
	}
	return classifyNonCapture(noDash, tok)
}

func classifyNonCapture(s string, tok *MoveToken) bool {
	switch len(s) {
	case 2:
		f, r, ok := parseSquareChars(s[0], s[1])
		if !ok {
			return false
		}
		tok.Piece = movegen.Pawn
		tok.ToFile, tok.ToRank = f, r
		return true

	case 4:
		if isUCIShape(s) {
			ff, fr, ok1 := parseSquareChars(s[0], s[1])
			tf, tr, ok2 := parseSquareChars(s[2], s[3])
			if !ok1 || !ok2 {
				return false
			}
			if tok.Piece == movegen.NoKind {
				tok.Piece = movegen.Pawn
			}
			tok.FromFile, tok.FromRank = ff, fr
			tok.ToFile, tok.ToRank = tf, tr
			return true
		}
		piece, ok := pieceLetter(s[0])
		if !ok {
			return false
		}
		f, r, ok := parseSquareChars(s[2], s[3])
		if !ok {
			return false
		}
		tok.Piece = piece
		tok.ToFile, tok.ToRank = f, r
		switch {
		case isFileChar(s[1]):
			tok.FromFile = fileIndex(s[1])
		case isRankChar(s[1]):
			tok.FromRank = rankIndex(s[1])
		default:
			return false
		}
		return true

	case 3:
		piece, ok := pieceLetter(s[0])
		if !ok {
			return false
		}
		f, r, ok := parseSquareChars(s[1], s[2])
		if !ok {
			return false
		}
		tok.Piece = piece
		tok.ToFile, tok.ToRank = f, r
		return true

	case 5:
		piece, ok := pieceLetter(s[0])
		if !ok {
			return false
		}
		ff, fr, ok1 := parseSquareChars(s[1], s[2])
		tf, tr, ok2 := parseSquareChars(s[3], s[4])
		if !ok1 || !ok2 {
			return false
		}
		tok.Piece = piece
		tok.FromFile, tok.FromRank = ff, fr
		tok.ToFile, tok.ToRank = tf, tr
		return true
	}
	return false
}

func classifyCapture(s string, xIdx int, tok *MoveToken) bool {
	left := s[:xIdx]
	right := s[xIdx+1:]
	if len(left) == 0 || len(left) > 3 || len(right) == 0 || len(right) > 2 {
		return false
	}
	tok.Capture = true

	switch len(left) {
	case 1:
		switch {
		case isFileChar(left[0]):
			tok.Piece = movegen.Pawn
			tok.FromFile = fileIndex(left[0])
		default:
			piece, ok := pieceLetter(left[0])
			if !ok {
				return false
			}
			tok.Piece = piece
		}

	case 2:
		piece, ok := pieceLetter(left[0])
		if !ok {
			return false
		}
		tok.Piece = piece
		switch {
		case isFileChar(left[1]):
			tok.FromFile = fileIndex(left[1])
		case isRankChar(left[1]):
			tok.FromRank = rankIndex(left[1])
		default:
			return false
		}

	case 3:
		piece, ok := pieceLetter(left[0])
		if !ok || !isFileChar(left[1]) || !isRankChar(left[2]) {
			return false
		}
		tok.Piece = piece
		tok.FromFile = fileIndex(left[1])
		tok.FromRank = rankIndex(left[2])
	}

	if !isFileChar(right[0]) {
		return false
	}
	tok.ToFile = fileIndex(right[0])
	if len(right) == 2 {
		if !isRankChar(right[1]) {
			return false
		}
		tok.ToRank = rankIndex(right[1])
	}
	return true
}

// isUCIShape reports whether s is exactly file-rank-file-rank in lowercase
// board coordinates. A leading uppercase piece letter (K/Q/R/B/N) never
// satisfies this, so it cannot be confused with the SAN 4-symbol shape.
func isUCIShape(s string) bool {
	return len(s) == 4 && isFileChar(s[0]) && isRankChar(s[1]) && isFileChar(s[2]) && isRankChar(s[3])
}

func parseSquareChars(fc, rc byte) (file, rank int, ok bool) {
	if !isFileChar(fc) || !isRankChar(rc) {
		return 0, 0, false
	}
	return fileIndex(fc), rankIndex(rc), true
}

func isFileChar(c byte) bool { return c >= 'a' && c <= 'h' }
func isRankChar(c byte) bool { return c >= '1' && c <= '8' }
func fileIndex(c byte) int   { return int(c - 'a') }
func rankIndex(c byte) int   { return int(c - '1') }

func toUpperByte(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

// pieceLetter maps an uppercase piece letter to its PieceKind. King is
// included for completeness but stripPromotion filters it back out, since
// promotion to a king is never legal.
func pieceLetter(c byte) (movegen.PieceKind, bool) {
	switch c {
	case 'K':
		return movegen.King, true
	case 'Q':
		return movegen.Queen, true
	case 'R':
		return movegen.Rook, true
	case 'B':
		return movegen.Bishop, true
	case 'N':
		return movegen.Knight, true
	}
	return movegen.NoKind, false
}
