package calc

import (
	"errors"
	"io"
	"strings"
	"unicode"
)

// scanner reads runes with one rune of lookahead and tracks the column of
// the next rune.
type scanner struct {
	src io.RuneScanner
	// col is the 1-based column of the next rune.
	col int
	// wseof is a string containing the whitespace characters that end the
	// input where an operator is expected.
	wseof string
	// eof is set once src has reported io.EOF or a stop rune was consumed.
	eof bool
	// err is the first error from src other than io.EOF.
	err error
}

func lex(src io.RuneScanner) *scanner {
	return &scanner{
		src: src,
		col: 1,
	}
}

// readRune reads a rune from the src and updates the scanner's position
// info. ok is false at the end of the input or on an error, which is then
// recorded in s.err.
func (s *scanner) readRune() (r rune, ok bool) {
	if s.eof || s.err != nil {
		return 0, false
	}
	r, sz, err := s.src.ReadRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			s.eof = true
		} else {
			s.err = err
		}
		return 0, false
	}
	if sz > 0 {
		s.col++
	}
	return r, true
}

// unreadRune unreads a rune from the src and updates the scanner's position
// info. Panics if unreading returns an error.
func (s *scanner) unreadRune() {
	if err := s.src.UnreadRune(); err != nil {
		panic(err)
	}
	s.col--
}

// peek returns the next rune without consuming it.
func (s *scanner) peek() (rune, bool) {
	r, ok := s.readRune()
	if ok {
		s.unreadRune()
	}
	return r, ok
}

// nextIf consumes the next rune if it satisfies f.
func (s *scanner) nextIf(f func(rune) bool) (rune, bool) {
	r, ok := s.readRune()
	if !ok {
		return 0, false
	}
	if !f(r) {
		s.unreadRune()
		return 0, false
	}
	return r, true
}

// nextIs consumes the next rune if it is want.
func (s *scanner) nextIs(want rune) bool {
	_, ok := s.nextIf(func(r rune) bool { return r == want })
	return ok
}

// skipSpace consumes whitespace. If stop is true and a rune in wseof is
// found, the rune is consumed and the scanner reports the end of input from
// then on.
func (s *scanner) skipSpace(stop bool) {
	for {
		r, ok := s.nextIf(unicode.IsSpace)
		if !ok {
			return
		}
		if stop && strings.ContainsRune(s.wseof, r) {
			s.eof = true
			return
		}
	}
}

// scanNum scans the text of a number literal: an optional sign, digits, at
// most one decimal point, and more digits. The result is empty if no digit
// was scanned. used reports whether any rune was consumed regardless.
func (s *scanner) scanNum() (text string, used bool) {
	var b strings.Builder
	if r, ok := s.nextIf(isSign); ok {
		b.WriteRune(r)
	}
	var dig, dot bool
	for {
		r, ok := s.nextIf(func(r rune) bool {
			return '0' <= r && r <= '9' || r == '.' && !dot
		})
		if !ok {
			break
		}
		if r == '.' {
			dot = true
		} else {
			dig = true
		}
		b.WriteRune(r)
	}
	if !dig {
		return "", b.Len() > 0
	}
	return b.String(), true
}

func isSign(r rune) bool {
	return r == '+' || r == '-'
}
