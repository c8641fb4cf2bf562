// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package strparse provides facilities for parsing strings, intended for use in
// tests and debug input.
package strparse

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
)

// RangeSeparators are the separators used by the range forms accepted by
// Parser.Range.
const RangeSeparators = "[],|"

// Parser is a helper used to parse the debug form of dates and date ranges,
// as accepted by cmd/daterange and written in test data files.
//
// It takes a string and splits it into tokens. Tokens are separated by
// whitespace; in addition user-specified separators are also always separate
// tokens. For example, when passed the separators `[],|` the string
// `[2020-01-01, 2020-01-05]` results in tokens `[`, `2020-01-01`, `,`,
// `2020-01-05`, `]`.
//
// All Parser methods throw panics instead of returning errors. The code
// that uses a Parser can recover them and convert them to errors.
type Parser struct {
	original  string
	tokens    []string
	lastToken string
}

// MakeParser constructs a new Parser that converts any instance of the runes
// contained in [separators] into separate tokens, and consumes the provided
// input string.
func MakeParser(separators string, input string) Parser {
	p := Parser{original: input}

	s := input
	for len(s) > 0 {
		nonWhiteSpacePos := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsSpace(r) })
		switch nonWhiteSpacePos {
		case -1:
			// Only whitespace.
			s = s[len(s):]
		case 0:
			// s is the beginning of a non-whitespace token.
			// It might be a separator, or it might be an arbitrary token
			wsPos := strings.IndexFunc(s, unicode.IsSpace)
			switch pos := strings.IndexAny(s, separators); pos {
			case -1:
				if wsPos == -1 {
					wsPos = len(s)
				}
				p.tokens = append(p.tokens, s[:wsPos])
				s = s[wsPos:]
			case 0:
				p.tokens = append(p.tokens, s[:1])
				s = s[1:]
			default:
				if wsPos != -1 && wsPos < pos {
					pos = wsPos
				}
				p.tokens = append(p.tokens, s[:pos])
				s = s[pos:]
			}
		default:
			// Whitespace.
			s = s[nonWhiteSpacePos:]
		}
	}
	return p
}

// Done returns true if there are no more tokens.
func (p *Parser) Done() bool {
	return len(p.tokens) == 0
}

// Peek returns the next token, without consuming the token. Returns "" if there
// are no more tokens.
func (p *Parser) Peek() string {
	if p.Done() {
		p.lastToken = ""
		return ""
	}
	p.lastToken = p.tokens[0]
	return p.tokens[0]
}

// Next returns the next token, or "" if there are no more tokens.
func (p *Parser) Next() string {
	res := p.Peek()
	if res != "" {
		p.tokens = p.tokens[1:]
	}
	return res
}

// Expect consumes the next tokens, verifying that they exactly match the
// arguments.
func (p *Parser) Expect(tokens ...string) {
	for _, tok := range tokens {
		if res := p.Next(); res != tok {
			p.Errf("expected %q, got %q", tok, res)
		}
	}
}

// Date returns the next token, checking that it looks like an ISO date
// (it starts with YYYY-MM-DD). The date itself is validated by the caller.
func (p *Parser) Date() string {
	tok := p.Next()
	if len(tok) < len("2006-01-02") || tok[4] != '-' || tok[7] != '-' {
		p.Errf("expected date, got %q", tok)
	}
	return tok
}

// Range parses a date range in one of the forms "[start, end]" or
// "start|end", returning the two endpoints.
func (p *Parser) Range() (start, end string) {
	if p.Done() {
		p.Errf("expected range, but no tokens found")
	}
	if p.Peek() == "[" {
		p.Next()
		start = p.Date()
		p.Expect(",")
		end = p.Date()
		p.Expect("]")
		return start, end
	}
	start = p.Date()
	p.Expect("|")
	return start, p.Date()
}

// Errf panics with an error which includes the original string and the last
// token.
func (p *Parser) Errf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	panic(parseError{errors.Errorf("error parsing %q at token %q: %s", p.original, p.lastToken, msg)})
}

type parseError struct {
	err error
}

// Catch runs fn and converts a panic raised by Errf into an error. Other
// panics are propagated.
func Catch(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			pe, ok := r.(parseError)
			if !ok {
				panic(r)
			}
			err = pe.err
		}
	}()
	fn()
	return nil
}
