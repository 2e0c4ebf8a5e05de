// Package scanner tokenizes source files for the parser to consume.
package scanner

import (
	"unicode/utf8"

	"github.com/mna/loxwalk/lang/diag"
	"github.com/mna/loxwalk/lang/token"
)

// Scan tokenizes the entirety of src and returns the resulting tokens (with
// their spans and literal text), plus any lexical diagnostics encountered.
// Scanning does not stop at the first error: it resynchronizes at the next
// token boundary so later errors in the same file are also reported. The
// returned slice always ends with an EOF token.
func Scan(src []byte) ([]Tok, diag.List) {
	var (
		s    Scanner
		errs diag.List
		toks []Tok
	)
	s.Init(src, func(span token.Span, msg string) {
		errs.Add(diag.Parse, span, "%s", msg)
	})
	for {
		tok, span, lit := s.Scan()
		toks = append(toks, Tok{Token: tok, Span: span, Lit: lit})
		if tok == token.EOF {
			break
		}
	}
	errs.Sort()
	return toks, errs
}

// Tok is a single scanned token together with its source span and literal
// text (empty for tokens whose spelling never varies, e.g. punctuation).
type Tok struct {
	Token token.Token
	Span  token.Span
	Lit   string
}

// Scanner tokenizes a single source file. Use Init to prepare it, then call
// Scan repeatedly until it returns token.EOF.
type Scanner struct {
	src []byte
	err func(span token.Span, msg string)

	cur  rune // current character, -1 at end of file
	off  int  // byte offset of cur
	roff int  // byte offset just past cur
}

// Init prepares s to tokenize src, reporting lexical errors to errHandler
// (which may be nil to silently ignore them).
func (s *Scanner) Init(src []byte, errHandler func(token.Span, string)) {
	s.src = src
	s.err = errHandler
	s.cur = ' '
	s.off = 0
	s.roff = 0
	s.advance()
}

func (s *Scanner) advance() {
	if s.roff >= len(s.src) {
		s.off = len(s.src)
		s.cur = -1
		return
	}

	s.off = s.roff
	r, w := rune(s.src[s.roff]), 1
	if r >= utf8.RuneSelf {
		r, w = utf8.DecodeRune(s.src[s.roff:])
		if r == utf8.RuneError && w == 1 {
			s.error(s.off, s.off+1, "illegal UTF-8 encoding")
		}
	}
	s.roff += w
	s.cur = r
}

func (s *Scanner) peek() byte {
	if s.roff < len(s.src) {
		return s.src[s.roff]
	}
	return 0
}

func (s *Scanner) error(start, end int, msg string) {
	if s.err != nil {
		s.err(token.MakeSpan(token.Pos(start), token.Pos(end)), msg)
	}
}

// advanceIf advances past cur and returns true if cur equals want.
func (s *Scanner) advanceIf(want byte) bool {
	if s.cur == rune(want) {
		s.advance()
		return true
	}
	return false
}

// Scan returns the next token, its source span, and its literal text (the
// decoded value for strings, the raw digits for numbers, the name for
// identifiers, the offending character for an illegal token; empty for
// everything else).
func (s *Scanner) Scan() (tok token.Token, span token.Span, lit string) {
	s.skipWhitespaceAndComments()

	start := s.off
	pos := token.Pos(start)

	switch cur := s.cur; {
	case isLetter(cur):
		lit = s.ident()
		tok = token.Lookup(lit)
		if tok != token.IDENT {
			lit = "" // keywords have a fixed spelling
		}

	case isDigit(cur):
		tok, lit = token.NUMBER, s.number()

	case cur == '"':
		tok, lit = token.STRING, s.string()

	case cur == -1:
		tok = token.EOF

	default:
		s.advance() // always make progress
		switch cur {
		case '+':
			tok = token.PLUS
		case '-':
			tok = token.MINUS
		case '*':
			tok = token.STAR
		case '/':
			tok = token.SLASH
		case '%':
			tok = token.PERCENT
		case '(':
			tok = token.LPAREN
		case ')':
			tok = token.RPAREN
		case '{':
			tok = token.LBRACE
		case '}':
			tok = token.RBRACE
		case ',':
			tok = token.COMMA
		case ';':
			tok = token.SEMI
		case '!':
			tok = token.BANG
			if s.advanceIf('=') {
				tok = token.NEQ
			}
		case '=':
			tok = token.EQ
			if s.advanceIf('=') {
				tok = token.EQL
			}
		case '<':
			tok = token.LT
			if s.advanceIf('=') {
				tok = token.LE
			}
		case '>':
			tok = token.GT
			if s.advanceIf('=') {
				tok = token.GE
			}
		default:
			s.error(start, s.off, "illegal character "+quoteRune(cur))
			tok, lit = token.ILLEGAL, string(cur)
		}
	}

	span = token.MakeSpan(pos, token.Pos(s.off))
	return tok, span, lit
}

func (s *Scanner) ident() string {
	start := s.off
	for isLetter(s.cur) || isDigit(s.cur) {
		s.advance()
	}
	return string(s.src[start:s.off])
}

// number scans a literal matching digit+ ('.' digit+)? ; spec §6.1 leaves no
// room for an exponent or alternate base.
func (s *Scanner) number() string {
	start := s.off
	for isDigit(s.cur) {
		s.advance()
	}
	if s.cur == '.' && isDigit(rune(s.peek())) {
		s.advance()
		for isDigit(s.cur) {
			s.advance()
		}
	}
	return string(s.src[start:s.off])
}

// string scans a '"'-delimited literal with no escape processing: the
// closing quote ends the literal, a newline or EOF before it is an error.
func (s *Scanner) string() string {
	start := s.off
	s.advance() // opening quote
	for {
		switch s.cur {
		case '"':
			raw := string(s.src[start+1 : s.off])
			s.advance() // closing quote
			return raw
		case '\n', -1:
			s.error(start, s.off, "string literal not terminated")
			return string(s.src[start+1 : s.off])
		default:
			s.advance()
		}
	}
}

func (s *Scanner) skipWhitespaceAndComments() {
	for {
		switch {
		case isWhitespace(s.cur):
			s.advance()
		case s.cur == '/' && s.peek() == '/':
			for s.cur != '\n' && s.cur != -1 {
				s.advance()
			}
		default:
			return
		}
	}
}

func isWhitespace(rn rune) bool {
	return rn == ' ' || rn == '\t' || rn == '\n' || rn == '\r'
}

func isLetter(rn rune) bool {
	return 'a' <= rn && rn <= 'z' ||
		'A' <= rn && rn <= 'Z' ||
		rn == '_'
}

func isDigit(rn rune) bool {
	return '0' <= rn && rn <= '9'
}

func quoteRune(rn rune) string {
	if rn < 0 {
		return "EOF"
	}
	return string([]rune{'\'', rn, '\''})
}
