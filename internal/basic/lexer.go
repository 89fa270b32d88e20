package basic

import (
	"github.com/edwingeng/deque"
	"unicode"
)

//
// A token source for a single line of text.  The whole line is
// scanned up front, and the parser consumes tokens from the front
// of the queue.  Tokens the parser looked at but didn't want can be
// pushed back with SaveToken
//

type TokenSource struct {
	tokens deque.Deque
	line   string
}

func NewTokenSource(line string) *TokenSource {

	ts := &TokenSource{tokens: deque.NewDeque(), line: line}

	scanLine(ts)

	return ts
}

func (ts *TokenSource) Line() string {

	return ts.line
}

func (ts *TokenSource) HasMoreTokens() bool {

	return !ts.tokens.Empty()
}

//
// Return the next token without consuming it.  An exhausted source
// yields EOL tokens forever
//

func (ts *TokenSource) PeekToken() Token {

	if ts.tokens.Empty() {
		return Token{Type: EOL}
	}

	return ts.tokens.Front().(Token)
}

func (ts *TokenSource) NextToken() Token {

	if ts.tokens.Empty() {
		return Token{Type: EOL}
	}

	return ts.tokens.PopFront().(Token)
}

func (ts *TokenSource) SaveToken(tok Token) {

	if tok.Type == EOL {
		return
	}

	ts.tokens.PushFront(tok)
}

//
// Break the line into words, integer literals and single character
// operators.  Whitespace separates tokens and is otherwise dropped
//

func scanLine(ts *TokenSource) {

	src := []rune(ts.line)

	for i := 0; i < len(src); {
		ch := src[i]

		switch {
		case unicode.IsSpace(ch):
			i++

		case unicode.IsLetter(ch):
			j := i + 1
			for j < len(src) && isWordChar(src[j]) {
				j++
			}
			ts.tokens.PushBack(Token{Type: WORD, Text: string(src[i:j])})
			i = j

		case isDigit(ch):
			j := i + 1
			for j < len(src) && isDigit(src[j]) {
				j++
			}
			ts.tokens.PushBack(Token{Type: NUMBER, Text: string(src[i:j])})
			i = j

		default:
			ts.tokens.PushBack(Token{Type: OPERATOR, Text: string(ch)})
			i++
		}
	}
}

func isWordChar(ch rune) bool {

	return unicode.IsLetter(ch) || isDigit(ch) || ch == '_'
}

//
// unicode.IsDigit would accept digits strconv can't parse
//

func isDigit(ch rune) bool {

	return ch >= '0' && ch <= '9'
}
