// Package lettercalc evaluates arithmetic expressions written in a
// letter-coded encoding: digits 0-9 are literal digits, and the
// operators are single letters.
//
//	a  addition
//	b  subtraction
//	c  multiplication
//	d  division
//	e  open parenthesis
//	f  close parenthesis
//
// Whitespace is ignored. Outside parentheses operators apply strictly
// left to right with no precedence, so "3 a 2 c 4" is (3+2)*4 = 20.
package lettercalc

import "unicode"

// The operator letters. The encoding is fixed.
const (
	Addition       = 'a'
	Subtraction    = 'b'
	Multiplication = 'c'
	Division       = 'd'
	OpenParen      = 'e'
	CloseParen     = 'f'
)

const radix = 10

type TokenType int

const (
	TokenDigit TokenType = iota
	TokenOperator
	TokenWhitespace
)

// Token is the classification of a single input rune.
type Token struct {
	Type  TokenType
	Op    rune   // one of the six operator letters when Type == TokenOperator
	Digit Number // 0-9 when Type == TokenDigit
}

// Tokenize classifies one rune of an expression. pos is the rune
// offset of r in the input and is carried into the error when r is
// not part of the encoding.
func Tokenize(r rune, pos int) (Token, error) {
	if r >= '0' && r < '0'+radix {
		return Token{Type: TokenDigit, Digit: Number(r - '0')}, nil
	}
	switch r {
	case Addition, Subtraction, Multiplication, Division, OpenParen, CloseParen:
		return Token{Type: TokenOperator, Op: r}, nil
	}
	if unicode.IsSpace(r) {
		return Token{Type: TokenWhitespace}, nil
	}
	return Token{}, &InvalidCharError{Char: r, Pos: pos}
}
