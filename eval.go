package lettercalc

// Number is the value type of an evaluation. Division truncates.
type Number int64

// Evaluate folds a letter-coded expression into a single Number.
// An empty expression evaluates to 0. On failure the error is one of
// *InvalidCharError, *UnclosedParenError, *MalformedExprError or
// *DivideByZeroError.
func Evaluate(expression string) (Number, error) {
	e := &evaluator{src: []rune(expression)}
	return e.eval(-1)
}

// evaluator is a cursor over the expression. Recursive calls for
// parenthesized groups advance the same cursor, so the outer frame
// resumes right after the matching close parenthesis.
type evaluator struct {
	src []rune
	pos int
}

// eval runs one fold over the cursor. openPos is the offset of the
// open parenthesis that started this frame, or -1 for the top level.
// A frame above the top level returns when it consumes its matching
// close parenthesis.
func (e *evaluator) eval(openPos int) (Number, error) {
	var (
		result  Number
		digits  []Number // most significant first
		group   Number   // result of a parenthesized group
		inGroup bool     // group is set
	)
	pending := Addition
	pendingPos := -1  // offset of the pending operator, -1 if implicit
	awaiting := false // an explicit operator was read and no operand followed

	// operand combines whatever has accumulated since the last
	// operator. An empty buffer combines to 0.
	operand := func() Number {
		if inGroup {
			return group
		}
		return combineDigits(digits)
	}

	apply := func() error {
		n := operand()
		switch pending {
		case Addition:
			result += n
		case Subtraction:
			result -= n
		case Multiplication:
			result *= n
		case Division:
			if n == 0 {
				return &DivideByZeroError{Pos: pendingPos}
			}
			result /= n
		}
		return nil
	}

	for e.pos < len(e.src) {
		pos := e.pos
		r := e.src[pos]
		e.pos++

		tok, err := Tokenize(r, pos)
		if err != nil {
			return 0, err
		}

		switch tok.Type {
		case TokenWhitespace:
			continue

		case TokenDigit:
			if inGroup {
				// Digits after a group extend it positionally, as if
				// its result had been typed as a literal.
				if group < 0 {
					group = group*radix - tok.Digit
				} else {
					group = group*radix + tok.Digit
				}
			} else {
				digits = append(digits, tok.Digit)
			}
			awaiting = false

		case TokenOperator:
			switch tok.Op {
			case OpenParen:
				if len(digits) > 0 || inGroup {
					return 0, &MalformedExprError{Pos: pos, Msg: "open parenthesis after a number"}
				}
				sub, err := e.eval(pos)
				if err != nil {
					return 0, err
				}
				group, inGroup = sub, true
				awaiting = false

			case CloseParen:
				if openPos < 0 {
					// Stray close at the top level is ignored.
					continue
				}
				if awaiting {
					return 0, &MalformedExprError{Pos: pendingPos, Msg: "operator with no operand"}
				}
				if err := apply(); err != nil {
					return 0, err
				}
				return result, nil

			default:
				if err := apply(); err != nil {
					return 0, err
				}
				digits, group, inGroup = digits[:0], 0, false
				pending, pendingPos = tok.Op, pos
				awaiting = true
			}
		}
	}

	if openPos >= 0 {
		return 0, &UnclosedParenError{Pos: openPos}
	}
	if awaiting {
		return 0, &MalformedExprError{Pos: pendingPos, Msg: "operator with no operand"}
	}
	if err := apply(); err != nil {
		return 0, err
	}
	return result, nil
}

// combineDigits folds a sequence of decimal digits, most significant
// first, into the number they spell. An empty sequence is 0.
func combineDigits(digits []Number) Number {
	var n Number
	for _, d := range digits {
		n = n*radix + d
	}
	return n
}
