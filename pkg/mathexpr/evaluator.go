package mathexpr

import (
	"strconv"
	"strings"
)

// Evaluate computes a basic arithmetic expression limited to numbers,
// whitespace, and the four operators + - * /. Multiplication and division
// bind tighter than addition and subtraction; operators of equal precedence
// evaluate left to right. Any other character makes the expression invalid.
func Evaluate(expr string) (float64, error) {
	tokens, err := tokenize(expr)
	if err != nil {
		return 0, err
	}
	if len(tokens) == 0 {
		return 0, ErrEmptyExpression
	}
	return evaluate(tokens)
}

// FormatResult renders a result the way the assistant speaks it:
// whole values without a decimal point, fractional values in full.
func FormatResult(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

type tokenKind int

const (
	tokenNumber tokenKind = iota
	tokenOperator
)

type token struct {
	kind  tokenKind
	value float64
	op    byte
}

func tokenize(expr string) ([]token, error) {
	var tokens []token
	i := 0
	for i < len(expr) {
		ch := expr[i]
		switch {
		case ch == ' ' || ch == '\t':
			i++
		case ch >= '0' && ch <= '9' || ch == '.':
			j := i
			for j < len(expr) && (expr[j] >= '0' && expr[j] <= '9' || expr[j] == '.') {
				j++
			}
			v, err := strconv.ParseFloat(expr[i:j], 64)
			if err != nil {
				return nil, ErrInvalidExpression
			}
			tokens = append(tokens, token{kind: tokenNumber, value: v})
			i = j
		case ch == '+' || ch == '-' || ch == '*' || ch == '/':
			// A leading minus (or one following an operator) is a sign,
			// not an operator. Needed for continuations on a negative
			// running total, e.g. "-2 + 6".
			if ch == '-' && expectsNumber(tokens) && i+1 < len(expr) {
				rest := strings.TrimLeft(expr[i+1:], " \t")
				if len(rest) > 0 && (rest[0] >= '0' && rest[0] <= '9' || rest[0] == '.') {
					consumed := len(expr[i+1:]) - len(rest)
					j := i + 1 + consumed
					k := j
					for k < len(expr) && (expr[k] >= '0' && expr[k] <= '9' || expr[k] == '.') {
						k++
					}
					v, err := strconv.ParseFloat(expr[j:k], 64)
					if err != nil {
						return nil, ErrInvalidExpression
					}
					tokens = append(tokens, token{kind: tokenNumber, value: -v})
					i = k
					continue
				}
			}
			tokens = append(tokens, token{kind: tokenOperator, op: ch})
			i++
		default:
			return nil, ErrInvalidExpression
		}
	}
	return tokens, nil
}

// expectsNumber reports whether the next token must be a number, i.e. we are
// at the start of the expression or just consumed an operator.
func expectsNumber(tokens []token) bool {
	return len(tokens) == 0 || tokens[len(tokens)-1].kind == tokenOperator
}

func evaluate(tokens []token) (float64, error) {
	// Expression must alternate number, operator, number, ...
	if len(tokens)%2 == 0 {
		return 0, ErrInvalidExpression
	}
	for i, t := range tokens {
		if i%2 == 0 && t.kind != tokenNumber {
			return 0, ErrInvalidExpression
		}
		if i%2 == 1 && t.kind != tokenOperator {
			return 0, ErrInvalidExpression
		}
	}

	// First pass: collapse * and /.
	values := []float64{tokens[0].value}
	var ops []byte
	for i := 1; i < len(tokens); i += 2 {
		op := tokens[i].op
		rhs := tokens[i+1].value
		switch op {
		case '*':
			values[len(values)-1] *= rhs
		case '/':
			if rhs == 0 {
				return 0, ErrDivisionByZero
			}
			values[len(values)-1] /= rhs
		default:
			values = append(values, rhs)
			ops = append(ops, op)
		}
	}

	// Second pass: fold + and - left to right.
	result := values[0]
	for i, op := range ops {
		if op == '+' {
			result += values[i+1]
		} else {
			result -= values[i+1]
		}
	}
	return result, nil
}
