// File: comparator.go
// Role: the six relational operators shared by every countable constraint.

package neta

import "fmt"

// ComparisonOperator is a relational operator between two integers.
type ComparisonOperator int

const (
	EqualTo ComparisonOperator = iota
	NotEqualTo
	GreaterThan
	LessThan
	GreaterThanEqualTo
	LessThanEqualTo
)

var operatorSymbols = [...]string{"=", "!=", ">", "<", ">=", "<="}

// String returns the canonical NETA symbol of the operator.
func (op ComparisonOperator) String() string {
	if op < EqualTo || int(op) >= len(operatorSymbols) {
		return fmt.Sprintf("ComparisonOperator(%d)", int(op))
	}
	return operatorSymbols[op]
}

// ParseComparisonOperator parses "=", "==", "!=", ">", "<", ">=" or "<=".
func ParseComparisonOperator(s string) (ComparisonOperator, error) {
	if s == "==" {
		return EqualTo, nil
	}
	for i, sym := range operatorSymbols {
		if sym == s {
			return ComparisonOperator(i), nil
		}
	}
	return EqualTo, fmt.Errorf("ParseComparisonOperator(%q): %w", s, ErrUnknownOperator)
}

// Compare evaluates "lhs op rhs". An unknown operator is logged and yields false.
func Compare(lhs int, op ComparisonOperator, rhs int) bool {
	switch op {
	case EqualTo:
		return lhs == rhs
	case NotEqualTo:
		return lhs != rhs
	case GreaterThan:
		return lhs > rhs
	case LessThan:
		return lhs < rhs
	case GreaterThanEqualTo:
		return lhs >= rhs
	case LessThanEqualTo:
		return lhs <= rhs
	}

	logger.Errorf("Compare: unknown operator %d", int(op))
	return false
}

// satisfiedEarly reports whether a running count already satisfies op for good:
// only ">" and ">=" can never be undone by further matches.
func satisfiedEarly(count int, op ComparisonOperator, value int) bool {
	return (op == GreaterThan || op == GreaterThanEqualTo) && Compare(count, op, value)
}
