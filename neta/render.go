package neta

import (
	"strconv"
	"strings"
)

func reversePrefix(reversed bool) string {
	if reversed {
		return "!"
	}
	return ""
}

func renderSequence(nodes []Node) []string {
	parts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		parts = append(parts, n.String())
	}
	return parts
}

// bracket renders "head" or "head(a,b,...)" when there are inner parts.
func bracket(head string, inner []string) string {
	if len(inner) == 0 {
		return head
	}
	return head + "(" + strings.Join(inner, ",") + ")"
}

func identifierParts(ids []string) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = "#" + id
	}
	return out
}

func modifierPart(name string, op ComparisonOperator, value int) string {
	return name + op.String() + strconv.Itoa(value)
}

func joinParts(parts []string) string { return strings.Join(parts, ",") }
