package neta

import "github.com/katalvlaran/neta/species"

// Character tests the identity of the atom under test itself ("?C", "?&CT").
//
// A negated Character matches unconditionally: both the element test and the
// atom-type test are skipped when reverse logic is set.
type Character struct {
	node
	targets
}

// NewCharacter returns a Character allowing elements.
func NewCharacter(elements ...species.Element) *Character {
	c := &Character{node: node{kind: NodeCharacter}}
	for _, el := range elements {
		c.AddElementTarget(el)
	}
	return c
}

func (c *Character) score(a *species.Atom) int {
	if c.reverseLogic {
		return 1
	}
	return c.targets.score(a)
}

func (c *Character) String() string {
	return reversePrefix(c.reverseLogic) + "?" + c.targets.String()
}
