package forcefield

import (
	"fmt"

	"github.com/katalvlaran/neta/neta"
	"github.com/katalvlaran/neta/species"
)

// AtomType is a named, numbered NETA definition for one element.
// It satisfies neta.AtomType.
type AtomType struct {
	name        string
	id          int
	element     species.Element
	description string
	definition  *neta.Definition
}

// Name returns the unique type name.
func (t *AtomType) Name() string { return t.name }

// ID returns the unique type id.
func (t *AtomType) ID() int { return t.id }

// Element returns the element the type applies to.
func (t *AtomType) Element() species.Element { return t.element }

// Description returns the free-text description.
func (t *AtomType) Description() string { return t.description }

// Definition returns the NETA definition.
func (t *AtomType) Definition() *neta.Definition { return t.definition }

// String renders "name (id)".
func (t *AtomType) String() string { return fmt.Sprintf("%s (%d)", t.name, t.id) }

// atomTypeInput is the validated form of AddAtomType's arguments.
type atomTypeInput struct {
	Name       string           `validate:"required,excludesall=&#()0x2C"`
	ID         int              `validate:"min=0"`
	Element    species.Element  `validate:"element"`
	Definition *neta.Definition `validate:"required"`
}
