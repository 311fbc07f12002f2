package forcefield

import (
	"fmt"
	"io"

	"gopkg.in/go-playground/validator.v9"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/neta/neta"
	"github.com/katalvlaran/neta/species"
)

// Document is the YAML form of a Forcefield. Patterns are structured node
// trees; types may reference types declared earlier in the same document.
//
//	name: demo
//	types:
//	  - name: HC
//	    id: 1
//	    element: H
//	    pattern:
//	      - kind: connection
//	        elements: [C]
type Document struct {
	Name  string         `yaml:"name" validate:"required"`
	Types []TypeDocument `yaml:"types" validate:"required,min=1,dive"`
}

// TypeDocument describes one atom type.
type TypeDocument struct {
	Name        string         `yaml:"name" validate:"required"`
	ID          int            `yaml:"id" validate:"min=0"`
	Element     string         `yaml:"element" validate:"required"`
	Description string         `yaml:"description"`
	Pattern     []NodeDocument `yaml:"pattern" validate:"dive"`
}

// ModifierDocument is one "op value" modifier.
type ModifierDocument struct {
	Op    string `yaml:"op" validate:"required"`
	Value int    `yaml:"value"`
}

// NodeDocument describes one pattern node. Which fields apply depends on Kind:
//
//	bond_count, hydrogen_count  op, value
//	geometry                    op, geometry
//	character                   elements, types
//	connection                  elements, types, modifiers (n), flags (root), bond, identifiers, branch
//	ring                        modifiers (size, n), branch of ring_position nodes
//	ring_position               elements, types, modifiers (n), identifiers, branch
//	or                          alternatives
//	base                        identifiers, branch
type NodeDocument struct {
	Kind         string                      `yaml:"kind" validate:"required"`
	Reverse      bool                        `yaml:"reverse"`
	Op           string                      `yaml:"op"`
	Value        *int                        `yaml:"value"`
	Geometry     string                      `yaml:"geometry"`
	Elements     []string                    `yaml:"elements"`
	Types        []string                    `yaml:"types"`
	Bond         string                      `yaml:"bond"`
	Identifiers  []string                    `yaml:"identifiers"`
	Modifiers    map[string]ModifierDocument `yaml:"modifiers" validate:"dive"`
	Flags        []string                    `yaml:"flags"`
	Branch       []NodeDocument              `yaml:"branch" validate:"dive"`
	Alternatives [][]NodeDocument            `yaml:"alternatives" validate:"dive,dive"`
}

// LoadYAML decodes and validates a forcefield document from r and builds the Forcefield.
func LoadYAML(r io.Reader) (*Forcefield, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("LoadYAML: %w: %w", ErrInvalidDocument, err)
	}

	return doc.Build()
}

// Build validates the document and constructs the Forcefield it describes.
func (doc Document) Build() (*Forcefield, error) {
	if err := validator.New().Struct(doc); err != nil {
		return nil, fmt.Errorf("Build: %w: %w", ErrInvalidDocument, err)
	}

	ff := NewForcefield(doc.Name)
	for _, td := range doc.Types {
		el, err := species.ElementFromSymbol(td.Element)
		if err != nil {
			return nil, fmt.Errorf("Build: type %q: %w", td.Name, err)
		}
		nodes, err := ff.buildSequence(td.Pattern)
		if err != nil {
			return nil, fmt.Errorf("Build: type %q: %w", td.Name, err)
		}
		def, err := neta.NewDefinition(nodes...)
		if err != nil {
			return nil, fmt.Errorf("Build: type %q: %w", td.Name, err)
		}
		if _, err = ff.AddAtomType(el, td.ID, td.Name, td.Description, def); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}
	logger.Infof("%s: loaded %d atom %s", ff.name, len(doc.Types), plural("type", len(doc.Types)))

	return ff, nil
}

func (ff *Forcefield) buildSequence(docs []NodeDocument) ([]neta.Node, error) {
	nodes := make([]neta.Node, 0, len(docs))
	for i, d := range docs {
		n, err := ff.buildNode(d)
		if err != nil {
			return nil, fmt.Errorf("node %d (%s): %w", i, d.Kind, err)
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

// buildNode constructs one node and applies the settings shared by all kinds.
func (ff *Forcefield) buildNode(d NodeDocument) (neta.Node, error) {
	kind, err := neta.ParseNodeType(d.Kind)
	if err != nil {
		return nil, err
	}

	var n neta.Node
	switch kind {
	case neta.NodeBase:
		n, err = neta.NewBase()
	case neta.NodeBondCount:
		bc := neta.NewBondCount()
		if d.Value != nil {
			op, perr := parseOp(d.Op)
			if perr != nil {
				return nil, perr
			}
			bc.SetTarget(op, *d.Value)
		}
		n = bc
	case neta.NodeHydrogenCount:
		hc := neta.NewHydrogenCount()
		if d.Value != nil {
			op, perr := parseOp(d.Op)
			if perr != nil {
				return nil, perr
			}
			hc.SetTarget(op, *d.Value)
		}
		n = hc
	case neta.NodeGeometry:
		op, perr := parseOp(d.Op)
		if perr != nil {
			return nil, perr
		}
		g, gerr := species.ParseGeometry(d.Geometry)
		if gerr != nil {
			return nil, gerr
		}
		n = neta.NewGeometry(op, g)
	case neta.NodeCharacter:
		n = neta.NewCharacter()
	case neta.NodeConnection:
		c := neta.NewConnection()
		if d.Bond != "" {
			bt, berr := species.ParseBondType(d.Bond)
			if berr != nil {
				return nil, berr
			}
			c.SetBondType(bt)
		}
		n = c
	case neta.NodeRing:
		n, err = neta.NewRing()
	case neta.NodeRingPosition:
		n = neta.NewRingPosition()
	case neta.NodeOr:
		n, err = ff.buildOr(d.Alternatives)
	default:
		return nil, fmt.Errorf("kind %s: %w", kind, neta.ErrUnknownNodeType)
	}
	if err != nil {
		return nil, err
	}

	if err = ff.applyTargets(n, d); err != nil {
		return nil, err
	}
	if err = applySettings(n, d); err != nil {
		return nil, err
	}
	if len(d.Branch) > 0 {
		branch, berr := ff.buildSequence(d.Branch)
		if berr != nil {
			return nil, berr
		}
		if err = n.SetBranch(branch...); err != nil {
			return nil, err
		}
	}
	if d.Reverse {
		n.SetReverseLogic()
	}
	return n, nil
}

func (ff *Forcefield) buildOr(alternatives [][]NodeDocument) (*neta.Or, error) {
	or, err := neta.NewOr()
	if err != nil {
		return nil, err
	}
	for i, alt := range alternatives {
		nodes, err := ff.buildSequence(alt)
		if err != nil {
			return nil, fmt.Errorf("alternative %d: %w", i, err)
		}
		if err = or.AddAlternative(nodes...); err != nil {
			return nil, fmt.Errorf("alternative %d: %w", i, err)
		}
	}
	return or, nil
}

// applyTargets resolves element symbols and references to earlier atom types.
func (ff *Forcefield) applyTargets(n neta.Node, d NodeDocument) error {
	if len(d.Elements) == 0 && len(d.Types) == 0 {
		return nil
	}
	t, ok := n.(neta.Targeted)
	if !ok {
		return fmt.Errorf("%s takes no element or type targets: %w", n.Type(), ErrInvalidDocument)
	}
	for _, sym := range d.Elements {
		el, err := species.ElementFromSymbol(sym)
		if err != nil {
			return err
		}
		t.AddElementTarget(el)
	}
	for _, name := range d.Types {
		at, err := ff.AtomTypeByName(name)
		if err != nil {
			return err
		}
		t.AddAtomTypeTarget(at)
	}
	return nil
}

func applySettings(n neta.Node, d NodeDocument) error {
	for name, m := range d.Modifiers {
		op, err := parseOp(m.Op)
		if err != nil {
			return err
		}
		if !n.SetModifier(name, op, m.Value) {
			return fmt.Errorf("%s: modifier %q: %w", n.Type(), name, ErrInvalidDocument)
		}
	}
	for _, name := range d.Flags {
		if !n.SetFlag(name, true) {
			return fmt.Errorf("%s: flag %q: %w", n.Type(), name, ErrInvalidDocument)
		}
	}
	for _, id := range d.Identifiers {
		if !n.AddIdentifier(id) {
			return fmt.Errorf("%s: identifier %q: %w", n.Type(), id, ErrInvalidDocument)
		}
	}
	return nil
}

// parseOp defaults an empty operator to "=".
func parseOp(s string) (neta.ComparisonOperator, error) {
	if s == "" {
		return neta.EqualTo, nil
	}
	return neta.ParseComparisonOperator(s)
}
