// File: forcefield.go
// Role: atom-type catalog and best-score type assignment.
// Determinism:
//   - AtomTypes() returns registration order; ties in DetermineAtomType go to
//     the earliest registered type.
// Concurrency:
//   - Registration is guarded by mu; scoring reads under the read lock.

package forcefield

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/jinzhu/inflection"
	"gopkg.in/go-playground/validator.v9"

	"github.com/katalvlaran/neta/log"
	"github.com/katalvlaran/neta/neta"
	"github.com/katalvlaran/neta/species"
)

var logger = log.NewModuleLogger("forcefield")

// Forcefield owns a set of atom types.
type Forcefield struct {
	mu sync.RWMutex

	name      string
	types     []*AtomType
	byElement map[species.Element][]*AtomType
	byName    map[string]*AtomType
	byID      map[int]*AtomType
	validate  *validator.Validate
}

// NewForcefield returns an empty forcefield.
func NewForcefield(name string) *Forcefield {
	v := validator.New()
	err := v.RegisterValidation("element", func(fl validator.FieldLevel) bool {
		if fl.Field().Kind() != reflect.Int {
			return false
		}
		return species.Element(fl.Field().Int()).Valid()
	})
	if err != nil {
		panic(fmt.Sprintf("forcefield: NewForcefield: register element validation: %v", err))
	}

	return &Forcefield{
		name:      name,
		byElement: make(map[species.Element][]*AtomType),
		byName:    make(map[string]*AtomType),
		byID:      make(map[int]*AtomType),
		validate:  v,
	}
}

// Name returns the forcefield name.
func (ff *Forcefield) Name() string { return ff.name }

// AddAtomType registers a new atom type.
//
// Steps:
//  1. Validate the arguments (ErrInvalidAtomType).
//  2. Under the write lock, reject a duplicate name or id (ErrDuplicateAtomType).
//  3. Append to the catalog and the per-element index.
func (ff *Forcefield) AddAtomType(el species.Element, id int, name, description string, def *neta.Definition) (*AtomType, error) {
	in := atomTypeInput{Name: name, ID: id, Element: el, Definition: def}
	if err := ff.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("AddAtomType(%q): %w: %w", name, ErrInvalidAtomType, err)
	}

	ff.mu.Lock()
	defer ff.mu.Unlock()

	if _, dup := ff.byName[name]; dup {
		return nil, fmt.Errorf("AddAtomType(%q): name: %w", name, ErrDuplicateAtomType)
	}
	if _, dup := ff.byID[id]; dup {
		return nil, fmt.Errorf("AddAtomType(%q): id %d: %w", name, id, ErrDuplicateAtomType)
	}

	t := &AtomType{name: name, id: id, element: el, description: description, definition: def}
	ff.types = append(ff.types, t)
	ff.byElement[el] = append(ff.byElement[el], t)
	ff.byName[name] = t
	ff.byID[id] = t
	logger.Debugf("%s: added atom type %s for %s: %s", ff.name, t, el, def)

	return t, nil
}

// AtomTypeByName returns the atom type called name.
func (ff *Forcefield) AtomTypeByName(name string) (*AtomType, error) {
	ff.mu.RLock()
	defer ff.mu.RUnlock()

	t, ok := ff.byName[name]
	if !ok {
		return nil, fmt.Errorf("AtomTypeByName(%q): %w", name, ErrAtomTypeNotFound)
	}
	return t, nil
}

// AtomTypeByID returns the atom type with the given id.
func (ff *Forcefield) AtomTypeByID(id int) (*AtomType, error) {
	ff.mu.RLock()
	defer ff.mu.RUnlock()

	t, ok := ff.byID[id]
	if !ok {
		return nil, fmt.Errorf("AtomTypeByID(%d): %w", id, ErrAtomTypeNotFound)
	}
	return t, nil
}

// AtomTypes returns every atom type in registration order.
func (ff *Forcefield) AtomTypes() []*AtomType {
	ff.mu.RLock()
	defer ff.mu.RUnlock()

	return append([]*AtomType(nil), ff.types...)
}

// AtomTypesFor returns the atom types of element el in registration order.
func (ff *Forcefield) AtomTypesFor(el species.Element) []*AtomType {
	ff.mu.RLock()
	defer ff.mu.RUnlock()

	return append([]*AtomType(nil), ff.byElement[el]...)
}

// DetermineAtomType returns the best scoring atom type for a and its score,
// or (nil, neta.NoMatch) if no type of a's element matches.
func (ff *Forcefield) DetermineAtomType(a *species.Atom) (*AtomType, int) {
	var (
		best      *AtomType
		bestScore = neta.NoMatch
	)
	for _, t := range ff.AtomTypesFor(a.Element()) {
		score := t.definition.Score(a)
		logger.Debug2f("%s: score for %s against %s is %d", ff.name, a, t, score)
		if score > bestScore {
			best, bestScore = t, score
		}
	}

	if best == nil {
		logger.Debugf("%s: no suitable type for %s", ff.name, a)
	} else {
		logger.Debugf("%s: best type for %s is %s with a score of %d", ff.name, a, best, bestScore)
	}
	return best, bestScore
}

// Assignment is the outcome of DetermineAtomType for one atom.
type Assignment struct {
	Atom  *species.Atom
	Type  *AtomType // nil if no type matched
	Score int
}

// DetermineAtomTypes assigns every atom of s, in atom order.
func (ff *Forcefield) DetermineAtomTypes(s *species.Species) []Assignment {
	atoms := s.Atoms()
	out := make([]Assignment, len(atoms))
	failed := 0
	for i, a := range atoms {
		t, score := ff.DetermineAtomType(a)
		out[i] = Assignment{Atom: a, Type: t, Score: score}
		if t == nil {
			failed++
		}
	}

	if failed > 0 {
		logger.Warningf("%s: no atom type found for %d %s of '%s'", ff.name, failed, plural("atom", failed), s.Name())
	}
	return out
}

// plural returns word in the plural unless n is one.
func plural(word string, n int) string {
	if n == 1 {
		return word
	}
	return inflection.Plural(word)
}
