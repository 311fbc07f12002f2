package species

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Element is an atomic number. The zero value is the unknown element.
type Element int

// Elements addressed by name in code and tests.
const (
	Unknown Element = iota
	H
	He
	Li
	Be
	B
	C
	N
	O
	F
	Ne
	Na
	Mg
	Al
	Si
	P
	S
	Cl
	Ar
	K
	Ca
	Sc
	Ti
	V
	Cr
	Mn
	Fe
	Co
	Ni
	Cu
	Zn
	Ga
	Ge
	As
	Se
	Br
	Kr
	Rb
	Sr
	Y
	Zr
	Nb
	Mo
	Tc
	Ru
	Rh
	Pd
	Ag
	Cd
	In
	Sn
	Sb
	Te
	I
	Xe
	nElements
)

var elementSymbols = [nElements]string{
	"XX",
	"H", "He",
	"Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar",
	"K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn", "Ga", "Ge", "As", "Se", "Br", "Kr",
	"Rb", "Sr", "Y", "Zr", "Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd", "In", "Sn", "Sb", "Te", "I", "Xe",
}

var elementsBySymbol = func() map[string]Element {
	m := make(map[string]Element, nElements)
	for z := H; z < nElements; z++ {
		m[elementSymbols[z]] = z
	}
	return m
}()

// Valid reports whether e is a known, non-zero element.
func (e Element) Valid() bool { return e > Unknown && e < nElements }

// Symbol returns the chemical symbol, or "XX" for unknown elements.
func (e Element) Symbol() string {
	if !e.Valid() {
		return elementSymbols[Unknown]
	}
	return elementSymbols[e]
}

// String implements fmt.Stringer.
func (e Element) String() string { return e.Symbol() }

// ElementFromSymbol resolves a chemical symbol in any letter case ("cl", "CL", "Cl").
// Returns ErrUnknownElement for anything outside the table.
func ElementFromSymbol(symbol string) (Element, error) {
	s := strings.TrimSpace(symbol)
	if s == "" {
		return Unknown, fmt.Errorf("ElementFromSymbol(%q): %w", symbol, ErrUnknownElement)
	}
	// Title-case folds "CL"/"cl" onto the canonical "Cl" spelling.
	s = cases.Title(language.Und).String(s)
	if z, ok := elementsBySymbol[s]; ok {
		return z, nil
	}
	return Unknown, fmt.Errorf("ElementFromSymbol(%q): %w", symbol, ErrUnknownElement)
}
