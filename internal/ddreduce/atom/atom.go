// Package atom builds the atom arrays that Configurations index into
// (spec §3/glossary): whole lines for the line pass, individual
// characters for the char pass. The char pass runs on the output of
// the line pass, recovered from picire's two-phase "line reduction
// then character reduction" driver behavior.
package atom

import "strings"

// Array is an ordered, immutable sequence of atomic input units.
// Index i of a Configuration refers to Array[i].
type Array []string

// Join concatenates the atoms at the given indices, in index order.
// It produces the same content as builder.Concat built from the same
// atoms.
func (a Array) Join(indices []int) string {
	var b strings.Builder
	for _, i := range indices {
		if i >= 0 && i < len(a) {
			b.WriteString(a[i])
		}
	}
	return b.String()
}

// Len reports the number of atoms.
func (a Array) Len() int { return len(a) }

// Lines splits source text into an Array of whole lines, each
// retaining its trailing newline (if any) so that Join reproduces the
// original text exactly when all indices are included. A trailing
// partial line with no newline becomes its own atom.
func Lines(source string) Array {
	if source == "" {
		return Array{}
	}
	var atoms Array
	start := 0
	for i := 0; i < len(source); i++ {
		if source[i] == '\n' {
			atoms = append(atoms, source[start:i+1])
			start = i + 1
		}
	}
	if start < len(source) {
		atoms = append(atoms, source[start:])
	}
	return atoms
}

// Chars splits source text into an Array of individual runes, each
// rendered back to its UTF-8 string form. Intended to run on the
// already-line-reduced text, per the two-phase driver sequencing.
func Chars(source string) Array {
	runes := []rune(source)
	atoms := make(Array, len(runes))
	for i, r := range runes {
		atoms[i] = string(r)
	}
	return atoms
}
