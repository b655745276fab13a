// Package transition resolves textual characteristic X-ray line labels
// such as "Cu Ka" or "Fe K-L3" into comparable Transition values.
package transition

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownTransition is returned when a label cannot be resolved.
var ErrUnknownTransition = errors.New("unknown transition")

// Transition is a characteristic line (or family of lines) of one element.
// It is a value type and safe to use as a map key.
type Transition struct {
	z        int
	notation string
}

// New returns the transition of element z named by a Siegbahn notation,
// either a single line ("Ka1") or a family ("Ka").
func New(z int, notation string) (Transition, error) {
	if Symbol(z) == "" {
		return Transition{}, fmt.Errorf("%w: atomic number %d", ErrUnknownTransition, z)
	}
	canonical, ok := lookupNotation(notation)
	if !ok {
		return Transition{}, fmt.Errorf("%w: line %q", ErrUnknownTransition, notation)
	}
	return Transition{z: z, notation: canonical}, nil
}

// Parse resolves a label of the form "<symbol> <line>". The line may be
// written in Siegbahn ("Ka", "La1") or IUPAC ("K-L3") notation.
func Parse(label string) (Transition, error) {
	fields := strings.Fields(label)
	if len(fields) != 2 {
		return Transition{}, fmt.Errorf("%w: %q", ErrUnknownTransition, label)
	}

	z, ok := AtomicNumber(fields[0])
	if !ok {
		return Transition{}, fmt.Errorf("%w: element %q in %q", ErrUnknownTransition, fields[0], label)
	}

	notation := fields[1]
	if strings.Contains(notation, "-") {
		name, ok := iupacToSiegbahn[strings.ToUpper(notation)]
		if !ok {
			return Transition{}, fmt.Errorf("%w: line %q in %q", ErrUnknownTransition, notation, label)
		}
		notation = name
	}

	t, err := New(z, notation)
	if err != nil {
		return Transition{}, fmt.Errorf("%w in %q", err, label)
	}
	return t, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level tables.
func MustParse(label string) Transition {
	t, err := Parse(label)
	if err != nil {
		panic(err)
	}
	return t
}

// Z returns the atomic number.
func (t Transition) Z() int { return t.z }

// Symbol returns the element symbol.
func (t Transition) Symbol() string { return Symbol(t.z) }

// Siegbahn returns the canonical Siegbahn notation, e.g. "Ka1".
func (t Transition) Siegbahn() string { return t.notation }

// IsFamily reports whether the transition groups several lines.
func (t Transition) IsFamily() bool {
	_, ok := siegbahnFamilies[t.notation]
	return ok
}

// Lines returns the single lines covered by the transition.
func (t Transition) Lines() []Line {
	if members, ok := siegbahnFamilies[t.notation]; ok {
		lines := make([]Line, 0, len(members))
		for _, m := range members {
			lines = append(lines, siegbahnLines[m])
		}
		return lines
	}
	if line, ok := siegbahnLines[t.notation]; ok {
		return []Line{line}
	}
	return nil
}

// IsZero reports whether t is the zero Transition.
func (t Transition) IsZero() bool { return t.z == 0 }

func (t Transition) String() string {
	if t.IsZero() {
		return ""
	}
	return t.Symbol() + " " + t.notation
}

// Compare orders transitions by atomic number, then notation.
func Compare(a, b Transition) int {
	switch {
	case a.z < b.z:
		return -1
	case a.z > b.z:
		return 1
	}
	return strings.Compare(a.notation, b.notation)
}

// Sort sorts transitions in place using Compare.
func Sort(ts []Transition) {
	sort.Slice(ts, func(i, j int) bool { return Compare(ts[i], ts[j]) < 0 })
}

var notationIndex = func() map[string]string {
	m := make(map[string]string, len(siegbahnLines)+len(siegbahnFamilies))
	for name := range siegbahnLines {
		m[strings.ToLower(name)] = name
	}
	for name := range siegbahnFamilies {
		m[strings.ToLower(name)] = name
	}
	return m
}()

func lookupNotation(notation string) (string, bool) {
	name, ok := notationIndex[strings.ToLower(notation)]
	return name, ok
}
