package transition

import "strings"

// symbols is indexed by atomic number; index 0 is unused.
var symbols = [...]string{
	"",
	"H", "He", "Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar", "K", "Ca",
	"Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr", "Rb", "Sr", "Y", "Zr",
	"Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd", "In", "Sn",
	"Sb", "Te", "I", "Xe", "Cs", "Ba", "La", "Ce", "Pr", "Nd",
	"Pm", "Sm", "Eu", "Gd", "Tb", "Dy", "Ho", "Er", "Tm", "Yb",
	"Lu", "Hf", "Ta", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg",
	"Tl", "Pb", "Bi", "Po", "At", "Rn", "Fr", "Ra", "Ac", "Th",
	"Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf", "Es",
}

var atomicNumbers = func() map[string]int {
	m := make(map[string]int, len(symbols))
	for z, s := range symbols {
		if s != "" {
			m[strings.ToLower(s)] = z
		}
	}
	return m
}()

// MaxAtomicNumber is the heaviest element the lookup knows about.
const MaxAtomicNumber = len(symbols) - 1

// AtomicNumber returns the atomic number for an element symbol.
// Matching is case-insensitive.
func AtomicNumber(symbol string) (int, bool) {
	z, ok := atomicNumbers[strings.ToLower(symbol)]
	return z, ok
}

// Symbol returns the element symbol for an atomic number, or "" if unknown.
func Symbol(z int) string {
	if z <= 0 || z > MaxAtomicNumber {
		return ""
	}
	return symbols[z]
}
