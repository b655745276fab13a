package transition

// Subshell identifies an atomic subshell in IUPAC notation.
type Subshell int

const (
	K Subshell = iota + 1
	L1
	L2
	L3
	M1
	M2
	M3
	M4
	M5
	N1
	N2
	N3
	N4
	N5
	N6
	N7
)

var subshellNames = map[Subshell]string{
	K: "K", L1: "L1", L2: "L2", L3: "L3",
	M1: "M1", M2: "M2", M3: "M3", M4: "M4", M5: "M5",
	N1: "N1", N2: "N2", N3: "N3", N4: "N4", N5: "N5", N6: "N6", N7: "N7",
}

func (s Subshell) String() string {
	if name, ok := subshellNames[s]; ok {
		return name
	}
	return "?"
}

// Line is a single radiative transition from Src to Dest.
type Line struct {
	Src  Subshell
	Dest Subshell
}

// IUPAC returns the line in IUPAC notation, e.g. "K-L3".
func (l Line) IUPAC() string {
	return l.Dest.String() + "-" + l.Src.String()
}

// Single lines in Siegbahn notation.
var siegbahnLines = map[string]Line{
	"Ka1": {Src: L3, Dest: K},
	"Ka2": {Src: L2, Dest: K},
	"Kb1": {Src: M3, Dest: K},
	"Kb2": {Src: N3, Dest: K},
	"Kb3": {Src: M2, Dest: K},
	"Kb4": {Src: N5, Dest: K},
	"Kb5": {Src: M5, Dest: K},

	"La1": {Src: M5, Dest: L3},
	"La2": {Src: M4, Dest: L3},
	"Lb1": {Src: M4, Dest: L2},
	"Lb2": {Src: N5, Dest: L3},
	"Lb3": {Src: M3, Dest: L1},
	"Lb4": {Src: M2, Dest: L1},
	"Lb6": {Src: N1, Dest: L3},
	"Lg1": {Src: N4, Dest: L2},
	"Lg2": {Src: N2, Dest: L1},
	"Lg3": {Src: N3, Dest: L1},
	"Ll":  {Src: M1, Dest: L3},
	"Ln":  {Src: M1, Dest: L2},

	"Ma1": {Src: N7, Dest: M5},
	"Ma2": {Src: N6, Dest: M5},
	"Mb":  {Src: N6, Dest: M4},
	"Mg":  {Src: N5, Dest: M3},
}

// Families group several single lines under one Siegbahn name.
var siegbahnFamilies = map[string][]string{
	"Ka": {"Ka1", "Ka2"},
	"Kb": {"Kb1", "Kb2", "Kb3", "Kb4", "Kb5"},
	"La": {"La1", "La2"},
	"Lb": {"Lb1", "Lb2", "Lb3", "Lb4", "Lb6"},
	"Lg": {"Lg1", "Lg2", "Lg3"},
	"Ma": {"Ma1", "Ma2"},
	"K":  {"Ka1", "Ka2", "Kb1", "Kb2", "Kb3", "Kb4", "Kb5"},
	"L":  {"La1", "La2", "Lb1", "Lb2", "Lb3", "Lb4", "Lb6", "Lg1", "Lg2", "Lg3", "Ll", "Ln"},
	"M":  {"Ma1", "Ma2", "Mb", "Mg"},
}

var iupacToSiegbahn = func() map[string]string {
	m := make(map[string]string, len(siegbahnLines))
	for name, line := range siegbahnLines {
		m[line.IUPAC()] = name
	}
	return m
}()
