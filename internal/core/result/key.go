package result

import (
	"fmt"
	"sort"

	"montecarlo.dev/monaco/internal/core/transition"
)

// Flag selects which contribution of the emitted radiation a key refers to.
type Flag string

const (
	FlagCharacteristic Flag = "C" // characteristic fluorescence
	FlagBremsstrahlung Flag = "B" // bremsstrahlung fluorescence
	FlagPrimary        Flag = "P" // primary (no fluorescence)
	FlagTotal          Flag = "T" // primary plus all fluorescence
)

// PhotonKey identifies one recorded line together with the conditions
// under which it was recorded. Absorption is true for emitted intensities,
// i.e. after absorption in the sample.
type PhotonKey struct {
	Transition transition.Transition
	Absorption bool
	Flag       Flag
}

// NewPrimaryKey returns the key for the emitted primary intensity of t.
func NewPrimaryKey(t transition.Transition) PhotonKey {
	return PhotonKey{Transition: t, Absorption: true, Flag: FlagPrimary}
}

func (k PhotonKey) String() string {
	state := "generated"
	if k.Absorption {
		state = "emitted"
	}
	return fmt.Sprintf("%s (%s, %s)", k.Transition, state, k.Flag)
}

func sortKeys(keys []PhotonKey) {
	sort.Slice(keys, func(i, j int) bool {
		if c := transition.Compare(keys[i].Transition, keys[j].Transition); c != 0 {
			return c < 0
		}
		if keys[i].Absorption != keys[j].Absorption {
			return keys[i].Absorption
		}
		return keys[i].Flag < keys[j].Flag
	})
}
