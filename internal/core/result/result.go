// Package result holds the typed results produced by importing the output
// files of one simulation job. Results are immutable once constructed.
package result

// Kind names a result type.
type Kind string

const (
	KindPhotonIntensity Kind = "photon_intensity"
	KindPhiZ            Kind = "phi_z"
)

// Result is implemented by every imported result.
type Result interface {
	Kind() Kind
	Keys() []PhotonKey
	Len() int
}

// Measurement is a value with its absolute uncertainty.
type Measurement struct {
	Value       float64 `json:"value" yaml:"value"`
	Uncertainty float64 `json:"uncertainty" yaml:"uncertainty"`
}

// PhotonIntensityResult maps each recorded line to its intensity.
type PhotonIntensityResult struct {
	intensities map[PhotonKey]Measurement
}

// NewPhotonIntensityResult copies intensities into a new result.
func NewPhotonIntensityResult(intensities map[PhotonKey]Measurement) *PhotonIntensityResult {
	m := make(map[PhotonKey]Measurement, len(intensities))
	for k, v := range intensities {
		m[k] = v
	}
	return &PhotonIntensityResult{intensities: m}
}

func (r *PhotonIntensityResult) Kind() Kind { return KindPhotonIntensity }

func (r *PhotonIntensityResult) Len() int { return len(r.intensities) }

// Keys returns the recorded keys sorted by transition.
func (r *PhotonIntensityResult) Keys() []PhotonKey {
	keys := make([]PhotonKey, 0, len(r.intensities))
	for k := range r.intensities {
		keys = append(keys, k)
	}
	sortKeys(keys)
	return keys
}

// Intensity returns the measurement recorded for key.
func (r *PhotonIntensityResult) Intensity(key PhotonKey) (Measurement, bool) {
	m, ok := r.intensities[key]
	return m, ok
}

// DepthPoint is one sample of a phi(rho z) curve.
type DepthPoint struct {
	Depth     float64 `json:"rho_z" yaml:"rho_z"`
	Intensity float64 `json:"intensity" yaml:"intensity"`
}

// PhiZResult maps each recorded line to its depth distribution. Points keep
// the order in which they were read.
type PhiZResult struct {
	distributions map[PhotonKey][]DepthPoint
}

// NewPhiZResult copies distributions into a new result.
func NewPhiZResult(distributions map[PhotonKey][]DepthPoint) *PhiZResult {
	m := make(map[PhotonKey][]DepthPoint, len(distributions))
	for k, v := range distributions {
		m[k] = append([]DepthPoint(nil), v...)
	}
	return &PhiZResult{distributions: m}
}

func (r *PhiZResult) Kind() Kind { return KindPhiZ }

func (r *PhiZResult) Len() int { return len(r.distributions) }

// Keys returns the recorded keys sorted by transition.
func (r *PhiZResult) Keys() []PhotonKey {
	keys := make([]PhotonKey, 0, len(r.distributions))
	for k := range r.distributions {
		keys = append(keys, k)
	}
	sortKeys(keys)
	return keys
}

// Distribution returns a copy of the curve recorded for key.
func (r *PhiZResult) Distribution(key PhotonKey) ([]DepthPoint, bool) {
	d, ok := r.distributions[key]
	if !ok {
		return nil, false
	}
	return append([]DepthPoint(nil), d...), true
}
