// Package detector describes which quantities a simulation records.
package detector

import (
	"fmt"
	"sort"
)

// Kind names a detector variant.
type Kind string

const (
	KindPhotonIntensity Kind = "photon_intensity"
	KindPhiZ            Kind = "phi_z"
)

// ParseKind validates a detector kind name.
func ParseKind(value string) (Kind, error) {
	switch Kind(value) {
	case KindPhotonIntensity, KindPhiZ:
		return Kind(value), nil
	default:
		return "", fmt.Errorf("invalid detector kind: %s", value)
	}
}

// Detector is implemented by every detector variant.
type Detector interface {
	Kind() Kind
}

// PhotonIntensity records the intensity of each characteristic line.
type PhotonIntensity struct {
	ElevationDeg float64
	AzimuthDeg   float64
}

func (PhotonIntensity) Kind() Kind { return KindPhotonIntensity }

// PhiZ records the depth distribution phi(rho z) of each characteristic line.
type PhiZ struct {
	ElevationDeg float64
	AzimuthDeg   float64
	Channels     int
}

func (PhiZ) Kind() Kind { return KindPhiZ }

// Options is the part of a simulation's options the importer needs: the job
// name and the named detectors it requested.
type Options struct {
	Name      string
	Detectors map[string]Detector
}

// NewOptions returns empty options for the named job.
func NewOptions(name string) *Options {
	return &Options{Name: name, Detectors: make(map[string]Detector)}
}

// Add registers a detector under name, replacing any previous one.
func (o *Options) Add(name string, det Detector) error {
	if name == "" {
		return fmt.Errorf("detector name cannot be empty")
	}
	if det == nil {
		return fmt.Errorf("detector %q cannot be nil", name)
	}
	if o.Detectors == nil {
		o.Detectors = make(map[string]Detector)
	}
	o.Detectors[name] = det
	return nil
}

// Names returns the detector names in sorted order.
func (o *Options) Names() []string {
	names := make([]string, 0, len(o.Detectors))
	for name := range o.Detectors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// OfKind returns the detectors of the given kind, keyed by name.
func (o *Options) OfKind(kind Kind) map[string]Detector {
	out := make(map[string]Detector)
	for name, det := range o.Detectors {
		if det.Kind() == kind {
			out[name] = det
		}
	}
	return out
}
