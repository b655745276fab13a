package importer

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"montecarlo.dev/monaco/internal/core/detector"
	"montecarlo.dev/monaco/internal/core/result"
	"montecarlo.dev/monaco/internal/core/transition"
	"montecarlo.dev/monaco/internal/infrastructure/csvtable"
)

// DepthColumn is the header of the depth axis in phi(rho z) files.
const DepthColumn = "rho z"

// IntensitiesFile returns the name of the intensity file of a detector.
func IntensitiesFile(name string) string {
	return "intensities_" + name + ".csv"
}

// PhiZFile returns the name of the phi(rho z) file of a detector.
func PhiZFile(name string) string {
	return "phi_" + name + ".csv"
}

// ImportPhotonIntensity reads intensities_<name>.csv. Only the first data
// row is used; a file without data rows gives an empty result. The program
// reports no uncertainty, so every uncertainty is zero.
func ImportPhotonIntensity(name string, det detector.Detector, jobDir string) (*result.PhotonIntensityResult, error) {
	table, err := readTable(jobDir, IntensitiesFile(name))
	if errors.Is(err, csvtable.ErrNoHeader) {
		return result.NewPhotonIntensityResult(nil), nil
	}
	if err != nil {
		return nil, err
	}

	intensities := make(map[result.PhotonKey]result.Measurement, len(table.Header))
	if len(table.Rows) == 0 {
		return result.NewPhotonIntensityResult(intensities), nil
	}

	for col, label := range table.Header {
		key, err := parseKey(label)
		if err != nil {
			return nil, err
		}
		value, err := table.Float(0, col)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", IntensitiesFile(name), err)
		}
		intensities[key] = result.Measurement{Value: value, Uncertainty: 0.0}
	}

	return result.NewPhotonIntensityResult(intensities), nil
}

// ImportPhiZ reads phi_<name>.csv. The "rho z" column gives the depth of
// every row; each other column becomes one curve, in file order.
func ImportPhiZ(name string, det detector.Detector, jobDir string) (*result.PhiZResult, error) {
	filename := PhiZFile(name)
	table, err := readTable(jobDir, filename)
	if err != nil {
		return nil, err
	}

	depthCol := table.Column(DepthColumn)
	if depthCol < 0 {
		return nil, fmt.Errorf("%s: missing %q column", filename, DepthColumn)
	}

	depths := make([]float64, len(table.Rows))
	for row := range table.Rows {
		if depths[row], err = table.Float(row, depthCol); err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
	}

	distributions := make(map[result.PhotonKey][]result.DepthPoint, len(table.Header)-1)
	for col, label := range table.Header {
		if col == depthCol {
			continue
		}

		key, err := parseKey(label)
		if err != nil {
			return nil, err
		}
		if _, dup := distributions[key]; dup {
			return nil, fmt.Errorf("%s: duplicate column %q", filename, strings.TrimSpace(label))
		}

		curve := make([]result.DepthPoint, len(table.Rows))
		for row := range table.Rows {
			v, err := table.Float(row, col)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", filename, err)
			}
			curve[row] = result.DepthPoint{Depth: depths[row], Intensity: v}
		}
		distributions[key] = curve
	}

	return result.NewPhiZResult(distributions), nil
}

func readTable(jobDir, filename string) (*csvtable.Table, error) {
	table, err := csvtable.ReadFile(filepath.Join(jobDir, filename))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &ImporterError{File: filename, JobDir: jobDir}
	}
	return table, err
}

func parseKey(label string) (result.PhotonKey, error) {
	t, err := transition.Parse(strings.TrimSpace(label))
	if err != nil {
		return result.PhotonKey{}, err
	}
	return result.NewPrimaryKey(t), nil
}
