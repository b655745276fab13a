package importer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"montecarlo.dev/monaco/internal/core/detector"
	"montecarlo.dev/monaco/internal/core/result"
	"montecarlo.dev/monaco/internal/core/transition"
	"montecarlo.dev/monaco/internal/infrastructure/csvtable"
)

func writeJobFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func key(label string) result.PhotonKey {
	return result.NewPrimaryKey(transition.MustParse(label))
}

func TestImportPhotonIntensity_ParsesFirstRow(t *testing.T) {
	dir := t.TempDir()
	writeJobFile(t, dir, "intensities_X.csv", "Cu Ka;Cu Kb\n1,5;0,3\n9,9;9,9\n")

	res, err := ImportPhotonIntensity("X", detector.PhotonIntensity{}, dir)
	require.NoError(t, err)
	require.Equal(t, 2, res.Len())

	ka, ok := res.Intensity(key("Cu Ka"))
	require.True(t, ok)
	assert.Equal(t, result.Measurement{Value: 1.5, Uncertainty: 0.0}, ka)

	kb, ok := res.Intensity(key("Cu Kb"))
	require.True(t, ok)
	assert.Equal(t, result.Measurement{Value: 0.3, Uncertainty: 0.0}, kb)
}

func TestImportPhotonIntensity_TrimsLabelsAndValues(t *testing.T) {
	dir := t.TempDir()
	writeJobFile(t, dir, "intensities_X.csv", " Fe Ka ; Fe La \n 2,0 ; 1e-3 \n")

	res, err := ImportPhotonIntensity("X", detector.PhotonIntensity{}, dir)
	require.NoError(t, err)

	la, ok := res.Intensity(key("Fe La"))
	require.True(t, ok)
	assert.InDelta(t, 0.001, la.Value, 1e-15)
}

func TestImportPhotonIntensity_HeaderOnlyIsEmpty(t *testing.T) {
	dir := t.TempDir()
	writeJobFile(t, dir, "intensities_X.csv", "Cu Ka;Cu Kb\n")

	res, err := ImportPhotonIntensity("X", detector.PhotonIntensity{}, dir)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Len())
}

func TestImportPhotonIntensity_EmptyFileIsEmpty(t *testing.T) {
	dir := t.TempDir()
	writeJobFile(t, dir, "intensities_X.csv", "")

	res, err := ImportPhotonIntensity("X", detector.PhotonIntensity{}, dir)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Len())
}

func TestImportPhotonIntensity_MissingFile(t *testing.T) {
	dir := t.TempDir()

	_, err := ImportPhotonIntensity("X", detector.PhotonIntensity{}, dir)
	require.Error(t, err)

	var impErr *ImporterError
	require.True(t, errors.As(err, &impErr))
	assert.Equal(t, "intensities_X.csv", impErr.File)
	assert.Equal(t, dir, impErr.JobDir)
	assert.Contains(t, err.Error(), `"intensities_X.csv"`)
	assert.Contains(t, err.Error(), dir)
}

func TestImportPhotonIntensity_PropagatesParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		target  error
	}{
		{name: "unknown_label", content: "Cu Qq\n1,0\n", target: transition.ErrUnknownTransition},
		{name: "malformed_value", content: "Cu Ka\n1,0,0\n", target: csvtable.ErrMalformedDecimal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeJobFile(t, dir, "intensities_X.csv", tt.content)

			_, err := ImportPhotonIntensity("X", detector.PhotonIntensity{}, dir)
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestImportPhiZ_BuildsOrderedCurves(t *testing.T) {
	dir := t.TempDir()
	writeJobFile(t, dir, "phi_X.csv", "rho z;Cu Ka\n0,0;10,0\n1,0;5,0\n")

	res, err := ImportPhiZ("X", detector.PhiZ{}, dir)
	require.NoError(t, err)
	require.Equal(t, 1, res.Len(), "the depth column should not become a curve")

	curve, ok := res.Distribution(key("Cu Ka"))
	require.True(t, ok)
	assert.Equal(t, []result.DepthPoint{{Depth: 0.0, Intensity: 10.0}, {Depth: 1.0, Intensity: 5.0}}, curve)
}

func TestImportPhiZ_KeepsFileOrderAndDuplicates(t *testing.T) {
	dir := t.TempDir()
	writeJobFile(t, dir, "phi_X.csv", "Cu Ka;rho z;Cu Kb\n3,0;2,0;1,0\n1,0;0,0;2,0\n1,0;0,0;2,0\n")

	res, err := ImportPhiZ("X", detector.PhiZ{}, dir)
	require.NoError(t, err)
	require.Equal(t, 2, res.Len())

	curve, _ := res.Distribution(key("Cu Ka"))
	assert.Equal(t, []result.DepthPoint{{Depth: 2, Intensity: 3}, {Depth: 0, Intensity: 1}, {Depth: 0, Intensity: 1}}, curve)
}

func TestImportPhiZ_HeaderOnlyGivesEmptyCurves(t *testing.T) {
	dir := t.TempDir()
	writeJobFile(t, dir, "phi_X.csv", "rho z;Cu Ka\n")

	res, err := ImportPhiZ("X", detector.PhiZ{}, dir)
	require.NoError(t, err)

	curve, ok := res.Distribution(key("Cu Ka"))
	require.True(t, ok)
	assert.Empty(t, curve)
}

func TestImportPhiZ_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content *string
		errMsg  string
		target  error
	}{
		{name: "missing_file", errMsg: `"phi_X.csv" not found`},
		{name: "empty_file", content: strPtr(""), target: csvtable.ErrNoHeader},
		{name: "missing_depth_column", content: strPtr("Cu Ka\n1,0\n"), errMsg: `missing "rho z" column`},
		{name: "duplicate_column", content: strPtr("rho z;Cu Ka;Cu Ka\n0;1;2\n"), errMsg: "duplicate column"},
		{name: "duplicate_after_trim", content: strPtr("rho z;Cu Ka; Cu Ka \n0;1;2\n"), errMsg: "duplicate column"},
		{name: "malformed_depth", content: strPtr("rho z;Cu Ka\nx;1\n"), target: csvtable.ErrMalformedDecimal},
		{name: "unknown_label", content: strPtr("rho z;Zz Ka\n0;1\n"), target: transition.ErrUnknownTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.content != nil {
				writeJobFile(t, dir, "phi_X.csv", *tt.content)
			}

			_, err := ImportPhiZ("X", detector.PhiZ{}, dir)
			require.Error(t, err)
			if tt.errMsg != "" {
				assert.Contains(t, err.Error(), tt.errMsg)
			}
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}
		})
	}
}

func TestImportPhiZ_PreservesRowOrder(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		depths := rapid.SliceOfN(rapid.IntRange(0, 1000), 0, 50).Draw(t, "depths")

		content := "rho z;Cu Ka\n"
		for i, d := range depths {
			content += formatComma(d) + ";" + formatComma(i) + "\n"
		}

		dir, err := os.MkdirTemp("", "phiz")
		require.NoError(t, err)
		defer os.RemoveAll(dir)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "phi_X.csv"), []byte(content), 0644))

		res, err := ImportPhiZ("X", detector.PhiZ{}, dir)
		require.NoError(t, err)

		curve, ok := res.Distribution(key("Cu Ka"))
		require.True(t, ok)
		require.Len(t, curve, len(depths))
		for i, d := range depths {
			assert.Equal(t, float64(d)/10, curve[i].Depth)
			assert.Equal(t, float64(i)/10, curve[i].Intensity)
		}
	})
}

func TestImporter_HandlersCoverBothDetectors(t *testing.T) {
	im := New(nil)
	handlers := im.Handlers()

	assert.Len(t, handlers, 2)
	_, ok := im.Handler(detector.KindPhotonIntensity)
	assert.True(t, ok)
	_, ok = im.Handler(detector.KindPhiZ)
	assert.True(t, ok)
}

func TestImporter_ImportDispatchesByKind(t *testing.T) {
	dir := t.TempDir()
	writeJobFile(t, dir, "intensities_xray.csv", "Cu Ka\n1,0\n")
	writeJobFile(t, dir, "phi_prz.csv", "rho z;Cu Ka\n0;1\n")
	writeJobFile(t, dir, "phi_unused.csv", "garbage")

	opts := detector.NewOptions("sim")
	require.NoError(t, opts.Add("xray", detector.PhotonIntensity{}))
	require.NoError(t, opts.Add("prz", detector.PhiZ{}))
	require.NoError(t, opts.Add("other", unknownDetector{}))

	results, err := New(nil).Import(context.Background(), opts, dir)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, result.KindPhotonIntensity, results["xray"].Kind())
	assert.Equal(t, result.KindPhiZ, results["prz"].Kind())
	assert.NotContains(t, results, "other")
}

func TestImporter_ImportFailsOnMissingFile(t *testing.T) {
	opts := detector.NewOptions("sim")
	require.NoError(t, opts.Add("xray", detector.PhotonIntensity{}))

	_, err := New(nil).Import(context.Background(), opts, t.TempDir())
	var impErr *ImporterError
	require.True(t, errors.As(err, &impErr))
	assert.Equal(t, "intensities_xray.csv", impErr.File)
}

func TestImporter_ImportHonoursCancellation(t *testing.T) {
	opts := detector.NewOptions("sim")
	require.NoError(t, opts.Add("xray", detector.PhotonIntensity{}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(nil).Import(ctx, opts, t.TempDir())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestImporter_RegisterOverridesHandler(t *testing.T) {
	im := New(nil)
	called := false
	im.Register(detector.KindPhiZ, func(name string, det detector.Detector, jobDir string) (result.Result, error) {
		called = true
		return result.NewPhiZResult(nil), nil
	})

	opts := detector.NewOptions("sim")
	require.NoError(t, opts.Add("prz", detector.PhiZ{}))

	_, err := im.Import(context.Background(), opts, t.TempDir())
	require.NoError(t, err)
	assert.True(t, called)
}

type unknownDetector struct{}

func (unknownDetector) Kind() detector.Kind { return "backscattered_electron" }

func strPtr(s string) *string { return &s }

// formatComma writes n/10 with a comma decimal separator.
func formatComma(n int) string {
	return strconv.Itoa(n/10) + "," + strconv.Itoa(n%10)
}
