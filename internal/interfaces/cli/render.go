package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"montecarlo.dev/monaco/internal/core/result"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	failStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	labelStyle = lipgloss.NewStyle().Width(18).Foreground(lipgloss.Color("245"))
)

// Output formats accepted by --format.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

type intensityEntry struct {
	Transition  string  `json:"transition" yaml:"transition"`
	Flag        string  `json:"flag" yaml:"flag"`
	Value       float64 `json:"value" yaml:"value"`
	Uncertainty float64 `json:"uncertainty" yaml:"uncertainty"`
}

type distributionEntry struct {
	Transition string              `json:"transition" yaml:"transition"`
	Flag       string              `json:"flag" yaml:"flag"`
	Points     []result.DepthPoint `json:"points" yaml:"points"`
}

type resultDoc struct {
	Detector      string              `json:"detector" yaml:"detector"`
	Kind          string              `json:"kind" yaml:"kind"`
	Intensities   []intensityEntry    `json:"intensities,omitempty" yaml:"intensities,omitempty"`
	Distributions []distributionEntry `json:"distributions,omitempty" yaml:"distributions,omitempty"`
}

func toDocs(results map[string]result.Result) []resultDoc {
	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)

	docs := make([]resultDoc, 0, len(names))
	for _, name := range names {
		res := results[name]
		doc := resultDoc{Detector: name, Kind: string(res.Kind())}

		switch r := res.(type) {
		case *result.PhotonIntensityResult:
			for _, k := range r.Keys() {
				m, _ := r.Intensity(k)
				doc.Intensities = append(doc.Intensities, intensityEntry{
					Transition:  k.Transition.String(),
					Flag:        string(k.Flag),
					Value:       m.Value,
					Uncertainty: m.Uncertainty,
				})
			}
		case *result.PhiZResult:
			for _, k := range r.Keys() {
				d, _ := r.Distribution(k)
				doc.Distributions = append(doc.Distributions, distributionEntry{
					Transition: k.Transition.String(),
					Flag:       string(k.Flag),
					Points:     d,
				})
			}
		}
		docs = append(docs, doc)
	}
	return docs
}

// writeResults renders results in the requested format.
func writeResults(w io.Writer, results map[string]result.Result, format string) error {
	docs := toDocs(results)

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(docs)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(docs); err != nil {
			return err
		}
		return enc.Close()
	case FormatText, "":
		_, err := fmt.Fprint(w, renderText(docs))
		return err
	default:
		return fmt.Errorf("unsupported format: %s (valid formats: %s, %s, %s)", format, FormatText, FormatJSON, FormatYAML)
	}
}

func renderText(docs []resultDoc) string {
	var b strings.Builder
	for i, doc := range docs {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(titleStyle.Render(fmt.Sprintf("%s (%s)", doc.Detector, doc.Kind)))
		b.WriteString("\n")

		if len(doc.Intensities) == 0 && len(doc.Distributions) == 0 {
			b.WriteString(dimStyle.Render("  no entries"))
			b.WriteString("\n")
		}
		for _, e := range doc.Intensities {
			b.WriteString("  ")
			b.WriteString(labelStyle.Render(e.Transition))
			b.WriteString(fmt.Sprintf("%.6g ± %.2g\n", e.Value, e.Uncertainty))
		}
		for _, e := range doc.Distributions {
			b.WriteString("  ")
			b.WriteString(labelStyle.Render(e.Transition))
			b.WriteString(fmt.Sprintf("%d points", len(e.Points)))
			if n := len(e.Points); n > 0 {
				b.WriteString(dimStyle.Render(fmt.Sprintf("  rho z %.4g .. %.4g", e.Points[0].Depth, e.Points[n-1].Depth)))
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

func statusLine(ok bool, msg string) string {
	if ok {
		return okStyle.Render("✓ " + msg)
	}
	return failStyle.Render("✗ " + msg)
}
