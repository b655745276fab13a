package cli

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"montecarlo.dev/monaco/internal/core/detector"
	"montecarlo.dev/monaco/internal/core/result"
	"montecarlo.dev/monaco/internal/importer"
	"montecarlo.dev/monaco/internal/logging"
)

// ImportFlags holds command-line flags shared by import and view
type ImportFlags struct {
	Intensity []string
	PhiZ      []string
	Format    string
}

// NewImportCommand creates the import command
func NewImportCommand(container *CLIContainer) *cobra.Command {
	flags := &ImportFlags{}

	cmd := &cobra.Command{
		Use:   "import <job-dir>",
		Short: "Import the result files of a Monaco job",
		Long: `Import the result files written by Monaco into a job directory.

Each --intensity NAME reads intensities_NAME.csv and each --phi NAME reads
phi_NAME.csv. Without either flag every such file in the directory is
imported.

Examples:
  monaco import ./job1                          # everything in ./job1
  monaco import ./job1 --intensity xray         # intensities_xray.csv
  monaco import ./job1 --phi prz --format yaml  # phi_prz.csv as YAML`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := importJob(cmd, container, args[0], flags)
			if err != nil {
				return err
			}
			return writeResults(out(cmd), results, flags.Format)
		},
	}

	addImportFlags(cmd, flags)
	cmd.Flags().StringVarP(&flags.Format, "format", "f", FormatText, "Output format (text, json, yaml)")
	return cmd
}

func addImportFlags(cmd *cobra.Command, flags *ImportFlags) {
	cmd.Flags().StringSliceVar(&flags.Intensity, "intensity", nil, "Photon intensity detector names")
	cmd.Flags().StringSliceVar(&flags.PhiZ, "phi", nil, "Phi(rho z) detector names")
}

func importJob(cmd *cobra.Command, container *CLIContainer, jobDir string, flags *ImportFlags) (map[string]result.Result, error) {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	opts, err := buildOptions(filepath.Base(jobDir), jobDir, flags)
	if err != nil {
		return nil, err
	}
	if len(opts.Detectors) == 0 {
		return nil, fmt.Errorf("no result files found in %s", jobDir)
	}
	logger.Debug("importing job", "dir", jobDir, "detectors", opts.Names())

	return container.Program.NewImporter().Import(ctx, opts, jobDir)
}

func buildOptions(name, jobDir string, flags *ImportFlags) (*detector.Options, error) {
	opts := detector.NewOptions(name)

	intensity, phiZ := flags.Intensity, flags.PhiZ
	if len(intensity) == 0 && len(phiZ) == 0 {
		var err error
		if intensity, err = discover(jobDir, importer.IntensitiesFile); err != nil {
			return nil, err
		}
		if phiZ, err = discover(jobDir, importer.PhiZFile); err != nil {
			return nil, err
		}
	}

	for _, n := range intensity {
		if err := opts.Add(n, detector.PhotonIntensity{}); err != nil {
			return nil, err
		}
	}
	for _, n := range phiZ {
		if _, exists := opts.Detectors[n]; exists {
			return nil, fmt.Errorf("detector name %q used for both intensity and phi(rho z)", n)
		}
		if err := opts.Add(n, detector.PhiZ{}); err != nil {
			return nil, err
		}
	}
	return opts, nil
}

// discover returns the detector names whose result file, as named by
// fileFor, exists in dir.
func discover(dir string, fileFor func(name string) string) ([]string, error) {
	pattern := fileFor("*")
	prefix, suffix, _ := strings.Cut(pattern, "*")

	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		name := strings.TrimSuffix(strings.TrimPrefix(filepath.Base(m), prefix), suffix)
		if name != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}
