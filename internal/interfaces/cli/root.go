package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"

	"montecarlo.dev/monaco/internal/infrastructure/settings"
	"montecarlo.dev/monaco/internal/logging"
	"montecarlo.dev/monaco/internal/program"
)

var (
	Version   = "dev"     // Overridden by ldflags
	BuildTime = "unknown" // Overridden by ldflags
)

// CLIContainer holds all the dependencies for CLI commands
type CLIContainer struct {
	Program *program.Program
	Store   *settings.Store
	Logger  *slog.Logger

	// SetLogLevel rebuilds the logger after flags are parsed. Optional.
	SetLogLevel func(level string)
}

// NewRootCommand creates the base command when called without any subcommands
func NewRootCommand(container *CLIContainer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "monaco",
		Short: "Monaco Monte Carlo program adapter",
		Long: `monaco validates and discovers an installation of the Monaco
simulation program (Mccli32) and imports the result files it writes
into typed intensity and phi(rho z) results.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if path, _ := cmd.Flags().GetString("settings"); path != "" && cmd.Flags().Changed("settings") {
				container.Store = settings.NewStore(path)
			}
			if d, _ := cmd.Flags().GetBool("debug"); d && container.SetLogLevel != nil {
				container.SetLogLevel("debug")
			}
			cmd.SetContext(logging.WithLogger(cmd.Context(), container.Logger))
			return nil
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf("{{.Name}} version {{.Version}}\nBuild time: %s\nGo version: %s\nPlatform: %s/%s\n",
		BuildTime, goVersion(), runtime.GOOS, runtime.GOARCH))

	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("settings", "", "Settings file path (default is $HOME/.montecarlo/settings.yaml)")

	rootCmd.AddCommand(NewValidateCommand(container))
	rootCmd.AddCommand(NewAutoconfigCommand(container))
	rootCmd.AddCommand(NewImportCommand(container))
	rootCmd.AddCommand(NewViewCommand(container))
	rootCmd.AddCommand(NewConfigCommand(container))

	return rootCmd
}

// goVersion returns the Go version used to build the binary
func goVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.GoVersion
	}
	return "unknown"
}

// Execute runs the root command and exits non-zero on error.
func Execute(container *CLIContainer) {
	rootCmd := NewRootCommand(container)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadSettings(container *CLIContainer) (*settings.Settings, error) {
	s, err := container.Store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return s, nil
}

func out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}
