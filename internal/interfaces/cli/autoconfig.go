package cli

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

// EnvProgramsPath sets the default directory searched by autoconfig.
const EnvProgramsPath = "MONACO_PROGRAMS_PATH"

// NewAutoconfigCommand creates the autoconfig command
func NewAutoconfigCommand(container *CLIContainer) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "autoconfig [programs-path]",
		Short: "Discover a Monaco installation and record it in the settings",
		Long: `Look for an installed Monaco program and, if one is found, save its
base directory and executable to the settings file.

On Linux the system locations /usr/share/monaco and /usr/bin/mccli32 are
probed. On other platforms <programs-path>/monaco is probed; programs-path
defaults to $MONACO_PROGRAMS_PATH or the platform's program directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			programsPath := defaultProgramsPath()
			if len(args) > 0 {
				programsPath = args[0]
			}
			return runAutoconfig(cmd, container, programsPath, dryRun)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what would be recorded without saving")
	return cmd
}

func runAutoconfig(cmd *cobra.Command, container *CLIContainer, programsPath string, dryRun bool) error {
	w := out(cmd)

	s, err := loadSettings(container)
	if err != nil {
		return err
	}

	if !container.Program.Autoconfig(s, programsPath) {
		fmt.Fprintln(w, statusLine(false, fmt.Sprintf("no %s installation found", container.Program.Name())))
		return fmt.Errorf("%s installation not found", container.Program.Name())
	}

	section, _ := s.Section(container.Program.Alias())
	for _, opt := range section.Options() {
		v, _ := section.Get(opt)
		fmt.Fprintln(w, labelStyle.Render(opt)+v)
	}

	if dryRun {
		fmt.Fprintln(w, dimStyle.Render("dry run: settings not saved"))
		return nil
	}

	if err := container.Store.Save(s); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Fprintln(w, statusLine(true, "settings saved to "+container.Store.Path()))
	return nil
}

func defaultProgramsPath() string {
	if p := os.Getenv(EnvProgramsPath); p != "" {
		return p
	}
	switch runtime.GOOS {
	case "windows":
		if p := os.Getenv("ProgramFiles"); p != "" {
			return p
		}
		return `C:\Program Files`
	case "darwin":
		return "/Applications"
	default:
		return "/opt"
	}
}
