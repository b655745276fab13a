package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"montecarlo.dev/monaco/internal/program"
)

// NewValidateCommand creates the validate command
func NewValidateCommand(container *CLIContainer) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the Monaco installation recorded in the settings",
		Long: `Validate the Monaco installation recorded in the settings file.

This command checks that:
- the 'monaco' section and its 'basedir' option exist
- the base directory exists
- the executable (option 'exe', or Mccli32 in the base directory) exists
  and can be executed by the current user`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, container)
		},
	}
}

func runValidate(cmd *cobra.Command, container *CLIContainer) error {
	w := out(cmd)
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%s installation", container.Program.Name())))

	s, err := loadSettings(container)
	if err != nil {
		return err
	}

	exe, err := container.Program.Executable(s)
	if err != nil {
		fmt.Fprintln(w, statusLine(false, err.Error()))

		var cfgErr *program.ConfigError
		if errors.As(err, &cfgErr) {
			fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf("Settings file: %s", container.Store.Path())))
			fmt.Fprintln(w, dimStyle.Render("Run 'monaco autoconfig' or 'monaco config set' to fix the installation."))
		}
		return fmt.Errorf("validation failed: %w", err)
	}

	baseDir, _ := s.Lookup(container.Program.Alias(), program.OptionBaseDir)
	fmt.Fprintln(w, statusLine(true, "installation valid"))
	fmt.Fprintln(w, labelStyle.Render("Base directory")+baseDir)
	fmt.Fprintln(w, labelStyle.Render("Executable")+exe)
	fmt.Fprintln(w, labelStyle.Render("Auto run")+fmt.Sprintf("%t", container.Program.AutoRun()))
	return nil
}
