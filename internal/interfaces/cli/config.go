package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"montecarlo.dev/monaco/internal/program"
)

// NewConfigCommand creates the config command
func NewConfigCommand(container *CLIContainer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change the Monaco settings",
	}

	cmd.AddCommand(newConfigShowCommand(container))
	cmd.AddCommand(newConfigSetCommand(container))
	cmd.AddCommand(newConfigUnsetCommand(container))
	return cmd
}

func newConfigShowCommand(container *CLIContainer) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the Monaco settings section",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(container)
			if err != nil {
				return err
			}

			w := out(cmd)
			fmt.Fprintln(w, dimStyle.Render(container.Store.Path()))

			section, ok := s.Section(container.Program.Alias())
			if !ok || len(section.Options()) == 0 {
				fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf("[%s] not configured", container.Program.Alias())))
				return nil
			}

			fmt.Fprintln(w, titleStyle.Render("["+section.Name()+"]"))
			for _, opt := range section.Options() {
				v, _ := section.Get(opt)
				fmt.Fprintln(w, labelStyle.Render(opt)+v)
			}
			return nil
		},
	}
}

func newConfigSetCommand(container *CLIContainer) *cobra.Command {
	return &cobra.Command{
		Use:   "set <option> <value>",
		Short: "Set a Monaco option (basedir or exe)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkOption(args[0]); err != nil {
				return err
			}

			s, err := loadSettings(container)
			if err != nil {
				return err
			}
			s.AddSection(container.Program.Alias()).Set(args[0], args[1])

			if err := container.Store.Save(s); err != nil {
				return fmt.Errorf("failed to save settings: %w", err)
			}
			fmt.Fprintln(out(cmd), statusLine(true, fmt.Sprintf("%s = %s", args[0], args[1])))

			if err := container.Program.Validate(s); err != nil {
				fmt.Fprintln(out(cmd), dimStyle.Render("note: "+err.Error()))
			}
			return nil
		},
	}
}

func newConfigUnsetCommand(container *CLIContainer) *cobra.Command {
	return &cobra.Command{
		Use:   "unset <option>",
		Short: "Remove a Monaco option",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkOption(args[0]); err != nil {
				return err
			}

			s, err := loadSettings(container)
			if err != nil {
				return err
			}
			section, ok := s.Section(container.Program.Alias())
			if !ok {
				return nil
			}
			section.Unset(args[0])

			if err := container.Store.Save(s); err != nil {
				return fmt.Errorf("failed to save settings: %w", err)
			}
			fmt.Fprintln(out(cmd), statusLine(true, args[0]+" removed"))
			return nil
		},
	}
}

func checkOption(option string) error {
	switch option {
	case program.OptionBaseDir, program.OptionExe:
		return nil
	default:
		return fmt.Errorf("unknown option: %s (valid options: %s, %s)", option, program.OptionBaseDir, program.OptionExe)
	}
}
