package program

import (
	"os"
	"path/filepath"

	"montecarlo.dev/monaco/internal/infrastructure/settings"
)

// Validate checks that s describes a usable installation. It returns a
// *ConfigError naming the first precondition that does not hold.
func (p *Program) Validate(s *settings.Settings) error {
	_, err := p.Executable(s)
	return err
}

// Executable validates the installation like Validate and returns the path
// of the executable.
func (p *Program) Executable(s *settings.Settings) (string, error) {
	section, ok := s.Section(p.alias)
	if !ok {
		return "", configErrorf("", "missing '%s' section in settings", p.alias)
	}

	baseDir, ok := section.Get(OptionBaseDir)
	if !ok {
		return "", configErrorf(OptionBaseDir, "missing '%s' option in '%s' section of settings", OptionBaseDir, p.alias)
	}

	info, err := os.Stat(baseDir)
	if err != nil || !info.IsDir() {
		return "", configErrorf(OptionBaseDir, "specified %s base directory (%s) does not exist", p.name, baseDir)
	}

	exe, ok := section.Get(OptionExe)
	if !ok {
		exe = filepath.Join(baseDir, p.defaultExecutableName())
	}

	info, err = os.Stat(exe)
	if err != nil || !info.Mode().IsRegular() {
		if ok {
			return "", configErrorf(OptionExe, "specified %s executable (%s) does not exist", p.name, exe)
		}
		return "", configErrorf(OptionBaseDir, "no %s in %s base directory (%s)", p.defaultExecutableName(), p.name, baseDir)
	}

	if !p.isExecutable(exe) {
		return "", configErrorf(OptionExe, "specified %s executable (%s) is not executable", p.name, exe)
	}

	p.logger.Debug("installation valid", "program", p.alias, "basedir", baseDir, "exe", exe)
	return exe, nil
}
