package program

import (
	"os"
	"path/filepath"

	"montecarlo.dev/monaco/internal/infrastructure/settings"
)

// Autoconfig looks for an installation and, if one is found, records its
// base directory and executable in s. On Linux the fixed system locations
// are probed; elsewhere programsPath/<alias> is. It returns false and leaves
// s untouched when either path is missing.
func (p *Program) Autoconfig(s *settings.Settings, programsPath string) bool {
	var baseDir, exe string
	if p.goos == "linux" {
		baseDir = p.systemBase
		exe = p.systemExe
	} else {
		baseDir = filepath.Join(programsPath, p.alias)
		exe = filepath.Join(baseDir, p.defaultExecutableName())
	}

	if _, err := os.Stat(baseDir); err != nil {
		p.logger.Debug("autoconfig: base directory not found", "program", p.alias, "path", baseDir)
		return false
	}
	if _, err := os.Stat(exe); err != nil {
		p.logger.Debug("autoconfig: executable not found", "program", p.alias, "path", exe)
		return false
	}

	section := s.AddSection(p.alias)
	section.Set(OptionBaseDir, baseDir)
	section.Set(OptionExe, exe)

	p.logger.Info("autoconfig: installation found", "program", p.alias, "basedir", baseDir, "exe", exe)
	return true
}
