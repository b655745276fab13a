// Package program describes the Monaco simulation program: its identity,
// how its installation is validated and how it is discovered on disk.
package program

import (
	"io"
	"log/slog"
	"runtime"

	"montecarlo.dev/monaco/internal/importer"
)

const (
	Name  = "Monaco"
	Alias = "monaco"

	OptionBaseDir = "basedir"
	OptionExe     = "exe"

	executableName = "Mccli32"

	linuxBaseDir = "/usr/share/monaco"
	linuxExe     = "/usr/bin/mccli32"
)

// Program is the Monaco program descriptor.
type Program struct {
	name    string
	alias   string
	autoRun bool

	goos         string
	systemBase   string
	systemExe    string
	isExecutable func(path string) bool
	logger       *slog.Logger
}

// Option configures a Program.
type Option func(*Program)

// WithGOOS overrides the operating system the program assumes.
func WithGOOS(goos string) Option {
	return func(p *Program) { p.goos = goos }
}

// WithSystemPaths overrides the fixed install locations probed on Linux.
func WithSystemPaths(baseDir, exe string) Option {
	return func(p *Program) {
		p.systemBase = baseDir
		p.systemExe = exe
	}
}

// WithExecutableCheck replaces the permission check applied to the
// executable.
func WithExecutableCheck(fn func(path string) bool) Option {
	return func(p *Program) { p.isExecutable = fn }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Program) { p.logger = logger }
}

// New returns the Monaco program descriptor for the running platform.
func New(opts ...Option) *Program {
	p := &Program{
		name:         Name,
		alias:        Alias,
		goos:         runtime.GOOS,
		systemBase:   linuxBaseDir,
		systemExe:    linuxExe,
		isExecutable: isExecutable,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}
	// The program is only launched automatically where the executable is
	// native.
	p.autoRun = p.goos == "windows"
	return p
}

// Name returns the display name.
func (p *Program) Name() string { return p.name }

// Alias returns the identifier used for the settings section and the
// programs-path subdirectory.
func (p *Program) Alias() string { return p.alias }

// AutoRun reports whether simulations may be started without user action.
func (p *Program) AutoRun() bool { return p.autoRun }

// NewImporter returns the importer for this program's result files.
func (p *Program) NewImporter() *importer.Importer {
	return importer.New(p.logger)
}

func (p *Program) defaultExecutableName() string {
	if p.goos == "windows" {
		return executableName + ".exe"
	}
	return executableName
}
