package di

import (
	"io"
	"log/slog"
	"os"

	"montecarlo.dev/monaco/internal/infrastructure/settings"
	"montecarlo.dev/monaco/internal/interfaces/cli"
	"montecarlo.dev/monaco/internal/logging"
	"montecarlo.dev/monaco/internal/program"
)

// EnvLogFormat selects "json" or "text" log output.
const EnvLogFormat = "MONACO_LOG_FORMAT"

// Container holds all application dependencies
type Container struct {
	Program *program.Program
	Store   *settings.Store

	CLIContainer *cli.CLIContainer

	Logger   *slog.Logger
	logLevel *slog.LevelVar
}

// Config selects where the container writes logs and reads settings.
type Config struct {
	SettingsPath string
	LogLevel     string
	LogFormat    string
	LogOutput    io.Writer
	ProgramOpts  []program.Option
}

// ConfigFromEnv reads the container configuration from the environment.
func ConfigFromEnv() Config {
	return Config{
		SettingsPath: os.Getenv(settings.EnvPath),
		LogLevel:     os.Getenv(logging.EnvLevel),
		LogFormat:    os.Getenv(EnvLogFormat),
		LogOutput:    os.Stderr,
	}
}

// NewContainer creates and configures the dependency injection container
func NewContainer(cfg Config) *Container {
	if cfg.LogOutput == nil {
		cfg.LogOutput = os.Stderr
	}

	level := new(slog.LevelVar)
	level.Set(logging.ParseLevel(cfg.LogLevel))

	c := &Container{
		Logger:   logging.NewConsoleLogger(level, cfg.LogFormat, cfg.LogOutput),
		logLevel: level,
		Store:    settings.NewStore(cfg.SettingsPath),
	}

	opts := append([]program.Option{program.WithLogger(c.Logger)}, cfg.ProgramOpts...)
	c.Program = program.New(opts...)

	c.CLIContainer = &cli.CLIContainer{
		Program:     c.Program,
		Store:       c.Store,
		Logger:      c.Logger,
		SetLogLevel: c.SetLogLevel,
	}

	c.Logger.Debug("container initialized", "settings", c.Store.Path(), "program", c.Program.Alias())
	return c
}

// SetLogLevel changes the level of the container's logger.
func (c *Container) SetLogLevel(level string) {
	c.logLevel.Set(logging.ParseLevel(level))
}

// GetCLIContainer returns the CLI container for command execution
func (c *Container) GetCLIContainer() *cli.CLIContainer {
	return c.CLIContainer
}
