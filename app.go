package optkit

import (
	"io"
	"os"
)

// Info is the program metadata consumed by the help and version
// renderers.
type Info struct {
	Program     string
	Version     string
	Author      string
	Year        int
	Description string

	// VersionExtra is printed verbatim after the copyright line.
	VersionExtra string

	// Synopses are usage lines shown after "Usage:". When empty a
	// generic "[OPTION]... ARG..." line is printed instead.
	Synopses []string
}

// App ties a registry and a scanner to program metadata. Register all
// options up front, then call Parse once per argument vector.
type App struct {
	Info Info

	// Out receives help and version output. Defaults to os.Stdout.
	Out io.Writer

	registry *Registry
	scanner  *Scanner
}

func New(info Info, mode Mode) *App {
	app := &App{
		Info:     info,
		Out:      os.Stdout,
		registry: NewRegistry(),
	}

	app.scanner = NewScanner(app.registry, mode)
	app.scanner.OnHelp = func() {
		WriteHelp(app.Out, app.Info, app.registry.Snapshot())
	}
	app.scanner.OnVersion = func() {
		WriteVersion(app.Out, app.Info)
	}

	return app
}

func (a *App) Register(short byte, long string, flags Flags, conflicts []*Option, description string) (*Option, error) {
	return a.registry.Register(short, long, flags, conflicts, description)
}

func (a *App) Registry() *Registry {
	return a.registry
}

// Parse scans the full argument vector, program name included.
func (a *App) Parse(argv []string) (*Result, error) {
	return a.scanner.Scan(argv)
}
