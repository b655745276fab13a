// Package importer turns the output files of one completed Monaco job into
// typed results, dispatching on the detectors the job requested.
package importer

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"montecarlo.dev/monaco/internal/core/detector"
	"montecarlo.dev/monaco/internal/core/result"
)

// Handler produces the result of one detector from the files in jobDir.
type Handler func(name string, det detector.Detector, jobDir string) (result.Result, error)

// Importer maps detector kinds to handlers.
type Importer struct {
	handlers map[detector.Kind]Handler
	logger   *slog.Logger
}

// New returns an importer with the photon intensity and phi(rho z)
// handlers registered.
func New(logger *slog.Logger) *Importer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	im := &Importer{
		handlers: make(map[detector.Kind]Handler),
		logger:   logger,
	}
	im.Register(detector.KindPhotonIntensity, func(name string, det detector.Detector, jobDir string) (result.Result, error) {
		return ImportPhotonIntensity(name, det, jobDir)
	})
	im.Register(detector.KindPhiZ, func(name string, det detector.Detector, jobDir string) (result.Result, error) {
		return ImportPhiZ(name, det, jobDir)
	})
	return im
}

// Register sets the handler for kind, replacing any previous one.
func (im *Importer) Register(kind detector.Kind, h Handler) {
	im.handlers[kind] = h
}

// Handler returns the handler registered for kind.
func (im *Importer) Handler(kind detector.Kind) (Handler, bool) {
	h, ok := im.handlers[kind]
	return h, ok
}

// Handlers returns a copy of the kind to handler mapping.
func (im *Importer) Handlers() map[detector.Kind]Handler {
	out := make(map[detector.Kind]Handler, len(im.handlers))
	for k, h := range im.handlers {
		out[k] = h
	}
	return out
}

// Import runs the handler of every detector in opts against jobDir and
// returns the results keyed by detector name. Detectors without a handler
// are skipped. The first failing handler aborts the import.
func (im *Importer) Import(ctx context.Context, opts *detector.Options, jobDir string) (map[string]result.Result, error) {
	results := make(map[string]result.Result, len(opts.Detectors))

	for _, name := range opts.Names() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		det := opts.Detectors[name]
		h, ok := im.handlers[det.Kind()]
		if !ok {
			im.logger.Debug("no handler for detector", "detector", name, "kind", det.Kind())
			continue
		}

		res, err := h(name, det, jobDir)
		if err != nil {
			return nil, fmt.Errorf("failed to import detector %q: %w", name, err)
		}
		im.logger.Debug("imported result", "detector", name, "kind", res.Kind(), "entries", res.Len())
		results[name] = res
	}

	return results, nil
}
