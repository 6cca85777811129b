package charts

import (
	"io"
	"log"

	"github.com/google/uuid"

	"github.com/ragstack/ragview/internal/answer"
)

// Surface is a drawable target a backend renders onto.
type Surface interface {
	io.Writer
}

// Backend turns a chart configuration into pixels (or bytes) on a surface.
// The web page supplies its own backend client-side; the render command
// uses the SVG backend in this package.
type Backend interface {
	Draw(cfg Config, s Surface) error
}

// TargetResolver maps a target identifier to a drawable surface.
type TargetResolver interface {
	Resolve(targetID string) (Surface, bool)
}

// Handle identifies one rendered chart for later disposal by the caller.
type Handle struct {
	ID     string
	Target string
	Kind   answer.ChartKind
}

// Renderer draws chart configurations onto resolved targets. OnHandle,
// when set, receives every produced handle; whether to retain handles is
// the caller's decision, not the renderer's.
type Renderer struct {
	backend  Backend
	resolver TargetResolver
	OnHandle func(Handle)
}

// NewRenderer creates a Renderer over the given backend and resolver.
func NewRenderer(backend Backend, resolver TargetResolver) *Renderer {
	return &Renderer{backend: backend, resolver: resolver}
}

// Draw resolves targetID and renders cfg onto it. A missing target or a
// backend failure is logged and yields nil; the caller's remaining
// charts keep rendering.
func (r *Renderer) Draw(cfg Config, targetID string) *Handle {
	surface, ok := r.resolver.Resolve(targetID)
	if !ok {
		log.Printf("charts: draw target %q not found", targetID)
		return nil
	}

	if err := r.backend.Draw(cfg, surface); err != nil {
		log.Printf("charts: rendering onto %q: %v", targetID, err)
		return nil
	}

	h := Handle{ID: uuid.NewString(), Target: targetID, Kind: cfg.Kind}
	if r.OnHandle != nil {
		r.OnHandle(h)
	}
	return &h
}
