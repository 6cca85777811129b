// Package modal owns the image-viewer state machine. The page delivers
// user events (delegated clicks and key presses) to a Controller, which
// classifies the event target and applies a fixed transition table; the
// resulting state tells the page whether the viewer is visible and which
// image it shows.
package modal

import "sync"

// Page element identifiers the classifier recognizes. The viewer page
// must use these for the modal root, the enlarged image, and gallery
// tiles.
const (
	RootID           = "image-modal"
	ImageID          = "modal-image"
	GalleryItemClass = "gallery-item"
	EscapeKey        = "Escape"
)

// State is the viewer state: closed, or open on a specific image.
type State struct {
	Open bool   `json:"open"`
	Path string `json:"path,omitempty"`
}

// Element describes the page element a click landed on, as reported by
// the event layer: its id, its class list, and the data-path attribute
// if present (already attribute-decoded back to the raw path).
type Element struct {
	ID    string `json:"id"`
	Class string `json:"class"`
	Path  string `json:"path"`
}

// target is the classified role of a clicked element.
type target int

const (
	targetOther target = iota
	targetGalleryItem
	targetBackdrop
	targetImage
)

// classify maps a clicked element to its role in the transition table.
func classify(el Element) target {
	switch {
	case hasClass(el.Class, GalleryItemClass) && el.Path != "":
		return targetGalleryItem
	case el.ID == RootID:
		return targetBackdrop
	case el.ID == ImageID:
		return targetImage
	default:
		return targetOther
	}
}

func hasClass(classes, want string) bool {
	for len(classes) > 0 {
		i := 0
		for i < len(classes) && classes[i] != ' ' {
			i++
		}
		if classes[:i] == want {
			return true
		}
		for i < len(classes) && classes[i] == ' ' {
			i++
		}
		classes = classes[i:]
	}
	return false
}

// Controller holds the viewer state and applies transitions. All state
// changes go through HandleClick and HandleKey; events arrive one at a
// time from the page's event loop, so no locking guards the state
// itself.
type Controller struct {
	state State
	bind  sync.Once
}

// New returns a Controller in the closed state.
func New() *Controller {
	return &Controller{}
}

// State returns the current viewer state.
func (c *Controller) State() State {
	return c.state
}

// HandleClick applies one click event and returns the new state.
//
//	closed --click gallery item--> open(path)
//	open   --click backdrop------> closed
//	open   --click inner image---> open (unchanged)
//
// Closing triggers on an already-closed viewer are no-ops.
func (c *Controller) HandleClick(el Element) State {
	switch classify(el) {
	case targetGalleryItem:
		c.state = State{Open: true, Path: el.Path}
	case targetBackdrop:
		c.state = State{}
	}
	return c.state
}

// HandleKey applies one key press. The escape key closes the viewer
// regardless of what is focused; closing an already-closed viewer is a
// no-op.
func (c *Controller) HandleKey(key string) State {
	if key == EscapeKey {
		c.state = State{}
	}
	return c.state
}

// Dispatcher is the page-side event source the controller attaches to.
// Handlers are delegated: tiles added after Bind still dispatch through
// the same registration.
type Dispatcher interface {
	OnClick(func(Element))
	OnKey(func(key string))
}

// Bind registers the controller's handlers on the dispatcher exactly
// once per controller lifetime. Calling Bind again is a no-op, so an
// accidental double initialization cannot double-register handlers.
func (c *Controller) Bind(d Dispatcher) {
	c.bind.Do(func() {
		d.OnClick(func(el Element) { c.HandleClick(el) })
		d.OnKey(func(key string) { c.HandleKey(key) })
	})
}
