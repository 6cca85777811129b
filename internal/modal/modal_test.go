package modal

import "testing"

func galleryClick(path string) Element {
	return Element{Class: "gallery-item", Path: path}
}

func TestInitialStateClosed(t *testing.T) {
	c := New()
	if s := c.State(); s.Open || s.Path != "" {
		t.Errorf("new controller should be closed, got %+v", s)
	}
}

func TestGalleryClickOpens(t *testing.T) {
	c := New()
	s := c.HandleClick(galleryClick("/img/a.png"))
	if !s.Open || s.Path != "/img/a.png" {
		t.Errorf("expected open(/img/a.png), got %+v", s)
	}
}

func TestBackdropClickCloses(t *testing.T) {
	c := New()
	c.HandleClick(galleryClick("/img/a.png"))
	s := c.HandleClick(Element{ID: RootID})
	if s.Open {
		t.Errorf("backdrop click should close, got %+v", s)
	}
}

func TestEscapeCloses(t *testing.T) {
	c := New()
	c.HandleClick(galleryClick("/img/a.png"))
	s := c.HandleKey(EscapeKey)
	if s.Open {
		t.Errorf("escape should close, got %+v", s)
	}
}

func TestInnerImageClickKeepsOpen(t *testing.T) {
	c := New()
	c.HandleClick(galleryClick("/img/a.png"))
	s := c.HandleClick(Element{ID: ImageID})
	if !s.Open || s.Path != "/img/a.png" {
		t.Errorf("inner image click should not close, got %+v", s)
	}
}

func TestCloseWhenAlreadyClosedIsNoop(t *testing.T) {
	c := New()
	if s := c.HandleClick(Element{ID: RootID}); s.Open {
		t.Errorf("closing a closed viewer should stay closed, got %+v", s)
	}
	if s := c.HandleKey(EscapeKey); s.Open {
		t.Errorf("escape on a closed viewer should stay closed, got %+v", s)
	}
}

func TestUnrelatedEventsIgnored(t *testing.T) {
	c := New()
	c.HandleClick(galleryClick("/img/a.png"))
	if s := c.HandleClick(Element{ID: "sidebar"}); !s.Open {
		t.Errorf("unrelated click should not change state, got %+v", s)
	}
	if s := c.HandleKey("Enter"); !s.Open {
		t.Errorf("unrelated key should not change state, got %+v", s)
	}
}

func TestGalleryItemWithoutPathIgnored(t *testing.T) {
	c := New()
	if s := c.HandleClick(Element{Class: "gallery-item"}); s.Open {
		t.Errorf("gallery item with no path should not open, got %+v", s)
	}
}

func TestReopenWithDifferentImage(t *testing.T) {
	c := New()
	c.HandleClick(galleryClick("/img/a.png"))
	c.HandleKey(EscapeKey)
	s := c.HandleClick(galleryClick("/img/b.png"))
	if !s.Open || s.Path != "/img/b.png" {
		t.Errorf("expected open(/img/b.png), got %+v", s)
	}
}

func TestHasClass(t *testing.T) {
	tests := []struct {
		classes string
		want    bool
	}{
		{"gallery-item", true},
		{"tile gallery-item active", true},
		{"gallery-item-large", false},
		{"", false},
		{"gallery", false},
	}
	for _, tt := range tests {
		if got := hasClass(tt.classes, GalleryItemClass); got != tt.want {
			t.Errorf("hasClass(%q) = %v, want %v", tt.classes, got, tt.want)
		}
	}
}

// recordingDispatcher counts handler registrations and lets the test
// fire events through them.
type recordingDispatcher struct {
	clicks []func(Element)
	keys   []func(string)
}

func (d *recordingDispatcher) OnClick(fn func(Element)) { d.clicks = append(d.clicks, fn) }
func (d *recordingDispatcher) OnKey(fn func(string))    { d.keys = append(d.keys, fn) }

func TestBindRegistersOnce(t *testing.T) {
	c := New()
	d := &recordingDispatcher{}

	c.Bind(d)
	c.Bind(d) // second init must not double-register

	if len(d.clicks) != 1 || len(d.keys) != 1 {
		t.Fatalf("expected single registration, got %d clicks / %d keys", len(d.clicks), len(d.keys))
	}

	d.clicks[0](galleryClick("/img/a.png"))
	if s := c.State(); !s.Open || s.Path != "/img/a.png" {
		t.Errorf("dispatched click should open viewer, got %+v", s)
	}
	d.keys[0](EscapeKey)
	if s := c.State(); s.Open {
		t.Errorf("dispatched escape should close viewer, got %+v", s)
	}
}
