package render

import (
	"fmt"
	"html/template"
	"strings"
)

// Image describes one gallery entry: the servable path and a display name.
type Image struct {
	Path string `json:"path"`
	Name string `json:"name"`
}

// Caption display limits: names longer than captionMax runes are cut to
// captionKeep runes plus an ellipsis.
const (
	captionMax  = 30
	captionKeep = 27
)

// Gallery renders a clickable image gallery fragment. Every interpolated
// value passes through Escape; the data-path attribute carries the
// entity-escaped path so the modal controller can recover the original
// via normal attribute decoding. Nil or empty input yields an empty
// fragment.
func Gallery(images []Image) template.HTML {
	if len(images) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(`<div class="image-gallery">`)
	b.WriteString(fmt.Sprintf(`<div class="gallery-header">📷 Related images (%d)</div>`, len(images)))
	b.WriteString(`<div class="gallery-grid">`)

	for _, img := range images {
		path := Escape(img.Path)
		name := Escape(img.Name)
		b.WriteString(fmt.Sprintf(`<div class="gallery-item" data-path="%s">`, path))
		b.WriteString(fmt.Sprintf(`<img src="%s" alt="%s" loading="lazy">`, path, name))
		b.WriteString(fmt.Sprintf(`<div class="gallery-caption">%s</div>`, Escape(caption(img.Name))))
		b.WriteString(`</div>`)
	}

	b.WriteString(`</div></div>`)
	return template.HTML(b.String())
}

// caption truncates a display name for the tile label.
func caption(name string) string {
	runes := []rune(name)
	if len(runes) <= captionMax {
		return name
	}
	return string(runes[:captionKeep]) + "..."
}
