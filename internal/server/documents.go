package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ragstack/ragview/internal/library"
)

// registerDocumentRoutes serves the raw document tree, including the
// images the gallery links to. The URL prefix matches what
// library.FindRelated emits in Image.Path.
func (s *Server) registerDocumentRoutes(r chi.Router) {
	if s.cfg.DocumentsDir == "" {
		return
	}

	fs := http.StripPrefix(library.URLPrefix, http.FileServer(http.Dir(s.cfg.DocumentsDir)))
	r.Get(library.URLPrefix+"*", func(w http.ResponseWriter, req *http.Request) {
		fs.ServeHTTP(w, req)
	})
}
