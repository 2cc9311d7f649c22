package server

import (
	"net/http"

	"github.com/morphic-dev/morphic/pkg/component"
	"github.com/morphic-dev/morphic/pkg/dom"
)

// handlePage serves the initial HTML document. The component tree is
// built and rendered server-side; the client script then opens the
// WebSocket and replays patch frames against the same markup.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	doc := dom.NewDocument()
	host := s.root(doc)
	component.Mount(doc.Root(), host)
	defer component.Unmount(host)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	w.Write([]byte("<!DOCTYPE html>\n<html>\n<head><meta charset=\"utf-8\"><script src=\"/static/morphic.js\" defer></script></head>\n"))
	w.Write([]byte(doc.Root().OuterHTML()))
	w.Write([]byte("\n</html>\n"))
}
