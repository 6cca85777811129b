package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/ragstack/ragview/internal/modal"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// viewerEvent is the incoming WebSocket message format. The page relays
// delegated click and key events; each connection drives its own modal
// controller.
type viewerEvent struct {
	Type    string        `json:"type"` // "click" or "key"
	Element modal.Element `json:"element,omitempty"`
	Key     string        `json:"key,omitempty"`
}

// viewerMessage is the outgoing WebSocket message format.
type viewerMessage struct {
	Type  string      `json:"type"` // "state" or "error"
	State modal.State `json:"state,omitempty"`
	Error string      `json:"error,omitempty"`
}

func (s *Server) handleViewerSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("server: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	ctrl := modal.New()

	// Announce the initial (closed) state so the page can sync.
	s.sendViewerState(conn, ctrl.State())

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("server: websocket read: %v", err)
			}
			return
		}

		var ev viewerEvent
		if err := json.Unmarshal(msg, &ev); err != nil {
			s.sendViewerError(conn, "invalid message format")
			continue
		}

		switch ev.Type {
		case "click":
			s.sendViewerState(conn, ctrl.HandleClick(ev.Element))
		case "key":
			s.sendViewerState(conn, ctrl.HandleKey(ev.Key))
		default:
			s.sendViewerError(conn, "unknown event type: "+ev.Type)
		}
	}
}

func (s *Server) sendViewerState(conn *websocket.Conn, state modal.State) {
	if err := conn.WriteJSON(viewerMessage{Type: "state", State: state}); err != nil {
		log.Printf("server: websocket write: %v", err)
	}
}

func (s *Server) sendViewerError(conn *websocket.Conn, message string) {
	if err := conn.WriteJSON(viewerMessage{Type: "error", Error: message}); err != nil {
		log.Printf("server: websocket write error: %v", err)
	}
}
