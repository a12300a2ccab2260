package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Dosada05/court-booking/realtime"
	"github.com/gorilla/websocket"
)

type WebSocketHandler struct {
	hub      *realtime.Hub
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewWebSocketHandler: allowedOrigin пустой - принимаются любые Origin.
func NewWebSocketHandler(hub *realtime.Hub, allowedOrigin string, logger *slog.Logger) *WebSocketHandler {
	return &WebSocketHandler{
		hub:    hub,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return allowedOrigin == "" || allowedOrigin == "*" || origin == "" || origin == allowedOrigin
			},
		},
	}
}

// ServeCourtFeed godoc
// @Summary Subscribe to session changes of a court over WebSocket
// @Tags Realtime
// @Param courtID path int true "Court ID"
// @Router /ws/courts/{courtID} [get]
func (h *WebSocketHandler) ServeCourtFeed(w http.ResponseWriter, r *http.Request) {
	courtID, err := getIDFromURL(r, "courtID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade уже ответил клиенту.
		h.logger.WarnContext(r.Context(), "websocket upgrade failed", slog.Int("court_id", courtID), slog.Any("error", err))
		return
	}

	room := realtime.CourtRoom(courtID)
	client := realtime.NewClient(h.hub, conn, room)
	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()

	h.logger.DebugContext(r.Context(), "websocket client registered", slog.String("room", room))
}
