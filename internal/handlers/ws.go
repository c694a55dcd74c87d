package handlers

import (
	"log"
	"net/http"

	"github.com/Michiaki-Hirayama/bounenkai-jeopardy/internal/game"
	"github.com/Michiaki-Hirayama/bounenkai-jeopardy/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type WSHandler struct {
	hub      *ws.Hub
	sessions *game.SessionManager
}

func NewWSHandler(hub *ws.Hub, sessions *game.SessionManager) *WSHandler {
	return &WSHandler{hub: hub, sessions: sessions}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleBoardSocket godoc
// @Summary      WebSocket stream of board events
// @Description  Spectators receive question_opened, answer_revealed and board_reset events
// @Tags         websocket
// @Param        id path string true "Session ID"
// @Router       /ws/board/{id} [get]
func (h *WSHandler) HandleBoardSocket(c *gin.Context) {
	sessionID := c.Param("id")
	if _, err := h.sessions.Get(sessionID); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "board session not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}

	h.hub.AddConnection(sessionID, conn)
	defer h.hub.RemoveConnection(sessionID, conn)

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			break
		}
	}
}
