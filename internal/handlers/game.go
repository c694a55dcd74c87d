package handlers

import (
	"net/http"

	"github.com/Michiaki-Hirayama/bounenkai-jeopardy/internal/game"
	"github.com/Michiaki-Hirayama/bounenkai-jeopardy/internal/ws"

	"github.com/gin-gonic/gin"
)

type GameHandler struct {
	board    *game.BoardService
	sessions *game.SessionManager
	hub      *ws.Hub
}

func NewGameHandler(board *game.BoardService, sessions *game.SessionManager, hub *ws.Hub) *GameHandler {
	return &GameHandler{board: board, sessions: sessions, hub: hub}
}

type PickRequest struct {
	QuestionID uint `json:"questionId" binding:"required"`
}

// GetBoard godoc
// @Summary      Get the board grid without session state
// @Tags         game
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} game.Board
// @Router       /api/v1/board [get]
func (h *GameHandler) GetBoard(c *gin.Context) {
	board, err := h.board.Build(nil)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}

// CreateSession godoc
// @Summary      Start a board session
// @Description  A session tracks which cells have been answered; marks live in memory only
// @Tags         game
// @Produce      json
// @Security     BearerAuth
// @Success      201 {object} game.SessionInfo
// @Router       /api/v1/game/sessions [post]
func (h *GameHandler) CreateSession(c *gin.Context) {
	info := h.sessions.Create()
	c.JSON(http.StatusCreated, info)
}

// GetSessionBoard godoc
// @Summary      Get the board grid with this session's answered marks
// @Tags         game
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Session ID"
// @Success      200 {object} game.Board
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/game/sessions/{id}/board [get]
func (h *GameHandler) GetSessionBoard(c *gin.Context) {
	answered, err := h.sessions.Answered(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	board, err := h.board.Build(answered)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}

// PickCell godoc
// @Summary      Pick a cell and reveal its question
// @Description  Marks the cell answered for the session; the same cell cannot be picked twice
// @Tags         game
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Session ID"
// @Param        request body PickRequest true "Cell to pick"
// @Success      200 {object} game.QuestionView
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/game/sessions/{id}/pick [post]
func (h *GameHandler) PickCell(c *gin.Context) {
	sessionID := c.Param("id")
	if _, err := h.sessions.Get(sessionID); err != nil {
		respondError(c, err)
		return
	}

	var req PickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	view, err := h.board.OpenQuestion(req.QuestionID)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.sessions.MarkAnswered(sessionID, req.QuestionID); err != nil {
		respondError(c, err)
		return
	}

	h.hub.Broadcast(sessionID, ws.WSMessage{Type: "question_opened", Data: view})
	c.JSON(http.StatusOK, view)
}

// RevealAnswer godoc
// @Summary      Reveal the answer and explanation of a picked question
// @Tags         game
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Session ID"
// @Param        request body PickRequest true "Question to reveal"
// @Success      200 {object} game.AnswerView
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/game/sessions/{id}/reveal [post]
func (h *GameHandler) RevealAnswer(c *gin.Context) {
	sessionID := c.Param("id")
	if _, err := h.sessions.Get(sessionID); err != nil {
		respondError(c, err)
		return
	}

	var req PickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	view, err := h.board.RevealAnswer(req.QuestionID)
	if err != nil {
		respondError(c, err)
		return
	}

	h.hub.Broadcast(sessionID, ws.WSMessage{Type: "answer_revealed", Data: view})
	c.JSON(http.StatusOK, view)
}

// ResetSession godoc
// @Summary      Clear the session's answered marks
// @Description  Stored categories, questions and media are untouched
// @Tags         game
// @Security     BearerAuth
// @Param        id path string true "Session ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/game/sessions/{id}/reset [post]
func (h *GameHandler) ResetSession(c *gin.Context) {
	sessionID := c.Param("id")
	if err := h.sessions.Reset(sessionID); err != nil {
		respondError(c, err)
		return
	}

	h.hub.Broadcast(sessionID, ws.WSMessage{Type: "board_reset", Data: nil})
	c.JSON(http.StatusOK, MessageResponse{Message: "session reset"})
}
