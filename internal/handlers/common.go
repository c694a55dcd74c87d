package handlers

import (
	"errors"
	"net/http"

	"github.com/Michiaki-Hirayama/bounenkai-jeopardy/internal/game"
	"github.com/Michiaki-Hirayama/bounenkai-jeopardy/internal/services"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"operation successful"`
}

// respondError maps service errors onto HTTP statuses: editor input problems
// are 400, missing records 404, a repeated pick 409, anything else 500.
func respondError(c *gin.Context, err error) {
	switch {
	case services.IsValidation(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrCategoryNotFound),
		errors.Is(err, services.ErrQuestionNotFound),
		errors.Is(err, services.ErrMediaNotFound),
		errors.Is(err, game.ErrQuestionNotFound),
		errors.Is(err, game.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, game.ErrAlreadyAnswered), errors.Is(err, game.ErrCellUnavailable):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}
