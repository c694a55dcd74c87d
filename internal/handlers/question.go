package handlers

import (
	"net/http"
	"strconv"

	"github.com/Michiaki-Hirayama/bounenkai-jeopardy/internal/services"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	content *services.ContentService
}

func NewQuestionHandler(content *services.ContentService) *QuestionHandler {
	return &QuestionHandler{content: content}
}

// QuestionRequest carries the full editor form. On update, a null
// questionMediaId/mediaId clears the reference and deletes the old record.
type QuestionRequest struct {
	CategoryID      uint   `json:"categoryId" binding:"required"`
	Order           int    `json:"order" binding:"required"`
	Points          int    `json:"points" binding:"required"`
	QuestionText    string `json:"questionText"`
	AnswerText      string `json:"answerText"`
	Explanation     string `json:"explanation"`
	Enabled         *bool  `json:"enabled"`
	QuestionMediaID *uint  `json:"questionMediaId"`
	MediaID         *uint  `json:"mediaId"`
}

// ListQuestions godoc
// @Summary      List questions for the editor
// @Description  Returns every question, disabled ones included; filter with ?categoryId=
// @Tags         questions
// @Produce      json
// @Security     BearerAuth
// @Param        categoryId query int false "Category ID filter"
// @Success      200 {array} models.Question
// @Router       /api/v1/questions [get]
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	if raw := c.Query("categoryId"); raw != "" {
		categoryID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid category id"})
			return
		}
		questions, err := h.content.ListQuestionsByCategory(uint(categoryID))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, questions)
		return
	}

	questions, err := h.content.ListQuestions()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}

// GetQuestion godoc
// @Summary      Get a question
// @Tags         questions
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Question ID"
// @Success      200 {object} models.Question
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/questions/{id} [get]
func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid question id"})
		return
	}

	question, err := h.content.GetQuestion(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, question)
}

// CreateQuestion godoc
// @Summary      Add a question
// @Tags         questions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body QuestionRequest true "Question data"
// @Success      201 {object} models.Question
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/questions [post]
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	question, err := h.content.CreateQuestion(services.QuestionInput{
		CategoryID:      req.CategoryID,
		OrderNum:        req.Order,
		Points:          req.Points,
		QuestionText:    req.QuestionText,
		AnswerText:      req.AnswerText,
		Explanation:     req.Explanation,
		Enabled:         req.Enabled,
		QuestionMediaID: req.QuestionMediaID,
		MediaID:         req.MediaID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, question)
}

// UpdateQuestion godoc
// @Summary      Update a question
// @Tags         questions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Question ID"
// @Param        request body QuestionRequest true "Question data"
// @Success      200 {object} models.Question
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/questions/{id} [put]
func (h *QuestionHandler) UpdateQuestion(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid question id"})
		return
	}

	var req QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}

	patch := services.QuestionPatch{
		CategoryID:    &req.CategoryID,
		OrderNum:      &req.Order,
		Points:        &req.Points,
		QuestionText:  &req.QuestionText,
		AnswerText:    &req.AnswerText,
		Explanation:   &req.Explanation,
		Enabled:       &enabled,
		QuestionMedia: &services.MediaRef{ID: req.QuestionMediaID},
		AnswerMedia:   &services.MediaRef{ID: req.MediaID},
	}

	question, err := h.content.UpdateQuestion(uint(id), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, question)
}

// DeleteQuestion godoc
// @Summary      Delete a question and its media
// @Tags         questions
// @Security     BearerAuth
// @Param        id path int true "Question ID"
// @Success      200 {object} MessageResponse
// @Router       /api/v1/questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid question id"})
		return
	}

	if err := h.content.DeleteQuestion(uint(id)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "question deleted"})
}
