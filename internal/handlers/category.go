package handlers

import (
	"net/http"
	"strconv"

	"github.com/Michiaki-Hirayama/bounenkai-jeopardy/internal/services"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	content *services.ContentService
}

func NewCategoryHandler(content *services.ContentService) *CategoryHandler {
	return &CategoryHandler{content: content}
}

type CategoryRequest struct {
	Name string `json:"name" binding:"required" example:"社長系"`
}

type ReorderRequest struct {
	OrderedIDs []uint `json:"orderedIds" binding:"required"`
}

// ListCategories godoc
// @Summary      List categories in column order
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.Category
// @Router       /api/v1/categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.content.ListCategories()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// CreateCategory godoc
// @Summary      Add a category
// @Description  Appends a new board column with order max+1
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CategoryRequest true "Category data"
// @Success      201 {object} models.Category
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	cat, err := h.content.CreateCategory(req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cat)
}

// RenameCategory godoc
// @Summary      Rename a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Category ID"
// @Param        request body CategoryRequest true "Category data"
// @Success      200 {object} models.Category
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/categories/{id} [put]
func (h *CategoryHandler) RenameCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid category id"})
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	cat, err := h.content.RenameCategory(uint(id), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

// DeleteCategory godoc
// @Summary      Delete a category with its questions and their media
// @Tags         categories
// @Security     BearerAuth
// @Param        id path int true "Category ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid category id"})
		return
	}

	if err := h.content.DeleteCategory(uint(id)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "category deleted"})
}

// ReorderCategories godoc
// @Summary      Reorder all categories
// @Description  Takes the full permutation of category ids; order becomes position+1
// @Tags         categories
// @Accept       json
// @Security     BearerAuth
// @Param        request body ReorderRequest true "Ordered category ids"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/categories/reorder [post]
func (h *CategoryHandler) ReorderCategories(c *gin.Context) {
	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.content.ReorderCategories(req.OrderedIDs); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "reordered"})
}
