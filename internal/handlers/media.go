package handlers

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Michiaki-Hirayama/bounenkai-jeopardy/internal/services"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	media *services.MediaService
}

func NewMediaHandler(media *services.MediaService) *MediaHandler {
	return &MediaHandler{media: media}
}

// Upload godoc
// @Summary      Upload question or answer media
// @Description  Accepts an image or video up to 1GB and stores it as a data URL
// @Tags         media
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file formData file true "Media file"
// @Success      201 {object} models.Media
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/media [post]
func (h *MediaHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "no file provided"})
		return
	}
	defer file.Close()

	if header.Size > services.MaxMediaSize {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "file too large (max 1GB)"})
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = mime.TypeByExtension(filepath.Ext(header.Filename))
	}
	if !strings.HasPrefix(contentType, "image/") && !strings.HasPrefix(contentType, "video/") {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unsupported file format"})
		return
	}

	// The whole payload is read into memory before storing, like the rest of
	// the media path; there is no streaming.
	payload, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "cannot read file"})
		return
	}

	media, err := h.media.Add(header.Filename, contentType, payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, media)
}

// GetMedia godoc
// @Summary      Fetch a media record
// @Tags         media
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Media ID"
// @Success      200 {object} models.Media
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/media/{id} [get]
func (h *MediaHandler) GetMedia(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid media id"})
		return
	}

	media, err := h.media.Get(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, media)
}

// DeleteMedia godoc
// @Summary      Delete a media record
// @Tags         media
// @Security     BearerAuth
// @Param        id path int true "Media ID"
// @Success      200 {object} MessageResponse
// @Router       /api/v1/media/{id} [delete]
func (h *MediaHandler) DeleteMedia(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid media id"})
		return
	}

	if err := h.media.Delete(uint(id)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "media deleted"})
}
