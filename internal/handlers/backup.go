package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Michiaki-Hirayama/bounenkai-jeopardy/internal/services"

	"github.com/gin-gonic/gin"
)

type BackupHandler struct {
	backup *services.BackupService
}

func NewBackupHandler(backup *services.BackupService) *BackupHandler {
	return &BackupHandler{backup: backup}
}

// Export godoc
// @Summary      Export the whole dataset
// @Description  Downloads a dated JSON snapshot with media inlined by value
// @Tags         backup
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} services.Snapshot
// @Router       /api/v1/backup/export [get]
func (h *BackupHandler) Export(c *gin.Context) {
	snapshot, err := h.backup.Export()
	if err != nil {
		respondError(c, err)
		return
	}

	filename := fmt.Sprintf("jeopardy_backup_%s.json", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	c.JSON(http.StatusOK, snapshot)
}

// Import godoc
// @Summary      Import a snapshot, replacing all existing data
// @Description  Destructive: clears every store and re-inserts the snapshot with fresh ids. Runs in one transaction, so a failed import keeps the previous data.
// @Tags         backup
// @Accept       multipart/form-data
// @Security     BearerAuth
// @Param        file formData file true "Backup JSON file"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/backup/import [post]
func (h *BackupHandler) Import(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "file required"})
		return
	}
	defer file.Close()

	body, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "cannot read file"})
		return
	}

	var snapshot services.Snapshot
	if err := json.Unmarshal(body, &snapshot); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "import failed, check file format"})
		return
	}

	if err := h.backup.Import(&snapshot); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "data imported"})
}

// Reset godoc
// @Summary      Delete all categories, questions and media
// @Tags         backup
// @Security     BearerAuth
// @Success      200 {object} MessageResponse
// @Router       /api/v1/backup/reset [post]
func (h *BackupHandler) Reset(c *gin.Context) {
	if err := h.backup.ResetAll(); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "all data deleted"})
}
