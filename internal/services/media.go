package services

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/Michiaki-Hirayama/bounenkai-jeopardy/internal/models"

	"gorm.io/gorm"
)

// MaxMediaSize caps a single upload at 1 GiB.
const MaxMediaSize = 1 << 30

// MediaService stores image/video payloads as base64 data URLs. Payloads are
// read fully into memory before storing; there is no streaming or chunking.
type MediaService struct {
	db *gorm.DB
}

func NewMediaService(db *gorm.DB) *MediaService {
	return &MediaService{db: db}
}

// Add encodes the raw payload as a data URL and stores it, returning the new
// record. The size check runs before anything touches the store.
func (s *MediaService) Add(name, contentType string, payload []byte) (*models.Media, error) {
	if len(payload) > MaxMediaSize {
		return nil, validationf("media file exceeds the 1GB limit")
	}
	if contentType == "" {
		return nil, validationf("media content type is required")
	}

	media := models.Media{
		Name: name,
		Type: contentType,
		Data: fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(payload)),
	}
	if err := s.db.Create(&media).Error; err != nil {
		return nil, err
	}
	return &media, nil
}

func (s *MediaService) Get(id uint) (*models.Media, error) {
	var media models.Media
	if err := s.db.First(&media, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMediaNotFound
		}
		return nil, err
	}
	return &media, nil
}

// Delete is idempotent; deleting a nonexistent id is not an error.
func (s *MediaService) Delete(id uint) error {
	return s.db.Delete(&models.Media{}, id).Error
}
