package services

import (
	"time"

	"github.com/Michiaki-Hirayama/bounenkai-jeopardy/internal/models"

	"gorm.io/gorm"
)

// SnapshotVersion is the only export format this service reads or writes.
const SnapshotVersion = 1

// Snapshot is the portable export format. Media is inlined by value so the
// file is self-contained across storage instances.
type Snapshot struct {
	Version    int                `json:"version"`
	ExportedAt time.Time          `json:"exportedAt"`
	Categories []models.Category  `json:"categories"`
	Questions  []SnapshotQuestion `json:"questions"`
}

type SnapshotQuestion struct {
	models.Question
	QuestionMediaData *models.Media `json:"questionMediaData,omitempty"`
	MediaData         *models.Media `json:"mediaData,omitempty"`
}

// BackupService produces and restores whole-dataset snapshots.
type BackupService struct {
	db *gorm.DB
}

func NewBackupService(db *gorm.DB) *BackupService {
	return &BackupService{db: db}
}

func (s *BackupService) Export() (*Snapshot, error) {
	var categories []models.Category
	if err := s.db.Order("order_num ASC").Find(&categories).Error; err != nil {
		return nil, err
	}

	var questions []models.Question
	if err := s.db.Order("category_id ASC, order_num ASC").Find(&questions).Error; err != nil {
		return nil, err
	}

	snapshot := &Snapshot{
		Version:    SnapshotVersion,
		ExportedAt: time.Now().UTC(),
		Categories: categories,
		Questions:  make([]SnapshotQuestion, 0, len(questions)),
	}

	for _, q := range questions {
		sq := SnapshotQuestion{Question: q}
		if q.QuestionMediaID != nil {
			var media models.Media
			if err := s.db.First(&media, *q.QuestionMediaID).Error; err == nil {
				sq.QuestionMediaData = &media
			}
		}
		if q.MediaID != nil {
			var media models.Media
			if err := s.db.First(&media, *q.MediaID).Error; err == nil {
				sq.MediaData = &media
			}
		}
		snapshot.Questions = append(snapshot.Questions, sq)
	}

	return snapshot, nil
}

// Import destructively replaces the whole dataset with the snapshot. All ids
// are reassigned: categories first (building the old-to-new mapping), then
// per question its inlined media, then the question itself with its category
// and media references rewritten. Everything runs in one transaction, so a
// failed import leaves the previous dataset untouched.
func (s *BackupService) Import(snapshot *Snapshot) error {
	if snapshot.Version != SnapshotVersion {
		return validationf("unsupported backup version")
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := clearContent(tx); err != nil {
			return err
		}

		categoryIDMap := make(map[uint]uint, len(snapshot.Categories))
		for _, cat := range snapshot.Categories {
			oldID := cat.ID
			cat.ID = 0
			if err := tx.Create(&cat).Error; err != nil {
				return err
			}
			categoryIDMap[oldID] = cat.ID
		}

		for _, sq := range snapshot.Questions {
			question := sq.Question
			newCatID, ok := categoryIDMap[question.CategoryID]
			if !ok {
				return validationf("question references a category missing from the backup")
			}
			question.ID = 0
			question.CategoryID = newCatID

			question.QuestionMediaID = nil
			if sq.QuestionMediaData != nil {
				media := *sq.QuestionMediaData
				media.ID = 0
				if err := tx.Create(&media).Error; err != nil {
					return err
				}
				question.QuestionMediaID = &media.ID
			}

			question.MediaID = nil
			if sq.MediaData != nil {
				media := *sq.MediaData
				media.ID = 0
				if err := tx.Create(&media).Error; err != nil {
					return err
				}
				question.MediaID = &media.ID
			}

			if err := tx.Create(&question).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// ResetAll wipes categories, questions and media in one transaction. The
// admin account is not content and survives.
func (s *BackupService) ResetAll() error {
	return s.db.Transaction(clearContent)
}

func clearContent(tx *gorm.DB) error {
	if err := tx.Where("1 = 1").Delete(&models.Question{}).Error; err != nil {
		return err
	}
	if err := tx.Where("1 = 1").Delete(&models.Category{}).Error; err != nil {
		return err
	}
	return tx.Where("1 = 1").Delete(&models.Media{}).Error
}
