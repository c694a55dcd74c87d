package services

import (
	"errors"
	"strings"

	"github.com/Michiaki-Hirayama/bounenkai-jeopardy/internal/models"

	"gorm.io/gorm"
)

// Board rows run 1..MaxRow; each row is one point tier within a category.
const MaxRow = 5

// ContentService owns categories and questions, including column ordering
// and the cascades that keep media records from going orphaned.
type ContentService struct {
	db *gorm.DB
}

func NewContentService(db *gorm.DB) *ContentService {
	return &ContentService{db: db}
}

func (s *ContentService) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	err := s.db.Order("order_num ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *ContentService) CreateCategory(name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, validationf("category name is required")
	}

	var maxOrder int
	s.db.Model(&models.Category{}).Select("COALESCE(MAX(order_num), 0)").Scan(&maxOrder)

	cat := models.Category{
		Name:     name,
		OrderNum: maxOrder + 1,
	}
	if err := s.db.Create(&cat).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func (s *ContentService) RenameCategory(id uint, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, validationf("category name is required")
	}

	var cat models.Category
	if err := s.db.First(&cat, id).Error; err != nil {
		return nil, ErrCategoryNotFound
	}

	cat.Name = name
	if err := s.db.Save(&cat).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

// DeleteCategory removes the category, every question in it and every media
// record those questions reference, in one transaction.
func (s *ContentService) DeleteCategory(id uint) error {
	var cat models.Category
	if err := s.db.First(&cat, id).Error; err != nil {
		return ErrCategoryNotFound
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var questions []models.Question
		if err := tx.Where("category_id = ?", id).Find(&questions).Error; err != nil {
			return err
		}

		mediaIDs := collectMediaIDs(questions)
		if len(mediaIDs) > 0 {
			if err := tx.Delete(&models.Media{}, mediaIDs).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("category_id = ?", id).Delete(&models.Question{}).Error; err != nil {
			return err
		}
		return tx.Delete(&cat).Error
	})
}

// ReorderCategories rewrites order_num to position+1 for the given ids. The
// list must be a complete, duplicate-free permutation of the existing
// category ids; orders stay contiguous 1..N afterwards.
func (s *ContentService) ReorderCategories(orderedIDs []uint) error {
	var categories []models.Category
	if err := s.db.Find(&categories).Error; err != nil {
		return err
	}

	if len(orderedIDs) != len(categories) {
		return validationf("reorder list must contain every category exactly once")
	}
	existing := make(map[uint]bool, len(categories))
	for _, c := range categories {
		existing[c.ID] = true
	}
	seen := make(map[uint]bool, len(orderedIDs))
	for _, id := range orderedIDs {
		if !existing[id] {
			return validationf("reorder list references an unknown category")
		}
		if seen[id] {
			return validationf("reorder list must contain every category exactly once")
		}
		seen[id] = true
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		for i, id := range orderedIDs {
			err := tx.Model(&models.Category{}).Where("id = ?", id).Update("order_num", i+1).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *ContentService) ListQuestions() ([]models.Question, error) {
	var questions []models.Question
	err := s.db.Order("category_id ASC, order_num ASC").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *ContentService) ListQuestionsByCategory(categoryID uint) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.Where("category_id = ?", categoryID).Order("order_num ASC").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *ContentService) GetQuestion(id uint) (*models.Question, error) {
	var question models.Question
	if err := s.db.First(&question, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}
	return &question, nil
}

type QuestionInput struct {
	CategoryID      uint
	OrderNum        int
	Points          int
	QuestionText    string
	AnswerText      string
	Explanation     string
	Enabled         *bool
	QuestionMediaID *uint
	MediaID         *uint
}

func (s *ContentService) CreateQuestion(input QuestionInput) (*models.Question, error) {
	enabled := true
	if input.Enabled != nil {
		enabled = *input.Enabled
	}

	question := models.Question{
		CategoryID:      input.CategoryID,
		OrderNum:        input.OrderNum,
		Points:          input.Points,
		QuestionText:    strings.TrimSpace(input.QuestionText),
		AnswerText:      strings.TrimSpace(input.AnswerText),
		Explanation:     strings.TrimSpace(input.Explanation),
		Enabled:         enabled,
		QuestionMediaID: input.QuestionMediaID,
		MediaID:         input.MediaID,
	}

	if err := s.validateQuestion(&question, 0); err != nil {
		return nil, err
	}

	if err := s.db.Create(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

// MediaRef sets or clears a media reference in a patch. A nil ID clears it;
// the dereferenced record is deleted either way.
type MediaRef struct {
	ID *uint
}

// QuestionPatch enumerates the updatable fields; nil means unchanged.
type QuestionPatch struct {
	CategoryID    *uint
	OrderNum      *int
	Points        *int
	QuestionText  *string
	AnswerText    *string
	Explanation   *string
	Enabled       *bool
	QuestionMedia *MediaRef
	AnswerMedia   *MediaRef
}

func (s *ContentService) UpdateQuestion(id uint, patch QuestionPatch) (*models.Question, error) {
	var question models.Question
	if err := s.db.First(&question, id).Error; err != nil {
		return nil, ErrQuestionNotFound
	}

	var orphaned []uint
	if patch.CategoryID != nil {
		question.CategoryID = *patch.CategoryID
	}
	if patch.OrderNum != nil {
		question.OrderNum = *patch.OrderNum
	}
	if patch.Points != nil {
		question.Points = *patch.Points
	}
	if patch.QuestionText != nil {
		question.QuestionText = strings.TrimSpace(*patch.QuestionText)
	}
	if patch.AnswerText != nil {
		question.AnswerText = strings.TrimSpace(*patch.AnswerText)
	}
	if patch.Explanation != nil {
		question.Explanation = strings.TrimSpace(*patch.Explanation)
	}
	if patch.Enabled != nil {
		question.Enabled = *patch.Enabled
	}
	if patch.QuestionMedia != nil {
		if old := question.QuestionMediaID; old != nil && !sameID(old, patch.QuestionMedia.ID) {
			orphaned = append(orphaned, *old)
		}
		question.QuestionMediaID = patch.QuestionMedia.ID
	}
	if patch.AnswerMedia != nil {
		if old := question.MediaID; old != nil && !sameID(old, patch.AnswerMedia.ID) {
			orphaned = append(orphaned, *old)
		}
		question.MediaID = patch.AnswerMedia.ID
	}

	if err := s.validateQuestion(&question, id); err != nil {
		return nil, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if len(orphaned) > 0 {
			if err := tx.Delete(&models.Media{}, orphaned).Error; err != nil {
				return err
			}
		}
		return tx.Save(&question).Error
	})
	if err != nil {
		return nil, err
	}
	return &question, nil
}

// DeleteQuestion removes the question and both referenced media records.
// A missing id is a no-op, not an error.
func (s *ContentService) DeleteQuestion(id uint) error {
	var question models.Question
	if err := s.db.First(&question, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		mediaIDs := collectMediaIDs([]models.Question{question})
		if len(mediaIDs) > 0 {
			if err := tx.Delete(&models.Media{}, mediaIDs).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&question).Error
	})
}

// validateQuestion enforces what the original editor only checked in the UI:
// a resolvable category, a row inside 1..MaxRow not already taken in that
// category, and at least text or media on both the question and answer side.
func (s *ContentService) validateQuestion(q *models.Question, selfID uint) error {
	if q.OrderNum < 1 || q.OrderNum > MaxRow {
		return validationf("row must be between 1 and 5")
	}
	if q.QuestionText == "" && q.QuestionMediaID == nil {
		return validationf("question text or question media is required")
	}
	if q.AnswerText == "" && q.MediaID == nil {
		return validationf("answer text or answer media is required")
	}

	var count int64
	s.db.Model(&models.Category{}).Where("id = ?", q.CategoryID).Count(&count)
	if count == 0 {
		return validationf("category does not exist")
	}

	dup := s.db.Model(&models.Question{}).
		Where("category_id = ? AND order_num = ?", q.CategoryID, q.OrderNum)
	if selfID != 0 {
		dup = dup.Where("id != ?", selfID)
	}
	dup.Count(&count)
	if count > 0 {
		return validationf("row is already taken in this category")
	}
	return nil
}

func collectMediaIDs(questions []models.Question) []uint {
	var ids []uint
	for _, q := range questions {
		if q.QuestionMediaID != nil {
			ids = append(ids, *q.QuestionMediaID)
		}
		if q.MediaID != nil {
			ids = append(ids, *q.MediaID)
		}
	}
	return ids
}

func sameID(a, b *uint) bool {
	return b != nil && *a == *b
}
