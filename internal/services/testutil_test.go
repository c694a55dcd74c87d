package services

import (
	"testing"

	"github.com/Michiaki-Hirayama/bounenkai-jeopardy/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Admin{},
		&models.Category{},
		&models.Question{},
		&models.Media{},
	))
	return db
}

func seedCategory(t *testing.T, s *ContentService, name string) *models.Category {
	t.Helper()

	cat, err := s.CreateCategory(name)
	require.NoError(t, err)
	return cat
}

func seedQuestion(t *testing.T, s *ContentService, input QuestionInput) *models.Question {
	t.Helper()

	q, err := s.CreateQuestion(input)
	require.NoError(t, err)
	return q
}
