package services

import (
	"testing"

	"github.com/Michiaki-Hirayama/bounenkai-jeopardy/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportImportRoundTripEmpty(t *testing.T) {
	db := newTestDB(t)
	backup := NewBackupService(db)

	snapshot, err := backup.Export()
	require.NoError(t, err)
	assert.Equal(t, SnapshotVersion, snapshot.Version)
	assert.Empty(t, snapshot.Categories)
	assert.Empty(t, snapshot.Questions)

	require.NoError(t, backup.Import(snapshot))

	var catCount, qCount, mCount int64
	db.Model(&models.Category{}).Count(&catCount)
	db.Model(&models.Question{}).Count(&qCount)
	db.Model(&models.Media{}).Count(&mCount)
	assert.Zero(t, catCount)
	assert.Zero(t, qCount)
	assert.Zero(t, mCount)
}

func TestExportInlinesMediaByValue(t *testing.T) {
	db := newTestDB(t)
	content := NewContentService(db)
	media := NewMediaService(db)
	backup := NewBackupService(db)

	cat := seedCategory(t, content, "A")
	qm, err := media.Add("q.png", "image/png", []byte("prompt"))
	require.NoError(t, err)
	am, err := media.Add("a.mp4", "video/mp4", []byte("answer"))
	require.NoError(t, err)
	seedQuestion(t, content, QuestionInput{
		CategoryID: cat.ID, OrderNum: 1, Points: 10,
		QuestionText: "Q", AnswerText: "X",
		QuestionMediaID: &qm.ID, MediaID: &am.ID,
	})

	snapshot, err := backup.Export()
	require.NoError(t, err)
	require.Len(t, snapshot.Questions, 1)

	sq := snapshot.Questions[0]
	require.NotNil(t, sq.QuestionMediaData)
	require.NotNil(t, sq.MediaData)
	assert.Equal(t, qm.Data, sq.QuestionMediaData.Data)
	assert.Equal(t, am.Data, sq.MediaData.Data)
}

func TestExportImportRoundTripPopulated(t *testing.T) {
	db := newTestDB(t)
	content := NewContentService(db)
	media := NewMediaService(db)
	backup := NewBackupService(db)

	catA := seedCategory(t, content, "社長系")
	catB := seedCategory(t, content, "知識系")

	am, err := media.Add("a.png", "image/png", []byte("payload"))
	require.NoError(t, err)

	seedQuestion(t, content, QuestionInput{
		CategoryID: catA.ID, OrderNum: 1, Points: 10,
		QuestionText: "q1", AnswerText: "a1", Explanation: "e1",
		MediaID: &am.ID,
	})
	seedQuestion(t, content, QuestionInput{
		CategoryID: catB.ID, OrderNum: 3, Points: 30,
		QuestionText: "q2", AnswerText: "a2",
	})

	snapshot, err := backup.Export()
	require.NoError(t, err)
	require.NoError(t, backup.Import(snapshot))

	categories, err := content.ListCategories()
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "社長系", categories[0].Name)
	assert.Equal(t, 1, categories[0].OrderNum)
	assert.Equal(t, "知識系", categories[1].Name)
	assert.Equal(t, 2, categories[1].OrderNum)

	questions, err := content.ListQuestions()
	require.NoError(t, err)
	require.Len(t, questions, 2)

	// Questions point at the re-created categories.
	byText := make(map[string]models.Question, len(questions))
	for _, q := range questions {
		byText[q.QuestionText] = q
	}
	q1 := byText["q1"]
	assert.Equal(t, categories[0].ID, q1.CategoryID)
	assert.Equal(t, 1, q1.OrderNum)
	assert.Equal(t, 10, q1.Points)
	assert.Equal(t, "a1", q1.AnswerText)
	assert.Equal(t, "e1", q1.Explanation)
	assert.True(t, q1.Enabled)

	// Media came back by value under a fresh id with the same payload.
	require.NotNil(t, q1.MediaID)
	var restored models.Media
	require.NoError(t, db.First(&restored, *q1.MediaID).Error)
	assert.Equal(t, am.Data, restored.Data)

	q2 := byText["q2"]
	assert.Equal(t, categories[1].ID, q2.CategoryID)
	assert.Nil(t, q2.MediaID)
	assert.Nil(t, q2.QuestionMediaID)
}

func TestImportIsFullyDestructive(t *testing.T) {
	db := newTestDB(t)
	content := NewContentService(db)
	media := NewMediaService(db)
	backup := NewBackupService(db)

	old := seedCategory(t, content, "pre-import")
	m, err := media.Add("old.png", "image/png", []byte("old"))
	require.NoError(t, err)
	seedQuestion(t, content, QuestionInput{
		CategoryID: old.ID, OrderNum: 1, Points: 10,
		QuestionText: "old q", AnswerText: "old a", MediaID: &m.ID,
	})

	snapshot := &Snapshot{
		Version: SnapshotVersion,
		Categories: []models.Category{
			{ID: 7, Name: "imported", OrderNum: 1},
		},
		Questions: []SnapshotQuestion{
			{Question: models.Question{
				CategoryID: 7, OrderNum: 2, Points: 20,
				QuestionText: "new q", AnswerText: "new a", Enabled: true,
			}},
		},
	}
	require.NoError(t, backup.Import(snapshot))

	categories, err := content.ListCategories()
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "imported", categories[0].Name)

	questions, err := content.ListQuestions()
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "new q", questions[0].QuestionText)
	assert.Equal(t, categories[0].ID, questions[0].CategoryID)

	var mCount int64
	db.Model(&models.Media{}).Count(&mCount)
	assert.Zero(t, mCount, "pre-import media must not survive")
}

func TestImportRejectsUnknownVersionWithoutClearing(t *testing.T) {
	db := newTestDB(t)
	content := NewContentService(db)
	backup := NewBackupService(db)

	seedCategory(t, content, "keep me")

	err := backup.Import(&Snapshot{Version: 2})
	assert.True(t, IsValidation(err))

	categories, listErr := content.ListCategories()
	require.NoError(t, listErr)
	assert.Len(t, categories, 1, "failed import must not lose data")
}

func TestImportRollsBackOnBrokenReference(t *testing.T) {
	db := newTestDB(t)
	content := NewContentService(db)
	backup := NewBackupService(db)

	seedCategory(t, content, "keep me")

	snapshot := &Snapshot{
		Version: SnapshotVersion,
		Questions: []SnapshotQuestion{
			{Question: models.Question{
				CategoryID: 123, OrderNum: 1, Points: 10,
				QuestionText: "orphan", AnswerText: "a", Enabled: true,
			}},
		},
	}
	err := backup.Import(snapshot)
	assert.True(t, IsValidation(err))

	// The transaction rolled the destructive clear back.
	categories, listErr := content.ListCategories()
	require.NoError(t, listErr)
	require.Len(t, categories, 1)
	assert.Equal(t, "keep me", categories[0].Name)
}

func TestResetAllClearsContentButNotAdmin(t *testing.T) {
	db := newTestDB(t)
	content := NewContentService(db)
	media := NewMediaService(db)
	backup := NewBackupService(db)

	require.NoError(t, db.Create(&models.Admin{Username: "ceoo", PasswordHash: "x"}).Error)

	cat := seedCategory(t, content, "A")
	m, err := media.Add("a.png", "image/png", []byte("a"))
	require.NoError(t, err)
	seedQuestion(t, content, QuestionInput{
		CategoryID: cat.ID, OrderNum: 1, Points: 10,
		QuestionText: "q", AnswerText: "a", MediaID: &m.ID,
	})

	require.NoError(t, backup.ResetAll())

	var catCount, qCount, mCount, adminCount int64
	db.Model(&models.Category{}).Count(&catCount)
	db.Model(&models.Question{}).Count(&qCount)
	db.Model(&models.Media{}).Count(&mCount)
	db.Model(&models.Admin{}).Count(&adminCount)
	assert.Zero(t, catCount)
	assert.Zero(t, qCount)
	assert.Zero(t, mCount)
	assert.EqualValues(t, 1, adminCount)
}
