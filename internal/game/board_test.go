package game

import (
	"testing"

	"github.com/Michiaki-Hirayama/bounenkai-jeopardy/internal/models"
	"github.com/Michiaki-Hirayama/bounenkai-jeopardy/internal/services"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Category{},
		&models.Question{},
		&models.Media{},
	))
	return db
}

func TestBuildBoardGrid(t *testing.T) {
	db := newTestDB(t)
	content := services.NewContentService(db)
	board := NewBoardService(db)

	catA, err := content.CreateCategory("A")
	require.NoError(t, err)
	_, err = content.CreateCategory("B")
	require.NoError(t, err)

	q, err := content.CreateQuestion(services.QuestionInput{
		CategoryID: catA.ID, OrderNum: 1, Points: 10,
		QuestionText: "Q", AnswerText: "X",
	})
	require.NoError(t, err)

	grid, err := board.Build(nil)
	require.NoError(t, err)

	require.Len(t, grid.Columns, 2)
	assert.Equal(t, "A", grid.Columns[0].Name)
	assert.Equal(t, "B", grid.Columns[1].Name)
	require.Len(t, grid.Rows, services.MaxRow)

	cell := grid.Rows[0][0]
	assert.Equal(t, q.ID, cell.QuestionID)
	assert.Equal(t, "10GW", cell.Label)
	assert.True(t, cell.Available)
	assert.False(t, cell.Answered)

	// No question for row 1 of category B: placeholder cell.
	empty := grid.Rows[0][1]
	assert.Equal(t, "---", empty.Label)
	assert.False(t, empty.Available)
	assert.Zero(t, empty.QuestionID)
}

func TestBuildBoardExcludesDisabledQuestions(t *testing.T) {
	db := newTestDB(t)
	content := services.NewContentService(db)
	board := NewBoardService(db)

	cat, err := content.CreateCategory("A")
	require.NoError(t, err)

	disabled := false
	_, err = content.CreateQuestion(services.QuestionInput{
		CategoryID: cat.ID, OrderNum: 1, Points: 10,
		QuestionText: "hidden", AnswerText: "x", Enabled: &disabled,
	})
	require.NoError(t, err)

	grid, err := board.Build(nil)
	require.NoError(t, err)
	assert.False(t, grid.Rows[0][0].Available, "disabled question must not reach the board")

	// But it stays visible in the editor list.
	questions, err := content.ListQuestions()
	require.NoError(t, err)
	assert.Len(t, questions, 1)
}

func TestBuildBoardMarksAnsweredCells(t *testing.T) {
	db := newTestDB(t)
	content := services.NewContentService(db)
	board := NewBoardService(db)

	cat, err := content.CreateCategory("A")
	require.NoError(t, err)
	q, err := content.CreateQuestion(services.QuestionInput{
		CategoryID: cat.ID, OrderNum: 2, Points: 20,
		QuestionText: "Q", AnswerText: "X",
	})
	require.NoError(t, err)

	grid, err := board.Build(map[uint]bool{q.ID: true})
	require.NoError(t, err)
	assert.True(t, grid.Rows[1][0].Answered)
}

func TestOpenQuestionView(t *testing.T) {
	db := newTestDB(t)
	content := services.NewContentService(db)
	media := services.NewMediaService(db)
	board := NewBoardService(db)

	cat, err := content.CreateCategory("社長系")
	require.NoError(t, err)
	qm, err := media.Add("q.png", "image/png", []byte("img"))
	require.NoError(t, err)
	q, err := content.CreateQuestion(services.QuestionInput{
		CategoryID: cat.ID, OrderNum: 1, Points: 10,
		QuestionText: "Q", AnswerText: "X",
		QuestionMediaID: &qm.ID,
	})
	require.NoError(t, err)

	view, err := board.OpenQuestion(q.ID)
	require.NoError(t, err)
	assert.Equal(t, "社長系", view.CategoryName)
	assert.Equal(t, "Q1", view.RowLabel)
	assert.Equal(t, "10GW", view.PointsLabel)
	assert.Equal(t, "Q", view.QuestionText)
	require.NotNil(t, view.Media)
	assert.Equal(t, qm.Data, view.Media.Data)

	_, err = board.OpenQuestion(999)
	assert.ErrorIs(t, err, ErrQuestionNotFound)
}

func TestOpenQuestionRejectsDisabled(t *testing.T) {
	db := newTestDB(t)
	content := services.NewContentService(db)
	board := NewBoardService(db)

	cat, err := content.CreateCategory("A")
	require.NoError(t, err)
	disabled := false
	q, err := content.CreateQuestion(services.QuestionInput{
		CategoryID: cat.ID, OrderNum: 1, Points: 10,
		QuestionText: "Q", AnswerText: "X", Enabled: &disabled,
	})
	require.NoError(t, err)

	_, err = board.OpenQuestion(q.ID)
	assert.ErrorIs(t, err, ErrCellUnavailable)
}

func TestRevealAnswerView(t *testing.T) {
	db := newTestDB(t)
	content := services.NewContentService(db)
	media := services.NewMediaService(db)
	board := NewBoardService(db)

	cat, err := content.CreateCategory("A")
	require.NoError(t, err)
	am, err := media.Add("a.mp4", "video/mp4", []byte("vid"))
	require.NoError(t, err)
	q, err := content.CreateQuestion(services.QuestionInput{
		CategoryID: cat.ID, OrderNum: 1, Points: 10,
		QuestionText: "Q", AnswerText: "X", Explanation: "because",
		MediaID: &am.ID,
	})
	require.NoError(t, err)

	view, err := board.RevealAnswer(q.ID)
	require.NoError(t, err)
	assert.Equal(t, "X", view.AnswerText)
	assert.Equal(t, "正解: X", view.AnswerLabel)
	assert.Equal(t, "because", view.Explanation)
	require.NotNil(t, view.Media)
	assert.Equal(t, am.Data, view.Media.Data)
}

func TestRevealAnswerMediaOnly(t *testing.T) {
	db := newTestDB(t)
	content := services.NewContentService(db)
	media := services.NewMediaService(db)
	board := NewBoardService(db)

	cat, err := content.CreateCategory("A")
	require.NoError(t, err)
	am, err := media.Add("a.png", "image/png", []byte("img"))
	require.NoError(t, err)
	q, err := content.CreateQuestion(services.QuestionInput{
		CategoryID: cat.ID, OrderNum: 1, Points: 10,
		QuestionText: "Q", MediaID: &am.ID,
	})
	require.NoError(t, err)

	view, err := board.RevealAnswer(q.ID)
	require.NoError(t, err)
	assert.Empty(t, view.AnswerLabel, "no label without answer text")
	require.NotNil(t, view.Media)
}
