package game

import (
	"errors"
	"fmt"

	"github.com/Michiaki-Hirayama/bounenkai-jeopardy/internal/models"
	"github.com/Michiaki-Hirayama/bounenkai-jeopardy/internal/services"

	"gorm.io/gorm"
)

var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrCellUnavailable  = errors.New("question is not available on the board")
)

type BoardColumn struct {
	CategoryID uint   `json:"categoryId"`
	Name       string `json:"name"`
}

// BoardCell is one grid slot. An empty slot (no enabled question for that
// row/category) has Available=false and a "---" label.
type BoardCell struct {
	Row        int    `json:"row"`
	CategoryID uint   `json:"categoryId"`
	QuestionID uint   `json:"questionId,omitempty"`
	Label      string `json:"label"`
	Available  bool   `json:"available"`
	Answered   bool   `json:"answered"`
}

// Board is the grid: columns ordered by category order, rows 1..MaxRow.
type Board struct {
	Columns []BoardColumn `json:"columns"`
	Rows    [][]BoardCell `json:"rows"`
}

type QuestionView struct {
	ID           uint          `json:"id"`
	CategoryName string        `json:"categoryName"`
	RowLabel     string        `json:"rowLabel"`
	Points       int           `json:"points"`
	PointsLabel  string        `json:"pointsLabel"`
	QuestionText string        `json:"questionText"`
	Media        *models.Media `json:"media,omitempty"`
}

type AnswerView struct {
	QuestionID  uint          `json:"questionId"`
	AnswerText  string        `json:"answerText"`
	AnswerLabel string        `json:"answerLabel"`
	Explanation string        `json:"explanation"`
	Media       *models.Media `json:"media,omitempty"`
}

// BoardService renders the play-side view of the content: only enabled
// questions appear, and nothing here mutates stored content.
type BoardService struct {
	db *gorm.DB
}

func NewBoardService(db *gorm.DB) *BoardService {
	return &BoardService{db: db}
}

// Build assembles the grid. answered marks cells already picked in the
// current session; pass nil for a fresh board.
func (s *BoardService) Build(answered map[uint]bool) (*Board, error) {
	var categories []models.Category
	if err := s.db.Order("order_num ASC").Find(&categories).Error; err != nil {
		return nil, err
	}

	var questions []models.Question
	if err := s.db.Where("enabled = ?", true).Find(&questions).Error; err != nil {
		return nil, err
	}

	byCell := make(map[[2]uint]*models.Question, len(questions))
	for i := range questions {
		q := &questions[i]
		byCell[[2]uint{q.CategoryID, uint(q.OrderNum)}] = q
	}

	board := &Board{
		Columns: make([]BoardColumn, 0, len(categories)),
		Rows:    make([][]BoardCell, 0, services.MaxRow),
	}
	for _, cat := range categories {
		board.Columns = append(board.Columns, BoardColumn{CategoryID: cat.ID, Name: cat.Name})
	}

	for row := 1; row <= services.MaxRow; row++ {
		cells := make([]BoardCell, 0, len(categories))
		for _, cat := range categories {
			cell := BoardCell{Row: row, CategoryID: cat.ID, Label: "---"}
			if q, ok := byCell[[2]uint{cat.ID, uint(row)}]; ok {
				cell.QuestionID = q.ID
				cell.Label = fmt.Sprintf("%dGW", q.Points)
				cell.Available = true
				cell.Answered = answered[q.ID]
			}
			cells = append(cells, cell)
		}
		board.Rows = append(board.Rows, cells)
	}

	return board, nil
}

// OpenQuestion returns the prompt-side view of an enabled question,
// including its question media.
func (s *BoardService) OpenQuestion(id uint) (*QuestionView, error) {
	question, err := s.enabledQuestion(id)
	if err != nil {
		return nil, err
	}

	var categoryName string
	var cat models.Category
	if err := s.db.First(&cat, question.CategoryID).Error; err == nil {
		categoryName = cat.Name
	}

	view := &QuestionView{
		ID:           question.ID,
		CategoryName: categoryName,
		RowLabel:     fmt.Sprintf("Q%d", question.OrderNum),
		Points:       question.Points,
		PointsLabel:  fmt.Sprintf("%dGW", question.Points),
		QuestionText: question.QuestionText,
	}
	view.Media = s.loadMedia(question.QuestionMediaID)
	return view, nil
}

// RevealAnswer returns the answer-side view, with the display label the
// board shows on reveal.
func (s *BoardService) RevealAnswer(id uint) (*AnswerView, error) {
	question, err := s.enabledQuestion(id)
	if err != nil {
		return nil, err
	}

	view := &AnswerView{
		QuestionID:  question.ID,
		AnswerText:  question.AnswerText,
		Explanation: question.Explanation,
	}
	if question.AnswerText != "" {
		view.AnswerLabel = "正解: " + question.AnswerText
	}
	view.Media = s.loadMedia(question.MediaID)
	return view, nil
}

func (s *BoardService) enabledQuestion(id uint) (*models.Question, error) {
	var question models.Question
	if err := s.db.First(&question, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}
	if !question.Enabled {
		return nil, ErrCellUnavailable
	}
	return &question, nil
}

func (s *BoardService) loadMedia(id *uint) *models.Media {
	if id == nil {
		return nil
	}
	var media models.Media
	if err := s.db.First(&media, *id).Error; err != nil {
		return nil
	}
	return &media
}
