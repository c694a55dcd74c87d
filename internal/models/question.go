package models

import "time"

// Question occupies one cell: row OrderNum (1..5) inside its category.
// QuestionMediaID is shown with the prompt, MediaID with the answer; each
// media record is owned by exactly one of these references.
type Question struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	CategoryID      uint      `gorm:"not null;index" json:"categoryId"`
	OrderNum        int       `gorm:"not null" json:"order"`
	Points          int       `gorm:"not null" json:"points"`
	QuestionText    string    `gorm:"type:text" json:"questionText"`
	AnswerText      string    `gorm:"type:text" json:"answerText"`
	Explanation     string    `gorm:"type:text" json:"explanation"`
	Enabled         bool      `gorm:"not null;default:true" json:"enabled"`
	QuestionMediaID *uint     `json:"questionMediaId"`
	MediaID         *uint     `json:"mediaId"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
