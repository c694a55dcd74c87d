package models

// Category is one column of the board. OrderNum is a dense 1..N ranking
// that defines the column position and is rewritten on every reorder.
type Category struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:255;not null" json:"name"`
	OrderNum int    `gorm:"not null;default:0;index" json:"order"`
}
