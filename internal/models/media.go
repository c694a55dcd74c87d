package models

import "time"

// Media holds an image or video as a self-contained base64 data URL, so an
// exported snapshot carries its payloads by value.
type Media struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Type      string    `gorm:"size:100;not null" json:"type"`
	Data      string    `gorm:"type:text;not null" json:"data"`
	CreatedAt time.Time `json:"createdAt"`
}
