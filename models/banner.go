package models

import "time"

// Banner is a homepage promotion slide managed from the admin console.
type Banner struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `json:"title"`
	Image     string    `gorm:"not null" json:"image"` // public URL
	Link      string    `json:"link"`
	Position  int       `json:"position"`
	Active    bool      `gorm:"default:true" json:"active"`
	CreatedAt time.Time `json:"created_at"`
}
