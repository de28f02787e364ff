package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	Slug        string          `gorm:"uniqueIndex;not null" json:"slug"`
	Description string          `json:"description"`
	Brand       string          `json:"brand"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Image       string          `gorm:"not null" json:"image"`
	Categories  []Category      `gorm:"many2many:product_categories;" json:"categories"`
	Stock       int             `json:"stock"`
	Rating      decimal.Decimal `gorm:"type:decimal(3,2)" json:"rating"`
	NumReviews  int             `json:"num_reviews"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`
}
