package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID           uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string         `gorm:"not null" json:"name"`
	Slug         string         `gorm:"uniqueIndex;not null" json:"slug"` // derived from Name, cart line identity
	Author       string         `gorm:"not null" json:"author"`
	Description  string         `json:"description"`
	Category     string         `gorm:"index" json:"category"`
	Image        string         `json:"image"`
	Price        float64        `gorm:"not null" json:"price"`
	Rating       float64        `gorm:"default:0" json:"rating"`
	NumReviews   int            `gorm:"default:0" json:"num_reviews"`
	CountInStock int            `gorm:"default:0" json:"count_in_stock"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
