package models

import "time"

// Category groups idols by deity or theme.
type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:191;uniqueIndex" json:"name"`
	Description string    `gorm:"size:500" json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Idol is one catalog product. Size is the statue height in feet.
type Idol struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:191" json:"title"`
	Description string    `gorm:"size:2000" json:"description"`
	Size        float64   `json:"size"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	CategoryID  uint      `gorm:"index" json:"categoryId"`
	Category    *Category `json:"category,omitempty"`
	Thumbnail   string    `gorm:"size:500" json:"thumbnail"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// InStock reports whether the idol can currently be ordered.
func (i Idol) InStock() bool { return i.Stock > 0 }
