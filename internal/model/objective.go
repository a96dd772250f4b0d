package model

import (
	"time"

	"gorm.io/gorm"
)

// Objective tags related questions so mastery can be reported per learning
// objective rather than per question.
type Objective struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Description string         `json:"description" gorm:"not null"`
	Public      bool           `json:"public" gorm:"default:true"`
	AuthorID    uint           `json:"author_id" gorm:"index"`
	Questions   []Question     `json:"questions,omitempty" gorm:"foreignKey:ObjectiveID"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
