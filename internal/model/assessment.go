package model

import (
	"time"

	"gorm.io/gorm"
)

// Assessment is a named collection of questions (and objectives) with a
// scheduled time. It scopes the due/fresh/overdue training queries.
type Assessment struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description,omitempty"`
	Time        *time.Time     `json:"time,omitempty"`
	CourseID    *uint          `json:"course_id,omitempty" gorm:"index"`
	Course      *Course        `json:"course,omitempty" gorm:"foreignKey:CourseID"`
	Questions   []Question     `json:"questions,omitempty" gorm:"many2many:assessment_questions;"`
	Objectives  []Objective    `json:"objectives,omitempty" gorm:"many2many:assessment_objectives;"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
