package model

import (
	"time"

	"gorm.io/gorm"
)

// QuestionKind discriminates the polymorphic question payload.
type QuestionKind string

const (
	KindShortAnswer       QuestionKind = "short_answer"
	KindAutoCheck         QuestionKind = "auto_check"
	KindMultipleChoice    QuestionKind = "multiple_choice"
	KindMultipleSelection QuestionKind = "multiple_selection"
	KindCodeJumble        QuestionKind = "code_jumble"
	KindSingleLineCode    QuestionKind = "single_line_code"
)

type Question struct {
	ID     uint         `gorm:"primarykey" json:"id"`
	Prompt string       `json:"prompt" gorm:"type:text;not null"`
	Kind   QuestionKind `json:"kind" gorm:"not null;index"`

	// Answer is the reference answer for short_answer, auto_check and
	// single_line_code questions.
	Answer string `json:"answer,omitempty" gorm:"type:text"`
	// RegexMatch makes auto_check grade Answer as a regular expression.
	RegexMatch bool `json:"regex_match" gorm:"default:false"`

	Options []QuestionOption `json:"options,omitempty" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE;"`
	Blocks  []JumbleBlock    `json:"blocks,omitempty" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE;"`

	ObjectiveID *uint      `json:"objective_id,omitempty" gorm:"index"`
	Objective   *Objective `json:"objective,omitempty" gorm:"foreignKey:ObjectiveID"`

	AuthorID uint `json:"author_id" gorm:"index"`
	Public   bool `json:"public" gorm:"default:true"`
	Enabled  bool `json:"enabled" gorm:"default:true"`

	// Attempts cascade-delete with their question.
	Attempts []Attempt `json:"-" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE;"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// QuestionOption is one answer option for multiple_choice and
// multiple_selection questions.
type QuestionOption struct {
	ID         uint   `gorm:"primarykey" json:"id"`
	QuestionID uint   `json:"question_id" gorm:"not null;index"`
	Text       string `json:"text" gorm:"type:text;not null"`
	Correct    bool   `json:"correct" gorm:"default:false"`
}

// JumbleBlock is one draggable code block of a code_jumble question.
// CorrectIndex < 0 marks a distractor block that belongs in no position.
type JumbleBlock struct {
	ID            uint   `gorm:"primarykey" json:"id"`
	QuestionID    uint   `json:"question_id" gorm:"not null;index"`
	Code          string `json:"code" gorm:"type:text;not null"`
	CorrectIndex  int    `json:"correct_index" gorm:"not null"`
	CorrectIndent int    `json:"correct_indent" gorm:"not null"`
}
