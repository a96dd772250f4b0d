package model

import (
	"time"
)

// Attempt is an immutable record of one submission of one question by one
// user. The scheduling fields (Interval, EFactor, NextAttempt) are computed
// once, when the attempt is created, from the previous latest attempt for
// the same (user, question) pair. The latest attempt's fields are the
// current scheduling state; earlier attempts are history.
type Attempt struct {
	ID         uint     `gorm:"primarykey" json:"id"`
	UserID     uint     `json:"user_id" gorm:"not null;index:idx_attempts_user_question"`
	User       User     `json:"-" gorm:"foreignKey:UserID"`
	QuestionID uint     `json:"question_id" gorm:"not null;index:idx_attempts_user_question"`
	Question   Question `json:"question,omitempty" gorm:"foreignKey:QuestionID"`

	Response string `json:"response" gorm:"type:text;not null"`
	Correct  bool   `json:"correct"`
	// Quality is the 0-5 SM-2 recall score for this attempt.
	Quality int `json:"quality"`

	// SM-2 scheduling state, set at creation time.
	Interval    int       `json:"interval" gorm:"not null;default:1"`
	EFactor     float64   `json:"e_factor" gorm:"not null;default:2.5"`
	NextAttempt time.Time `json:"next_attempt" gorm:"not null"`

	// Time is when the attempt was made; attempts for a pair are ordered by
	// (Time, ID).
	Time      time.Time `json:"time" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
}
