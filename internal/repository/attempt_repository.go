package repository

import (
	"github.com/practlab/cadence/internal/model"
	"gorm.io/gorm"
)

type AttemptRepository interface {
	Create(attempt *model.Attempt) error
	// Transaction runs fn against a repository bound to a single database
	// transaction, rolled back when fn returns an error.
	Transaction(fn func(AttemptRepository) error) error
	// FindLatest returns the most recent attempt for the pair, by
	// (time, id). Returns gorm.ErrRecordNotFound when the user has never
	// attempted the question.
	FindLatest(userID, questionID uint) (*model.Attempt, error)
	// FindForQuestions returns every attempt by the user on the given
	// questions, oldest first.
	FindForQuestions(userID uint, questionIDs []uint) ([]model.Attempt, error)
	// FindForUsersAndQuestions is FindForQuestions across a user set,
	// for course-level aggregation.
	FindForUsersAndQuestions(userIDs, questionIDs []uint) ([]model.Attempt, error)
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Create(attempt *model.Attempt) error {
	return r.db.Create(attempt).Error
}

func (r *attemptRepository) Transaction(fn func(AttemptRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&attemptRepository{db: tx})
	})
}

func (r *attemptRepository) FindLatest(userID, questionID uint) (*model.Attempt, error) {
	var attempt model.Attempt
	err := r.db.
		Where("user_id = ? AND question_id = ?", userID, questionID).
		Order("time desc, id desc").
		First(&attempt).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) FindForQuestions(userID uint, questionIDs []uint) ([]model.Attempt, error) {
	if len(questionIDs) == 0 {
		return nil, nil
	}
	var attempts []model.Attempt
	err := r.db.
		Where("user_id = ? AND question_id IN ?", userID, questionIDs).
		Order("time asc, id asc").
		Find(&attempts).Error
	if err != nil {
		return nil, err
	}
	return attempts, nil
}

func (r *attemptRepository) FindForUsersAndQuestions(userIDs, questionIDs []uint) ([]model.Attempt, error) {
	if len(userIDs) == 0 || len(questionIDs) == 0 {
		return nil, nil
	}
	var attempts []model.Attempt
	err := r.db.
		Where("user_id IN ? AND question_id IN ?", userIDs, questionIDs).
		Order("time asc, id asc").
		Find(&attempts).Error
	if err != nil {
		return nil, err
	}
	return attempts, nil
}
