package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/practlab/cadence/internal/dto"
	"github.com/practlab/cadence/internal/grader"
	"github.com/practlab/cadence/internal/model"
	"github.com/practlab/cadence/internal/repository"
	"github.com/practlab/cadence/internal/sm2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ErrNeedsReview marks a code answer the equivalence checker could not
// judge. The attempt is not recorded; the answer is not wrong.
var ErrNeedsReview = errors.New("response needs manual review")

// ErrInvalidRating rejects recall ratings outside the 0-5 scale.
var ErrInvalidRating = errors.New("rating must be between 0 and 5")

const defaultCorrectQuality = 4

type AttemptService interface {
	SubmitAttempt(userID uint, req dto.SubmitAttemptRequest) (*dto.AttemptResponse, error)
}

type attemptService struct {
	attempts  repository.AttemptRepository
	questions repository.QuestionRepository
	now       func() time.Time
}

func NewAttemptService(attempts repository.AttemptRepository, questions repository.QuestionRepository) AttemptService {
	return &attemptService{attempts: attempts, questions: questions, now: time.Now}
}

// SubmitAttempt grades the response, resolves the 0-5 recall quality, runs
// the scheduler against the previous latest attempt for this (user, question)
// pair and records the new attempt with its computed scheduling fields.
func (s *attemptService) SubmitAttempt(userID uint, req dto.SubmitAttemptRequest) (*dto.AttemptResponse, error) {
	if req.Rating != nil && (*req.Rating < sm2.MinQuality || *req.Rating > sm2.MaxQuality) {
		return nil, ErrInvalidRating
	}

	question, err := s.questions.FindByID(req.QuestionID)
	if err != nil {
		return nil, err
	}

	result, err := grader.Grade(question, grader.Submission{
		Text:       req.Response,
		OptionIDs:  req.OptionIDs,
		Placements: placements(req.Placements),
	})
	if err != nil {
		log.Error().Err(err).Uint("questionID", question.ID).Msg("grading failed")
		return nil, err
	}
	if result.NeedsReview {
		return nil, ErrNeedsReview
	}

	correct := result.Correct
	if !result.AutoGraded {
		correct = req.Correct != nil && *req.Correct
	}
	quality := 1
	if correct {
		quality = defaultCorrectQuality
		if req.Rating != nil {
			quality = *req.Rating
		}
	}

	// Reading the prior attempt and writing the new one happen in one
	// transaction so concurrent submits for the same (user, question)
	// pair cannot schedule off stale state.
	now := s.now()
	var attempt model.Attempt
	err = s.attempts.Transaction(func(attempts repository.AttemptRepository) error {
		prior := sm2.DefaultState(now)
		repeat := false
		if latest, err := attempts.FindLatest(userID, question.ID); err == nil {
			prior = sm2.State{Interval: latest.Interval, EFactor: latest.EFactor, NextAttempt: latest.NextAttempt}
			repeat = sameDay(latest.Time, now)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("loading prior attempt: %w", err)
		}

		state := sm2.Update(prior, quality, repeat, now)

		attempt = model.Attempt{
			UserID:      userID,
			QuestionID:  question.ID,
			Response:    req.Response,
			Correct:     correct,
			Quality:     quality,
			Interval:    state.Interval,
			EFactor:     state.EFactor,
			NextAttempt: state.NextAttempt,
			Time:        now,
		}
		return attempts.Create(&attempt)
	})
	if err != nil {
		log.Error().Err(err).Uint("questionID", question.ID).Msg("recording attempt failed")
		return nil, err
	}

	var resp dto.AttemptResponse
	copier.Copy(&resp, &attempt)
	return &resp, nil
}

func placements(reqs []dto.PlacementRequest) []grader.Placement {
	out := make([]grader.Placement, len(reqs))
	for i, p := range reqs {
		out[i] = grader.Placement{BlockID: p.BlockID, Position: p.Position, Indent: p.Indent}
	}
	return out
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
