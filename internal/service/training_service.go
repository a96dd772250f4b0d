package service

import (
	"time"

	"github.com/jinzhu/copier"
	"github.com/practlab/cadence/internal/dto"
	"github.com/practlab/cadence/internal/model"
	"github.com/practlab/cadence/internal/repository"
)

type TrainingService interface {
	// Classify partitions an assessment's questions by due state for one
	// user, relative to the server-local calendar day.
	Classify(userID, assessmentID uint) (*dto.ClassificationResponse, error)
}

type trainingService struct {
	assessments repository.AssessmentRepository
	attempts    repository.AttemptRepository
	now         func() time.Time
}

func NewTrainingService(assessments repository.AssessmentRepository, attempts repository.AttemptRepository) TrainingService {
	return &trainingService{assessments: assessments, attempts: attempts, now: time.Now}
}

func (s *trainingService) Classify(userID, assessmentID uint) (*dto.ClassificationResponse, error) {
	assessment, err := s.assessments.FindByID(assessmentID)
	if err != nil {
		return nil, err
	}

	questionIDs := make([]uint, len(assessment.Questions))
	for i, q := range assessment.Questions {
		questionIDs[i] = q.ID
	}
	attempts, err := s.attempts.FindForQuestions(userID, questionIDs)
	if err != nil {
		return nil, err
	}

	byQuestion := make(map[uint][]model.Attempt)
	for _, a := range attempts {
		byQuestion[a.QuestionID] = append(byQuestion[a.QuestionID], a)
	}

	today := startOfDay(s.now())
	resp := dto.ClassificationResponse{AssessmentID: assessment.ID}
	for _, q := range assessment.Questions {
		history := byQuestion[q.ID]
		qr := questionResponse(q)

		if len(history) == 0 {
			resp.Unattempted = append(resp.Unattempted, qr)
			resp.Fresh = append(resp.Fresh, qr)
			continue
		}
		latest := history[len(history)-1]
		next := startOfDay(latest.NextAttempt)

		switch {
		case next.Equal(today):
			resp.Due = append(resp.Due, qr)
		case next.Before(today):
			resp.Overdue = append(resp.Overdue, qr)
		default:
			resp.Waiting = append(resp.Waiting, qr)
		}
		if !next.After(today) && !sameDay(latest.Time, today) {
			resp.Fresh = append(resp.Fresh, qr)
		}

		todays := attemptsOn(history, today)
		if len(todays) > 0 {
			if !anyQualityAtLeast(todays, 4) {
				resp.Repeat = append(resp.Repeat, qr)
			}
			bucketToday(&resp.BreakdownToday, qr, todays[0])
		}
	}
	return &resp, nil
}

// bucketToday assigns a question to one of the four first-attempt-of-today
// buckets: incorrect, then easy/medium/hard by quality for correct answers.
func bucketToday(b *dto.BreakdownTodayResponse, qr dto.QuestionResponse, first model.Attempt) {
	switch {
	case !first.Correct:
		b.Incorrect = append(b.Incorrect, qr)
	case first.Quality == 5:
		b.Easy = append(b.Easy, qr)
	case first.Quality == 4:
		b.Medium = append(b.Medium, qr)
	case first.Quality >= 1 && first.Quality <= 3:
		b.Hard = append(b.Hard, qr)
	}
}

func attemptsOn(history []model.Attempt, day time.Time) []model.Attempt {
	var out []model.Attempt
	for _, a := range history {
		if sameDay(a.Time, day) {
			out = append(out, a)
		}
	}
	return out
}

func anyQualityAtLeast(attempts []model.Attempt, quality int) bool {
	for _, a := range attempts {
		if a.Quality >= quality {
			return true
		}
	}
	return false
}

func questionResponse(q model.Question) dto.QuestionResponse {
	var qr dto.QuestionResponse
	copier.Copy(&qr, &q)
	return qr
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
