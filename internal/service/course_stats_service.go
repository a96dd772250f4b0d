package service

import (
	"fmt"

	"github.com/practlab/cadence/internal/dto"
	"github.com/practlab/cadence/internal/model"
	"github.com/practlab/cadence/internal/repository"
)

type CourseStatsService interface {
	// Stats aggregates class-wide numbers for one assessment: star rating
	// and skill breakdown for the given objective, plus the
	// questions-remaining histogram over all enrolled users.
	Stats(assessmentID, objectiveID uint) (*dto.CourseStatsResponse, error)

	StarRating(objectiveID, assessmentID uint) (int, error)
	QuestionsRemaining(assessmentID uint) ([5]int, error)
	SkillBreakdown(objectiveID, assessmentID uint) (*dto.SkillBreakdownResponse, error)
}

type courseStatsService struct {
	assessments repository.AssessmentRepository
	courses     repository.CourseRepository
	questions   repository.QuestionRepository
	attempts    repository.AttemptRepository
}

func NewCourseStatsService(
	assessments repository.AssessmentRepository,
	courses repository.CourseRepository,
	questions repository.QuestionRepository,
	attempts repository.AttemptRepository,
) CourseStatsService {
	return &courseStatsService{assessments: assessments, courses: courses, questions: questions, attempts: attempts}
}

func (s *courseStatsService) Stats(assessmentID, objectiveID uint) (*dto.CourseStatsResponse, error) {
	stars, err := s.StarRating(objectiveID, assessmentID)
	if err != nil {
		return nil, err
	}
	remaining, err := s.QuestionsRemaining(assessmentID)
	if err != nil {
		return nil, err
	}
	skill, err := s.SkillBreakdown(objectiveID, assessmentID)
	if err != nil {
		return nil, err
	}
	return &dto.CourseStatsResponse{
		AssessmentID:       assessmentID,
		ObjectiveID:        objectiveID,
		StarRating:         stars,
		QuestionsRemaining: remaining,
		Skill:              *skill,
	}, nil
}

// StarRating maps the class-wide average e-factor on the objective's
// questions to 1-5 stars, or 0 when nobody has attempted any of them.
func (s *courseStatsService) StarRating(objectiveID, assessmentID uint) (int, error) {
	latest, _, err := s.classLatestAttempts(objectiveID, assessmentID)
	if err != nil {
		return 0, err
	}
	if len(latest) == 0 {
		return 0, nil
	}
	sum := 0.0
	for _, a := range latest {
		sum += a.EFactor
	}
	return starBand(sum / float64(len(latest))), nil
}

func starBand(avg float64) int {
	switch {
	case avg < 2:
		return 1
	case avg < 3:
		return 2
	case avg < 4:
		return 3
	case avg < 6:
		return 4
	default:
		return 5
	}
}

// QuestionsRemaining buckets enrolled users by how many assessment questions
// they have not yet attempted: 0, 1-2, 3-5, 6-10, 11+.
func (s *courseStatsService) QuestionsRemaining(assessmentID uint) ([5]int, error) {
	var bins [5]int
	assessment, users, err := s.assessmentRoster(assessmentID)
	if err != nil {
		return bins, err
	}

	questionIDs := make([]uint, len(assessment.Questions))
	for i, q := range assessment.Questions {
		questionIDs[i] = q.ID
	}
	userIDs := make([]uint, len(users))
	for i, u := range users {
		userIDs[i] = u.ID
	}
	attempts, err := s.attempts.FindForUsersAndQuestions(userIDs, questionIDs)
	if err != nil {
		return bins, err
	}

	attempted := make(map[uint]map[uint]bool)
	for _, a := range attempts {
		if attempted[a.UserID] == nil {
			attempted[a.UserID] = make(map[uint]bool)
		}
		attempted[a.UserID][a.QuestionID] = true
	}
	for _, u := range users {
		remaining := len(assessment.Questions) - len(attempted[u.ID])
		bins[remainingBin(remaining)]++
	}
	return bins, nil
}

func remainingBin(remaining int) int {
	switch {
	case remaining == 0:
		return 0
	case remaining <= 2:
		return 1
	case remaining <= 5:
		return 2
	case remaining <= 10:
		return 3
	default:
		return 4
	}
}

// SkillBreakdown classifies each enrolled user by average e-factor on the
// objective's questions within the assessment: proficient (>= 4), limited
// (3 to 4), undeveloped (< 3, including users with no attempts).
func (s *courseStatsService) SkillBreakdown(objectiveID, assessmentID uint) (*dto.SkillBreakdownResponse, error) {
	latest, users, err := s.classLatestAttempts(objectiveID, assessmentID)
	if err != nil {
		return nil, err
	}

	perUser := make(map[uint][]float64)
	for key, a := range latest {
		perUser[key.userID] = append(perUser[key.userID], a.EFactor)
	}

	var resp dto.SkillBreakdownResponse
	for _, u := range users {
		factors := perUser[u.ID]
		if len(factors) == 0 {
			resp.Undeveloped++
			continue
		}
		sum := 0.0
		for _, f := range factors {
			sum += f
		}
		switch avg := sum / float64(len(factors)); {
		case avg >= 4:
			resp.Proficient++
		case avg >= 3:
			resp.Limited++
		default:
			resp.Undeveloped++
		}
	}
	return &resp, nil
}

type pairKey struct {
	userID     uint
	questionID uint
}

// classLatestAttempts collects, for every enrolled user, the latest attempt
// on each of the objective's questions within the assessment.
func (s *courseStatsService) classLatestAttempts(objectiveID, assessmentID uint) (map[pairKey]model.Attempt, []model.User, error) {
	assessment, users, err := s.assessmentRoster(assessmentID)
	if err != nil {
		return nil, nil, err
	}

	inAssessment := make(map[uint]bool, len(assessment.Questions))
	for _, q := range assessment.Questions {
		inAssessment[q.ID] = true
	}
	objectiveQuestions, err := s.questions.FindByObjectiveID(objectiveID)
	if err != nil {
		return nil, nil, err
	}
	var questionIDs []uint
	for _, q := range objectiveQuestions {
		if inAssessment[q.ID] {
			questionIDs = append(questionIDs, q.ID)
		}
	}
	userIDs := make([]uint, len(users))
	for i, u := range users {
		userIDs[i] = u.ID
	}

	attempts, err := s.attempts.FindForUsersAndQuestions(userIDs, questionIDs)
	if err != nil {
		return nil, nil, err
	}
	latest := make(map[pairKey]model.Attempt)
	for _, a := range attempts {
		latest[pairKey{a.UserID, a.QuestionID}] = a // oldest first
	}
	return latest, users, nil
}

func (s *courseStatsService) assessmentRoster(assessmentID uint) (*model.Assessment, []model.User, error) {
	assessment, err := s.assessments.FindByID(assessmentID)
	if err != nil {
		return nil, nil, err
	}
	if assessment.CourseID == nil {
		return nil, nil, fmt.Errorf("assessment %d belongs to no course", assessmentID)
	}
	users, err := s.courses.EnrolledUsers(*assessment.CourseID)
	if err != nil {
		return nil, nil, err
	}
	return assessment, users, nil
}
