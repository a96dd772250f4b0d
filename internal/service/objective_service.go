package service

import (
	"math"
	"sort"

	"github.com/jinzhu/copier"
	"github.com/practlab/cadence/internal/dto"
	"github.com/practlab/cadence/internal/model"
	"github.com/practlab/cadence/internal/repository"
)

// ReviewThreshold is the e-factor below which a question or objective is
// considered weak enough to review.
const ReviewThreshold = 2.6

type ObjectiveService interface {
	CreateObjective(authorID uint, req dto.CreateObjectiveRequest) (*dto.ObjectiveResponse, error)
	GetObjective(id uint) (*dto.ObjectiveResponse, error)
	GetAllObjectives() ([]dto.ObjectiveResponse, error)
	DeleteObjective(id uint) error

	// EFactorAverage averages the e-factor of the user's latest attempt on
	// each of the objective's questions, optionally scoped to an
	// assessment's question set. Unattempted questions are excluded;
	// no attempted questions at all yields 0.
	EFactorAverage(objectiveID, userID uint, assessmentID *uint) (float64, error)
	// Mastery combines the average with the weakest-first review list.
	Mastery(objectiveID, userID uint, assessmentID *uint) (*dto.ObjectiveMasteryResponse, error)
	// ObjectivesToReview ranks an assessment's objectives weakest first,
	// returning those averaging below the review threshold, padded with the
	// next weakest to minCount and capped at maxCount when given.
	ObjectivesToReview(userID, assessmentID uint, minCount int, maxCount *int) ([]dto.ObjectiveAverageResponse, error)
}

type objectiveService struct {
	objectives  repository.ObjectiveRepository
	questions   repository.QuestionRepository
	assessments repository.AssessmentRepository
	attempts    repository.AttemptRepository
}

func NewObjectiveService(
	objectives repository.ObjectiveRepository,
	questions repository.QuestionRepository,
	assessments repository.AssessmentRepository,
	attempts repository.AttemptRepository,
) ObjectiveService {
	return &objectiveService{objectives: objectives, questions: questions, assessments: assessments, attempts: attempts}
}

func (s *objectiveService) CreateObjective(authorID uint, req dto.CreateObjectiveRequest) (*dto.ObjectiveResponse, error) {
	objective := model.Objective{Description: req.Description, Public: true, AuthorID: authorID}
	if req.Public != nil {
		objective.Public = *req.Public
	}
	if err := s.objectives.Create(&objective); err != nil {
		return nil, err
	}
	var resp dto.ObjectiveResponse
	copier.Copy(&resp, &objective)
	return &resp, nil
}

func (s *objectiveService) GetObjective(id uint) (*dto.ObjectiveResponse, error) {
	objective, err := s.objectives.FindByID(id)
	if err != nil {
		return nil, err
	}
	var resp dto.ObjectiveResponse
	copier.Copy(&resp, objective)
	return &resp, nil
}

func (s *objectiveService) GetAllObjectives() ([]dto.ObjectiveResponse, error) {
	objectives, err := s.objectives.FindAll()
	if err != nil {
		return nil, err
	}
	var resp []dto.ObjectiveResponse
	copier.Copy(&resp, &objectives)
	return resp, nil
}

func (s *objectiveService) DeleteObjective(id uint) error {
	return s.objectives.Delete(id)
}

func (s *objectiveService) EFactorAverage(objectiveID, userID uint, assessmentID *uint) (float64, error) {
	questions, err := s.scopedQuestions(objectiveID, assessmentID)
	if err != nil {
		return 0, err
	}
	latest, err := s.latestAttempts(userID, questions)
	if err != nil {
		return 0, err
	}
	return averageEFactor(latest), nil
}

func (s *objectiveService) Mastery(objectiveID, userID uint, assessmentID *uint) (*dto.ObjectiveMasteryResponse, error) {
	questions, err := s.scopedQuestions(objectiveID, assessmentID)
	if err != nil {
		return nil, err
	}
	latest, err := s.latestAttempts(userID, questions)
	if err != nil {
		return nil, err
	}

	type weak struct {
		question model.Question
		eFactor  float64
	}
	var weakest []weak
	for _, q := range questions {
		if a, ok := latest[q.ID]; ok && a.EFactor < ReviewThreshold {
			weakest = append(weakest, weak{question: q, eFactor: a.EFactor})
		}
	}
	sort.Slice(weakest, func(i, j int) bool {
		if weakest[i].eFactor != weakest[j].eFactor {
			return weakest[i].eFactor < weakest[j].eFactor
		}
		return weakest[i].question.ID < weakest[j].question.ID
	})

	resp := dto.ObjectiveMasteryResponse{
		ObjectiveID:    objectiveID,
		EFactorAverage: averageEFactor(latest),
	}
	for _, w := range weakest {
		resp.ReviewQuestions = append(resp.ReviewQuestions, questionResponse(w.question))
	}
	return &resp, nil
}

func (s *objectiveService) ObjectivesToReview(userID, assessmentID uint, minCount int, maxCount *int) ([]dto.ObjectiveAverageResponse, error) {
	assessment, err := s.assessments.FindByID(assessmentID)
	if err != nil {
		return nil, err
	}

	aID := assessment.ID
	ranked := make([]dto.ObjectiveAverageResponse, 0, len(assessment.Objectives))
	for _, o := range assessment.Objectives {
		avg, err := s.EFactorAverage(o.ID, userID, &aID)
		if err != nil {
			return nil, err
		}
		var or dto.ObjectiveResponse
		copier.Copy(&or, &o)
		ranked = append(ranked, dto.ObjectiveAverageResponse{Objective: or, EFactorAverage: avg})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].EFactorAverage != ranked[j].EFactorAverage {
			return ranked[i].EFactorAverage < ranked[j].EFactorAverage
		}
		return ranked[i].Objective.ID < ranked[j].Objective.ID
	})

	count := 0
	for _, r := range ranked {
		if r.EFactorAverage < ReviewThreshold {
			count++
		}
	}
	if count < minCount {
		count = minCount
	}
	if count > len(ranked) {
		count = len(ranked)
	}
	if maxCount != nil && count > *maxCount {
		count = *maxCount
	}
	return ranked[:count], nil
}

// scopedQuestions returns the objective's questions, intersected with the
// assessment's question set when an assessment is given.
func (s *objectiveService) scopedQuestions(objectiveID uint, assessmentID *uint) ([]model.Question, error) {
	questions, err := s.questions.FindByObjectiveID(objectiveID)
	if err != nil {
		return nil, err
	}
	if assessmentID == nil {
		return questions, nil
	}
	assessment, err := s.assessments.FindByID(*assessmentID)
	if err != nil {
		return nil, err
	}
	inAssessment := make(map[uint]bool, len(assessment.Questions))
	for _, q := range assessment.Questions {
		inAssessment[q.ID] = true
	}
	var scoped []model.Question
	for _, q := range questions {
		if inAssessment[q.ID] {
			scoped = append(scoped, q)
		}
	}
	return scoped, nil
}

// latestAttempts maps each question to the user's latest attempt on it;
// unattempted questions are absent from the map.
func (s *objectiveService) latestAttempts(userID uint, questions []model.Question) (map[uint]model.Attempt, error) {
	ids := make([]uint, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}
	attempts, err := s.attempts.FindForQuestions(userID, ids)
	if err != nil {
		return nil, err
	}
	latest := make(map[uint]model.Attempt)
	for _, a := range attempts {
		latest[a.QuestionID] = a // attempts arrive oldest first
	}
	return latest, nil
}

func averageEFactor(latest map[uint]model.Attempt) float64 {
	if len(latest) == 0 {
		return 0
	}
	sum := 0.0
	for _, a := range latest {
		sum += a.EFactor
	}
	return round3(sum / float64(len(latest)))
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
