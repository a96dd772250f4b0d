package service

import (
	"github.com/jinzhu/copier"
	"github.com/practlab/cadence/internal/dto"
	"github.com/practlab/cadence/internal/model"
	"github.com/practlab/cadence/internal/repository"
	"github.com/rs/zerolog/log"
)

type AssessmentService interface {
	CreateAssessment(req dto.CreateAssessmentRequest) (*dto.AssessmentResponse, error)
	GetAssessment(id uint) (*dto.AssessmentResponse, error)
	GetCourseAssessments(courseID uint) ([]dto.AssessmentResponse, error)
	AddQuestions(id uint, questionIDs []uint) error
	AddObjectives(id uint, objectiveIDs []uint) error
	DeleteAssessment(id uint) error
}

type assessmentService struct {
	repo    repository.AssessmentRepository
	courses repository.CourseRepository
}

func NewAssessmentService(repo repository.AssessmentRepository, courses repository.CourseRepository) AssessmentService {
	return &assessmentService{repo: repo, courses: courses}
}

func (s *assessmentService) CreateAssessment(req dto.CreateAssessmentRequest) (*dto.AssessmentResponse, error) {
	if _, err := s.courses.FindByID(req.CourseID); err != nil {
		log.Warn().Err(err).Uint("courseID", req.CourseID).Msg("invalid course for assessment")
		return nil, err
	}

	courseID := req.CourseID
	assessment := model.Assessment{
		Title:       req.Title,
		Description: req.Description,
		Time:        req.Time,
		CourseID:    &courseID,
	}
	if err := s.repo.Create(&assessment); err != nil {
		log.Error().Err(err).Msg("creating assessment failed")
		return nil, err
	}
	if len(req.QuestionIDs) > 0 {
		if err := s.repo.AddQuestions(assessment.ID, req.QuestionIDs); err != nil {
			return nil, err
		}
	}
	if len(req.ObjectiveIDs) > 0 {
		if err := s.repo.AddObjectives(assessment.ID, req.ObjectiveIDs); err != nil {
			return nil, err
		}
	}
	return s.GetAssessment(assessment.ID)
}

func (s *assessmentService) GetAssessment(id uint) (*dto.AssessmentResponse, error) {
	assessment, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	var resp dto.AssessmentResponse
	copier.Copy(&resp, assessment)
	return &resp, nil
}

func (s *assessmentService) GetCourseAssessments(courseID uint) ([]dto.AssessmentResponse, error) {
	assessments, err := s.repo.FindByCourseID(courseID)
	if err != nil {
		return nil, err
	}
	var resp []dto.AssessmentResponse
	copier.Copy(&resp, &assessments)
	return resp, nil
}

func (s *assessmentService) AddQuestions(id uint, questionIDs []uint) error {
	return s.repo.AddQuestions(id, questionIDs)
}

func (s *assessmentService) AddObjectives(id uint, objectiveIDs []uint) error {
	return s.repo.AddObjectives(id, objectiveIDs)
}

func (s *assessmentService) DeleteAssessment(id uint) error {
	return s.repo.Delete(id)
}
