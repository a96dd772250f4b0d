package service

import (
	"github.com/jinzhu/copier"
	"github.com/practlab/cadence/internal/dto"
	"github.com/practlab/cadence/internal/model"
	"github.com/practlab/cadence/internal/repository"
	"github.com/rs/zerolog/log"
)

type CourseService interface {
	CreateCourse(req dto.CreateCourseRequest) (*dto.CourseResponse, error)
	GetCourse(id uint) (*dto.CourseResponse, error)
	GetAllCourses() ([]dto.CourseResponse, error)
	Enroll(courseID, userID uint) error
	DeleteCourse(id uint) error
}

type courseService struct {
	repo repository.CourseRepository
}

func NewCourseService(repo repository.CourseRepository) CourseService {
	return &courseService{repo: repo}
}

func (s *courseService) CreateCourse(req dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	course := model.Course{
		Name:        req.Name,
		Title:       req.Title,
		Description: req.Description,
	}
	if req.StartDate != nil {
		course.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		course.EndDate = *req.EndDate
	}
	if err := s.repo.Create(&course); err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("creating course failed")
		return nil, err
	}
	var resp dto.CourseResponse
	copier.Copy(&resp, &course)
	return &resp, nil
}

func (s *courseService) GetCourse(id uint) (*dto.CourseResponse, error) {
	course, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	var resp dto.CourseResponse
	copier.Copy(&resp, course)
	return &resp, nil
}

func (s *courseService) GetAllCourses() ([]dto.CourseResponse, error) {
	courses, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	var resp []dto.CourseResponse
	copier.Copy(&resp, &courses)
	return resp, nil
}

func (s *courseService) Enroll(courseID, userID uint) error {
	return s.repo.Enroll(courseID, userID)
}

func (s *courseService) DeleteCourse(id uint) error {
	return s.repo.Delete(id)
}
