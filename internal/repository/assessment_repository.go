package repository

import (
	"github.com/practlab/cadence/internal/model"
	"gorm.io/gorm"
)

type AssessmentRepository interface {
	Create(assessment *model.Assessment) error
	FindByID(id uint) (*model.Assessment, error)
	FindByCourseID(courseID uint) ([]model.Assessment, error)
	Update(assessment *model.Assessment) error
	Delete(id uint) error
	AddQuestions(assessmentID uint, questionIDs []uint) error
	AddObjectives(assessmentID uint, objectiveIDs []uint) error
}

type assessmentRepository struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) AssessmentRepository {
	return &assessmentRepository{db: db}
}

func (r *assessmentRepository) Create(assessment *model.Assessment) error {
	return r.db.Create(assessment).Error
}

func (r *assessmentRepository) FindByID(id uint) (*model.Assessment, error) {
	var assessment model.Assessment
	err := r.db.
		Preload("Questions").Preload("Questions.Options").Preload("Questions.Blocks").
		Preload("Objectives").
		First(&assessment, id).Error
	if err != nil {
		return nil, err
	}
	return &assessment, nil
}

func (r *assessmentRepository) FindByCourseID(courseID uint) ([]model.Assessment, error) {
	var assessments []model.Assessment
	if err := r.db.Where("course_id = ?", courseID).Order("time asc").Find(&assessments).Error; err != nil {
		return nil, err
	}
	return assessments, nil
}

func (r *assessmentRepository) Update(assessment *model.Assessment) error {
	return r.db.Save(assessment).Error
}

func (r *assessmentRepository) Delete(id uint) error {
	return r.db.Delete(&model.Assessment{}, id).Error
}

func (r *assessmentRepository) AddQuestions(assessmentID uint, questionIDs []uint) error {
	var assessment model.Assessment
	if err := r.db.First(&assessment, assessmentID).Error; err != nil {
		return err
	}
	var questions []model.Question
	if err := r.db.Find(&questions, questionIDs).Error; err != nil {
		return err
	}
	return r.db.Model(&assessment).Association("Questions").Append(&questions)
}

func (r *assessmentRepository) AddObjectives(assessmentID uint, objectiveIDs []uint) error {
	var assessment model.Assessment
	if err := r.db.First(&assessment, assessmentID).Error; err != nil {
		return err
	}
	var objectives []model.Objective
	if err := r.db.Find(&objectives, objectiveIDs).Error; err != nil {
		return err
	}
	return r.db.Model(&assessment).Association("Objectives").Append(&objectives)
}
