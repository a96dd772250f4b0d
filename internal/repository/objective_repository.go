package repository

import (
	"github.com/practlab/cadence/internal/model"
	"gorm.io/gorm"
)

type ObjectiveRepository interface {
	Create(objective *model.Objective) error
	FindByID(id uint) (*model.Objective, error)
	FindAll() ([]model.Objective, error)
	Update(objective *model.Objective) error
	Delete(id uint) error
	Questions(objectiveID uint) ([]model.Question, error)
}

type objectiveRepository struct {
	db *gorm.DB
}

func NewObjectiveRepository(db *gorm.DB) ObjectiveRepository {
	return &objectiveRepository{db: db}
}

func (r *objectiveRepository) Create(objective *model.Objective) error {
	return r.db.Create(objective).Error
}

func (r *objectiveRepository) FindByID(id uint) (*model.Objective, error) {
	var objective model.Objective
	if err := r.db.Preload("Questions").First(&objective, id).Error; err != nil {
		return nil, err
	}
	return &objective, nil
}

func (r *objectiveRepository) FindAll() ([]model.Objective, error) {
	var objectives []model.Objective
	if err := r.db.Order("created_at desc").Find(&objectives).Error; err != nil {
		return nil, err
	}
	return objectives, nil
}

func (r *objectiveRepository) Update(objective *model.Objective) error {
	return r.db.Save(objective).Error
}

func (r *objectiveRepository) Delete(id uint) error {
	return r.db.Delete(&model.Objective{}, id).Error
}

func (r *objectiveRepository) Questions(objectiveID uint) ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.Where("objective_id = ?", objectiveID).Order("id asc").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}
