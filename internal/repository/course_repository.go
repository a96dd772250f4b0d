package repository

import (
	"github.com/practlab/cadence/internal/model"
	"gorm.io/gorm"
)

type CourseRepository interface {
	Create(course *model.Course) error
	FindByID(id uint) (*model.Course, error)
	FindAll() ([]model.Course, error)
	Update(course *model.Course) error
	Delete(id uint) error
	Enroll(courseID, userID uint) error
	EnrolledUsers(courseID uint) ([]model.User, error)
}

type courseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) Create(course *model.Course) error {
	return r.db.Create(course).Error
}

func (r *courseRepository) FindByID(id uint) (*model.Course, error) {
	var course model.Course
	if err := r.db.Preload("Users").Preload("Assessments").First(&course, id).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) FindAll() ([]model.Course, error) {
	var courses []model.Course
	if err := r.db.Order("created_at desc").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *courseRepository) Update(course *model.Course) error {
	return r.db.Save(course).Error
}

func (r *courseRepository) Delete(id uint) error {
	return r.db.Delete(&model.Course{}, id).Error
}

func (r *courseRepository) Enroll(courseID, userID uint) error {
	var course model.Course
	if err := r.db.First(&course, courseID).Error; err != nil {
		return err
	}
	var user model.User
	if err := r.db.First(&user, userID).Error; err != nil {
		return err
	}
	return r.db.Model(&course).Association("Users").Append(&user)
}

func (r *courseRepository) EnrolledUsers(courseID uint) ([]model.User, error) {
	var course model.Course
	if err := r.db.Preload("Users").First(&course, courseID).Error; err != nil {
		return nil, err
	}
	return course.Users, nil
}
