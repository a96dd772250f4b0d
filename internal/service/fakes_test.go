package service

import (
	"sort"

	"github.com/practlab/cadence/internal/model"
	"github.com/practlab/cadence/internal/repository"
	"gorm.io/gorm"
)

// In-memory repository doubles. They reproduce the ordering contracts of the
// real gorm repositories so the services under test see the same shapes.

type fakeAttemptRepo struct {
	attempts []model.Attempt
	nextID   uint
}

func (f *fakeAttemptRepo) Create(a *model.Attempt) error {
	f.nextID++
	a.ID = f.nextID
	f.attempts = append(f.attempts, *a)
	return nil
}

func (f *fakeAttemptRepo) Transaction(fn func(repository.AttemptRepository) error) error {
	return fn(f)
}

func (f *fakeAttemptRepo) FindLatest(userID, questionID uint) (*model.Attempt, error) {
	var latest *model.Attempt
	for i := range f.attempts {
		a := f.attempts[i]
		if a.UserID != userID || a.QuestionID != questionID {
			continue
		}
		if latest == nil || !a.Time.Before(latest.Time) {
			latest = &f.attempts[i]
		}
	}
	if latest == nil {
		return nil, gorm.ErrRecordNotFound
	}
	out := *latest
	return &out, nil
}

func (f *fakeAttemptRepo) FindForQuestions(userID uint, questionIDs []uint) ([]model.Attempt, error) {
	wanted := make(map[uint]bool, len(questionIDs))
	for _, id := range questionIDs {
		wanted[id] = true
	}
	var out []model.Attempt
	for _, a := range f.attempts {
		if a.UserID == userID && wanted[a.QuestionID] {
			out = append(out, a)
		}
	}
	sortAttempts(out)
	return out, nil
}

func (f *fakeAttemptRepo) FindForUsersAndQuestions(userIDs, questionIDs []uint) ([]model.Attempt, error) {
	users := make(map[uint]bool, len(userIDs))
	for _, id := range userIDs {
		users[id] = true
	}
	questions := make(map[uint]bool, len(questionIDs))
	for _, id := range questionIDs {
		questions[id] = true
	}
	var out []model.Attempt
	for _, a := range f.attempts {
		if users[a.UserID] && questions[a.QuestionID] {
			out = append(out, a)
		}
	}
	sortAttempts(out)
	return out, nil
}

func sortAttempts(attempts []model.Attempt) {
	sort.SliceStable(attempts, func(i, j int) bool {
		if !attempts[i].Time.Equal(attempts[j].Time) {
			return attempts[i].Time.Before(attempts[j].Time)
		}
		return attempts[i].ID < attempts[j].ID
	})
}

type fakeQuestionRepo struct {
	questions map[uint]*model.Question
	nextID    uint
}

func newFakeQuestionRepo() *fakeQuestionRepo {
	return &fakeQuestionRepo{questions: make(map[uint]*model.Question)}
}

func (f *fakeQuestionRepo) Create(q *model.Question) error {
	f.nextID++
	q.ID = f.nextID
	f.questions[q.ID] = q
	return nil
}

func (f *fakeQuestionRepo) FindByID(id uint) (*model.Question, error) {
	q, ok := f.questions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *q
	return &out, nil
}

func (f *fakeQuestionRepo) FindAll() ([]model.Question, error) {
	return f.sorted(func(q *model.Question) bool { return true }), nil
}

func (f *fakeQuestionRepo) FindByObjectiveID(objectiveID uint) ([]model.Question, error) {
	return f.sorted(func(q *model.Question) bool {
		return q.ObjectiveID != nil && *q.ObjectiveID == objectiveID
	}), nil
}

func (f *fakeQuestionRepo) sorted(keep func(*model.Question) bool) []model.Question {
	var out []model.Question
	for _, q := range f.questions {
		if keep(q) {
			out = append(out, *q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *fakeQuestionRepo) Update(q *model.Question) error {
	f.questions[q.ID] = q
	return nil
}

func (f *fakeQuestionRepo) Delete(id uint) error {
	delete(f.questions, id)
	return nil
}

type fakeAssessmentRepo struct {
	assessments map[uint]*model.Assessment
}

func newFakeAssessmentRepo(assessments ...*model.Assessment) *fakeAssessmentRepo {
	f := &fakeAssessmentRepo{assessments: make(map[uint]*model.Assessment)}
	for _, a := range assessments {
		f.assessments[a.ID] = a
	}
	return f
}

func (f *fakeAssessmentRepo) Create(a *model.Assessment) error {
	a.ID = uint(len(f.assessments) + 1)
	f.assessments[a.ID] = a
	return nil
}

func (f *fakeAssessmentRepo) FindByID(id uint) (*model.Assessment, error) {
	a, ok := f.assessments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *a
	return &out, nil
}

func (f *fakeAssessmentRepo) FindByCourseID(courseID uint) ([]model.Assessment, error) {
	var out []model.Assessment
	for _, a := range f.assessments {
		if a.CourseID != nil && *a.CourseID == courseID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAssessmentRepo) Update(a *model.Assessment) error {
	f.assessments[a.ID] = a
	return nil
}

func (f *fakeAssessmentRepo) Delete(id uint) error {
	delete(f.assessments, id)
	return nil
}

func (f *fakeAssessmentRepo) AddQuestions(assessmentID uint, questionIDs []uint) error {
	return nil
}

func (f *fakeAssessmentRepo) AddObjectives(assessmentID uint, objectiveIDs []uint) error {
	return nil
}

type fakeCourseRepo struct {
	courses  map[uint]*model.Course
	enrolled map[uint][]model.User
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{courses: make(map[uint]*model.Course), enrolled: make(map[uint][]model.User)}
}

func (f *fakeCourseRepo) Create(c *model.Course) error {
	c.ID = uint(len(f.courses) + 1)
	f.courses[c.ID] = c
	return nil
}

func (f *fakeCourseRepo) FindByID(id uint) (*model.Course, error) {
	c, ok := f.courses[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *c
	return &out, nil
}

func (f *fakeCourseRepo) FindAll() ([]model.Course, error) {
	var out []model.Course
	for _, c := range f.courses {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCourseRepo) Update(c *model.Course) error {
	f.courses[c.ID] = c
	return nil
}

func (f *fakeCourseRepo) Delete(id uint) error {
	delete(f.courses, id)
	return nil
}

func (f *fakeCourseRepo) Enroll(courseID, userID uint) error {
	f.enrolled[courseID] = append(f.enrolled[courseID], model.User{ID: userID})
	return nil
}

func (f *fakeCourseRepo) EnrolledUsers(courseID uint) ([]model.User, error) {
	return f.enrolled[courseID], nil
}

type fakeObjectiveRepo struct {
	objectives map[uint]*model.Objective
	nextID     uint
}

func newFakeObjectiveRepo() *fakeObjectiveRepo {
	return &fakeObjectiveRepo{objectives: make(map[uint]*model.Objective)}
}

func (f *fakeObjectiveRepo) Create(o *model.Objective) error {
	f.nextID++
	o.ID = f.nextID
	f.objectives[o.ID] = o
	return nil
}

func (f *fakeObjectiveRepo) FindByID(id uint) (*model.Objective, error) {
	o, ok := f.objectives[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *o
	return &out, nil
}

func (f *fakeObjectiveRepo) FindAll() ([]model.Objective, error) {
	var out []model.Objective
	for _, o := range f.objectives {
		out = append(out, *o)
	}
	return out, nil
}

func (f *fakeObjectiveRepo) Update(o *model.Objective) error {
	f.objectives[o.ID] = o
	return nil
}

func (f *fakeObjectiveRepo) Delete(id uint) error {
	delete(f.objectives, id)
	return nil
}

func (f *fakeObjectiveRepo) Questions(objectiveID uint) ([]model.Question, error) {
	return nil, nil
}
