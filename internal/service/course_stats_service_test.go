package service

import (
	"testing"

	"github.com/practlab/cadence/internal/model"
)

// statsFixture wires a course with three enrolled users and an assessment of
// four questions, the first two under objective 1.
func statsFixture(t *testing.T) (*courseStatsService, *fakeAttemptRepo) {
	t.Helper()
	courses := newFakeCourseRepo()
	course := &model.Course{Name: "cs101", Title: "Intro"}
	if err := courses.Create(course); err != nil {
		t.Fatalf("create course: %v", err)
	}
	for userID := uint(1); userID <= 3; userID++ {
		if err := courses.Enroll(course.ID, userID); err != nil {
			t.Fatalf("enroll: %v", err)
		}
	}

	questions := newFakeQuestionRepo()
	assessment := &model.Assessment{ID: 1, Title: "quiz", CourseID: &course.ID}
	for i := 1; i <= 4; i++ {
		q := &model.Question{Prompt: "q", Kind: model.KindAutoCheck}
		if i <= 2 {
			q.ObjectiveID = uintPtr(1)
		}
		if err := questions.Create(q); err != nil {
			t.Fatalf("create question: %v", err)
		}
		assessment.Questions = append(assessment.Questions, *q)
	}

	attempts := &fakeAttemptRepo{}
	svc := NewCourseStatsService(newFakeAssessmentRepo(assessment), courses, questions, attempts)
	return svc.(*courseStatsService), attempts
}

func addUserAttempt(t *testing.T, repo *fakeAttemptRepo, userID, questionID uint, eFactor float64) {
	t.Helper()
	err := repo.Create(&model.Attempt{
		UserID: userID, QuestionID: questionID, Response: "r", Correct: true, Quality: 4,
		Interval: 6, EFactor: eFactor, NextAttempt: day(16), Time: day(9),
	})
	if err != nil {
		t.Fatalf("create attempt: %v", err)
	}
}

func TestStarRatingBands(t *testing.T) {
	cases := []struct {
		avg  float64
		want int
	}{
		{1.3, 1}, {1.99, 1}, {2.0, 2}, {2.99, 2}, {3.0, 3}, {3.99, 3}, {4.0, 4}, {5.9, 4}, {6.0, 5},
	}
	for _, c := range cases {
		if got := starBand(c.avg); got != c.want {
			t.Errorf("starBand(%v) = %d, want %d", c.avg, got, c.want)
		}
	}
}

func TestStarRatingAveragesAcrossClass(t *testing.T) {
	svc, attempts := statsFixture(t)

	// Objective questions are 1 and 2; user 3 never attempts them.
	addUserAttempt(t, attempts, 1, 1, 2.5)
	addUserAttempt(t, attempts, 1, 2, 2.5)
	addUserAttempt(t, attempts, 2, 1, 3.5)
	addUserAttempt(t, attempts, 2, 4, 9.9) // outside the objective, ignored

	stars, err := svc.StarRating(1, 1)
	if err != nil {
		t.Fatalf("StarRating: %v", err)
	}
	// (2.5 + 2.5 + 3.5) / 3 = 2.83 -> 2 stars.
	if stars != 2 {
		t.Errorf("stars = %d, want 2", stars)
	}
}

func TestStarRatingNoAttempts(t *testing.T) {
	svc, _ := statsFixture(t)

	stars, err := svc.StarRating(1, 1)
	if err != nil {
		t.Fatalf("StarRating: %v", err)
	}
	if stars != 0 {
		t.Errorf("stars = %d, want 0 when nobody attempted", stars)
	}
}

func TestQuestionsRemainingBins(t *testing.T) {
	svc, attempts := statsFixture(t)

	// User 1 finished everything, user 2 has two left, user 3 all four.
	for q := uint(1); q <= 4; q++ {
		addUserAttempt(t, attempts, 1, q, 2.5)
	}
	addUserAttempt(t, attempts, 2, 1, 2.5)
	addUserAttempt(t, attempts, 2, 2, 2.5)

	bins, err := svc.QuestionsRemaining(1)
	if err != nil {
		t.Fatalf("QuestionsRemaining: %v", err)
	}
	if want := [5]int{1, 1, 1, 0, 0}; bins != want {
		t.Errorf("bins = %v, want %v", bins, want)
	}
}

func TestSkillBreakdown(t *testing.T) {
	svc, attempts := statsFixture(t)

	// User 1 proficient (avg 4.25), user 2 limited (avg 3.1),
	// user 3 undeveloped (no attempts).
	addUserAttempt(t, attempts, 1, 1, 4.0)
	addUserAttempt(t, attempts, 1, 2, 4.5)
	addUserAttempt(t, attempts, 2, 1, 3.1)

	skill, err := svc.SkillBreakdown(1, 1)
	if err != nil {
		t.Fatalf("SkillBreakdown: %v", err)
	}
	if skill.Proficient != 1 || skill.Limited != 1 || skill.Undeveloped != 1 {
		t.Errorf("skill = %+v, want 1/1/1", skill)
	}
}

func TestStatsCombined(t *testing.T) {
	svc, attempts := statsFixture(t)
	addUserAttempt(t, attempts, 1, 1, 3.2)

	stats, err := svc.Stats(1, 1)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.StarRating != 3 {
		t.Errorf("stars = %d, want 3", stats.StarRating)
	}
	// User 1 has 3 questions left, users 2 and 3 all 4: everyone lands in
	// the 3-5 bin.
	if want := [5]int{0, 0, 3, 0, 0}; stats.QuestionsRemaining != want {
		t.Errorf("remaining = %v, want %v", stats.QuestionsRemaining, want)
	}
	if stats.Skill.Limited != 1 || stats.Skill.Undeveloped != 2 {
		t.Errorf("skill = %+v, want limited 1, undeveloped 2", stats.Skill)
	}
}
