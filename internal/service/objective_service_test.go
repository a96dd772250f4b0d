package service

import (
	"testing"
	"time"

	"github.com/practlab/cadence/internal/model"
)

func uintPtr(v uint) *uint { return &v }

// masteryFixture builds four single-question objectives whose latest-attempt
// e-factors average to 3.5, 1.5, 1.3 and 3.0.
func masteryFixture(t *testing.T) *objectiveService {
	t.Helper()
	questions := newFakeQuestionRepo()
	attempts := &fakeAttemptRepo{}
	assessment := &model.Assessment{ID: 1, Title: "midterm prep"}

	for i, eFactor := range []float64{3.5, 1.5, 1.3, 3.0} {
		objectiveID := uint(i + 1)
		q := &model.Question{Prompt: "q", Kind: model.KindAutoCheck, ObjectiveID: uintPtr(objectiveID)}
		if err := questions.Create(q); err != nil {
			t.Fatalf("create question: %v", err)
		}
		assessment.Questions = append(assessment.Questions, *q)
		assessment.Objectives = append(assessment.Objectives, model.Objective{ID: objectiveID, Description: "obj"})
		err := attempts.Create(&model.Attempt{
			UserID: 1, QuestionID: q.ID, Response: "r", Correct: true, Quality: 4,
			Interval: 6, EFactor: eFactor, NextAttempt: day(16), Time: day(9),
		})
		if err != nil {
			t.Fatalf("create attempt: %v", err)
		}
	}

	svc := NewObjectiveService(newFakeObjectiveRepo(), questions, newFakeAssessmentRepo(assessment), attempts)
	return svc.(*objectiveService)
}

func TestEFactorAverage(t *testing.T) {
	questions := newFakeQuestionRepo()
	attempts := &fakeAttemptRepo{}
	for i := 0; i < 3; i++ {
		if err := questions.Create(&model.Question{Prompt: "q", Kind: model.KindAutoCheck, ObjectiveID: uintPtr(1)}); err != nil {
			t.Fatalf("create question: %v", err)
		}
	}
	// Two attempts on question 1; only the later one counts.
	addAttempt(t, attempts, 1, day(5).Add(time.Hour), day(6), false, 1)
	addAttempt(t, attempts, 1, day(8).Add(time.Hour), day(14), true, 4)
	attempts.attempts[1].EFactor = 2.36
	addAttempt(t, attempts, 2, day(8).Add(time.Hour), day(14), true, 4)
	// question 3 unattempted: excluded from the average, not counted as 0

	svc := NewObjectiveService(newFakeObjectiveRepo(), questions, newFakeAssessmentRepo(), attempts).(*objectiveService)

	avg, err := svc.EFactorAverage(1, 1, nil)
	if err != nil {
		t.Fatalf("EFactorAverage: %v", err)
	}
	if want := 2.43; avg != want { // (2.36 + 2.5) / 2
		t.Errorf("average = %v, want %v", avg, want)
	}

	empty, err := svc.EFactorAverage(1, 99, nil)
	if err != nil {
		t.Fatalf("EFactorAverage: %v", err)
	}
	if empty != 0 {
		t.Errorf("average with no attempts = %v, want 0", empty)
	}
}

func TestEFactorAverageRounding(t *testing.T) {
	questions := newFakeQuestionRepo()
	attempts := &fakeAttemptRepo{}
	for _, ef := range []float64{2.5, 2.36, 1.3} {
		q := &model.Question{Prompt: "q", Kind: model.KindAutoCheck, ObjectiveID: uintPtr(1)}
		if err := questions.Create(q); err != nil {
			t.Fatalf("create question: %v", err)
		}
		addAttempt(t, attempts, q.ID, day(8), day(14), true, 4)
		attempts.attempts[len(attempts.attempts)-1].EFactor = ef
	}
	svc := NewObjectiveService(newFakeObjectiveRepo(), questions, newFakeAssessmentRepo(), attempts).(*objectiveService)

	avg, err := svc.EFactorAverage(1, 1, nil)
	if err != nil {
		t.Fatalf("EFactorAverage: %v", err)
	}
	if want := 2.053; avg != want { // (2.5 + 2.36 + 1.3) / 3 = 2.0533...
		t.Errorf("average = %v, want %v", avg, want)
	}
}

func TestMasteryReviewQuestionsWeakestFirst(t *testing.T) {
	questions := newFakeQuestionRepo()
	attempts := &fakeAttemptRepo{}
	for _, ef := range []float64{2.7, 1.9, 2.4} {
		q := &model.Question{Prompt: "q", Kind: model.KindAutoCheck, ObjectiveID: uintPtr(1)}
		if err := questions.Create(q); err != nil {
			t.Fatalf("create question: %v", err)
		}
		addAttempt(t, attempts, q.ID, day(8), day(14), true, 4)
		attempts.attempts[len(attempts.attempts)-1].EFactor = ef
	}
	svc := NewObjectiveService(newFakeObjectiveRepo(), questions, newFakeAssessmentRepo(), attempts).(*objectiveService)

	mastery, err := svc.Mastery(1, 1, nil)
	if err != nil {
		t.Fatalf("Mastery: %v", err)
	}
	// Only the two below the 2.6 threshold, weakest first.
	assertIDs(t, "review questions", mastery.ReviewQuestions, 2, 3)
	if want := round3((2.7 + 1.9 + 2.4) / 3); mastery.EFactorAverage != want {
		t.Errorf("average = %v, want %v", mastery.EFactorAverage, want)
	}
}

func TestObjectivesToReview(t *testing.T) {
	svc := masteryFixture(t)

	got, err := svc.ObjectivesToReview(1, 1, 2, nil)
	if err != nil {
		t.Fatalf("ObjectivesToReview: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d objectives, want 2", len(got))
	}
	if got[0].Objective.ID != 3 || got[0].EFactorAverage != 1.3 {
		t.Errorf("first = objective %d (%v), want objective 3 (1.3)", got[0].Objective.ID, got[0].EFactorAverage)
	}
	if got[1].Objective.ID != 2 || got[1].EFactorAverage != 1.5 {
		t.Errorf("second = objective %d (%v), want objective 2 (1.5)", got[1].Objective.ID, got[1].EFactorAverage)
	}
}

func TestObjectivesToReviewPadsToMinCount(t *testing.T) {
	svc := masteryFixture(t)

	got, err := svc.ObjectivesToReview(1, 1, 3, nil)
	if err != nil {
		t.Fatalf("ObjectivesToReview: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d objectives, want 3", len(got))
	}
	// The 3.0-average objective pads the list even though it is above 2.6.
	if got[2].Objective.ID != 4 || got[2].EFactorAverage != 3.0 {
		t.Errorf("padding = objective %d (%v), want objective 4 (3.0)", got[2].Objective.ID, got[2].EFactorAverage)
	}
}

func TestObjectivesToReviewHonorsMaxCount(t *testing.T) {
	svc := masteryFixture(t)

	// Two objectives sit below the threshold; the cap still wins.
	limit := 1
	got, err := svc.ObjectivesToReview(1, 1, 3, &limit)
	if err != nil {
		t.Fatalf("ObjectivesToReview: %v", err)
	}
	if len(got) != 1 || got[0].Objective.ID != 3 {
		t.Fatalf("got %v, want only the weakest objective", got)
	}
}
