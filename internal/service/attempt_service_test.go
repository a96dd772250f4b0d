package service

import (
	"errors"
	"testing"
	"time"

	"github.com/practlab/cadence/internal/dto"
	"github.com/practlab/cadence/internal/model"
)

func newAttemptFixture(t *testing.T, question *model.Question) (*attemptService, *fakeAttemptRepo, *fakeQuestionRepo) {
	t.Helper()
	questions := newFakeQuestionRepo()
	if err := questions.Create(question); err != nil {
		t.Fatalf("create question: %v", err)
	}
	attempts := &fakeAttemptRepo{}
	svc := NewAttemptService(attempts, questions).(*attemptService)
	svc.now = func() time.Time { return time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC) }
	return svc, attempts, questions
}

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func TestSubmitFirstCorrectAttempt(t *testing.T) {
	q := &model.Question{Prompt: "p", Kind: model.KindAutoCheck, Answer: "42"}
	svc, _, _ := newAttemptFixture(t, q)

	resp, err := svc.SubmitAttempt(1, dto.SubmitAttemptRequest{QuestionID: q.ID, Response: "42"})
	if err != nil {
		t.Fatalf("SubmitAttempt: %v", err)
	}
	if !resp.Correct || resp.Quality != 4 {
		t.Errorf("got correct=%v quality=%d, want correct with default quality 4", resp.Correct, resp.Quality)
	}
	if resp.Interval != 6 || resp.EFactor != 2.5 {
		t.Errorf("got interval=%d eFactor=%v, want 6 and 2.5", resp.Interval, resp.EFactor)
	}
	wantNext := time.Date(2026, 4, 7, 0, 0, 0, 0, time.UTC)
	if !resp.NextAttempt.Equal(wantNext) {
		t.Errorf("next attempt = %v, want %v", resp.NextAttempt, wantNext)
	}
}

func TestSubmitIncorrectAttempt(t *testing.T) {
	q := &model.Question{Prompt: "p", Kind: model.KindAutoCheck, Answer: "42"}
	svc, _, _ := newAttemptFixture(t, q)

	resp, err := svc.SubmitAttempt(1, dto.SubmitAttemptRequest{QuestionID: q.ID, Response: "41", Rating: intPtr(5)})
	if err != nil {
		t.Fatalf("SubmitAttempt: %v", err)
	}
	if resp.Correct || resp.Quality != 1 {
		t.Errorf("got correct=%v quality=%d, want incorrect with quality 1", resp.Correct, resp.Quality)
	}
	if resp.Interval != 1 || resp.EFactor != 1.96 {
		t.Errorf("got interval=%d eFactor=%v, want 1 and 1.96", resp.Interval, resp.EFactor)
	}
	wantNext := time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC)
	if !resp.NextAttempt.Equal(wantNext) {
		t.Errorf("next attempt = %v, want %v", resp.NextAttempt, wantNext)
	}
}

func TestSubmitCorrectWithDifficultyRating(t *testing.T) {
	q := &model.Question{Prompt: "p", Kind: model.KindAutoCheck, Answer: "42"}
	svc, _, _ := newAttemptFixture(t, q)

	resp, err := svc.SubmitAttempt(1, dto.SubmitAttemptRequest{QuestionID: q.ID, Response: "42", Rating: intPtr(5)})
	if err != nil {
		t.Fatalf("SubmitAttempt: %v", err)
	}
	if resp.Quality != 5 || resp.EFactor != 2.6 || resp.Interval != 6 {
		t.Errorf("got quality=%d eFactor=%v interval=%d, want 5, 2.6, 6", resp.Quality, resp.EFactor, resp.Interval)
	}
}

func TestSameDayRetryKeepsSchedule(t *testing.T) {
	q := &model.Question{Prompt: "p", Kind: model.KindAutoCheck, Answer: "42"}
	svc, _, _ := newAttemptFixture(t, q)

	first, err := svc.SubmitAttempt(1, dto.SubmitAttemptRequest{QuestionID: q.ID, Response: "41"})
	if err != nil {
		t.Fatalf("first attempt: %v", err)
	}
	svc.now = func() time.Time { return time.Date(2026, 4, 1, 15, 30, 0, 0, time.UTC) }
	second, err := svc.SubmitAttempt(1, dto.SubmitAttemptRequest{QuestionID: q.ID, Response: "42", Rating: intPtr(5)})
	if err != nil {
		t.Fatalf("second attempt: %v", err)
	}
	if second.Interval != first.Interval || second.EFactor != first.EFactor || !second.NextAttempt.Equal(first.NextAttempt) {
		t.Errorf("same-day retry changed schedule: first=%+v second=%+v", first, second)
	}
	if second.Quality != 5 {
		t.Errorf("retry quality = %d, want 5 recorded even though schedule is frozen", second.Quality)
	}
}

func TestNextDayAttemptGrowsInterval(t *testing.T) {
	q := &model.Question{Prompt: "p", Kind: model.KindAutoCheck, Answer: "42"}
	svc, _, _ := newAttemptFixture(t, q)

	if _, err := svc.SubmitAttempt(1, dto.SubmitAttemptRequest{QuestionID: q.ID, Response: "42"}); err != nil {
		t.Fatalf("first attempt: %v", err)
	}
	svc.now = func() time.Time { return time.Date(2026, 4, 8, 9, 0, 0, 0, time.UTC) }
	resp, err := svc.SubmitAttempt(1, dto.SubmitAttemptRequest{QuestionID: q.ID, Response: "42", Rating: intPtr(3)})
	if err != nil {
		t.Fatalf("second attempt: %v", err)
	}
	// Prior interval 6, quality 3 drops the e-factor to 2.36; 6 * 2.36 = 14.16.
	if resp.EFactor != 2.36 || resp.Interval != 14 {
		t.Errorf("got eFactor=%v interval=%d, want 2.36 and 14", resp.EFactor, resp.Interval)
	}
	wantNext := time.Date(2026, 4, 22, 0, 0, 0, 0, time.UTC)
	if !resp.NextAttempt.Equal(wantNext) {
		t.Errorf("next attempt = %v, want %v", resp.NextAttempt, wantNext)
	}
}

func TestShortAnswerSelfVerdict(t *testing.T) {
	q := &model.Question{Prompt: "p", Kind: model.KindShortAnswer, Answer: "essay"}
	svc, _, _ := newAttemptFixture(t, q)

	resp, err := svc.SubmitAttempt(1, dto.SubmitAttemptRequest{
		QuestionID: q.ID, Response: "my answer", Correct: boolPtr(true), Rating: intPtr(3),
	})
	if err != nil {
		t.Fatalf("SubmitAttempt: %v", err)
	}
	if !resp.Correct || resp.Quality != 3 || resp.EFactor != 2.36 || resp.Interval != 6 {
		t.Errorf("self-rated attempt: got %+v, want correct, quality 3, eFactor 2.36, interval 6", resp)
	}

	wrong, err := svc.SubmitAttempt(2, dto.SubmitAttemptRequest{QuestionID: q.ID, Response: "blank"})
	if err != nil {
		t.Fatalf("SubmitAttempt: %v", err)
	}
	if wrong.Correct || wrong.Quality != 1 {
		t.Errorf("missing self-verdict should record incorrect: got %+v", wrong)
	}
}

func TestInvalidRatingRejected(t *testing.T) {
	q := &model.Question{Prompt: "p", Kind: model.KindAutoCheck, Answer: "42"}
	svc, attempts, _ := newAttemptFixture(t, q)

	for _, rating := range []int{-1, 6} {
		_, err := svc.SubmitAttempt(1, dto.SubmitAttemptRequest{QuestionID: q.ID, Response: "42", Rating: intPtr(rating)})
		if !errors.Is(err, ErrInvalidRating) {
			t.Errorf("rating %d: err = %v, want ErrInvalidRating", rating, err)
		}
	}
	if len(attempts.attempts) != 0 {
		t.Errorf("%d attempts recorded despite invalid rating", len(attempts.attempts))
	}
}

func TestUnsupportedCodeNeedsReview(t *testing.T) {
	q := &model.Question{Prompt: "p", Kind: model.KindSingleLineCode, Answer: "f(1)"}
	svc, attempts, _ := newAttemptFixture(t, q)

	_, err := svc.SubmitAttempt(1, dto.SubmitAttemptRequest{QuestionID: q.ID, Response: "f(x=1)"})
	if !errors.Is(err, ErrNeedsReview) {
		t.Fatalf("err = %v, want ErrNeedsReview", err)
	}
	if len(attempts.attempts) != 0 {
		t.Errorf("attempt recorded for unjudgeable response")
	}
}

func TestEquivalentCodeGradesCorrect(t *testing.T) {
	q := &model.Question{Prompt: "p", Kind: model.KindSingleLineCode, Answer: "x = 1 + 2"}
	svc, _, _ := newAttemptFixture(t, q)

	resp, err := svc.SubmitAttempt(1, dto.SubmitAttemptRequest{QuestionID: q.ID, Response: "x = 2 + 1"})
	if err != nil {
		t.Fatalf("SubmitAttempt: %v", err)
	}
	if !resp.Correct {
		t.Error("structurally equivalent code should grade correct")
	}
}
