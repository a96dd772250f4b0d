package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/practlab/cadence/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&model.User{}, &model.Course{}, &model.Objective{},
		&model.Question{}, &model.QuestionOption{}, &model.JumbleBlock{},
		&model.Assessment{}, &model.Attempt{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func mustCreate(t *testing.T, db *gorm.DB, value any) {
	t.Helper()
	if err := db.Create(value).Error; err != nil {
		t.Fatalf("create %T: %v", value, err)
	}
}

func TestFindLatestOrdersByTimeThenID(t *testing.T) {
	db := testDB(t)
	repo := NewAttemptRepository(db)

	mustCreate(t, db, &model.User{Email: "a@b.c", FirstName: "A", LastName: "B", PasswordHash: "x"})
	mustCreate(t, db, &model.Question{Prompt: "p", Kind: model.KindAutoCheck, Answer: "42"})

	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	first := model.Attempt{UserID: 1, QuestionID: 1, Response: "41", Quality: 1, Interval: 1, EFactor: 2.36, NextAttempt: base.AddDate(0, 0, 1), Time: base}
	second := model.Attempt{UserID: 1, QuestionID: 1, Response: "42", Correct: true, Quality: 4, Interval: 6, EFactor: 2.36, NextAttempt: base.AddDate(0, 0, 7), Time: base.Add(time.Hour)}
	sameInstant := model.Attempt{UserID: 1, QuestionID: 1, Response: "42", Correct: true, Quality: 5, Interval: 6, EFactor: 2.46, NextAttempt: base.AddDate(0, 0, 7), Time: base.Add(time.Hour)}
	if err := repo.Create(&first); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Create(&second); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Create(&sameInstant); err != nil {
		t.Fatalf("create: %v", err)
	}

	latest, err := repo.FindLatest(1, 1)
	if err != nil {
		t.Fatalf("FindLatest: %v", err)
	}
	// Equal timestamps break the tie by insertion order.
	if latest.ID != sameInstant.ID {
		t.Errorf("latest = attempt %d, want %d", latest.ID, sameInstant.ID)
	}
}

func TestFindLatestNoHistory(t *testing.T) {
	db := testDB(t)
	repo := NewAttemptRepository(db)

	_, err := repo.FindLatest(7, 7)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("err = %v, want gorm.ErrRecordNotFound", err)
	}
}

func TestFindForQuestionsFiltersAndOrders(t *testing.T) {
	db := testDB(t)
	repo := NewAttemptRepository(db)

	mustCreate(t, db, &model.Question{Prompt: "a", Kind: model.KindShortAnswer})
	mustCreate(t, db, &model.Question{Prompt: "b", Kind: model.KindShortAnswer})
	mustCreate(t, db, &model.Question{Prompt: "c", Kind: model.KindShortAnswer})

	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	for i, a := range []model.Attempt{
		{UserID: 1, QuestionID: 2, Time: base.Add(2 * time.Hour)},
		{UserID: 1, QuestionID: 1, Time: base},
		{UserID: 2, QuestionID: 1, Time: base},                // other user
		{UserID: 1, QuestionID: 3, Time: base.Add(time.Hour)}, // not requested
	} {
		a.Response = "r"
		a.Interval = 1
		a.EFactor = 2.5
		a.NextAttempt = base
		if err := repo.Create(&a); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	got, err := repo.FindForQuestions(1, []uint{1, 2})
	if err != nil {
		t.Fatalf("FindForQuestions: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d attempts, want 2", len(got))
	}
	if got[0].QuestionID != 1 || got[1].QuestionID != 2 {
		t.Errorf("order = [%d, %d], want oldest first [1, 2]", got[0].QuestionID, got[1].QuestionID)
	}

	none, err := repo.FindForQuestions(1, nil)
	if err != nil || len(none) != 0 {
		t.Errorf("empty question set: got %v, %v", none, err)
	}
}

func TestTransactionRollsBackOnError(t *testing.T) {
	db := testDB(t)
	repo := NewAttemptRepository(db)

	now := time.Now()
	wantErr := errors.New("boom")
	err := repo.Transaction(func(tx AttemptRepository) error {
		a := model.Attempt{UserID: 1, QuestionID: 1, Response: "r", Interval: 1, EFactor: 2.5, NextAttempt: now, Time: now}
		if err := tx.Create(&a); err != nil {
			t.Fatalf("create in tx: %v", err)
		}
		if _, err := tx.FindLatest(1, 1); err != nil {
			t.Fatalf("FindLatest in tx: %v", err)
		}
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("Transaction err = %v, want %v", err, wantErr)
	}

	_, err = repo.FindLatest(1, 1)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("attempt survived rollback: err = %v", err)
	}
}

func TestTransactionCommits(t *testing.T) {
	db := testDB(t)
	repo := NewAttemptRepository(db)

	now := time.Now()
	err := repo.Transaction(func(tx AttemptRepository) error {
		a := model.Attempt{UserID: 1, QuestionID: 1, Response: "r", Interval: 1, EFactor: 2.5, NextAttempt: now, Time: now}
		return tx.Create(&a)
	})
	if err != nil {
		t.Fatalf("Transaction: %v", err)
	}

	if _, err := repo.FindLatest(1, 1); err != nil {
		t.Fatalf("committed attempt not found: %v", err)
	}
}

func TestQuestionDeleteCascadesAttempts(t *testing.T) {
	db := testDB(t)
	questions := NewQuestionRepository(db)
	attempts := NewAttemptRepository(db)

	q := model.Question{
		Prompt: "pick", Kind: model.KindMultipleChoice,
		Options: []model.QuestionOption{{Text: "yes", Correct: true}, {Text: "no"}},
	}
	if err := questions.Create(&q); err != nil {
		t.Fatalf("create question: %v", err)
	}
	now := time.Now()
	a := model.Attempt{UserID: 1, QuestionID: q.ID, Response: "1", Interval: 1, EFactor: 2.5, NextAttempt: now, Time: now}
	if err := attempts.Create(&a); err != nil {
		t.Fatalf("create attempt: %v", err)
	}

	if err := questions.Delete(q.ID); err != nil {
		t.Fatalf("delete question: %v", err)
	}

	_, err := attempts.FindLatest(1, q.ID)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("attempt survived question deletion: err = %v", err)
	}
	var optCount int64
	db.Model(&model.QuestionOption{}).Where("question_id = ?", q.ID).Count(&optCount)
	if optCount != 0 {
		t.Errorf("options survived question deletion: %d left", optCount)
	}
}
