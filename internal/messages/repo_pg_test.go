package messages

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoUpdateAnalysis(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	sentiment, urgency, department := "positive", "LOW", "housekeeping"
	subcategory := "towels"
	patch := AnalysisPatch{
		Sentiment:   &sentiment,
		Urgency:     &urgency,
		Department:  &department,
		Subcategory: &subcategory,
	}
	analyzedAt := time.Now().UTC()

	mock.ExpectExec("UPDATE guest_messages SET").
		WithArgs(
			"msg-1",
			sentiment,
			urgency,
			department,
			subcategory,
			nil,
			nil,
			analyzedAt,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := &PGRepo{DB: db}
	rows, err := repo.UpdateAnalysis(context.Background(), "msg-1", patch, analyzedAt)
	if err != nil {
		t.Fatalf("UpdateAnalysis: %v", err)
	}
	if rows != 1 {
		t.Fatalf("rows affected = %d, want 1", rows)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoUpdateAnalysisMissingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectExec("UPDATE guest_messages SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := &PGRepo{DB: db}
	rows, err := repo.UpdateAnalysis(context.Background(), "missing", AnalysisPatch{}, time.Now().UTC())
	if err != nil {
		t.Fatalf("UpdateAnalysis: %v", err)
	}
	if rows != 0 {
		t.Fatalf("rows affected = %d, want 0", rows)
	}
}
