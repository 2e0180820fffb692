package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"txledger/internal/db"

	"github.com/google/uuid"
)

var ErrSubmissionNotFound error = errors.New("submission not found")

type SubmissionRepository struct {
	db Storage
}

func NewSubmissionRepository(db Storage) *SubmissionRepository {
	return &SubmissionRepository{
		db: db,
	}
}

func (r *SubmissionRepository) Migrate() error {
	err := r.db.MigrateTable(&Submission{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (r *SubmissionRepository) SaveSubmission(ctx context.Context, submission Submission) error {
	if submission.ID == "" {
		submission.ID = uuid.NewString()
	}
	if submission.CreatedAt.IsZero() {
		submission.CreatedAt = time.Now().UTC()
	}

	err := r.db.SaveToTable(ctx, &submission)
	if err != nil {
		return fmt.Errorf("save submission: %w", err)
	}

	return nil
}

func (r *SubmissionRepository) UpdateSubmissionStatus(ctx context.Context, transferHash, status string) error {
	err := r.db.UpdateBy(ctx, &Submission{}, "transfer_hash", transferHash, map[string]any{"status": status})
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return fmt.Errorf("update submission %s: %w", transferHash, ErrSubmissionNotFound)
		}
		return fmt.Errorf("update submission %s: %w", transferHash, err)
	}

	return nil
}

// GetSubmissions returns the submissions of account, newest first.
func (r *SubmissionRepository) GetSubmissions(ctx context.Context, account string) ([]Submission, error) {
	submissions := []Submission{}

	err := r.db.GetAllBy(ctx, "account", account, "created_at desc", &submissions)
	if err != nil {
		return submissions, fmt.Errorf("get submissions: %w", err)
	}

	return submissions, nil
}
