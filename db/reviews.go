package db

import (
	"database/sql"
	"time"

	"lvlreq/model"

	"github.com/google/uuid"
)

// AddReview records reviewer feedback on a submission. A reviewer reviewing the
// same submission again replaces their previous review.
func AddReview(submissionID, reviewerID, content string) error {
	tx, err := DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback() // Rollback on error

	_, err = tx.Exec("DELETE FROM reviews WHERE submission_id = ? AND reviewer_id = ?", submissionID, reviewerID)
	if err != nil {
		return err
	}

	_, err = tx.Exec("INSERT INTO reviews(id, submission_id, reviewer_id, content, created_at) VALUES(?, ?, ?, ?, ?)",
		uuid.New().String(), submissionID, reviewerID, content, time.Now().Unix())
	if err != nil {
		return err
	}

	return tx.Commit()
}

// GetReviewsForSubmission returns a submission's reviews in the order they were
// written.
func GetReviewsForSubmission(submissionID string) ([]*model.Review, error) {
	rows, err := DB.Query(`SELECT id, submission_id, reviewer_id, content, created_at
		FROM reviews WHERE submission_id = ? ORDER BY created_at ASC, rowid ASC`, submissionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []*model.Review
	for rows.Next() {
		var review model.Review
		if err := rows.Scan(&review.ID, &review.SubmissionID, &review.ReviewerID, &review.Content, &review.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, &review)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return reviews, nil
}

// deleteReviewsForSubmissionTx removes every review owned by the submission
// inside the caller's transaction.
func deleteReviewsForSubmissionTx(tx *sql.Tx, submissionID string) error {
	_, err := tx.Exec("DELETE FROM reviews WHERE submission_id = ?", submissionID)
	return err
}
