package db

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"lvlreq/model"
)

// rowScanner is an interface that can be satisfied by *sql.Row or *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

const submissionColumns = `id, guild_id, author_id, level_id,
	COALESCE(youtube_link, '') as youtube_link,
	COALESCE(message_id, '') as message_id,
	COALESCE(message_channel_id, '') as message_channel_id,
	created_at, is_reviewed`

// scanSubmission scans a row into a Submission struct.
func scanSubmission(scanner rowScanner) (*model.Submission, error) {
	var sub model.Submission
	var isReviewed int
	err := scanner.Scan(
		&sub.ID, &sub.GuildID, &sub.AuthorID, &sub.LevelID,
		&sub.YoutubeLink, &sub.MessageID, &sub.MessageChannelID,
		&sub.CreatedAt, &isReviewed,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Return nil, nil if no submission is found
		}
		return nil, err
	}
	sub.IsReviewed = isReviewed == 1
	return &sub, nil
}

// collectSubmissions drains a result set into a slice.
func collectSubmissions(rows *sql.Rows) ([]*model.Submission, error) {
	defer rows.Close()

	var submissions []*model.Submission
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		if sub != nil {
			submissions = append(submissions, sub)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return submissions, nil
}

// AddSubmission inserts a new submission and returns its generated sequential ID.
func AddSubmission(sub *model.Submission) (string, error) {
	tx, err := DB.Begin()
	if err != nil {
		return "", err
	}
	defer tx.Rollback() // Rollback on error

	newID, err := getNextSubmissionID(tx)
	if err != nil {
		return "", err
	}
	submissionID := fmt.Sprintf("%d", newID)

	createdAt := sub.CreatedAt
	if createdAt == 0 {
		createdAt = time.Now().Unix()
	}

	_, err = tx.Exec(`INSERT INTO submissions(
		id, guild_id, author_id, level_id, youtube_link, message_id, message_channel_id, created_at
	) VALUES(?, ?, ?, ?, ?, ?, ?, ?)`,
		submissionID, sub.GuildID, sub.AuthorID, sub.LevelID,
		sub.YoutubeLink, sub.MessageID, sub.MessageChannelID, createdAt,
	)
	if err != nil {
		return "", err
	}

	return submissionID, tx.Commit()
}

// GetSubmission retrieves a submission by its ID.
func GetSubmission(submissionID string) (*model.Submission, error) {
	row := DB.QueryRow("SELECT "+submissionColumns+" FROM submissions WHERE id = ?", submissionID)
	return scanSubmission(row)
}

// GetSubmissionByMessageID retrieves a submission by its backing message ID.
func GetSubmissionByMessageID(messageID string) (*model.Submission, error) {
	row := DB.QueryRow("SELECT "+submissionColumns+" FROM submissions WHERE message_id = ?", messageID)
	return scanSubmission(row)
}

// GetQueuedSubmissions returns the guild's unreviewed submissions in the order
// they were submitted (review order is first in, first out).
func GetQueuedSubmissions(guildID string) ([]*model.Submission, error) {
	rows, err := DB.Query("SELECT "+submissionColumns+
		" FROM submissions WHERE guild_id = ? AND is_reviewed = 0 ORDER BY created_at ASC, rowid ASC", guildID)
	if err != nil {
		return nil, err
	}
	return collectSubmissions(rows)
}

// GetAllQueuedWithMessage returns every unreviewed submission that carries a
// full backing message reference. The orphan sweep works off this set.
func GetAllQueuedWithMessage() ([]*model.Submission, error) {
	rows, err := DB.Query("SELECT " + submissionColumns +
		" FROM submissions WHERE message_id != '' AND message_channel_id != '' AND is_reviewed = 0")
	if err != nil {
		return nil, err
	}
	return collectSubmissions(rows)
}

// GetLegacySubmissions returns unreviewed submissions that predate per-row
// channel tracking (no recorded message channel).
func GetLegacySubmissions() ([]*model.Submission, error) {
	rows, err := DB.Query("SELECT " + submissionColumns +
		" FROM submissions WHERE message_channel_id = '' AND is_reviewed = 0")
	if err != nil {
		return nil, err
	}
	return collectSubmissions(rows)
}

// CountQueuedByAuthor counts the author's outstanding submissions in a guild.
func CountQueuedByAuthor(guildID, authorID string) (int, error) {
	var count int
	err := DB.QueryRow("SELECT COUNT(*) FROM submissions WHERE guild_id = ? AND author_id = ? AND is_reviewed = 0",
		guildID, authorID).Scan(&count)
	return count, err
}

// ExistsQueuedLevel reports whether the level is already queued in the guild.
func ExistsQueuedLevel(guildID string, levelID int64) (bool, error) {
	var id string
	err := DB.QueryRow("SELECT id FROM submissions WHERE guild_id = ? AND level_id = ? AND is_reviewed = 0 LIMIT 1",
		guildID, levelID).Scan(&id)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// SetSubmissionMessage records the backing message after it has been posted to
// the queue channel.
func SetSubmissionMessage(submissionID, messageID, channelID string) error {
	_, err := DB.Exec("UPDATE submissions SET message_id = ?, message_channel_id = ? WHERE id = ?",
		messageID, channelID, submissionID)
	return err
}

// SetSubmissionChannel backfills the message channel of a legacy row. A row
// that already has a channel recorded is left untouched.
func SetSubmissionChannel(submissionID, channelID string) error {
	_, err := DB.Exec("UPDATE submissions SET message_channel_id = ? WHERE id = ? AND message_channel_id = ''",
		channelID, submissionID)
	return err
}

// DeleteSubmission removes a submission and all of its reviews in one
// transaction. Reviews go first so a crash can never leave them orphaned.
func DeleteSubmission(submissionID string) error {
	tx, err := DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := deleteReviewsForSubmissionTx(tx, submissionID); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM submissions WHERE id = ?", submissionID); err != nil {
		return err
	}

	return tx.Commit()
}

// DeleteSubmissionByMessageID removes the submission backed by the given
// message, along with its reviews, in one transaction. Messages that don't
// correspond to a tracked submission are ignored.
func DeleteSubmissionByMessageID(messageID string) error {
	tx, err := DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var submissionID string
	err = tx.QueryRow("SELECT id FROM submissions WHERE message_id = ?", messageID).Scan(&submissionID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil
		}
		return err
	}

	if err := deleteReviewsForSubmissionTx(tx, submissionID); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM submissions WHERE id = ?", submissionID); err != nil {
		return err
	}

	return tx.Commit()
}

// DeleteSubmissionsIn removes the given submissions and their reviews in one
// transaction, returning how many submissions were actually deleted.
func DeleteSubmissionsIn(submissionIDs []string) (int64, error) {
	if len(submissionIDs) == 0 {
		return 0, nil
	}

	tx, err := DB.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	placeholders := strings.Repeat("?,", len(submissionIDs))
	placeholders = placeholders[:len(placeholders)-1]
	args := make([]interface{}, len(submissionIDs))
	for i, id := range submissionIDs {
		args[i] = id
	}

	if _, err := tx.Exec("DELETE FROM reviews WHERE submission_id IN ("+placeholders+")", args...); err != nil {
		return 0, err
	}

	result, err := tx.Exec("DELETE FROM submissions WHERE id IN ("+placeholders+")", args...)
	if err != nil {
		return 0, err
	}

	count, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	return count, tx.Commit()
}
