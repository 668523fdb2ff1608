package db

import (
	"log"
	"strings"
)

// createTables creates the necessary tables in the database if they don't exist.
func createTables() {
	// SQL statement to create the 'guild_configs' table. A row is created
	// lazily the first time a guild touches level requests.
	createGuildConfigsTableSQL := `
	CREATE TABLE IF NOT EXISTS guild_configs (
		guild_id TEXT PRIMARY KEY,
		queue_channel_id TEXT NOT NULL DEFAULT '',
		archive_channel_id TEXT NOT NULL DEFAULT '',
		reviewer_role_id TEXT NOT NULL DEFAULT '',
		min_reviews_required INTEGER NOT NULL DEFAULT 0,
		max_queued_per_user INTEGER NOT NULL DEFAULT 0,
		is_open INTEGER NOT NULL DEFAULT 0
	);`

	_, err := DB.Exec(createGuildConfigsTableSQL)
	if err != nil {
		log.Fatalf("Failed to create guild_configs table: %v", err)
	}

	// SQL statement to create the 'submissions' table.
	createSubmissionsTableSQL := `
	CREATE TABLE IF NOT EXISTS submissions (
		id TEXT PRIMARY KEY,
		guild_id TEXT NOT NULL,
		author_id TEXT NOT NULL,
		level_id INTEGER NOT NULL,
		youtube_link TEXT NOT NULL DEFAULT '',
		message_id TEXT NOT NULL DEFAULT '',
		created_at INTEGER NOT NULL,
		is_reviewed INTEGER NOT NULL DEFAULT 0
	);`

	_, err = DB.Exec(createSubmissionsTableSQL)
	if err != nil {
		log.Fatalf("Failed to create submissions table: %v", err)
	}

	// SQL statement to create the 'reviews' table.
	createReviewsTableSQL := `
	CREATE TABLE IF NOT EXISTS reviews (
		id TEXT PRIMARY KEY,
		submission_id TEXT NOT NULL,
		reviewer_id TEXT NOT NULL,
		content TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);`

	_, err = DB.Exec(createReviewsTableSQL)
	if err != nil {
		log.Fatalf("Failed to create reviews table: %v", err)
	}

	// SQL statement to create the 'id_counter' table for sequential ID generation.
	createIdCounterTableSQL := `
	CREATE TABLE IF NOT EXISTS id_counter (
		counter_name TEXT PRIMARY KEY,
		current_value INTEGER NOT NULL DEFAULT 0
	);`

	_, err = DB.Exec(createIdCounterTableSQL)
	if err != nil {
		log.Fatalf("Failed to create id_counter table: %v", err)
	}

	// Initialize the submission counter if it doesn't exist
	_, err = DB.Exec("INSERT OR IGNORE INTO id_counter(counter_name, current_value) VALUES('submission_id', 0)")
	if err != nil {
		log.Fatalf("Failed to initialize submission counter: %v", err)
	}

	// Add message_channel_id column if it doesn't exist (migration for databases
	// created before the channel was recorded per submission).
	_, err = DB.Exec("ALTER TABLE submissions ADD COLUMN message_channel_id TEXT NOT NULL DEFAULT ''")
	if err != nil && !isColumnExistsError(err) {
		log.Fatalf("Failed to add message_channel_id column: %v", err)
	}

	log.Println("Database tables initialized successfully.")
}

// isColumnExistsError checks if the error is due to column already existing
func isColumnExistsError(err error) bool {
	return strings.Contains(err.Error(), "duplicate column name")
}
